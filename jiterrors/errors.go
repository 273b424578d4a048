package jiterrors

import (
	"errors"
	"fmt"
	"strings"
)

// Emit (E) Errors: structural misuse of an instruction.
var (
	ErrERegisterClass     = errors.New("E1|RegisterClass: Operand register belongs to the wrong register file.")
	ErrEHintWrite         = errors.New("E2|HintWrite: Instruction would write the zero register, which encodes a hint.")
	ErrEOperandConstraint = errors.New("E3|OperandConstraint: Operands violate an instruction-specific constraint.")
)

// Range (R) Errors
var (
	ErrRImmRange    = errors.New("R1|ImmRange: Immediate does not fit the instruction field.")
	ErrRImmAlign    = errors.New("R2|ImmAlign: Immediate is not a multiple of the field scale.")
	ErrRBranchRange = errors.New("R3|BranchRange: Branch displacement is out of range for its kind.")
	ErrRBranchAlign = errors.New("R4|BranchAlign: Branch target or displacement is misaligned.")
)

// Fixup (F) Errors
var (
	ErrFFixupResolved   = errors.New("F1|FixupResolved: Fixup is unknown or was already resolved.")
	ErrFFixupUnresolved = errors.New("F2|FixupUnresolved: Fixups left open at end of compilation.")
)

// Unsupported (U) Errors
var (
	ErrUUnsupported = errors.New("U1|Unsupported: Instruction needs a capability the target does not have.")
)

// EmitError is the panic value raised by emitters and encoders.
type EmitError struct {
	Op     string // mnemonic or shape
	Field  string // operand that failed, may be empty
	Err    error  // one of the sentinels above
	Detail string
}

func (e *EmitError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Field != "" {
		b.WriteString(" ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(GetErrorName(e.Err))
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

func (e *EmitError) Unwrap() error { return e.Err }

// Failf panics with an *EmitError.
func Failf(op, field string, sentinel error, format string, args ...interface{}) {
	panic(&EmitError{Op: op, Field: field, Err: sentinel, Detail: fmt.Sprintf(format, args...)})
}

// Catch runs fn and returns the *EmitError it panicked with, if any.
// Any other panic is re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EmitError); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// GetErrorName extracts the error name from the error message.
func GetErrorName(err error) string {
	if err == nil {
		return "No Error"
	}
	var ee *EmitError
	if errors.As(err, &ee) && ee.Err != nil {
		err = ee.Err
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") || !strings.Contains(errStr, ":") {
		return errStr
	}
	parts := strings.SplitN(errStr, "|", 2)
	nameParts := strings.SplitN(parts[1], ":", 2)
	return strings.TrimSpace(nameParts[0])
}

func GetErrorNames(errs []error) []string {
	errStrs := make([]string, len(errs))
	for i, err := range errs {
		errStrs[i] = GetErrorName(err)
	}
	return errStrs
}

// GetErrorCode extracts the error code ("R3") from the error message.
func GetErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var ee *EmitError
	if errors.As(err, &ee) && ee.Err != nil {
		err = ee.Err
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") {
		return ""
	}
	parts := strings.SplitN(errStr, "|", 2)
	return strings.TrimSpace(parts[0])
}

// GetErrorCodeWithName returns the error code and name in the format "Code_ErrorName".
func GetErrorCodeWithName(err error) string {
	code := GetErrorCode(err)
	name := GetErrorName(err)
	if code == "" || name == "" {
		return ""
	}
	return code + "_" + name
}
