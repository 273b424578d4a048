package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// splitOperands splits on commas outside parentheses.
func splitOperands(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var ops []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				ops = append(ops, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(ops, strings.TrimSpace(s[start:]))
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c == '.' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// parseInt reads a signed decimal, 0x, 0o or 0b literal. Unsigned 64-bit
// hex values wrap to their two's complement.
func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return int64(v), nil
}

func oneInt(name string, ops []string) (int64, error) {
	if len(ops) != 1 {
		return 0, fmt.Errorf("%s takes one value", name)
	}
	return parseInt(ops[0])
}

// parseMem splits "off(base)"; the offset defaults to zero.
func parseMem(s string) (off int64, base string, err error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return 0, "", fmt.Errorf("expected off(reg), got %q", s)
	}
	base = strings.TrimSpace(s[open+1 : len(s)-1])
	if disp := strings.TrimSpace(s[:open]); disp != "" {
		off, err = parseInt(disp)
	}
	return off, base, err
}

func arity(mn string, ops []string, n ...int) error {
	for _, want := range n {
		if len(ops) == want {
			return nil
		}
	}
	return fmt.Errorf("%s: expected %d operands, got %d", mn, n[0], len(ops))
}

// reader parses operands of one instruction and keeps the first error, so
// a shape's operands can be read in one pass and checked once.
type reader[R any] struct {
	mn    string
	ops   []string
	parse func(string) (R, error)
	err   error
}

func newReader[R any](mn string, ops []string, parse func(string) (R, error)) *reader[R] {
	return &reader[R]{mn: mn, ops: ops, parse: parse}
}

func (r *reader[R]) fail(i int, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s operand %d: %w", r.mn, i+1, err)
	}
}

func (r *reader[R]) reg(i int) R {
	v, err := r.parse(r.ops[i])
	if err != nil {
		r.fail(i, err)
	}
	return v
}

func (r *reader[R]) imm(i int) int64 {
	v, err := parseInt(r.ops[i])
	if err != nil {
		r.fail(i, err)
	}
	return v
}

func (r *reader[R]) mem(i int) (int64, R) {
	off, base, err := parseMem(r.ops[i])
	if err != nil {
		r.fail(i, err)
		var zero R
		return 0, zero
	}
	v, err := r.parse(base)
	if err != nil {
		r.fail(i, err)
	}
	return off, v
}

// isMem reports whether operand i is written off(reg).
func (r *reader[R]) isMem(i int) bool {
	return i < len(r.ops) && strings.HasSuffix(r.ops[i], ")")
}
