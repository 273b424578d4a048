package riscv

import (
	"fmt"
	"strconv"
	"strings"
)

// Reg is a register reference. Bits 5-6 select the file: 0x00 GPR,
// 0x20 FPR, 0x40 vector.
type Reg uint8

const (
	X0 Reg = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	X31

	F0
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	F25
	F26
	F27
	F28
	F29
	F30
	F31

	V0
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	V10
	V11
	V12
	V13
	V14
	V15
	V16
	V17
	V18
	V19
	V20
	V21
	V22
	V23
	V24
	V25
	V26
	V27
	V28
	V29
	V30
	V31
)

// ABI names.
const (
	ZERO = X0
	RA   = X1
	SP   = X2
	GP   = X3
	TP   = X4
	T0   = X5
	T1   = X6
	T2   = X7
	S0   = X8
	FP   = X8
	S1   = X9
	A0   = X10
	A1   = X11
	A2   = X12
	A3   = X13
	A4   = X14
	A5   = X15
	A6   = X16
	A7   = X17
	S2   = X18
	S3   = X19
	S4   = X20
	S5   = X21
	S6   = X22
	S7   = X23
	S8   = X24
	S9   = X25
	S10  = X26
	S11  = X27
	T3   = X28
	T4   = X29
	T5   = X30
	T6   = X31
)

// Class is a register file.
type Class uint8

const (
	ClassGPR Class = iota
	ClassFPR
	ClassVPR
)

func (c Class) String() string {
	switch c {
	case ClassFPR:
		return "fpr"
	case ClassVPR:
		return "vpr"
	}
	return "gpr"
}

func DecodeReg(r Reg) uint32 { return uint32(r & 0x1F) }

func IsGPR(r Reg) bool { return r&^0x1F == 0x00 }
func IsFPR(r Reg) bool { return r&^0x1F == 0x20 }
func IsVPR(r Reg) bool { return r&^0x1F == 0x40 }

func (r Reg) Class() Class {
	switch {
	case IsFPR(r):
		return ClassFPR
	case IsVPR(r):
		return ClassVPR
	}
	return ClassGPR
}

func (r Reg) Is(c Class) bool {
	switch c {
	case ClassFPR:
		return IsFPR(r)
	case ClassVPR:
		return IsVPR(r)
	}
	return IsGPR(r)
}

// CanCompress reports whether r is one of x8-x15 / f8-f15, the registers
// reachable through a 3-bit compressed field.
func CanCompress(r Reg) bool { return DecodeReg(r)&0x18 == 0x08 }

func CompressReg(r Reg) uint32 { return DecodeReg(r) & 7 }

var gprNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

var fprNames = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

func (r Reg) String() string {
	switch {
	case IsGPR(r):
		return gprNames[r]
	case IsFPR(r):
		return fprNames[DecodeReg(r)]
	case IsVPR(r):
		return "v" + strconv.Itoa(int(DecodeReg(r)))
	}
	return fmt.Sprintf("reg(%#x)", uint8(r))
}

// ParseReg accepts ABI names (a0, ft3, fp), numeric names (x10, f3, v8).
func ParseReg(s string) (Reg, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "fp" {
		return FP, nil
	}
	for i, n := range gprNames {
		if n == s {
			return Reg(i), nil
		}
	}
	for i, n := range fprNames {
		if n == s {
			return F0 + Reg(i), nil
		}
	}
	if len(s) >= 2 {
		n, err := strconv.Atoi(s[1:])
		if err == nil && n >= 0 && n < 32 {
			switch s[0] {
			case 'x':
				return X0 + Reg(n), nil
			case 'f':
				return F0 + Reg(n), nil
			case 'v':
				return V0 + Reg(n), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown register %q", s)
}
