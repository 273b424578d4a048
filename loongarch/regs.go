package loongarch

import (
	"fmt"
	"strconv"
	"strings"
)

// Reg is a register reference. Bits 5-6 select the file: 0x00 GPR,
// 0x20 FPR, 0x40 LSX, 0x60 LASX.
type Reg uint8

const (
	R0 Reg = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	R16
	R17
	R18
	R19
	R20
	R21
	R22
	R23
	R24
	R25
	R26
	R27
	R28
	R29
	R30
	R31
)

const (
	F0 Reg = 0x20 + iota
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
)

const (
	V0 Reg = 0x40 + iota
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

// X0 is the first LASX register; the file aliases the LSX registers.
const X0 Reg = 0x60

// ABI names.
const (
	ZERO = R0
	RA   = R1
	TP   = R2
	SP   = R3
	A0   = R4
	A1   = R5
	A2   = R6
	A3   = R7
	A4   = R8
	A5   = R9
	A6   = R10
	A7   = R11
	T0   = R12
	T1   = R13
	T2   = R14
	T3   = R15
	T4   = R16
	T5   = R17
	T6   = R18
	T7   = R19
	T8   = R20
	FP   = R22
	S0   = R23
	S1   = R24
	S2   = R25
	S3   = R26
	S4   = R27
	S5   = R28
	S6   = R29
	S7   = R30
	S8   = R31
)

// CFR is a floating point condition flag register.
type CFR uint8

const (
	FCC0 CFR = iota
	FCC1
	FCC2
	FCC3
	FCC4
	FCC5
	FCC6
	FCC7
)

func (c CFR) String() string { return "fcc" + strconv.Itoa(int(c)) }

// FCSR is a floating point control and status register.
type FCSR uint8

const (
	FCSR0 FCSR = iota
	FCSR1
	FCSR2
	FCSR3
)

func (c FCSR) String() string { return "fcsr" + strconv.Itoa(int(c)) }

// Class is a register file.
type Class uint8

const (
	ClassGPR Class = iota
	ClassFPR
	ClassVPR
	ClassXPR
)

func (c Class) String() string {
	switch c {
	case ClassFPR:
		return "fpr"
	case ClassVPR:
		return "lsx"
	case ClassXPR:
		return "lasx"
	}
	return "gpr"
}

func DecodeReg(r Reg) uint32 { return uint32(r & 0x1F) }

func IsGPR(r Reg) bool { return r&^0x1F == 0x00 }
func IsFPR(r Reg) bool { return r&^0x1F == 0x20 }
func IsVPR(r Reg) bool { return r&^0x1F == 0x40 }
func IsXPR(r Reg) bool { return r&^0x1F == 0x60 }
func IsCFR(c CFR) bool { return c <= FCC7 }

func IsFCSR(c FCSR) bool { return c <= FCSR3 }

func (r Reg) Class() Class {
	switch {
	case IsFPR(r):
		return ClassFPR
	case IsVPR(r):
		return ClassVPR
	case IsXPR(r):
		return ClassXPR
	}
	return ClassGPR
}

func (r Reg) Is(c Class) bool { return r&^0x1F <= 0x60 && r.Class() == c }

var gprNames = [32]string{
	"zero", "ra", "tp", "sp", "a0", "a1", "a2", "a3",
	"a4", "a5", "a6", "a7", "t0", "t1", "t2", "t3",
	"t4", "t5", "t6", "t7", "t8", "r21", "fp", "s0",
	"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8",
}

func fprName(n uint32) string {
	switch {
	case n < 8:
		return "fa" + strconv.Itoa(int(n))
	case n < 24:
		return "ft" + strconv.Itoa(int(n-8))
	}
	return "fs" + strconv.Itoa(int(n-24))
}

func (r Reg) String() string {
	n := DecodeReg(r)
	switch r.Class() {
	case ClassFPR:
		return fprName(n)
	case ClassVPR:
		return "vr" + strconv.Itoa(int(n))
	case ClassXPR:
		return "xr" + strconv.Itoa(int(n))
	}
	if r > 0x7F {
		return fmt.Sprintf("reg(%#x)", uint8(r))
	}
	return gprNames[n]
}

// ParseReg accepts ABI names (a0, fa1, fs0), numeric names (r4, f1, vr2,
// xr3) and an optional leading '$'. "s9" is fp.
func ParseReg(s string) (Reg, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "$")
	if s == "s9" {
		return FP, nil
	}
	for i, n := range gprNames {
		if n == s {
			return Reg(i), nil
		}
	}
	for i := uint32(0); i < 32; i++ {
		if fprName(i) == s {
			return F0 + Reg(i), nil
		}
	}
	for _, p := range []struct {
		prefix string
		base   Reg
	}{{"vr", V0}, {"xr", X0}, {"r", R0}, {"f", F0}} {
		if !strings.HasPrefix(s, p.prefix) {
			continue
		}
		n, err := strconv.Atoi(s[len(p.prefix):])
		if err == nil && n >= 0 && n < 32 {
			return p.base + Reg(n), nil
		}
	}
	return 0, fmt.Errorf("unknown register %q", s)
}

// ParseCFR reads fcc0-fcc7.
func ParseCFR(s string) (CFR, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "$")
	n, err := strconv.Atoi(strings.TrimPrefix(s, "fcc"))
	if !strings.HasPrefix(s, "fcc") || err != nil || n < 0 || n > 7 {
		return 0, fmt.Errorf("unknown condition flag %q", s)
	}
	return CFR(n), nil
}

// ParseFCSR reads fcsr0-fcsr3.
func ParseFCSR(s string) (FCSR, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "$")
	n, err := strconv.Atoi(strings.TrimPrefix(s, "fcsr"))
	if !strings.HasPrefix(s, "fcsr") || err != nil || n < 0 || n > 3 {
		return 0, fmt.Errorf("unknown fcsr %q", s)
	}
	return FCSR(n), nil
}
