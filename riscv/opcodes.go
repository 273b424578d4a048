package riscv

// Major opcodes.
const (
	opLOAD      uint32 = 0x03
	opLOAD_FP   uint32 = 0x07
	opMISC_MEM  uint32 = 0x0F
	opOP_IMM    uint32 = 0x13
	opAUIPC     uint32 = 0x17
	opOP_IMM_32 uint32 = 0x1B
	opSTORE     uint32 = 0x23
	opSTORE_FP  uint32 = 0x27
	opAMO       uint32 = 0x2F
	opOP        uint32 = 0x33
	opLUI       uint32 = 0x37
	opOP_32     uint32 = 0x3B
	opFMADD     uint32 = 0x43
	opFMSUB     uint32 = 0x47
	opFNMSUB    uint32 = 0x4B
	opFNMADD    uint32 = 0x4F
	opOP_FP     uint32 = 0x53
	opOP_V      uint32 = 0x57
	opBRANCH    uint32 = 0x63
	opJALR      uint32 = 0x67
	opJAL       uint32 = 0x6F
	opSYSTEM    uint32 = 0x73
)

// Shape names an encoding layout.
type Shape uint8

const (
	ShapeR       Shape = iota // rd, rs1, rs2
	ShapeR2                   // rd, rs1; rs2 fixed in Match
	ShapeRRm                  // rd, rs1, rs2, rounding mode in funct3
	ShapeR2Rm                 // rd, rs1, rounding mode; rs2 fixed
	ShapeR4                   // rd, rs1, rs2, rs3, rounding mode
	ShapeAMO                  // rd, rs2, (rs1), ordering
	ShapeLR                   // rd, (rs1), ordering
	ShapeI                    // rd, rs1, simm12
	ShapeIShift               // rd, rs1, shamt < XLEN
	ShapeIShiftW              // rd, rs1, shamt < 32
	ShapeS                    // rs2, simm12(rs1)
	ShapeB                    // rs1, rs2, 13-bit even displacement
	ShapeU                    // rd, upper 20 bits
	ShapeJ                    // rd, 21-bit even displacement
	ShapeCSR                  // rd, csr, rs1
	ShapeCSRI                 // rd, csr, uimm5
	ShapeFence                // pred, succ
	ShapeSys                  // no operands
	ShapeVSETVLI              // rd, rs1, vtype
	ShapeVLS                  // vd/vs3, (rs1), vm
	ShapeVV                   // vd, vs2, vs1, vm
	ShapeVX                   // vd, vs2, rs1, vm
	ShapeVI                   // vd, vs2, simm5, vm

	ShapeCR      // rd, rs2
	ShapeCI      // rd, simm6
	ShapeCIShift // rd, uimm6 != 0
	ShapeCILUI   // rd, 18-bit upper immediate
	ShapeCI16SP  // simm10 multiple of 16
	ShapeCILoad4 // rd, uimm8 multiple of 4 off sp
	ShapeCILoad8 // rd, uimm9 multiple of 8 off sp
	ShapeCSS4    // rs2, uimm8 multiple of 4 off sp
	ShapeCSS8    // rs2, uimm9 multiple of 8 off sp
	ShapeCIW     // rd', uimm10 multiple of 4 off sp
	ShapeCL4     // rd', uimm7 multiple of 4 (rs1')
	ShapeCL8     // rd', uimm8 multiple of 8 (rs1')
	ShapeCS4     // rs2', uimm7 multiple of 4 (rs1')
	ShapeCS8     // rs2', uimm8 multiple of 8 (rs1')
	ShapeCA      // rd', rs2'
	ShapeCBShift // rd', uimm6 != 0
	ShapeCBAndi  // rd', simm6
	ShapeCB      // rs1', 9-bit even displacement
	ShapeCJ      // 12-bit even displacement
	ShapeCLB     // rd', uimm2 (rs1')
	ShapeCSB     // rs2', uimm2 (rs1')
	ShapeCLH     // rd', uimm2 even (rs1')
	ShapeCSH     // rs2', uimm2 even (rs1')
	ShapeCU      // rd'
)

var shapeNames = [...]string{
	"R", "R2", "R-rm", "R2-rm", "R4", "AMO", "LR", "I", "I-shift", "I-shift-w", "S", "B", "U", "J",
	"CSR", "CSR-imm", "FENCE", "SYS", "VSETVLI", "V-load-store", "OPIVV", "OPIVX", "OPIVI",
	"CR", "CI", "CI-shift", "CI-lui", "CI-addi16sp", "CI-load4", "CI-load8", "CSS4", "CSS8", "CIW",
	"CL4", "CL8", "CS4", "CS8", "CA", "CB-shift", "CB-andi", "CB", "CJ",
	"CLB", "CSB", "CLH", "CSH", "CU",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "shape?"
}

// Compressed reports whether the shape produces a 16-bit word.
func (s Shape) Compressed() bool { return s >= ShapeCR }

// Inst is a named instruction: the fixed bits of its word and the layout
// of its operand fields. Ops gives the register file of each register
// operand in assembly order ('x', 'f' or 'v'); missing positions are 'x'.
type Inst struct {
	Name  string
	Match uint32
	Shape Shape
	Ops   string
}

func (in Inst) class(i int) Class {
	if i >= len(in.Ops) {
		return ClassGPR
	}
	switch in.Ops[i] {
	case 'f':
		return ClassFPR
	case 'v':
		return ClassVPR
	}
	return ClassGPR
}

func rInst(name string, op, f3, f7 uint32, ops string) Inst {
	return Inst{name, op | f3<<12 | f7<<25, ShapeR, ops}
}

func r2Inst(name string, op, f3, rs2, f7 uint32, ops string) Inst {
	return Inst{name, op | f3<<12 | rs2<<20 | f7<<25, ShapeR2, ops}
}

func iInst(name string, op, f3 uint32, ops string) Inst {
	return Inst{name, op | f3<<12, ShapeI, ops}
}

func sInst(name string, op, f3 uint32, ops string) Inst {
	return Inst{name, op | f3<<12, ShapeS, ops}
}

func shiftInst(name string, op, f3, hi uint32, shape Shape) Inst {
	return Inst{name, op | f3<<12 | hi<<25, shape, ""}
}

func unaryInst(name string, op, f3, imm12 uint32) Inst {
	return Inst{name, op | f3<<12 | imm12<<20, ShapeR2, ""}
}

// Floating point format field.
const (
	fmtS uint32 = 0
	fmtD uint32 = 1
	fmtH uint32 = 2
)

func fpInst(name string, f5, fmt, f3 uint32, shape Shape, ops string) Inst {
	return Inst{name, opOP_FP | f3<<12 | (f5<<2|fmt)<<25, shape, ops}
}

func fpUnary(name string, f5, fmt, rs2, f3 uint32, shape Shape, ops string) Inst {
	return Inst{name, opOP_FP | f3<<12 | rs2<<20 | (f5<<2|fmt)<<25, shape, ops}
}

func amoInst(name string, f3, f5 uint32, shape Shape) Inst {
	return Inst{name, opAMO | f3<<12 | f5<<27, shape, ""}
}

func vInst(name string, f3, f6 uint32, shape Shape, ops string) Inst {
	return Inst{name, opOP_V | f3<<12 | f6<<26, shape, ops}
}

func cInst(name string, match uint16, shape Shape, ops string) Inst {
	return Inst{name, uint32(match), shape, ops}
}

// RV32I / RV64I base.
var (
	LUI   = Inst{"lui", opLUI, ShapeU, ""}
	AUIPC = Inst{"auipc", opAUIPC, ShapeU, ""}
	JAL   = Inst{"jal", opJAL, ShapeJ, ""}
	JALR  = iInst("jalr", opJALR, 0, "")

	BEQ  = Inst{"beq", opBRANCH | 0<<12, ShapeB, ""}
	BNE  = Inst{"bne", opBRANCH | 1<<12, ShapeB, ""}
	BLT  = Inst{"blt", opBRANCH | 4<<12, ShapeB, ""}
	BGE  = Inst{"bge", opBRANCH | 5<<12, ShapeB, ""}
	BLTU = Inst{"bltu", opBRANCH | 6<<12, ShapeB, ""}
	BGEU = Inst{"bgeu", opBRANCH | 7<<12, ShapeB, ""}

	LB  = iInst("lb", opLOAD, 0, "")
	LH  = iInst("lh", opLOAD, 1, "")
	LW  = iInst("lw", opLOAD, 2, "")
	LD  = iInst("ld", opLOAD, 3, "")
	LBU = iInst("lbu", opLOAD, 4, "")
	LHU = iInst("lhu", opLOAD, 5, "")
	LWU = iInst("lwu", opLOAD, 6, "")

	SB = sInst("sb", opSTORE, 0, "")
	SH = sInst("sh", opSTORE, 1, "")
	SW = sInst("sw", opSTORE, 2, "")
	SD = sInst("sd", opSTORE, 3, "")

	ADDI  = iInst("addi", opOP_IMM, 0, "")
	SLTI  = iInst("slti", opOP_IMM, 2, "")
	SLTIU = iInst("sltiu", opOP_IMM, 3, "")
	XORI  = iInst("xori", opOP_IMM, 4, "")
	ORI   = iInst("ori", opOP_IMM, 6, "")
	ANDI  = iInst("andi", opOP_IMM, 7, "")
	SLLI  = shiftInst("slli", opOP_IMM, 1, 0x00, ShapeIShift)
	SRLI  = shiftInst("srli", opOP_IMM, 5, 0x00, ShapeIShift)
	SRAI  = shiftInst("srai", opOP_IMM, 5, 0x20, ShapeIShift)

	ADD  = rInst("add", opOP, 0, 0x00, "")
	SUB  = rInst("sub", opOP, 0, 0x20, "")
	SLL  = rInst("sll", opOP, 1, 0x00, "")
	SLT  = rInst("slt", opOP, 2, 0x00, "")
	SLTU = rInst("sltu", opOP, 3, 0x00, "")
	XOR  = rInst("xor", opOP, 4, 0x00, "")
	SRL  = rInst("srl", opOP, 5, 0x00, "")
	SRA  = rInst("sra", opOP, 5, 0x20, "")
	OR   = rInst("or", opOP, 6, 0x00, "")
	AND  = rInst("and", opOP, 7, 0x00, "")

	FENCE     = Inst{"fence", opMISC_MEM, ShapeFence, ""}
	FENCE_TSO = Inst{"fence.tso", opMISC_MEM | 0x8<<28, ShapeFence, ""}
	FENCE_I   = Inst{"fence.i", opMISC_MEM | 1<<12, ShapeSys, ""}
	ECALL     = Inst{"ecall", opSYSTEM, ShapeSys, ""}
	EBREAK    = Inst{"ebreak", opSYSTEM | 1<<20, ShapeSys, ""}

	ADDIW = iInst("addiw", opOP_IMM_32, 0, "")
	SLLIW = shiftInst("slliw", opOP_IMM_32, 1, 0x00, ShapeIShiftW)
	SRLIW = shiftInst("srliw", opOP_IMM_32, 5, 0x00, ShapeIShiftW)
	SRAIW = shiftInst("sraiw", opOP_IMM_32, 5, 0x20, ShapeIShiftW)
	ADDW  = rInst("addw", opOP_32, 0, 0x00, "")
	SUBW  = rInst("subw", opOP_32, 0, 0x20, "")
	SLLW  = rInst("sllw", opOP_32, 1, 0x00, "")
	SRLW  = rInst("srlw", opOP_32, 5, 0x00, "")
	SRAW  = rInst("sraw", opOP_32, 5, 0x20, "")
)

// M / Zmmul.
var (
	MUL    = rInst("mul", opOP, 0, 0x01, "")
	MULH   = rInst("mulh", opOP, 1, 0x01, "")
	MULHSU = rInst("mulhsu", opOP, 2, 0x01, "")
	MULHU  = rInst("mulhu", opOP, 3, 0x01, "")
	DIV    = rInst("div", opOP, 4, 0x01, "")
	DIVU   = rInst("divu", opOP, 5, 0x01, "")
	REM    = rInst("rem", opOP, 6, 0x01, "")
	REMU   = rInst("remu", opOP, 7, 0x01, "")
	MULW   = rInst("mulw", opOP_32, 0, 0x01, "")
	DIVW   = rInst("divw", opOP_32, 4, 0x01, "")
	DIVUW  = rInst("divuw", opOP_32, 5, 0x01, "")
	REMW   = rInst("remw", opOP_32, 6, 0x01, "")
	REMUW  = rInst("remuw", opOP_32, 7, 0x01, "")
)

// A.
var (
	LR_W      = amoInst("lr.w", 2, 0b00010, ShapeLR)
	SC_W      = amoInst("sc.w", 2, 0b00011, ShapeAMO)
	AMOSWAP_W = amoInst("amoswap.w", 2, 0b00001, ShapeAMO)
	AMOADD_W  = amoInst("amoadd.w", 2, 0b00000, ShapeAMO)
	AMOXOR_W  = amoInst("amoxor.w", 2, 0b00100, ShapeAMO)
	AMOAND_W  = amoInst("amoand.w", 2, 0b01100, ShapeAMO)
	AMOOR_W   = amoInst("amoor.w", 2, 0b01000, ShapeAMO)
	AMOMIN_W  = amoInst("amomin.w", 2, 0b10000, ShapeAMO)
	AMOMAX_W  = amoInst("amomax.w", 2, 0b10100, ShapeAMO)
	AMOMINU_W = amoInst("amominu.w", 2, 0b11000, ShapeAMO)
	AMOMAXU_W = amoInst("amomaxu.w", 2, 0b11100, ShapeAMO)

	LR_D      = amoInst("lr.d", 3, 0b00010, ShapeLR)
	SC_D      = amoInst("sc.d", 3, 0b00011, ShapeAMO)
	AMOSWAP_D = amoInst("amoswap.d", 3, 0b00001, ShapeAMO)
	AMOADD_D  = amoInst("amoadd.d", 3, 0b00000, ShapeAMO)
	AMOXOR_D  = amoInst("amoxor.d", 3, 0b00100, ShapeAMO)
	AMOAND_D  = amoInst("amoand.d", 3, 0b01100, ShapeAMO)
	AMOOR_D   = amoInst("amoor.d", 3, 0b01000, ShapeAMO)
	AMOMIN_D  = amoInst("amomin.d", 3, 0b10000, ShapeAMO)
	AMOMAX_D  = amoInst("amomax.d", 3, 0b10100, ShapeAMO)
	AMOMINU_D = amoInst("amominu.d", 3, 0b11000, ShapeAMO)
	AMOMAXU_D = amoInst("amomaxu.d", 3, 0b11100, ShapeAMO)
)

// F / D.
var (
	FLW = iInst("flw", opLOAD_FP, 2, "f")
	FLD = iInst("fld", opLOAD_FP, 3, "f")
	FSW = sInst("fsw", opSTORE_FP, 2, "f")
	FSD = sInst("fsd", opSTORE_FP, 3, "f")

	FADD_S    = fpInst("fadd.s", 0b00000, fmtS, 0, ShapeRRm, "fff")
	FSUB_S    = fpInst("fsub.s", 0b00001, fmtS, 0, ShapeRRm, "fff")
	FMUL_S    = fpInst("fmul.s", 0b00010, fmtS, 0, ShapeRRm, "fff")
	FDIV_S    = fpInst("fdiv.s", 0b00011, fmtS, 0, ShapeRRm, "fff")
	FSQRT_S   = fpUnary("fsqrt.s", 0b01011, fmtS, 0, 0, ShapeR2Rm, "ff")
	FSGNJ_S   = fpInst("fsgnj.s", 0b00100, fmtS, 0, ShapeR, "fff")
	FSGNJN_S  = fpInst("fsgnjn.s", 0b00100, fmtS, 1, ShapeR, "fff")
	FSGNJX_S  = fpInst("fsgnjx.s", 0b00100, fmtS, 2, ShapeR, "fff")
	FMIN_S    = fpInst("fmin.s", 0b00101, fmtS, 0, ShapeR, "fff")
	FMAX_S    = fpInst("fmax.s", 0b00101, fmtS, 1, ShapeR, "fff")
	FEQ_S     = fpInst("feq.s", 0b10100, fmtS, 2, ShapeR, "xff")
	FLT_S     = fpInst("flt.s", 0b10100, fmtS, 1, ShapeR, "xff")
	FLE_S     = fpInst("fle.s", 0b10100, fmtS, 0, ShapeR, "xff")
	FCLASS_S  = fpUnary("fclass.s", 0b11100, fmtS, 0, 1, ShapeR2, "xf")
	FMV_X_W   = fpUnary("fmv.x.w", 0b11100, fmtS, 0, 0, ShapeR2, "xf")
	FMV_W_X   = fpUnary("fmv.w.x", 0b11110, fmtS, 0, 0, ShapeR2, "fx")
	FCVT_W_S  = fpUnary("fcvt.w.s", 0b11000, fmtS, 0, 0, ShapeR2Rm, "xf")
	FCVT_WU_S = fpUnary("fcvt.wu.s", 0b11000, fmtS, 1, 0, ShapeR2Rm, "xf")
	FCVT_L_S  = fpUnary("fcvt.l.s", 0b11000, fmtS, 2, 0, ShapeR2Rm, "xf")
	FCVT_LU_S = fpUnary("fcvt.lu.s", 0b11000, fmtS, 3, 0, ShapeR2Rm, "xf")
	FCVT_S_W  = fpUnary("fcvt.s.w", 0b11010, fmtS, 0, 0, ShapeR2Rm, "fx")
	FCVT_S_WU = fpUnary("fcvt.s.wu", 0b11010, fmtS, 1, 0, ShapeR2Rm, "fx")
	FCVT_S_L  = fpUnary("fcvt.s.l", 0b11010, fmtS, 2, 0, ShapeR2Rm, "fx")
	FCVT_S_LU = fpUnary("fcvt.s.lu", 0b11010, fmtS, 3, 0, ShapeR2Rm, "fx")
	FCVT_S_D  = fpUnary("fcvt.s.d", 0b01000, fmtS, fmtD, 0, ShapeR2Rm, "ff")

	FADD_D    = fpInst("fadd.d", 0b00000, fmtD, 0, ShapeRRm, "fff")
	FSUB_D    = fpInst("fsub.d", 0b00001, fmtD, 0, ShapeRRm, "fff")
	FMUL_D    = fpInst("fmul.d", 0b00010, fmtD, 0, ShapeRRm, "fff")
	FDIV_D    = fpInst("fdiv.d", 0b00011, fmtD, 0, ShapeRRm, "fff")
	FSQRT_D   = fpUnary("fsqrt.d", 0b01011, fmtD, 0, 0, ShapeR2Rm, "ff")
	FSGNJ_D   = fpInst("fsgnj.d", 0b00100, fmtD, 0, ShapeR, "fff")
	FSGNJN_D  = fpInst("fsgnjn.d", 0b00100, fmtD, 1, ShapeR, "fff")
	FSGNJX_D  = fpInst("fsgnjx.d", 0b00100, fmtD, 2, ShapeR, "fff")
	FMIN_D    = fpInst("fmin.d", 0b00101, fmtD, 0, ShapeR, "fff")
	FMAX_D    = fpInst("fmax.d", 0b00101, fmtD, 1, ShapeR, "fff")
	FEQ_D     = fpInst("feq.d", 0b10100, fmtD, 2, ShapeR, "xff")
	FLT_D     = fpInst("flt.d", 0b10100, fmtD, 1, ShapeR, "xff")
	FLE_D     = fpInst("fle.d", 0b10100, fmtD, 0, ShapeR, "xff")
	FCLASS_D  = fpUnary("fclass.d", 0b11100, fmtD, 0, 1, ShapeR2, "xf")
	FMV_X_D   = fpUnary("fmv.x.d", 0b11100, fmtD, 0, 0, ShapeR2, "xf")
	FMV_D_X   = fpUnary("fmv.d.x", 0b11110, fmtD, 0, 0, ShapeR2, "fx")
	FCVT_W_D  = fpUnary("fcvt.w.d", 0b11000, fmtD, 0, 0, ShapeR2Rm, "xf")
	FCVT_WU_D = fpUnary("fcvt.wu.d", 0b11000, fmtD, 1, 0, ShapeR2Rm, "xf")
	FCVT_L_D  = fpUnary("fcvt.l.d", 0b11000, fmtD, 2, 0, ShapeR2Rm, "xf")
	FCVT_LU_D = fpUnary("fcvt.lu.d", 0b11000, fmtD, 3, 0, ShapeR2Rm, "xf")
	FCVT_D_W  = fpUnary("fcvt.d.w", 0b11010, fmtD, 0, 0, ShapeR2Rm, "fx")
	FCVT_D_WU = fpUnary("fcvt.d.wu", 0b11010, fmtD, 1, 0, ShapeR2Rm, "fx")
	FCVT_D_L  = fpUnary("fcvt.d.l", 0b11010, fmtD, 2, 0, ShapeR2Rm, "fx")
	FCVT_D_LU = fpUnary("fcvt.d.lu", 0b11010, fmtD, 3, 0, ShapeR2Rm, "fx")
	FCVT_D_S  = fpUnary("fcvt.d.s", 0b01000, fmtD, fmtS, 0, ShapeR2Rm, "ff")

	FMADD_S  = Inst{"fmadd.s", opFMADD | fmtS<<25, ShapeR4, "ffff"}
	FMSUB_S  = Inst{"fmsub.s", opFMSUB | fmtS<<25, ShapeR4, "ffff"}
	FNMSUB_S = Inst{"fnmsub.s", opFNMSUB | fmtS<<25, ShapeR4, "ffff"}
	FNMADD_S = Inst{"fnmadd.s", opFNMADD | fmtS<<25, ShapeR4, "ffff"}
	FMADD_D  = Inst{"fmadd.d", opFMADD | fmtD<<25, ShapeR4, "ffff"}
	FMSUB_D  = Inst{"fmsub.d", opFMSUB | fmtD<<25, ShapeR4, "ffff"}
	FNMSUB_D = Inst{"fnmsub.d", opFNMSUB | fmtD<<25, ShapeR4, "ffff"}
	FNMADD_D = Inst{"fnmadd.d", opFNMADD | fmtD<<25, ShapeR4, "ffff"}
)

// Half precision: Zfhmin moves and converts, Zfh computes.
var (
	FLH      = iInst("flh", opLOAD_FP, 1, "f")
	FSH      = sInst("fsh", opSTORE_FP, 1, "f")
	FMV_X_H  = fpUnary("fmv.x.h", 0b11100, fmtH, 0, 0, ShapeR2, "xf")
	FMV_H_X  = fpUnary("fmv.h.x", 0b11110, fmtH, 0, 0, ShapeR2, "fx")
	FCVT_S_H = fpUnary("fcvt.s.h", 0b01000, fmtS, fmtH, 0, ShapeR2Rm, "ff")
	FCVT_H_S = fpUnary("fcvt.h.s", 0b01000, fmtH, fmtS, 0, ShapeR2Rm, "ff")
	FCVT_D_H = fpUnary("fcvt.d.h", 0b01000, fmtD, fmtH, 0, ShapeR2Rm, "ff")
	FCVT_H_D = fpUnary("fcvt.h.d", 0b01000, fmtH, fmtD, 0, ShapeR2Rm, "ff")
	FADD_H   = fpInst("fadd.h", 0b00000, fmtH, 0, ShapeRRm, "fff")
	FSUB_H   = fpInst("fsub.h", 0b00001, fmtH, 0, ShapeRRm, "fff")
	FMUL_H   = fpInst("fmul.h", 0b00010, fmtH, 0, ShapeRRm, "fff")
	FDIV_H   = fpInst("fdiv.h", 0b00011, fmtH, 0, ShapeRRm, "fff")
	FSQRT_H  = fpUnary("fsqrt.h", 0b01011, fmtH, 0, 0, ShapeR2Rm, "ff")
	FMIN_H   = fpInst("fmin.h", 0b00101, fmtH, 0, ShapeR, "fff")
	FMAX_H   = fpInst("fmax.h", 0b00101, fmtH, 1, ShapeR, "fff")
	FEQ_H    = fpInst("feq.h", 0b10100, fmtH, 2, ShapeR, "xff")
	FLT_H    = fpInst("flt.h", 0b10100, fmtH, 1, ShapeR, "xff")
	FLE_H    = fpInst("fle.h", 0b10100, fmtH, 0, ShapeR, "xff")
)

// Zfa. FLI carries its constant index in the rs1 field.
var (
	FLI_S      = fpUnary("fli.s", 0b11110, fmtS, 1, 0, ShapeR2, "f")
	FLI_D      = fpUnary("fli.d", 0b11110, fmtD, 1, 0, ShapeR2, "f")
	FLI_H      = fpUnary("fli.h", 0b11110, fmtH, 1, 0, ShapeR2, "f")
	FMINM_S    = fpInst("fminm.s", 0b00101, fmtS, 2, ShapeR, "fff")
	FMAXM_S    = fpInst("fmaxm.s", 0b00101, fmtS, 3, ShapeR, "fff")
	FMINM_D    = fpInst("fminm.d", 0b00101, fmtD, 2, ShapeR, "fff")
	FMAXM_D    = fpInst("fmaxm.d", 0b00101, fmtD, 3, ShapeR, "fff")
	FMINM_H    = fpInst("fminm.h", 0b00101, fmtH, 2, ShapeR, "fff")
	FMAXM_H    = fpInst("fmaxm.h", 0b00101, fmtH, 3, ShapeR, "fff")
	FROUND_S   = fpUnary("fround.s", 0b01000, fmtS, 4, 0, ShapeR2Rm, "ff")
	FROUNDNX_S = fpUnary("froundnx.s", 0b01000, fmtS, 5, 0, ShapeR2Rm, "ff")
	FROUND_D   = fpUnary("fround.d", 0b01000, fmtD, 4, 0, ShapeR2Rm, "ff")
	FROUNDNX_D = fpUnary("froundnx.d", 0b01000, fmtD, 5, 0, ShapeR2Rm, "ff")
	FROUND_H   = fpUnary("fround.h", 0b01000, fmtH, 4, 0, ShapeR2Rm, "ff")
	FROUNDNX_H = fpUnary("froundnx.h", 0b01000, fmtH, 5, 0, ShapeR2Rm, "ff")
	FLEQ_S     = fpInst("fleq.s", 0b10100, fmtS, 4, ShapeR, "xff")
	FLTQ_S     = fpInst("fltq.s", 0b10100, fmtS, 5, ShapeR, "xff")
	FLEQ_D     = fpInst("fleq.d", 0b10100, fmtD, 4, ShapeR, "xff")
	FLTQ_D     = fpInst("fltq.d", 0b10100, fmtD, 5, ShapeR, "xff")
)

// Zicsr.
var (
	CSRRW  = Inst{"csrrw", opSYSTEM | 1<<12, ShapeCSR, ""}
	CSRRS  = Inst{"csrrs", opSYSTEM | 2<<12, ShapeCSR, ""}
	CSRRC  = Inst{"csrrc", opSYSTEM | 3<<12, ShapeCSR, ""}
	CSRRWI = Inst{"csrrwi", opSYSTEM | 5<<12, ShapeCSRI, ""}
	CSRRSI = Inst{"csrrsi", opSYSTEM | 6<<12, ShapeCSRI, ""}
	CSRRCI = Inst{"csrrci", opSYSTEM | 7<<12, ShapeCSRI, ""}
)

// Zba, Zbb, Zbc, Zbs, Zicond.
var (
	SH1ADD    = rInst("sh1add", opOP, 2, 0x10, "")
	SH2ADD    = rInst("sh2add", opOP, 4, 0x10, "")
	SH3ADD    = rInst("sh3add", opOP, 6, 0x10, "")
	ADD_UW    = rInst("add.uw", opOP_32, 0, 0x04, "")
	SH1ADD_UW = rInst("sh1add.uw", opOP_32, 2, 0x10, "")
	SH2ADD_UW = rInst("sh2add.uw", opOP_32, 4, 0x10, "")
	SH3ADD_UW = rInst("sh3add.uw", opOP_32, 6, 0x10, "")
	SLLI_UW   = shiftInst("slli.uw", opOP_IMM_32, 1, 0x04, ShapeIShift)

	ANDN     = rInst("andn", opOP, 7, 0x20, "")
	ORN      = rInst("orn", opOP, 6, 0x20, "")
	XNOR     = rInst("xnor", opOP, 4, 0x20, "")
	CLZ      = unaryInst("clz", opOP_IMM, 1, 0x600)
	CTZ      = unaryInst("ctz", opOP_IMM, 1, 0x601)
	CPOP     = unaryInst("cpop", opOP_IMM, 1, 0x602)
	SEXT_B   = unaryInst("sext.b", opOP_IMM, 1, 0x604)
	SEXT_H   = unaryInst("sext.h", opOP_IMM, 1, 0x605)
	CLZW     = unaryInst("clzw", opOP_IMM_32, 1, 0x600)
	CTZW     = unaryInst("ctzw", opOP_IMM_32, 1, 0x601)
	CPOPW    = unaryInst("cpopw", opOP_IMM_32, 1, 0x602)
	MAX      = rInst("max", opOP, 6, 0x05, "")
	MAXU     = rInst("maxu", opOP, 7, 0x05, "")
	MIN      = rInst("min", opOP, 4, 0x05, "")
	MINU     = rInst("minu", opOP, 5, 0x05, "")
	ZEXT_H   = r2Inst("zext.h", opOP_32, 4, 0, 0x04, "")
	ZEXT_H32 = r2Inst("zext.h", opOP, 4, 0, 0x04, "")
	ROL      = rInst("rol", opOP, 1, 0x30, "")
	ROR      = rInst("ror", opOP, 5, 0x30, "")
	RORI     = shiftInst("rori", opOP_IMM, 5, 0x30, ShapeIShift)
	ROLW     = rInst("rolw", opOP_32, 1, 0x30, "")
	RORW     = rInst("rorw", opOP_32, 5, 0x30, "")
	RORIW    = shiftInst("roriw", opOP_IMM_32, 5, 0x30, ShapeIShiftW)
	ORC_B    = unaryInst("orc.b", opOP_IMM, 5, 0x287)
	REV8     = unaryInst("rev8", opOP_IMM, 5, 0x6B8)
	REV8_32  = unaryInst("rev8", opOP_IMM, 5, 0x698)

	CLMUL  = rInst("clmul", opOP, 1, 0x05, "")
	CLMULR = rInst("clmulr", opOP, 2, 0x05, "")
	CLMULH = rInst("clmulh", opOP, 3, 0x05, "")

	BCLR  = rInst("bclr", opOP, 1, 0x24, "")
	BEXT  = rInst("bext", opOP, 5, 0x24, "")
	BINV  = rInst("binv", opOP, 1, 0x34, "")
	BSET  = rInst("bset", opOP, 1, 0x14, "")
	BCLRI = shiftInst("bclri", opOP_IMM, 1, 0x24, ShapeIShift)
	BEXTI = shiftInst("bexti", opOP_IMM, 5, 0x24, ShapeIShift)
	BINVI = shiftInst("binvi", opOP_IMM, 1, 0x34, ShapeIShift)
	BSETI = shiftInst("bseti", opOP_IMM, 1, 0x14, ShapeIShift)

	CZERO_EQZ = rInst("czero.eqz", opOP, 5, 0x07, "")
	CZERO_NEZ = rInst("czero.nez", opOP, 7, 0x07, "")
)

// Vector funct3 categories.
const (
	vOPIVV uint32 = 0
	vOPIVI uint32 = 3
	vOPIVX uint32 = 4
	vOPCFG uint32 = 7
)

// V subset.
var (
	VSETVLI = Inst{"vsetvli", opOP_V | vOPCFG<<12, ShapeVSETVLI, ""}

	VLE8_V  = Inst{"vle8.v", opLOAD_FP | 0<<12, ShapeVLS, "v"}
	VLE16_V = Inst{"vle16.v", opLOAD_FP | 5<<12, ShapeVLS, "v"}
	VLE32_V = Inst{"vle32.v", opLOAD_FP | 6<<12, ShapeVLS, "v"}
	VLE64_V = Inst{"vle64.v", opLOAD_FP | 7<<12, ShapeVLS, "v"}
	VSE8_V  = Inst{"vse8.v", opSTORE_FP | 0<<12, ShapeVLS, "v"}
	VSE16_V = Inst{"vse16.v", opSTORE_FP | 5<<12, ShapeVLS, "v"}
	VSE32_V = Inst{"vse32.v", opSTORE_FP | 6<<12, ShapeVLS, "v"}
	VSE64_V = Inst{"vse64.v", opSTORE_FP | 7<<12, ShapeVLS, "v"}

	VADD_VV  = vInst("vadd.vv", vOPIVV, 0b000000, ShapeVV, "vvv")
	VADD_VX  = vInst("vadd.vx", vOPIVX, 0b000000, ShapeVX, "vvx")
	VADD_VI  = vInst("vadd.vi", vOPIVI, 0b000000, ShapeVI, "vv")
	VSUB_VV  = vInst("vsub.vv", vOPIVV, 0b000010, ShapeVV, "vvv")
	VSUB_VX  = vInst("vsub.vx", vOPIVX, 0b000010, ShapeVX, "vvx")
	VAND_VV  = vInst("vand.vv", vOPIVV, 0b001001, ShapeVV, "vvv")
	VAND_VX  = vInst("vand.vx", vOPIVX, 0b001001, ShapeVX, "vvx")
	VAND_VI  = vInst("vand.vi", vOPIVI, 0b001001, ShapeVI, "vv")
	VOR_VV   = vInst("vor.vv", vOPIVV, 0b001010, ShapeVV, "vvv")
	VOR_VX   = vInst("vor.vx", vOPIVX, 0b001010, ShapeVX, "vvx")
	VOR_VI   = vInst("vor.vi", vOPIVI, 0b001010, ShapeVI, "vv")
	VXOR_VV  = vInst("vxor.vv", vOPIVV, 0b001011, ShapeVV, "vvv")
	VXOR_VX  = vInst("vxor.vx", vOPIVX, 0b001011, ShapeVX, "vvx")
	VXOR_VI  = vInst("vxor.vi", vOPIVI, 0b001011, ShapeVI, "vv")
	VMSEQ_VV = vInst("vmseq.vv", vOPIVV, 0b011000, ShapeVV, "vvv")
	VMSEQ_VX = vInst("vmseq.vx", vOPIVX, 0b011000, ShapeVX, "vvx")
	VMSEQ_VI = vInst("vmseq.vi", vOPIVI, 0b011000, ShapeVI, "vv")
	VMV_V_V  = vInst("vmv.v.v", vOPIVV, 0b010111, ShapeVV, "vvv")
	VMV_V_X  = vInst("vmv.v.x", vOPIVX, 0b010111, ShapeVX, "vvx")
	VMV_V_I  = vInst("vmv.v.i", vOPIVI, 0b010111, ShapeVI, "vv")
)

// C and Zcb.
var (
	C_ADDI4SPN = cInst("c.addi4spn", 0x0000, ShapeCIW, "")
	C_FLD      = cInst("c.fld", 0x2000, ShapeCL8, "f")
	C_LW       = cInst("c.lw", 0x4000, ShapeCL4, "")
	C_FLW      = cInst("c.flw", 0x6000, ShapeCL4, "f")
	C_LD       = cInst("c.ld", 0x6000, ShapeCL8, "")
	C_LBU      = cInst("c.lbu", 0x8000, ShapeCLB, "")
	C_LHU      = cInst("c.lhu", 0x8400, ShapeCLH, "")
	C_LH       = cInst("c.lh", 0x8440, ShapeCLH, "")
	C_SB       = cInst("c.sb", 0x8800, ShapeCSB, "")
	C_SH       = cInst("c.sh", 0x8C00, ShapeCSH, "")
	C_FSD      = cInst("c.fsd", 0xA000, ShapeCS8, "f")
	C_SW       = cInst("c.sw", 0xC000, ShapeCS4, "")
	C_FSW      = cInst("c.fsw", 0xE000, ShapeCS4, "f")
	C_SD       = cInst("c.sd", 0xE000, ShapeCS8, "")

	C_ADDI     = cInst("c.addi", 0x0001, ShapeCI, "")
	C_JAL      = cInst("c.jal", 0x2001, ShapeCJ, "")
	C_ADDIW    = cInst("c.addiw", 0x2001, ShapeCI, "")
	C_LI       = cInst("c.li", 0x4001, ShapeCI, "")
	C_ADDI16SP = cInst("c.addi16sp", 0x6101, ShapeCI16SP, "")
	C_LUI      = cInst("c.lui", 0x6001, ShapeCILUI, "")
	C_SRLI     = cInst("c.srli", 0x8001, ShapeCBShift, "")
	C_SRAI     = cInst("c.srai", 0x8401, ShapeCBShift, "")
	C_ANDI     = cInst("c.andi", 0x8801, ShapeCBAndi, "")
	C_SUB      = cInst("c.sub", 0x8C01, ShapeCA, "")
	C_XOR      = cInst("c.xor", 0x8C21, ShapeCA, "")
	C_OR       = cInst("c.or", 0x8C41, ShapeCA, "")
	C_AND      = cInst("c.and", 0x8C61, ShapeCA, "")
	C_SUBW     = cInst("c.subw", 0x9C01, ShapeCA, "")
	C_ADDW     = cInst("c.addw", 0x9C21, ShapeCA, "")
	C_MUL      = cInst("c.mul", 0x9C41, ShapeCA, "")
	C_ZEXT_B   = cInst("c.zext.b", 0x9C61, ShapeCU, "")
	C_SEXT_B   = cInst("c.sext.b", 0x9C65, ShapeCU, "")
	C_ZEXT_H   = cInst("c.zext.h", 0x9C69, ShapeCU, "")
	C_SEXT_H   = cInst("c.sext.h", 0x9C6D, ShapeCU, "")
	C_ZEXT_W   = cInst("c.zext.w", 0x9C71, ShapeCU, "")
	C_NOT      = cInst("c.not", 0x9C75, ShapeCU, "")
	C_J        = cInst("c.j", 0xA001, ShapeCJ, "")
	C_BEQZ     = cInst("c.beqz", 0xC001, ShapeCB, "")
	C_BNEZ     = cInst("c.bnez", 0xE001, ShapeCB, "")

	C_SLLI   = cInst("c.slli", 0x0002, ShapeCIShift, "")
	C_FLDSP  = cInst("c.fldsp", 0x2002, ShapeCILoad8, "f")
	C_LWSP   = cInst("c.lwsp", 0x4002, ShapeCILoad4, "")
	C_FLWSP  = cInst("c.flwsp", 0x6002, ShapeCILoad4, "f")
	C_LDSP   = cInst("c.ldsp", 0x6002, ShapeCILoad8, "")
	C_JR     = cInst("c.jr", 0x8002, ShapeCR, "")
	C_MV     = cInst("c.mv", 0x8002, ShapeCR, "")
	C_EBREAK = cInst("c.ebreak", 0x9002, ShapeCR, "")
	C_JALR   = cInst("c.jalr", 0x9002, ShapeCR, "")
	C_ADD    = cInst("c.add", 0x9002, ShapeCR, "")
	C_FSDSP  = cInst("c.fsdsp", 0xA002, ShapeCSS8, "f")
	C_SWSP   = cInst("c.swsp", 0xC002, ShapeCSS4, "")
	C_FSWSP  = cInst("c.fswsp", 0xE002, ShapeCSS4, "f")
	C_SDSP   = cInst("c.sdsp", 0xE002, ShapeCSS8, "")
)
