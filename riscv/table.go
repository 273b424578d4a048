package riscv

import (
	"fmt"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"golang.org/x/exp/slices"
)

// Family groups the descriptors that one capability predicate enables.
type Family struct {
	Name      string
	Supported func(Capabilities) bool
	Insts     []Inst
}

func always(Capabilities) bool   { return true }
func rv64(c Capabilities) bool   { return c.RV64 }
func hasC(c Capabilities) bool   { return c.C }
func hasZcb(c Capabilities) bool { return c.C && c.Zcb }

func hasHalf(c Capabilities) bool { return c.F && (c.Zfh || c.Zfhmin) }

var families = []Family{
	{"I", always, []Inst{
		LUI, AUIPC, JAL, JALR, BEQ, BNE, BLT, BGE, BLTU, BGEU,
		LB, LH, LW, LBU, LHU, SB, SH, SW,
		ADDI, SLTI, SLTIU, XORI, ORI, ANDI, SLLI, SRLI, SRAI,
		ADD, SUB, SLL, SLT, SLTU, XOR, SRL, SRA, OR, AND,
		FENCE, FENCE_TSO, FENCE_I, ECALL, EBREAK,
	}},
	{"I64", rv64, []Inst{
		LWU, LD, SD, ADDIW, SLLIW, SRLIW, SRAIW, ADDW, SUBW, SLLW, SRLW, SRAW,
	}},
	{"Zmmul", func(c Capabilities) bool { return c.Mul() }, []Inst{MUL, MULH, MULHSU, MULHU}},
	{"Zmmul64", func(c Capabilities) bool { return c.Mul() && c.RV64 }, []Inst{MULW}},
	{"M", func(c Capabilities) bool { return c.M }, []Inst{DIV, DIVU, REM, REMU}},
	{"M64", func(c Capabilities) bool { return c.M && c.RV64 }, []Inst{DIVW, DIVUW, REMW, REMUW}},
	{"A", func(c Capabilities) bool { return c.A }, []Inst{
		LR_W, SC_W, AMOSWAP_W, AMOADD_W, AMOXOR_W, AMOAND_W, AMOOR_W,
		AMOMIN_W, AMOMAX_W, AMOMINU_W, AMOMAXU_W,
	}},
	{"A64", func(c Capabilities) bool { return c.A && c.RV64 }, []Inst{
		LR_D, SC_D, AMOSWAP_D, AMOADD_D, AMOXOR_D, AMOAND_D, AMOOR_D,
		AMOMIN_D, AMOMAX_D, AMOMINU_D, AMOMAXU_D,
	}},
	{"F", func(c Capabilities) bool { return c.F }, []Inst{
		FLW, FSW, FADD_S, FSUB_S, FMUL_S, FDIV_S, FSQRT_S, FSGNJ_S, FSGNJN_S, FSGNJX_S,
		FMIN_S, FMAX_S, FEQ_S, FLT_S, FLE_S, FCLASS_S, FMV_X_W, FMV_W_X,
		FCVT_W_S, FCVT_WU_S, FCVT_S_W, FCVT_S_WU, FMADD_S, FMSUB_S, FNMSUB_S, FNMADD_S,
	}},
	{"F64", func(c Capabilities) bool { return c.F && c.RV64 }, []Inst{
		FCVT_L_S, FCVT_LU_S, FCVT_S_L, FCVT_S_LU,
	}},
	{"D", func(c Capabilities) bool { return c.D }, []Inst{
		FLD, FSD, FADD_D, FSUB_D, FMUL_D, FDIV_D, FSQRT_D, FSGNJ_D, FSGNJN_D, FSGNJX_D,
		FMIN_D, FMAX_D, FEQ_D, FLT_D, FLE_D, FCLASS_D,
		FCVT_W_D, FCVT_WU_D, FCVT_D_W, FCVT_D_WU, FCVT_S_D, FCVT_D_S,
		FMADD_D, FMSUB_D, FNMSUB_D, FNMADD_D,
	}},
	{"D64", func(c Capabilities) bool { return c.D && c.RV64 }, []Inst{
		FMV_X_D, FMV_D_X, FCVT_L_D, FCVT_LU_D, FCVT_D_L, FCVT_D_LU,
	}},
	{"Zfhmin", hasHalf, []Inst{FLH, FSH, FMV_X_H, FMV_H_X, FCVT_S_H, FCVT_H_S}},
	{"Zfhmin+D", func(c Capabilities) bool { return hasHalf(c) && c.D }, []Inst{FCVT_D_H, FCVT_H_D}},
	{"Zfh", func(c Capabilities) bool { return c.F && c.Zfh }, []Inst{
		FADD_H, FSUB_H, FMUL_H, FDIV_H, FSQRT_H, FMIN_H, FMAX_H, FEQ_H, FLT_H, FLE_H,
	}},
	{"Zfa", func(c Capabilities) bool { return c.F && c.Zfa }, []Inst{
		FLI_S, FMINM_S, FMAXM_S, FROUND_S, FROUNDNX_S, FLEQ_S, FLTQ_S,
	}},
	{"Zfa+D", func(c Capabilities) bool { return c.D && c.Zfa }, []Inst{
		FLI_D, FMINM_D, FMAXM_D, FROUND_D, FROUNDNX_D, FLEQ_D, FLTQ_D,
	}},
	{"Zfa+Zfh", func(c Capabilities) bool { return c.F && c.Zfa && c.Zfh }, []Inst{
		FLI_H, FMINM_H, FMAXM_H, FROUND_H, FROUNDNX_H,
	}},
	{"Zicsr", func(c Capabilities) bool { return c.Zicsr }, []Inst{
		CSRRW, CSRRS, CSRRC, CSRRWI, CSRRSI, CSRRCI,
	}},
	{"Zba", func(c Capabilities) bool { return c.Zba }, []Inst{SH1ADD, SH2ADD, SH3ADD}},
	{"Zba64", func(c Capabilities) bool { return c.Zba && c.RV64 }, []Inst{
		ADD_UW, SH1ADD_UW, SH2ADD_UW, SH3ADD_UW, SLLI_UW,
	}},
	{"Zbb", func(c Capabilities) bool { return c.Zbb }, []Inst{
		ANDN, ORN, XNOR, CLZ, CTZ, CPOP, SEXT_B, SEXT_H, MAX, MAXU, MIN, MINU,
		ROL, ROR, RORI, ORC_B,
	}},
	{"Zbb64", func(c Capabilities) bool { return c.Zbb && c.RV64 }, []Inst{
		CLZW, CTZW, CPOPW, ROLW, RORW, RORIW, ZEXT_H, REV8,
	}},
	{"Zbb32", func(c Capabilities) bool { return c.Zbb && !c.RV64 }, []Inst{ZEXT_H32, REV8_32}},
	{"Zbc", func(c Capabilities) bool { return c.Zbc }, []Inst{CLMUL, CLMULR, CLMULH}},
	{"Zbs", func(c Capabilities) bool { return c.Zbs }, []Inst{
		BCLR, BEXT, BINV, BSET, BCLRI, BEXTI, BINVI, BSETI,
	}},
	{"Zicond", func(c Capabilities) bool { return c.Zicond }, []Inst{CZERO_EQZ, CZERO_NEZ}},
	{"V", func(c Capabilities) bool { return c.V }, []Inst{
		VSETVLI, VLE8_V, VLE16_V, VLE32_V, VLE64_V, VSE8_V, VSE16_V, VSE32_V, VSE64_V,
		VADD_VV, VADD_VX, VADD_VI, VSUB_VV, VSUB_VX, VAND_VV, VAND_VX, VAND_VI,
		VOR_VV, VOR_VX, VOR_VI, VXOR_VV, VXOR_VX, VXOR_VI,
		VMSEQ_VV, VMSEQ_VX, VMSEQ_VI, VMV_V_V, VMV_V_X, VMV_V_I,
	}},
	{"C", hasC, []Inst{
		C_ADDI4SPN, C_LW, C_SW, C_ADDI, C_LI, C_ADDI16SP, C_LUI, C_SRLI, C_SRAI, C_ANDI,
		C_SUB, C_XOR, C_OR, C_AND, C_J, C_BEQZ, C_BNEZ,
		C_SLLI, C_LWSP, C_SWSP, C_JR, C_MV, C_EBREAK, C_JALR, C_ADD,
	}},
	{"C32", func(c Capabilities) bool { return c.C && !c.RV64 }, []Inst{C_JAL}},
	{"C64", func(c Capabilities) bool { return c.C && c.RV64 }, []Inst{
		C_LD, C_SD, C_LDSP, C_SDSP, C_ADDIW, C_ADDW, C_SUBW,
	}},
	{"CF32", func(c Capabilities) bool { return c.C && c.F && !c.RV64 }, []Inst{
		C_FLW, C_FSW, C_FLWSP, C_FSWSP,
	}},
	{"CD", func(c Capabilities) bool { return c.C && c.D }, []Inst{
		C_FLD, C_FSD, C_FLDSP, C_FSDSP,
	}},
	{"Zcb", hasZcb, []Inst{C_LBU, C_LHU, C_LH, C_SB, C_SH, C_ZEXT_B, C_NOT}},
	{"Zcb+M", func(c Capabilities) bool { return hasZcb(c) && c.Mul() }, []Inst{C_MUL}},
	{"Zcb+Zbb", func(c Capabilities) bool { return hasZcb(c) && c.Zbb }, []Inst{
		C_SEXT_B, C_ZEXT_H, C_SEXT_H,
	}},
	{"Zcb+Zba64", func(c Capabilities) bool { return hasZcb(c) && c.Zba && c.RV64 }, []Inst{C_ZEXT_W}},
}

var (
	byName   = map[string][]int{}
	byInst   = map[Inst][]int{}
	mnemonic []string
)

func init() {
	for fi, f := range families {
		for _, in := range f.Insts {
			if _, ok := byName[in.Name]; !ok {
				mnemonic = append(mnemonic, in.Name)
			}
			byName[in.Name] = append(byName[in.Name], fi)
			byInst[in] = append(byInst[in], fi)
		}
	}
	slices.Sort(mnemonic)
}

// Families lists every descriptor family in table order.
func Families() []Family { return slices.Clone(families) }

// Mnemonics returns every known mnemonic, sorted.
func Mnemonics() []string { return slices.Clone(mnemonic) }

// Lookup finds the descriptor for name that caps supports. A known mnemonic
// whose families are all unsupported yields ErrUUnsupported.
func Lookup(caps Capabilities, name string) (Inst, error) {
	fams, ok := byName[name]
	if !ok {
		return Inst{}, fmt.Errorf("unknown mnemonic %q", name)
	}
	for _, fi := range fams {
		if !families[fi].Supported(caps) {
			continue
		}
		for _, in := range families[fi].Insts {
			if in.Name == name {
				return in, nil
			}
		}
	}
	return Inst{}, &jiterrors.EmitError{Op: name, Err: jiterrors.ErrUUnsupported, Detail: "needs " + families[fams[0]].Name}
}

// Supported reports whether caps enables in.
func Supported(caps Capabilities, in Inst) bool {
	for _, fi := range byInst[in] {
		if families[fi].Supported(caps) {
			return true
		}
	}
	return false
}

func (e *Emitter) requireInst(in Inst) {
	if !Supported(e.caps, in) {
		fams := byInst[in]
		need := "an unknown family"
		if len(fams) > 0 {
			need = families[fams[0]].Name
		}
		e.require(in.Name, false, need)
	}
}

// Emit32 writes a word encoded elsewhere for in, after checking that the
// target supports in. No compression is attempted.
func (e *Emitter) Emit32(in Inst, w uint32) {
	e.requireInst(in)
	e.write32(in, w)
}

func (e *Emitter) Emit16(in Inst, w uint16) {
	e.requireInst(in)
	e.write16(in, w)
}

// EmitBranch emits any B-type branch to dst; EmitBranchFixup leaves the
// target open.
func (e *Emitter) EmitBranch(in Inst, rs1, rs2 Reg, dst uintptr) {
	e.requireInst(in)
	e.branch(in, rs1, rs2, dst)
}

func (e *Emitter) EmitBranchFixup(in Inst, rs1, rs2 Reg) emitter.FixupBranch {
	e.requireInst(in)
	return e.branchFixup(in, rs1, rs2)
}
