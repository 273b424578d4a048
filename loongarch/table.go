package loongarch

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

func always(Capabilities) bool { return true }

var families = []Family{
	{"base", always, []Inst{
		ADD_W, ADD_D, SUB_W, SUB_D, SLT, SLTU, MASKEQZ, MASKNEZ,
		NOR, AND, OR, XOR, ORN, ANDN, ALSL_W, ALSL_WU, ALSL_D,
		ADDI_W, ADDI_D, ADDU16I_D, SLTI, SLTUI, ANDI, ORI, XORI,
		LU12I_W, LU32I_D, LU52I_D, PCADDI, PCADDU12I, PCADDU18I, PCALAU12I,
		MUL_W, MULH_W, MULH_WU, MUL_D, MULH_D, MULH_DU, MULW_D_W, MULW_D_WU,
		DIV_W, MOD_W, DIV_WU, MOD_WU, DIV_D, MOD_D, DIV_DU, MOD_DU,
		SLL_W, SRL_W, SRA_W, ROTR_W, SLL_D, SRL_D, SRA_D, ROTR_D,
		SLLI_W, SRLI_W, SRAI_W, ROTRI_W, SLLI_D, SRLI_D, SRAI_D, ROTRI_D,
		EXT_W_B, EXT_W_H, CLO_W, CLZ_W, CTO_W, CTZ_W, CLO_D, CLZ_D, CTO_D, CTZ_D,
		REVB_2H, REVB_4H, REVB_2W, REVB_D, BITREV_4B, BITREV_8B, BITREV_W, BITREV_D,
		BYTEPICK_W, BYTEPICK_D, BSTRINS_W, BSTRPICK_W, BSTRINS_D, BSTRPICK_D,
		BEQ, BNE, BLT, BGE, BLTU, BGEU, BEQZ, BNEZ, B, BL, JIRL,
		LD_B, LD_H, LD_W, LD_D, LD_BU, LD_HU, LD_WU, ST_B, ST_H, ST_W, ST_D,
		LDX_B, LDX_H, LDX_W, LDX_D, LDX_BU, LDX_HU, LDX_WU, STX_B, STX_H, STX_W, STX_D,
		LDPTR_W, LDPTR_D, STPTR_W, STPTR_D, LL_W, SC_W, LL_D, SC_D, PRELD, PRELDX,
		SYSCALL, BREAK, DBAR, IBAR, ASRTLE_D, ASRTGT_D,
		RDTIMEL_W, RDTIMEH_W, RDTIME_D, CPUCFG,
	}},
	{"LAM", func(c Capabilities) bool { return c.LAM }, []Inst{
		AMSWAP_W, AMSWAP_D, AMADD_W, AMADD_D, AMAND_W, AMAND_D, AMOR_W, AMOR_D,
		AMXOR_W, AMXOR_D, AMMAX_W, AMMAX_D, AMMIN_W, AMMIN_D,
		AMMAX_WU, AMMAX_DU, AMMIN_WU, AMMIN_DU,
		AMSWAP_DB_W, AMSWAP_DB_D, AMADD_DB_W, AMADD_DB_D, AMAND_DB_W, AMAND_DB_D,
		AMOR_DB_W, AMOR_DB_D, AMXOR_DB_W, AMXOR_DB_D, AMMAX_DB_W, AMMAX_DB_D,
		AMMIN_DB_W, AMMIN_DB_D, AMMAX_DB_WU, AMMAX_DB_DU, AMMIN_DB_WU, AMMIN_DB_DU,
	}},
	{"CRC32", func(c Capabilities) bool { return c.CRC32 }, []Inst{
		CRC_W_B_W, CRC_W_H_W, CRC_W_W_W, CRC_W_D_W,
		CRCC_W_B_W, CRCC_W_H_W, CRCC_W_W_W, CRCC_W_D_W,
	}},
	{"FPU", func(c Capabilities) bool { return c.FPU }, []Inst{
		FADD_S, FADD_D, FSUB_S, FSUB_D, FMUL_S, FMUL_D, FDIV_S, FDIV_D,
		FMAX_S, FMAX_D, FMIN_S, FMIN_D, FMAXA_S, FMAXA_D, FMINA_S, FMINA_D,
		FSCALEB_S, FSCALEB_D, FCOPYSIGN_S, FCOPYSIGN_D,
		FMADD_S, FMADD_D, FMSUB_S, FMSUB_D, FNMADD_S, FNMADD_D, FNMSUB_S, FNMSUB_D,
		FABS_S, FABS_D, FNEG_S, FNEG_D, FLOGB_S, FLOGB_D, FCLASS_S, FCLASS_D,
		FSQRT_S, FSQRT_D, FRECIP_S, FRECIP_D, FRSQRT_S, FRSQRT_D, FMOV_S, FMOV_D,
		FCVT_S_D, FCVT_D_S, FFINT_S_W, FFINT_S_L, FFINT_D_W, FFINT_D_L,
		FTINT_W_S, FTINT_W_D, FTINT_L_S, FTINT_L_D,
		FTINTRZ_W_S, FTINTRZ_W_D, FTINTRZ_L_S, FTINTRZ_L_D, FRINT_S, FRINT_D,
		FCMP_COND_S, FCMP_COND_D, FSEL,
		MOVGR2FR_W, MOVGR2FR_D, MOVGR2FRH_W, MOVFR2GR_S, MOVFR2GR_D,
		MOVGR2FCSR, MOVFCSR2GR, MOVFR2CF, MOVCF2FR, MOVGR2CF, MOVCF2GR,
		BCEQZ, BCNEZ, FLD_S, FLD_D, FST_S, FST_D, FLDX_S, FLDX_D, FSTX_S, FSTX_D,
	}},
	{"LSX", func(c Capabilities) bool { return c.LSX }, []Inst{
		VLD, VST, VLDX, VSTX, VLDI,
		VADD_B, VADD_H, VADD_W, VADD_D, VSUB_B, VSUB_H, VSUB_W, VSUB_D,
		VMUL_W, VSEQ_W, VAND_V, VOR_V, VXOR_V, VNOR_V, VFADD_S, VFMUL_S,
		VFMADD_S, VBITSEL_V,
		VREPLGR2VR_B, VREPLGR2VR_H, VREPLGR2VR_W, VREPLGR2VR_D, VSEQI_W,
		VSLLI_W, VSLLI_D, VSRLI_W, VSRLI_D, VREPLVEI_W, VREPLVEI_D,
		VINSGR2VR_B, VINSGR2VR_H, VINSGR2VR_W, VINSGR2VR_D,
		VPICKVE2GR_W, VPICKVE2GR_D, VPICKVE2GR_WU, VPICKVE2GR_DU,
	}},
}

var (
	byName   = map[string]int{}
	byInst   = map[Inst]int{}
	mnemonic []string
)

func init() {
	for fi, f := range families {
		for _, in := range f.Insts {
			if _, dup := byName[in.Name]; dup {
				panic(fmt.Sprintf("loongarch: mnemonic %s listed twice", in.Name))
			}
			byName[in.Name] = fi
			byInst[in] = fi
			mnemonic = append(mnemonic, in.Name)
		}
	}
	slices.Sort(mnemonic)
}

func Families() []Family { return slices.Clone(families) }

// Mnemonics returns every known mnemonic, sorted.
func Mnemonics() []string { return slices.Clone(mnemonic) }

// Lookup finds the descriptor for name. A known mnemonic whose family caps
// does not enable yields ErrUUnsupported.
func Lookup(caps Capabilities, name string) (Inst, error) {
	fi, ok := byName[name]
	if !ok {
		return Inst{}, fmt.Errorf("unknown mnemonic %q", name)
	}
	if !families[fi].Supported(caps) {
		return Inst{}, &jiterrors.EmitError{Op: name, Err: jiterrors.ErrUUnsupported, Detail: "needs " + families[fi].Name}
	}
	for _, in := range families[fi].Insts {
		if in.Name == name {
			return in, nil
		}
	}
	return Inst{}, fmt.Errorf("unknown mnemonic %q", name)
}

// Supported reports whether caps enables in.
func Supported(caps Capabilities, in Inst) bool {
	fi, ok := byInst[in]
	return ok && families[fi].Supported(caps)
}

func (e *Emitter) requireInst(in Inst) {
	if fi, ok := byInst[in]; !ok {
		e.require(in.Name, false, "an unknown family")
	} else if !families[fi].Supported(e.caps) {
		e.require(in.Name, false, families[fi].Name)
	}
}

// Emit32 writes a word encoded elsewhere for in, after checking that the
// target supports in.
func (e *Emitter) Emit32(in Inst, w uint32) {
	e.requireInst(in)
	e.write32(in, w)
}

// EmitBranch emits any two-register compare branch to dst.
func (e *Emitter) EmitBranch(in Inst, rj, rd Reg, dst uintptr) {
	e.requireInst(in)
	e.branch(in, rj, rd, dst)
}

func (e *Emitter) EmitBranchFixup(in Inst, rj, rd Reg) emitter.FixupBranch {
	e.requireInst(in)
	return e.branchFixup(in, rj, rd)
}
