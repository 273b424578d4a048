package loongarch

import "fmt"

// Shape names an encoding layout. Field letters follow the ISA manual:
// D/J/K/A are register fields at bits 0/5/10/15, S/U a signed/unsigned
// immediate, and the trailing ps2 marks an offset stored divided by 4.
type Shape uint8

const (
	ShapeDJK         Shape = iota // rd, rj, rk
	ShapeDJKUa2pp1                // rd, rj, rk, sa2 in 1..4 stored minus one
	ShapeDJKUa2                   // rd, rj, rk, sa2
	ShapeDJKUa3                   // rd, rj, rk, sa3
	ShapeDJ                       // rd, rj
	ShapeJK                       // rj, rk
	ShapeDJSk12                   // rd, rj, si12
	ShapeDJUk12                   // rd, rj, ui12
	ShapeDJSk16                   // rd, rj, si16
	ShapeDSj20                    // rd, si20
	ShapeDJUk5                    // rd, rj, ui5
	ShapeDJUk6                    // rd, rj, ui6
	ShapeDJUk5Um5                 // rd, rj, msbw, lsbw
	ShapeDJUk6Um6                 // rd, rj, msbd, lsbd
	ShapeJDSk16ps2                // rj, rd, 18-bit branch offset
	ShapeDJSk16ps2                // rd, rj, 18-bit jump offset
	ShapeJSd5k16ps2               // rj, 23-bit branch offset
	ShapeSd10k16ps2               // 28-bit branch offset
	ShapeDJSk14ps2                // rd, rj, 16-bit offset multiple of 4
	ShapeUd5JSk12                 // hint, rj, si12
	ShapeUd5JK                    // hint, rj, rk
	ShapeDKJ                      // rd, rk, rj
	ShapeUd15                     // code
	ShapeFdFjFk                   // fd, fj, fk
	ShapeFdFjFkFa                 // fd, fj, fk, fa
	ShapeFdFj                     // fd, fj
	ShapeCdFjFkFcond              // cd, fj, fk, cond
	ShapeFdFjFkCa                 // fd, fj, fk, ca
	ShapeFdJ                      // fd, rj
	ShapeDFj                      // rd, fj
	ShapeJUd5                     // fcsr, rj
	ShapeDUj5                     // rd, fcsr
	ShapeCdFj                     // cd, fj
	ShapeFdCj                     // fd, cj
	ShapeCdJ                      // cd, rj
	ShapeDCj                      // rd, cj
	ShapeCjSd5k16ps2              // cj, 23-bit branch offset
	ShapeFdJSk12                  // fd, rj, si12
	ShapeFdJK                     // fd, rj, rk
	ShapeVdVjVk                   // vd, vj, vk
	ShapeVdVjVkVa                 // vd, vj, vk, va
	ShapeVdJSk12                  // vd, rj, si12
	ShapeVdJK                     // vd, rj, rk
	ShapeVdSj13                   // vd, i13
	ShapeVdJ                      // vd, rj
	ShapeVdVjUk                   // vd, vj, unsigned immediate of Width bits
	ShapeVdVjSk5                  // vd, vj, si5
	ShapeVdJUk                    // vd, rj, lane index of Width bits
	ShapeDVjUk                    // rd, vj, lane index of Width bits
)

var shapeNames = [...]string{
	"DJK", "DJKUa2pp1", "DJKUa2", "DJKUa3", "DJ", "JK", "DJSk12", "DJUk12", "DJSk16", "DSj20",
	"DJUk5", "DJUk6", "DJUk5Um5", "DJUk6Um6", "JDSk16ps2", "DJSk16ps2", "JSd5k16ps2", "Sd10k16ps2",
	"DJSk14ps2", "Ud5JSk12", "Ud5JK", "DKJ", "Ud15",
	"FdFjFk", "FdFjFkFa", "FdFj", "CdFjFkFcond", "FdFjFkCa", "FdJ", "DFj", "JUd5", "DUj5",
	"CdFj", "FdCj", "CdJ", "DCj", "CjSd5k16ps2", "FdJSk12", "FdJK",
	"VdVjVk", "VdVjVkVa", "VdJSk12", "VdJK", "VdSj13", "VdJ", "VdVjUk", "VdVjSk5", "VdJUk", "DVjUk",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "shape?"
}

// Inst is a named instruction: the fixed bits of its word and the layout
// of its operand fields. Width is the immediate width of the variable
// vector shapes and zero elsewhere.
type Inst struct {
	Name  string
	Match uint32
	Shape Shape
	Width uint8
}

func inst(name string, match uint32, shape Shape) Inst { return Inst{name, match, shape, 0} }

func vimm(name string, match uint32, shape Shape, width uint8) Inst {
	return Inst{name, match, shape, width}
}

// Integer arithmetic and logic.
var (
	ADD_W     = inst("add.w", 0x00100000, ShapeDJK)
	ADD_D     = inst("add.d", 0x00108000, ShapeDJK)
	SUB_W     = inst("sub.w", 0x00110000, ShapeDJK)
	SUB_D     = inst("sub.d", 0x00118000, ShapeDJK)
	ADDI_W    = inst("addi.w", 0x02800000, ShapeDJSk12)
	ADDI_D    = inst("addi.d", 0x02c00000, ShapeDJSk12)
	ADDU16I_D = inst("addu16i.d", 0x10000000, ShapeDJSk16)
	ALSL_W    = inst("alsl.w", 0x00040000, ShapeDJKUa2pp1)
	ALSL_WU   = inst("alsl.wu", 0x00060000, ShapeDJKUa2pp1)
	ALSL_D    = inst("alsl.d", 0x002c0000, ShapeDJKUa2pp1)
	LU12I_W   = inst("lu12i.w", 0x14000000, ShapeDSj20)
	LU32I_D   = inst("lu32i.d", 0x16000000, ShapeDSj20)
	LU52I_D   = inst("lu52i.d", 0x03000000, ShapeDJSk12)
	SLT       = inst("slt", 0x00120000, ShapeDJK)
	SLTU      = inst("sltu", 0x00128000, ShapeDJK)
	SLTI      = inst("slti", 0x02000000, ShapeDJSk12)
	SLTUI     = inst("sltui", 0x02400000, ShapeDJSk12)
	PCADDI    = inst("pcaddi", 0x18000000, ShapeDSj20)
	PCADDU12I = inst("pcaddu12i", 0x1c000000, ShapeDSj20)
	PCADDU18I = inst("pcaddu18i", 0x1e000000, ShapeDSj20)
	PCALAU12I = inst("pcalau12i", 0x1a000000, ShapeDSj20)
	AND       = inst("and", 0x00148000, ShapeDJK)
	OR        = inst("or", 0x00150000, ShapeDJK)
	NOR       = inst("nor", 0x00140000, ShapeDJK)
	XOR       = inst("xor", 0x00158000, ShapeDJK)
	ANDN      = inst("andn", 0x00168000, ShapeDJK)
	ORN       = inst("orn", 0x00160000, ShapeDJK)
	ANDI      = inst("andi", 0x03400000, ShapeDJUk12)
	ORI       = inst("ori", 0x03800000, ShapeDJUk12)
	XORI      = inst("xori", 0x03c00000, ShapeDJUk12)
	MASKEQZ   = inst("maskeqz", 0x00130000, ShapeDJK)
	MASKNEZ   = inst("masknez", 0x00138000, ShapeDJK)
)

// Multiply and divide.
var (
	MUL_W     = inst("mul.w", 0x001c0000, ShapeDJK)
	MULH_W    = inst("mulh.w", 0x001c8000, ShapeDJK)
	MULH_WU   = inst("mulh.wu", 0x001d0000, ShapeDJK)
	MUL_D     = inst("mul.d", 0x001d8000, ShapeDJK)
	MULH_D    = inst("mulh.d", 0x001e0000, ShapeDJK)
	MULH_DU   = inst("mulh.du", 0x001e8000, ShapeDJK)
	MULW_D_W  = inst("mulw.d.w", 0x001f0000, ShapeDJK)
	MULW_D_WU = inst("mulw.d.wu", 0x001f8000, ShapeDJK)
	DIV_W     = inst("div.w", 0x00200000, ShapeDJK)
	MOD_W     = inst("mod.w", 0x00208000, ShapeDJK)
	DIV_WU    = inst("div.wu", 0x00210000, ShapeDJK)
	MOD_WU    = inst("mod.wu", 0x00218000, ShapeDJK)
	DIV_D     = inst("div.d", 0x00220000, ShapeDJK)
	MOD_D     = inst("mod.d", 0x00228000, ShapeDJK)
	DIV_DU    = inst("div.du", 0x00230000, ShapeDJK)
	MOD_DU    = inst("mod.du", 0x00238000, ShapeDJK)
)

// Shifts.
var (
	SLL_W   = inst("sll.w", 0x00170000, ShapeDJK)
	SRL_W   = inst("srl.w", 0x00178000, ShapeDJK)
	SRA_W   = inst("sra.w", 0x00180000, ShapeDJK)
	ROTR_W  = inst("rotr.w", 0x001b0000, ShapeDJK)
	SLL_D   = inst("sll.d", 0x00188000, ShapeDJK)
	SRL_D   = inst("srl.d", 0x00190000, ShapeDJK)
	SRA_D   = inst("sra.d", 0x00198000, ShapeDJK)
	ROTR_D  = inst("rotr.d", 0x001b8000, ShapeDJK)
	SLLI_W  = inst("slli.w", 0x00408000, ShapeDJUk5)
	SRLI_W  = inst("srli.w", 0x00448000, ShapeDJUk5)
	SRAI_W  = inst("srai.w", 0x00488000, ShapeDJUk5)
	ROTRI_W = inst("rotri.w", 0x004c8000, ShapeDJUk5)
	SLLI_D  = inst("slli.d", 0x00410000, ShapeDJUk6)
	SRLI_D  = inst("srli.d", 0x00450000, ShapeDJUk6)
	SRAI_D  = inst("srai.d", 0x00490000, ShapeDJUk6)
	ROTRI_D = inst("rotri.d", 0x004d0000, ShapeDJUk6)
)

// Bit manipulation.
var (
	EXT_W_B    = inst("ext.w.b", 0x00005c00, ShapeDJ)
	EXT_W_H    = inst("ext.w.h", 0x00005800, ShapeDJ)
	CLO_W      = inst("clo.w", 0x00001000, ShapeDJ)
	CLO_D      = inst("clo.d", 0x00002000, ShapeDJ)
	CLZ_W      = inst("clz.w", 0x00001400, ShapeDJ)
	CLZ_D      = inst("clz.d", 0x00002400, ShapeDJ)
	CTO_W      = inst("cto.w", 0x00001800, ShapeDJ)
	CTO_D      = inst("cto.d", 0x00002800, ShapeDJ)
	CTZ_W      = inst("ctz.w", 0x00001c00, ShapeDJ)
	CTZ_D      = inst("ctz.d", 0x00002c00, ShapeDJ)
	BYTEPICK_W = inst("bytepick.w", 0x00080000, ShapeDJKUa2)
	BYTEPICK_D = inst("bytepick.d", 0x000c0000, ShapeDJKUa3)
	REVB_2H    = inst("revb.2h", 0x00003000, ShapeDJ)
	REVB_4H    = inst("revb.4h", 0x00003400, ShapeDJ)
	REVB_2W    = inst("revb.2w", 0x00003800, ShapeDJ)
	REVB_D     = inst("revb.d", 0x00003c00, ShapeDJ)
	BITREV_4B  = inst("bitrev.4b", 0x00004800, ShapeDJ)
	BITREV_8B  = inst("bitrev.8b", 0x00004c00, ShapeDJ)
	BITREV_W   = inst("bitrev.w", 0x00005000, ShapeDJ)
	BITREV_D   = inst("bitrev.d", 0x00005400, ShapeDJ)
	BSTRINS_W  = inst("bstrins.w", 0x00600000, ShapeDJUk5Um5)
	BSTRPICK_W = inst("bstrpick.w", 0x00608000, ShapeDJUk5Um5)
	BSTRINS_D  = inst("bstrins.d", 0x00800000, ShapeDJUk6Um6)
	BSTRPICK_D = inst("bstrpick.d", 0x00c00000, ShapeDJUk6Um6)
)

// Branches.
var (
	BEQ  = inst("beq", 0x58000000, ShapeJDSk16ps2)
	BNE  = inst("bne", 0x5c000000, ShapeJDSk16ps2)
	BLT  = inst("blt", 0x60000000, ShapeJDSk16ps2)
	BGE  = inst("bge", 0x64000000, ShapeJDSk16ps2)
	BLTU = inst("bltu", 0x68000000, ShapeJDSk16ps2)
	BGEU = inst("bgeu", 0x6c000000, ShapeJDSk16ps2)
	BEQZ = inst("beqz", 0x40000000, ShapeJSd5k16ps2)
	BNEZ = inst("bnez", 0x44000000, ShapeJSd5k16ps2)
	B    = inst("b", 0x50000000, ShapeSd10k16ps2)
	BL   = inst("bl", 0x54000000, ShapeSd10k16ps2)
	JIRL = inst("jirl", 0x4c000000, ShapeDJSk16ps2)
)

// Loads and stores.
var (
	LD_B    = inst("ld.b", 0x28000000, ShapeDJSk12)
	LD_H    = inst("ld.h", 0x28400000, ShapeDJSk12)
	LD_W    = inst("ld.w", 0x28800000, ShapeDJSk12)
	LD_D    = inst("ld.d", 0x28c00000, ShapeDJSk12)
	LD_BU   = inst("ld.bu", 0x2a000000, ShapeDJSk12)
	LD_HU   = inst("ld.hu", 0x2a400000, ShapeDJSk12)
	LD_WU   = inst("ld.wu", 0x2a800000, ShapeDJSk12)
	ST_B    = inst("st.b", 0x29000000, ShapeDJSk12)
	ST_H    = inst("st.h", 0x29400000, ShapeDJSk12)
	ST_W    = inst("st.w", 0x29800000, ShapeDJSk12)
	ST_D    = inst("st.d", 0x29c00000, ShapeDJSk12)
	LDX_B   = inst("ldx.b", 0x38000000, ShapeDJK)
	LDX_H   = inst("ldx.h", 0x38040000, ShapeDJK)
	LDX_W   = inst("ldx.w", 0x38080000, ShapeDJK)
	LDX_D   = inst("ldx.d", 0x380c0000, ShapeDJK)
	LDX_BU  = inst("ldx.bu", 0x38200000, ShapeDJK)
	LDX_HU  = inst("ldx.hu", 0x38240000, ShapeDJK)
	LDX_WU  = inst("ldx.wu", 0x38280000, ShapeDJK)
	STX_B   = inst("stx.b", 0x38100000, ShapeDJK)
	STX_H   = inst("stx.h", 0x38140000, ShapeDJK)
	STX_W   = inst("stx.w", 0x38180000, ShapeDJK)
	STX_D   = inst("stx.d", 0x381c0000, ShapeDJK)
	LDPTR_W = inst("ldptr.w", 0x24000000, ShapeDJSk14ps2)
	LDPTR_D = inst("ldptr.d", 0x26000000, ShapeDJSk14ps2)
	STPTR_W = inst("stptr.w", 0x25000000, ShapeDJSk14ps2)
	STPTR_D = inst("stptr.d", 0x27000000, ShapeDJSk14ps2)
	LL_W    = inst("ll.w", 0x20000000, ShapeDJSk14ps2)
	SC_W    = inst("sc.w", 0x21000000, ShapeDJSk14ps2)
	LL_D    = inst("ll.d", 0x22000000, ShapeDJSk14ps2)
	SC_D    = inst("sc.d", 0x23000000, ShapeDJSk14ps2)
	PRELD   = inst("preld", 0x2ac00000, ShapeUd5JSk12)
	PRELDX  = inst("preldx", 0x382c0000, ShapeUd5JK)
)

// Atomic memory operations (LAM). Operands are rd, rk, rj.
var (
	AMSWAP_W    = inst("amswap.w", 0x38600000, ShapeDKJ)
	AMSWAP_D    = inst("amswap.d", 0x38608000, ShapeDKJ)
	AMADD_W     = inst("amadd.w", 0x38610000, ShapeDKJ)
	AMADD_D     = inst("amadd.d", 0x38618000, ShapeDKJ)
	AMAND_W     = inst("amand.w", 0x38620000, ShapeDKJ)
	AMAND_D     = inst("amand.d", 0x38628000, ShapeDKJ)
	AMOR_W      = inst("amor.w", 0x38630000, ShapeDKJ)
	AMOR_D      = inst("amor.d", 0x38638000, ShapeDKJ)
	AMXOR_W     = inst("amxor.w", 0x38640000, ShapeDKJ)
	AMXOR_D     = inst("amxor.d", 0x38648000, ShapeDKJ)
	AMMAX_W     = inst("ammax.w", 0x38650000, ShapeDKJ)
	AMMAX_D     = inst("ammax.d", 0x38658000, ShapeDKJ)
	AMMIN_W     = inst("ammin.w", 0x38660000, ShapeDKJ)
	AMMIN_D     = inst("ammin.d", 0x38668000, ShapeDKJ)
	AMMAX_WU    = inst("ammax.wu", 0x38670000, ShapeDKJ)
	AMMAX_DU    = inst("ammax.du", 0x38678000, ShapeDKJ)
	AMMIN_WU    = inst("ammin.wu", 0x38680000, ShapeDKJ)
	AMMIN_DU    = inst("ammin.du", 0x38688000, ShapeDKJ)
	AMSWAP_DB_W = inst("amswap_db.w", 0x38690000, ShapeDKJ)
	AMSWAP_DB_D = inst("amswap_db.d", 0x38698000, ShapeDKJ)
	AMADD_DB_W  = inst("amadd_db.w", 0x386a0000, ShapeDKJ)
	AMADD_DB_D  = inst("amadd_db.d", 0x386a8000, ShapeDKJ)
	AMAND_DB_W  = inst("amand_db.w", 0x386b0000, ShapeDKJ)
	AMAND_DB_D  = inst("amand_db.d", 0x386b8000, ShapeDKJ)
	AMOR_DB_W   = inst("amor_db.w", 0x386c0000, ShapeDKJ)
	AMOR_DB_D   = inst("amor_db.d", 0x386c8000, ShapeDKJ)
	AMXOR_DB_W  = inst("amxor_db.w", 0x386d0000, ShapeDKJ)
	AMXOR_DB_D  = inst("amxor_db.d", 0x386d8000, ShapeDKJ)
	AMMAX_DB_W  = inst("ammax_db.w", 0x386e0000, ShapeDKJ)
	AMMAX_DB_D  = inst("ammax_db.d", 0x386e8000, ShapeDKJ)
	AMMIN_DB_W  = inst("ammin_db.w", 0x386f0000, ShapeDKJ)
	AMMIN_DB_D  = inst("ammin_db.d", 0x386f8000, ShapeDKJ)
	AMMAX_DB_WU = inst("ammax_db.wu", 0x38700000, ShapeDKJ)
	AMMAX_DB_DU = inst("ammax_db.du", 0x38708000, ShapeDKJ)
	AMMIN_DB_WU = inst("ammin_db.wu", 0x38710000, ShapeDKJ)
	AMMIN_DB_DU = inst("ammin_db.du", 0x38718000, ShapeDKJ)
)

// CRC32.
var (
	CRC_W_B_W  = inst("crc.w.b.w", 0x00240000, ShapeDJK)
	CRC_W_H_W  = inst("crc.w.h.w", 0x00248000, ShapeDJK)
	CRC_W_W_W  = inst("crc.w.w.w", 0x00250000, ShapeDJK)
	CRC_W_D_W  = inst("crc.w.d.w", 0x00258000, ShapeDJK)
	CRCC_W_B_W = inst("crcc.w.b.w", 0x00260000, ShapeDJK)
	CRCC_W_H_W = inst("crcc.w.h.w", 0x00268000, ShapeDJK)
	CRCC_W_W_W = inst("crcc.w.w.w", 0x00270000, ShapeDJK)
	CRCC_W_D_W = inst("crcc.w.d.w", 0x00278000, ShapeDJK)
)

// System, barriers and counters.
var (
	SYSCALL   = inst("syscall", 0x002b0000, ShapeUd15)
	BREAK     = inst("break", 0x002a0000, ShapeUd15)
	DBAR      = inst("dbar", 0x38720000, ShapeUd15)
	IBAR      = inst("ibar", 0x38728000, ShapeUd15)
	ASRTLE_D  = inst("asrtle.d", 0x00010000, ShapeJK)
	ASRTGT_D  = inst("asrtgt.d", 0x00018000, ShapeJK)
	RDTIMEL_W = inst("rdtimel.w", 0x00006000, ShapeDJ)
	RDTIMEH_W = inst("rdtimeh.w", 0x00006400, ShapeDJ)
	RDTIME_D  = inst("rdtime.d", 0x00006800, ShapeDJ)
	CPUCFG    = inst("cpucfg", 0x00006c00, ShapeDJ)
)

// Floating point.
var (
	FADD_S      = inst("fadd.s", 0x01008000, ShapeFdFjFk)
	FADD_D      = inst("fadd.d", 0x01010000, ShapeFdFjFk)
	FSUB_S      = inst("fsub.s", 0x01028000, ShapeFdFjFk)
	FSUB_D      = inst("fsub.d", 0x01030000, ShapeFdFjFk)
	FMUL_S      = inst("fmul.s", 0x01048000, ShapeFdFjFk)
	FMUL_D      = inst("fmul.d", 0x01050000, ShapeFdFjFk)
	FDIV_S      = inst("fdiv.s", 0x01068000, ShapeFdFjFk)
	FDIV_D      = inst("fdiv.d", 0x01070000, ShapeFdFjFk)
	FMAX_S      = inst("fmax.s", 0x01088000, ShapeFdFjFk)
	FMAX_D      = inst("fmax.d", 0x01090000, ShapeFdFjFk)
	FMIN_S      = inst("fmin.s", 0x010a8000, ShapeFdFjFk)
	FMIN_D      = inst("fmin.d", 0x010b0000, ShapeFdFjFk)
	FMAXA_S     = inst("fmaxa.s", 0x010c8000, ShapeFdFjFk)
	FMAXA_D     = inst("fmaxa.d", 0x010d0000, ShapeFdFjFk)
	FMINA_S     = inst("fmina.s", 0x010e8000, ShapeFdFjFk)
	FMINA_D     = inst("fmina.d", 0x010f0000, ShapeFdFjFk)
	FSCALEB_S   = inst("fscaleb.s", 0x01108000, ShapeFdFjFk)
	FSCALEB_D   = inst("fscaleb.d", 0x01110000, ShapeFdFjFk)
	FCOPYSIGN_S = inst("fcopysign.s", 0x01128000, ShapeFdFjFk)
	FCOPYSIGN_D = inst("fcopysign.d", 0x01130000, ShapeFdFjFk)
	FMADD_S     = inst("fmadd.s", 0x08100000, ShapeFdFjFkFa)
	FMADD_D     = inst("fmadd.d", 0x08200000, ShapeFdFjFkFa)
	FMSUB_S     = inst("fmsub.s", 0x08500000, ShapeFdFjFkFa)
	FMSUB_D     = inst("fmsub.d", 0x08600000, ShapeFdFjFkFa)
	FNMADD_S    = inst("fnmadd.s", 0x08900000, ShapeFdFjFkFa)
	FNMADD_D    = inst("fnmadd.d", 0x08a00000, ShapeFdFjFkFa)
	FNMSUB_S    = inst("fnmsub.s", 0x08d00000, ShapeFdFjFkFa)
	FNMSUB_D    = inst("fnmsub.d", 0x08e00000, ShapeFdFjFkFa)
	FABS_S      = inst("fabs.s", 0x01140400, ShapeFdFj)
	FABS_D      = inst("fabs.d", 0x01140800, ShapeFdFj)
	FNEG_S      = inst("fneg.s", 0x01141400, ShapeFdFj)
	FNEG_D      = inst("fneg.d", 0x01141800, ShapeFdFj)
	FLOGB_S     = inst("flogb.s", 0x01142400, ShapeFdFj)
	FLOGB_D     = inst("flogb.d", 0x01142800, ShapeFdFj)
	FCLASS_S    = inst("fclass.s", 0x01143400, ShapeFdFj)
	FCLASS_D    = inst("fclass.d", 0x01143800, ShapeFdFj)
	FSQRT_S     = inst("fsqrt.s", 0x01144400, ShapeFdFj)
	FSQRT_D     = inst("fsqrt.d", 0x01144800, ShapeFdFj)
	FRECIP_S    = inst("frecip.s", 0x01145400, ShapeFdFj)
	FRECIP_D    = inst("frecip.d", 0x01145800, ShapeFdFj)
	FRSQRT_S    = inst("frsqrt.s", 0x01146400, ShapeFdFj)
	FRSQRT_D    = inst("frsqrt.d", 0x01146800, ShapeFdFj)
	FMOV_S      = inst("fmov.s", 0x01149400, ShapeFdFj)
	FMOV_D      = inst("fmov.d", 0x01149800, ShapeFdFj)
	FCVT_S_D    = inst("fcvt.s.d", 0x01191800, ShapeFdFj)
	FCVT_D_S    = inst("fcvt.d.s", 0x01192400, ShapeFdFj)
	FFINT_S_W   = inst("ffint.s.w", 0x011d1000, ShapeFdFj)
	FFINT_S_L   = inst("ffint.s.l", 0x011d1800, ShapeFdFj)
	FFINT_D_W   = inst("ffint.d.w", 0x011d2000, ShapeFdFj)
	FFINT_D_L   = inst("ffint.d.l", 0x011d2800, ShapeFdFj)
	FTINT_W_S   = inst("ftint.w.s", 0x011b0400, ShapeFdFj)
	FTINT_W_D   = inst("ftint.w.d", 0x011b0800, ShapeFdFj)
	FTINT_L_S   = inst("ftint.l.s", 0x011b2400, ShapeFdFj)
	FTINT_L_D   = inst("ftint.l.d", 0x011b2800, ShapeFdFj)
	FTINTRZ_W_S = inst("ftintrz.w.s", 0x011a8400, ShapeFdFj)
	FTINTRZ_W_D = inst("ftintrz.w.d", 0x011a8800, ShapeFdFj)
	FTINTRZ_L_S = inst("ftintrz.l.s", 0x011aa400, ShapeFdFj)
	FTINTRZ_L_D = inst("ftintrz.l.d", 0x011aa800, ShapeFdFj)
	FRINT_S     = inst("frint.s", 0x011e4400, ShapeFdFj)
	FRINT_D     = inst("frint.d", 0x011e4800, ShapeFdFj)
	FCMP_COND_S = inst("fcmp.cond.s", 0x0c100000, ShapeCdFjFkFcond)
	FCMP_COND_D = inst("fcmp.cond.d", 0x0c200000, ShapeCdFjFkFcond)
	FSEL        = inst("fsel", 0x0d000000, ShapeFdFjFkCa)
	MOVGR2FR_W  = inst("movgr2fr.w", 0x0114a400, ShapeFdJ)
	MOVGR2FR_D  = inst("movgr2fr.d", 0x0114a800, ShapeFdJ)
	MOVGR2FRH_W = inst("movgr2frh.w", 0x0114ac00, ShapeFdJ)
	MOVFR2GR_S  = inst("movfr2gr.s", 0x0114b400, ShapeDFj)
	MOVFR2GR_D  = inst("movfr2gr.d", 0x0114b800, ShapeDFj)
	MOVGR2FCSR  = inst("movgr2fcsr", 0x0114c000, ShapeJUd5)
	MOVFCSR2GR  = inst("movfcsr2gr", 0x0114c800, ShapeDUj5)
	MOVFR2CF    = inst("movfr2cf", 0x0114d000, ShapeCdFj)
	MOVCF2FR    = inst("movcf2fr", 0x0114d400, ShapeFdCj)
	MOVGR2CF    = inst("movgr2cf", 0x0114d800, ShapeCdJ)
	MOVCF2GR    = inst("movcf2gr", 0x0114dc00, ShapeDCj)
	BCEQZ       = inst("bceqz", 0x48000000, ShapeCjSd5k16ps2)
	BCNEZ       = inst("bcnez", 0x48000100, ShapeCjSd5k16ps2)
	FLD_S       = inst("fld.s", 0x2b000000, ShapeFdJSk12)
	FLD_D       = inst("fld.d", 0x2b800000, ShapeFdJSk12)
	FST_S       = inst("fst.s", 0x2b400000, ShapeFdJSk12)
	FST_D       = inst("fst.d", 0x2bc00000, ShapeFdJSk12)
	FLDX_S      = inst("fldx.s", 0x38300000, ShapeFdJK)
	FLDX_D      = inst("fldx.d", 0x38340000, ShapeFdJK)
	FSTX_S      = inst("fstx.s", 0x38380000, ShapeFdJK)
	FSTX_D      = inst("fstx.d", 0x383c0000, ShapeFdJK)
)

// LSX subset.
var (
	VLD           = inst("vld", 0x2c000000, ShapeVdJSk12)
	VST           = inst("vst", 0x2c400000, ShapeVdJSk12)
	VLDX          = inst("vldx", 0x38400000, ShapeVdJK)
	VSTX          = inst("vstx", 0x38440000, ShapeVdJK)
	VLDI          = inst("vldi", 0x73e00000, ShapeVdSj13)
	VADD_B        = inst("vadd.b", 0x700a0000, ShapeVdVjVk)
	VADD_H        = inst("vadd.h", 0x700a8000, ShapeVdVjVk)
	VADD_W        = inst("vadd.w", 0x700b0000, ShapeVdVjVk)
	VADD_D        = inst("vadd.d", 0x700b8000, ShapeVdVjVk)
	VSUB_B        = inst("vsub.b", 0x700c0000, ShapeVdVjVk)
	VSUB_H        = inst("vsub.h", 0x700c8000, ShapeVdVjVk)
	VSUB_W        = inst("vsub.w", 0x700d0000, ShapeVdVjVk)
	VSUB_D        = inst("vsub.d", 0x700d8000, ShapeVdVjVk)
	VMUL_W        = inst("vmul.w", 0x70850000, ShapeVdVjVk)
	VSEQ_W        = inst("vseq.w", 0x70010000, ShapeVdVjVk)
	VAND_V        = inst("vand.v", 0x71260000, ShapeVdVjVk)
	VOR_V         = inst("vor.v", 0x71268000, ShapeVdVjVk)
	VXOR_V        = inst("vxor.v", 0x71270000, ShapeVdVjVk)
	VNOR_V        = inst("vnor.v", 0x71278000, ShapeVdVjVk)
	VFADD_S       = inst("vfadd.s", 0x71308000, ShapeVdVjVk)
	VFMUL_S       = inst("vfmul.s", 0x71388000, ShapeVdVjVk)
	VFMADD_S      = inst("vfmadd.s", 0x09100000, ShapeVdVjVkVa)
	VBITSEL_V     = inst("vbitsel.v", 0x0d100000, ShapeVdVjVkVa)
	VREPLGR2VR_B  = inst("vreplgr2vr.b", 0x729f0000, ShapeVdJ)
	VREPLGR2VR_H  = inst("vreplgr2vr.h", 0x729f0400, ShapeVdJ)
	VREPLGR2VR_W  = inst("vreplgr2vr.w", 0x729f0800, ShapeVdJ)
	VREPLGR2VR_D  = inst("vreplgr2vr.d", 0x729f0c00, ShapeVdJ)
	VSEQI_W       = inst("vseqi.w", 0x72810000, ShapeVdVjSk5)
	VSLLI_W       = vimm("vslli.w", 0x732c8000, ShapeVdVjUk, 5)
	VSRLI_W       = vimm("vsrli.w", 0x73308000, ShapeVdVjUk, 5)
	VSLLI_D       = vimm("vslli.d", 0x732d0000, ShapeVdVjUk, 6)
	VSRLI_D       = vimm("vsrli.d", 0x73310000, ShapeVdVjUk, 6)
	VREPLVEI_W    = vimm("vreplvei.w", 0x72f7e000, ShapeVdVjUk, 2)
	VREPLVEI_D    = vimm("vreplvei.d", 0x72f7f000, ShapeVdVjUk, 1)
	VINSGR2VR_B   = vimm("vinsgr2vr.b", 0x72eb8000, ShapeVdJUk, 4)
	VINSGR2VR_H   = vimm("vinsgr2vr.h", 0x72ebc000, ShapeVdJUk, 3)
	VINSGR2VR_W   = vimm("vinsgr2vr.w", 0x72ebe000, ShapeVdJUk, 2)
	VINSGR2VR_D   = vimm("vinsgr2vr.d", 0x72ebf000, ShapeVdJUk, 1)
	VPICKVE2GR_W  = vimm("vpickve2gr.w", 0x72efe000, ShapeDVjUk, 2)
	VPICKVE2GR_D  = vimm("vpickve2gr.d", 0x72eff000, ShapeDVjUk, 1)
	VPICKVE2GR_WU = vimm("vpickve2gr.wu", 0x72f3e000, ShapeDVjUk, 2)
	VPICKVE2GR_DU = vimm("vpickve2gr.du", 0x72f3f000, ShapeDVjUk, 1)
)

// Fcond is the condition field of FCMP.cond. The S variants signal on
// quiet NaNs.
type Fcond uint32

const (
	CondCAF  Fcond = 0x00
	CondCUN  Fcond = 0x08
	CondCEQ  Fcond = 0x04
	CondCUEQ Fcond = 0x0C
	CondCLT  Fcond = 0x02
	CondCULT Fcond = 0x0A
	CondCLE  Fcond = 0x06
	CondCULE Fcond = 0x0E
	CondCNE  Fcond = 0x10
	CondCOR  Fcond = 0x14
	CondCUNE Fcond = 0x18
	CondSAF  Fcond = 0x01
	CondSUN  Fcond = 0x09
	CondSEQ  Fcond = 0x05
	CondSUEQ Fcond = 0x0D
	CondSLT  Fcond = 0x03
	CondSULT Fcond = 0x0B
	CondSLE  Fcond = 0x07
	CondSULE Fcond = 0x0F
	CondSNE  Fcond = 0x11
	CondSOR  Fcond = 0x15
	CondSUNE Fcond = 0x19
)

var fcondNames = map[Fcond]string{
	CondCAF: "caf", CondCUN: "cun", CondCEQ: "ceq", CondCUEQ: "cueq", CondCLT: "clt", CondCULT: "cult", CondCLE: "cle", CondCULE: "cule",
	CondCNE: "cne", CondCOR: "cor", CondCUNE: "cune",
	CondSAF: "saf", CondSUN: "sun", CondSEQ: "seq", CondSUEQ: "sueq", CondSLT: "slt", CondSULT: "sult", CondSLE: "sle", CondSULE: "sule",
	CondSNE: "sne", CondSOR: "sor", CondSUNE: "sune",
}

func (c Fcond) String() string {
	if n, ok := fcondNames[c]; ok {
		return n
	}
	return "fcond?"
}

// ParseFcond reads a condition name such as "clt" or "sune".
func ParseFcond(s string) (Fcond, error) {
	for c, n := range fcondNames {
		if n == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown fcmp condition %q", s)
}
