package loongarch

import (
	"fmt"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/colorfulnotion/jit/log"
)

// Branch kinds. Displacements are in bytes.
const (
	KindB emitter.Kind = iota
	KindBZ
	KindCBZ
	KindJ
)

var branchKinds = []emitter.BranchKind{
	KindB:   {Name: "B", Width: 18, Align: 4},
	KindBZ:  {Name: "BZ", Width: 23, Align: 4},
	KindCBZ: {Name: "CBZ", Width: 23, Align: 4},
	KindJ:   {Name: "J", Width: 28, Align: 4},
}

func BranchKinds() []emitter.BranchKind { return branchKinds }

// Emitter writes LoongArch64 machine code into a Region. Not safe for
// concurrent use.
type Emitter struct {
	emitter.Cursor
	caps   Capabilities
	fixups *emitter.Fixups
}

func NewEmitter(region emitter.Region, caps Capabilities) *Emitter {
	e := &Emitter{
		caps:   caps,
		fixups: emitter.NewFixups(branchKinds),
	}
	e.Init(region)
	return e
}

func (e *Emitter) Capabilities() Capabilities { return e.caps }

func (e *Emitter) write32(in Inst, w uint32) {
	if log.ModuleEnabled(log.LoongArchEmit) {
		log.Trace(log.LoongArchEmit, in.Name, "addr", fmt.Sprintf("%#x", e.CodePointer()), "word", fmt.Sprintf("%08x", w))
	}
	e.Write32(w)
}

func (e *Emitter) require(op string, ok bool, ext string) {
	if !ok {
		jiterrors.Failf(op, "", jiterrors.ErrUUnsupported, "needs %s on %s", ext, e.caps)
	}
}

func (e *Emitter) requireNotZero(in Inst, rd Reg) {
	if rd == ZERO {
		jiterrors.Failf(in.Name, "rd", jiterrors.ErrEHintWrite, "write to zero")
	}
}

func (e *Emitter) inRange(k emitter.Kind, dst uintptr) bool {
	bk := branchKinds[k]
	disp := int64(dst) - int64(e.CodePointer())
	return int64(dst)%4 == 0 && bk.Aligned(disp) && bk.InRange(disp)
}

func (e *Emitter) displacement(in Inst, k emitter.Kind, dst uintptr) int32 {
	return int32(branchKinds[k].Displacement(in.Name, e.CodePointer(), dst, 4))
}

// ReserveCodeSpace fills n bytes with BREAK 0 and returns where they start.
func (e *Emitter) ReserveCodeSpace(n int) uintptr {
	start := e.CodePointer()
	if n&3 != 0 {
		jiterrors.Failf("reserve", "bytes", jiterrors.ErrRImmAlign, "%d bytes", n)
	}
	for i := 0; i < n/4; i++ {
		e.BREAK(0)
	}
	return start
}

func (e *Emitter) AlignCode16() uintptr {
	return e.Align(16, func(n int) { e.ReserveCodeSpace(n) })
}

func (e *Emitter) AlignCodePage() uintptr {
	return e.Align(e.Region().PageSize(), func(n int) { e.ReserveCodeSpace(n) })
}

// SetJumpTarget patches a pending branch to reach target.
func (e *Emitter) SetJumpTarget(fb emitter.FixupBranch, target uintptr) {
	addr := fb.Addr()
	switch fb.Kind() {
	case KindB:
		disp := e.fixups.Resolve("B", fb, target, 4)
		e.PatchWord32(addr, e.Word32At(addr)&0xFC0003FF|(uint32(disp>>2)&0xFFFF)<<10)
	case KindBZ, KindCBZ:
		disp := e.fixups.Resolve(branchKinds[fb.Kind()].Name, fb, target, 4)
		e.PatchWord32(addr, e.Word32At(addr)&0xFC0003E0|offs21(uint32(disp>>2)))
	case KindJ:
		disp := e.fixups.Resolve("J", fb, target, 4)
		e.PatchWord32(addr, e.Word32At(addr)&0xFC000000|offs26(uint32(disp>>2)))
	default:
		jiterrors.Failf("fixup", "kind", jiterrors.ErrFFixupResolved, "unknown kind %d", fb.Kind())
	}
}

func (e *Emitter) SetJumpTargetHere(fb emitter.FixupBranch) {
	e.SetJumpTarget(fb, e.CodePointer())
}

// DiscardFixup drops a pending fixup, leaving its branch pointing at itself.
func (e *Emitter) DiscardFixup(fb emitter.FixupBranch) { e.fixups.Discard(fb) }

func (e *Emitter) PendingFixups() []emitter.FixupBranch { return e.fixups.Pending() }

func (e *Emitter) CheckFixups() error { return e.fixups.Check() }

// Release ends a compilation unit; unresolved fixups are a bug.
func (e *Emitter) Release() {
	if err := e.fixups.Check(); err != nil {
		panic(err)
	}
}

func (e *Emitter) openFixup(k emitter.Kind) emitter.FixupBranch {
	return e.fixups.Open(e.CodePointer(), k)
}

// fixup32 writes an already encoded branch word and opens its fixup.
func (e *Emitter) fixup32(in Inst, k emitter.Kind, w uint32) emitter.FixupBranch {
	fb := e.openFixup(k)
	e.write32(in, w)
	return fb
}
