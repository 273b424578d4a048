package emitter

import (
	"github.com/colorfulnotion/jit/jiterrors"
)

// Kind indexes an ISA's BranchKind table.
type Kind uint8

// BranchKind describes the displacement field of one branch family: a
// signed byte displacement of Width bits that must be a multiple of Align.
type BranchKind struct {
	Name  string
	Width int
	Align int64
}

func (k BranchKind) InRange(disp int64) bool { return FitsSigned(disp, k.Width) }
func (k BranchKind) Aligned(disp int64) bool { return disp%k.Align == 0 }

// Displacement validates a branch at src targeting dst and returns dst-src.
// targetAlign is the instruction alignment the target must honour, which
// may be stricter than the field's own scale.
func (k BranchKind) Displacement(op string, src, dst uintptr, targetAlign int64) int64 {
	if int64(dst)%targetAlign != 0 {
		jiterrors.Failf(op, "target", jiterrors.ErrRBranchAlign, "%#x not %d-byte aligned", dst, targetAlign)
	}
	disp := int64(dst) - int64(src)
	if !k.Aligned(disp) {
		jiterrors.Failf(op, "target", jiterrors.ErrRBranchAlign, "displacement %d not a multiple of %d", disp, k.Align)
	}
	if !k.InRange(disp) {
		jiterrors.Failf(op, "target", jiterrors.ErrRBranchRange, "%#x -> %#x (%d) exceeds %s %d-bit range", src, dst, disp, k.Name, k.Width)
	}
	return disp
}
