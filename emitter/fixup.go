package emitter

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/jit/jiterrors"
	"github.com/colorfulnotion/jit/log"
	"github.com/google/btree"
)

// FixupBranch is the handle returned when a branch is emitted before its
// target is known. It stays pending in the emitter's Fixups until resolved
// or discarded; a second resolve of the same handle fails.
type FixupBranch struct {
	addr uintptr
	kind Kind
}

func (f FixupBranch) Addr() uintptr { return f.addr }
func (f FixupBranch) Kind() Kind    { return f.kind }

func (f FixupBranch) String() string { return fmt.Sprintf("%#x/%d", f.addr, f.kind) }

// Fixups is the arena of pending branch sites, ordered by code address.
type Fixups struct {
	kinds    []BranchKind
	pending  *btree.BTreeG[FixupBranch]
	opened   int
	resolved int
}

func NewFixups(kinds []BranchKind) *Fixups {
	return &Fixups{
		kinds: kinds,
		pending: btree.NewG[FixupBranch](8, func(a, b FixupBranch) bool {
			return a.addr < b.addr
		}),
	}
}

// BranchKind returns the descriptor of k.
func (f *Fixups) BranchKind(k Kind) BranchKind { return f.kinds[k] }

// Open records a branch word about to be written at addr. A site still
// pending at addr means the code under it was rewound and overwritten.
func (f *Fixups) Open(addr uintptr, kind Kind) FixupBranch {
	fb := FixupBranch{addr: addr, kind: kind}
	if prev, ok := f.pending.Get(fb); ok {
		jiterrors.Failf("open", "fixup", jiterrors.ErrFFixupUnresolved, "site %s overwritten while pending", prev)
	}
	f.pending.ReplaceOrInsert(fb)
	f.opened++
	log.Debug(log.FixupMonitoring, "fixup open", "site", fb, "kind", f.kinds[kind].Name)
	return fb
}

// Resolve validates a pending fixup against target and retires it. The
// caller patches the displacement it returns into the word at fb.Addr().
func (f *Fixups) Resolve(op string, fb FixupBranch, target uintptr, targetAlign int64) int64 {
	cur, ok := f.pending.Get(fb)
	if !ok || cur.kind != fb.kind {
		jiterrors.Failf(op, "fixup", jiterrors.ErrFFixupResolved, "site %s", fb)
	}
	disp := f.kinds[fb.kind].Displacement(op, fb.addr, target, targetAlign)
	f.pending.Delete(fb)
	f.resolved++
	log.Debug(log.FixupMonitoring, "fixup resolved", "site", fb, "target", fmt.Sprintf("%#x", target), "disp", disp)
	return disp
}

// Discard retires a pending fixup without patching it; the word keeps
// its zero displacement.
func (f *Fixups) Discard(fb FixupBranch) {
	cur, ok := f.pending.Get(fb)
	if !ok || cur.kind != fb.kind {
		jiterrors.Failf("discard", "fixup", jiterrors.ErrFFixupResolved, "site %s", fb)
	}
	f.pending.Delete(fb)
	log.Debug(log.FixupMonitoring, "fixup discarded", "site", fb)
}

func (f *Fixups) IsPending(fb FixupBranch) bool {
	cur, ok := f.pending.Get(fb)
	return ok && cur.kind == fb.kind
}

func (f *Fixups) Len() int { return f.pending.Len() }

// Pending lists open sites in address order.
func (f *Fixups) Pending() []FixupBranch {
	out := make([]FixupBranch, 0, f.pending.Len())
	f.pending.Ascend(func(fb FixupBranch) bool {
		out = append(out, fb)
		return true
	})
	return out
}

// Stats returns how many fixups were opened and resolved.
func (f *Fixups) Stats() (opened, resolved int) { return f.opened, f.resolved }

// Check fails if any fixup is still open.
func (f *Fixups) Check() error {
	if f.pending.Len() == 0 {
		return nil
	}
	sites := make([]string, 0, f.pending.Len())
	for _, fb := range f.Pending() {
		sites = append(sites, fmt.Sprintf("%s@%#x", f.kinds[fb.kind].Name, fb.addr))
	}
	return fmt.Errorf("%w: %d open [%s]", jiterrors.ErrFFixupUnresolved, len(sites), strings.Join(sites, " "))
}
