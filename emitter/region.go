package emitter

// Region is executable memory handed to an emitter. The exec view is where
// the code will run; Writable is the same bytes seen through a writable
// mapping (possibly a different virtual address under W^X).
type Region interface {
	ExecAddr() uintptr
	Writable() []byte
	PageSize() int
	FlushIcache(execStart, execEnd uintptr)
}

// FlushRange is one FlushIcache call recorded by SliceRegion.
type FlushRange struct {
	Start, End uintptr
}

// SliceRegion is a heap-backed Region. Code written into it is never run
// on the host; tools and tests pick the exec address it pretends to live at.
type SliceRegion struct {
	Base    uintptr
	Buf     []byte
	Page    int
	Flushes []FlushRange
}

func NewSliceRegion(base uintptr, size int) *SliceRegion {
	return &SliceRegion{Base: base, Buf: make([]byte, size), Page: 4096}
}

func (r *SliceRegion) ExecAddr() uintptr { return r.Base }
func (r *SliceRegion) Writable() []byte  { return r.Buf }
func (r *SliceRegion) PageSize() int     { return r.Page }

func (r *SliceRegion) FlushIcache(start, end uintptr) {
	r.Flushes = append(r.Flushes, FlushRange{start, end})
}
