package emitter

import (
	"encoding/binary"

	"github.com/colorfulnotion/jit/jiterrors"
)

// Tracer observes every word the cursor stores. Optional.
type Tracer interface {
	Emitted(addr uintptr, size int, word uint32)
	Patched(addr uintptr, size int, word uint32)
	Flushed(start, end uintptr)
}

// Cursor is the append-only code buffer shared by the ISA emitters. It keeps
// one offset into a Region, so the exec address and the write slot always
// advance together.
type Cursor struct {
	region    Region
	base      uintptr
	buf       []byte
	off       int
	lastFlush int
	tracer    Tracer
}

// Init points the cursor at the start of r.
func (c *Cursor) Init(r Region) {
	c.region = r
	c.base = r.ExecAddr()
	c.buf = r.Writable()
	c.off = 0
	c.lastFlush = 0
}

func (c *Cursor) SetTracer(t Tracer) { c.tracer = t }

func (c *Cursor) Region() Region { return c.region }

// SetCodePointer moves the cursor to exec address addr inside the region.
func (c *Cursor) SetCodePointer(addr uintptr) {
	c.off = c.WritableOffset(addr)
	c.lastFlush = c.off
}

// CodePointer is the exec address the next word will be written at.
func (c *Cursor) CodePointer() uintptr { return c.base + uintptr(c.off) }

// Offset is the byte offset of the cursor from the region start.
func (c *Cursor) Offset() int { return c.off }

// WritableOffset maps an exec address to its index in the write view.
func (c *Cursor) WritableOffset(addr uintptr) int {
	if addr < c.base || addr > c.base+uintptr(len(c.buf)) {
		jiterrors.Failf("cursor", "addr", jiterrors.ErrEOperandConstraint,
			"%#x outside region [%#x, %#x)", addr, c.base, c.base+uintptr(len(c.buf)))
	}
	return int(addr - c.base)
}

// CodePtrFromWritableOffset maps a write view index back to its exec address.
func (c *Cursor) CodePtrFromWritableOffset(off int) uintptr {
	return c.base + uintptr(off)
}

func (c *Cursor) Write8(v uint8) {
	c.buf[c.off] = v
	if c.tracer != nil {
		c.tracer.Emitted(c.CodePointer(), 1, uint32(v))
	}
	c.off++
}

func (c *Cursor) Write16(v uint16) {
	binary.LittleEndian.PutUint16(c.buf[c.off:], v)
	if c.tracer != nil {
		c.tracer.Emitted(c.CodePointer(), 2, uint32(v))
	}
	c.off += 2
}

func (c *Cursor) Write32(v uint32) {
	binary.LittleEndian.PutUint32(c.buf[c.off:], v)
	if c.tracer != nil {
		c.tracer.Emitted(c.CodePointer(), 4, v)
	}
	c.off += 4
}

// Word32At reads the word at exec address addr through the write view.
func (c *Cursor) Word32At(addr uintptr) uint32 {
	off := c.WritableOffset(addr)
	return binary.LittleEndian.Uint32(c.buf[off:])
}

func (c *Cursor) Word16At(addr uintptr) uint16 {
	off := c.WritableOffset(addr)
	return binary.LittleEndian.Uint16(c.buf[off:])
}

// PatchWord32 stores w at exec address addr through the write view.
func (c *Cursor) PatchWord32(addr uintptr, w uint32) {
	off := c.WritableOffset(addr)
	binary.LittleEndian.PutUint32(c.buf[off:], w)
	if c.tracer != nil {
		c.tracer.Patched(addr, 4, w)
	}
}

func (c *Cursor) PatchWord16(addr uintptr, w uint16) {
	off := c.WritableOffset(addr)
	binary.LittleEndian.PutUint16(c.buf[off:], w)
	if c.tracer != nil {
		c.tracer.Patched(addr, 2, uint32(w))
	}
}

// Bytes returns the write view of [start, end).
func (c *Cursor) Bytes(start, end uintptr) []byte {
	return c.buf[c.WritableOffset(start):c.WritableOffset(end)]
}

// Code returns everything written from the region start up to the cursor.
func (c *Cursor) Code() []byte { return c.buf[:c.off] }

// Align pads with reserve until the cursor is a multiple of boundary and
// returns the aligned code pointer. boundary must be a power of two.
func (c *Cursor) Align(boundary int, reserve func(n int)) uintptr {
	if rem := int(c.CodePointer() & uintptr(boundary-1)); rem != 0 {
		reserve(boundary - rem)
	}
	return c.CodePointer()
}

// Flush makes everything written since the previous Flush visible to
// instruction fetch.
func (c *Cursor) Flush() {
	start, end := c.CodePtrFromWritableOffset(c.lastFlush), c.CodePointer()
	c.FlushIcacheSection(start, end)
	c.lastFlush = c.off
}

func (c *Cursor) FlushIcacheSection(start, end uintptr) {
	if end <= start {
		return
	}
	c.region.FlushIcache(start, end)
	if c.tracer != nil {
		c.tracer.Flushed(start, end)
	}
}
