// Package execmem provides executable memory for the emitters. On Linux a
// memfd is mapped twice, once read-write and once read-execute, so code is
// never writable and executable through the same address.
package execmem

import (
	"errors"
	"fmt"
	"os"

	"github.com/colorfulnotion/jit/log"
)

var ErrClosed = errors.New("execmem: region closed")

// Region is an emitter.Region backed by real pages.
type Region struct {
	exec  []byte // read-execute view
	write []byte // read-write view; aliases exec when single mapped
	addr  uintptr
	page  int
	dual  bool
	fd    int

	sealed  bool
	flushes int
}

// Options tune New. The zero value asks for a dual mapping and falls back
// to a single mapping that is toggled between RW and RX.
type Options struct {
	Name         string // memfd name, shown in /proc/self/maps
	SingleMapped bool
}

// New maps at least size bytes, rounded up to whole pages.
func New(size int, opts Options) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("execmem: size %d", size)
	}
	page := os.Getpagesize()
	size = (size + page - 1) &^ (page - 1)
	if opts.Name == "" {
		opts.Name = "jit"
	}
	if !opts.SingleMapped {
		r, err := mapDual(opts.Name, size, page)
		if err == nil {
			log.Debug(log.ExecMemMonitoring, "dual mapping", "name", opts.Name, "size", size,
				"exec", fmt.Sprintf("%#x", r.addr), "write", fmt.Sprintf("%p", &r.write[0]))
			return r, nil
		}
		log.Warn(log.ExecMemMonitoring, "dual mapping unavailable, using single mapping", "err", err)
	}
	r, err := mapSingle(size, page)
	if err != nil {
		return nil, err
	}
	log.Debug(log.ExecMemMonitoring, "single mapping", "size", size, "addr", fmt.Sprintf("%#x", r.addr))
	return r, nil
}

func (r *Region) ExecAddr() uintptr { return r.addr }
func (r *Region) Writable() []byte  { return r.write }
func (r *Region) PageSize() int     { return r.page }
func (r *Region) Size() int         { return len(r.exec) }

// Dual reports whether the region has separate write and exec views.
func (r *Region) Dual() bool { return r.dual }

// Exec returns the read-execute view.
func (r *Region) Exec() []byte { return r.exec }

// FlushIcache makes [start, end) coherent for instruction fetch.
func (r *Region) FlushIcache(start, end uintptr) {
	if end <= start {
		return
	}
	r.flushes++
	flushIcache(start, end)
	log.Trace(log.ExecMemMonitoring, "flush", "start", fmt.Sprintf("%#x", start), "end", fmt.Sprintf("%#x", end))
}

// Flushes counts FlushIcache calls.
func (r *Region) Flushes() int { return r.flushes }

// Seal makes a single-mapped region executable and read-only. It is a no-op
// for a dual mapping, whose exec view never changes protection.
func (r *Region) Seal() error {
	if r.exec == nil {
		return ErrClosed
	}
	if r.dual || r.sealed {
		return nil
	}
	if err := protect(r.exec, true); err != nil {
		return fmt.Errorf("execmem: seal: %w", err)
	}
	r.sealed = true
	return nil
}

// Unseal makes a single-mapped region writable again.
func (r *Region) Unseal() error {
	if r.exec == nil {
		return ErrClosed
	}
	if r.dual || !r.sealed {
		return nil
	}
	if err := protect(r.exec, false); err != nil {
		return fmt.Errorf("execmem: unseal: %w", err)
	}
	r.sealed = false
	return nil
}

func (r *Region) Sealed() bool { return r.sealed }

// Close unmaps both views.
func (r *Region) Close() error {
	if r.exec == nil {
		return ErrClosed
	}
	err := unmap(r)
	r.exec, r.write = nil, nil
	log.Debug(log.ExecMemMonitoring, "unmapped", "addr", fmt.Sprintf("%#x", r.addr), "err", err)
	return err
}
