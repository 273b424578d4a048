//go:build unix

package execmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func mapSingle(size, page int) (*Region, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("execmem: mmap: %w", err)
	}
	return &Region{
		exec:  mem,
		write: mem,
		addr:  uintptr(unsafe.Pointer(&mem[0])),
		page:  page,
		fd:    -1,
	}, nil
}

func protect(mem []byte, exec bool) error {
	prot := unix.PROT_READ | unix.PROT_WRITE
	if exec {
		prot = unix.PROT_READ | unix.PROT_EXEC
	}
	return unix.Mprotect(mem, prot)
}

func unmap(r *Region) error {
	var first error
	if r.dual {
		first = unix.Munmap(r.write)
	}
	if err := unix.Munmap(r.exec); err != nil && first == nil {
		first = err
	}
	if r.fd >= 0 {
		if err := unix.Close(r.fd); err != nil && first == nil {
			first = err
		}
	}
	return first
}
