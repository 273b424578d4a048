package execmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func mapDual(name string, size, page int) (*Region, error) {
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("memfd_create: %w", err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("ftruncate: %w", err)
	}
	write, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("mmap rw: %w", err)
	}
	exec, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_EXEC, unix.MAP_SHARED)
	if err != nil {
		unix.Munmap(write)
		unix.Close(fd)
		return nil, fmt.Errorf("mmap rx: %w", err)
	}
	return &Region{
		exec:  exec,
		write: write,
		addr:  uintptr(unsafe.Pointer(&exec[0])),
		page:  page,
		dual:  true,
		fd:    fd,
	}, nil
}
