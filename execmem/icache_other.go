//go:build !(linux && riscv64) && !loong64

package execmem

// Hosts without a JIT target here (x86 keeps fetch coherent) need nothing.
func flushIcache(start, end uintptr) {}
