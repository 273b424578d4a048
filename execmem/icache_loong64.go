//go:build loong64

package execmem

// ibar executes IBAR 0. Stores through the write view are already visible
// to the data side, so an instruction barrier is all fetch needs.
func ibar()

func flushIcache(start, end uintptr) { ibar() }
