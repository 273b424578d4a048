//go:build linux && riscv64

package execmem

import (
	"golang.org/x/sys/unix"

	"github.com/colorfulnotion/jit/log"
)

// riscv_flush_icache(start, end, flags); flags 0 covers every hart.
const sysRiscvFlushIcache = 259

func flushIcache(start, end uintptr) {
	if _, _, errno := unix.Syscall(sysRiscvFlushIcache, start, end, 0); errno != 0 {
		log.Error(log.ExecMemMonitoring, "riscv_flush_icache", "err", errno)
	}
}
