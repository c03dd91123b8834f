// nolint
//go:build linux
// +build linux

package proctitle

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// commNameMax is TASK_COMM_LEN - 1: the kernel truncates comm to 15 bytes.
const commNameMax = 15

func setComm(name string) error {
	b := make([]byte, commNameMax+1)
	copy(b, name)

	err := unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&b[0])), 0, 0, 0)
	runtime.KeepAlive(b)

	return err
}
