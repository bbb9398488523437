//go:build linux

package sandbox

import (
	"golang.org/x/sys/unix"
)

func enter(maxFiles int) error {
	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return err
	}
	limit := unix.Rlimit{Cur: uint64(maxFiles), Max: uint64(maxFiles)}
	return unix.Setrlimit(unix.RLIMIT_NOFILE, &limit)
}
