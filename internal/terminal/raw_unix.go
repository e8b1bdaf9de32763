//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// makeRaw clears ECHO and ICANON on fd and returns a func restoring the
// previous attributes.
func makeRaw(fd int) (func() error, error) {
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}

	raw := *saved
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &raw); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}

	return func() error {
		if err := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, saved); err != nil {
			return fmt.Errorf("restore terminal attributes: %w", err)
		}
		return nil
	}, nil
}
