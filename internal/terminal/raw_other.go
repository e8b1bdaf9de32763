//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package terminal

func makeRaw(int) (func() error, error) {
	return nil, ErrUnsupported
}
