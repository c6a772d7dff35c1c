//go:build !linux

package priority

func RaiseCurrentThread(int) error {
	return ErrUnsupported
}

func CurrentThread() (int, error) {
	return 0, ErrUnsupported
}
