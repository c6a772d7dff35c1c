package mem

import "runtime"

// ZeroBytes overwrites b with zeros. runtime.KeepAlive keeps the stores from
// being eliminated as dead. Copies made earlier by the runtime are not reached.
func ZeroBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(b)
}

// ZeroAll zeroes every slice in order.
func ZeroAll(bufs ...[]byte) {
	for _, b := range bufs {
		ZeroBytes(b)
	}
}
