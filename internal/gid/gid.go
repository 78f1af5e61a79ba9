// Package gid extracts the calling goroutine's runtime id.
//
// There is no supported API for this; the id is scraped out of the header
// line of runtime.Stack, the same trick used by most goroutine-affinity
// checks in the wild. It is only used for diagnosing misuse (resuming a
// coroutine from a goroutine other than the one driving it), never for
// scheduling decisions.
package gid

import "runtime"

// Current returns the id of the calling goroutine.
func Current() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] < '0' || buf[i] > '9' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}
