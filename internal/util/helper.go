package util

// CopyTerminated copies src into dst as a zero-terminated byte string.
//
// At most len(dst)-1 bytes of src are copied, followed by a single 0 byte, so dst always holds
// a terminated (possibly truncated) copy. It returns the number of bytes of src copied,
// excluding the terminator. Nothing is written if dst is empty.
func CopyTerminated(dst []byte, src string) int {
	if len(dst) == 0 {
		return 0
	}
	n := copy(dst[:len(dst)-1], src)
	dst[n] = 0

	return n
}

// TerminatedString returns the bytes of b up to, but not including, the first 0 byte.
// All of b is returned if it holds no terminator.
func TerminatedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
