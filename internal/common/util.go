package common

// WipeByteArray overwrites b with zeros. It is nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
