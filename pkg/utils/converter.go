package utils

import "unsafe"

// StringToBytes returns a read-only byte view of s without allocating.
// The result must not be modified.
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString returns a string view of b without allocating.
// b must not be modified while the string is in use.
func BytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
