package utils

const (
	bitSize       = 32 << (^uint(0) >> 63)
	maxIntHeadBit = 1 << (bitSize - 2)
)

// CeilToPowerOfTwo returns n if it is a power of two, otherwise the next power of two.
// Values up to 2 return 2. Panics if the result would overflow int.
func CeilToPowerOfTwo(n int) int {
	if n > maxIntHeadBit {
		panic("argument is too large")
	}
	if n <= 2 {
		return 2
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
