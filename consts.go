package biguint

const (
	maxUint64 = 1<<64 - 1

	wordBits = 64

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)

	// decimalChunk is the largest power of ten that fits in a limb, and
	// decimalChunkDigits its number of zeros.
	decimalChunk       = 10000000000000000000
	decimalChunkDigits = 19
)
