package simd

import "encoding/binary"

const swarMask = 0x8080808080808080

// IndexByte returns the index of the first occurrence of c in s at or
// after from, or -1. It strides through s in ChunkWidth()-byte blocks
// (the CPU-feature-gated word width: wider on machines that report
// AVX2/SSE2/ASIMD), testing each 8-byte lane within a block with the
// classic SWAR (SIMD-within-a-register) zero-byte-detection trick: XOR
// every lane with a word broadcast of c so a matching byte becomes zero,
// then test `(x-0x01010101...) & ^x & 0x80808080...`, which is nonzero
// iff some lane underflowed through zero.
func IndexByte(s []byte, c byte, from int) int {
	width := ChunkWidth()
	needle := uint64(c) * 0x0101010101010101
	i := from

	for ; i+width <= len(s); i += width {
		for w := 0; w < width; w += 8 {
			word := binary.LittleEndian.Uint64(s[i+w : i+w+8])
			x := word ^ needle
			if hasZeroByte(x) {
				return i + w + firstZeroByteLane(x)
			}
		}
	}
	for ; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func hasZeroByte(x uint64) bool {
	return (x-0x0101010101010101)&^x&swarMask != 0
}

// firstZeroByteLane returns the lane index (0-7, little-endian) of the
// first zero byte in x, assuming hasZeroByte(x) is true.
func firstZeroByteLane(x uint64) int {
	for lane := 0; lane < 8; lane++ {
		if byte(x>>(8*lane)) == 0 {
			return lane
		}
	}
	return -1
}

// IndexByte2 returns the first index at or after from where s holds c1 or
// c2, or -1, stopping at either of two distinguished bytes without
// building a full bitmap. Like IndexByte, it strides in ChunkWidth()-byte
// blocks.
func IndexByte2(s []byte, c1, c2 byte, from int) int {
	width := ChunkWidth()
	n1 := uint64(c1) * 0x0101010101010101
	n2 := uint64(c2) * 0x0101010101010101
	i := from

	for ; i+width <= len(s); i += width {
		for w := 0; w < width; w += 8 {
			word := binary.LittleEndian.Uint64(s[i+w : i+w+8])
			x1, x2 := word^n1, word^n2
			hit1, hit2 := hasZeroByte(x1), hasZeroByte(x2)
			if !hit1 && !hit2 {
				continue
			}
			lane1, lane2 := 8, 8
			if hit1 {
				lane1 = firstZeroByteLane(x1)
			}
			if hit2 {
				lane2 = firstZeroByteLane(x2)
			}
			if lane1 < lane2 {
				return i + w + lane1
			}
			return i + w + lane2
		}
	}
	for ; i < len(s); i++ {
		if s[i] == c1 || s[i] == c2 {
			return i
		}
	}
	return -1
}
