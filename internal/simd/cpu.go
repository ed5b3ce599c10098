package simd

import "golang.org/x/sys/cpu"

// ChunkWidth reports the word width, in bytes, the scalar kernels in this
// package should stride by. It mirrors the teacher's hasAVX2-gated
// dispatch shape (simd/ascii_amd64.go vs ascii_generic.go) even though
// every kernel here is portable Go: wider strides still pay off on a
// machine whose cache lines and load/store units are sized for them.
func ChunkWidth() int {
	switch {
	case cpu.X86.HasAVX2:
		return 32
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 16
	default:
		return 8
	}
}
