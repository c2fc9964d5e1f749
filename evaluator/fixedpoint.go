package evaluator

import "github.com/tczajka/wazir-drop-sub000/assert"

// add16 and sub16 fold o into v lane-by-lane with ordinary int16
// wrap-on-overflow semantics (spec.md §4.4's add16/sub16 contract; Go's
// fixed-width integer arithmetic already wraps, so no extra masking is
// needed).
func add16(v, o []int16) {
	for i := range v {
		v[i] += o[i]
	}
}

func sub16(v, o []int16) {
	for i := range v {
		v[i] -= o[i]
	}
}

// clampLane saturates x into [0, 127], the crelu contract's unsigned
// 7-bit output range.
func clampLane(x int32) uint8 {
	if x < 0 {
		return 0
	}
	if x > 127 {
		return 127
	}
	return uint8(x)
}

// crelu16 maps 16-bit lanes through clipped ReLU into unsigned 8-bit
// [0, 127] (spec.md §4.4).
func crelu16(v []int16) []uint8 {
	out := make([]uint8, len(v))
	for i, x := range v {
		out[i] = clampLane(int32(x))
	}
	return out
}

// crelu32 is crelu16's 32-bit-lane counterpart, used between hidden
// layers whose mul_add output is already 32-bit.
func crelu32(v []int32) []uint8 {
	out := make([]uint8, len(v))
	for i, x := range v {
		out[i] = clampLane(x)
	}
	return out
}

// mulAdd computes (A*b + c) >> shift: A is a row-major M x N matrix of
// signed int8 rows, b an unsigned int8 (0..=127) column vector of length
// N, c a signed int32 bias vector of length M. Result is signed int32 of
// length M (spec.md §4.4's mul_add contract).
func mulAdd(a [][]int8, b []uint8, c []int32, shift uint) []int32 {
	if assert.DEBUG {
		for _, x := range b {
			assert.Assert(x <= 127, "mul_add: b lane %d exceeds the post-crelu 0..=127 range", x)
		}
	}
	m := len(a)
	out := make([]int32, m)
	for i := 0; i < m; i++ {
		var sum int32
		row := a[i]
		for j, bj := range b {
			sum += int32(row[j]) * int32(bj)
		}
		out[i] = (sum + c[i]) >> shift
	}
	return out
}

// dotProduct computes Σ a[i]*b[i] + c: a signed int8, b unsigned int8
// (0..=127), c a signed int32 bias, result a signed int32 scalar
// (spec.md §4.4's dot_product contract, the NNUE output layer).
func dotProduct(a []int8, b []uint8, c int32) int32 {
	if assert.DEBUG {
		for _, x := range b {
			assert.Assert(x <= 127, "dot_product: b lane %d exceeds the post-crelu 0..=127 range", x)
		}
	}
	var sum int32
	for i, ai := range a {
		sum += int32(ai) * int32(b[i])
	}
	return sum + c
}
