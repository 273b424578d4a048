package loongarch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func field(w uint32, pos, size int) uint32 { return w >> pos & (1<<size - 1) }

// sweep lists offsets across [-1<<(width-1), 1<<(width-1)-4] in steps of
// four, striding when the range is large, plus both ends and every power
// of two with its neighbours.
func sweep(width int) []int64 {
	lo, hi := int64(-1)<<(width-1), int64(1)<<(width-1)-4
	step := int64(4)
	if n := (hi - lo) / 4; n > 1<<16 {
		step = 4 * (n>>14 | 1)
	}
	var out []int64
	for v := lo; v <= hi; v += step {
		out = append(out, v)
	}
	out = append(out, hi, 0)
	for p := int64(4); p <= hi; p <<= 1 {
		out = append(out, p, -p, p-4, 4-p)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		encode func(offs int32) uint32
		decode func(w uint32) int64
		regs   func(w uint32) []uint32
		want   []uint32
	}{
		{
			name: "beq", width: 18,
			encode: func(offs int32) uint32 { return EncodeJDSk16ps2(BEQ, A1, T2, offs) },
			decode: func(w uint32) int64 { return sext(field(w, 10, 16), 16) << 2 },
			regs:   func(w uint32) []uint32 { return []uint32{field(w, 5, 5), field(w, 0, 5), w & 0xfc000000} },
			want:   []uint32{5, 14, 0x58000000},
		},
		{
			name: "beqz", width: 23,
			encode: func(offs int32) uint32 { return EncodeJSd5k16ps2(BEQZ, S0, offs) },
			decode: func(w uint32) int64 { return sext(field(w, 0, 5)<<16|field(w, 10, 16), 21) << 2 },
			regs:   func(w uint32) []uint32 { return []uint32{field(w, 5, 5), w & 0xfc000000} },
			want:   []uint32{23, 0x40000000},
		},
		{
			name: "b", width: 28,
			encode: func(offs int32) uint32 { return EncodeSd10k16ps2(B, offs) },
			decode: func(w uint32) int64 { return sext(field(w, 0, 10)<<16|field(w, 10, 16), 26) << 2 },
			regs:   func(w uint32) []uint32 { return []uint32{w & 0xfc000000} },
			want:   []uint32{0x50000000},
		},
		{
			name: "bl", width: 28,
			encode: func(offs int32) uint32 { return EncodeSd10k16ps2(BL, offs) },
			decode: func(w uint32) int64 { return sext(field(w, 0, 10)<<16|field(w, 10, 16), 26) << 2 },
			regs:   func(w uint32) []uint32 { return []uint32{w & 0xfc000000} },
			want:   []uint32{0x54000000},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range sweep(tc.width) {
				w := tc.encode(int32(v))
				if !assert.Equal(t, v, tc.decode(w), "%s %d: %#08x", tc.name, v, w) ||
					!assert.Equal(t, tc.want, tc.regs(w), "%s %d: %#08x", tc.name, v, w) {
					return
				}
			}
		})
	}
}
