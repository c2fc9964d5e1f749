// Package codec implements the self-synchronising base-128 bit-stream
// codec (spec.md §4.9) and the parser-combinator kit (spec.md §4.8) used
// to parse the core's print forms. Grounded on
// original_source/src/base128.rs and base128_decoder.rs; no FrankyGo
// analogue exists, so the Go port follows the original's structure
// directly, re-expressed with Go's error returns in place of Rust
// panics/asserts at decode time.
package codec

// specialMap lists, for each of the 16 possible "special" escape indices
// in a 2-byte codepoint, the raw ASCII byte it represents (or -1 if that
// index is unused). Index 0 is skipped to avoid an overlong encoding;
// index 1 is skipped to dodge the U+80..U+A0 control block.
var specialMap = [16]int16{
	-1, -1,
	0x00, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x1B, '"',
	-1, -1, -1, -1, -1,
}

func asciiToSpecial(ascii byte) (int, bool) {
	for i, v := range specialMap {
		if v == int16(ascii) {
			return i, true
		}
	}
	return 0, false
}

// VarintBaseBits and VarintExtensionBits are the varint encoding's base
// and extension group widths (spec.md §4.9).
const (
	VarintBaseBits      = 5
	VarintExtensionBits = 2
)

// Encoder packs a sequence of raw bits into a self-synchronising UTF-8
// string in which none of the bytes listed in specialMap appears raw.
// Other ASCII control bytes are emitted as themselves.
type Encoder struct {
	output          []rune
	special         int // -1 means "not pending"
	numBufferedBits uint
	bufferedBits    uint64
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{special: -1}
}

// EncodeBits appends the low n bits of bits (n in [0, 32]; n==32 allowed
// to encode a full word) to the stream.
func (e *Encoder) EncodeBits(n uint, bits uint32) {
	e.bufferedBits |= uint64(bits) << e.numBufferedBits
	e.numBufferedBits += n
	for e.numBufferedBits >= 7 {
		ascii := byte(e.bufferedBits & 0x7F)
		e.bufferedBits >>= 7
		e.numBufferedBits -= 7
		e.pushASCII(ascii)
	}
}

// EncodeVarint writes n as: one sign bit, VarintBaseBits base bits, then
// repeated (1-bit continuation, VarintExtensionBits payload) groups
// terminated by a 0-continuation bit (spec.md §4.9).
func (e *Encoder) EncodeVarint(n int32) {
	var signBit uint32
	var val uint32
	if n < 0 {
		signBit = 1
		val = uint32(-(n + 1))
	} else {
		val = uint32(n)
	}
	e.EncodeBits(1, signBit)
	e.EncodeBits(VarintBaseBits, val&((1<<VarintBaseBits)-1))
	val >>= VarintBaseBits
	for val != 0 {
		e.EncodeBits(1, 1)
		e.EncodeBits(VarintExtensionBits, val&((1<<VarintExtensionBits)-1))
		val >>= VarintExtensionBits
	}
	e.EncodeBits(1, 0)
}

// Finish writes a terminating 1 bit, pads to a byte boundary, and returns
// the accumulated string. Panics if called with a special escape still
// pending (an encoder bug, not a caller error).
func (e *Encoder) Finish() string {
	e.EncodeBits(1, 1)
	if e.numBufferedBits != 0 {
		e.EncodeBits(7-e.numBufferedBits, 0)
	}
	if e.special != -1 {
		e.EncodeBits(7, 0)
	}
	if e.numBufferedBits != 0 || e.special != -1 {
		panic("codec: Encoder.Finish left a partial byte or pending escape")
	}
	return string(e.output)
}

func (e *Encoder) pushASCII(ascii byte) {
	if e.special == -1 {
		if special, ok := asciiToSpecial(ascii); ok {
			e.special = special
		} else {
			e.output = append(e.output, rune(ascii))
		}
		return
	}
	c := rune(e.special<<7 | int(ascii))
	e.output = append(e.output, c)
	e.special = -1
}

// Decoder is the inverse of Encoder.
type Decoder struct {
	input           []rune
	pos             int
	numBufferedBits uint
	bufferedBits    uint64
}

// NewDecoder wraps s for decoding.
func NewDecoder(s string) *Decoder {
	return &Decoder{input: []rune(s)}
}

// DecodeError reports malformed base-128 input (spec.md §7 category 2).
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return "base128 decode error: " + e.Reason }

// DecodeBits reads the next n bits (n in [0, 32]).
func (d *Decoder) DecodeBits(n uint) (uint32, error) {
	for d.numBufferedBits < n {
		if d.pos >= len(d.input) {
			return 0, &DecodeError{Reason: "unexpected end of base128 stream"}
		}
		c := d.input[d.pos]
		d.pos++
		k, bits, err := decodeChar(c)
		if err != nil {
			return 0, err
		}
		d.bufferedBits |= uint64(bits) << d.numBufferedBits
		d.numBufferedBits += k
	}
	var mask uint64
	if n == 32 {
		mask = 0xFFFFFFFF
	} else {
		mask = (uint64(1) << n) - 1
	}
	res := uint32(d.bufferedBits & mask)
	d.bufferedBits >>= n
	d.numBufferedBits -= n
	return res, nil
}

// DecodeVarint is the inverse of Encoder.EncodeVarint.
func (d *Decoder) DecodeVarint() (int32, error) {
	sign, err := d.DecodeBits(1)
	if err != nil {
		return 0, err
	}
	value, err := d.DecodeBits(VarintBaseBits)
	if err != nil {
		return 0, err
	}
	shift := uint(VarintBaseBits)
	for {
		cont, err := d.DecodeBits(1)
		if err != nil {
			return 0, err
		}
		if cont == 0 {
			break
		}
		ext, err := d.DecodeBits(VarintExtensionBits)
		if err != nil {
			return 0, err
		}
		value |= ext << shift
		shift += VarintExtensionBits
	}
	if sign != 0 {
		return -int32(value) - 1, nil
	}
	return int32(value), nil
}

// Finish asserts the stream is exactly consumed: a final 1 bit, no
// leftover buffered bits, and no leftover runes (spec.md §4.9,
// §8 round-trip property).
func (d *Decoder) Finish() error {
	b, err := d.DecodeBits(1)
	if err != nil {
		return err
	}
	if b != 1 || d.bufferedBits != 0 || d.pos != len(d.input) {
		return &DecodeError{Reason: "base128 stream not cleanly terminated"}
	}
	return nil
}

// decodeChar returns the number of data bits a codepoint contributes and
// their value: a plain ASCII byte contributes 7 bits directly; a 2-byte
// escape contributes 14 bits, the escaped original byte in the low 7 and
// the literal second chunk in the high 7 (mirroring Encoder.pushASCII's
// escape-then-literal emission order).
func decodeChar(c rune) (uint, uint32, error) {
	v := uint32(c)
	bits := v & 0x7F
	special := v >> 7
	switch {
	case special == 0:
		return 7, bits, nil
	case special < 16:
		orig := specialMap[special]
		if orig == -1 {
			return 0, 0, &DecodeError{Reason: "invalid base128 special code"}
		}
		return 14, uint32(orig) | bits<<7, nil
	default:
		return 0, 0, &DecodeError{Reason: "invalid base128 character"}
	}
}
