package codec

import "fmt"

// Parser is a byte-slice parser combinator: given input, it either
// consumes a prefix and returns a value plus the unconsumed remainder, or
// fails. Grounded on original_source/src/parser.rs's Parser trait,
// re-expressed as a generic function type rather than a trait object,
// since Go combinators compose most naturally as plain values of
// function type (spec.md §4.8).
type Parser[T any] func(input []byte) (value T, remaining []byte, err error)

// ParseError is returned by any Parser on failure (spec.md §7 category
// 2). It carries no position information, mirroring the original's unit
// ParseError: combinators are expected to backtrack freely, so precise
// failure points are not meaningful.
type ParseError struct{}

func (ParseError) Error() string { return "parse error" }

// ParseAll runs p against input and requires it to consume the entire
// slice.
func ParseAll[T any](p Parser[T], input []byte) (T, error) {
	v, rest, err := p(input)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(rest) != 0 {
		var zero T
		return zero, ParseError{}
	}
	return v, nil
}

// Byte consumes and returns a single byte.
func Byte(input []byte) (byte, []byte, error) {
	if len(input) == 0 {
		return 0, nil, ParseError{}
	}
	return input[0], input[1:], nil
}

// Exact consumes the literal byte sequence s, or fails if input does not
// start with it.
func Exact(s []byte) Parser[struct{}] {
	return func(input []byte) (struct{}, []byte, error) {
		if len(input) < len(s) {
			return struct{}{}, nil, ParseError{}
		}
		for i, b := range s {
			if input[i] != b {
				return struct{}{}, nil, ParseError{}
			}
		}
		return struct{}{}, input[len(s):], nil
	}
}

// End succeeds, consuming nothing, only at end of input.
func End(input []byte) (struct{}, []byte, error) {
	if len(input) != 0 {
		return struct{}{}, nil, ParseError{}
	}
	return struct{}{}, input, nil
}

// Map transforms a successful parse's value with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input []byte) (U, []byte, error) {
		v, rest, err := p(input)
		if err != nil {
			var zero U
			return zero, nil, err
		}
		return f(v), rest, nil
	}
}

// TryMap transforms a successful parse's value with f, failing the whole
// parse if f reports an error (used for e.g. "letter -> PieceKind").
func TryMap[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(input []byte) (U, []byte, error) {
		v, rest, err := p(input)
		if err != nil {
			var zero U
			return zero, nil, err
		}
		u, ferr := f(v)
		if ferr != nil {
			var zero U
			return zero, nil, ParseError{}
		}
		return u, rest, nil
	}
}

// Pair is the result of And: both sub-parsers' values, in order.
type Pair[T, U any] struct {
	First  T
	Second U
}

// And runs p1 then p2, requiring both to succeed in sequence.
func And[T, U any](p1 Parser[T], p2 Parser[U]) Parser[Pair[T, U]] {
	return func(input []byte) (Pair[T, U], []byte, error) {
		v1, rest, err := p1(input)
		if err != nil {
			return Pair[T, U]{}, nil, err
		}
		v2, rest2, err := p2(rest)
		if err != nil {
			return Pair[T, U]{}, nil, err
		}
		return Pair[T, U]{v1, v2}, rest2, nil
	}
}

// Or tries p1; if it fails, tries p2 against the original input.
func Or[T any](p1, p2 Parser[T]) Parser[T] {
	return func(input []byte) (T, []byte, error) {
		if v, rest, err := p1(input); err == nil {
			return v, rest, nil
		}
		return p2(input)
	}
}

// ThenIgnore runs p1 then p2, keeping only p1's value.
func ThenIgnore[T, U any](p1 Parser[T], p2 Parser[U]) Parser[T] {
	return Map(And(p1, p2), func(pr Pair[T, U]) T { return pr.First })
}

// IgnoreThen runs p1 then p2, keeping only p2's value.
func IgnoreThen[T, U any](p1 Parser[T], p2 Parser[U]) Parser[U] {
	return Map(And(p1, p2), func(pr Pair[T, U]) U { return pr.Second })
}

// Repeat runs p repeatedly, collecting values, until it fails or max
// repetitions (if max >= 0) is reached. Fails if fewer than min
// repetitions succeed. Repeat, bounded or not, is the only combinator in
// this kit that allocates a result slice (spec.md §4.8).
func Repeat[T any](p Parser[T], min, max int) Parser[[]T] {
	return func(input []byte) ([]T, []byte, error) {
		var out []T
		rest := input
		for max < 0 || len(out) < max {
			v, next, err := p(rest)
			if err != nil {
				break
			}
			out = append(out, v)
			rest = next
		}
		if len(out) < min {
			return nil, nil, ParseError{}
		}
		return out, rest, nil
	}
}

// mustASCIIDigit is a small helper parser used by numeric literals
// (e.g. the CLI's "Time <ms>" command, spec.md §6).
func mustASCIIDigit(b byte) (byte, error) {
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("not a digit: %q", b)
	}
	return b - '0', nil
}

// Digit parses a single ASCII digit into its numeric value 0-9.
func Digit(input []byte) (byte, []byte, error) {
	return TryMap(Byte, mustASCIIDigit)(input)
}

// Uint32 parses one or more ASCII digits into a uint32 (e.g. the CLI's
// "Time <ms>" command, spec.md §6).
func Uint32(input []byte) (uint32, []byte, error) {
	return Map(Repeat(Digit, 1, -1), func(digits []byte) uint32 {
		var n uint32
		for _, d := range digits {
			n = n*10 + uint32(d)
		}
		return n
	})(input)
}
