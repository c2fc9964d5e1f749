package codec

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteAndExact(t *testing.T) {
	b, rest, err := Byte([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, []byte("bc"), rest)

	_, _, err = Byte(nil)
	assert.Error(t, err)

	_, rest, err = Exact([]byte("foo"))([]byte("foobar"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("bar"), rest)

	_, _, err = Exact([]byte("foo"))([]byte("fox"))
	assert.Error(t, err)
}

func TestAndOrThenIgnore(t *testing.T) {
	p := And(Exact([]byte("a")), Exact([]byte("b")))
	_, rest, err := p([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("c"), rest)

	orP := Or(Exact([]byte("x")), Exact([]byte("y")))
	_, _, err = orP([]byte("y"))
	assert.NoError(t, err)
	_, _, err = orP([]byte("z"))
	assert.Error(t, err)

	ti := ThenIgnore(Byte, Byte)
	v, rest, err := ti([]byte("ab"))
	assert.NoError(t, err)
	assert.Equal(t, byte('a'), v)
	assert.Equal(t, 0, len(rest))
}

func TestRepeatAndDigits(t *testing.T) {
	digits := Repeat(Digit, 1, -1)
	v, rest, err := digits([]byte("123x"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("x"), rest)
	assert.Equal(t, []byte{1, 2, 3}, v)

	_, _, err = digits([]byte("x"))
	assert.Error(t, err)
}

func TestParseAllRequiresFullConsumption(t *testing.T) {
	n, err := ParseAll(Map(Repeat(Digit, 1, -1), digitsToInt), []byte("42"))
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ParseAll(Exact([]byte("42")), []byte("42x"))
	assert.Error(t, err)
}

func digitsToInt(digits []byte) int {
	s := ""
	for _, d := range digits {
		s += strconv.Itoa(int(d))
	}
	n, _ := strconv.Atoi(s)
	return n
}
