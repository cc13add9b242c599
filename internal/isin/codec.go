package isin

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// Length is the number of characters in an identifier.
	Length = 12
	// Base is the radix identifiers are read in.
	Base = 36

	digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	base = uint256.NewInt(Base)
	// 36^12 - 1
	maxValue = new(uint256.Int).SubUint64(
		new(uint256.Int).Exp(uint256.NewInt(Base), uint256.NewInt(Length)), 1)
)

// ISIN is a canonical (uppercase) 12-character identifier.
type ISIN string

// String returns the string form of the identifier.
func (id ISIN) String() string { return string(id) }

// MaxValue returns the largest encodable value, 36^12-1.
func MaxValue() *uint256.Int { return maxValue.Clone() }

// Normalize uppercases s and checks that it is exactly Length characters
// from [0-9A-Z].
func Normalize(s string) (ISIN, error) {
	u := strings.ToUpper(s)
	if len(u) != Length {
		return "", fmt.Errorf("%w: length %d, want %d", ErrInvalidCharacter, len(u), Length)
	}
	for i := 0; i < len(u); i++ {
		if _, ok := digitValue(u[i]); !ok {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, u[i], i)
		}
	}
	return ISIN(u), nil
}

// Encode reads s as a base-36 numeral and returns its value.
func Encode(s string) (*uint256.Int, error) {
	id, err := Normalize(s)
	if err != nil {
		return nil, err
	}
	acc := new(uint256.Int)
	for i := 0; i < len(id); i++ {
		d, _ := digitValue(id[i])
		acc.Mul(acc, base)
		acc.AddUint64(acc, d)
	}
	return acc, nil
}

// Decode returns the identifier whose encoding is v.
//
// Values shorter than Length base-36 digits are left-padded with '0', so
// Decode(0) is "000000000000".
func Decode(v *uint256.Int) (ISIN, error) {
	if v == nil {
		return "", fmt.Errorf("%w: nil value", ErrOutOfRange)
	}
	if v.Gt(maxValue) {
		return "", fmt.Errorf("%w: %s exceeds %s", ErrOutOfRange, v.Dec(), maxValue.Dec())
	}

	var buf [Length]byte
	i := len(buf)
	n := v.Clone()
	var rem uint256.Int
	for !n.IsZero() {
		n.DivMod(n, base, &rem)
		i--
		buf[i] = digits[rem.Uint64()]
	}
	for i > 0 {
		i--
		buf[i] = '0'
	}
	return ISIN(buf[:]), nil
}

// DecodeBig is Decode for arbitrary-precision input. Negative values are
// rejected with ErrOutOfRange, the same as values that are too large.
func DecodeBig(v *big.Int) (ISIN, error) {
	if v == nil {
		return "", fmt.Errorf("%w: nil value", ErrOutOfRange)
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("%w: negative value %s", ErrOutOfRange, v)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return "", fmt.Errorf("%w: %s exceeds %s", ErrOutOfRange, v, maxValue.Dec())
	}
	return Decode(u)
}

// ParseValue parses decimal text, or hex with a 0x prefix, into an
// in-range value.
func ParseValue(s string) (*uint256.Int, error) {
	t, radix := strings.TrimSpace(s), 10
	if rest, ok := strings.CutPrefix(strings.ToLower(t), "0x"); ok {
		t, radix = rest, 16
	}
	b, ok := new(big.Int).SetString(t, radix)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrOutOfRange, b)
	}
	u, overflow := uint256.FromBig(b)
	if overflow || u.Gt(maxValue) {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrOutOfRange, b, maxValue.Dec())
	}
	return u, nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'A' <= c && c <= 'Z':
		return uint64(c-'A') + 10, true
	default:
		return 0, false
	}
}
