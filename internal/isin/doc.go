// Package isin converts 12-character security identifiers to and from a
// fixed-width unsigned integer.
//
// An identifier is read as a base-36 numeral, most significant character
// first, with '0'..'9' worth 0..9 and 'A'..'Z' worth 10..35. Input is
// case-insensitive and canonicalized to uppercase. The encoded value always
// lies in [0, 36^12-1] and so fits a single 256-bit word.
//
// # Validation
//
// Encode checks length and alphabet before doing any arithmetic. The
// embedded check digit and the country-code prefix are not validated.
//
// Decode rejects values outside the encoding space, including negative
// inputs given through DecodeBig or ParseValue.
//
// All functions are pure and safe for concurrent use.
package isin
