// Copyright 2026 The evm Authors
// This file is part of evm.
//
// evm is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// evm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with evm. If not, see <http://www.gnu.org/licenses/>.

// Package word implements the 256-bit (and, for MULMOD, 512-bit
// intermediate) integer semantics the interpreter runs on: wrapping
// and checked arithmetic, signed division/modulus, modular
// addition/multiplication with full-precision intermediates,
// exponentiation, sign-extension, and big/little-endian conversion.
//
// All of these are thin, direct calls into uint256.Int, which is
// already the fixed-width 256-bit type this package would otherwise
// hand-roll; the value this package adds is giving each operation the
// name and argument order spec.md §4.1 describes, so callers in
// instructions_*.go read like a transcription of the spec rather than
// of the uint256 API.
package word

import "github.com/holiman/uint256"

// WrappingAdd sets dst = x + y mod 2^256 and returns dst.
func WrappingAdd(dst, x, y *uint256.Int) *uint256.Int {
	return dst.Add(x, y)
}

// WrappingSub sets dst = x - y mod 2^256 and returns dst.
func WrappingSub(dst, x, y *uint256.Int) *uint256.Int {
	return dst.Sub(x, y)
}

// WrappingMul sets dst = x * y mod 2^256 and returns dst.
func WrappingMul(dst, x, y *uint256.Int) *uint256.Int {
	return dst.Mul(x, y)
}

// CheckedDiv sets dst = x / y, truncated toward zero, or zero if y is
// zero (EVM convention, not a division-by-zero error).
func CheckedDiv(dst, x, y *uint256.Int) *uint256.Int {
	return dst.Div(x, y)
}

// CheckedMod sets dst = x % y, or zero if y is zero.
func CheckedMod(dst, x, y *uint256.Int) *uint256.Int {
	return dst.Mod(x, y)
}

// SDiv sets dst to the signed (two's complement) truncating division
// of x by y. Returns zero if y is zero. The corner case
// MinInt256 / -1 yields MinInt256 (wraps to itself), matching §4.1.
func SDiv(dst, x, y *uint256.Int) *uint256.Int {
	return dst.SDiv(x, y)
}

// SMod sets dst to the signed remainder of x by y; the result takes
// the sign of the dividend x. Returns zero if y is zero.
func SMod(dst, x, y *uint256.Int) *uint256.Int {
	return dst.SMod(x, y)
}

// AddMod sets dst = (x + y) mod n, computed from the true (unwrapped)
// sum rather than the 256-bit wrapped sum. Returns zero if n is zero.
//
// This resolves the Open Question in spec.md §4.1/§9: one reference
// code path reduces after a wrapping 256-bit add, which is wrong
// whenever the true sum reaches 2^256 and n does not divide it.
// uint256.Int.AddMod carries the extra bit of precision internally,
// so calling it directly gives the correct contract for free.
func AddMod(dst, x, y, n *uint256.Int) *uint256.Int {
	return dst.AddMod(x, y, n)
}

// MulMod sets dst = (x * y) mod n using the full 512-bit product as
// the intermediate (the WideWord of spec.md §3), then truncates back
// to 256 bits. Returns zero if n is zero.
func MulMod(dst, x, y, n *uint256.Int) *uint256.Int {
	return dst.MulMod(x, y, n)
}

// Exp sets dst = base^exponent mod 2^256. base=0, exponent=0 yields 1.
func Exp(dst, base, exponent *uint256.Int) *uint256.Int {
	return dst.Exp(base, exponent)
}

// SignExtend sign-extends the low (back+1) bytes of x into dst. If
// back >= 31, dst is just x unchanged.
func SignExtend(dst, back, x *uint256.Int) *uint256.Int {
	return dst.ExtendSign(x, back)
}

// Byte sets dst to the i-th byte of x, counted from the most
// significant end (byte 0 is the top byte); zero if i >= 32.
func Byte(dst, i, x *uint256.Int) *uint256.Int {
	dst.Set(x)
	return dst.Byte(i)
}

// Bit returns the i-th bit of x, least-significant first, as 0 or 1.
func Bit(x *uint256.Int, i int) uint64 {
	if i < 0 || i > 255 {
		return 0
	}
	var shifted uint256.Int
	shifted.Rsh(x, uint(i))
	return shifted.Uint64() & 1
}

// Lsh sets dst = x << n. Shifting by n >= 256 yields zero, which
// falls out of uint256's fixed width automatically.
func Lsh(dst, x *uint256.Int, n uint) *uint256.Int {
	return dst.Lsh(x, n)
}

// Rsh sets dst = x >> n (logical/unsigned shift).
func Rsh(dst, x *uint256.Int, n uint) *uint256.Int {
	return dst.Rsh(x, n)
}

// SRsh sets dst = x >> n, treating x as a two's-complement signed
// value (arithmetic shift): vacated high bits are filled with the
// sign bit of x rather than zero.
func SRsh(dst, x *uint256.Int, n uint) *uint256.Int {
	return dst.SRsh(x, n)
}

// IsNegative reports whether bit 255 of x is set, i.e. whether x's
// two's complement interpretation is negative.
func IsNegative(x *uint256.Int) bool {
	return x.Sign() < 0
}

// BigEndianBytes returns the 32-byte big-endian encoding of x.
func BigEndianBytes(x *uint256.Int) [32]byte {
	return x.Bytes32()
}

// LittleEndianBytes returns the 32-byte little-endian encoding of x.
//
// uint256 exposes only big-endian encode/decode (SetBytes/Bytes32);
// the reversal below is the entire glue needed for the little-endian
// side of spec.md §4.1 and isn't available as a named library call.
func LittleEndianBytes(x *uint256.Int) [32]byte {
	be := x.Bytes32()
	var le [32]byte
	for i, b := range be {
		le[31-i] = b
	}
	return le
}

// FromBigEndian decodes a big-endian byte slice (any length <= 32)
// into a new Word.
func FromBigEndian(b []byte) *uint256.Int {
	return new(uint256.Int).SetBytes(b)
}

// FromLittleEndian decodes a 32-byte little-endian buffer into a new
// Word.
func FromLittleEndian(b [32]byte) *uint256.Int {
	var be [32]byte
	for i, v := range b {
		be[31-i] = v
	}
	return new(uint256.Int).SetBytes32(be[:])
}
