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

package word

import (
	"math/big"
	"math/bits"

	"github.com/holiman/uint256"
)

// Word512 is the 512-bit unsigned intermediate named "WideWord" in
// spec.md §3. It exists to give that data-model concept a concrete,
// independently testable type; production code does not allocate one
// on the MULMOD hot path (that goes straight through
// uint256.Int.MulMod, which already carries the same precision
// internally) — Word512 backs the WideningMul property test and is
// useful to anyone embedding this package who needs the raw 512-bit
// product without an immediate reduction.
type Word512 struct {
	hi, lo uint256.Int // hi holds bits [256,512), lo holds bits [0,256)
}

// limbsBE splits a Word's big-endian byte encoding into four
// most-significant-first 64-bit limbs.
func limbsBE(x *uint256.Int) [4]uint64 {
	b := x.Bytes32()
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		var v uint64
		for j := 0; j < 8; j++ {
			v = v<<8 | uint64(b[i*8+j])
		}
		limbs[i] = v
	}
	return limbs
}

// wordFromLimbsBE reassembles four most-significant-first 64-bit
// limbs into a Word.
func wordFromLimbsBE(limbs [4]uint64) uint256.Int {
	var b [32]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			b[i*8+j] = byte(limbs[i] >> (8 * (7 - j)))
		}
	}
	var z uint256.Int
	z.SetBytes32(b[:])
	return z
}

// WideningMul computes the exact 256x256 -> 512 bit product of x and
// y via schoolbook long multiplication over 64-bit limbs.
func WideningMul(x, y *uint256.Int) Word512 {
	// xl, yl are most-significant-limb-first; product accumulates
	// least-significant-limb-first in acc[0..7].
	xl := limbsBE(x)
	yl := limbsBE(y)

	var acc [8]uint64
	for i := 0; i < 4; i++ {
		xi := xl[3-i] // least-significant-first index i
		var carry uint64
		for j := 0; j < 4; j++ {
			yj := yl[3-j]
			hi, lo := bits.Mul64(xi, yj)
			var c uint64
			lo, c = bits.Add64(lo, acc[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			acc[i+j] = lo
			carry = hi
		}
		acc[i+4] += carry
	}

	loLimbsBE := [4]uint64{acc[3], acc[2], acc[1], acc[0]}
	hiLimbsBE := [4]uint64{acc[7], acc[6], acc[5], acc[4]}

	var w Word512
	w.lo = wordFromLimbsBE(loLimbsBE)
	w.hi = wordFromLimbsBE(hiLimbsBE)
	return w
}

// Mod reduces the 512-bit value modulo n, returning a new Word. n
// must be non-zero. This is implemented via math/big rather than a
// hand-rolled long division, since Word512 is a test/utility type and
// not on any opcode's hot path (see the type doc comment); the
// production MULMOD path never calls this.
func (w Word512) Mod(n *uint256.Int) *uint256.Int {
	full := w.ToBig()
	full.Mod(full, n.ToBig())
	z := new(uint256.Int)
	z.SetFromBig(full)
	return z
}

// ToBig returns the Word512 as an arbitrary-precision big.Int, for
// use as a test oracle.
func (w Word512) ToBig() *big.Int {
	full := new(big.Int).Lsh(w.hi.ToBig(), 256)
	full.Add(full, w.lo.ToBig())
	return full
}
