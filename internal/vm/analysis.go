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

package vm

import "github.com/RoaringBitmap/roaring"

// JumpDests is the Jump Analyzer's output (spec.md §4.4): the set of
// code offsets that are legal JUMP/JUMPI destinations. Backed by a
// roaring.Bitmap rather than a hand-rolled []bool or bitset, since a
// real-world contract's code is short relative to its address space
// and a compressed bitmap costs nothing extra to query.
type JumpDests struct {
	bits *roaring.Bitmap
}

// analyze performs the single forward scan of spec.md §4.4: a byte
// equal to JUMPDEST is a valid destination unless it falls inside the
// immediate operand of a preceding PUSH1..PUSH32.
func analyze(code []byte) *JumpDests {
	bits := roaring.New()
	for i := 0; i < len(code); {
		op := OpCode(code[i])
		if op == JUMPDEST {
			bits.Add(uint32(i))
			i++
			continue
		}
		if op.IsPush() {
			i += 1 + op.PushSize()
			continue
		}
		i++
	}
	return &JumpDests{bits: bits}
}

// isJumpDest reports whether dest is both within code bounds and a
// valid jump destination.
func (j *JumpDests) isJumpDest(dest uint64) bool {
	d, ok := SafeUint64ToUint32(dest)
	if !ok {
		return false
	}
	return j.bits.Contains(d)
}
