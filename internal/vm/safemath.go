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

import "math"

// SafeUint64ToInt safely converts uint64 to int, as needed wherever a
// Memory offset or size (uint64, per spec.md §4.3) crosses into a Go
// slice index or GetMemory's int parameter.
func SafeUint64ToInt(v uint64) (int, bool) {
	if v > uint64(math.MaxInt) {
		return 0, false
	}
	return int(v), true
}

// SafeUint64ToUint32 safely converts uint64 to uint32, used by
// JumpDests.isJumpDest since the underlying roaring.Bitmap is
// uint32-addressed.
func SafeUint64ToUint32(v uint64) (uint32, bool) {
	if v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

