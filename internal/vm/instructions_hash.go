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

import "golang.org/x/crypto/sha3"

// opSha3 implements KECCAK256/SHA3 (spec.md §4.5, 0x20): hash the
// load_n(off, size) memory window and push the digest as a big-endian
// Word. Grounded on the teacher's own use of
// golang.org/x/crypto/sha3.NewLegacyKeccak256 for block sealing.
func opSha3(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	off, size := scope.Stack.Pop(), scope.Stack.Peek()
	o, err := asMemoryOffset(off)
	if err != nil {
		return err
	}
	n, err := asMemoryOffset(size)
	if err != nil {
		return err
	}
	data, err := scope.Memory.LoadN(o, n)
	if err != nil {
		return err
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	digest := h.Sum(nil)

	size.SetBytes(digest)
	return nil
}
