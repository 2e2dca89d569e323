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

import "github.com/holiman/uint256"

// Memory opcodes (spec.md §4.3/§4.5, 0x51..0x53, 0x59).

func opMload(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	off := scope.Stack.Peek()
	o, err := asMemoryOffset(off)
	if err != nil {
		return err
	}
	v, err := scope.Memory.Load32(o)
	if err != nil {
		return err
	}
	off.Set(v)
	return nil
}

func opMstore(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	off, val := scope.Stack.Pop(), scope.Stack.Pop()
	o, err := asMemoryOffset(off)
	if err != nil {
		return err
	}
	return scope.Memory.Store32(o, val)
}

func opMstore8(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	off, val := scope.Stack.Pop(), scope.Stack.Pop()
	o, err := asMemoryOffset(off)
	if err != nil {
		return err
	}
	return scope.Memory.Store8(o, val)
}

func opMsize(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	scope.Stack.Push(new(uint256.Int).SetUint64(uint64(scope.Memory.Len())))
	return nil
}
