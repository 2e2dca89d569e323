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

import (
	"github.com/cjeva10/evm/internal/vm/word"
	"github.com/holiman/uint256"
)

// Comparison and bitwise opcodes (spec.md §4.5, 0x10..0x1d).

func opLt(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opGt(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opSlt(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opSgt(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opEq(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil
}

func opIszero(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x := scope.Stack.Peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil
}

func opAnd(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	y.And(x, y)
	return nil
}

func opOr(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	y.Or(x, y)
	return nil
}

func opXor(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	y.Xor(x, y)
	return nil
}

func opNot(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x := scope.Stack.Peek()
	x.Not(x)
	return nil
}

func opByte(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	i, x := scope.Stack.Pop(), scope.Stack.Peek()
	word.Byte(x, i, x)
	return nil
}

func opShl(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	shift, value := scope.Stack.Pop(), scope.Stack.Peek()
	if shift.LtUint64(256) {
		word.Lsh(value, value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil
}

func opShr(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	shift, value := scope.Stack.Pop(), scope.Stack.Peek()
	if shift.LtUint64(256) {
		word.Rsh(value, value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil
}

func opSar(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	shift, value := scope.Stack.Pop(), scope.Stack.Peek()
	if shift.GtUint64(255) {
		if word.IsNegative(value) {
			value.Set(negOne())
		} else {
			value.Clear()
		}
		return nil
	}
	word.SRsh(value, value, uint(shift.Uint64()))
	return nil
}

// negOne returns a fresh Word holding 2^256-1 (all ones), the SAR
// result for a negative value shifted by 256 or more.
func negOne() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}
