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

import "github.com/cjeva10/evm/internal/vm/word"

// Arithmetic opcodes (spec.md §4.1/§4.5, 0x01..0x0b). Each pops its
// operands top-first and pushes a single result, per the
// executionFunc convention: the top of stack is the first operand.

func opAdd(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	word.WrappingAdd(y, x, y)
	return nil
}

func opSub(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	word.WrappingSub(y, x, y)
	return nil
}

func opMul(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	word.WrappingMul(y, x, y)
	return nil
}

func opDiv(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	word.CheckedDiv(y, x, y)
	return nil
}

func opSdiv(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	word.SDiv(y, x, y)
	return nil
}

func opMod(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	word.CheckedMod(y, x, y)
	return nil
}

func opSmod(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y := scope.Stack.Pop(), scope.Stack.Peek()
	word.SMod(y, x, y)
	return nil
}

func opAddmod(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y, z := scope.Stack.Pop(), scope.Stack.Pop(), scope.Stack.Peek()
	word.AddMod(z, x, y, z)
	return nil
}

func opMulmod(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	x, y, z := scope.Stack.Pop(), scope.Stack.Pop(), scope.Stack.Peek()
	word.MulMod(z, x, y, z)
	return nil
}

func opExp(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	base, exponent := scope.Stack.Pop(), scope.Stack.Peek()
	word.Exp(exponent, base, exponent)
	return nil
}

func opSignExtend(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	back, x := scope.Stack.Pop(), scope.Stack.Peek()
	word.SignExtend(x, back, x)
	return nil
}
