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

// opPop discards the top of stack (spec.md §4.5, POP/0x50).
func opPop(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	scope.Stack.Pop()
	return nil
}

// opPc pushes the offset of the PC opcode itself, i.e. the value PC
// held before Interpreter.Run advanced it past this instruction.
func opPc(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	scope.Stack.Push(new(uint256.Int).SetUint64(*pc - 1))
	return nil
}

// opPush0 pushes the Word zero (spec.md §4.5, PUSH0/0x5f).
func opPush0(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	scope.Stack.Push(new(uint256.Int))
	return nil
}

// opJumpdest is a runtime no-op: the Jump Analyzer already consulted
// JUMPDEST bytes during the pre-pass (spec.md §4.4/§4.5).
func opJumpdest(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	return nil
}

// makeDup returns an executionFunc implementing DUPn: duplicate the
// n-th element from the top onto a new top.
func makeDup(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
		scope.Stack.Dup(n)
		return nil
	}
}

// makeSwap returns an executionFunc implementing SWAPn: exchange the
// top with the element n positions below it.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
		scope.Stack.Swap(n + 1)
		return nil
	}
}

// makePush returns an executionFunc implementing PUSHn: read n
// big-endian immediate bytes from the code starting just after the
// opcode byte, push them as a Word, and advance pc past the
// immediate.
func makePush(size int) executionFunc {
	return func(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
		codeLen := uint64(len(interp.code))
		start := *pc
		end := start + uint64(size)
		if end > codeLen {
			end = codeLen
		}
		var buf [32]byte
		copy(buf[32-size:], interp.code[start:end])
		scope.Stack.Push(new(uint256.Int).SetBytes(buf[32-size:]))
		*pc += uint64(size)
		return nil
	}
}
