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

// opStop terminates execution successfully (spec.md §4.5/§4.7,
// STOP/0x00). Interpreter.Run recognizes the sentinel errStop
// returned here and converts it to Success: true, never surfacing an
// error to the caller.
func opStop(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	return errStop
}

// opInvalid terminates execution unsuccessfully (spec.md §4.5/§4.7,
// INVALID/0xFE).
func opInvalid(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	return ErrExecutionInvalid
}

// opJump implements JUMP (spec.md §4.5, 0x56): pop dest; if dest is
// out of bounds or not a valid jump destination, terminate
// unsuccessfully with the stack as it stands (dest already popped).
// Otherwise set PC to dest.
func opJump(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	dest := scope.Stack.Pop()
	return doJump(pc, interp, dest)
}

// opJumpi implements JUMPI (spec.md §4.5, 0x57): pop dest, then cond.
// If cond is zero, fall through (PC already advanced past the
// opcode). Otherwise perform JUMP semantics on dest.
func opJumpi(pc *uint64, interp *Interpreter, scope *ScopeContext) error {
	dest, cond := scope.Stack.Pop(), scope.Stack.Pop()
	if cond.IsZero() {
		return nil
	}
	return doJump(pc, interp, dest)
}

// doJump validates dest against the precomputed jump bitmap and, if
// valid, sets *pc to it. dest is converted with Uint64WithOverflow
// rather than Uint64: a destination wider than 64 bits must never
// alias an in-range JUMPDEST via truncation (spec.md §4.5, matching
// the original reference's full-width dest >= len(code) comparison).
func doJump(pc *uint64, interp *Interpreter, dest *uint256.Int) error {
	d, overflow := dest.Uint64WithOverflow()
	if overflow || d >= uint64(len(interp.code)) || !interp.jumpDests.isJumpDest(d) {
		return invalidJumpErr(dest)
	}
	*pc = d
	return nil
}
