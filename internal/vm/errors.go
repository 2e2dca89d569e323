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
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Fatal errors (spec.md §4.7): these abort Run entirely. The caller
// gets no partial Result, only the error.
//
// DUP/SWAP depth violations and an out-of-range SIGNEXTEND byte index
// do not get dedicated sentinels here: the former is already fatal via
// ErrStackUnderflow (every opcode, DUP/SWAP included, is pre-checked
// against mainJumpTable's minStack before its handler runs), and spec.md
// §4.1 gives SIGNEXTEND an explicit, non-fatal definition for b >= 31
// (return x unchanged) rather than treating it as undefined.
var (
	ErrStackUnderflow      = errors.New("vm: stack underflow")
	ErrStackOverflow       = errors.New("vm: stack overflow")
	ErrMemoryLimitExceeded = errors.New("vm: memory growth exceeds configured limit")
)

// errStop marks a successful termination (spec.md §4.7's third
// class): STOP or natural end-of-code. Interpreter.Run recognizes it
// and converts it into Result{Success: true}; like errHalt, it never
// crosses the public API as an error.
var errStop = errors.New("vm: successful termination")

// errHalt marks an unsuccessful-but-first-class termination (spec.md
// §4.7's second class): INVALID, or a failed JUMP/JUMPI. Interpreter.Run
// recognizes it with errors.Is and converts it into Result{Success:
// false}, never surfacing an error to the caller — this is a
// deliberate outcome of running the bytecode, not a programming error.
var errHalt = errors.New("vm: unsuccessful termination")

// ErrExecutionInvalid wraps errHalt for the INVALID (0xFE) opcode.
var ErrExecutionInvalid = fmt.Errorf("%w: INVALID opcode", errHalt)

// invalidJumpErr wraps errHalt for a JUMP/JUMPI whose destination is
// out of bounds, not a valid JUMPDEST, or too wide to ever be a valid
// code offset (dest is reported in full 256-bit precision so an
// overflowing destination is never misreported via truncation).
func invalidJumpErr(dest *uint256.Int) error {
	return fmt.Errorf("%w: invalid jump destination %s", errHalt, dest.Hex())
}

// isHalt reports whether err represents an unsuccessful-termination
// outcome rather than a fatal error.
func isHalt(err error) bool {
	return errors.Is(err, errHalt)
}
