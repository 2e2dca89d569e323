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

// Package evm interprets a subset of EVM bytecode: 256-bit arithmetic,
// comparison and bitwise opcodes, stack manipulation, byte-addressable
// linear memory, validated control flow, and Keccak-256 hashing over
// memory. It models no blockchain context — no accounts, no gas, no
// storage, no calls between contracts.
package evm

import (
	"github.com/cjeva10/evm/internal/vm"
	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of running a program: the final operand
// stack, most-recently-pushed value first, and whether execution
// reached STOP or end-of-code (true) versus INVALID or a failed jump
// (false).
type Result struct {
	Stack   []uint256.Int
	Success bool
}

// Config exposes the two optional ceilings spec.md §3/§5 permit an
// implementation to enforce.
type Config = vm.Config

// DefaultConfig returns the conventional ceilings: a 1024-deep stack,
// no memory cap.
func DefaultConfig() Config {
	return vm.DefaultConfig()
}

// SetLogger installs a structured logger for run summaries and fatal
// aborts. By default nothing is logged.
func SetLogger(l *logrus.Logger) {
	vm.SetLogger(l)
}

// Run interprets code with DefaultConfig.
func Run(code []byte) (*Result, error) {
	return RunWithConfig(code, DefaultConfig())
}

// RunWithConfig interprets code under cfg. A non-nil error means a
// fatal condition aborted the run (stack underflow/overflow, or a
// memory offset or size that does not fit or exceeds the cap); the
// caller gets no partial stack. Otherwise the returned Result's
// Success field distinguishes a clean STOP/end-of-code from an
// INVALID opcode or a failed jump, both of which still report the
// stack as it stood at termination (spec.md §7).
func RunWithConfig(code []byte, cfg Config) (*Result, error) {
	interp := vm.NewInterpreter(code, cfg)
	res, err := interp.Run()
	if err != nil {
		return nil, err
	}
	return &Result{Stack: res.Stack, Success: res.Success}, nil
}
