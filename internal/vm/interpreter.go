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

	"github.com/cjeva10/evm/internal/vm/stack"
	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"
)

// ScopeContext bundles the mutable state one Interpreter.Run call
// owns exclusively for its lifetime (spec.md §5: single-threaded,
// synchronous, no shared mutable state across runs).
type ScopeContext struct {
	Stack  *stack.Stack
	Memory *Memory
}

// Result is the public outcome of a run (spec.md §3's "Result"
// entity): the final stack, top-of-stack first, and a success flag.
type Result struct {
	Stack   []uint256.Int
	Success bool
}

// Interpreter owns the fetch-decode-dispatch loop (spec.md §4.6).
type Interpreter struct {
	cfg       Config
	jt        *JumpTable
	code      []byte
	jumpDests *JumpDests
}

// log is the package-level logger. It defaults to a no-op logger so
// embedding a package consumer that never calls SetLogger pays
// nothing, matching the ambient-logging design in SPEC_FULL.md.
var log = newNopLogger()

func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(noopWriter{})
	return l
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger installs l as the package-level logger, enabling the
// Debug-level run summaries and Error-level fatal-abort logging
// described in SPEC_FULL.md's ambient stack.
func SetLogger(l *logrus.Logger) {
	log = l
}

// NewInterpreter builds an Interpreter for one run over code. The
// jump-destination bitmap is computed once, up front, per spec.md
// §4.4/§4.6 step 1.
func NewInterpreter(code []byte, cfg Config) *Interpreter {
	return &Interpreter{
		cfg:       cfg,
		jt:        mainJumpTable,
		code:      code,
		jumpDests: analyze(code),
	}
}

// Run executes the fetch-decode-dispatch loop of spec.md §4.6 to
// completion or to a terminal condition.
//
// Fatal errors (stack underflow/overflow, memory limit exceeded) are returned
// as-is with a nil Result, matching SPEC_FULL.md's three-way error
// design: the caller gets no partial state for this class. Halts
// (INVALID, a failed jump) and successful termination both return a
// non-nil Result and a nil error; the Success field distinguishes
// them.
func (interp *Interpreter) Run() (*Result, error) {
	s := stack.New()
	defer stack.ReturnNormalStack(s)
	mem := NewMemoryWithLimit(interp.cfg.MaxMemory)
	scope := &ScopeContext{Stack: s, Memory: mem}

	pc := uint64(0)
	var opCount int

	for pc < uint64(len(interp.code)) {
		op := OpCode(interp.code[pc])
		pc++
		opCount++

		opFn := interp.jt[op]
		if opFn == nil {
			// Unknown opcodes are no-ops (spec.md's Design Notes).
			continue
		}

		if s.Len() < opFn.minStack {
			log.WithFields(logrus.Fields{"opcode": op.String(), "pc": pc - 1, "depth": s.Len()}).
				Error("stack underflow")
			return nil, ErrStackUnderflow
		}
		if interp.cfg.MaxStackDepth > 0 && s.Len()+opFn.stackPushes > interp.cfg.MaxStackDepth {
			log.WithFields(logrus.Fields{"opcode": op.String(), "pc": pc - 1, "depth": s.Len()}).
				Error("stack overflow")
			return nil, ErrStackOverflow
		}

		err := opFn.execute(&pc, interp, scope)
		if err == nil {
			continue
		}
		if errors.Is(err, errStop) {
			log.WithFields(logrus.Fields{"opcodes": opCount, "pc": pc}).Debug("run complete")
			return resultOf(s, true), nil
		}
		if isHalt(err) {
			log.WithFields(logrus.Fields{"opcode": op.String(), "pc": pc - 1}).Debug("unsuccessful termination")
			return resultOf(s, false), nil
		}
		log.WithFields(logrus.Fields{"opcode": op.String(), "pc": pc - 1, "err": err}).Error("fatal abort")
		return nil, err
	}

	log.WithFields(logrus.Fields{"opcodes": opCount, "pc": pc}).Debug("run complete")
	return resultOf(s, true), nil
}

// resultOf snapshots s into a Result, translating from the
// internal bottom-first orientation to the external convention of
// §6/§9: index 0 of the returned slice is the most recently pushed
// value.
func resultOf(s *stack.Stack, success bool) *Result {
	data := s.Data()
	out := make([]uint256.Int, len(data))
	for i, v := range data {
		out[len(data)-1-i] = v
	}
	return &Result{Stack: out, Success: success}
}
