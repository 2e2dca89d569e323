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

// Package stack implements the operand stack (spec.md §4.2): a LIFO
// of 256-bit Words with peek/poke at depth. The stack itself performs
// no bounds checking — that mirrors how a dense opcode dispatcher
// validates minimum/maximum depth once, ahead of the call, rather
// than on every push/pop; callers that skip that validation get a
// plain Go slice-index panic, same as the teacher interpreter does.
package stack

import (
	"sync"

	"github.com/holiman/uint256"
)

// Stack is a LIFO of 256-bit words.
type Stack struct {
	data []uint256.Int
}

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

// New returns an empty Stack, reused from a pool where possible.
func New() *Stack {
	return stackPool.Get().(*Stack)
}

// ReturnNormalStack clears s and returns it to the pool.
func ReturnNormalStack(s *Stack) {
	s.Reset()
	stackPool.Put(s)
}

// Data exposes the backing slice, bottom-first, for callers (such as
// the public Result conversion) that need to walk the whole stack.
func (s *Stack) Data() []uint256.Int { return s.data }

// Reset empties the stack without releasing its backing array.
func (s *Stack) Reset() {
	s.data = s.data[:0]
}

// Len returns the number of elements currently on the stack.
func (s *Stack) Len() int {
	return len(s.data)
}

// Cap returns the backing array's capacity.
func (s *Stack) Cap() int {
	return cap(s.data)
}

// Push appends v to the top of the stack. v is copied by value.
func (s *Stack) Push(v *uint256.Int) {
	s.data = append(s.data, *v)
}

// PushN appends each of vs, in order, so the last element of vs ends
// up on top.
func (s *Stack) PushN(vs ...uint256.Int) {
	s.data = append(s.data, vs...)
}

// Pop removes and returns the top element.
func (s *Stack) Pop() *uint256.Int {
	n := len(s.data) - 1
	v := s.data[n]
	s.data = s.data[:n]
	return &v
}

// Peek returns the top element without removing it.
func (s *Stack) Peek() *uint256.Int {
	return &s.data[len(s.data)-1]
}

// Back returns the element n positions below the top, 0-indexed
// (Back(0) is the top, same element Peek returns).
func (s *Stack) Back(n int) *uint256.Int {
	return &s.data[len(s.data)-n-1]
}

// Dup pushes a copy of the n-th element from the top (1-indexed; 1 is
// the current top), implementing DUP1..DUP16.
func (s *Stack) Dup(n int) {
	s.data = append(s.data, s.data[len(s.data)-n])
}

// Swap exchanges the current top with the n-th element from the top
// (1-indexed from the top, so Swap(1) is a no-op and Swap(2)
// implements SWAP1, Swap(k+1) implements SWAPk).
func (s *Stack) Swap(n int) {
	l := len(s.data)
	s.data[l-n], s.data[l-1] = s.data[l-1], s.data[l-n]
}
