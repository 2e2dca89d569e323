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
	"github.com/holiman/uint256"
)

// Memory is the linear byte-addressed store of spec.md §4.3: absent
// offsets read as zero, and store grows lazily to the highest offset
// any read or write has touched, rounded up to the next 32-byte word.
// Backed by a dense []byte buffer rather than a sparse map, as the
// spec's Design Notes explicitly permit — this module's expected
// workloads touch small, contiguous ranges, where a dense buffer beats
// a hash map on every access.
type Memory struct {
	store []byte

	// limit is the optional cap from Config.MaxMemory (spec.md §5): the
	// largest size in bytes touch may ever grow store to. 0 means
	// unbounded.
	limit uint64
}

// NewMemory returns an empty, unbounded Memory with a pre-sized
// backing buffer, pulled from the shared MemoryPool size classes the
// teacher's pool.go already defines, so repeated Run calls reuse
// allocations instead of growing a fresh buffer from zero each time.
func NewMemory() *Memory {
	return &Memory{store: GetMemory(4 * 1024)[:0]}
}

// NewMemoryWithLimit is like NewMemory but enforces limit as the
// largest size in bytes touch may grow store to (Config.MaxMemory wired
// through by Interpreter.Run). limit == 0 means unbounded.
func NewMemoryWithLimit(limit uint64) *Memory {
	m := NewMemory()
	m.limit = limit
	return m
}

// Len returns the current size in bytes: the highest 32-byte-aligned
// boundary touched so far.
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the backing buffer directly; callers that mutate it
// mutate m.
func (m *Memory) Data() []byte {
	return m.store
}

// Resize grows the backing buffer to exactly size bytes if it is
// currently smaller. The interpreter's only caller, touch, always
// passes a value already rounded to a 32-byte boundary; Resize
// itself never shrinks and never
// rounds, mirroring the monotonicity invariant in spec.md §3.
func (m *Memory) Resize(size uint64) {
	old := uint64(len(m.store))
	if old >= size {
		return
	}
	if uint64(cap(m.store)) >= size {
		m.store = m.store[:size]
	} else {
		n, ok := SafeUint64ToInt(size)
		if !ok {
			n = int(^uint(0) >> 1) // clamp: GetMemory will allocate exactly what's askable
		}
		next := GetMemory(n)
		copy(next, m.store)
		m.store = next
	}
	// The pool hands back previously-used buffers; the newly exposed
	// region must read as zero per spec.md §3's "absent reads are
	// zero" invariant, regardless of what a prior Run left behind.
	clear(m.store[old:])
}

// Set writes data into the backing buffer starting at offset. The
// caller is responsible for having already grown the buffer (via
// Resize) to cover offset+size.
func (m *Memory) Set(offset, size uint64, data []byte) {
	if size == 0 {
		return
	}
	copy(m.store[offset:offset+size], data)
}

// Set32 writes the 32 big-endian bytes of val starting at offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// GetCopy returns an independent copy of size bytes starting at
// offset. Returns nil if size is zero.
func (m *Memory) GetCopy(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	if int64(len(m.store)) < offset+size {
		return nil
	}
	cpy := make([]byte, size)
	copy(cpy, m.store[offset:offset+size])
	return cpy
}

// GetPtr returns a slice aliasing the backing buffer directly: size
// bytes starting at offset. Returns nil if size is zero.
func (m *Memory) GetPtr(offset, size int) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Copy moves len bytes from src to dst within the same buffer,
// correctly handling overlap (matching Go's builtin copy semantics,
// which always copies as if through a temporary when src and dst
// overlap).
func (m *Memory) Copy(dst, src, length uint64) {
	if length == 0 {
		return
	}
	copy(m.store[dst:dst+length], m.store[src:src+length])
}

// roundUp32 returns the smallest multiple of 32 that is >= n.
func roundUp32(n uint64) uint64 {
	return (n + 31) &^ 31
}

// roundUp32Checked is roundUp32(t+1), the size touch grows store to,
// guarded against the uint64 wraparound that t+1 (and the +31 inside
// roundUp32) can suffer when t sits near math.MaxUint64. A wrap here
// would silently turn a huge, invalid offset into a small "size" and
// let it slip past the MaxMemory cap below, so both additions are
// checked explicitly; ok is false on either overflow.
func roundUp32Checked(t uint64) (size uint64, ok bool) {
	if t == ^uint64(0) {
		return 0, false
	}
	n := t + 1
	size = (n + 31) &^ 31
	return size, size >= n
}

// touch grows the buffer so that byte offset t is addressable,
// rounding the new size up to the next 32-byte boundary per spec.md
// §4.3's size-bookkeeping rule. Returns ErrMemoryLimitExceeded
// (spec.md §5) if the grown size would overflow uint64 or exceed the
// Memory's configured limit.
func (m *Memory) touch(t uint64) error {
	size, ok := roundUp32Checked(t)
	if !ok || (m.limit > 0 && size > m.limit) {
		return ErrMemoryLimitExceeded
	}
	m.Resize(size)
	return nil
}

// addOverflows64 reports whether a+b overflows uint64.
func addOverflows64(a, b uint64) bool {
	return a > ^uint64(0)-b
}

// Store32 writes the 32 big-endian bytes of w at off..off+32,
// touching off+31.
func (m *Memory) Store32(off uint64, w *uint256.Int) error {
	if addOverflows64(off, 31) {
		return ErrMemoryLimitExceeded
	}
	if err := m.touch(off + 31); err != nil {
		return err
	}
	m.Set32(off, w)
	return nil
}

// Store8 writes the least-significant byte of w at offset off,
// touching off.
func (m *Memory) Store8(off uint64, w *uint256.Int) error {
	if err := m.touch(off); err != nil {
		return err
	}
	m.store[off] = byte(w.Uint64())
	return nil
}

// Load32 reads 32 big-endian bytes from off..off+32, zero-filling any
// positions beyond what has been touched before, and returns them as
// a Word. Touches off+31.
func (m *Memory) Load32(off uint64) (*uint256.Int, error) {
	if addOverflows64(off, 31) {
		return nil, ErrMemoryLimitExceeded
	}
	if err := m.touch(off + 31); err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(m.store[off : off+32]), nil
}

// LoadN reads size bytes starting at off, zero-filling absent
// positions, and touches off+size-1 (unless size is zero, which
// touches nothing).
func (m *Memory) LoadN(off, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if addOverflows64(off, size-1) {
		return nil, ErrMemoryLimitExceeded
	}
	if err := m.touch(off + size - 1); err != nil {
		return nil, err
	}
	out := make([]byte, size)
	copy(out, m.store[off:off+size])
	return out, nil
}

// asMemoryOffset converts a stack operand to a uint64 memory
// offset/size, failing fatally (spec.md §4.7/§5) rather than
// truncating when w doesn't fit in 64 bits: a value this large could
// never address real memory, and silently wrapping it would alias
// distinct Word offsets onto the same byte, breaking spec.md §3's
// round-trip invariant.
func asMemoryOffset(w *uint256.Int) (uint64, error) {
	v, overflow := w.Uint64WithOverflow()
	if overflow {
		return 0, ErrMemoryLimitExceeded
	}
	return v, nil
}

// Reset empties the memory and returns its buffer to the pool,
// pulling a fresh one from the pool with length zero. A pooled buffer
// may still hold bytes from an earlier use; Resize zeroes each region
// as it exposes it.
func (m *Memory) Reset() {
	PutMemory(m.store)
	m.store = GetMemory(4 * 1024)[:0]
}
