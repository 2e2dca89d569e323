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
	"bytes"
	"errors"
	"testing"

	"github.com/holiman/uint256"
)

func TestMemoryNew(t *testing.T) {
	mem := NewMemory()
	if mem == nil {
		t.Fatal("NewMemory returned nil")
	}
	if mem.Len() != 0 {
		t.Errorf("new memory should be empty, got len %d", mem.Len())
	}
	if cap(mem.store) < 4*1024 {
		t.Errorf("initial capacity should be at least 4KB, got %d", cap(mem.store))
	}
}

func TestMemoryResize(t *testing.T) {
	tests := []struct {
		name     string
		size     uint64
		expected int
	}{
		{"resize_to_zero", 0, 0},
		{"resize_to_32", 32, 32},
		{"resize_to_64", 64, 64},
		{"resize_to_1024", 1024, 1024},
		{"resize_to_4096", 4096, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemory()
			mem.Resize(tt.size)
			if mem.Len() != tt.expected {
				t.Errorf("after Resize(%d), Len() = %d, want %d", tt.size, mem.Len(), tt.expected)
			}
		})
	}
}

func TestMemoryResizeMonotone(t *testing.T) {
	mem := NewMemory()

	mem.Resize(32)
	if mem.Len() != 32 {
		t.Fatalf("first resize: expected len 32, got %d", mem.Len())
	}
	mem.Resize(64)
	if mem.Len() != 64 {
		t.Fatalf("second resize: expected len 64, got %d", mem.Len())
	}
	mem.Resize(32)
	if mem.Len() != 64 {
		t.Fatalf("shrinking resize should not shrink: expected len 64, got %d", mem.Len())
	}
}

func TestMemoryResizeZerosNewRegion(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)
	mem.Set(0, 32, bytes.Repeat([]byte{0xff}, 32))
	mem.Reset()

	mem2 := NewMemory()
	mem2.Resize(32)
	if got := mem2.GetCopy(0, 32); !bytes.Equal(got, make([]byte, 32)) {
		t.Errorf("freshly grown region should read as zero, got %x", got)
	}
}

func TestMemorySet(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0x01, 0x02, 0x03, 0x04}
	mem.Set(0, uint64(len(data)), data)
	if got := mem.GetCopy(0, int64(len(data))); !bytes.Equal(got, data) {
		t.Errorf("Set data mismatch: got %x, want %x", got, data)
	}

	mem.Set(32, uint64(len(data)), data)
	if got := mem.GetCopy(32, int64(len(data))); !bytes.Equal(got, data) {
		t.Errorf("Set at offset mismatch: got %x, want %x", got, data)
	}
}

func TestMemorySetZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)
	mem.Set(100, 0, []byte{0x01, 0x02})
	if mem.Len() != 32 {
		t.Errorf("zero-size set changed memory length: got %d, want 32", mem.Len())
	}
}

func TestMemorySet32(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	val := uint256.NewInt(0x12345678)
	mem.Set32(0, val)

	data := mem.GetPtr(0, 32)
	expected := val.Bytes32()
	if !bytes.Equal(data, expected[:]) {
		t.Errorf("Set32 mismatch: got %x, want %x", data, expected)
	}
}

func TestMemoryGetCopy(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	mem.Set(10, uint64(len(data)), data)

	copy1 := mem.GetCopy(10, 4)
	copy2 := mem.GetCopy(10, 4)
	copy1[0] = 0xFF
	if copy2[0] != 0xAA {
		t.Error("GetCopy should return independent copies")
	}
}

func TestMemoryGetCopyZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)
	if result := mem.GetCopy(0, 0); result != nil {
		t.Error("GetCopy with size 0 should return nil")
	}
}

func TestMemoryGetPtr(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0x11, 0x22, 0x33, 0x44}
	mem.Set(0, uint64(len(data)), data)

	ptr := mem.GetPtr(0, 4)
	if !bytes.Equal(ptr, data) {
		t.Errorf("GetPtr mismatch: got %x, want %x", ptr, data)
	}

	ptr[0] = 0xFF
	if ptr2 := mem.GetPtr(0, 4); ptr2[0] != 0xFF {
		t.Error("GetPtr should return reference to internal storage")
	}
}

func TestMemoryData(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	data := mem.Data()
	if len(data) != 32 {
		t.Errorf("Data() length mismatch: got %d, want 32", len(data))
	}
	data[0] = 0xAB
	if internal := mem.Data(); internal[0] != 0xAB {
		t.Error("Data() should return internal storage")
	}
}

func TestMemoryCopyOverlapping(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	mem.Set(0, uint64(len(data)), data)

	mem.Copy(2, 0, 4)

	expected := []byte{0x01, 0x02, 0x01, 0x02, 0x03, 0x04, 0x07, 0x08}
	if result := mem.GetCopy(0, 8); !bytes.Equal(result, expected) {
		t.Errorf("overlapping copy mismatch: got %x, want %x", result, expected)
	}
}

func TestMemoryStore32Load32RoundTrip(t *testing.T) {
	mem := NewMemory()
	val := new(uint256.Int).SetAllOne()
	if err := mem.Store32(0, val); err != nil {
		t.Fatalf("Store32: %v", err)
	}

	got, err := mem.Load32(0)
	if err != nil {
		t.Fatalf("Load32: %v", err)
	}
	if got.Cmp(val) != 0 {
		t.Errorf("Store32/Load32 round trip mismatch: got %v, want %v", got, val)
	}
	if mem.Len() != 32 {
		t.Errorf("Store32(0,...) should touch offset 31, giving size 32; got %d", mem.Len())
	}
}

func TestMemoryStore8(t *testing.T) {
	mem := NewMemory()
	if err := mem.Store8(5, uint256.NewInt(0xAB)); err != nil {
		t.Fatalf("Store8: %v", err)
	}
	if mem.store[5] != 0xAB {
		t.Errorf("Store8 wrote %x, want 0xab", mem.store[5])
	}
	if mem.Len() != 32 {
		t.Errorf("Store8(5,...) should round size up to 32, got %d", mem.Len())
	}
}

func TestMemoryLoad32AbsentIsZero(t *testing.T) {
	mem := NewMemory()
	got, err := mem.Load32(64)
	if err != nil {
		t.Fatalf("Load32: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("Load32 of untouched memory should be zero, got %v", got)
	}
}

func TestMemoryLoadN(t *testing.T) {
	mem := NewMemory()
	val := new(uint256.Int).SetAllOne()
	if err := mem.Store32(0, val); err != nil {
		t.Fatalf("Store32: %v", err)
	}

	got, err := mem.LoadN(0, 4)
	if err != nil {
		t.Fatalf("LoadN: %v", err)
	}
	if !bytes.Equal(got, []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("LoadN(0,4) = %x, want ffffffff", got)
	}
}

func TestMemoryLoadNZeroSize(t *testing.T) {
	mem := NewMemory()
	before := mem.Len()
	got, err := mem.LoadN(1000, 0)
	if err != nil {
		t.Fatalf("LoadN: %v", err)
	}
	if got != nil {
		t.Error("LoadN with size 0 should return nil")
	}
	if mem.Len() != before {
		t.Error("LoadN with size 0 should not touch memory")
	}
}

func TestMemorySizeMonotone(t *testing.T) {
	mem := NewMemory()
	sizes := []int{}
	mem.Load32(0)
	sizes = append(sizes, mem.Len())
	mem.Store8(100, uint256.NewInt(1))
	sizes = append(sizes, mem.Len())
	mem.Load32(0)
	sizes = append(sizes, mem.Len())

	for i := 1; i < len(sizes); i++ {
		if sizes[i] < sizes[i-1] {
			t.Errorf("MSIZE-equivalent decreased: %v", sizes)
		}
	}
}

func TestMemoryWithLimitRejectsGrowthBeyondCap(t *testing.T) {
	mem := NewMemoryWithLimit(64)
	if err := mem.Store8(63, uint256.NewInt(1)); err != nil {
		t.Fatalf("Store8 within cap: %v", err)
	}
	if err := mem.Store8(64, uint256.NewInt(1)); !errors.Is(err, ErrMemoryLimitExceeded) {
		t.Errorf("Store8 beyond cap = %v, want ErrMemoryLimitExceeded", err)
	}
}

func TestMemoryWithLimitZeroIsUnbounded(t *testing.T) {
	mem := NewMemoryWithLimit(0)
	if err := mem.Store8(1<<20, uint256.NewInt(1)); err != nil {
		t.Errorf("limit 0 should be unbounded, got %v", err)
	}
}

func TestMemoryOffsetOverflowIsRejected(t *testing.T) {
	mem := NewMemory()
	hugeOffset := ^uint64(0) - 1

	if _, err := mem.Load32(hugeOffset); !errors.Is(err, ErrMemoryLimitExceeded) {
		t.Errorf("Load32 near MaxUint64 = %v, want ErrMemoryLimitExceeded", err)
	}
	if err := mem.Store32(hugeOffset, uint256.NewInt(1)); !errors.Is(err, ErrMemoryLimitExceeded) {
		t.Errorf("Store32 near MaxUint64 = %v, want ErrMemoryLimitExceeded", err)
	}
	if _, err := mem.LoadN(hugeOffset, 32); !errors.Is(err, ErrMemoryLimitExceeded) {
		t.Errorf("LoadN near MaxUint64 = %v, want ErrMemoryLimitExceeded", err)
	}
}

func TestMemoryReset(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)
	mem.Set(0, 32, make([]byte, 32))

	mem.Reset()

	if mem.Len() != 0 {
		t.Errorf("after Reset, Len should be 0, got %d", mem.Len())
	}
}

func BenchmarkMemoryResize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mem := NewMemory()
		mem.Resize(1024)
	}
}

func BenchmarkMemorySet32(b *testing.B) {
	mem := NewMemory()
	mem.Resize(1024)
	val := uint256.NewInt(12345678)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem.Set32(0, val)
	}
}

func BenchmarkMemoryLoad32(b *testing.B) {
	mem := NewMemory()
	mem.Resize(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem.Load32(0)
	}
}

func BenchmarkMemoryCopy(b *testing.B) {
	mem := NewMemory()
	mem.Resize(1024)
	mem.Set(0, 32, make([]byte, 32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem.Copy(512, 0, 32)
	}
}
