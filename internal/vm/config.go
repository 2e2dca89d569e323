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

// Config holds the two knobs spec.md §3/§5 permits an implementation
// to enforce. Both are optional ceilings, not requirements of the
// core semantics: passing the zero Config leaves them unbounded.
type Config struct {
	// MaxStackDepth caps the operand stack (spec.md §3: "implementations
	// MAY bound depth at 1024"). 0 means unbounded.
	MaxStackDepth int

	// MaxMemory caps the size in bytes Memory may grow to, so the
	// highest addressable offset is MaxMemory-1 (spec.md §5:
	// "implementations MAY cap memory"). 0 means unbounded.
	MaxMemory uint64
}

// DefaultConfig returns the conventional EVM ceilings: a 1024-deep
// stack and no memory cap (matching the reference contract, which
// "imposes no cap" per spec.md §5).
func DefaultConfig() Config {
	return Config{
		MaxStackDepth: 1024,
		MaxMemory:     0,
	}
}
