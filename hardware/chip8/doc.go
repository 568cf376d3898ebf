// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package chip8 implements the CHIP-8 interpreter: the fetch-decode-execute
// engine, the 4KiB address space, register file and call stack, the 60Hz
// delay/sound timers, and the 64x32 monochrome framebuffer with its dirty
// map.
//
// The interpreter is single-threaded and cooperative. Loop() is the only
// scheduler and must be called from one context; it runs one instruction per
// CPU tick and one timer service per 60Hz tick. Display back-ends consume
// the Screen() and Dirty() surfaces when NeedToDraw() reports a frame, and
// the keypad layer feeds SetKeyState() from the same context as Loop().
//
// Guest programs cannot crash the interpreter. Out-of-range addresses are
// reduced by mask, stack overflow and underflow are clamped, and unknown
// opcodes are skipped. A well-typed but nonsensical program may loop forever
// or paint garbage; that is the contract.
package chip8
