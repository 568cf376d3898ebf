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

// Package ticker supplies the two periodic ticks that drive the interpreter.
//
// The original machine offers two ways of generating the ticks: polling a
// free-running millisecond counter, or arming two hardware timers whose
// interrupt handlers set flags. Both are reproduced here. The Polled type is
// the default and is fully deterministic when given a stubbed clock. The
// Interrupt type trades determinism for not having to read the clock on
// every loop iteration.
package ticker
