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

package chip8

import (
	"fmt"
	"strings"
)

// the depth of the call stack. a CALL at full depth is a soft no-op.
const stackDepth = 16

// registers is the CHIP-8 register file. VF is a real register, writable by
// programs, but it is overwritten by the instructions that document it as
// their carry/collision output.
type registers struct {
	PC    uint16
	Index uint16
	Stack [stackDepth]uint16

	// SP points at the next free stack slot. valid range is 0 to 16
	// inclusive
	SP uint8

	DelayTimer uint8
	SoundTimer uint8

	V [16]uint8
}

func (reg *registers) reset() {
	reg.PC = RomOrigin
	reg.Index = 0
	reg.Stack = [stackDepth]uint16{}
	reg.SP = 0
	reg.DelayTimer = 0
	reg.SoundTimer = 0
	reg.V = [16]uint8{}
}

func (reg registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d DT=%d ST=%d\n", reg.PC, reg.Index, reg.SP, reg.DelayTimer, reg.SoundTimer))
	for i, v := range reg.V {
		s.WriteString(fmt.Sprintf("V%X=%#02x ", i, v))
	}
	return strings.TrimSpace(s.String())
}
