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

package logger

import (
	"testing"

	"github.com/degiel1982/gopher8/test"
)

func TestLogger(t *testing.T) {
	tw := &test.Writer{}

	l := newLogger(100)
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	l.log("test", "this is a test")
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	l.logf("test", "this is a %s", "formatted test")

	tw = &test.Writer{}
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest: this is a formatted test\n"))
}

func TestRepeats(t *testing.T) {
	tw := &test.Writer{}

	l := newLogger(100)
	l.log("test", "same entry")
	l.log("test", "same entry")
	l.log("test", "same entry")
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: same entry (repeat x3)\n"))

	// a different tag breaks the run
	l.log("other", "same entry")
	tw = &test.Writer{}
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: same entry (repeat x3)\nother: same entry\n"))
}

func TestTail(t *testing.T) {
	tw := &test.Writer{}

	l := newLogger(100)
	l.log("test", "A")
	l.log("test", "B")
	l.log("test", "C")

	l.tail(tw, 2)
	test.ExpectedSuccess(t, tw.Compare("test: B\ntest: C\n"))

	// asking for more entries than exist is not an error
	tw = &test.Writer{}
	l.tail(tw, 100)
	test.ExpectedSuccess(t, tw.Compare("test: A\ntest: B\ntest: C\n"))
}

func TestMaxEntries(t *testing.T) {
	tw := &test.Writer{}

	l := newLogger(2)
	l.log("test", "A")
	l.log("test", "B")
	l.log("test", "C")

	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: B\ntest: C\n"))
}

func TestClear(t *testing.T) {
	tw := &test.Writer{}

	l := newLogger(100)
	l.log("test", "A")
	l.clear()
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))
}

func TestEcho(t *testing.T) {
	tw := &test.Writer{}

	l := newLogger(100)
	l.setEcho(tw)
	l.log("test", "echoed")
	test.ExpectedSuccess(t, tw.Compare("test: echoed\n"))

	l.setEcho(nil)
	l.log("test", "not echoed")
	test.ExpectedSuccess(t, tw.Compare("test: echoed\n"))
}
