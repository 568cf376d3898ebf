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

package curated_test

import (
	"errors"
	"testing"

	"github.com/degiel1982/gopher8/curated"
	"github.com/degiel1982/gopher8/test"
)

const testError = "test error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "detail")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testError))
	test.ExpectedFailure(t, curated.Is(e, "some other error"))

	// plain errors are not curated errors
	p := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testError))

	// nil is nothing
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testError))
	test.ExpectedFailure(t, curated.Has(nil, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "detail")

	// an error wrapped in another error is found by Has() but not by Is()
	w := curated.Errorf("wrapping error: %v", e)
	test.ExpectedFailure(t, curated.Is(w, testError))
	test.ExpectedSuccess(t, curated.Has(w, testError))
	test.ExpectedSuccess(t, curated.Has(w, "wrapping error: %v"))

	// two levels of wrapping
	ww := curated.Errorf("outer error: %v", w)
	test.ExpectedSuccess(t, curated.Has(ww, testError))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent message parts are removed
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", errors.New("detail")))
	test.Equate(t, e.Error(), "error: detail")
}
