// This file is part of ShiftFeel.
//
// ShiftFeel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ShiftFeel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ShiftFeel.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/shiftfeel/shiftfeel/curated"
	"github.com/shiftfeel/shiftfeel/test"
)

func TestErrorPatterns(t *testing.T) {
	e := curated.Errorf("sdlpad: %v", "no such device")

	test.Equate(t, e.Error(), "sdlpad: no such device")
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "sdlpad: %v"))
	test.ExpectedFailure(t, curated.Is(e, "capture: %v"))

	// plain errors are not curated errors
	p := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, "plain"))
}

func TestErrorChains(t *testing.T) {
	inner := curated.Errorf("inner: %v", "detail")
	outer := curated.Errorf("outer: %v", inner)

	test.Equate(t, outer.Error(), "outer: inner: detail")
	test.ExpectedSuccess(t, curated.Has(outer, "inner: %v"))
	test.ExpectedFailure(t, curated.Has(outer, "unseen: %v"))
}

func TestErrorDeduplication(t *testing.T) {
	// duplicate adjacent message parts are folded
	inner := curated.Errorf("sdlpad: %v", "rumble failed")
	outer := curated.Errorf("sdlpad: %v", inner)

	test.Equate(t, outer.Error(), "sdlpad: rumble failed")
}
