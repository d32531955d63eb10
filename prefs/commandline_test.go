// This file is part of Postfx.
//
// Postfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Postfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Postfx.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/postfx/prefs"
	"github.com/jetsetilly/postfx/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("bloom.threshold::0.8")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "bloom.threshold::0.8")

	// surrounding space is trimmed
	prefs.PushCommandLineStack("   hdr:: true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hdr::true")

	// unused values are returned sorted
	prefs.PushCommandLineStack("vignette.outer::0.9; bloom.power::1.5")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "bloom.power::1.5; vignette.outer::0.9")

	// invalid and partially invalid strings
	prefs.PushCommandLineStack("hdr_true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("hdr_true;greyscale.strength::1")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "greyscale.strength::1")

	// retrieved values are removed from the group
	prefs.PushCommandLineStack("hdr::true;bloom.power::2")
	ok, v := prefs.GetCommandLinePref("hdr")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("true"))
	ok, _ = prefs.GetCommandLinePref("hdr")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "bloom.power::2")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("hdr::true")
	prefs.PushCommandLineStack("bloom.power::2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "bloom.power::2")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hdr::true")
}
