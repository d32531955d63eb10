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

// Package prefs stores and persists user preferences. Preference values are
// typed (Bool, Int, Float, String, Vec4, Generic) and can be given hook
// functions that run when the value changes. A Disk instance collects
// preference values under string keys and loads/saves them to a file.
package prefs

// list of preference values that are no longer used. they are dropped from
// the preferences file the next time it is saved.
var defunct = []string{
	"bloom.radius",
	"chain.blend",
}

// returns true if string is in list of defunct values.
func isDefunct(s string) bool {
	for _, m := range defunct {
		if s == m {
			return true
		}
	}
	return false
}
