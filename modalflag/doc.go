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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode can have its own set of flags and sub-modes.
//
// Arguments are given with NewArgs() and then parsed with Parse(). Flags are
// added before the call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "RENDER")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected sub-mode, or the default (first)
// sub-mode if none was specified. Calling NewMode() then allows the flags
// for that mode to be added and parsed:
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		frames := md.AddInt("frames", 1, "number of frames to render")
//		p, err := md.Parse()
//		...
//	}
//
// Sub-mode comparisons are case insensitive. Help is printed to the Output
// writer when the -help flag is given, in which case Parse() returns
// ParseHelp.
package modalflag
