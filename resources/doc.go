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

// Package resources prepares paths for files used by postfx, such as the
// preferences file.
//
// The JoinPath() function returns the path to the resource specified in the
// arguments, rooted in a base path that depends on how the binary was built.
// Directories leading up to the resource are created as required but the
// resource itself is never touched.
//
// For builds with the "release" build tag the base path is in the user's
// configuration directory. On modern Linux systems this would be something
// like:
//
//	/home/user/.config/postfx/
//
// For non-"release" builds the base path is in the current working directory:
//
//	.postfx
//
// If a directory named "postfx_portable" exists in the working directory then
// that is used as the base path regardless of build.
package resources
