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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate the filename of rendered frames when no filename has been
// specified.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// If ext is empty then the returned string has no extension.
func UniqueFilename(prepend string, ext string) string {
	return uniqueFilename(time.Now(), prepend, ext)
}

func uniqueFilename(n time.Time, prepend string, ext string) string {
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	fn := fmt.Sprintf("%s_%s", strings.TrimSpace(prepend), timestamp)

	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if len(ext) > 0 {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
