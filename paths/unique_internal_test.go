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
	"testing"
	"time"

	"github.com/jetsetilly/postfx/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 7, 9, 5, 1, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename(n, "postfx", "png"), "postfx_20240307_090501.png")
	test.ExpectEquality(t, uniqueFilename(n, "postfx", ".png"), "postfx_20240307_090501.png")
	test.ExpectEquality(t, uniqueFilename(n, " frame ", ""), "frame_20240307_090501")
}
