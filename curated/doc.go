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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that want callers to test for a particular
// failure export the pattern as a constant. For example, the framebuffer
// package exports:
//
//	const InvalidSize = "framebuffer: invalid size (%dx%d)"
//
// and a caller can check for it:
//
//	err := tgt.Resize(0, 600)
//	if curated.Is(err, framebuffer.InvalidSize) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	err := tgt.Resize(0, 600)
//	f := curated.Errorf("chain: %v", err)
//
//	if curated.Has(f, framebuffer.InvalidSize) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors, depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return curated.Errorf("chain: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return curated.Errorf("chain: hdr buffer: %v", err)
//	}
//
// The message will be:
//
//	chain: hdr buffer: ...
//
// and not:
//
//	chain: chain: hdr buffer: ...
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Curated errors wrap any error value given to them so the standard library
// errors.Is() and errors.As() functions work through a curated error.
package curated
