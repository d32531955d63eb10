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

package effects

import (
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/gpu"
)

// NotImplemented is the pattern of the error used to panic when Apply() is
// called on an effect that has not implemented it. Base cannot see the type
// that embeds it so the effect is not named.
const NotImplemented = "effects: effect does not implement Apply()"

// Kind identifies an effect variant.
type Kind int

// List of valid Kind values.
const (
	KindBloom Kind = iota
	KindTonemap
	KindVignette
	KindGreyScale
	KindSplitTone
	KindChromaticAberration
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBloom:
		return "bloom"
	case KindTonemap:
		return "tonemap"
	case KindVignette:
		return "vignette"
	case KindGreyScale:
		return "greyscale"
	case KindSplitTone:
		return "splittone"
	case KindChromaticAberration:
		return "chromatic aberration"
	case KindCustom:
		return "custom"
	}
	return "unknown effect"
}

// Effect is implemented by every effect that can be added to a chain.
type Effect interface {
	Kind() Kind

	Enabled() bool
	SetEnabled(enabled bool)

	// Tonemapping effects convert HDR values to LDR. The value never changes
	// for the lifetime of the effect
	Tonemapping() bool

	// Resize is called by the chain whenever the frame size changes. It is
	// never called during Apply()
	Resize(width int32, height int32) error

	// Apply the effect, reading from the source of the binding and writing
	// to the destination
	Apply(b framebuffer.Binding)

	// Release all GPU resources owned by the effect. It is safe to call
	// Release() more than once
	Release()
}

// Environment is given to every Factory. The quad and the blit program are
// owned by the chain and must not be released by the effect.
type Environment struct {
	Ctx  gpu.Context
	Quad gpu.Quad

	// Blit copies the texture at slot zero
	Blit gpu.Program

	Width  int32
	Height int32
}

// Factory creates an effect.
type Factory[T Effect] func(env Environment) (T, error)

// Base implements the parts of the Effect interface that are common to most
// effects. The zero value is an enabled custom effect with no resources.
type Base struct {
	disabled bool
}

// Kind implements the Effect interface.
func (b *Base) Kind() Kind {
	return KindCustom
}

// Enabled implements the Effect interface.
func (b *Base) Enabled() bool {
	return !b.disabled
}

// SetEnabled implements the Effect interface.
func (b *Base) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Tonemapping implements the Effect interface.
func (b *Base) Tonemapping() bool {
	return false
}

// Resize implements the Effect interface.
func (b *Base) Resize(_ int32, _ int32) error {
	return nil
}

// Apply implements the Effect interface. Effects must provide their own
// Apply() function. Calling this implementation panics.
func (b *Base) Apply(_ framebuffer.Binding) {
	panic(curated.Errorf(NotImplemented))
}

// Release implements the Effect interface.
func (b *Base) Release() {
}
