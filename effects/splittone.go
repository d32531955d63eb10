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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/shaders"
)

// SplitTone tints dark areas of the frame with one colour and bright areas
// with another. The alpha channel of each colour is the strength of the
// tint.
type SplitTone struct {
	single
	shadowColor    mgl32.Vec4
	highlightColor mgl32.Vec4
	balance        float32
}

// NewSplitTone is a Factory for the SplitTone effect.
func NewSplitTone(env Environment) (*SplitTone, error) {
	s, err := newSingle(env, shaders.SplitTone())
	if err != nil {
		return nil, err
	}
	st := &SplitTone{single: s}
	st.SetShadowColor(mgl32.Vec4{0.6, 0.8, 1.0, 0.5})
	st.SetHighlightColor(mgl32.Vec4{1.0, 0.85, 0.6, 0.5})
	st.SetBalance(0.0)
	return st, nil
}

// Kind implements the Effect interface.
func (st *SplitTone) Kind() Kind {
	return KindSplitTone
}

// ShadowColor is the tint of dark areas.
func (st *SplitTone) ShadowColor() mgl32.Vec4 {
	return st.shadowColor
}

// SetShadowColor sets the tint of dark areas.
func (st *SplitTone) SetShadowColor(v mgl32.Vec4) {
	st.shadowColor = v
	st.setVec4("u_shadow_color", v)
}

// HighlightColor is the tint of bright areas.
func (st *SplitTone) HighlightColor() mgl32.Vec4 {
	return st.highlightColor
}

// SetHighlightColor sets the tint of bright areas.
func (st *SplitTone) SetHighlightColor(v mgl32.Vec4) {
	st.highlightColor = v
	st.setVec4("u_highlight_color", v)
}

// Balance moves the boundary between shadows and highlights. Positive values
// favour the highlight colour.
func (st *SplitTone) Balance() float32 {
	return st.balance
}

// SetBalance sets the balance between shadows and highlights.
func (st *SplitTone) SetBalance(v float32) {
	st.balance = v
	st.setFloat("u_balance", v)
}
