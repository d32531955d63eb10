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

package chain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/prefs"
	"github.com/jetsetilly/postfx/resources"
)

// Preferences for the standard effect chain.
type Preferences struct {
	dsk *prefs.Disk

	HDR prefs.Bool

	Bloom          prefs.Bool
	BloomThreshold prefs.Float
	BloomPower     prefs.Float

	Tonemap          prefs.Bool
	TonemapThreshold prefs.Float
	TonemapExposure  prefs.Float

	Vignette              prefs.Bool
	VignetteInnerDistance prefs.Float
	VignetteOuterDistance prefs.Float
	VignetteColor         prefs.Vec4

	GreyScale         prefs.Bool
	GreyScaleStrength prefs.Float

	SplitTone               prefs.Bool
	SplitToneShadowColor    prefs.Vec4
	SplitToneHighlightColor prefs.Vec4
	SplitToneBalance        prefs.Float

	Chromatic       prefs.Bool
	ChromaticAmount prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	hdr                   = true
	bloom                 = true
	bloomThreshold        = 1.0
	bloomPower            = 1.0
	tonemap               = true
	tonemapThreshold      = 4.0
	tonemapExposure       = 1.0
	vignette              = true
	vignetteInnerDistance = 1.0
	vignetteOuterDistance = 2.0
	greyScale             = false
	greyScaleStrength     = 1.0
	splitTone             = false
	splitToneBalance      = 0.0
	chromatic             = false
	chromaticAmount       = 2.0
)

var (
	vignetteColor           = mgl32.Vec4{0.0, 0.0, 0.0, 1.0}
	splitToneShadowColor    = mgl32.Vec4{0.6, 0.8, 1.0, 0.5}
	splitToneHighlightColor = mgl32.Vec4{1.0, 0.85, 0.6, 0.5}
)

// the method set of every prefs type.
type value interface {
	fmt.Stringer
	Set(v prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file is in the postfx configuration
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit path
// for the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	entries := []struct {
		key string
		p   value
	}{
		{"chain.hdr", &p.HDR},
		{"bloom.enabled", &p.Bloom},
		{"bloom.threshold", &p.BloomThreshold},
		{"bloom.power", &p.BloomPower},
		{"tonemap.enabled", &p.Tonemap},
		{"tonemap.threshold", &p.TonemapThreshold},
		{"tonemap.exposure", &p.TonemapExposure},
		{"vignette.enabled", &p.Vignette},
		{"vignette.innerDistance", &p.VignetteInnerDistance},
		{"vignette.outerDistance", &p.VignetteOuterDistance},
		{"vignette.color", &p.VignetteColor},
		{"greyscale.enabled", &p.GreyScale},
		{"greyscale.strength", &p.GreyScaleStrength},
		{"splittone.enabled", &p.SplitTone},
		{"splittone.shadowColor", &p.SplitToneShadowColor},
		{"splittone.highlightColor", &p.SplitToneHighlightColor},
		{"splittone.balance", &p.SplitToneBalance},
		{"chromatic.enabled", &p.Chromatic},
		{"chromatic.amount", &p.ChromaticAmount},
	}

	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.HDR.Set(hdr)
	p.Bloom.Set(bloom)
	p.BloomThreshold.Set(bloomThreshold)
	p.BloomPower.Set(bloomPower)
	p.Tonemap.Set(tonemap)
	p.TonemapThreshold.Set(tonemapThreshold)
	p.TonemapExposure.Set(tonemapExposure)
	p.Vignette.Set(vignette)
	p.VignetteInnerDistance.Set(vignetteInnerDistance)
	p.VignetteOuterDistance.Set(vignetteOuterDistance)
	p.VignetteColor.Set(vignetteColor)
	p.GreyScale.Set(greyScale)
	p.GreyScaleStrength.Set(greyScaleStrength)
	p.SplitTone.Set(splitTone)
	p.SplitToneShadowColor.Set(splitToneShadowColor)
	p.SplitToneHighlightColor.Set(splitToneHighlightColor)
	p.SplitToneBalance.Set(splitToneBalance)
	p.Chromatic.Set(chromatic)
	p.ChromaticAmount.Set(chromaticAmount)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Configure replaces the effects in the chain with the standard effects, in
// the order bloom, tonemap, chromatic aberration, split tone, greyscale and
// vignette. The current preference values are applied and any future change
// to a preference is applied to the chain immediately.
func (p *Preferences) Configure(c *Chain) error {
	c.ResetEffects()

	if err := c.SetHDR(p.HDR.Get().(bool)); err != nil {
		return err
	}
	p.HDR.SetHookPost(func(v prefs.Value) error {
		return c.SetHDR(v.(bool))
	})

	bl, err := Add(c, effects.NewBloom)
	if err != nil {
		return err
	}
	bindEnabled(&p.Bloom, bl)
	bindFloat(&p.BloomThreshold, bl.SetThreshold)
	bindFloat(&p.BloomPower, bl.SetPower)

	tm, err := Add(c, effects.NewTonemap)
	if err != nil {
		return err
	}
	bindEnabled(&p.Tonemap, tm)
	bindFloat(&p.TonemapThreshold, tm.SetThreshold)
	bindFloat(&p.TonemapExposure, tm.SetExposure)

	ca, err := Add(c, effects.NewChromaticAberration)
	if err != nil {
		return err
	}
	bindEnabled(&p.Chromatic, ca)
	bindFloat(&p.ChromaticAmount, ca.SetAmount)

	st, err := Add(c, effects.NewSplitTone)
	if err != nil {
		return err
	}
	bindEnabled(&p.SplitTone, st)
	bindVec4(&p.SplitToneShadowColor, st.SetShadowColor)
	bindVec4(&p.SplitToneHighlightColor, st.SetHighlightColor)
	bindFloat(&p.SplitToneBalance, st.SetBalance)

	gs, err := Add(c, effects.NewGreyScale)
	if err != nil {
		return err
	}
	bindEnabled(&p.GreyScale, gs)
	bindFloat(&p.GreyScaleStrength, gs.SetStrength)

	vg, err := Add(c, effects.NewVignette)
	if err != nil {
		return err
	}
	bindEnabled(&p.Vignette, vg)
	bindFloat(&p.VignetteInnerDistance, vg.SetInnerDistance)
	bindFloat(&p.VignetteOuterDistance, vg.SetOuterDistance)
	bindVec4(&p.VignetteColor, vg.SetColor)

	return nil
}

// the bind functions apply the current value of the preference and then
// install a hook so that future values are also applied.

func bindEnabled(p *prefs.Bool, e effects.Effect) {
	e.SetEnabled(p.Get().(bool))
	p.SetHookPost(func(v prefs.Value) error {
		e.SetEnabled(v.(bool))
		return nil
	})
}

func bindFloat(p *prefs.Float, set func(float32)) {
	set(float32(p.Get().(float64)))
	p.SetHookPost(func(v prefs.Value) error {
		set(float32(v.(float64)))
		return nil
	})
}

func bindVec4(p *prefs.Vec4, set func(mgl32.Vec4)) {
	set(p.Get().(mgl32.Vec4))
	p.SetHookPost(func(v prefs.Value) error {
		set(v.(mgl32.Vec4))
		return nil
	})
}
