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

package chain_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/chain"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/gpu"
	"github.com/jetsetilly/postfx/gpu/software"
	"github.com/jetsetilly/postfx/test"
)

const incrementProgram = "increment"

// increment adds a small amount to the red channel.
func increment(u *software.Uniforms, uv mgl32.Vec2, tex software.Sampler) mgl32.Vec4 {
	return tex(u.Int("t_source"), uv).Add(mgl32.Vec4{0.125, 0, 0, 0})
}

// recorder is an effect that keeps a record of every binding it is given.
type recorder struct {
	effects.Base
	env         effects.Environment
	prg         gpu.Program
	tonemapping bool

	bindings []framebuffer.Binding
	resized  [][2]int32

	// resize returns an error for sizes that refuse returns true for
	refuse func(width int32, height int32) bool
}

const refused = "recorder: refused size (%dx%d)"

func newRecorder(tonemapping bool) effects.Factory[*recorder] {
	return func(env effects.Environment) (*recorder, error) {
		prg, err := env.Ctx.NewProgram(gpu.ShaderSource{Name: incrementProgram})
		if err != nil {
			return nil, err
		}
		prg.SetInt("t_source", 0)
		return &recorder{env: env, prg: prg, tonemapping: tonemapping}, nil
	}
}

func (r *recorder) Tonemapping() bool {
	return r.tonemapping
}

func (r *recorder) Resize(width int32, height int32) error {
	r.resized = append(r.resized, [2]int32{width, height})
	if r.refuse != nil && r.refuse(width, height) {
		return curated.Errorf(refused, width, height)
	}
	return nil
}

func (r *recorder) Apply(b framebuffer.Binding) {
	r.bindings = append(r.bindings, b)
	b.Bind(r.env.Ctx, 0)
	r.env.Quad.Render(r.prg)
}

func (r *recorder) Release() {
	if r.prg != nil {
		r.prg.Release()
		r.prg = nil
	}
}

// last binding given to the recorder.
func (r *recorder) last(t *testing.T) framebuffer.Binding {
	t.Helper()
	test.DemandSuccess(t, len(r.bindings) > 0)
	return r.bindings[len(r.bindings)-1]
}

func newContext(t *testing.T) *software.Context {
	t.Helper()
	ctx, err := software.NewContext(16, 16)
	test.DemandSuccess(t, err)
	ctx.RegisterFragment(incrementProgram, increment)
	return ctx
}

func newTarget(t *testing.T, ctx *software.Context, format gpu.Format, c mgl32.Vec4) *framebuffer.Target {
	t.Helper()
	tgt, err := framebuffer.NewTarget(ctx, 16, 16, format)
	test.DemandSuccess(t, err)
	ctx.Fill(tgt.Texture(), c)
	return tgt
}

func addRecorder(t *testing.T, c *chain.Chain, tonemapping bool) *recorder {
	t.Helper()
	r, err := chain.Add(c, newRecorder(tonemapping))
	test.DemandSuccess(t, err)
	return r
}

// no draw in the trace reads from the framebuffer it is writing to.
func expectNoFeedback(t *testing.T, trace []software.Draw) {
	t.Helper()
	for _, d := range trace {
		test.ExpectFailure(t, d.Feedback, d.Program)
	}
}

func TestInvalidSize(t *testing.T) {
	ctx := newContext(t)

	_, err := chain.NewChain(ctx, 0, 10, false)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidSize))
	_, err = chain.NewChain(ctx, 10, -1, true)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidSize))
	test.ExpectEquality(t, ctx.Allocated(), 0)

	c, err := chain.NewChain(ctx, 16, 16, false)
	test.DemandSuccess(t, err)
	defer c.Release()

	err = c.Resize(16, 0)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidSize))
	w, h := c.Dimensions()
	test.ExpectEquality(t, w, int32(16))
	test.ExpectEquality(t, h, int32(16))
}

func TestPassthrough(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	// a disabled effect is the same as no effect
	r := addRecorder(t, c, false)
	r.SetEnabled(false)

	src, err := framebuffer.NewTarget(ctx, 16, 16, gpu.FormatLDR)
	test.DemandSuccess(t, err)
	pix := make([]mgl32.Vec4, 16*16)
	for i := range pix {
		pix[i] = mgl32.Vec4{float32(i%16) / 15, float32(i/16) / 15, 0.5, 1}
	}
	test.DemandSuccess(t, ctx.Upload(src.Texture(), pix))

	dst := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{})

	ctx.StartTrace()
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	trace := ctx.StopTrace()

	test.ExpectEquality(t, len(r.bindings), 0)
	test.DemandEquality(t, len(trace), 1)
	test.ExpectEquality(t, trace[0].Sources[0], src.Texture())
	test.ExpectEquality(t, trace[0].Destination, dst.Framebuffer())

	// copy is exact
	expected := ctx.TexturePixels(src.Texture())
	for i, p := range ctx.TexturePixels(dst.Texture()) {
		test.ExpectEquality(t, p, expected[i], i)
	}
}

func TestScreenDestination(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, false)
	test.DemandSuccess(t, err)
	defer c.Release()

	src := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{0.5, 0.5, 0.5, 1})

	ctx.StartTrace()
	c.ApplyEffects(src.Texture(), nil)
	trace := ctx.StopTrace()
	test.DemandEquality(t, len(trace), 1)
	test.ExpectEquality(t, trace[0].Destination, ctx.Screen())

	r := addRecorder(t, c, false)
	c.ApplyEffects(src.Texture(), nil)
	test.ExpectEquality(t, r.last(t).Destination, ctx.Screen())
}

func TestSingleEffect(t *testing.T) {
	for _, hdr := range []bool{false, true} {
		for _, tonemapping := range []bool{false, true} {
			ctx := newContext(t)

			c, err := chain.NewChain(ctx, 16, 16, hdr)
			test.DemandSuccess(t, err)

			r := addRecorder(t, c, tonemapping)
			src := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{0.25, 0, 0, 1})
			dst := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{})

			ctx.StartTrace()
			c.ApplyEffects(src.Texture(), dst.Framebuffer())
			trace := ctx.StopTrace()

			// source is the input and destination is the output. no chain
			// buffer is touched
			test.DemandEquality(t, len(r.bindings), 1)
			test.ExpectEquality(t, r.bindings[0].Source, src.Texture(), hdr, tonemapping)
			test.ExpectEquality(t, r.bindings[0].Destination, dst.Framebuffer(), hdr, tonemapping)
			test.DemandEquality(t, len(trace), 1)

			for _, p := range ctx.TexturePixels(dst.Texture()) {
				test.ExpectEquality(t, p[0], float32(0.375))
			}

			c.Release()
		}
	}
}

func TestManyEffects(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, false)
	test.DemandSuccess(t, err)
	defer c.Release()

	r := []*recorder{
		addRecorder(t, c, false),
		addRecorder(t, c, false),
		addRecorder(t, c, false),
		addRecorder(t, c, false),
	}

	src := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{0.0, 0.5, 0.5, 1})
	dst := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{})

	// the routing is the same every frame
	for frame := 0; frame < 3; frame++ {
		ctx.StartTrace()
		c.ApplyEffects(src.Texture(), dst.Framebuffer())
		trace := ctx.StopTrace()
		test.ExpectEquality(t, len(trace), len(r))
		expectNoFeedback(t, trace)

		test.ExpectEquality(t, r[0].last(t).Source, src.Texture(), frame)
		for i := 1; i < len(r); i++ {
			test.ExpectEquality(t, r[i].last(t).Source, r[i-1].last(t).Destination.Texture(), frame, i)
		}
		for i := 0; i < len(r)-1; i++ {
			test.ExpectEquality(t, r[i].last(t).Destination.Format(), gpu.FormatLDR, frame, i)
		}
		test.ExpectEquality(t, r[len(r)-1].last(t).Destination, dst.Framebuffer(), frame)

		for _, p := range ctx.TexturePixels(dst.Texture()) {
			test.ExpectApproximate(t, p[0], 0.5, 0.01)
			test.ExpectApproximate(t, p[1], 0.5, 0.01)
		}
	}
}

func TestDisabledEffect(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, false)
	test.DemandSuccess(t, err)
	defer c.Release()

	a := addRecorder(t, c, false)
	b := addRecorder(t, c, false)
	d := addRecorder(t, c, false)
	e := addRecorder(t, c, false)
	b.SetEnabled(false)
	e.SetEnabled(false)

	src := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{0.0, 0.0, 0.0, 1})
	dst := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{})

	ctx.StartTrace()
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, len(ctx.StopTrace()), 2)

	test.ExpectEquality(t, len(b.bindings), 0)
	test.ExpectEquality(t, len(e.bindings), 0)

	// a disabled effect at the end of the list does not stop the last
	// enabled effect writing to the destination
	test.ExpectEquality(t, a.last(t).Source, src.Texture())
	test.ExpectEquality(t, d.last(t).Source, a.last(t).Destination.Texture())
	test.ExpectEquality(t, d.last(t).Destination, dst.Framebuffer())

	// enabling an effect takes effect on the next frame
	e.SetEnabled(true)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, len(e.bindings), 1)
	test.ExpectEquality(t, e.last(t).Source, d.last(t).Destination.Texture())
	test.ExpectEquality(t, e.last(t).Destination, dst.Framebuffer())
	test.ExpectInequality(t, d.last(t).Destination, dst.Framebuffer())
}

func TestTonemapRouting(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	a := addRecorder(t, c, false)
	tm := addRecorder(t, c, true)
	b := addRecorder(t, c, false)
	d := addRecorder(t, c, false)

	src := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{0.0, 0.0, 0.0, 1})
	dst := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{})

	ctx.StartTrace()
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	expectNoFeedback(t, ctx.StopTrace())

	// effects before the tonemap work in HDR
	test.ExpectEquality(t, a.last(t).Destination.Format(), gpu.FormatHDR)
	test.ExpectEquality(t, tm.last(t).Source, a.last(t).Destination.Texture())
	test.ExpectEquality(t, tm.last(t).Source.Format(), gpu.FormatHDR)

	// tonemap writes to the LDR buffer
	test.ExpectEquality(t, tm.last(t).Destination.Format(), gpu.FormatLDR)

	// and everything after the tonemap stays in LDR
	test.ExpectEquality(t, b.last(t).Source, tm.last(t).Destination.Texture())
	test.ExpectEquality(t, b.last(t).Destination.Format(), gpu.FormatLDR)
	test.ExpectEquality(t, d.last(t).Source, b.last(t).Destination.Texture())
	test.ExpectEquality(t, d.last(t).Source.Format(), gpu.FormatLDR)
	test.ExpectEquality(t, d.last(t).Destination, dst.Framebuffer())

	// a second tonemapping effect does not return processing to HDR
	tm2 := addRecorder(t, c, true)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, d.last(t).Destination.Format(), gpu.FormatLDR)
	test.ExpectEquality(t, tm2.last(t).Source, d.last(t).Destination.Texture())
	test.ExpectEquality(t, tm2.last(t).Destination, dst.Framebuffer())
}

func TestTonemapFirstAndLast(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	src := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{0.0, 0.0, 0.0, 1})
	dst := newTarget(t, ctx, gpu.FormatLDR, mgl32.Vec4{})

	// tonemap is first. the source override applies and the tonemap
	// override of the destination applies
	tm := addRecorder(t, c, true)
	a := addRecorder(t, c, false)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, tm.last(t).Source, src.Texture())
	test.ExpectEquality(t, tm.last(t).Destination.Format(), gpu.FormatLDR)
	test.ExpectEquality(t, a.last(t).Source, tm.last(t).Destination.Texture())
	test.ExpectEquality(t, a.last(t).Destination, dst.Framebuffer())

	// tonemap is last. the destination is the final destination
	c.ResetEffects()
	a = addRecorder(t, c, false)
	tm = addRecorder(t, c, true)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, a.last(t).Destination.Format(), gpu.FormatHDR)
	test.ExpectEquality(t, tm.last(t).Source, a.last(t).Destination.Texture())
	test.ExpectEquality(t, tm.last(t).Destination, dst.Framebuffer())
}

func TestHDRWithoutTonemap(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	a := addRecorder(t, c, false)
	b := addRecorder(t, c, false)
	d := addRecorder(t, c, false)

	src := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{2.0, 0.0, 0.0, 1})
	dst := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{})
	c.ApplyEffects(src.Texture(), dst.Framebuffer())

	test.ExpectEquality(t, a.last(t).Destination.Format(), gpu.FormatHDR)
	test.ExpectEquality(t, b.last(t).Destination.Format(), gpu.FormatHDR)
	test.ExpectEquality(t, d.last(t).Destination, dst.Framebuffer())

	// values above one survive the intermediate buffers
	for _, p := range ctx.TexturePixels(dst.Texture()) {
		test.ExpectEquality(t, p[0], float32(2.375))
	}

	// without HDR the intermediate buffers clamp
	test.DemandSuccess(t, c.SetHDR(false))
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, a.last(t).Destination.Format(), gpu.FormatLDR)
	for _, p := range ctx.TexturePixels(dst.Texture()) {
		test.ExpectEquality(t, p[0], float32(1.125))
	}
}

func TestHDRAllocation(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, false)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, c.HDR())

	// quad, blit program and two targets of texture and framebuffer
	test.ExpectEquality(t, ctx.Allocated(), 6)

	test.DemandSuccess(t, c.SetHDR(true))
	test.ExpectSuccess(t, c.HDR())
	test.ExpectEquality(t, ctx.Allocated(), 10)

	// enabling twice does not allocate twice
	test.DemandSuccess(t, c.SetHDR(true))
	test.ExpectEquality(t, ctx.Allocated(), 10)

	test.DemandSuccess(t, c.SetHDR(false))
	test.ExpectFailure(t, c.HDR())
	test.ExpectEquality(t, ctx.Allocated(), 6)

	test.DemandSuccess(t, c.SetHDR(true))
	addRecorder(t, c, false)
	addRecorder(t, c, true)
	test.ExpectEquality(t, ctx.Allocated(), 12)

	c.Release()
	test.ExpectEquality(t, ctx.Allocated(), 0)
}

func TestEffectList(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, false)
	test.DemandSuccess(t, err)
	defer c.Release()

	_, ok := c.Effect(effects.KindBloom)
	test.ExpectFailure(t, ok)

	bl, err := chain.Add(c, effects.NewBloom)
	test.DemandSuccess(t, err)
	vg, err := chain.Add(c, effects.NewVignette)
	test.DemandSuccess(t, err)
	r := addRecorder(t, c, false)

	e, ok := c.Effect(effects.KindBloom)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e, effects.Effect(bl))
	e, ok = c.Effect(effects.KindCustom)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e, effects.Effect(r))

	l := c.Effects()
	test.DemandEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0], effects.Effect(bl))
	test.ExpectEquality(t, l[1], effects.Effect(vg))
	test.ExpectEquality(t, l[2], effects.Effect(r))

	// the list is a copy
	l[0] = nil
	test.ExpectEquality(t, c.Effects()[0], effects.Effect(bl))

	// removing an effect releases it
	before := ctx.Allocated()
	test.ExpectSuccess(t, c.RemoveEffect(vg))
	test.ExpectEquality(t, ctx.Allocated(), before-1)
	test.ExpectEquality(t, len(c.Effects()), 2)
	_, ok = c.Effect(effects.KindVignette)
	test.ExpectFailure(t, ok)

	err = c.RemoveEffect(vg)
	test.ExpectSuccess(t, curated.Is(err, chain.UnknownEffect))

	c.ResetEffects()
	test.ExpectEquality(t, len(c.Effects()), 0)
	test.ExpectEquality(t, ctx.Allocated(), 6)
}

func TestResize(t *testing.T) {
	ctx, err := software.NewContext(800, 600)
	test.DemandSuccess(t, err)
	ctx.RegisterFragment(incrementProgram, increment)

	c, err := chain.NewChain(ctx, 800, 600, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	bl, err := chain.Add(c, effects.NewBloom)
	test.DemandSuccess(t, err)
	bl.SetEnabled(false)
	a := addRecorder(t, c, false)
	b := addRecorder(t, c, true)
	d := addRecorder(t, c, false)

	test.DemandSuccess(t, c.Resize(400, 300))
	w, h := c.Dimensions()
	test.ExpectEquality(t, w, int32(400))
	test.ExpectEquality(t, h, int32(300))

	// every effect is told about the new size
	for _, r := range []*recorder{a, b, d} {
		test.DemandEquality(t, len(r.resized), 1)
		test.ExpectEquality(t, r.resized[0], [2]int32{400, 300})
	}

	// bloom's private buffers are resized
	for _, tgt := range []*framebuffer.Target{bl.Half().Front(), bl.Half().Back()} {
		w, h := tgt.Dimensions()
		test.ExpectEquality(t, w, int32(200))
		test.ExpectEquality(t, h, int32(150))
	}
	for _, tgt := range []*framebuffer.Target{bl.Quarter().Front(), bl.Quarter().Back()} {
		w, h := tgt.Dimensions()
		test.ExpectEquality(t, w, int32(100))
		test.ExpectEquality(t, h, int32(75))
	}

	// the chain's buffers are resized
	src, err := framebuffer.NewTarget(ctx, 400, 300, gpu.FormatHDR)
	test.DemandSuccess(t, err)
	dst, err := framebuffer.NewTarget(ctx, 400, 300, gpu.FormatLDR)
	test.DemandSuccess(t, err)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())

	for _, fb := range []gpu.Framebuffer{a.last(t).Destination, b.last(t).Destination} {
		w, h := fb.Dimensions()
		test.ExpectEquality(t, w, int32(400))
		test.ExpectEquality(t, h, int32(300))
	}

	// resizing to the same size does nothing
	test.DemandSuccess(t, c.Resize(400, 300))
	test.ExpectEquality(t, len(a.resized), 1)
}

func expectFlipSize(t *testing.T, flp *framebuffer.Flip, width int32, height int32) {
	t.Helper()
	for _, tgt := range []*framebuffer.Target{flp.Front(), flp.Back()} {
		w, h := tgt.Dimensions()
		test.ExpectEquality(t, w, width)
		test.ExpectEquality(t, h, height)
	}
}

func TestFailedResize(t *testing.T) {
	ctx, err := software.NewContext(800, 600)
	test.DemandSuccess(t, err)
	ctx.RegisterFragment(incrementProgram, increment)

	c, err := chain.NewChain(ctx, 800, 600, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	bl, err := chain.Add(c, effects.NewBloom)
	test.DemandSuccess(t, err)
	r := addRecorder(t, c, false)
	r.refuse = func(width int32, height int32) bool {
		return width == 400 && height == 300
	}

	err = c.Resize(400, 300)
	test.ExpectSuccess(t, curated.Is(err, refused))

	// bloom was resized before the failure and has been returned to the
	// previous size
	w, h := c.Dimensions()
	test.ExpectEquality(t, w, int32(800))
	test.ExpectEquality(t, h, int32(600))
	expectFlipSize(t, bl.Half(), 400, 300)
	expectFlipSize(t, bl.Quarter(), 200, 150)
	test.DemandEquality(t, len(r.resized), 2)
	test.ExpectEquality(t, r.resized[1], [2]int32{800, 600})

	// the chain's buffers are at the previous size
	src, err := framebuffer.NewTarget(ctx, 800, 600, gpu.FormatHDR)
	test.DemandSuccess(t, err)
	dst, err := framebuffer.NewTarget(ctx, 800, 600, gpu.FormatLDR)
	test.DemandSuccess(t, err)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	w, h = r.last(t).Source.Dimensions()
	test.ExpectEquality(t, w, int32(800))
	test.ExpectEquality(t, h, int32(600))

	test.DemandSuccess(t, c.Resize(800, 600))
	expectFlipSize(t, bl.Half(), 400, 300)

	// a different size still works
	r.refuse = nil
	test.DemandSuccess(t, c.Resize(400, 300))
	expectFlipSize(t, bl.Half(), 200, 150)
	expectFlipSize(t, bl.Quarter(), 100, 75)
}

func TestFailedResizeRestore(t *testing.T) {
	ctx, err := software.NewContext(800, 600)
	test.DemandSuccess(t, err)
	ctx.RegisterFragment(incrementProgram, increment)

	c, err := chain.NewChain(ctx, 800, 600, false)
	test.DemandSuccess(t, err)
	defer c.Release()

	bl, err := chain.Add(c, effects.NewBloom)
	test.DemandSuccess(t, err)
	r := addRecorder(t, c, false)

	// the effect cannot be returned to the previous size either
	r.refuse = func(_ int32, _ int32) bool {
		return true
	}
	test.ExpectFailure(t, c.Resize(400, 300))
	test.DemandEquality(t, len(r.resized), 2)
	w, h := c.Dimensions()
	test.ExpectEquality(t, w, int32(800))
	test.ExpectEquality(t, h, int32(600))

	// resizing to the reported size is not skipped
	r.refuse = nil
	test.DemandSuccess(t, c.Resize(800, 600))
	test.DemandEquality(t, len(r.resized), 3)
	test.ExpectEquality(t, r.resized[2], [2]int32{800, 600})
	expectFlipSize(t, bl.Half(), 400, 300)

	// and once everything matches it is skipped again
	test.DemandSuccess(t, c.Resize(800, 600))
	test.ExpectEquality(t, len(r.resized), 3)
}

// blendContext counts the number of times the blend state is reset.
type blendContext struct {
	*software.Context
	resets int
}

func (ctx *blendContext) EnableOnly() {
	ctx.resets++
}

func TestBlendStateReset(t *testing.T) {
	ctx := &blendContext{Context: newContext(t)}

	c, err := chain.NewChain(ctx, 16, 16, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	src := newTarget(t, ctx.Context, gpu.FormatHDR, mgl32.Vec4{0.5, 0.5, 0.5, 1})
	dst := newTarget(t, ctx.Context, gpu.FormatLDR, mgl32.Vec4{})

	// passthrough
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, ctx.resets, 1)

	// with effects
	r := addRecorder(t, c, true)
	addRecorder(t, c, false)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	test.ExpectEquality(t, ctx.resets, 2)
	test.ExpectEquality(t, len(r.bindings), 1)
}

func TestBloomAndTonemap(t *testing.T) {
	ctx := newContext(t)

	c, err := chain.NewChain(ctx, 16, 16, true)
	test.DemandSuccess(t, err)
	defer c.Release()

	bl, err := chain.Add(c, effects.NewBloom)
	test.DemandSuccess(t, err)
	bl.SetThreshold(0.9)
	bl.SetPower(1.0)

	tm, err := chain.Add(c, effects.NewTonemap)
	test.DemandSuccess(t, err)
	tm.SetThreshold(2.0)

	src := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{1.0, 1.0, 1.0, 1.0})
	dst := newTarget(t, ctx, gpu.FormatHDR, mgl32.Vec4{})

	ctx.StartTrace()
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	expectNoFeedback(t, ctx.StopTrace())
	bloomed := ctx.TexturePixels(dst.Texture())

	bl.SetEnabled(false)
	c.ApplyEffects(src.Texture(), dst.Framebuffer())
	baseline := ctx.TexturePixels(dst.Texture())

	for i := range bloomed {
		test.ExpectSuccess(t, bloomed[i][0] > baseline[i][0], i)

		// nothing is HDR valued after the tonemap, even though the
		// destination could store it
		for _, v := range bloomed[i] {
			test.ExpectSuccess(t, v >= 0.0 && v <= 1.0, i)
		}
	}
}
