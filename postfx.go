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

package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"runtime"
	"time"

	"github.com/jetsetilly/postfx/chain"
	"github.com/jetsetilly/postfx/gpu"
	"github.com/jetsetilly/postfx/gpu/opengl"
	"github.com/jetsetilly/postfx/gpu/software"
	"github.com/jetsetilly/postfx/logger"
	"github.com/jetsetilly/postfx/modalflag"
	"github.com/jetsetilly/postfx/paths"
	"github.com/jetsetilly/postfx/performance"
	"github.com/jetsetilly/postfx/prefs"
	"github.com/jetsetilly/postfx/statsview"
	"github.com/jetsetilly/postfx/version"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

// SDL and OpenGL calls must be made from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "RENDER")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "RENDER":
		err = render(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// options common to all modes.
type options struct {
	width     *int
	height    *int
	hdr       *bool
	prefs     *string
	log       *bool
	statsview *bool
}

func addOptions(md *modalflag.Modes, width int, height int) options {
	opts := options{
		width:  md.AddInt("width", width, "width of frame"),
		height: md.AddInt("height", height, "height of frame"),
		hdr:    md.AddBool("hdr", true, "process effects in HDR until the frame is tonemapped"),
		prefs:  md.AddString("prefs", "", "preferences to apply. eg. \"bloom.threshold::0.8; vignette.enabled::false\""),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
	if statsview.Available() {
		opts.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return opts
}

// apply options that are not specific to a mode. returns the preferences for
// the chain.
func (opts options) apply(md *modalflag.Modes) (*chain.Preferences, error) {
	if *opts.log {
		logger.SetEcho(md.Output)
	}
	logger.Logf(logger.Allow, "postfx", "%s %s", version.ApplicationName, version.Version())

	if opts.statsview != nil && *opts.statsview {
		statsview.Launch(md.Output)
	}

	if *opts.width <= 0 || *opts.height <= 0 {
		return nil, fmt.Errorf("frame size must be positive (%dx%d)", *opts.width, *opts.height)
	}

	prefs.PushCommandLineStack(*opts.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "postfx", "unused preferences: %s", unused)
		}
	}()

	p, err := chain.NewPreferences()
	if err != nil {
		return nil, err
	}

	// an explicit -hdr flag takes precedence over the preferences file
	md.Visit(func(flag string) {
		if flag == "hdr" {
			err = p.HDR.Set(*opts.hdr)
		}
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md, 1280, 720)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pref, err := opts.apply(md)
	if err != nil {
		return err
	}

	win, err := newWindow(int32(*opts.width), int32(*opts.height))
	if err != nil {
		return err
	}
	defer func() {
		_ = win.destroy()
	}()

	w, h := win.drawableSize()

	ctx, err := opengl.NewContext(w, h)
	if err != nil {
		return err
	}

	c, err := chain.NewChain(ctx, w, h, pref.HDR.Get().(bool))
	if err != nil {
		return err
	}
	defer c.Release()

	err = pref.Configure(c)
	if err != nil {
		return err
	}

	scn := newScene(w, h)
	src, err := ctx.NewTexture(w, h, gpu.FormatHDR)
	if err != nil {
		return err
	}
	defer func() {
		src.Release()
	}()

	logger.Logf(logger.Allow, "postfx", "chain: %s", c)

	start := time.Now()
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				if ev.Type != sdl.KEYDOWN {
					break // switch
				}
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_h:
					err = pref.HDR.Set(!pref.HDR.Get().(bool))
				case sdl.K_b:
					err = pref.Bloom.Set(!pref.Bloom.Get().(bool))
				case sdl.K_t:
					err = pref.Tonemap.Set(!pref.Tonemap.Get().(bool))
				case sdl.K_v:
					err = pref.Vignette.Set(!pref.Vignette.Get().(bool))
				case sdl.K_g:
					err = pref.GreyScale.Set(!pref.GreyScale.Get().(bool))
				case sdl.K_c:
					err = pref.Chromatic.Set(!pref.Chromatic.Get().(bool))
				case sdl.K_p:
					err = pref.SplitTone.Set(!pref.SplitTone.Get().(bool))
				case sdl.K_s:
					err = pref.Save()
					if err == nil {
						logger.Log(logger.Allow, "postfx", "preferences saved")
					}
				}
				if err != nil {
					return err
				}
				logger.Logf(logger.Allow, "postfx", "chain: %s", c)

			case *sdl.WindowEvent:
				if ev.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
					break // switch
				}
				w, h = win.drawableSize()
				if w <= 0 || h <= 0 {
					break // switch
				}
				ctx.SetScreenSize(w, h)
				err = c.Resize(w, h)
				if err != nil {
					return err
				}
				src.Release()
				src, err = ctx.NewTexture(w, h, gpu.FormatHDR)
				if err != nil {
					return err
				}
				scn.resize(w, h)
			}
		}

		err = ctx.Upload(src, scn.render(float32(time.Since(start).Seconds())))
		if err != nil {
			return err
		}

		c.ApplyEffects(src, nil)
		win.swap()
	}
}

func render(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is an image to use instead of the test scene.")
	opts := addOptions(md, 640, 360)
	frames := md.AddInt("frames", 1, "number of frames to render")
	output := md.AddString("o", "", "output file. a unique filename is used if none is given")
	cpuProfile := md.AddString("cpuprofile", "", "write cpu profile to file")
	memProfile := md.AddString("memprofile", "", "write memory profile to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pref, err := opts.apply(md)
	if err != nil {
		return err
	}

	if *frames < 1 {
		return fmt.Errorf("at least one frame must be rendered")
	}

	w := int32(*opts.width)
	h := int32(*opts.height)

	ctx, err := software.NewContext(w, h)
	if err != nil {
		return err
	}

	c, err := chain.NewChain(ctx, w, h, pref.HDR.Get().(bool))
	if err != nil {
		return err
	}
	defer c.Release()

	err = pref.Configure(c)
	if err != nil {
		return err
	}

	var src gpu.Texture
	var scn *scene

	if len(md.RemainingArgs()) == 1 {
		src, err = loadImage(ctx, md.GetArg(0), w, h)
	} else {
		scn = newScene(w, h)
		src, err = ctx.NewTexture(w, h, gpu.FormatHDR)
	}
	if err != nil {
		return err
	}
	defer src.Release()

	logger.Logf(logger.Allow, "postfx", "chain: %s", c)

	start := time.Now()
	err = performance.RunProfiler(*cpuProfile, *memProfile, func() error {
		for f := 0; f < *frames; f++ {
			if scn != nil {
				err := ctx.Upload(src, scn.render(float32(f)/60.0))
				if err != nil {
					return err
				}
			}
			c.ApplyEffects(src, nil)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "postfx", "%d frames at %.2f fps", *frames, performance.CalcFPS(*frames, time.Since(start)))

	filename := *output
	if filename == "" {
		filename = paths.UniqueFilename(version.ApplicationName, "png")
	}

	err = savePNG(filename, ctx.Image(ctx.Screen()))
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "frame written to %s\n", filename)

	return nil
}

// loadImage reads the image file and scales it to the frame size.
func loadImage(ctx *software.Context, filename string, width int32, height int32) (gpu.Texture, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	return ctx.NewTextureFromImage(scaled, gpu.FormatHDR)
}

func savePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
