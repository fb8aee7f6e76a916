// Command appdemo runs a minimal application on the host: an animated
// clear color, Escape to quit, Tab to toggle pointer capture.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/app"
	"github.com/gogpu/app/input"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		title   = flag.String("title", "appdemo", "window title")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		app.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	_, err := app.Run(newDemo, nil,
		app.WithTitle(*title),
		app.WithSize(*width, *height),
	)
	if err != nil {
		log.Fatalf("appdemo: %v", err)
	}
}

type demo struct {
	elapsed float64
}

func newDemo(_ any, ctx *app.Context) (app.App, error) {
	log.Printf("appdemo: running on %v", ctx.Graphics.Backend())
	return &demo{}, nil
}

func (d *demo) Frame(ctx *app.Context, dt float64) bool {
	d.elapsed += dt

	for _, ev := range ctx.Input.Events() {
		switch ev := ev.(type) {
		case input.KeyEvent:
			if !ev.Pressed {
				break
			}
			switch ev.Key {
			case input.KeyEscape:
				return true
			case input.KeyTab:
				ctx.Input.SetCaptureMode(!ctx.Input.CaptureMode())
			}
		case input.CloseRequested:
			return true
		}
	}

	frame, err := ctx.Graphics.AcquireFrame()
	if err != nil {
		log.Printf("appdemo: acquire: %v", err)
		return true
	}
	if frame == nil {
		// Surface unavailable this frame; nothing to draw.
		return false
	}

	device := ctx.Graphics.Device()
	encoder, err := device.CreateCommandEncoder(nil)
	if err != nil {
		frame.Release()
		log.Printf("appdemo: encoder: %v", err)
		return true
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    frame.View,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: 0.5 + 0.5*math.Sin(d.elapsed),
				G: 0.5 + 0.5*math.Sin(d.elapsed+2),
				B: 0.5 + 0.5*math.Sin(d.elapsed+4),
				A: 1,
			},
		}},
	})
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	encoder.Release()
	if err != nil {
		frame.Release()
		log.Printf("appdemo: finish: %v", err)
		return true
	}
	ctx.Graphics.Queue().Submit(cmd)
	cmd.Release()
	frame.Present()
	return false
}

func (d *demo) Deinit(ctx *app.Context) any {
	log.Printf("appdemo: ran for %.1fs", d.elapsed)
	return nil
}
