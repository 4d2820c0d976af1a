package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"runtime"

	"blockatlas/internal/atlas"
	"blockatlas/internal/config"
	"blockatlas/internal/logging"
	"blockatlas/pkg/blockid"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxWindowWidth  = 1024
	maxWindowHeight = 768
	title           = "atlasview"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	b := flag.Int("B", config.DefaultTileParam, "tile parameter; block images are 4B pixels square")
	imgDir := flag.String("img", ".", "directory of blocks-<B>.png and blocks-<B>.version")
	textures := flag.String("textures", "blocktextures.list", "texture list")
	descriptors := flag.String("descriptors", "blockdescriptor.list", "block descriptor list")
	root := flag.String("root", ".", "directory texture directories are relative to")
	texDir := flag.String("texdir", "textures/blocks", "texture directory before the first '$' line")
	force := flag.Bool("force", false, "rebuild even if the persisted atlas is current")
	verbose := flag.Bool("v", false, "log every descriptor")
	flag.Parse()

	logging.SetLogger(logging.NewText(os.Stderr, *verbose))
	config.SetTileParam(*b)
	config.SetImageDir(*imgDir)
	config.SetTextureList(*textures)
	config.SetDescriptorList(*descriptors)
	config.SetTextureRoot(*root)
	config.SetTextureDir(*texDir)
	config.SetForce(*force)

	a, outcome, err := atlas.Create(config.Snapshot())
	if err != nil {
		logging.Logger().Error("could not create block atlas", "err", err)
		os.Exit(1)
	}
	logging.Logger().Info("block atlas ready", "outcome", outcome, "slots", a.Slots())

	if err := view(a); err != nil {
		panic(err)
	}
}

// view shows the atlas scaled up by a whole factor. The mouse wheel scrolls
// atlases taller than the window; hovering a slot names it in the title.
func view(a *atlas.Atlas) error {
	img := a.Image()
	imgW, imgH := img.Rect.Dx(), img.Rect.Dy()
	scale := max(1, maxWindowWidth/imgW)
	contentW, contentH := imgW*scale, imgH*scale
	winW, winH := contentW, min(contentH, maxWindowHeight)

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(winW, winH, title, nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return err
	}

	program, err := newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	defer gl.DeleteProgram(program)

	texture := uploadAtlas(img)
	defer gl.DeleteTextures(1, &texture)

	w, h := float32(contentW), float32(contentH)
	vertices := []float32{
		// x, y, u, v
		0, 0, 0, 0,
		w, 0, 1, 0,
		w, h, 1, 1,
		0, 0, 0, 0,
		w, h, 1, 1,
		0, h, 0, 1,
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	defer gl.DeleteBuffers(1, &vbo)
	defer gl.DeleteVertexArrays(1, &vao)

	gl.UseProgram(program)
	projection := mgl32.Ortho2D(0, float32(winW), float32(winH), 0)
	gl.UniformMatrix4fv(gl.GetUniformLocation(program, gl.Str("projection\x00")), 1, false, &projection[0])
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("atlas\x00")), 0)
	modelLoc := gl.GetUniformLocation(program, gl.Str("model\x00"))
	hlMinLoc := gl.GetUniformLocation(program, gl.Str("highlightMin\x00"))
	hlMaxLoc := gl.GetUniformLocation(program, gl.Str("highlightMax\x00"))

	maxScroll := float64(contentH - winH)
	scroll := 0.0
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		scroll = min(max(scroll-yoff*float64(a.Rect(0).Dy()*scale), 0), maxScroll)
	})

	gl.ClearColor(0.1, 0.1, 0.12, 1.0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	hovered := -1
	for !window.ShouldClose() {
		// close on Esc
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		cx, cy := window.GetCursorPos()
		px := image.Pt(int(cx)/scale, int(cy+scroll)/scale)
		slot, ok := a.SlotAt(px)
		if !ok {
			slot = -1
		}
		if slot != hovered {
			hovered = slot
			window.SetTitle(slotTitle(a, slot))
		}

		var lo, hi mgl32.Vec2
		if slot >= 0 {
			r := a.Rect(slot)
			lo = mgl32.Vec2{float32(r.Min.X) / float32(imgW), float32(r.Min.Y) / float32(imgH)}
			hi = mgl32.Vec2{float32(r.Max.X) / float32(imgW), float32(r.Max.Y) / float32(imgH)}
		}
		gl.Uniform2f(hlMinLoc, lo.X(), lo.Y())
		gl.Uniform2f(hlMaxLoc, hi.X(), hi.Y())

		model := mgl32.Translate3D(0, -float32(scroll), 0)
		gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])

		fbW, fbH := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func slotTitle(a *atlas.Atlas, slot int) string {
	switch {
	case slot < 0:
		return title
	case slot == 0:
		return title + " - slot 0: blank, every unmapped block"
	}
	keys := a.Keys(slot)
	if len(keys) == 0 {
		return fmt.Sprintf("%s - slot %d (unused)", title, slot)
	}
	flags := ""
	switch {
	case a.IsOpaque(slot):
		flags = " opaque"
	case a.IsTransparent(slot):
		flags = " transparent"
	}
	return fmt.Sprintf("%s - slot %d%s: %s", title, slot, flags, blockid.Describe(keys))
}
