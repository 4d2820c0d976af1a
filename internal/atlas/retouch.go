package atlas

import (
	"image"

	"blockatlas/internal/iso"
)

// Alpha values below retouchLow become 0 and above retouchHigh become
// 255, hiding resampling noise at face edges.
const (
	retouchLow  = 10
	retouchHigh = 245
)

// Retouch snaps near-transparent and near-opaque alphas on the three faces
// of every slot. Applying it twice changes nothing.
func (a *Atlas) Retouch() {
	img := a.canvas.Img
	for slot := range a.slots {
		for _, it := range a.canvas.FaceIters(slot) {
			iso.Walk(it, func(p iso.Point) {
				if !image.Pt(p.X, p.Y).In(img.Rect) {
					return
				}
				i := img.PixOffset(p.X, p.Y) + 3
				switch alpha := img.Pix[i]; {
				case alpha < retouchLow:
					img.Pix[i] = 0
				case alpha > retouchHigh:
					img.Pix[i] = 255
				}
			})
		}
	}
}

// Classify records which slots are fully opaque and which fully
// transparent over their three faces.
func (a *Atlas) Classify() {
	a.opaque = make([]bool, a.slots)
	a.transparent = make([]bool, a.slots)
	for slot := range a.slots {
		a.opaque[slot], a.transparent[slot] = a.scan(slot)
	}
}

func (a *Atlas) scan(slot int) (opaque, transparent bool) {
	img := a.canvas.Img
	opaque, transparent = true, true
	for _, it := range a.canvas.FaceIters(slot) {
		for ; !it.Done() && (opaque || transparent); it.Advance() {
			p := it.At()
			var alpha uint8
			if image.Pt(p.X, p.Y).In(img.Rect) {
				alpha = img.NRGBAAt(p.X, p.Y).A
			}
			if alpha < 255 {
				opaque = false
			}
			if alpha > 0 {
				transparent = false
			}
		}
	}
	return opaque, transparent
}
