package atlas

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	sheetBackground = color.NRGBA{40, 40, 48, 255}
	sheetLabel      = color.NRGBA{230, 230, 230, 255}
)

// MonoFace returns the Go Mono face at the given pixel size.
func MonoFace(pixels float64) (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// ContactSheet renders every slot in use on a dark background with its
// index printed underneath, 16 slots per row.
func (a *Atlas) ContactSheet(face font.Face) *image.NRGBA {
	s := a.canvas.SlotSize()
	m := face.Metrics()
	labelW := font.MeasureString(face, strconv.Itoa(max(a.slots-1, 0))).Ceil()
	cellW := max(s, labelW) + 4
	cellH := s + m.Height.Ceil() + 4
	rows := (a.slots + 15) / 16

	sheet := image.NewNRGBA(image.Rect(0, 0, 16*cellW, rows*cellH))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: sheet, Src: image.NewUniform(sheetLabel), Face: face}
	for slot := range a.slots {
		cell := image.Pt((slot%16)*cellW, (slot/16)*cellH)
		at := cell.Add(image.Pt((cellW-s)/2, 2))
		draw.Draw(sheet, image.Rectangle{Min: at, Max: at.Add(image.Pt(s, s))}, a.canvas.Img, a.Rect(slot).Min, draw.Over)

		label := strconv.Itoa(slot)
		w := font.MeasureString(face, label).Ceil()
		d.Dot = fixed.P(cell.X+(cellW-w)/2, cell.Y+2+s+m.Ascent.Ceil())
		d.DrawString(label)
	}
	return sheet
}
