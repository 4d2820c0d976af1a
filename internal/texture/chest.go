package texture

import (
	"image"

	"blockatlas/internal/iso"
)

// Chest sheets are laid out on a 64 (small) or 128 (large) unit wide grid.
// Regions below are in those units and get multiplied by the sheet scale.

func rect(s, x, y, w, h int) image.Rectangle {
	return image.Rect(x*s, y*s, (x+w)*s, (y+h)*s)
}

// chestTiles splits a small chest sheet into top, front (with latch) and
// side tiles. It returns nil when the sheet is narrower than 64 pixels.
func chestTiles(sheet *image.NRGBA, tileSize int) []*image.NRGBA {
	s := sheet.Rect.Dx() / 64
	if s == 0 {
		return nil
	}
	flat := 14 * s
	top := iso.NewTile(flat)
	iso.Blit(sheet, rect(s, 14, 0, 14, 14), top, image.Pt(0, 0))

	front := iso.NewTile(flat)
	iso.Blit(sheet, rect(s, 14, 14, 14, 4), front, image.Pt(0, 0))
	iso.Blit(sheet, rect(s, 14, 33, 14, 10), front, image.Pt(0, 4*s))
	iso.Blit(sheet, rect(s, 1, 1, 2, 4), front, image.Pt(6*s, 2*s))

	side := iso.NewTile(flat)
	iso.Blit(sheet, rect(s, 28, 14, 14, 4), side, image.Pt(0, 0))
	iso.Blit(sheet, rect(s, 28, 33, 14, 10), side, image.Pt(0, 4*s))

	out := make([]*image.NRGBA, 0, 3)
	for _, flatTile := range []*image.NRGBA{top, front, side} {
		t := iso.NewTile(tileSize)
		iso.Resize(flatTile, flatTile.Bounds(), t, t.Bounds())
		out = append(out, t)
	}
	return out
}

// largeChestTiles splits a double chest sheet into seven tiles: left and
// right halves of the top, front and back, then the side. It returns nil
// when the sheet is narrower than 128 pixels.
func largeChestTiles(sheet *image.NRGBA, tileSize int) []*image.NRGBA {
	s := sheet.Rect.Dx() / 128
	if s == 0 {
		return nil
	}
	strip := image.NewNRGBA(image.Rect(0, 0, 7*tileSize, tileSize))
	slot := func(i, n int) image.Rectangle {
		return image.Rect(i*tileSize, 0, (i+n)*tileSize, tileSize)
	}

	iso.Resize(sheet, rect(s, 14, 0, 30, 14), strip, slot(0, 2))

	front := image.NewNRGBA(image.Rect(0, 0, 30*s, 14*s))
	iso.Blit(sheet, rect(s, 14, 14, 30, 4), front, image.Pt(0, 0))
	iso.Blit(sheet, rect(s, 14, 33, 30, 10), front, image.Pt(0, 4*s))
	iso.Blit(sheet, rect(s, 1, 1, 2, 4), front, image.Pt(14*s, 2*s))
	// Two resizes so each half keeps its share of the latch.
	iso.Resize(front, rect(s, 0, 0, 15, 14), strip, slot(2, 1))
	iso.Resize(front, rect(s, 15, 0, 15, 14), strip, slot(3, 1))

	back := image.NewNRGBA(image.Rect(0, 0, 30*s, 14*s))
	iso.Blit(sheet, rect(s, 58, 14, 30, 4), back, image.Pt(0, 0))
	iso.Blit(sheet, rect(s, 58, 33, 30, 10), back, image.Pt(0, 4*s))
	iso.Resize(back, back.Bounds(), strip, slot(4, 2))

	side := iso.NewTile(14 * s)
	iso.Blit(sheet, rect(s, 44, 14, 14, 4), side, image.Pt(0, 0))
	iso.Blit(sheet, rect(s, 44, 33, 14, 10), side, image.Pt(0, 4*s))
	iso.Resize(side, side.Bounds(), strip, slot(6, 1))

	out := make([]*image.NRGBA, 0, 7)
	for i := 0; i < 7; i++ {
		t := iso.NewTile(tileSize)
		iso.Blit(strip, slot(i, 1), t, image.Pt(0, 0))
		out = append(out, t)
	}
	return out
}
