package animations

import (
	"image"
	"image/draw"
)

// scale2x doubles img using EPX: each source pixel P becomes a 2x2 block
// whose corners take the colour of a neighbour pair when those neighbours
// agree, which keeps diagonal edges sharp.
func scale2x(img image.Image) image.Image {
	b := img.Bounds()
	src := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Rect, img, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w*2, h*2))
	at := func(x, y int) []uint8 {
		x = clampInt(x, 0, w-1)
		y = clampInt(y, 0, h-1)
		i := src.PixOffset(x, y)
		return src.Pix[i : i+4]
	}
	same := func(a, b []uint8) bool {
		return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
	}
	put := func(x, y int, px []uint8) {
		copy(dst.Pix[dst.PixOffset(x, y):], px)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := at(x, y)
			a, bb, c, d := at(x, y-1), at(x+1, y), at(x-1, y), at(x, y+1)
			e0, e1, e2, e3 := p, p, p, p
			if !same(a, d) && !same(c, bb) {
				if same(c, a) {
					e0 = a
				}
				if same(a, bb) {
					e1 = bb
				}
				if same(c, d) {
					e2 = c
				}
				if same(d, bb) {
					e3 = d
				}
			}
			put(2*x, 2*y, e0)
			put(2*x+1, 2*y, e1)
			put(2*x, 2*y+1, e2)
			put(2*x+1, 2*y+1, e3)
		}
	}
	return dst
}
