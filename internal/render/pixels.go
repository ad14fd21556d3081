package render

import "image/color"

// FillRGBA converts display codes into RGBA pixels in buf, four bytes per
// code. Codes past the end of pal use its last entry; an empty palette clears
// the buffer to transparent black.
func FillRGBA(buf []byte, codes []uint8, pal []color.RGBA) {
	if len(pal) == 0 {
		clear(buf[:4*len(codes)])
		return
	}
	last := len(pal) - 1
	for i, code := range codes {
		idx := int(code)
		if idx > last {
			idx = last
		}
		col := pal[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
