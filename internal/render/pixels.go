package render

// fillIntensityRGBA converts per-cell grey intensities into opaque RGBA
// blocks of scale*scale pixels. buf must hold 4*(w*scale)*(h*scale) bytes.
func fillIntensityRGBA(buf []byte, cells []uint8, w, scale int) {
	if w <= 0 || scale <= 0 {
		return
	}
	for i, v := range cells {
		fillBlock(buf, i%w, i/w, w*scale, scale, v)
	}
}

// fillBlock paints the scale*scale block of cell (x, y) into an RGBA buffer
// whose rows are stride pixels wide.
func fillBlock(buf []byte, x, y, stride, scale int, v uint8) {
	row := (y*scale*stride + x*scale) * 4
	for j := 0; j < scale; j++ {
		base := row
		for i := 0; i < scale; i++ {
			buf[base+0] = v
			buf[base+1] = v
			buf[base+2] = v
			buf[base+3] = 0xFF
			base += 4
		}
		row += stride * 4
	}
}
