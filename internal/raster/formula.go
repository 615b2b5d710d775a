package raster

// Pixel computes the channel values of pixel i of a rows x cols image.
//
// Red is (256*i/cols)/rows with truncating division at each step, green is
// 256*(i mod cols)/cols and blue is constant.
func Pixel(i, rows, cols int) (r, g, b int32) {
	r = int32(256 * i / cols / rows)
	g = int32(256 * (i % cols) / cols)
	return r, g, Blue
}

// fillScalar writes Pixel(i) for every i in [start, end).
func fillScalar(rows, cols int, ch Channels, start, end int) {
	r, g, b := ch.R[start:end], ch.G[start:end], ch.B[start:end]
	for k := range r {
		i := start + k
		r[k] = int32(256 * i / cols / rows)
		g[k] = int32(256 * (i % cols) / cols)
		b[k] = Blue
	}
}
