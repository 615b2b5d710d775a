package raster

// Blue is the constant value of the blue channel.
const Blue = 128

// MaxValue is the largest channel value the formula produces.
const MaxValue = 255

// MaxPixels is the largest image for which 256*i stays within int32.
const MaxPixels = (1<<31 - 1) / 256

// Channels holds the three color planes of an image in row-major pixel
// order. All three slices have the same length.
type Channels struct {
	R, G, B []int32
}

// NewChannels allocates three zeroed planes of n pixels each.
func NewChannels(n int) Channels {
	return Channels{
		R: make([]int32, n),
		G: make([]int32, n),
		B: make([]int32, n),
	}
}

// Len returns the number of pixels.
func (c Channels) Len() int {
	return len(c.R)
}

// At returns the channel values of pixel i.
func (c Channels) At(i int) (r, g, b int32) {
	return c.R[i], c.G[i], c.B[i]
}
