package raster

type scalar struct{}

// NewScalar returns the sequential baseline strategy.
func NewScalar() Strategy {
	return scalar{}
}

func (scalar) Name() Name  { return NameScalar }
func (scalar) Exact() bool { return true }

func (scalar) Covered(rows, cols int) int {
	return rows * cols
}

func (scalar) Generate(rows, cols int, ch Channels) {
	fillScalar(rows, cols, ch, 0, rows*cols)
}
