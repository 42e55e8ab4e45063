package buffer

// Option is a functional option for configuring a GapBuffer.
type Option func(*GapBuffer)

// WithGapSize sets the initial gap size and the growth step. Non-positive
// sizes are ignored.
func WithGapSize(n int) Option {
	return func(b *GapBuffer) {
		if n > 0 {
			b.gapSize = n
		}
	}
}
