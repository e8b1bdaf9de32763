package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithMaxLength sets the maximum number of bytes the line may hold.
// Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.maxLen = n
		}
	}
}

// WithText seeds the buffer with initial content and places the cursor at
// its end. Content beyond the maximum length is truncated.
func WithText(text string) Option {
	return func(b *Buffer) {
		b.seed = text
	}
}
