package reel

type Option func(r *Reel)

// WithGeometry fits every frame to the display resolution before
// encoding (Lanczos fill, center anchor).
func WithGeometry(width, height int) Option {
	return func(r *Reel) {
		r.width = width
		r.height = height
	}
}

// WithSectorSize overrides the default 512-byte sector.
func WithSectorSize(size int) Option {
	return func(r *Reel) {
		if size > 0 {
			r.sectorSize = size
		}
	}
}

// WithCount declares the frame count up front instead of scanning the
// directory for the highest frame number.
func WithCount(count int) Option {
	return func(r *Reel) {
		r.count = count
	}
}
