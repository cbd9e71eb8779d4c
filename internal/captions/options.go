package captions

// NoGaps controls gap closing between consecutive captions.
type NoGaps struct {
	Enabled bool
	// MaxLength caps the extension applied to one caption, in seconds.
	MaxLength float64
}

// Options configures Process and its steps.
type Options struct {
	MaxLines        int
	IgnoreMetadata  bool
	PerPartEmphasis bool
	NoGaps          NoGaps
}

// DefaultOptions returns five lines, author hints honoured, and gap closing off.
func DefaultOptions() Options {
	return Options{MaxLines: DefaultMaxLines}
}

func (o Options) maxLines() int {
	if o.MaxLines <= 0 {
		return DefaultMaxLines
	}
	return o.MaxLines
}
