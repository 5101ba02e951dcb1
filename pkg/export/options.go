package export

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option configures a Writer.
type Option func(*Writer)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(w *Writer) {
		w.format = format
	}
}

// WithBare emits the bare record list instead of the metadata envelope.
func WithBare() Option {
	return func(w *Writer) {
		w.bare = true
	}
}

// WithCollation sets the language used for name ordering.
func WithCollation(tag language.Tag) Option {
	return func(w *Writer) {
		w.collator = collate.New(tag)
	}
}
