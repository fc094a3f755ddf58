package snapshot

import (
	mathvector "github.com/hazed7/math-vector"
	"github.com/hazed7/math-vector/codec"
)

// Options configure snapshot writing. Files are self-describing, so reading
// only honors Logger.
type Options struct {
	// Codec encodes the snapshot payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the block compression applied to the encoded
	// payload. Defaults to CompressionZSTD.
	Compression CompressionType

	// Logger receives save/load events. Defaults to a no-op logger.
	Logger *mathvector.Logger
}

// DefaultOptions are the options used when none are overridden.
var DefaultOptions = Options{
	Codec:       codec.Default,
	Compression: CompressionZSTD,
}

// Option mutates Options.
type Option func(*Options)

// WithCodec configures the codec used to encode the snapshot payload.
// Passing nil restores codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		if c == nil {
			c = codec.Default
		}
		o.Codec = c
	}
}

// WithCompression configures the block compression type.
func WithCompression(ct CompressionType) Option {
	return func(o *Options) {
		o.Compression = ct
	}
}

// WithLogger configures the logger for save/load events.
func WithLogger(l *mathvector.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
