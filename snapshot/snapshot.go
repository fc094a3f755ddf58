// Package snapshot persists a vector to a single self-describing file and
// restores it later, possibly in another process.
//
// A snapshot records the codec name and compression type in its header, so a
// file written with any supported configuration can be opened without
// out-of-band knowledge. The container itself stays free of persistence
// concerns; this package is layered strictly on top of it.
package snapshot

import (
	"errors"
	"fmt"
	"os"

	mathvector "github.com/hazed7/math-vector"
	"github.com/hazed7/math-vector/codec"
)

// File layout:
//
//	magic "MVEC" | version byte | compression byte | codec name len | codec name
//	block: [UncompressedSize uint32 LE][CompressedSize uint32 LE][data]
//
// CompressedSize == 0 means the block is stored raw.
var magic = [4]byte{'M', 'V', 'E', 'C'}

const (
	formatVersion   = 1
	blockHeaderSize = 8
	maxCodecNameLen = 255
)

var (
	// ErrBadMagic is returned when the file does not start with the
	// snapshot magic bytes.
	ErrBadMagic = errors.New("not a vector snapshot file")

	// ErrUnsupportedVersion is returned for format versions this build
	// does not understand.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrUnknownCodec is returned when the codec named in the header is
	// not registered.
	ErrUnknownCodec = errors.New("unknown snapshot codec")

	// ErrUnknownCompression is returned for unrecognized compression types.
	ErrUnknownCompression = errors.New("unknown snapshot compression")

	// ErrCorruptSnapshot is returned when the file is structurally damaged
	// or its payload fails integrity checks.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// record is the codec-encoded payload. Size is stored redundantly and
// checked against the element count on load.
type record[T mathvector.Number] struct {
	Size  int `json:"size"`
	Elems []T `json:"elems"`
}

// Save writes v to path as a self-describing snapshot.
// The vector is not modified.
func Save[T mathvector.Number](path string, v *mathvector.Vector[T], optFns ...Option) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = mathvector.NoopLogger()
	}

	payload, err := opts.Codec.Marshal(record[T]{Size: v.Len(), Elems: v.Elems()})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	block, err := compressBlock(payload, opts.Compression)
	if err != nil {
		return fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	name := opts.Codec.Name()
	if len(name) > maxCodecNameLen {
		return fmt.Errorf("codec name too long: %q", name)
	}

	buf := make([]byte, 0, len(magic)+3+len(name)+len(block))
	buf = append(buf, magic[:]...)
	buf = append(buf, formatVersion, byte(opts.Compression), byte(len(name)))
	buf = append(buf, name...)
	buf = append(buf, block...)

	if err := os.WriteFile(path, buf, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	logger.WithPath(path).WithSize(v.Len()).Info("snapshot saved",
		"codec", name,
		"compression", opts.Compression.String(),
		"bytes", len(buf),
	)
	return nil
}

// Load reads a snapshot written by Save and returns a fresh vector owning
// its own storage.
//
// The codec is selected from the file header; WithCodec is not consulted on
// load (files are self-describing).
func Load[T mathvector.Number](path string, optFns ...Option) (*mathvector.Vector[T], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = mathvector.NoopLogger()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	if len(data) < len(magic)+3 {
		return nil, ErrBadMagic
	}
	if [4]byte(data[:4]) != magic {
		return nil, ErrBadMagic
	}
	if data[4] != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}
	compression := CompressionType(data[5])
	nameLen := int(data[6])
	if len(data) < 7+nameLen {
		return nil, ErrCorruptSnapshot
	}
	name := string(data[7 : 7+nameLen])

	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	payload, err := decompressBlock(data[7+nameLen:], compression)
	if err != nil {
		return nil, err
	}

	var rec record[T]
	if err := c.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if rec.Size != len(rec.Elems) {
		return nil, fmt.Errorf("%w: size %d does not match %d elements",
			ErrCorruptSnapshot, rec.Size, len(rec.Elems))
	}

	logger.WithPath(path).WithSize(rec.Size).Info("snapshot loaded",
		"codec", name,
		"compression", compression.String(),
	)
	return mathvector.FromSlice(rec.Elems), nil
}
