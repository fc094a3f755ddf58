package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the block compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// compressBlock frames data as [UncompressedSize][CompressedSize][payload].
// If compression does not help (ratio > 0.9) the block is stored raw with
// CompressedSize == 0, so decompression stays cheap on incompressible data.
func compressBlock(data []byte, compression CompressionType) ([]byte, error) {
	var compressed []byte

	switch compression {
	case CompressionNone:
		// Stored raw below.
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		dst := make([]byte, bound)
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, err
		}
		if n > 0 { // n == 0 means incompressible
			compressed = dst[:n]
		}
	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		compressed = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(compression))
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		block := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(block[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(block[4:], 0) // 0 = stored raw
		copy(block[blockHeaderSize:], data)
		return block, nil
	}

	block := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(block[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(block[4:], uint32(len(compressed)))
	copy(block[blockHeaderSize:], compressed)
	return block, nil
}

// decompressBlock reverses compressBlock.
func decompressBlock(block []byte, compression CompressionType) ([]byte, error) {
	if len(block) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorruptSnapshot)
	}

	uncompressedSize := binary.LittleEndian.Uint32(block[0:])
	compressedSize := binary.LittleEndian.Uint32(block[4:])

	if compressedSize == 0 {
		if uint64(len(block)) < blockHeaderSize+uint64(uncompressedSize) {
			return nil, fmt.Errorf("%w: raw block truncated", ErrCorruptSnapshot)
		}
		return block[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if uint64(len(block)) < blockHeaderSize+uint64(compressedSize) {
		return nil, fmt.Errorf("%w: compressed block truncated", ErrCorruptSnapshot)
	}
	payload := block[blockHeaderSize : blockHeaderSize+compressedSize]

	switch compression {
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		if uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptSnapshot)
		}
		return out, nil

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		if uint32(len(out)) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptSnapshot)
		}
		return out, nil

	case CompressionNone:
		return nil, fmt.Errorf("%w: compressed payload with none compression", ErrCorruptSnapshot)

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(compression))
	}
}
