package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mathvector "github.com/hazed7/math-vector"
	"github.com/hazed7/math-vector/codec"
	"github.com/hazed7/math-vector/util"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	rng := util.NewRNG(21)
	elems := util.Elements[float64](rng, 512)

	codecs := []codec.Codec{codec.JSON{}, codec.GoJSON{}}
	compressions := []CompressionType{CompressionNone, CompressionLZ4, CompressionZSTD}

	for _, c := range codecs {
		for _, ct := range compressions {
			t.Run(c.Name()+"/"+ct.String(), func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "vec.snap")
				v := mathvector.FromSlice(elems).Clone()

				require.NoError(t, Save(path, v, WithCodec(c), WithCompression(ct)))

				got, err := Load[float64](path)
				require.NoError(t, err)
				assert.True(t, mathvector.Equal(v, got))
			})
		}
	}
}

func TestSaveLoadEmptyVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.snap")
	require.NoError(t, Save(path, mathvector.Of[int]()))

	got, err := Load[int](path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestLoadSelectsCodecFromHeader(t *testing.T) {
	// A file written with the stdlib codec must load without the writer's
	// options being known.
	path := filepath.Join(t.TempDir(), "vec.snap")
	v := mathvector.Of(1.0, 2.0, 3.0)
	require.NoError(t, Save(path, v, WithCodec(codec.JSON{}), WithCompression(CompressionLZ4)))

	got, err := Load[float64](path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got.ToSlice())
}

func TestLoadRejectsGarbage(t *testing.T) {
	dir := t.TempDir()

	t.Run("BadMagic", func(t *testing.T) {
		path := filepath.Join(dir, "bad-magic")
		require.NoError(t, os.WriteFile(path, []byte("not a snapshot at all"), 0600))
		_, err := Load[float64](path)
		require.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("Truncated", func(t *testing.T) {
		path := filepath.Join(dir, "truncated")
		require.NoError(t, os.WriteFile(path, []byte("MVE"), 0600))
		_, err := Load[float64](path)
		require.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		path := filepath.Join(dir, "bad-version")
		require.NoError(t, os.WriteFile(path, []byte{'M', 'V', 'E', 'C', 99, 0, 0}, 0600))
		_, err := Load[float64](path)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("UnknownCodec", func(t *testing.T) {
		path := filepath.Join(dir, "bad-codec")
		data := []byte{'M', 'V', 'E', 'C', 1, 0, 3}
		data = append(data, []byte("xml")...)
		data = append(data, make([]byte, 8)...) // empty raw block
		require.NoError(t, os.WriteFile(path, data, 0600))
		_, err := Load[float64](path)
		require.ErrorIs(t, err, ErrUnknownCodec)
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt")
		require.NoError(t, Save(path, mathvector.Of(1.0, 2.0)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		// Flip bits inside the compressed block.
		for i := len(data) - 4; i < len(data); i++ {
			data[i] ^= 0xFF
		}
		require.NoError(t, os.WriteFile(path, data, 0600))

		_, err = Load[float64](path)
		require.Error(t, err)
	})
}

func TestSaveDoesNotMutateVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.snap")
	v := mathvector.Of(5, 6, 7)
	require.NoError(t, Save(path, v))
	assert.Equal(t, []int{5, 6, 7}, v.ToSlice())
}

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "unknown(9)", CompressionType(9).String())
}

func TestIntegerElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ints.snap")
	v := mathvector.Of[int64](-5, 0, 5)
	require.NoError(t, Save(path, v, WithCompression(CompressionNone)))

	got, err := Load[int64](path)
	require.NoError(t, err)
	assert.Equal(t, []int64{-5, 0, 5}, got.ToSlice())
}
