package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/format"
)

// Decompressor wraps a compressed stream in a reader yielding the original bytes.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	r, err := codec.NewReader(file)
//	if err != nil {
//	    return fmt.Errorf("open zstd stream: %w", err)
//	}
//	defer r.Close()
//
// Closing the returned reader releases codec state; it does not close the
// underlying reader.
type Decompressor interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Compressor wraps a writer so that bytes written to it are compressed.
//
// The returned writer must be closed to flush the final frame. Closing it
// does not close the underlying writer.
type Compressor interface {
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: %s for %s", errs.ErrUnsupportedCompression, compressionType, target)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// nopWriteCloser adds a no-op Close to a writer.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
