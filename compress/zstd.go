package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse.
// The klauspost/compress/zstd decoder is designed to run without allocations
// after a warmup, so decoders are reset onto each new stream instead of being
// rebuilt per file.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// ZstdCodec reads and writes Zstandard streams (".zst" files).
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// NewReader returns a reader over the decompressed stream.
// The pooled decoder is returned to the pool on Close.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	if err := decoder.Reset(r); err != nil {
		zstdDecoderPool.Put(decoder)
		return nil, fmt.Errorf("zstd stream: %w", err)
	}

	return &pooledZstdReader{decoder: decoder}, nil
}

// NewWriter returns a writer producing a Zstandard stream at the default level.
func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}

	return encoder, nil
}

type pooledZstdReader struct {
	decoder *zstd.Decoder
}

func (r *pooledZstdReader) Read(p []byte) (int, error) {
	if r.decoder == nil {
		return 0, io.ErrClosedPipe
	}

	return r.decoder.Read(p)
}

// Close detaches the decoder from its stream and returns it to the pool.
func (r *pooledZstdReader) Close() error {
	if r.decoder == nil {
		return nil
	}

	_ = r.decoder.Reset(nil)
	zstdDecoderPool.Put(r.decoder)
	r.decoder = nil

	return nil
}
