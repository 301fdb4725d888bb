// Package compress provides stream codecs for compressed instrument logs.
//
// Sweep logs are often archived compressed. This package lets the row reader
// open them transparently, choosing the codec from the file extension via
// format.CompressionFromPath.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): plain text, passed through
//   - Zstd (format.CompressionZstd, ".zst"): klauspost/compress/zstd, pooled decoders
//   - S2 (format.CompressionS2, ".s2"): klauspost/compress/s2 stream format
//   - LZ4 (format.CompressionLZ4, ".lz4"): pierrec/lz4 frame format
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionFromPath(path))
//	if err != nil {
//	    return err
//	}
//	r, err := codec.NewReader(file)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// The writers exist so that logs can be archived in the same formats the
// reader accepts.
package compress
