package format

import (
	"path/filepath"
	"strings"
)

// CompressionType identifies the codec an input file is wrapped in. It is
// derived from the file extension by CompressionFromPath.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents plain, uncompressed text.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame stream.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension conventionally used for the compression type.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

var compressionByExt = map[string]CompressionType{
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".s2":   CompressionS2,
	".lz4":  CompressionLZ4,
}

// CompressionFromPath infers the compression of a file from its extension.
// Unknown extensions are treated as uncompressed.
func CompressionFromPath(path string) CompressionType {
	if c, ok := compressionByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}

	return CompressionNone
}

// StripCompression removes a recognized compression extension from path,
// so "run1.csv.zst" becomes "run1.csv".
func StripCompression(path string) string {
	ext := filepath.Ext(path)
	if _, ok := compressionByExt[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(path, ext)
	}

	return path
}

// IsWorkbook reports whether path names a spreadsheet workbook rather than
// delimited text.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}
