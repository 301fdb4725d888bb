package ingest

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/sweepfit/compress"
	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/format"
	"github.com/arloliu/sweepfit/internal/hash"
	"github.com/arloliu/sweepfit/internal/pool"
)

// DefaultDelimiter separates fields in a measurement log.
const DefaultDelimiter = ","

// RowReader produces the rows of an input file, one row per line, each an
// ordered sequence of string fields.
type RowReader interface {
	ReadRows(path string) ([][]string, error)
}

// Table is the content of an input file together with its checksum.
type Table struct {
	// Rows holds one entry per input line, fields in file order.
	Rows [][]string
	// Checksum is the xxHash64 of the decoded (decompressed) file content.
	Checksum uint64
}

// FileReader reads delimited text, compressed text and Excel workbooks from
// the local filesystem.
//
// The zero value splits on DefaultDelimiter.
type FileReader struct {
	// Delimiter separates fields within a line. Empty means DefaultDelimiter.
	// It is ignored for workbooks.
	Delimiter string
}

var _ RowReader = (*FileReader)(nil)

// NewFileReader creates a FileReader splitting on delimiter.
func NewFileReader(delimiter string) *FileReader {
	return &FileReader{Delimiter: delimiter}
}

// ReadRows implements RowReader. It skips the checksum computed by ReadTable.
func (r *FileReader) ReadRows(path string) ([][]string, error) {
	table, err := r.read(path, false)
	if err != nil {
		return nil, err
	}

	return table.Rows, nil
}

// ReadTable reads the whole file at path.
//
// The codec is chosen from the file extension. Failure to open the file is
// reported as errs.ErrOpenInput; decoding failures are returned wrapped with
// the path.
func (r *FileReader) ReadTable(path string) (Table, error) {
	return r.read(path, true)
}

func (r *FileReader) read(path string, checksum bool) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", errs.ErrOpenInput, err)
	}
	defer f.Close()

	compression := format.CompressionFromPath(path)
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return Table{}, err
	}

	rc, err := codec.NewReader(f)
	if err != nil {
		return Table{}, fmt.Errorf("open %s stream %s: %w", compression, path, err)
	}
	defer rc.Close()

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if _, err := buf.ReadFrom(rc); err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}

	var table Table
	if checksum {
		table.Checksum = hash.Checksum(buf.Bytes())
	}
	if format.IsWorkbook(format.StripCompression(path)) {
		table.Rows, err = parseWorkbook(buf.Bytes())
		if err != nil {
			return Table{}, fmt.Errorf("read workbook %s: %w", path, err)
		}

		return table, nil
	}

	table.Rows = splitRows(buf.Bytes(), r.delimiter())

	return table, nil
}

func (r *FileReader) delimiter() string {
	if r == nil || r.Delimiter == "" {
		return DefaultDelimiter
	}

	return r.Delimiter
}

// ReadTable reads path with a comma-delimited FileReader.
func ReadTable(path string) (Table, error) {
	return (&FileReader{}).ReadTable(path)
}

// splitRows splits content into lines and lines into fields. A final line
// terminator does not produce an extra row; "\r\n" endings are accepted.
// The returned strings do not alias content.
func splitRows(content []byte, delimiter string) [][]string {
	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return [][]string{}
	}

	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(strings.TrimSuffix(line, "\r"), delimiter)
	}

	return rows
}

// parseWorkbook returns the rows of the first sheet, using raw cell values so
// numbers keep full precision instead of their display format.
func parseWorkbook(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return [][]string{}, nil
	}

	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}
