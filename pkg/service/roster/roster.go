package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xfusion-digital/scimport/pkg/domain/model"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
)

// Row is one raw roster line keyed by header name, before validation
type Row struct {
	Number int // 1-based data row number, header excluded
	Fields map[string]string
}

// Reader parses a delimited roster file into rows
type Reader struct {
	path string
}

// New creates a Reader for the given roster file path
func New(path string) *Reader {
	return &Reader{path: path}
}

var requiredColumns = []string{model.ColumnUserName, model.ColumnDisplayName}

// Rows walks the file and invokes cb once per data row. File-level
// problems (missing file, bad encoding, missing required headers) abort
// with an input-tagged error. A malformed line is reported to cb as a
// row-local error and reading continues. A non-nil error from cb stops
// the walk.
func (r *Reader) Rows(ctx context.Context, cb func(row Row, rowErr error) error) error {
	f, err := os.Open(r.path)
	if err != nil {
		return goerr.Wrap(err, "failed to open roster file",
			goerr.V("path", r.path),
			goerr.T(types.ErrTagInput))
	}
	defer f.Close()

	cr := csv.NewReader(f)

	header, err := cr.Read()
	if err != nil {
		return goerr.Wrap(err, "failed to read roster header",
			goerr.V("path", r.path),
			goerr.T(types.ErrTagInput))
	}
	columns, err := parseHeader(header)
	if err != nil {
		return goerr.Wrap(err, "invalid roster header",
			goerr.V("path", r.path))
	}

	number := 0
	for {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "roster read canceled")
		}

		fields, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		number++

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				rowErr := goerr.Wrap(err, "malformed roster row",
					goerr.V("row", number),
					goerr.T(types.ErrTagValidation))
				if cbErr := cb(Row{Number: number}, rowErr); cbErr != nil {
					return cbErr
				}
				continue
			}
			return goerr.Wrap(err, "failed to read roster row",
				goerr.V("path", r.path),
				goerr.V("row", number),
				goerr.T(types.ErrTagInput))
		}

		row := Row{Number: number, Fields: make(map[string]string, len(columns))}
		for name, idx := range columns {
			cell := fields[idx]
			if !utf8.ValidString(cell) {
				return goerr.New("roster file is not valid UTF-8",
					goerr.V("path", r.path),
					goerr.V("row", number),
					goerr.T(types.ErrTagInput))
			}
			row.Fields[name] = cell
		}

		if err := cb(row, nil); err != nil {
			return err
		}
	}
}

// parseHeader maps column names to their positions, checking that the
// required columns are all present.
func parseHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			// Excel and friends prepend a BOM to UTF-8 files
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		name = strings.TrimSpace(name)
		if !utf8.ValidString(name) {
			return nil, goerr.New("roster header is not valid UTF-8",
				goerr.T(types.ErrTagInput))
		}
		columns[name] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, goerr.New("required column is missing",
				goerr.V("column", required),
				goerr.T(types.ErrTagInput))
		}
	}

	return columns, nil
}
