// Package csv is a thin layer over the stdlib csv reader used by the GTFS static reader.
//
// Columns are resolved once from the header and then read row by row. Cells are
// trimmed, as agency exports regularly pad values with spaces.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sankeo-tools/gtfs/constants"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type File struct {
	name                   constants.StaticFile
	csvReader              *csv.Reader
	headerMap              map[string]int
	rowNumber              int
	missingRequiredColumns []string
	cells                  []string
	missingKeys            []string
	ioErr                  error
	closer                 func() error
}

func New(name constants.StaticFile, reader io.ReadCloser) (*File, error) {
	csvReader := BOMAwareCSVReader(reader)
	// Some feeds have ragged rows; short rows are handled when reading columns.
	csvReader.FieldsPerRecord = -1
	header, err := csvReader.Read()
	if err == io.EOF {
		reader.Close()
		return nil, fmt.Errorf("%s contains no rows", name)
	} else if err != nil {
		reader.Close()
		return nil, err
	}
	csvReader.ReuseRecord = true
	m := map[string]int{}
	for i, colHeader := range header {
		m[strings.TrimSpace(colHeader)] = i
	}
	return &File{
		name:      name,
		headerMap: m,
		csvReader: csvReader,
		closer:    reader.Close,
	}, nil
}

func (f *File) Name() constants.StaticFile {
	return f.name
}

type RequiredColumn struct {
	i int
	s string
	f *File
}

func (f *File) RequiredColumn(s string) RequiredColumn {
	i, ok := f.headerMap[s]
	if !ok {
		f.missingRequiredColumns = append(f.missingRequiredColumns, s)
		i = -1
	}
	return RequiredColumn{i, s, f}
}

func (f *File) MissingRequiredColumns() []string {
	if len(f.missingRequiredColumns) == 0 {
		return nil
	}
	return f.missingRequiredColumns
}

// Read returns the trimmed cell, recording the column as missing for the current row if it is empty.
func (c RequiredColumn) Read() string {
	s := c.f.cell(c.i)
	if s == "" {
		c.f.missingKeys = append(c.f.missingKeys, c.s)
	}
	return s
}

type OptionalColumn struct {
	i int
	f *File
}

func (f *File) OptionalColumn(s string) OptionalColumn {
	i, ok := f.headerMap[s]
	if !ok {
		i = -1
	}
	return OptionalColumn{i: i, f: f}
}

func (c OptionalColumn) Read() string {
	return c.f.cell(c.i)
}

func (c OptionalColumn) ReadOr(s string) string {
	if v := c.f.cell(c.i); v != "" {
		return v
	}
	return s
}

func (f *File) cell(i int) string {
	if i < 0 || i >= len(f.cells) {
		return ""
	}
	// The csv reader reuses its record, but strings are immutable so the copy is safe.
	return strings.TrimSpace(f.cells[i])
}

func (f *File) NextRow() bool {
	cells, err := f.csvReader.Read()
	if err == io.EOF {
		f.cells = nil
		return false
	}
	if err != nil {
		f.cells = nil
		f.ioErr = err
		return false
	}
	f.rowNumber += 1
	f.cells = cells
	f.missingKeys = nil
	return true
}

func (f *File) RowNumber() int {
	return f.rowNumber
}

func (f *File) MissingRowKeys() []string {
	return f.missingKeys
}

func (f *File) Close() error {
	closeErr := f.closer()
	if f.ioErr != nil {
		return f.ioErr
	}
	return closeErr
}

// From: https://stackoverflow.com/a/76023436
//
// BOMAwareCSVReader will detect a UTF BOM (Byte Order Mark) at the
// start of the data and transform to UTF8 accordingly.
// If there is no BOM, it will read the data without any transformation.
func BOMAwareCSVReader(reader io.Reader) *csv.Reader {
	var transformer = unicode.BOMOverride(encoding.Nop.NewDecoder())
	return csv.NewReader(transform.NewReader(reader, transformer))
}
