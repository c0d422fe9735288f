// Package timesheetcsv provides functions for loading timesheet CSV files
package timesheetcsv

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/zeebo/errs"
)

const (
	// Delimiter separates fields. Quoting is not supported; a delimiter
	// inside a value always splits it.
	Delimiter = ","
)

var (
	// lineEndings folds "\r\n" and a bare "\r" into "\n".
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

	// FileAccessError is returned when a timesheet file cannot be opened
	// or read.
	FileAccessError = errs.Class("file access")
)

type Row struct {
	// Line number in the file
	Line int

	// Fields maps each header name to the value in the same position.
	// Values past the last header are dropped and missing trailing values
	// are absent.
	Fields map[string]string
}

func Load(fs afero.Fs, path string) (_ []Row, err error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, FileAccessError.Wrap(err)
	}
	defer func() {
		err = errs.Combine(err, FileAccessError.Wrap(f.Close()))
	}()

	data, err := afero.ReadAll(f)
	if err != nil {
		return nil, FileAccessError.Wrap(err)
	}
	return Parse(data), nil
}

// Parse splits the data into rows. The first non-blank line is the header.
// Lines may end in "\n", "\r\n" or a bare "\r". Blank lines are skipped and
// data holding only blank lines has no rows.
func Parse(data []byte) []Row {
	var header []string
	var rows []Row
	for i, raw := range strings.Split(lineEndings.Replace(string(data)), "\n") {
		line := i + 1
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		// first non-empty line must be the header
		if header == nil {
			header = splitFields(text)
			continue
		}

		values := splitFields(text)
		fields := make(map[string]string, len(header))
		for j := 0; j < len(header) && j < len(values); j++ {
			fields[header[j]] = values[j]
		}
		rows = append(rows, Row{
			Line:   line,
			Fields: fields,
		})
	}
	return rows
}

func splitFields(text string) []string {
	fields := strings.Split(text, Delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
