// Package payouts ingests timesheet files and generates reports over the
// employees they hold.
package payouts

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"storj.io/payout-report/pkg/employee"
	"storj.io/payout-report/pkg/report"
	"storj.io/payout-report/pkg/timesheetcsv"
)

type Config struct {
	// FS is where timesheet files are read from. Defaults to the OS
	// filesystem.
	FS afero.Fs

	// Aliases selects the rate and hours columns. Defaults to
	// employee.DefaultAliases.
	Aliases *employee.Aliases

	// Registry holds the available reports. Defaults to
	// report.NewRegistry.
	Registry *report.Registry

	// UI receives ingestion progress. Optional.
	UI IngestUI
}

// Processor owns the employee collection for a single run.
type Processor struct {
	log       *zap.Logger
	fs        afero.Fs
	aliases   employee.Aliases
	registry  *report.Registry
	ui        IngestUI
	employees []*employee.Record
}

func NewProcessor(log *zap.Logger, config Config) (*Processor, error) {
	p := &Processor{
		log:      log,
		fs:       config.FS,
		aliases:  employee.DefaultAliases(),
		registry: config.Registry,
		ui:       config.UI,
	}
	if config.Aliases != nil {
		p.aliases = *config.Aliases
	}
	if err := p.aliases.Validate(); err != nil {
		return nil, err
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.registry == nil {
		p.registry = report.NewRegistry()
	}
	if p.ui == nil {
		p.ui = nopUI{}
	}
	return p, nil
}

// ReadFiles appends the records of each file in order. Reading stops at the
// first file that cannot be read or holds a malformed rate or hours value,
// in which case no records from any of the files are kept.
func (p *Processor) ReadFiles(paths []string) error {
	p.ui.Started(StartedEvent{Paths: paths})

	var loaded []*employee.Record
	for _, path := range paths {
		records, err := p.readFile(path)
		if err != nil {
			p.ui.FileLoaded(FileLoadedEvent{Path: path, Err: err})
			return err
		}
		p.ui.FileLoaded(FileLoadedEvent{Path: path, NumRecords: len(records)})
		p.log.Debug("Loaded timesheet", zap.String("path", path), zap.Int("records", len(records)))

		loaded = append(loaded, records...)
	}

	p.employees = append(p.employees, loaded...)
	p.ui.FilesLoaded(FilesLoadedEvent{NumRecords: len(p.employees)})
	return nil
}

func (p *Processor) readFile(path string) ([]*employee.Record, error) {
	rows, err := timesheetcsv.Load(p.fs, path)
	if err != nil {
		return nil, err
	}

	records := make([]*employee.Record, 0, len(rows))
	for _, row := range rows {
		record := &employee.Record{
			Path:   path,
			Line:   row.Line,
			Fields: row.Fields,
		}
		if err := employee.Normalize(record, p.aliases); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// GenerateReport renders the named report over the records read so far. ok
// is false when no such report is registered.
func (p *Processor) GenerateReport(name string) (_ string, ok bool, err error) {
	renderer, ok := p.registry.Lookup(name)
	if !ok {
		return "", false, nil
	}

	out, err := renderer(p.employees)
	if err != nil {
		return "", true, err
	}
	p.log.Debug("Generated report", zap.String("report", name), zap.Int("employees", len(p.employees)), zap.Int("bytes", len(out)))
	return out, true, nil
}
