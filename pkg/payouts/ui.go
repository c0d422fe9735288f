package payouts

// IngestUI receives progress events while timesheet files are read.
type IngestUI interface {
	Started(StartedEvent)
	FileLoaded(FileLoadedEvent)
	FilesLoaded(FilesLoadedEvent)
}

type StartedEvent struct {
	Paths []string
}

type FileLoadedEvent struct {
	Path       string
	Err        error
	NumRecords int
}

type FilesLoadedEvent struct {
	NumRecords int
}

type nopUI struct{}

func (nopUI) Started(StartedEvent)         {}
func (nopUI) FileLoaded(FileLoadedEvent)   {}
func (nopUI) FilesLoaded(FilesLoadedEvent) {}
