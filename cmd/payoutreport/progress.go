package main

import (
	"fmt"
	"io"

	"github.com/kyokomi/emoji/v2"

	"storj.io/payout-report/pkg/fancy"
	"storj.io/payout-report/pkg/payouts"
)

type progressUI struct {
	out         io.Writer
	longestPath int
}

func (p *progressUI) Started(evt payouts.StartedEvent) {
	longestPath := len("total")
	for _, path := range evt.Paths {
		if len(path) > longestPath {
			longestPath = len(path)
		}
	}
	p.longestPath = longestPath
}

func (p *progressUI) FileLoaded(evt payouts.FileLoadedEvent) {
	ji, level := ":white_check_mark:", fancy.Info
	result := fmt.Sprintf("%d records", evt.NumRecords)
	if evt.Err != nil {
		ji, level = ":x:", fancy.Error
		result = evt.Err.Error()
	}
	format := fmt.Sprintf("%s %%%ds: %%s\n", ji, p.longestPath)
	p.printf(level, format, evt.Path, result)
}

func (p *progressUI) FilesLoaded(evt payouts.FilesLoadedEvent) {
	format := fmt.Sprintf(":information_source: %%%ds: %%d records\n", p.longestPath)
	p.printf(fancy.Info, format, "total", evt.NumRecords)
}

func (p *progressUI) printf(level fancy.Level, format string, args ...interface{}) {
	fancy.Fprintf(p.out, level, "%s", emoji.Sprintf(format, args...))
}
