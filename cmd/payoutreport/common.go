package main

import (
	"fmt"
	"io"

	"github.com/zeebo/errs"

	"storj.io/payout-report/pkg/fancy"
)

var (
	usageErr         = errs.Class("usage")
	unknownReportErr = errs.Class("unknown report")
)

// exitError ends the run with the given status once the failure has been
// reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func checkCmd(stderr io.Writer, err error) error {
	switch {
	case err == nil:
		return nil
	case usageErr.Has(err):
		// If it is a usage error, return it directly so the usage is shown.
		return err
	case unknownReportErr.Has(err):
		// already reported to the user
		return &exitError{code: 1}
	}
	// other errors exit with 2
	fancy.Ferrorf(stderr, "error: %+v\n", err)
	return &exitError{code: 2}
}
