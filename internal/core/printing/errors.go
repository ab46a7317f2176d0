package printing

import "errors"

var (
	// ErrPrinterUnavailable is returned when a printer name no longer
	// resolves to a live printer.
	ErrPrinterUnavailable = errors.New("printer unavailable")

	// ErrUnsupported is returned on hosts without a print subsystem.
	ErrUnsupported = errors.New("printing not supported on this host")

	// ErrJobFailed wraps driver or spooler failures for a submitted job.
	ErrJobFailed = errors.New("print job failed")
)
