package report

import "errors"

var (
	ErrInvalidReportType = errors.New("invalid report type")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrInvalidFormat     = errors.New("invalid export format")
)
