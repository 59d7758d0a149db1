package chart

import "errors"

// ErrEmptyReport is returned when a report has no measurement to draw.
var ErrEmptyReport = errors.New("chart: report has no measurements")
