package datebands

import "errors"

// Error kinds surfaced by the date-band pipeline. Callers match them with
// errors.Is; the messages wrapped around them name the offending value.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidDate          = errors.New("invalid acquisition date")
	ErrMissingReferenceBand = errors.New("reference band not found")
	ErrGeometryMismatch     = errors.New("reference band geometry mismatch")
)
