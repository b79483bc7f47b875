package roster

import "errors"

// Sentinel kinds for roster loading errors.
var (
	ErrLoadRoster    = errors.New("load roster failed")
	ErrInvalidRoster = errors.New("invalid roster")
)
