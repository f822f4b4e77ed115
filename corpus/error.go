package corpus

import "errors"

var (
	ErrExtraction = errors.New("could not extract word list")
	ErrLoad       = errors.New("could not load word list")
)
