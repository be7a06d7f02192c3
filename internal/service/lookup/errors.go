package lookup

import "errors"

var (
	ErrEmptyQuery  = errors.New("empty query")
	ErrNoMatches   = errors.New("no search matches")
	ErrEmptySeries = errors.New("price series is empty")
)
