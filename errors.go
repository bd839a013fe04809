package cfop

import "errors"

// Sentinel errors for the cfop package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cfop: invalid move notation")
	ErrInvalidColor    = errors.New("cfop: invalid color letter")
	ErrInvalidNet      = errors.New("cfop: invalid sticker net")

	// State errors
	ErrInvalidState = errors.New("cfop: cube state is not reachable")
)
