package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures. Input errors abort the run; everything
// else is scoped to a single row and processing continues.
var (
	ErrTagInput      = goerr.NewTag("input")
	ErrTagValidation = goerr.NewTag("validation")
	ErrTagAPI        = goerr.NewTag("api")
	ErrTagNetwork    = goerr.NewTag("network")
)

// IsRowLocal reports whether err is scoped to one row rather than fatal
// to the whole run.
func IsRowLocal(err error) bool {
	return goerr.HasTag(err, ErrTagValidation) ||
		goerr.HasTag(err, ErrTagAPI) ||
		goerr.HasTag(err, ErrTagNetwork)
}
