package analyzer

import "errors"

// ErrInvalidInput is returned when either text is empty after trimming. It is
// the only fatal error the pipeline can produce.
var ErrInvalidInput = errors.New("resume text and job description text are required")

// errNoJSONBlock signals a remote response with no parseable JSON object;
// recoverable via heuristic fallback.
var errNoJSONBlock = errors.New("no JSON object found in remote scorer response")

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeInternal   = "internal_error"
)
