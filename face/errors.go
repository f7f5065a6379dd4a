package face

import (
	"errors"
	"fmt"
)

// ErrNotProduced means the prediction file could not be fetched, most likely
// because the data pipeline has not written it yet.
var ErrNotProduced = errors.New("prediction file has not been generated yet, run the data pipeline first")

// ValidationError describes a prediction document that is not a sequence of
// well-formed frames. Index is -1 when the document as a whole is wrong.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return "invalid sequence: " + e.Reason
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid frame %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid frame %d: %s %s", e.Index, e.Field, e.Reason)
}
