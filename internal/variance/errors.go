package variance

import (
	"fmt"

	"github.com/google/uuid"
)

// RunError wraps a fatal pass failure with the run identifier it occurred
// under, so operators can correlate a bug report with driver-side logs
// without the pass itself depending on any particular logging setup.
type RunError struct {
	RunID uuid.UUID
	Cause error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("variance pass run %s: %v", e.RunID, e.Cause)
}

func (e *RunError) Unwrap() error {
	return e.Cause
}
