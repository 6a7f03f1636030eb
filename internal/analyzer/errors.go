package analyzer

import "fmt"

// AnalysisError is the only error Analyze returns. Cause is either a target
// validation error or an *httpclient.NetworkError.
type AnalysisError struct {
	Target string
	Cause  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis of '%s' failed: %v", e.Target, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(target string, cause error) error {
	return &AnalysisError{Target: target, Cause: cause}
}
