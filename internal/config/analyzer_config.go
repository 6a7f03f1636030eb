package config

// AnalyzerConfig bounds how many targets are analyzed at once in batch mode.
type AnalyzerConfig struct {
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"min=1"`
}

// NewDefaultAnalyzerConfig creates default analyzer configuration
func NewDefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Concurrency: DefaultAnalyzerConcurrency,
	}
}
