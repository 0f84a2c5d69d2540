package llm

import "fmt"

// ConfigurationError means the call could not be attempted at all, usually
// because no credential is available. Nothing was sent upstream.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "llm configuration error: " + e.Reason
}

// UpstreamError covers transport failures, empty replies and replies that
// do not parse into the requested shape. Message is safe to show to readers.
type UpstreamError struct {
	Op      string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("llm %s failed", e.Op)
	}
	return fmt.Sprintf("llm %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
