package apperr

// ConfigError is a fatal configuration problem: a missing credential or an
// out-of-range flag. Nothing runs after one of these surfaces.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(msg string) *ConfigError {
	return &ConfigError{Message: msg}
}

func NewConfigWrap(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}

// ProviderError is a failed call to an external provider (YouTube search or
// the scoring API). Callers isolate it at the topic boundary.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := e.Provider + ": " + e.Message
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProvider(provider, msg string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Message: msg, Err: err}
}

// DecodeError means a scoring response could not be interpreted. The filter
// stage drops the affected video and moves on.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewDecode(msg string, err error) *DecodeError {
	return &DecodeError{Message: msg, Err: err}
}
