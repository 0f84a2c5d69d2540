package llm

import (
	"os"
	"strings"
)

// Credentials yields the process-wide API key. It is consulted on every
// call so that a key provided after start-up takes effect immediately.
type Credentials interface {
	APIKey() string
}

// EnvCredentials reads the first non-empty variable of the list.
type EnvCredentials []string

func (e EnvCredentials) APIKey() string {
	for _, name := range e {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

type StaticKey string

func (k StaticKey) APIKey() string {
	return strings.TrimSpace(string(k))
}
