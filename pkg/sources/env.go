package sources

import (
	"os"

	"github.com/rs/zerolog/log"
)

// envSource resolves names from process environment variables. A variable
// that is set but empty counts as found.
type envSource struct{}

// Env creates a source backed by the process environment.
func Env() Source {
	return envSource{}
}

func (envSource) Lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok {
		log.Debug().
			Str("env_var", name).
			Msg("Environment variable not set")
		return "", false
	}

	log.Debug().
		Str("env_var", name).
		Msg("Retrieved value from environment variable")
	return value, true
}

func (envSource) Name() string { return "Environment" }
