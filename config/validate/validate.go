package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ValidationErrors collects every problem of a configuration document so
// they can be reported in one go.
type ValidationErrors struct {
	errors []error
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (v *ValidationErrors) Unwrap() []error {
	return v.errors
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		fmt.Fprintf(&sb, " - %s\n", err)
	}
	return sb.String()
}

func LogConfigOK(path string, value any) {
	log.Logger.Info().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func LogConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}

// check logs the outcome for path and records err. shown is what goes into
// the log in place of the raw value.
func check(v *ValidationErrors, path string, shown any, err error) bool {
	if err != nil {
		LogConfigError(path, shown, err)
		v.Add(err)
		return false
	}
	LogConfigOK(path, shown)
	return true
}

func RequireString(v *ValidationErrors, path string, value string) bool {
	var err error
	if strings.TrimSpace(value) == "" {
		err = fmt.Errorf("%s is required", path)
	}
	return check(v, path, value, err)
}

// RequireSecret checks the length of a secret without logging it.
func RequireSecret(v *ValidationErrors, path string, value string, minLen int) bool {
	var err error
	if len(value) < minLen {
		err = fmt.Errorf("%s length must be at least %d (got %d)", path, minLen, len(value))
	}
	return check(v, path, "***", err)
}

func RequirePort(v *ValidationErrors, path string, port int) bool {
	var err error
	if port <= 0 || port > 65535 {
		err = fmt.Errorf("%s: invalid port %d", path, port)
	}
	return check(v, path, port, err)
}

func RequireOneOf[T comparable](v *ValidationErrors, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			return check(v, path, value, nil)
		}
	}
	return check(v, path, value, fmt.Errorf("%s must be one of %v (got %v)", path, allowed, value))
}

func CheckDuration(v *ValidationErrors, path string, d time.Duration) bool {
	var err error
	if d <= 0 {
		err = fmt.Errorf("%s must be > 0", path)
	}
	return check(v, path, d, err)
}

// CheckDir verifies that dir is an existing directory. Problems with an
// optional directory are only logged.
func CheckDir(path string, dir string, required bool, v *ValidationErrors) {
	var err error
	if dir == "" {
		if !required {
			log.Logger.Info().Str("config", path).Msg("directory not set (optional)")
			return
		}
		err = errors.New("directory must be set")
	} else if info, statErr := os.Stat(dir); statErr != nil {
		err = statErr
	} else if !info.IsDir() {
		err = fmt.Errorf("%w: not a directory", fs.ErrInvalid)
	}

	if err != nil && !required {
		log.Logger.Warn().Str("config", path).Str("value", dir).Err(err).Msg("optional directory unusable")
		return
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	check(v, path, dir, err)
}
