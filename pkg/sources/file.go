package sources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// fileSource reads one secret per file from a configured directory. Useful
// for Docker secrets, Kubernetes secrets, or local development.
//
// Example usage in a config value:
//
//	password: ${db_password}  # Reads from <dir>/db_password
//
// The file contents are trimmed of whitespace.
type fileSource struct {
	dir string
}

// File creates a source that reads the file named after each lookup from
// dir. The directory must exist when the source is created, so a mistyped
// path fails loudly instead of turning every lookup into a silent miss.
//
// Parameters:
//   - dir: the directory containing secret files
func File(dir string) (Source, error) {
	if dir == "" {
		return nil, errors.New("no secrets directory configured")
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, errors.Errorf("secrets directory %q does not exist", dir)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error accessing secrets directory %q", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("secrets directory %q is not a directory", dir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve absolute path for secrets directory")
	}

	return &fileSource{dir: absDir}, nil
}

func (f *fileSource) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	// Placeholder names come straight out of untrusted config text; never
	// let one escape the secrets directory.
	if filepath.IsAbs(name) {
		log.Warn().
			Str("name", name).
			Msg("Rejecting absolute path as secret name")
		return "", false
	}

	cleanName := filepath.Clean(name)
	if strings.Contains(cleanName, "..") {
		log.Warn().
			Str("name", name).
			Msg("Rejecting path traversal in secret name")
		return "", false
	}

	path := filepath.Join(f.dir, cleanName)
	if !strings.HasPrefix(path, f.dir+string(filepath.Separator)) {
		log.Warn().
			Str("name", name).
			Msg("Rejecting secret name resolving outside the secrets directory")
		return "", false
	}

	// #nosec G304 -- Path traversal is prevented by validation above
	content, err := os.ReadFile(path)
	if err != nil {
		log.Debug().
			Str("file", path).
			Msg("No readable secret file for placeholder")
		return "", false
	}

	log.Debug().
		Str("file", path).
		Msg("Retrieved secret from file")
	return strings.TrimSpace(string(content)), true
}

func (f *fileSource) Name() string { return "File" }
