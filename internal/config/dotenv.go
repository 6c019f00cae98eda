package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded from the working directory when present.
const DefaultEnvFile = ".env"

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables that are already set win. A missing DefaultEnvFile
// is not an error; any other missing file is.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			if path == DefaultEnvFile && errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	return nil
}
