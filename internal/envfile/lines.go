package envfile

import (
	"sort"

	"github.com/joho/godotenv"
)

// Keys returns the sorted variable names defined by the env file at path.
// Parsing follows dotenv rules (comments and blank lines skipped, quoted
// values handled). The file is read, never loaded into the process
// environment.
func Keys(path string) ([]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
