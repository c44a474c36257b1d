// Package env reads a .env file into a lookup source for go-simpler.org/env,
// so configuration can come from a file as well as the process environment.
package env

import (
	"os"
	"strings"
)

// Env is a key/value map of environment variables from a file.
type Env map[string]string

// GetEnv reads a file of KEY=value lines. Blank lines, lines starting with #
// and lines without an = are skipped, and an `export ` prefix is allowed so a
// file written by the env command can be read back.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env[strings.TrimSpace(k)] = strings.Trim(strings.TrimSpace(v), `"'`)
	}
	return
}

// LookupEnv returns the value of a key from the file.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}

// Overlay looks a key up in the file first, then the process environment.
type Overlay struct{ Env }

func (o Overlay) LookupEnv(key string) (value string, ok bool) {
	if value, ok = o.Env.LookupEnv(key); ok {
		return
	}
	return os.LookupEnv(key)
}
