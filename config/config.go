// Package config is the configuration of the protx command, read from the
// environment and optionally a .env file.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	goenv "go-simpler.org/env"

	"protx.lol/config/keyvalue"
	"protx.lol/env"
	"protx.lol/errorf"
)

// EnvFileKey names the variable holding the path of a .env file. Values in
// the file take precedence over the process environment.
const EnvFileKey = "PROTX_ENV_FILE"

// C is the configuration.
type C struct {
	AppName  string `env:"PROTX_APP_NAME" default:"protx"`
	EnvFile  string `env:"PROTX_ENV_FILE" usage:"path of a .env file whose values take precedence over the environment"`
	LogLevel string `env:"PROTX_LOG_LEVEL" default:"warn" usage:"log level: off fatal error warn info debug trace"`
	Format   string `env:"PROTX_FORMAT" default:"json" usage:"output format of decoded payloads: json or yaml"`
	Indent   bool   `env:"PROTX_INDENT" default:"false" usage:"indent json output"`
}

var Formats = []string{"json", "yaml"}

// New loads the configuration.
func New() (cfg *C, err error) {
	cfg = &C{}
	var src goenv.Source = env.Overlay{Env: env.Env{}}
	if path := os.Getenv(EnvFileKey); path != "" {
		var e env.Env
		if e, err = env.GetEnv(path); chk.E(err) {
			return nil, errors.Wrapf(err, "reading %s", EnvFileKey)
		}
		src = env.Overlay{Env: e}
	}
	if err = goenv.Load(cfg, &goenv.Options{Source: src}); chk.E(err) {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return
}

// Validate checks the values that have a fixed set of choices.
func (cfg *C) Validate() (err error) {
	cfg.Format = strings.ToLower(cfg.Format)
	for _, f := range Formats {
		if cfg.Format == f {
			return
		}
	}
	return errorf.E("unknown output format %q, choose from %s",
		cfg.Format, strings.Join(Formats, ", "))
}

// PrintEnv writes the configuration as a shell script.
func (cfg *C) PrintEnv(w io.Writer) { keyvalue.PrintEnv(*cfg, w) }

// Usage describes every variable.
func (cfg *C) Usage(w io.Writer) { goenv.Usage(cfg, w, nil) }
