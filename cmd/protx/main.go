// Command protx encodes, decodes and validates special transaction payloads,
// converting between the hex of the wire form and the JSON projection.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"protx.lol/chk"
	"protx.lol/config"
	"protx.lol/log"
	"protx.lol/lol"
	"protx.lol/payload"
)

const version = "v0.1.0"

type DecodeCmd struct {
	Hex  string `arg:"positional,required" help:"hex of the binary payload"`
	Type uint16 `arg:"-t,--type" default:"1" help:"special transaction type"`
}

type EncodeCmd struct {
	File string `arg:"positional" help:"file holding the JSON payload, standard input if omitted"`
	Type uint16 `arg:"-t,--type" default:"1" help:"special transaction type"`
}

type ValidateCmd struct {
	Hex  string `arg:"positional,required" help:"hex of the binary payload"`
	Type uint16 `arg:"-t,--type" default:"1" help:"special transaction type"`
}

type EnvCmd struct{}

type Args struct {
	Decode   *DecodeCmd   `arg:"subcommand:decode" help:"decode a binary payload and print it as JSON or YAML"`
	Encode   *EncodeCmd   `arg:"subcommand:encode" help:"encode a JSON payload and print the hex of the binary form"`
	Validate *ValidateCmd `arg:"subcommand:validate" help:"decode a binary payload and check its fields"`
	Env      *EnvCmd      `arg:"subcommand:env" help:"print the configuration as a shell script"`
	Format   string       `arg:"-f,--format" help:"output format, json or yaml (overrides PROTX_FORMAT)"`
	LogLevel string       `arg:"-l,--log-level" help:"log level (overrides PROTX_LOG_LEVEL)"`
}

func (Args) Version() string { return "protx " + version }

func (Args) Description() string {
	return "protx converts special transaction payloads between hex and JSON."
}

func main() {
	var args Args
	p := arg.MustParse(&args)
	cfg, err := config.New()
	if chk.F(err) {
		os.Exit(1)
	}
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stdout)
		_, _ = fmt.Fprintln(os.Stdout, "\nenvironment:")
		cfg.Usage(os.Stdout)
		os.Exit(0)
	}
	if err = run(os.Stdout, os.Stdin, &args, cfg); err != nil {
		log.E.F("%s", err)
		os.Exit(1)
	}
}

// run executes the selected subcommand with the flags applied over cfg.
func run(w io.Writer, stdin io.Reader, args *Args, cfg *config.C) (err error) {
	if args.Format != "" {
		cfg.Format = args.Format
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	lol.SetLogLevel(cfg.LogLevel)
	var t payload.Type
	switch {
	case args.Decode != nil:
		if t, err = payload.NewType(args.Decode.Type); err != nil {
			return
		}
		return decode(w, t, args.Decode.Hex, cfg)
	case args.Encode != nil:
		if t, err = payload.NewType(args.Encode.Type); err != nil {
			return
		}
		var r io.Reader = stdin
		if args.Encode.File != "" {
			var f *os.File
			if f, err = os.Open(args.Encode.File); chk.E(err) {
				return
			}
			defer f.Close()
			r = f
		}
		return encode(w, t, r)
	case args.Validate != nil:
		if t, err = payload.NewType(args.Validate.Type); err != nil {
			return
		}
		return validate(w, t, args.Validate.Hex)
	case args.Env != nil:
		cfg.PrintEnv(w)
	}
	return
}
