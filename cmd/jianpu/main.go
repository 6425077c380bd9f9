package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-logr/logr"

	"github.com/harmonica-tools/jianpu/internal/logging"
	"github.com/harmonica-tools/jianpu/internal/pitch"
	"github.com/harmonica-tools/jianpu/internal/sheetio"
	"github.com/harmonica-tools/jianpu/pkg/config"
	"github.com/harmonica-tools/jianpu/pkg/jianpu"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configFile string
	debug      bool
	keyAliases string
	cfg        config.Config
}

func parseFlags(args []string) (*config.Config, *flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet("jianpu", flag.ContinueOnError)
	fs.StringVar(&f.configFile, "config", "", "Optional YAML file with default settings")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.keyAliases, "key-aliases", "", "Comma-separated alias=key pairs, e.g. H=B,Cis=C#")
	for _, name := range []string{"input", "i"} {
		fs.StringVar(&f.cfg.Input, name, "", "Sheet file to read, or the sheet itself when no such file exists (default \"input\")")
	}
	for _, name := range []string{"output", "o"} {
		fs.StringVar(&f.cfg.Output, name, "", "File to write the result to; empty prints to stdout (default \"output\")")
	}
	for _, name := range []string{"target", "t"} {
		fs.StringVar(&f.cfg.Target, name, "", "Key to transpose into, e.g. D, G, C# (default \"D\")")
	}
	for _, name := range []string{"source", "s"} {
		fs.StringVar(&f.cfg.Source, name, "", "Key the sheet is written in (default \"C\")")
	}
	for _, name := range []string{"warnings", "w"} {
		fs.StringVar(&f.cfg.Warnings, name, "", "File to write unrecognized character warnings to; empty prints them (default \"warnings\")")
	}
	fs.BoolVar(&f.cfg.ReportUnrecognized, "report-unrecognized", false, "Report characters that are neither notes nor common punctuation")
	fs.BoolVar(&f.cfg.StrictKeys, "strict-keys", false, "Fail on key names outside the key table instead of treating them as C")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "input", "i":
			cfg.Input = f.cfg.Input
		case "output", "o":
			cfg.Output = f.cfg.Output
		case "target", "t":
			cfg.Target = f.cfg.Target
		case "source", "s":
			cfg.Source = f.cfg.Source
		case "warnings", "w":
			cfg.Warnings = f.cfg.Warnings
		case "report-unrecognized":
			cfg.ReportUnrecognized = f.cfg.ReportUnrecognized
		case "strict-keys":
			cfg.StrictKeys = f.cfg.StrictKeys
		case "key-aliases":
			if cfg.KeyAliases == nil {
				cfg.KeyAliases = config.KeyAliases{}
			}
			for alias, key := range config.ParseKeyAliases(f.keyAliases) {
				cfg.KeyAliases[alias] = key
			}
		}
	})
	return cfg, f, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, f, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(f.debug, "")
	if err != nil {
		return err
	}
	ctx := logr.NewContext(context.Background(), logger)
	return transpose(ctx, cfg, stdout)
}

// resolveKey applies aliases and returns the key table name that will be used for the
// transposition. Unknown keys fail in strict mode and fall back to C otherwise.
func resolveKey(logger logr.Logger, cfg *config.Config, spec string) (string, error) {
	name, err := pitch.CanonicalName(cfg.KeyAliases.Resolve(spec))
	if err == nil {
		return name, nil
	}
	if cfg.StrictKeys {
		return "", fmt.Errorf("invalid key %q: %w", spec, err)
	}
	logger.Info("unrecognized key treated as C", "key", spec)
	return jianpu.DefaultSourceKey, nil
}

func transpose(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	logger := logr.FromContextOrDiscard(ctx)
	if cfg.Input == "" {
		return fmt.Errorf("no input: pass a sheet file or the sheet itself with -input")
	}
	if cfg.Target == "" {
		return fmt.Errorf("no target key: pass one with -target")
	}

	source, err := resolveKey(logger, cfg, cfg.Source)
	if err != nil {
		return err
	}
	target, err := resolveKey(logger, cfg, cfg.Target)
	if err != nil {
		return err
	}

	start := time.Now()
	text, fromFile := sheetio.ReadSheet(cfg.Input)
	logger.V(1).Info("read sheet", "fromFile", fromFile, "runes", utf8.RuneCountInString(text))

	var opts []jianpu.Option
	if cfg.ReportUnrecognized {
		opts = append(opts, jianpu.WithUnrecognized())
	}
	result, warnings := jianpu.TransposeSheet(text, target, source, opts...)

	if report := sheetio.FormatWarnings(warnings); report != "" {
		if err := sheetio.Emit(cfg.Warnings, report, stdout); err != nil {
			logger.Error(err, "unable to write warnings")
			fmt.Fprint(stdout, report)
		} else if cfg.Warnings != "" {
			fmt.Fprintf(stdout, "Warnings written to %s\n", cfg.Warnings)
		}
	}

	if err := sheetio.Emit(cfg.Output, sheetio.Header(source, target)+result, stdout); err != nil {
		return err
	}
	if cfg.Output != "" {
		fmt.Fprintf(stdout, "Result written to %s\n", cfg.Output)
	}

	logging.NewLogger().LogTransposition(ctx, logging.Transposition{
		Source:     source,
		Target:     target,
		InputRunes: utf8.RuneCountInString(text),
		Warnings:   len(warnings),
		Duration:   time.Since(start),
	})
	return nil
}
