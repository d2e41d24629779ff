// Command geoquery evaluates the distance and intersection queries of scene
// files and prints a YAML report for each.
//
// Usage:
//
//	geoquery [-config file.ini] [-v] scene.yaml...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"honnef.co/go/geom/internal/config"
	"honnef.co/go/geom/internal/scene"
)

func main() {
	fs := flag.NewFlagSet("geoquery", flag.ExitOnError)
	cfgPath := fs.String("config", "", "read configuration from this INI `file`")
	verbose := fs.Bool("v", false, "log every query")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: geoquery [-config file.ini] [-v] scene.yaml...\n")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Read(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	level, _ := cfg.Level()
	if *verbose {
		level = zapcore.DebugLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout, fs.Args()); err != nil {
		logger.Error("geoquery failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return cfg.Build()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger, w io.Writer, paths []string) error {
	runner := scene.NewRunner(scene.NewRegistry(cfg.QueryTolerance()), logger)
	runner.Precision = cfg.Output.Precision

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	for _, path := range paths {
		doc, err := scene.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Info("running scene",
			zap.String("scene", path),
			zap.Int("shapes", len(doc.Shapes)),
			zap.Int("queries", len(doc.Queries)))
		report, err := runner.Run(ctx, doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		report.Scene = path
		if err := enc.Encode(report); err != nil {
			return err
		}
	}
	return nil
}
