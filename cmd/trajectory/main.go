package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

var (
	sceneFlag = flag.String("scene", "", "Path to a YAML scene file (built-in cannon shot when empty)")
	outFlag   = flag.String("out", "", "Output PPM path, \"-\" for stdout (overrides the scene's output)")
	chartFlag = flag.Bool("chart", false, "Print an altitude chart to stderr after the flight")
	debugFlag = flag.Bool("debug", false, "Enable debug logging")
)

func newLogger(debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

func main() {
	flag.Parse()

	logger, err := newLogger(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *sceneFlag, *outFlag, *chartFlag); err != nil {
		logger.Fatal("Run failed", zap.Error(err))
	}
}
