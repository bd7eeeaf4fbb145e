package bootstrap

import (
	"io"
	"os"

	"github.com/example/mm-worker/internal/format"
	"github.com/sirupsen/logrus"
)

// TimestampFormat is the clock layout prefixed to text log lines.
const TimestampFormat = "15:04"

// Options configures Init.
type Options struct {
	Debug bool
	// Output defaults to os.Stderr.
	Output io.Writer
	// JSON switches the logger to one JSON object per line.
	JSON bool
	// Quiet suppresses the banner.
	Quiet bool
}

// Environment holds the process-wide output configuration built by Init.
type Environment struct {
	Logger *logrus.Logger
	Floats format.FloatPrinter
}

var bannerLines = []string{
	"",
	"------------------------------------------------------------",
	"|                                                          |",
	"|  MadMiner                                                |",
	"|                                                          |",
	"|  Version from July 5, 2018                               |",
	"|                                                          |",
	"|           Johann Brehmer, Kyle Cranmer, and Felix Kling  |",
	"|                                                          |",
	"------------------------------------------------------------",
	"",
	"Hi! How are you today?",
}

// Init builds a logger at debug or info level, writes the banner, and
// selects two-decimal fixed notation for float display.
func Init(opts Options) *Environment {
	logger := logrus.New()
	configure(logger, opts)

	if !opts.Quiet {
		for _, line := range bannerLines {
			logger.Info(line)
		}
	}

	return &Environment{
		Logger: logger,
		Floats: format.DefaultFloatPrinter(),
	}
}

// Level reports the threshold Init selects for debug.
func Level(debug bool) logrus.Level {
	if debug {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func configure(logger *logrus.Logger, opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)
	logger.SetLevel(Level(opts.Debug))

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: TimestampFormat})
		return
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})
}

// Banner returns a copy of the banner lines.
func Banner() []string {
	return append([]string(nil), bannerLines...)
}
