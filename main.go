package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/mulog/go-mulog/mulog"
)

// Demo binary for the mulog facade.
//
// Usage: ./go-mulog [--level LEVEL] [--color] [--logfile PATH]
func main() {
	var (
		levelName string
		colorize  bool
		logFile   string
	)

	fs := flag.NewFlagSet("go-mulog", flag.ExitOnError)
	fs.StringVarP(&levelName, "level", "l", "INFO", "Minimum level to emit (TRACE..FATAL)")
	fs.BoolVarP(&colorize, "color", "c", false, "Colorize the level name")
	fs.StringVar(&logFile, "logfile", "", "Write to this file instead of stdout")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	threshold, err := mulog.ParseLevel(levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := mulog.Default()
	logger.SetThreshold(threshold)

	out := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logFile, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if colorize {
		logger.SetSink(mulog.NewColorSink(logger, out))
	} else {
		logger.SetSink(mulog.NewWriterSink(logger, out))
	}

	mulog.Tracef("entering main")
	mulog.Debugf("threshold resolved to %s", threshold)
	mulog.Infof("hello %s", "world")
	mulog.Warnf("disk usage at %d%%", 93)
	mulog.Errorf("oops: %v", "something happened")
	mulog.Fatalf("fatal-severity message (the process keeps running)")

	// Callers can skip building expensive messages entirely.
	if mulog.WillLog(mulog.DebugLevel) {
		mulog.Debugf("expensive detail: %v", expensiveDetail())
	}
}

func expensiveDetail() string {
	return "computed only when DEBUG is emitted"
}
