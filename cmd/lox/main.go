package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"lox/internal/diag"
	"lox/internal/lexer"

	"github.com/labstack/gommon/bytes"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Exit codes follow sysexits.h
const (
	exitUsage   = 64
	exitDataErr = 65
	exitNoInput = 66
)

func main() {
	configureLogging(os.Getenv("LOX_LOG_LEVEL"))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, colorEnabled(os.Getenv("NO_COLOR"), os.Stderr)))
}

// colorEnabled reports whether errors written to f may carry colour
func colorEnabled(noColor string, f *os.File) bool {
	if noColor != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func configureLogging(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Warn("ignoring LOX_LOG_LEVEL")
		return
	}
	logrus.SetLevel(lvl)
}

func run(args []string, stdout, stderr io.Writer, useColor bool) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, "Usage: lox /path/to/source.lox")
		return exitUsage
	}

	absPath, err := filepath.Abs(args[0])
	if err != nil {
		logrus.WithError(err).Error("cannot resolve path")
		return exitNoInput
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		logrus.WithError(err).Error("cannot read source")
		return exitNoInput
	}

	log := logrus.WithField("file", absPath)
	log.WithField("size", bytes.Format(int64(len(b)))).Debug("source loaded")

	state := diag.NewState(log)
	if useColor {
		state.EnableColor()
	}

	start := time.Now()
	toks := lexer.Scan(string(b), state, lexer.WithLogger(log))
	log.WithField("elapsed", time.Since(start)).Debug("scanned")

	for _, tok := range toks {
		fmt.Fprintln(stdout, tok)
	}

	if state.PrintErrors(stderr) {
		return exitDataErr
	}
	return 0
}
