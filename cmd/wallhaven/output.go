package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderNotice(text string, colorize bool) string {
	if colorize {
		return ansiYellow + text + ansiReset
	}
	return text
}

func renderSummary(text string, colorize bool) string {
	if colorize {
		return ansiBlue + text + ansiReset
	}
	return text
}
