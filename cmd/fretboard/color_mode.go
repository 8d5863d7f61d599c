package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// shouldColor resolves auto against the writer: only real terminals get
// colour.
func shouldColor(mode colorMode, w io.Writer) bool {
	switch mode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
