package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode, quiet bool) bool {
	switch {
	case mode == uiModeOn:
		return true
	case mode == uiModeOff, quiet:
		return false
	default:
		return isTerminal(os.Stdout) && isTerminal(os.Stderr)
	}
}

var (
	tokenFormats = []string{"pretty", "json", "msgpack", "source"}
	checkFormats = []string{"pretty", "short", "json", "sarif"}
)

func readFormat(value string, allowed []string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(value))
	if !slices.Contains(allowed, format) {
		return "", fmt.Errorf("unknown format %q (expected %s)", value, strings.Join(allowed, "|"))
	}
	return format, nil
}
