package config

import (
	"fmt"
	"strings"
)

// ColorMode selects when diagnostics are coloured.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota // colour when stdout is a terminal
	ColorOn
	ColorOff
)

func (m ColorMode) String() string {
	switch m {
	case ColorOn:
		return "on"
	case ColorOff:
		return "off"
	default:
		return "auto"
	}
}

// ParseColor accepts auto, on and off.
func ParseColor(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
	}
}

// Format is the encoding of evaluation results.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "text"
	}
}

// ParseFormat accepts text, json and msgpack.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	default:
		return FormatText, fmt.Errorf("invalid output format: %q (expected: text|json|msgpack)", s)
	}
}
