package cardart

import (
	"os"
	"strings"
)

const (
	defaultCellW = 8
	defaultCellH = 16

	// ProtocolEnv overrides protocol detection: "kitty", "sixel" or "none".
	ProtocolEnv = "CAROUSEL_IMAGE_PROTOCOL"
)

// Detect returns the best available ImageProtocol for the current terminal,
// or nil if cards should be drawn as text. preferred comes from config and is
// overridden by ProtocolEnv; "auto" or "" means detect.
func Detect(preferred string) ImageProtocol {
	choice := preferred
	if env := os.Getenv(ProtocolEnv); env != "" {
		choice = env
	}

	switch strings.ToLower(choice) {
	case "kitty":
		return NewKittyProtocol()
	case "sixel":
		return NewSixelProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return NewKittyProtocol()
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but doesn't support Kitty protocol, and
	// parent terminal variables can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; Kitty graphics since 22.04
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	return term == "foot" || term == "foot-extra"
}
