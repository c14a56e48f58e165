// Package ui provides shared UI constants and utilities.
package ui

// Layout constants of a host screen.
const (
	// TitleHeight is the title row above the carousel.
	TitleHeight = 1

	// FooterHeight is the status or help row below the carousel.
	FooterHeight = 1

	// MinWidth is the narrowest terminal the title row is laid out for.
	MinWidth = 20
)
