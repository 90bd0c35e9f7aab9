// Package ui holds the colour and table helpers shared by the commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants, which stay readable on a dark
// terminal background.
var DarkTheme bool

// colorPair is a foreground colour and its dark theme counterpart.
type colorPair struct {
	normal pterm.Color
	dark   pterm.Color
}

func (p colorPair) paint(a any) string {
	if DarkTheme {
		return p.dark.Sprint(a)
	}

	return p.normal.Sprint(a)
}

var (
	green = colorPair{pterm.FgGreen, pterm.FgLightGreen}
	cyan  = colorPair{pterm.FgCyan, pterm.FgLightCyan}
	blue  = colorPair{pterm.FgBlue, pterm.FgLightBlue}
	red   = colorPair{pterm.FgRed, pterm.FgLightRed}
)

// Green renders step counts and other values worth highlighting.
func Green(a any) string {
	return green.paint(a)
}

// Cyan renders goal state.
func Cyan(a any) string {
	return cyan.paint(a)
}

// Blue renders section headings.
func Blue(a any) string {
	return blue.paint(a)
}

// Red renders days still short of their goal.
func Red(a any) string {
	return red.paint(a)
}
