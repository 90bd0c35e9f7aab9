// Package osutil holds operating system constants
package osutil

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)
