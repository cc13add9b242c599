// Package app holds runtime options for the CLI and the objects built from
// them: a structured logger and the value formatter shared by commands.
package app
