package main

// Tool selects how canvas clicks are interpreted: Select drives the
// selection and drag gestures, Stamp places the armed palette entry.
type Tool int

//go:generate stringer -type=Tool -trimprefix=Tool

const (
	ToolSelect Tool = iota
	ToolStamp
)
