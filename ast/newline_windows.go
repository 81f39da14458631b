//go:build windows

package ast

// Newline is the line terminator recognized by this build.
const Newline = "\r\n"
