// Package platform hides the terminal differences between operating systems:
// detecting whether a stream is an interactive terminal and waiting for the
// user to acknowledge output before the console window closes.
package platform
