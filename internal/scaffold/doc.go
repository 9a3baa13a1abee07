// Package scaffold runs the interactive session that creates a new project:
// it asks for a category, a project name and a template kind, resolves the
// source and destination directories from the layout, and copies the
// template tree into place. Every way a session can end is reported as an
// Outcome so callers decide on exit codes without the session exiting the
// process itself.
package scaffold
