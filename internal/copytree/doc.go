// Package copytree copies a directory tree to a new location. The
// destination must not exist; an existing directory is never merged into or
// overwritten. Copies go through an afero.Fs so callers can run against the
// real disk or an in-memory filesystem.
package copytree
