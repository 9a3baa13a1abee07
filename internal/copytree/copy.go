package copytree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrSourceMissing is returned when the source directory does not exist.
	ErrSourceMissing = errors.New("source does not exist")
	// ErrNotDir is returned when the source exists but is not a directory.
	ErrNotDir = errors.New("source is not a directory")
	// ErrDestinationExists is returned when the destination path is already taken.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrSymlinkLoop is returned when a followed symlink leads back to a
	// directory that is already being copied.
	ErrSymlinkLoop = errors.New("symlink loop")
)

// Options tune a copy.
type Options struct {
	// Exclude holds glob patterns matched against entry base names.
	// Matching files and directories are skipped.
	Exclude []string
	// OnEntry, if set, is called with the destination path of every
	// directory and file after it has been created.
	OnEntry func(path string, isDir bool)
}

// Stats counts what a copy produced.
type Stats struct {
	Dirs  int
	Files int
	Bytes int64
}

// Copy recursively copies the directory src to dst. dst must not exist; its
// missing parents are created. Symlinks are followed and their targets
// copied, unless they point at a directory being copied. A failed copy is
// not rolled back.
func Copy(fsys afero.Fs, src, dst string, opts Options) (*Stats, error) {
	for _, pattern := range opts.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	srcInfo, err := fsys.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, src)
		}
		return nil, fmt.Errorf("inspecting source %s: %w", src, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, src)
	}

	if _, err := lstat(fsys, dst); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("inspecting destination %s: %w", dst, err)
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, fmt.Errorf("creating parent of %s: %w", dst, err)
	}

	c := &copier{fs: fsys, opts: opts, stats: &Stats{}}
	if err := c.copyDir(src, dst, srcInfo); err != nil {
		return c.stats, err
	}
	return c.stats, nil
}

type copier struct {
	fs    afero.Fs
	opts  Options
	stats *Stats
	// ancestors holds the source directories on the current path.
	ancestors []fs.FileInfo
}

func (c *copier) copyDir(src, dst string, dirInfo fs.FileInfo) error {
	// Mkdir, not MkdirAll: the destination must be created by us. The owner
	// keeps write access until the contents are in; the source mode is
	// applied last.
	if err := c.fs.Mkdir(dst, dirInfo.Mode().Perm()|0700); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}
	c.stats.Dirs++
	c.notify(dst, true)

	c.ancestors = append(c.ancestors, dirInfo)
	defer func() { c.ancestors = c.ancestors[:len(c.ancestors)-1] }()

	entries, err := afero.ReadDir(c.fs, src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}

	for _, entry := range entries {
		if c.excluded(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			info, err = c.fs.Stat(srcPath)
			if err != nil {
				return fmt.Errorf("following symlink %s: %w", srcPath, err)
			}
			if info.IsDir() && c.isAncestor(info) {
				return fmt.Errorf("%w: %s", ErrSymlinkLoop, srcPath)
			}
		}

		switch {
		case info.IsDir():
			if err := c.copyDir(srcPath, dstPath, info); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := c.copyFile(srcPath, dstPath, info.Mode()); err != nil {
				return err
			}
		}
		// Devices, sockets and pipes have no place in a project template.
	}

	if perm := dirInfo.Mode().Perm(); perm&0700 != 0700 {
		if err := c.fs.Chmod(dst, perm); err != nil {
			return fmt.Errorf("setting mode of %s: %w", dst, err)
		}
	}
	return nil
}

// isAncestor reports whether dir is one of the directories being copied.
// Only filesystems backed by the OS can tell; others never loop.
func (c *copier) isAncestor(dir fs.FileInfo) bool {
	for _, a := range c.ancestors {
		if os.SameFile(a, dir) {
			return true
		}
	}
	return false
}

// copyFile copies a single file from src to dst, preserving permissions.
func (c *copier) copyFile(src, dst string, mode fs.FileMode) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := c.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	c.stats.Files++
	c.stats.Bytes += n
	c.notify(dst, false)
	return nil
}

func (c *copier) excluded(name string) bool {
	for _, pattern := range c.opts.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (c *copier) notify(path string, isDir bool) {
	if c.opts.OnEntry != nil {
		c.opts.OnEntry(path, isDir)
	}
}

// lstat uses Lstat where the filesystem supports it so that a dangling
// symlink at the destination still counts as taken.
func lstat(fsys afero.Fs, path string) (fs.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}
