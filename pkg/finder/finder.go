// Package finder expands the file arguments of the vuelex command.
package finder

import (
	"context"
	iofs "io/fs"
	"path"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtensions are matched when a directory is given.
var DefaultExtensions = []string{".vue"}

// Finder resolves files, directories and doublestar globs against a filesystem.
type Finder struct {
	fs         afero.Fs
	extensions []string
}

// NewFinder returns a Finder over fs. With no extensions, DefaultExtensions
// are used.
func NewFinder(fs afero.Fs, extensions ...string) *Finder {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Finder{fs: fs, extensions: extensions}
}

// Find resolves every argument and returns the sorted, deduplicated paths.
// A regular file is returned as given, a directory is searched recursively
// for files with one of the extensions, anything else is a glob. A glob that
// matches nothing is an error.
func (f *Finder) Find(ctx context.Context, args []string) ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("finding files: %w", err)
		}

		info, err := f.fs.Stat(arg)
		switch {
		case err == nil && !info.IsDir():
			add(arg)
			continue
		case err == nil:
			for _, ext := range f.extensions {
				matches, err := f.glob(ctx, path.Join(filepath.ToSlash(arg), "**", "*"+ext))
				if err != nil {
					return nil, err
				}
				for _, m := range matches {
					add(m)
				}
			}
			continue
		}

		matches, err := f.glob(ctx, filepath.ToSlash(arg))
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no files match %q", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}

	slices.Sort(out)
	return out, nil
}

func (f *Finder) glob(ctx context.Context, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid pattern %q", pattern)
	}

	base, rest := doublestar.SplitPattern(pattern)
	fsys := f.fs
	if base != "." {
		fsys = afero.NewBasePathFs(f.fs, base)
	}

	var matches []string
	err := doublestar.GlobWalk(afero.NewIOFS(fsys), rest, func(p string, d iofs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if base != "." {
			p = path.Join(base, p)
		}
		matches = append(matches, p)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("matching %q: %w", pattern, err)
	}
	return matches, nil
}
