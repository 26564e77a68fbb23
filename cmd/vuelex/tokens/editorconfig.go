package tokens

import (
	"github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

var _ editorconfig.Parser = (*fsParser)(nil)

// fsParser reads .editorconfig files from an afero filesystem, so the tab
// width comes from the same filesystem as the sources.
type fsParser struct {
	fs afero.Fs
}

func (me *fsParser) ParseIni(filename string) (*editorconfig.Editorconfig, error) {
	ec, warning, err := me.ParseIniGraceful(filename)
	if err != nil {
		return nil, err
	}
	return ec, warning
}

func (me *fsParser) ParseIniGraceful(filename string) (*editorconfig.Editorconfig, error, error) {
	f, err := me.fs.Open(filename)
	if err != nil {
		// the walk up the tree skips directories without one by checking
		// for os.ErrNotExist, so this is returned as is
		return nil, nil, err
	}
	defer f.Close()

	ec, warning, err := editorconfig.ParseGraceful(f)
	if err != nil {
		return nil, nil, errors.Errorf("parsing %s: %w", filename, err)
	}
	return ec, warning, nil
}

func (me *fsParser) FnmatchCase(pattern, name string) (bool, error) {
	return editorconfig.FnmatchCase(pattern, name)
}

// loadEditorconfig returns the merged .editorconfig definition for path,
// walking up from its directory until a file with root = true. Relative
// paths are made absolute against the working directory first.
func loadEditorconfig(fs afero.Fs, path string) (*editorconfig.Definition, error, error) {
	cfg := &editorconfig.Config{
		Name:   editorconfig.ConfigNameDefault,
		Parser: &fsParser{fs: fs},
	}
	return cfg.LoadGraceful(path)
}
