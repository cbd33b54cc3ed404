package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"
)

// ErrPathIsDirectory is returned when the path of an input points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Relativizer is implemented by inputs that can resolve names relative to themselves.
type Relativizer interface {
	Relative(name string) (provider.Input, bool)
}

// File is an input read from the filesystem. The file is opened on every Open call.
type File struct {
	filepath string
}

// NewFile creates a file input for fpath.
func NewFile(fpath string) *File {
	return &File{filepath: filepath.Clean(fpath)}
}

// Open stats and opens the file.
func (f *File) Open() (io.ReadCloser, error) {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	file, err := os.Open(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", f.filepath, err)
	}

	return file, nil
}

// Origin returns the file path as origin.
func (f *File) Origin() provider.Origin {
	return provider.Origin{Description: "", Filename: f.filepath, Line: 0}
}

// Extension returns the file extension.
func (f *File) Extension() string {
	return format.NormalizeExtension(filepath.Ext(f.filepath))
}

// MimeType returns "", files are matched by extension.
func (f *File) MimeType() string {
	return ""
}

// Path returns the cleaned file path.
func (f *File) Path() string {
	return f.filepath
}

// Relative resolves name against the directory of the file. Absolute names are used as is.
func (f *File) Relative(name string) (provider.Input, bool) {
	if name == "" {
		return nil, false
	}

	if filepath.IsAbs(name) {
		return NewFile(name), true
	}

	return NewFile(filepath.Join(filepath.Dir(f.filepath), name)), true
}

// FS is an input read from a fs.FS, such as an embed.FS.
type FS struct {
	fsys fs.FS
	name string
}

// NewFS creates an input for name inside fsys.
func NewFS(fsys fs.FS, name string) *FS {
	return &FS{fsys: fsys, name: path.Clean(name)}
}

// Open opens the file inside the filesystem.
func (f *FS) Open() (io.ReadCloser, error) {
	file, err := f.fsys.Open(f.name)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", f.name, err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("stat %q: %w", f.name, err)
	}

	if stat.IsDir() {
		_ = file.Close()

		return nil, fmt.Errorf("path %q: %w", f.name, ErrPathIsDirectory)
	}

	return file, nil
}

// Origin returns the name inside the filesystem as origin.
func (f *FS) Origin() provider.Origin {
	return provider.Origin{Description: "", Filename: f.name, Line: 0}
}

// Extension returns the file extension.
func (f *FS) Extension() string {
	return format.NormalizeExtension(path.Ext(f.name))
}

// MimeType returns "", files are matched by extension.
func (f *FS) MimeType() string {
	return ""
}

// Relative resolves name against the directory of the file within the same filesystem.
func (f *FS) Relative(name string) (provider.Input, bool) {
	if name == "" || path.IsAbs(name) {
		return nil, false
	}

	return NewFS(f.fsys, path.Join(path.Dir(f.name), name)), true
}
