package lint

import (
	"bytes"

	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// File holds a parsed stylesheet and its source.
type File struct {
	Path   string
	Source []byte
	Lines  [][]byte
	Root   *stylesheet.Root
}

// NewFile parses source as CSS and returns a File.
func NewFile(path string, source []byte) (*File, error) {
	root, err := stylesheet.Parse(source)
	if err != nil {
		return nil, err
	}

	lines := bytes.Split(source, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte("\r"))
	}

	return &File{
		Path:   path,
		Source: source,
		Lines:  lines,
		Root:   root,
	}, nil
}

// ContentLines returns Lines without the empty element bytes.Split leaves
// after a trailing newline.
func (f *File) ContentLines() [][]byte {
	n := len(f.Lines)
	if n > 0 && len(f.Lines[n-1]) == 0 && bytes.HasSuffix(f.Source, []byte("\n")) {
		return f.Lines[:n-1]
	}
	return f.Lines
}
