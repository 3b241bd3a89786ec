package templates

import (
	"os"
	"unicode/utf8"

	perrors "github.com/promptlib/cli/internal/errors"
)

// ReadResult is the outcome of reading one template file: either its
// content or the reason it could not be read.
type ReadResult struct {
	Path    string
	Content []byte
	Err     error
}

// OK reports whether the read succeeded.
func (r ReadResult) OK() bool {
	return r.Err == nil
}

// Text returns the content as a string.
func (r ReadResult) Text() string {
	return string(r.Content)
}

// ReadTemplate reads the file at path as UTF-8 text. Failures are returned
// in the result, classified by internal/errors, and never panic.
func ReadTemplate(path string) ReadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadResult{Path: path, Err: perrors.Classify(err, path)}
	}
	if !utf8.Valid(data) {
		return ReadResult{Path: path, Err: perrors.NewNotTextError(path)}
	}
	return ReadResult{Path: path, Content: data}
}
