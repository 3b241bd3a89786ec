package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	perrors "github.com/promptlib/cli/internal/errors"
	"github.com/promptlib/cli/internal/output"
	"github.com/promptlib/cli/internal/templates"
)

// runView writes the template at path verbatim. A file that cannot be read
// is reported and the command still succeeds.
func runView(out io.Writer, path string) error {
	res := templates.ReadTemplate(path)
	if !res.OK() {
		keyvals := detailKeyvals(res.Err)
		if errors.Is(res.Err, perrors.ErrNotFound) {
			keyvals = append(keyvals, "hint", "run promptlib -l to list templates")
		}
		output.Error("cannot read template file", keyvals...)
		return nil
	}

	if _, err := out.Write(res.Content); err != nil {
		return NewExitError(perrors.Wrap(err, "writing template"), ExitGeneralError)
	}

	// Keep the shell prompt off the last line on a terminal; piped output
	// stays byte-exact.
	if output.IsTTY(out) && len(res.Content) > 0 && !bytes.HasSuffix(res.Content, []byte("\n")) {
		if _, err := fmt.Fprintln(out); err != nil {
			return NewExitError(perrors.Wrap(err, "writing template"), ExitGeneralError)
		}
	}
	return nil
}
