package cmd

import (
	"fmt"
	"io"

	"github.com/promptlib/cli/internal/version"
)

const usageText = `
Prompt template search tool

Usage:
  promptlib [option] [keyword]

Options:
  -l, --list               List all templates
  -s, --search <keyword>   Search templates by keyword
  -v, --view <path>        Show the content of a template
  -h, --help               Show this help

Any other argument is searched for as a keyword. Matching is
case-insensitive against category, template name and content.

Examples:
  promptlib -l                              # list all templates
  promptlib -s writing                      # search writing templates
  promptlib -s "code review"                # search code review templates
  promptlib -v templates/writing/essay.md   # show a template

Environment:
  PROMPTLIB_TEMPLATES_DIR   template root directory (default "templates")
  PROMPTLIB_CONFIG          config file (default ~/.promptlib/config.yaml)
  PROMPTLIB_VERBOSE         enable debug logging
  PROMPTLIB_TIMESTAMPS      show timestamps in log output
`

func writeUsage(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", usageText, version.Get())
	return err
}
