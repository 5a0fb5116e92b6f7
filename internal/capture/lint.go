package capture

import (
	"strings"

	"github.com/dop251/goja/parser"
)

// LintScript parses a custom scroll script and reports syntax errors.
// The script is forwarded to the capture service untouched either way;
// the parse only gives feedback before a capture is spent on it.
func LintScript(script string) error {
	if strings.TrimSpace(script) == "" {
		return nil
	}
	_, err := parser.ParseFile(nil, "scroll.js", script, 0)
	return err
}
