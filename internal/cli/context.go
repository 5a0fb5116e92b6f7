// Package cli provides the command-line interface for the screenshotgun application.
package cli

import (
	"context"

	"github.com/mynameistito/screenshotgun-app-v2/internal/app"
	"github.com/spf13/cobra"
)

// ctxKey is used for storing app context in cobra commands
type ctxKey string

const appKey ctxKey = "app"

// SetApp stores the Application in the command's context. Passing nil
// clears a previously stored value.
func SetApp(cmd *cobra.Command, a *app.Application) {
	if cmd == nil {
		return
	}
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	cmd.SetContext(context.WithValue(base, appKey, a))
}

// GetAppFromCmd retrieves the Application from the command's context,
// walking up the parent chain so subcommands see the value stored on root.
func GetAppFromCmd(cmd *cobra.Command) *app.Application {
	for c := cmd; c != nil; c = c.Parent() {
		ctx := c.Context()
		if ctx == nil {
			continue
		}
		if a, ok := ctx.Value(appKey).(*app.Application); ok && a != nil {
			return a
		}
	}
	return nil
}
