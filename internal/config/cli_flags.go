package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().String("access-key", "", "Capture service access key (overrides the stored one)")
	cmd.PersistentFlags().String("endpoint", "", "Capture service endpoint")
	cmd.PersistentFlags().String("proxy", "", "HTTP/SOCKS5 proxy for the local engine (e.g., http://localhost:8080)")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent for the local engine")
	cmd.PersistentFlags().String("chrome-path", "", "Path to the Chrome or Chromium binary")
	cmd.PersistentFlags().StringP("output", "o", "", "Directory where captures are written")
}
