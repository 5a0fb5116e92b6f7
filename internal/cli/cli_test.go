package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mynameistito/screenshotgun-app-v2/internal/app"
)

func TestSetApp_VisibleFromSubcommand(t *testing.T) {
	parent := &cobra.Command{Use: "parent"}
	child := &cobra.Command{Use: "child"}
	parent.AddCommand(child)

	a := &app.Application{}
	SetApp(parent, a)

	if got := GetAppFromCmd(child); got != a {
		t.Fatalf("GetAppFromCmd(child) = %p, want %p", got, a)
	}
}

func TestSetApp_NilClears(t *testing.T) {
	cmd := &cobra.Command{Use: "solo"}
	SetApp(cmd, &app.Application{})
	SetApp(cmd, nil)

	if got := GetAppFromCmd(cmd); got != nil {
		t.Fatalf("GetAppFromCmd after clearing = %p, want nil", got)
	}
}

func TestGetAppFromCmd_NoApp(t *testing.T) {
	cmd := &cobra.Command{Use: "bare"}
	if got := GetAppFromCmd(cmd); got != nil {
		t.Fatalf("GetAppFromCmd on fresh command = %p, want nil", got)
	}
}

func TestMaskKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"sk_live_abc123", "sk_l******c123"},
		{"123456789", "1234*6789"},
		{"12345678", "********"},
		{"short", "*****"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := maskKey(tc.key); got != tc.want {
			t.Errorf("maskKey(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tc := range cases {
		if got := formatBytes(tc.bytes); got != tc.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	text := "The capture service splits very tall screenshots into numbered sections.\n- bullets stay intact\n- on their own lines"

	got := wrapText(text, 30)

	for _, line := range strings.Split(got, "\n") {
		if len(line) > 30 {
			t.Errorf("line longer than wrap width: %q", line)
		}
	}
	if !strings.Contains(got, "- bullets stay intact") {
		t.Errorf("bullet line was rewrapped:\n%s", got)
	}
	if !strings.Contains(got, "- on their own lines") {
		t.Errorf("second bullet line was rewrapped:\n%s", got)
	}
}
