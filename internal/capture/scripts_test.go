package capture

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

func TestBuildScrollScript_Progressive(t *testing.T) {
	opts := models.DefaultCaptureOptions()
	opts.Scroll = true
	opts.ScrollStrategy = models.ScrollProgressive
	opts.ScrollSteps = 20

	script := BuildScrollScript(opts)
	if script == "" {
		t.Fatal("expected a progressive scroll script")
	}
	if !strings.Contains(script, "steps = 20") {
		t.Errorf("step count not baked into script: %q", script)
	}
	for _, pause := range []string{"1500", "800", "2000"} {
		if !strings.Contains(script, pause) {
			t.Errorf("script missing the %sms pause: %q", pause, script)
		}
	}
	if strings.Contains(script, "\n") {
		t.Error("generated script should be a single line")
	}
}

func TestBuildScrollScript_StepBounds(t *testing.T) {
	cases := map[int]int{
		0:   models.DefaultScrollSteps,
		3:   models.MinScrollSteps,
		100: models.MaxScrollSteps,
		25:  25,
	}
	for input, expected := range cases {
		opts := models.DefaultCaptureOptions()
		opts.Scroll = true
		opts.ScrollStrategy = models.ScrollProgressive
		opts.ScrollSteps = input

		script := BuildScrollScript(opts)
		if !strings.Contains(script, fmt.Sprintf("steps = %d", expected)) {
			t.Errorf("steps %d should normalize to %d", input, expected)
		}
	}
}

func TestBuildScrollScript_CustomEmptyOmitted(t *testing.T) {
	opts := models.DefaultCaptureOptions()
	opts.Scroll = true
	opts.ScrollStrategy = models.ScrollCustom
	opts.Script = ""

	if got := BuildScrollScript(opts); got != "" {
		t.Errorf("custom strategy with no script should produce nothing, got %q", got)
	}
}

func TestLintScript(t *testing.T) {
	if err := LintScript("window.scrollTo(0, 100);"); err != nil {
		t.Errorf("valid script flagged: %v", err)
	}
	if err := LintScript(""); err != nil {
		t.Errorf("empty script flagged: %v", err)
	}
	if err := LintScript("function ("); err == nil {
		t.Error("broken script not flagged")
	}
}
