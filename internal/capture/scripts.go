package capture

import (
	"fmt"
	"strings"

	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// Scroll scripts run inside the page before the service takes the shot, so
// lazy-loaded content below the fold is already rendered. Each generated
// script is an awaitable IIFE that ends back at the top of the page.

const simpleScrollScript = `
(async () => {
	const delay = (ms) => new Promise((resolve) => setTimeout(resolve, ms));
	for (let y = 0; y < document.body.scrollHeight; y += window.innerHeight) {
		window.scrollTo(0, y);
		await delay(300);
	}
	window.scrollTo(0, 0);
	await delay(1000);
})();
`

const progressiveScrollTemplate = `
(async () => {
	const delay = (ms) => new Promise((resolve) => setTimeout(resolve, ms));
	const steps = %d;
	const marks = [Math.ceil(steps / 4), Math.ceil(steps / 2), Math.ceil(3 * steps / 4), steps];
	for (let i = 1; i <= steps; i++) {
		const target = (document.body.scrollHeight - window.innerHeight) * i / steps;
		window.scrollTo(0, Math.max(0, Math.round(target)));
		await delay(marks.includes(i) ? 1500 : 800);
	}
	window.scrollTo(0, 0);
	await delay(2000);
})();
`

// BuildScrollScript returns the in-page script for the selected strategy.
// It returns the empty string when pre-scrolling is disabled, when the
// strategy is unknown, or when a custom strategy carries no script text.
// Custom scripts are passed through verbatim; generated ones have their
// whitespace collapsed to keep the query string compact.
func BuildScrollScript(opts models.CaptureOptions) string {
	if !opts.Scroll {
		return ""
	}
	switch opts.ScrollStrategy {
	case models.ScrollSimple:
		return collapseWhitespace(simpleScrollScript)
	case models.ScrollProgressive:
		return collapseWhitespace(fmt.Sprintf(progressiveScrollTemplate, normalizeSteps(opts.ScrollSteps)))
	case models.ScrollCustom:
		return opts.Script
	default:
		return ""
	}
}

func normalizeSteps(steps int) int {
	if steps <= 0 {
		return models.DefaultScrollSteps
	}
	if steps < models.MinScrollSteps {
		return models.MinScrollSteps
	}
	if steps > models.MaxScrollSteps {
		return models.MaxScrollSteps
	}
	return steps
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
