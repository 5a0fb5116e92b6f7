// internal/capture/remote.go
package capture

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	urlutil "github.com/mynameistito/screenshotgun-app-v2/internal/utils/url"
	"github.com/mynameistito/screenshotgun-app-v2/pkg/models"
)

// DefaultEndpoint is the hosted capture service's take endpoint
const DefaultEndpoint = "https://api.screenshotone.com/take"

// Hints attached to the well-known rejection statuses. The raw status
// line and body are kept too; the hint just names the usual culprit.
const (
	HintBadRequest   = "check the capture parameters; the access key or a parameter value may be malformed"
	HintUnauthorized = "the access key is invalid or has expired; store a fresh one with the key command"
	HintForbidden    = "the access key does not allow this capture; its quota may be exhausted or the plan may not include this feature"
)

// RemoteEngine captures through the hosted rendering service with a single
// GET per capture. Failed requests are never retried, and the client
// carries no deadline of its own: the timeout option budgets the page
// load on the service side, which answers when rendering finishes.
type RemoteEngine struct {
	endpoint  string
	accessKey string
	client    *http.Client
}

// NewRemoteEngine creates a remote engine against the given endpoint.
// An empty endpoint selects the hosted service.
func NewRemoteEngine(endpoint, accessKey string) *RemoteEngine {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	return &RemoteEngine{
		endpoint:  endpoint,
		accessKey: accessKey,
		client:    client,
	}
}

// Name returns the name of this engine
func (r *RemoteEngine) Name() string {
	return "RemoteEngine"
}

// Capture requests one rendered artifact from the capture service
func (r *RemoteEngine) Capture(ctx context.Context, target string, opts models.CaptureOptions) (*models.Artifact, error) {
	start := time.Now()

	if strings.TrimSpace(r.accessKey) == "" {
		return nil, NewError(KindValidation, "no access key configured; store one with the key command or pass --access-key", ErrMissingAccessKey)
	}

	target = urlutil.NormalizeTarget(target)
	if err := urlutil.ValidateURL(target); err != nil {
		return nil, NewError(KindValidation, "invalid target URL", err)
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	if len(opts.Headers) > 0 {
		log.Debug().
			Int("headers", len(opts.Headers)).
			Msg("Custom headers ignored by the capture service, use the local engine")
	}

	requestURL := RequestURL(r.endpoint, target, r.accessKey, opts)

	log.Debug().
		Str("engine", r.Name()).
		Str("target", target).
		Str("format", string(opts.Format)).
		Bool("full_page", opts.FullPage).
		Msg("Requesting capture")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, NewError(KindValidation, "failed to build capture request", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, NewError(KindRemote, "capture request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, r.statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewError(KindRemote, "failed to read capture payload", err)
	}

	responseTime := time.Since(start).Milliseconds()

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Int64("response_time_ms", responseTime).
		Msg("Capture completed")

	return &models.Artifact{
		Data:         data,
		ContentType:  resp.Header.Get("Content-Type"),
		Format:       opts.Format,
		Target:       target,
		CapturedAt:   time.Now(),
		ResponseTime: responseTime,
	}, nil
}

// statusError converts a non-2xx response into the user-facing message,
// attaching the known hint for the common rejection codes. The body is
// read best-effort; services put their diagnostic text there.
func (r *RemoteEngine) statusError(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(body))

	msg := fmt.Sprintf("capture service returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	if detail != "" {
		msg += ": " + detail
	}

	e := NewError(KindRemote, msg, nil).WithStatus(resp.StatusCode)
	switch resp.StatusCode {
	case http.StatusBadRequest:
		e.WithHint(HintBadRequest)
	case http.StatusUnauthorized:
		e.WithHint(HintUnauthorized)
	case http.StatusForbidden:
		e.WithHint(HintForbidden)
	}
	return e
}

// CloseIdleConnections releases pooled transport connections
func (r *RemoteEngine) CloseIdleConnections() {
	r.client.CloseIdleConnections()
}
