// Package github provides a single-shot GitHub REST client for workflow_dispatch
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "patchgate/internal/platform/errors"
	"patchgate/internal/platform/logger"
	pstrings "patchgate/internal/platform/strings"
)

const (
	baseURLDefault = "https://api.github.com"
	defaultTimeout = 15 * time.Second
	defaultUA      = "patchgate-api"
	apiVersion     = "2022-11-28"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Token is the bearer credential, it never leaves this struct except as a header
	Token string
}

// Client posts workflow dispatches, one attempt per call
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	token string
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	tok := o.Token
	o.Token = ""
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("github"),
		now:   time.Now,
		token: tok,
	}
}

// HasToken reports whether a credential was configured
func (c *Client) HasToken() bool { return c.token != "" }

// DispatchWorkflow triggers workflow on ref with inputs
// a 2xx is success; any other status returns an UpstreamRejected error carrying a StatusError
// and the bounded remote body as detail; transport failures return UpstreamTransport
func (c *Client) DispatchWorkflow(ctx context.Context, d Dispatch) error {
	if c.token == "" {
		return perr.Configf("dispatch credential is not configured")
	}
	path := dispatchPath(d.Owner, d.Repo, d.Workflow)

	body, err := json.Marshal(dispatchBody{Ref: d.Ref, Inputs: d.Inputs})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "encode dispatch body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeConfiguration, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		timeout := isTimeout(err)
		c.log.Warn().
			Str("owner", d.Owner).
			Str("repo", d.Repo).
			Str("workflow", d.Workflow).
			Dur("latency", lat).
			Bool("timeout", timeout).
			Err(err).
			Msg("github dispatch transport error")
		if timeout {
			return perr.Wrap(err, perr.ErrorCodeUpstreamTransport, "timeout")
		}
		return perr.Wrap(err, perr.ErrorCodeUpstreamTransport, "workflow dispatch failed")
	}

	rem, reset, retryAfter := parseRateHeaders(resp.Header)
	c.log.Info().
		Str("owner", d.Owner).
		Str("repo", d.Repo).
		Str("workflow", d.Workflow).
		Str("ref", d.Ref).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rem).
		Time("rate_reset", reset).
		Int("retry_after_s", retryAfter).
		Msg("github dispatch response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_ = drainAndClose(resp.Body)
		return nil
	}

	text := readBounded(resp.Body)
	c.log.Warn().
		Str("workflow", d.Workflow).
		Int("status", resp.StatusCode).
		Str("body", pstrings.Truncate(text, 256)).
		Msg("github dispatch rejected")
	se := &StatusError{Status: resp.StatusCode, Body: text}
	return perr.WithDetail(
		perr.Wrap(se, perr.ErrorCodeUpstreamRejected, "workflow dispatch rejected"),
		text,
	)
}

// dispatchPath builds the REST path, the workflow id may be a file name so it is escaped
func dispatchPath(owner, repo, workflow string) string {
	return fmt.Sprintf("/repos/%s/%s/actions/workflows/%s/dispatches",
		url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(workflow))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
