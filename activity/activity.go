// Package activity is a client for the remote activity API that holds the
// authoritative daily goal and quantity, and serves the step leaderboard
package activity

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stepsquad/stepsquad/internal/models"
)

const (
	activityPath    = "activity"
	leaderboardPath = "leaderboard"
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 512
)

// Options configures a Client.
type Options struct {
	HTTPClient   *http.Client
	Logger       *slog.Logger
	BaseURL      string
	Token        string
	ActivityType models.ActivityType
	Timeout      time.Duration
}

// Client talks to the activity endpoints of the REST backend.
type Client struct {
	http         *http.Client
	log          *slog.Logger
	baseURL      *url.URL
	token        string
	activityType models.ActivityType
}

// New returns a Client for the API rooted at opts.BaseURL.
func New(opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(opts.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errInvalidBaseURL.Fmt(opts.BaseURL)
	}

	// keep the base path when resolving relative endpoints
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	if opts.ActivityType == "" {
		opts.ActivityType = models.ActivitySteps
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Client{
		http:         httpClient,
		log:          opts.Logger.With(slog.String("component", "activity")),
		baseURL:      u,
		token:        opts.Token,
		activityType: opts.ActivityType,
	}, nil
}

// Today fetches today's activity record.
func (c *Client) Today(ctx context.Context) (*models.Activity, error) {
	query := url.Values{}
	query.Set("type", string(c.activityType))

	var a models.Activity

	err := c.do(ctx, http.MethodGet, activityPath, query, nil, &a)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// Update sets the quantity of an activity record and returns the updated
// record.
func (c *Client) Update(
	ctx context.Context,
	req models.ActivityUpdate,
) (*models.Activity, error) {
	var a models.Activity

	err := c.do(ctx, http.MethodPatch, activityPath, nil, req, &a)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// Leaderboard fetches the users ranked by total steps over period.
func (c *Client) Leaderboard(
	ctx context.Context,
	period models.LeaderboardPeriod,
) ([]models.LeaderboardEntry, error) {
	switch period {
	case models.LeaderboardDaily, models.LeaderboardWeekly, models.LeaderboardMonthly:
	default:
		return nil, errUnknownPeriod.Fmt(period)
	}

	query := url.Values{}
	query.Set("period", string(period))

	var entries []models.LeaderboardEntry

	err := c.do(ctx, http.MethodGet, leaderboardPath, query, nil, &entries)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b models.LeaderboardEntry) int {
		return cmp.Compare(a.Position, b.Position)
	})

	return entries, nil
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{
		Path:     path,
		RawQuery: query.Encode(),
	})

	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()

	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log := c.log.With(
		slog.String("method", method),
		slog.String("request_id", requestID),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return errRequest.Wrap(err)
	}

	defer resp.Body.Close()

	log.DebugContext(ctx, "activity api response", slog.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errUnexpectedStatus.Fmt(
			resp.StatusCode,
			strings.TrimSpace(string(msg)),
		)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errDecode.Wrap(err)
	}

	return nil
}
