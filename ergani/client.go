package ergani

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	"github.com/iancoleman/orderedmap"
	log "github.com/sirupsen/logrus"

	"github.com/apodiktos/go-ergani-client/ergani/api"
	"github.com/apodiktos/go-ergani-client/ergani/auth"
	"github.com/apodiktos/go-ergani-client/ergani/model"
)

var logger = log.WithField("component", "ergani")

const submitDateLayout = "02/01/2006 15:04"

// Client talks to the Ergani document submission API. It holds only
// immutable configuration, so a single Client is safe for concurrent use.
type Client struct {
	raw    *api.Client
	tokens auth.TokenSource
}

type options struct {
	baseURL    string
	httpClient *http.Client
	cacheTTL   time.Duration
}

type Option func(*options)

func WithEnvironment(env Environment) Option {
	return func(o *options) { o.baseURL = env.BaseURL() }
}

// WithBaseURL overrides the endpoint entirely, for tests or self-hosted
// proxies.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient lets the caller supply a transport with its own timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) { o.httpClient = httpClient }
}

// WithTokenCache reuses access tokens for ttl instead of authenticating
// before every submission. Off by default: without it each call performs
// its own authentication round-trip.
func WithTokenCache(ttl time.Duration) Option {
	return func(o *options) { o.cacheTTL = ttl }
}

func New(username, password string, opts ...Option) *Client {
	o := options{baseURL: Trial.BaseURL()}
	for _, opt := range opts {
		opt(&o)
	}

	var raw *api.Client
	if o.httpClient != nil {
		raw = api.NewWithHTTPClient(o.baseURL, o.httpClient)
	} else {
		raw = api.New(o.baseURL)
	}

	authenticator := auth.New(raw, username, password)

	var tokens auth.TokenSource = authenticator
	if o.cacheTTL > 0 {
		tokens = auth.NewCachingTokenSource(authenticator, o.cacheTTL)
	}

	return &Client{raw: raw, tokens: tokens}
}

// SubmitWorkCard submits work card events (check-in, check-out) for
// employees.
func (c *Client) SubmitWorkCard(ctx context.Context, cards []model.CompanyWorkCard) ([]model.SubmissionResult, error) {
	logger.Debugf("submitting %d work card batches", len(cards))

	entries, err := serializeAll(cards)
	if err != nil {
		return nil, err
	}

	resp, err := c.submit(ctx, "/Documents/WRKCardSE", wrapPayload("Cards", "Card", entries))
	if err != nil {
		return nil, err
	}

	return extractSubmissionResults(resp)
}

// SubmitOvertime submits overtime declarations for employees.
func (c *Client) SubmitOvertime(ctx context.Context, overtimes []model.CompanyOvertime) ([]model.SubmissionResult, error) {
	logger.Debugf("submitting %d overtime batches", len(overtimes))

	entries, err := serializeAll(overtimes)
	if err != nil {
		return nil, err
	}

	resp, err := c.submit(ctx, "/Documents/OvTime", wrapPayload("Overtimes", "Overtime", entries))
	if err != nil {
		return nil, err
	}

	return extractSubmissionResults(resp)
}

// SubmitDailySchedule submits schedules that are declared day by day.
func (c *Client) SubmitDailySchedule(ctx context.Context, schedules []model.CompanyDailySchedule) ([]model.SubmissionResult, error) {
	logger.Debugf("submitting %d daily schedule batches", len(schedules))

	entries, err := serializeAll(schedules)
	if err != nil {
		return nil, err
	}

	resp, err := c.submit(ctx, "/Documents/WTODaily", wrapPayload("WTOS", "WTO", entries))
	if err != nil {
		return nil, err
	}

	return extractSubmissionResults(resp)
}

// SubmitWeeklySchedule submits recurring weekly schedules.
func (c *Client) SubmitWeeklySchedule(ctx context.Context, schedules []model.CompanyWeeklySchedule) ([]model.SubmissionResult, error) {
	logger.Debugf("submitting %d weekly schedule batches", len(schedules))

	entries, err := serializeAll(schedules)
	if err != nil {
		return nil, err
	}

	resp, err := c.submit(ctx, "/Documents/WTOWeek", wrapPayload("WTOS", "WTO", entries))
	if err != nil {
		return nil, err
	}

	return extractSubmissionResults(resp)
}

// submit is the shared plumbing: obtain a token, POST the payload, classify
// the response. A nil response with a nil error means 204 No Content.
func (c *Client) submit(ctx context.Context, endpoint string, payload interface{}) (*resty.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.raw.PostJSON(ctx, endpoint, token, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", endpoint)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return nil, &api.AuthenticationError{
			Message:    api.ExtractErrorMessage(resp),
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	case resp.StatusCode() == http.StatusNoContent:
		return nil, nil
	case resp.IsError():
		return nil, &api.APIError{
			Message:    api.ExtractErrorMessage(resp),
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
			Payload:    payload,
		}
	}

	return resp, nil
}

type serializable interface {
	Serialize() (*orderedmap.OrderedMap, error)
}

func serializeAll[T serializable](items []T) ([]*orderedmap.OrderedMap, error) {
	entries := make([]*orderedmap.OrderedMap, 0, len(items))
	for _, item := range items {
		m, err := item.Serialize()
		if err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}
	return entries, nil
}

func wrapPayload(outer, inner string, entries []*orderedmap.OrderedMap) *orderedmap.OrderedMap {
	list := orderedmap.New()
	list.Set(inner, entries)

	payload := orderedmap.New()
	payload.Set(outer, list)
	return payload
}

// extractSubmissionResults parses the JSON array a successful submission
// returns. A nil response (204) yields an empty slice.
func extractSubmissionResults(resp *resty.Response) ([]model.SubmissionResult, error) {
	if resp == nil {
		return []model.SubmissionResult{}, nil
	}

	var raw []struct {
		ID         string `json:"id"`
		Protocol   string `json:"protocol"`
		SubmitDate string `json:"submitDate"`
	}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, errors.Wrap(err, "decode submission response")
	}

	results := make([]model.SubmissionResult, 0, len(raw))
	for _, submission := range raw {
		submitted, err := time.Parse(submitDateLayout, submission.SubmitDate)
		if err != nil {
			return nil, errors.Wrapf(err, "parse submitDate %q", submission.SubmitDate)
		}

		results = append(results, model.SubmissionResult{
			SubmissionID:   submission.ID,
			Protocol:       submission.Protocol,
			SubmissionDate: submitted,
		})
	}

	return results, nil
}
