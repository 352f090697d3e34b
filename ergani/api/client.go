package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/apodiktos/go-ergani-client/ergani/util"
)

var logger = log.WithField("component", "ergani.api")

// Client is the low-level REST transport for the Ergani web services API.
// It carries no credentials; callers pass the bearer token per request.
type Client struct {
	rest    *resty.Client
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{rest: resty.New(), baseURL: baseURL}
}

// NewWithHTTPClient lets the caller control the transport, for example to
// set a request timeout.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{rest: resty.NewWithClient(httpClient), baseURL: baseURL}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// PostJSON issues an authenticated POST with the bearer token attached as
// the Authorization header.
func (c *Client) PostJSON(ctx context.Context, endpoint, token string, body interface{}) (*resty.Response, error) {
	r := c.rest.R().SetContext(ctx)
	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(body).
		Post(c.baseURL + endpoint)

	printTraceInfo(endpoint, err, resp)
	return resp, err
}

// PostJSONNoAuth issues a POST without an Authorization header. The
// authentication endpoint is the only caller; it sends credentials in the
// body instead.
func (c *Client) PostJSONNoAuth(ctx context.Context, endpoint string, body, result interface{}) (*resty.Response, error) {
	r := c.rest.R().SetContext(ctx)
	if util.HttpTraceEnabled() {
		r.EnableTrace()
	}

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result).
		Post(c.baseURL + endpoint)

	printTraceInfo(endpoint, err, resp)
	return resp, err
}

func printTraceInfo(endpoint string, err error, resp *resty.Response) {

	if !util.DebugEnabled() || resp == nil {
		return
	}

	logger.Debugf("POST %s -> %s (%s)", endpoint, resp.Status(), resp.Time())
	if err != nil {
		logger.Debugf("  error: %v", err)
	}

	if util.HttpTraceEnabled() {
		ti := resp.Request.TraceInfo()
		logger.Debugf("  DNSLookup: %s ConnTime: %s ServerTime: %s TotalTime: %s",
			ti.DNSLookup, ti.ConnTime, ti.ServerTime, ti.TotalTime)
	}
}
