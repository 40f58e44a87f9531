// Package biogrid fetches interaction records from the BioGRID REST service.
package biogrid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/genescope/core/internal/models"
	"github.com/genescope/core/internal/parser"
)

// Failure kinds. Callers that only care about "no result" can ignore them.
var (
	ErrRequest = errors.New("biogrid request failed")
	ErrStatus  = errors.New("biogrid returned an error status")
	ErrDecode  = errors.New("biogrid response is not valid JSON")
)

// DefaultTimeout bounds the single request made per fetch.
const DefaultTimeout = 10 * time.Second

// maxKeysShown caps the response ids echoed after a successful fetch.
const maxKeysShown = 10

const redacted = "REDACTED"

type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	out        io.Writer
}

type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its timeout is used as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithOutput sets where progress messages are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Client) { c.out = w }
}

// NewClient returns a Client for the interactions endpoint at baseURL. A
// non-positive timeout means DefaultTimeout.
func NewClient(baseURL, accessKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: timeout},
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchInteractions issues one GET for gene. It never retries. An empty
// response is not an error: it yields empty Interactions. Transport failures,
// non-200 statuses and undecodable bodies return nil and an error wrapping
// ErrRequest, ErrStatus or ErrDecode.
func (c *Client) FetchInteractions(ctx context.Context, gene string) (*models.Interactions, error) {
	fmt.Fprintln(c.out, "\nFetching gene interactions from BioGRID...")

	reqURL, displayURL, err := c.buildURL(gene)
	if err != nil {
		fmt.Fprintf(c.out, "An error occurred: %v\n", err)
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		fmt.Fprintf(c.out, "An error occurred: %v\n", err)
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(c.out, "An error occurred: %v\n", redactError(err, c.accessKey))
		return nil, fmt.Errorf("%w: %v", ErrRequest, redactError(err, c.accessKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(c.out, "An error occurred: %v\n", err)
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrRequest, err)
	}

	fmt.Fprintf(c.out, "API URL: %s\n", displayURL)

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(c.out, "Error fetching data from BioGRID: %d\n", resp.StatusCode)
		fmt.Fprintf(c.out, "Response Text: %s\n", body)
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	interactions, err := parser.ParseInteractions(body)
	if err != nil {
		fmt.Fprintln(c.out, "Error parsing response as JSON.")
		fmt.Fprintf(c.out, "Response Text: %s\n", body)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if interactions.Len() == 0 {
		fmt.Fprintln(c.out, "No interaction data found for the given gene.")
		return interactions, nil
	}

	fmt.Fprintln(c.out, "Data successfully retrieved!")
	fmt.Fprintf(c.out, "Available keys in the response: [%s]\n", strings.Join(interactions.Head(maxKeysShown), ", "))

	return interactions, nil
}

// buildURL returns the request URL and a copy safe to print, with the access
// key replaced.
func (c *Client) buildURL(gene string) (string, string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid base url %q: %w", c.baseURL, err)
	}

	q := u.Query()
	q.Set("searchNames", "true")
	q.Set("geneList", gene)
	q.Set("format", "json")
	q.Set("includeInteractors", "true")
	q.Set("accesskey", c.accessKey)
	u.RawQuery = q.Encode()
	reqURL := u.String()

	if c.accessKey != "" {
		q.Set("accesskey", redacted)
		u.RawQuery = q.Encode()
	}

	return reqURL, u.String(), nil
}

// redactError strips the access key from transport errors, which embed the
// request URL.
func redactError(err error, accessKey string) string {
	msg := err.Error()
	if accessKey == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, url.QueryEscape(accessKey), redacted)
	return strings.ReplaceAll(msg, accessKey, redacted)
}
