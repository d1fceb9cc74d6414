// Package network is the I/O primitive of the pipeline: one GET with a
// realistic browser header profile, no retries, no strategy logic.
package network

import (
	"context"
	"fmt"
	"io"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// defaultHeaders mimics an ordinary desktop Chrome navigation request.
var defaultHeaders = [][2]string{
	{"Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"},
	{"Accept-Language", "en-US,en;q=0.9"},
	{"Accept-Encoding", "gzip, deflate, br"},
	{"DNT", "1"},
	{"Connection", "keep-alive"},
	{"Upgrade-Insecure-Requests", "1"},
	{"Sec-Fetch-Dest", "document"},
	{"Sec-Fetch-Mode", "navigate"},
	{"Sec-Fetch-Site", "none"},
	{"Sec-Fetch-User", "?1"},
	{"sec-ch-ua", `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`},
	{"sec-ch-ua-mobile", "?0"},
	{"sec-ch-ua-platform", `"macOS"`},
}

// Page is one fetched document. It is owned by the worker that fetched it
// and should be discarded once extraction completes.
type Page struct {
	URL    string
	Status int
	Body   []byte
}

// Timeouts bounds a single request. The TLS client takes one overall
// request deadline; Read dominates and is used as that deadline.
type Timeouts struct {
	Connect time.Duration
	Read    time.Duration
	Write   time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Connect: 30 * time.Second,
		Read:    60 * time.Second,
		Write:   30 * time.Second,
	}
}

type Client struct {
	http tls_client.HttpClient
}

func NewClient(timeouts Timeouts) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	deadline := timeouts.Read
	if deadline <= 0 {
		deadline = DefaultTimeouts().Read
	}

	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(int(deadline/time.Second)),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, fmt.Errorf("network: create client: %w", err)
	}

	return &Client{http: client}, nil
}

// Fetch issues a single GET and returns the page body. Non-2xx statuses,
// transport failures, and empty bodies all surface as a *FetchError.
func (c *Client) Fetch(ctx context.Context, target string) (*Page, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}

	for _, header := range defaultHeaders {
		req.Header.Set(header[0], header[1])
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: target, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: target, Status: resp.StatusCode, Err: err}
	}
	if len(body) == 0 {
		return nil, &FetchError{URL: target, Status: resp.StatusCode, Err: ErrEmptyBody}
	}

	return &Page{URL: target, Status: resp.StatusCode, Body: body}, nil
}
