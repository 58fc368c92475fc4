package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

var _ HTTPClient = (*httpClient)(nil)

type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error)
}

type httpClient struct {
	Client *http.Client
}

// NewHTTPClient returns a client whose requests are bounded by timeout. A nil
// proxy falls back to the environment proxy settings.
func NewHTTPClient(timeout time.Duration, proxy *url.URL) HTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &httpClient{Client: &http.Client{Timeout: timeout, Transport: transport}}
}

func (c *httpClient) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, headers)
	return c.Client.Do(req)
}

func (c *httpClient) setHeaders(req *http.Request, headers map[string]string) {
	if len(headers) == 0 {
		return
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}
