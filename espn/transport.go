package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Transport performs one GET against the ESPN API. Implementations own
// auth cookies, timeouts, and any response caching. The query is multi-valued
// because the API selects response shape via a repeated "view" parameter.
type Transport interface {
	Do(ctx context.Context, path string, query url.Values, header http.Header) (status int, body []byte, err error)
}

type httpTransport struct {
	baseURL    string
	cookie     string
	httpClient *http.Client
}

// newHTTPTransport builds the default Transport. Empty swid/espnS2 values
// are fine and mean a public league.
func newHTTPTransport(baseURL, swid, espnS2 string) *httpTransport {
	t := &httpTransport{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	if swid != "" || espnS2 != "" {
		t.cookie = fmt.Sprintf("SWID=%s; espn_s2=%s", swid, espnS2)
	}
	return t
}

func (t *httpTransport) Do(ctx context.Context, path string, query url.Values, header http.Header) (int, []byte, error) {
	u := fmt.Sprintf("%s%s", t.baseURL, path)
	if len(query) > 0 {
		u = fmt.Sprintf("%s?%s", u, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating espn http request: %w", err)
	}
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if t.cookie != "" {
		req.Header.Set("Cookie", t.cookie)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("error sending espn http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading espn response: %w", err)
	}

	return resp.StatusCode, body, nil
}
