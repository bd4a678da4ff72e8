package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Report is what the sentiment service knows about a buyer.
type Report struct {
	Buyer   string `json:"buyer"`
	Summary string `json:"summary"`
	Focus   string `json:"focus,omitempty"`
}

type Client interface {
	Lookup(ctx context.Context, buyer string) (*Report, error)
}

type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) doReq(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("sentiment %s %s: %d %s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// Lookup fetches the sentiment report for buyer. When the service leaves the
// focus empty it is extracted from the summary text.
func (c *HTTPClient) Lookup(ctx context.Context, buyer string) (*Report, error) {
	data, err := c.doReq(ctx, http.MethodGet, "/v1/buyers/"+url.PathEscape(buyer)+"/sentiment")
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode sentiment report: %w", err)
	}
	if r.Buyer == "" {
		r.Buyer = buyer
	}
	if r.Focus == "" {
		r.Focus = ExtractFocus(r.Summary)
	}
	return &r, nil
}

var focusPattern = regexp.MustCompile(`(?i)(?:prioritized is|core priority is)\s+(\w+)`)

// ExtractFocus returns the word following "prioritized is" or "core priority
// is" in text, or "" when neither phrase is present.
func ExtractFocus(text string) string {
	m := focusPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
