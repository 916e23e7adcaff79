package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultAPIBaseURL   = "https://api.steampowered.com"
	defaultStoreBaseURL = "https://store.steampowered.com"

	appListEndpoint    = "/IStoreService/GetAppList/v1/"
	appDetailsEndpoint = "/api/appdetails"

	// One detail request per interval; page requests are not throttled.
	DefaultDetailInterval = 2500 * time.Millisecond

	appListPageSize = 50000
)

// NetworkError covers transport failures, timeouts, non-2xx responses and
// malformed JSON at the API boundary. It is fatal to the single call that
// produced it, never to a whole sync run.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("steam api request failed: %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client talks to the Steam catalog endpoints. Construct it explicitly and
// pass it where needed; there is no process-wide cached instance.
type Client struct {
	apiBaseURL    string
	storeBaseURL  string
	apiKey        string
	httpClient    *http.Client
	detailLimiter *rate.Limiter
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient injects the HTTP client, e.g. to change the per-request
// timeout or to point tests at an httptest server transport.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithBaseURLs overrides the API and store endpoints (tests, mirrors).
func WithBaseURLs(apiBaseURL, storeBaseURL string) ClientOption {
	return func(c *Client) {
		c.apiBaseURL = apiBaseURL
		c.storeBaseURL = storeBaseURL
	}
}

// WithDetailInterval sets the minimum spacing between detail calls.
func WithDetailInterval(interval time.Duration) ClientOption {
	return func(c *Client) {
		if interval > 0 {
			c.detailLimiter = rate.NewLimiter(rate.Every(interval), 1)
		}
	}
}

// NewClient creates a Steam API client with the default fixed-interval
// throttle on detail calls.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiBaseURL:    defaultAPIBaseURL,
		storeBaseURL:  defaultStoreBaseURL,
		apiKey:        apiKey,
		detailLimiter: rate.NewLimiter(rate.Every(DefaultDetailInterval), 1),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs a GET and decodes the JSON body into result. Any
// transport, status or decoding failure comes back as a *NetworkError.
func (c *Client) doRequest(ctx context.Context, baseURL, endpoint string, params url.Values, result any) error {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	fullURL := baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &NetworkError{URL: fullURL, Err: err}
	}
	req.Header.Set("User-Agent", "GameAdvisor/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{URL: fullURL, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &NetworkError{URL: fullURL, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return nil
}

// FetchAppList walks the paginated catalog listing and returns every app
// entry. A failure on the first page is returned as an error (the run cannot
// start without a catalog); a failure on a later page logs, stops pagination
// and returns the partial accumulation. Callers must treat a short list as
// possibly incomplete, never as fatal.
func (c *Client) FetchAppList(ctx context.Context) ([]AppEntry, error) {
	params := url.Values{}
	params.Set("include_games", "true")
	params.Set("max_results", strconv.Itoa(appListPageSize))
	params.Set("last_appid", "0")

	var apps []AppEntry
	firstPage := true

	for {
		var envelope appListEnvelope
		if err := c.doRequest(ctx, c.apiBaseURL, appListEndpoint, params, &envelope); err != nil {
			if firstPage {
				return nil, fmt.Errorf("fetch first catalog page: %w", err)
			}
			log.Printf("[SteamClient] Catalog page failed, returning %d apps accumulated so far: %v", len(apps), err)
			return apps, nil
		}
		firstPage = false

		page := envelope.Response
		if page == nil {
			log.Printf("[SteamClient] Unexpected catalog response shape, stopping pagination")
			return apps, nil
		}

		apps = append(apps, page.Apps...)

		// Last page is signalled by the key being absent.
		if page.HaveMoreResults == nil {
			return apps, nil
		}
		params.Set("last_appid", strconv.FormatInt(page.LastAppID, 10))
	}
}

// FetchAppDetails fetches the raw details payload for one app. It returns
// (nil, nil) when the upstream marks the app unsuccessful, the app id is
// unknown, or the payload shape is invalid; only transport-level failures
// surface as errors. Calls are spaced by the client's detail interval.
func (c *Client) FetchAppDetails(ctx context.Context, appID int64) (Payload, error) {
	if err := c.detailLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("appids", strconv.FormatInt(appID, 10))

	var envelope map[string]any
	if err := c.doRequest(ctx, c.storeBaseURL, appDetailsEndpoint, params, &envelope); err != nil {
		return nil, err
	}

	entry, ok := objectValue(envelope, strconv.FormatInt(appID, 10))
	if !ok {
		log.Printf("[SteamClient] No data received for app %d", appID)
		return nil, nil
	}
	if success, ok := boolValue(entry, "success"); !ok || !success {
		log.Printf("[SteamClient] App %d marked unsuccessful by upstream", appID)
		return nil, nil
	}
	data, ok := objectValue(entry, "data")
	if !ok {
		log.Printf("[SteamClient] Invalid data format for app %d", appID)
		return nil, nil
	}
	return data, nil
}
