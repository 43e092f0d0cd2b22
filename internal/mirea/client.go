package mirea

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

const DefaultBaseURL = "https://schedule-of.mirea.ru/schedule/api/search"

var ErrGroupNotFound = errors.New("group not found")

// FetchError is returned when the search request fails or its response
// cannot be decoded.
type FetchError struct {
	Group  string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch schedule for %q: status %d: %v", e.Group, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch schedule for %q: %v", e.Group, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type searchResponse struct {
	Data []Group `json:"data"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Logger:     logger,
	}
}

// SearchURL builds the search request URL for a group name.
func (c *Client) SearchURL(group string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("match", group)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// FetchGroup searches for the group and returns the first match.
func (c *Client) FetchGroup(ctx context.Context, group string) (Group, error) {
	searchURL, err := c.SearchURL(group)
	if err != nil {
		return Group{}, &FetchError{Group: group, Err: err}
	}

	c.Logger.Info("searching group", "group", group, "url", searchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return Group{}, &FetchError{Group: group, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Group{}, &FetchError{Group: group, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Group{}, &FetchError{
			Group:  group,
			Status: resp.StatusCode,
			Err:    errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Group{}, &FetchError{Group: group, Err: err}
	}

	// a missing or null data field is a malformed response, an empty one means no match
	if body.Data == nil {
		return Group{}, &FetchError{Group: group, Err: errors.New("response has no data field")}
	}

	if len(body.Data) == 0 {
		return Group{}, ErrGroupNotFound
	}

	c.Logger.Info("found group", "group", group, "days", len(body.Data[0].Schedule))
	return body.Data[0], nil
}
