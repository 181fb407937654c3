// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog queries the Hugging Face Hub API for models, datasets,
// and spaces, and looks up per-item metadata and README cards.
// See docs/ARCHITECTURE.md § Catalog Client.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/awacke1/hub-scout/internal/httputil"
	"github.com/awacke1/hub-scout/pkg/types"
)

// hubAPIBase is the Hub API endpoint. Declared as a var so tests can
// substitute an httptest server; CatalogConfig.Endpoint overrides it
// per client.
var hubAPIBase = "https://huggingface.co"

// ErrNotFound reports a metadata or card lookup for an id the hub does
// not know.
var ErrNotFound = errors.New("catalog item not found")

// ErrUnavailable reports that the hub could not be reached or answered
// with a server error. The client never retries beyond the rate-limit
// backoff in httputil; callers surface the error in place of results.
var ErrUnavailable = errors.New("catalog unavailable")

const defaultMaxResults = 20

// Client talks to the Hub catalog. The zero value is not usable; use New.
type Client struct {
	http       *http.Client
	base       string
	token      string
	userAgent  string
	maxResults int
}

// New builds a Client from config, filling in defaults for the endpoint,
// timeout, and result limit.
func New(cfg types.CatalogConfig) *Client {
	base := cfg.Endpoint
	if base == "" {
		base = hubAPIBase
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		base:       strings.TrimRight(base, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		maxResults: maxResults,
	}
}

// Query holds the search parameters.
type Query struct {
	// FreeText is matched against item names and descriptions.
	FreeText string

	// Author restricts results to one user or organization.
	Author string
}

// IsEmpty reports whether the query contains no searchable terms.
func (q Query) IsEmpty() bool {
	return q.FreeText == "" && q.Author == ""
}

// Search queries the hub for items of the given kind. Results come back
// in the hub's own ranking order; the client does not sort. An empty
// result set is a valid zero-length slice, not an error.
func (c *Client) Search(ctx context.Context, query Query, kind types.Kind) ([]types.CatalogItem, error) {
	if !kind.Valid() {
		return nil, &types.InvalidKindError{Kind: kind}
	}
	if query.IsEmpty() {
		return nil, fmt.Errorf("query is empty: provide search text or an author")
	}

	params := url.Values{
		"limit": {fmt.Sprintf("%d", c.maxResults)},
	}
	if query.FreeText != "" {
		params.Set("search", query.FreeText)
	}
	if query.Author != "" {
		params.Set("author", query.Author)
	}

	reqURL := fmt.Sprintf("%s/api/%s?%s", c.base, kind.APIPath(), params.Encode())
	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var listings []hubListing
	if err := json.NewDecoder(body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("parsing hub search response: %w", err)
	}

	items := make([]types.CatalogItem, 0, len(listings))
	for _, l := range listings {
		items = append(items, types.CatalogItem{
			Kind:      kind,
			ID:        l.identifier(),
			Author:    l.Author,
			Downloads: l.Downloads,
		})
	}
	return items, nil
}

// Metadata looks up the descriptive record for a single item. Unknown
// ids fail with ErrNotFound.
func (c *Client) Metadata(ctx context.Context, id string, kind types.Kind) (*types.MetadataCard, error) {
	if !kind.Valid() {
		return nil, &types.InvalidKindError{Kind: kind}
	}
	if id == "" {
		return nil, fmt.Errorf("metadata lookup requires an id")
	}

	reqURL := fmt.Sprintf("%s/api/%s/%s", c.base, kind.APIPath(), id)
	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var l hubListing
	if err := json.NewDecoder(body).Decode(&l); err != nil {
		return nil, fmt.Errorf("parsing hub metadata response: %w", err)
	}

	return &types.MetadataCard{
		ID:           l.identifier(),
		Kind:         kind,
		Author:       l.Author,
		SHA:          l.SHA,
		LastModified: l.LastModified,
		Private:      l.Private,
		Downloads:    l.Downloads,
		Likes:        l.Likes,
		Tags:         l.Tags,
	}, nil
}

// Card fetches the raw README card for an item from the hub's resolve
// path. Items without a README fail with ErrNotFound.
func (c *Client) Card(ctx context.Context, id string, kind types.Kind) (string, error) {
	if !kind.Valid() {
		return "", &types.InvalidKindError{Kind: kind}
	}
	if id == "" {
		return "", fmt.Errorf("card lookup requires an id")
	}

	prefix := ""
	switch kind {
	case types.KindDatasets:
		prefix = "datasets/"
	case types.KindSpaces:
		prefix = "spaces/"
	}
	reqURL := fmt.Sprintf("%s/%s%s/raw/main/README.md", c.base, prefix, id)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	card, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading card: %w", err)
	}
	return string(card), nil
}

// get performs a GET with auth and rate-limit handling, mapping HTTP
// failures to the package's error values. The caller closes the body.
func (c *Client) get(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, reqURL)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: hub API returned HTTP %d", ErrUnavailable, resp.StatusCode)
	}
}

// hubListing is the wire shape shared by the hub's list and info
// responses. Model responses carry the id in modelId; datasets and
// spaces use id.
type hubListing struct {
	ID           string   `json:"id"`
	ModelID      string   `json:"modelId"`
	Author       string   `json:"author"`
	Downloads    *int64   `json:"downloads"`
	Likes        int      `json:"likes"`
	SHA          string   `json:"sha"`
	LastModified string   `json:"lastModified"`
	Private      bool     `json:"private"`
	Tags         []string `json:"tags"`
}

func (l hubListing) identifier() string {
	if l.ModelID != "" {
		return l.ModelID
	}
	return l.ID
}
