package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/ruixen-labs/ruixen-ui/internal/branding"
)

// ComponentSource looks up components by name.
type ComponentSource interface {
	Component(ctx context.Context, name string) (Component, error)
}

// FileSource fetches component source files by registry path.
type FileSource interface {
	File(ctx context.Context, path string) (string, error)
}

// Client reads the remote registry over HTTP. The registry document is
// fetched at most once per Client.
type Client struct {
	http        *resty.Client
	registryURL string
	baseURL     string

	mu       sync.Mutex
	registry *Registry
}

// NewClient creates a client for the registry document at registryURL whose
// component files live under baseURL. Requests are not retried.
func NewClient(registryURL, baseURL string) *Client {
	rc := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", branding.CLIName()+"-cli").
		SetHeader("Accept", "application/json, text/plain, */*")

	return &Client{
		http:        rc,
		registryURL: registryURL,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Registry returns the decoded registry document.
func (c *Client) Registry(ctx context.Context) (*Registry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.registry != nil {
		return c.registry, nil
	}

	resp, err := c.http.R().SetContext(ctx).Get(c.registryURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrRegistryUnavailable, c.registryURL, resp.Status())
	}

	reg, err := Decode(resp.Body())
	if err != nil {
		return nil, err
	}
	c.registry = reg
	return reg, nil
}

// Component returns the named component.
func (c *Client) Component(ctx context.Context, name string) (Component, error) {
	reg, err := c.Registry(ctx)
	if err != nil {
		return Component{}, err
	}
	comp, ok := reg.Components[name]
	if !ok {
		return Component{}, &ComponentNotFoundError{Name: name}
	}
	return comp, nil
}

// Components returns every component sorted by name.
func (c *Client) Components(ctx context.Context) ([]Component, error) {
	reg, err := c.Registry(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Component, 0, len(reg.Components))
	for _, comp := range reg.Components {
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Categories returns the registry categories keyed by category key.
func (c *Client) Categories(ctx context.Context) (map[string]Category, error) {
	reg, err := c.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Categories, nil
}

// File fetches the raw content of a component file.
func (c *Client) File(ctx context.Context, path string) (string, error) {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrComponentFileUnavailable, path, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: GET %s: %s", ErrComponentFileUnavailable, url, resp.Status())
	}
	return resp.String(), nil
}
