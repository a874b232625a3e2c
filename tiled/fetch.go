package tiled

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetch downloads the map document at url. A bundle server publishes
// {classes, maps}; with single set the document is a bare map export and is
// wrapped into a one-map bundle with no classes.
func Fetch(ctx context.Context, client *http.Client, url string, single bool) (*Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("tiled: map request %s: %w", url, err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tiled: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tiled: fetch %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tiled: read %s: %w", url, err)
	}

	if !single {
		return ParseBundle(data)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, err
	}
	return &Bundle{Maps: []Map{*m}}, nil
}
