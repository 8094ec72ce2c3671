// Package source retrieves the two SRFI datasets from files or HTTP endpoints.
package source

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
)

const userAgent = "SRFIBrowse/1.0"

// Source is a retrievable JSON document.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string
	// Open returns the raw document. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Ping checks that the document is reachable without reading it.
	Ping(ctx context.Context) error
}

// New returns a Source for location. http and https URLs are fetched with
// client; anything else is treated as a local path, with an optional
// file:// prefix.
func New(name, location string, client *http.Client) Source {
	if u, err := url.Parse(location); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return NewHTTPSource(name, location, client)
		case "file":
			return &FileSource{name: name, path: u.Path}
		}
	}
	return &FileSource{name: name, path: location}
}

// NewClient builds the HTTP client used for remote sources. A zero timeout
// means requests wait as long as the server does.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("too many redirects")
			}
			return nil
		},
	}
}

// HTTPSource fetches a document with GET.
type HTTPSource struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTP source. A nil client uses NewClient(0).
func NewHTTPSource(name, rawURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = NewClient(0)
	}
	return &HTTPSource{name: name, url: rawURL, client: client}
}

// Name returns the source name.
func (s *HTTPSource) Name() string { return s.name }

// Open performs the GET request. Non-2xx responses are errors.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := s.do(ctx, http.MethodGet)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Ping performs a HEAD request.
func (s *HTTPSource) Ping(ctx context.Context) error {
	resp, err := s.do(ctx, http.MethodHead)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (s *HTTPSource) do(ctx context.Context, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid URL: %w", s.name, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: connection failed: %w", s.name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: HTTP %s", s.name, resp.Status)
	}
	return resp, nil
}

// FileSource reads a document from the local filesystem.
type FileSource struct {
	name string
	path string
}

// NewFileSource creates a file source.
func NewFileSource(name, path string) *FileSource {
	return &FileSource{name: name, path: path}
}

// Name returns the source name.
func (s *FileSource) Name() string { return s.name }

// Open opens the file.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	return f, nil
}

// Ping checks that the file exists and is a regular file.
func (s *FileSource) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fi, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%s: %s is not a regular file", s.name, s.path)
	}
	return nil
}
