// Package httpsource loads collections from REST endpoints that answer GET with a JSON array.
package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	collectioncache "github.com/karupanerura/collection-cache"
)

// maxErrorBody is the number of response bytes kept in a StatusError.
const maxErrorBody = 512

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GET %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Source is a collection source backed by an HTTP endpoint.
type Source[V collectioncache.ValueConstraint] struct {
	endpoint string
	client   *http.Client
	header   http.Header
}

var _ collectioncache.CollectionSource[struct{}] = (*Source[struct{}])(nil)

// New creates a new Source that loads the collection from endpoint.
func New[V collectioncache.ValueConstraint](endpoint string, opts ...Option) *Source[V] {
	o := options{
		client: http.DefaultClient,
		header: http.Header{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Source[V]{
		endpoint: endpoint,
		client:   o.client,
		header:   o.header,
	}
}

// Endpoint returns the URL the source loads from.
func (s *Source[V]) Endpoint() string {
	return s.endpoint
}

// GetAll requests the endpoint and decodes the JSON array in the response body.
// Timeouts are those of the HTTP client; the request is also canceled with ctx.
func (s *Source[V]) GetAll(ctx context.Context) ([]V, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("httpsource: %w", err)
	}
	for k, vs := range s.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpsource: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &StatusError{
			Endpoint:   s.endpoint,
			StatusCode: res.StatusCode,
			Body:       string(body),
		}
	}

	var values []V
	if err := json.NewDecoder(res.Body).Decode(&values); err != nil {
		return nil, fmt.Errorf("httpsource: decoding GET %s: %w", s.endpoint, err)
	}
	if values == nil {
		// a JSON null is an empty collection
		values = []V{}
	}
	return values, nil
}
