package httpsource

import "net/http"

// Option configures a Source.
type Option func(*options)

type options struct {
	client *http.Client
	header http.Header
}

// WithClient sets the HTTP client used for requests.
// The default client is http.DefaultClient, which has no timeout.
func WithClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.header.Add(key, value)
	}
}
