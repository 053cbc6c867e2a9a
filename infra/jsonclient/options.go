package jsonclient

import (
	"context"
	"io"
	"net/http"
)

// HeaderFunc is a callback that's invoked on every request to generate a header
// This is useful when the header should change per-request based on the context
// used for that request, eg. propagating a per-call request ID.
// Note that returning a blank key indicates "no header to add this request"
type HeaderFunc func(context.Context) (key string, value string)

// DecodeFunc is a callback used with the CustomDecoder option to control deserializing
// the response from an HTTP request. Instead of automatically deserializing into the
// response object provided to the method (which must be nil instead), this method is invoked.
type DecodeFunc func(ctx context.Context, body io.ReadCloser) error

// TokenSource represents anything that can produce a fresh bearer token,
// eg. an API-key exchange or an OAuth client credentials flow.
type TokenSource interface {
	GetToken() (string, error)
}

type options struct {
	headers          http.Header
	cookies          []http.Cookie
	unmarshalOnError bool
	stopLogging      bool

	// Required for automatic token refresh
	tokenSource TokenSource

	// allows runtime updating of headers eg. to pass along a request ID on a per-request basis
	perRequestHeaders []HeaderFunc

	decodeFunc DecodeFunc
}

func (o *options) clone() *options {
	cloned := *o
	cloned.headers = o.headers.Clone()
	copy(cloned.cookies, o.cookies)
	return &cloned
}

// Option makes jsonclient extensible
type Option interface {
	apply(*options)
}

type optFunc func(*options)

func (o optFunc) apply(opts *options) {
	o(opts)
}

// Header allows you to add arbitrary headers to jsonclient requests
func Header(k, v string) Option {
	return optFunc(func(opts *options) {
		opts.headers.Set(k, v)
	})
}

// BearerToken sets the Authorization header from a raw token
func BearerToken(token string) Option {
	return Header("Authorization", "Bearer "+token)
}

// Cookie allows you to add cookies to jsonclient requests
func Cookie(cookie http.Cookie) Option {
	return optFunc(func(opts *options) {
		opts.cookies = append(opts.cookies, cookie)
	})
}

// UnmarshalOnError causes the response struct to be deserialized if a HTTP 400+ code is returned.
// The default behavior is to not deserialize and to return an error.
func UnmarshalOnError() Option {
	return optFunc(func(opts *options) {
		opts.unmarshalOnError = true
	})
}

// StopLogging causes the client not to log failures
func StopLogging() Option {
	return optFunc(func(opts *options) {
		opts.stopLogging = true
	})
}

// PerRequestHeader allows you to pass in a callback that takes a context and returns a header k,v
// that will be called on each request and a new header appended to the request
func PerRequestHeader(f HeaderFunc) Option {
	return optFunc(func(opts *options) {
		opts.perRequestHeaders = append(opts.perRequestHeaders, f)
	})
}

// WithTokenSource takes an arbitrary token source used to mint (and re-mint on
// expiry) the bearer token for this client
func WithTokenSource(ts TokenSource) Option {
	return optFunc(func(opts *options) {
		opts.tokenSource = ts
	})
}

// CustomDecoder allows the caller to control deserializing the HTTP response.
// It is most useful when the exact structure of the response is not known ahead of time,
// and custom logic is required (e.g. for API compatibility).
func CustomDecoder(f DecodeFunc) Option {
	return optFunc(func(opts *options) {
		opts.decodeFunc = f
	})
}
