package jsonclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/permitio/permit-golang/infra/assert"
	"github.com/permitio/permit-golang/infra/jsonclient"
)

type echo struct {
	Message string `json:"message"`
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodGet)
		assert.Equal(t, r.URL.Path, "/hello")
		w.Write([]byte(`{"message":"hi"}`))
	}))
	defer srv.Close()

	var resp echo
	client := jsonclient.New(srv.URL)
	assert.NoErr(t, client.Get(ctx, "/hello", &resp))
	assert.Equal(t, resp.Message, "hi")
}

func TestPostRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodPost)
		assert.Equal(t, r.Header.Get("Content-Type"), "application/json")
		var req echo
		assert.NoErr(t, jsonDecode(r, &req))
		w.Write([]byte(`{"message":"` + req.Message + `!"}`))
	}))
	defer srv.Close()

	var resp echo
	client := jsonclient.New(srv.URL)
	assert.NoErr(t, client.Post(ctx, "/echo", echo{Message: "hi"}, &resp))
	assert.Equal(t, resp.Message, "hi!")
}

func TestDeleteWithBody(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodDelete)
		var req echo
		assert.NoErr(t, jsonDecode(r, &req))
		assert.Equal(t, req.Message, "bye")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := jsonclient.New(srv.URL)
	assert.NoErr(t, client.Delete(ctx, "/things/1", echo{Message: "bye"}))
}

func TestErrorStatus(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"no such thing"}`))
	}))
	defer srv.Close()

	client := jsonclient.New(srv.URL)
	err := client.Get(ctx, "/missing", nil)
	assert.NotNil(t, err)
	assert.Equal(t, jsonclient.GetHTTPStatusCode(err), http.StatusNotFound)
	assert.True(t, jsonclient.IsHTTPStatusNotFound(err))
}

func TestGetHTTPStatusCodeNonHTTPError(t *testing.T) {
	ctx := context.Background()
	client := jsonclient.New("http://127.0.0.1:0")
	err := client.Get(ctx, "/unreachable", nil)
	assert.NotNil(t, err)
	assert.Equal(t, jsonclient.GetHTTPStatusCode(err), -1)
}

func TestUnmarshalOnError(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"already exists"}`))
	}))
	defer srv.Close()

	var resp echo
	client := jsonclient.New(srv.URL)
	err := client.Get(ctx, "/conflict", &resp, jsonclient.UnmarshalOnError())
	assert.Equal(t, jsonclient.GetHTTPStatusCode(err), http.StatusConflict)
	assert.Equal(t, resp.Message, "already exists")
}

func TestBearerToken(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Header.Get("Authorization"), "Bearer permit_key_secret")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := jsonclient.New(srv.URL, jsonclient.BearerToken("permit_key_secret"))
	assert.NoErr(t, client.Get(ctx, "/", nil))

	token, err := client.GetBearerToken()
	assert.NoErr(t, err)
	assert.Equal(t, token, "permit_key_secret")
}

func TestOpaqueTokenNeedsNoSource(t *testing.T) {
	// an opaque API key is a static credential; no TokenSource is required
	client := jsonclient.New("http://localhost", jsonclient.BearerToken("permit_key_opaque"))
	assert.NoErr(t, client.ValidateBearerTokenHeader())
}

func TestMissingTokenNeedsSource(t *testing.T) {
	client := jsonclient.New("http://localhost")
	assert.NotNil(t, client.ValidateBearerTokenHeader())
}

type staticTokenSource struct {
	token string
	calls int
}

func (s *staticTokenSource) GetToken() (string, error) {
	s.calls++
	return s.token, nil
}

func TestTokenSourceRefresh(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Header.Get("Authorization"), "Bearer from_source")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	source := &staticTokenSource{token: "from_source"}
	client := jsonclient.New(srv.URL, jsonclient.WithTokenSource(source))
	assert.NoErr(t, client.ValidateBearerTokenHeader())
	assert.NoErr(t, client.Get(ctx, "/", nil))
	assert.Equal(t, source.calls, 1)

	// the fetched token is opaque, so the source isn't consulted again
	assert.NoErr(t, client.Get(ctx, "/", nil))
	assert.Equal(t, source.calls, 1)
}

func TestPerRequestHeader(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Header.Get("X-Custom"), "per-request")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := jsonclient.New(srv.URL, jsonclient.PerRequestHeader(func(ctx context.Context) (string, string) {
		return "X-Custom", "per-request"
	}))
	assert.NoErr(t, client.Get(ctx, "/", nil))
}

func jsonDecode(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
