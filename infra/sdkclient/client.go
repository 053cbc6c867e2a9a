// Package sdkclient wraps jsonclient so every outgoing request identifies the
// SDK version to the API server.
package sdkclient

import (
	"github.com/permitio/permit-golang/infra/jsonclient"
)

// HeaderSDKVersion is the header used to report the calling SDK version
const HeaderSDKVersion = "X-Permit-SDK-Version"

// Client represents a jsonclient that communicates with the Permit API
type Client struct {
	*jsonclient.Client
}

// New constructs a new SDK client
func New(url string, opts ...jsonclient.Option) *Client {
	opts = append(opts, jsonclient.Header(HeaderSDKVersion, sdkVersion))
	c := jsonclient.New(url, opts...)

	return &Client{c}
}
