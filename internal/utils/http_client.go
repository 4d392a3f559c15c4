package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client for outbound calls to third-party APIs.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends
// "Accept: application/json", gives up after timeout (zero means no
// timeout) and retries transport errors twice.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetResult(&out).Get("https://api.example.com/users")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
