package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("http://127.0.0.1:5000", 10*time.Second)
//	resp, err := client.R().Get("/api/version")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client bound to baseURL. A zero timeout
// leaves the client without a deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
