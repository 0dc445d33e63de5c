package utils

import (
	"time"

	"github.com/MKhiriev/go-name-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers can register hooks and build
// requests directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client bound to baseURL. Requests are never
// retried.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader(models.HeaderContentType, models.MIMEJSON)

	return &HTTPClient{Client: c}
}
