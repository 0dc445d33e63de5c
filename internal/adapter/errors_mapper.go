package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode(), Body: body}
	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		respErr.kind = ErrBadRequest
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		respErr.kind = ErrUnavailable
	}

	return respErr
}
