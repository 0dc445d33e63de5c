package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-name-keeper/internal/config"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/utils"
	"github.com/MKhiriev/go-name-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	crudPath      = "/crud"
	crudEntryPath = "/crud/{id}"

	defaultRequestTimeout = 15 * time.Second
)

type httpNamesAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPNamesAdapter constructs an HTTP/REST implementation of
// [NamesAdapter]. It normalises the base URL from adapterCfg.APIURL (scheme
// defaults to http, trailing slashes are dropped) and configures the
// underlying client with the request timeout. Requests are never retried.
//
// Returns [ErrNoBaseURL] if adapterCfg.APIURL is empty, or an error if it
// cannot be parsed as a URL.
func NewHTTPNamesAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (NamesAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, err
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	a := &httpNamesAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}

	a.client.
		OnBeforeRequest(a.setTraceID).
		OnAfterResponse(a.logResponse).
		OnError(a.logError)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid api url %q: address must include host and scheme", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNamesAdapter) setTraceID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(models.HeaderTraceID) == "" {
		r.SetHeader(models.HeaderTraceID, h.ids.Generate())
	}
	return nil
}

func (h *httpNamesAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("trace_id", resp.Request.Header.Get(models.HeaderTraceID)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("names api response")
	return nil
}

func (h *httpNamesAdapter) logError(r *resty.Request, err error) {
	h.logger.Warn().
		Err(err).
		Str("method", r.Method).
		Str("url", r.URL).
		Str("trace_id", r.Header.Get(models.HeaderTraceID)).
		Msg("names api request failed")
}

// List implements [NamesAdapter]. It GETs /crud and decodes the body as a
// JSON array of entries; anything else decodes to an empty list. Elements
// that do not decode as an entry are skipped.
func (h *httpNamesAdapter) List(ctx context.Context) ([]models.NameEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", models.MIMEJSON).
		Get(crudPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		h.logger.Debug().Err(err).Msg("list response is not an array, treating as empty")
		return []models.NameEntry{}, nil
	}

	entries := make([]models.NameEntry, 0, len(items))
	for i, item := range items {
		var entry models.NameEntry
		if err = json.Unmarshal(item, &entry); err != nil {
			h.logger.Warn().Err(err).Int("index", i).Msg("skipping malformed list entry")
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Create implements [NamesAdapter]. It POSTs {"texto": text} to /crud.
func (h *httpNamesAdapter) Create(ctx context.Context, text string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(models.HeaderContentType, models.MIMEJSON).
		SetBody(models.NameRequest{Text: text}).
		Post(crudPath)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Update implements [NamesAdapter]. It PUTs {"texto": text} to /crud/{id};
// the id is path-escaped.
func (h *httpNamesAdapter) Update(ctx context.Context, id models.EntryID, text string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(models.HeaderContentType, models.MIMEJSON).
		SetPathParam("id", id.String()).
		SetBody(models.NameRequest{Text: text}).
		Put(crudEntryPath)
	if err != nil {
		return fmt.Errorf("%w: update request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Delete implements [NamesAdapter]. It sends DELETE /crud/{id}.
func (h *httpNamesAdapter) Delete(ctx context.Context, id models.EntryID) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		Delete(crudEntryPath)
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}
