package adapter

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/utils"
	"github.com/MKhiriev/work-notes/models"
)

type httpNotesAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs the resty implementation of [NotesAdapter].
// Basic-auth credentials are attached to every request when cfg.User is set.
func NewHTTPNotesAdapter(cfg config.ClientConfig, logger *logger.Logger) (NotesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.User != "" {
		client.SetBasicAuth(cfg.User, cfg.Password)
	}

	return &httpNotesAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include a host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesAdapter) List(ctx context.Context, params models.QueryParams) (models.Page, error) {
	var page models.Page

	query := map[string]string{}
	if params.Search != "" {
		query["q"] = params.Search
	}
	if params.From != "" {
		query["from"] = params.From
	}
	if params.To != "" {
		query["to"] = params.To
	}
	if params.Page > 0 {
		query["page"] = strconv.Itoa(params.Page)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&page).
		Get("/api/notes")
	if err != nil {
		return models.Page{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	h.logger.Debug().Str("func", "*httpNotesAdapter.List").Int("count", len(page.Items)).Send()
	return page, nil
}

func (h *httpNotesAdapter) Get(ctx context.Context, name string) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&note).
		Get("/api/notes/{name}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNotesAdapter) Save(ctx context.Context, req models.SaveRequest) (models.SaveResult, error) {
	var result models.SaveResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/notes")
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("save request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResult{Status: models.StatusError, Message: errorMessage(resp.Body())}, err
	}

	return result, nil
}

func (h *httpNotesAdapter) Delete(ctx context.Context, name string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Delete("/api/notes/{name}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesAdapter) Download(ctx context.Context, name string) ([]byte, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/download/{name}")
	if err != nil {
		return nil, "", fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	filename := name
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	return resp.Body(), filename, nil
}

func (h *httpNotesAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}
