package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-contact-share/internal/config"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpRecordStore struct {
	client    *resty.Client
	container string
	log       *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRecordStore builds the HTTP/REST implementation of [RecordStore]
// pointed at cfg.BaseURL. The container identifier from app scopes every
// request path. A bearer token from cfg, when present, is stored immediately.
func NewHTTPRecordStore(cfg config.ClientAdapter, app config.ClientApp, log *logger.Logger) (RecordStore, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if app.ContainerID == "" {
		return nil, errors.New("container id is required")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	h := &httpRecordStore{client: cli, container: app.ContainerID, log: log}
	if cfg.Token != "" {
		h.SetToken(cfg.Token)
	}
	return h, nil
}

func (h *httpRecordStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)

	if sub, err := parseSubjectFromJWT(h.token); err == nil {
		h.log.Debug().Str("subject", sub).Msg("record store token set")
	}
}

func (h *httpRecordStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRecordStore) CreateZone(ctx context.Context, zoneID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateZoneRequest{ZoneID: zoneID}).
		Post(h.containerPath("/zones/"))
	if err != nil {
		return fmt.Errorf("create zone request: %w", err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return fmt.Errorf("create zone %s: %w", zoneID, ErrZoneExists)
	}

	return mapHTTPError(resp)
}

func (h *httpRecordStore) SaveRecord(ctx context.Context, record models.Record, policy models.SavePolicy) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SaveRecordRequest{Record: record, Policy: policy}).
		Post(h.containerPath("/records/"))
	if err != nil {
		return fmt.Errorf("save record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRecordStore) SaveRecords(ctx context.Context, records []models.Record, deletions []string) error {
	req := models.SaveRecordsRequest{Records: records, Deletions: deletions, Length: len(records)}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.containerPath("/records/batch"))
	if err != nil {
		return fmt.Errorf("save records request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRecordStore) FetchRecord(ctx context.Context, recordID string) (models.Record, error) {
	resp, err := h.authedRequest(ctx).
		Get(h.containerPath("/records/" + url.PathEscape(recordID)))
	if err != nil {
		return models.Record{}, fmt.Errorf("fetch record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	var record models.Record
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.Record{}, fmt.Errorf("decode fetch record response: %w", err)
	}

	return record, nil
}

func (h *httpRecordStore) ListZones(ctx context.Context, scope models.Scope) ([]string, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("scope", string(scope)).
		Get(h.containerPath("/zones/"))
	if err != nil {
		return nil, fmt.Errorf("list zones request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ListZonesResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list zones response: %w", err)
	}
	return lr.ZoneIDs, nil
}

func (h *httpRecordStore) FetchChangePage(ctx context.Context, scope models.Scope, zoneID string, cursor models.Cursor) (models.ChangePage, error) {
	req := models.ChangePageRequest{Scope: scope, ZoneID: zoneID, Cursor: cursor}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.containerPath("/changes/"))
	if err != nil {
		return models.ChangePage{}, fmt.Errorf("fetch change page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangePage{}, err
	}

	var page models.ChangePage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.ChangePage{}, fmt.Errorf("decode change page response: %w", err)
	}

	return page, nil
}

func (h *httpRecordStore) CreateShare(ctx context.Context, rootRecordID, title string) (models.Share, error) {
	req := models.CreateShareRequest{RootRecordID: rootRecordID, Title: title}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.containerPath("/shares/"))
	if err != nil {
		return models.Share{}, fmt.Errorf("create share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Share{}, err
	}

	var share models.Share
	if err = json.Unmarshal(resp.Body(), &share); err != nil {
		return models.Share{}, fmt.Errorf("decode create share response: %w", err)
	}

	return share, nil
}

func (h *httpRecordStore) AcceptShare(ctx context.Context, token string) (models.AcceptShareResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AcceptShareRequest{Token: token}).
		Post(h.containerPath("/shares/accept"))
	if err != nil {
		return models.AcceptShareResponse{}, fmt.Errorf("accept share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AcceptShareResponse{}, err
	}

	var ar models.AcceptShareResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return models.AcceptShareResponse{}, fmt.Errorf("decode accept share response: %w", err)
	}

	return ar, nil
}

func (h *httpRecordStore) containerPath(suffix string) string {
	return "/api/containers/" + url.PathEscape(h.container) + suffix
}

func (h *httpRecordStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode() == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode() >= http.StatusInternalServerError:
		return ErrInternalServerError
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// parseSubjectFromJWT extracts the "sub" claim from the bearer token without
// verifying the signature; the value is used only for log correlation.
func parseSubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	return claims.GetSubject()
}
