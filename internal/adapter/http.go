package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/go-resty/resty/v2"
)

// sinceNone asks a peer for its whole changelog.
const sinceNone = "none"

type httpForeignServer struct {
	client  *utils.HTTPClient
	baseURL string

	app config.App

	logger *logger.Logger
}

// NewHTTPForeignServer constructs an HTTP/JSON implementation of
// [ForeignServer] for the peer at peerURL.
//
// The base URL is normalised (a missing scheme defaults to http). When
// appCfg.PeerSecret is set, every request carries a freshly signed peer token;
// when appCfg.HashKey is set, change pushes carry an HMAC over their payload.
// appCfg.AdvertisedURL is sent as the push origin so the peer can fetch the
// bytes of added files back.
func NewHTTPForeignServer(peerURL string, adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ForeignServer, error) {
	baseURL, err := NormalizeBaseURL(peerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpForeignServer{
		client:  utils.NewPeerHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		app:     appCfg,
		logger:  logger.WithPeer(baseURL),
	}, nil
}

// NormalizeBaseURL trims raw, adds an http scheme when none is given and
// strips trailing slashes. Used as the per-peer identity as well.
func NormalizeBaseURL(raw string) (string, error) {
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
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetSyncpoints implements [ForeignServer]. GET /syncpoints.
func (h *httpForeignServer) GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error) {
	req, err := h.peerRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/syncpoints")
	if err != nil {
		return nil, fmt.Errorf("get syncpoints request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var syncpoints []models.SyncPoint
	if err = json.Unmarshal(resp.Body(), &syncpoints); err != nil {
		return nil, fmt.Errorf("decode syncpoints response: %w", err)
	}

	return syncpoints, nil
}

// GetChanges implements [ForeignServer]. GET /changes?since=<RFC3339Nano|none>.
func (h *httpForeignServer) GetChanges(ctx context.Context, since *models.SyncPoint) ([]models.Change, error) {
	req, err := h.peerRequest(ctx)
	if err != nil {
		return nil, err
	}

	sinceParam := sinceNone
	if since != nil {
		sinceParam = since.LastChange.UTC().Format(time.RFC3339Nano)
	}

	resp, err := req.SetQueryParam("since", sinceParam).Get("/changes")
	if err != nil {
		return nil, fmt.Errorf("get changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var changes []models.Change
	if err = json.Unmarshal(resp.Body(), &changes); err != nil {
		return nil, fmt.Errorf("decode changes response: %w", err)
	}

	return changes, nil
}

// SendChanges implements [ForeignServer]. POST /changes, answered with 202
// and the peer's job id.
func (h *httpForeignServer) SendChanges(ctx context.Context, changes []models.Change, removedFiles []int64, newSyncpoint models.SyncPoint) (string, error) {
	body := models.ChangesRequest{
		Changes:      changes,
		RemovedFiles: removedFiles,
		NewSyncpoint: newSyncpoint,
		Origin:       h.app.AdvertisedURL,
	}
	if body.Changes == nil {
		body.Changes = []models.Change{}
	}
	if body.RemovedFiles == nil {
		body.RemovedFiles = []int64{}
	}

	if h.app.HashKey != "" {
		payload, err := body.HashPayload()
		if err != nil {
			return "", fmt.Errorf("build hash payload: %w", err)
		}
		body.Hash = utils.HashString(string(payload), h.app.HashKey)
	}

	req, err := h.peerRequest(ctx)
	if err != nil {
		return "", err
	}

	var job models.JobResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&job).
		Post("/changes")
	if err != nil {
		return "", fmt.Errorf("send changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if job.JobID == "" {
		return "", ErrEmptyJobID
	}

	h.logger.Debug().Str("func", "*httpForeignServer.SendChanges").
		Int("changes", len(changes)).
		Str("foreign_job_id", job.JobID).
		Msg("changes pushed to peer")

	return job.JobID, nil
}

// GetFileDetails implements [FileSource]. GET /file_detail?file_id=<id>.
func (h *httpForeignServer) GetFileDetails(ctx context.Context, fileID int64) (models.FileDetails, error) {
	req, err := h.peerRequest(ctx)
	if err != nil {
		return models.FileDetails{}, err
	}

	resp, err := req.SetQueryParam("file_id", strconv.FormatInt(fileID, 10)).Get("/file_detail")
	if err != nil {
		return models.FileDetails{}, fmt.Errorf("get file details request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileDetails{}, err
	}

	var details models.FileDetails
	if err = json.Unmarshal(resp.Body(), &details); err != nil {
		return models.FileDetails{}, fmt.Errorf("decode file details response: %w", err)
	}

	return details, nil
}

// GetFile implements [FileSource]. GET /file?file_id=<id>.
func (h *httpForeignServer) GetFile(ctx context.Context, fileID int64) ([]byte, error) {
	req, err := h.peerRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetQueryParam("file_id", strconv.FormatInt(fileID, 10)).Get("/file")
	if err != nil {
		return nil, fmt.Errorf("get file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// GetThumbnail implements [FileSource]. GET /thumbnail?file_id=<id>; an empty
// body means the file has no thumbnail.
func (h *httpForeignServer) GetThumbnail(ctx context.Context, fileID int64) ([]byte, bool, error) {
	req, err := h.peerRequest(ctx)
	if err != nil {
		return nil, false, err
	}

	resp, err := req.SetQueryParam("file_id", strconv.FormatInt(fileID, 10)).Get("/thumbnail")
	if err != nil {
		return nil, false, fmt.Errorf("get thumbnail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, false, err
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, false, nil
	}

	return body, true, nil
}

// peerRequest starts a request carrying a peer token when a peer secret is
// configured.
func (h *httpForeignServer) peerRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if h.app.PeerSecret == "" {
		return req, nil
	}

	token, err := utils.GeneratePeerToken(h.app.PeerTokenIssuer, h.peerName(), h.app.PeerTokenDuration, h.app.PeerSecret)
	if err != nil {
		return nil, fmt.Errorf("generate peer token: %w", err)
	}

	return req.SetAuthToken(token.String()), nil
}

func (h *httpForeignServer) peerName() string {
	if h.app.AdvertisedURL != "" {
		return h.app.AdvertisedURL
	}
	return h.app.PeerTokenIssuer
}

type httpForeignServerFactory struct {
	adapterCfg config.Adapter
	appCfg     config.App
	logger     *logger.Logger
}

// NewHTTPForeignServerFactory returns a [ForeignServerFactory] producing
// [NewHTTPForeignServer] clients sharing the given configuration.
func NewHTTPForeignServerFactory(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) ForeignServerFactory {
	return &httpForeignServerFactory{adapterCfg: adapterCfg, appCfg: appCfg, logger: logger}
}

func (f *httpForeignServerFactory) NewForeignServer(peerURL string) (ForeignServer, error) {
	return NewHTTPForeignServer(peerURL, f.adapterCfg, f.appCfg, f.logger)
}
