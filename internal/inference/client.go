// Package inference talks to the remotely hosted detection and classification
// services. Requests are single-shot: failures are reported to the caller
// verbatim and never retried.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/config"
	"ai-deploy-dashboard/internal/logging"
	"ai-deploy-dashboard/internal/models"
)

const (
	EndpointDetection      = "detection"
	EndpointClassification = "classification"

	maxErrorBody = 4 << 10
)

var ErrNoEndpoint = errors.New("inference endpoint not configured")

// Upload is an image as selected by the user.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// StatusError is returned when an endpoint answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s request failed with status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed with status %d: %s", e.Endpoint, e.StatusCode, e.Detail)
}

// Options configures a Client.
type Options struct {
	DetectURL   string
	ClassifyURL string
	Encoding    string
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *zerolog.Logger
}

// OptionsFromConfig maps service configuration onto client options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DetectURL:   cfg.DetectionURL,
		ClassifyURL: cfg.ClassificationURL,
		Encoding:    cfg.InferenceEncoding,
		Timeout:     cfg.InferenceTimeout,
	}
}

// Client posts images to the remote endpoints and decodes their JSON answers.
type Client struct {
	opts   Options
	http   *http.Client
	logger zerolog.Logger

	mu    sync.Mutex
	stats map[string]*endpointStats
}

type endpointStats struct {
	requests int64
	failures int64
	latency  time.Duration
	last     time.Time
}

func NewClient(opts Options) *Client {
	if opts.Encoding == "" {
		opts.Encoding = config.EncodingMultipart
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	logger := log.With().Str("service", "inference").Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		opts:   opts,
		http:   hc,
		logger: logger,
		stats: map[string]*endpointStats{
			EndpointDetection:      {},
			EndpointClassification: {},
		},
	}
}

// Detect sends the image to the detection endpoint.
func (c *Client) Detect(ctx context.Context, up Upload) (*models.DetectionResponse, error) {
	var out models.DetectionResponse
	if err := c.post(ctx, EndpointDetection, c.opts.DetectURL, up, &out); err != nil {
		return nil, err
	}
	if out.Detections == nil {
		out.Detections = []models.Detection{}
	}
	return &out, nil
}

// Classify sends the image to the classification endpoint.
func (c *Client) Classify(ctx context.Context, up Upload) (*models.Classification, error) {
	var out models.Classification
	if err := c.post(ctx, EndpointClassification, c.opts.ClassifyURL, up, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, endpoint, target string, up Upload, out interface{}) (err error) {
	if target == "" {
		return fmt.Errorf("%s: %w", endpoint, ErrNoEndpoint)
	}

	start := time.Now()
	defer func() { c.record(endpoint, time.Since(start), err) }()

	body, contentType, err := c.encode(up)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	l := logging.WithFile(c.logger, up.FileName)
	l.Debug().
		Str("endpoint", endpoint).
		Dur("latency", time.Since(start)).
		Msg("Inference request completed")
	return nil
}

// encode builds either a multipart form with a single "file" field or, in raw
// mode, the image bytes with their own content type.
func (c *Client) encode(up Upload) (io.Reader, string, error) {
	contentType := up.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(up.Data)
	}

	if c.opts.Encoding == config.EncodingRaw {
		switch contentType {
		case "image/jpeg", "image/png":
		default:
			contentType = "application/x-image"
		}
		return bytes.NewReader(up.Data), contentType, nil
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	name := up.FileName
	if name == "" {
		name = "image.jpg"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(up.Data); err != nil {
		return nil, "", fmt.Errorf("copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

// errorDetail extracts FastAPI's {"detail": ...} message, or falls back to the trimmed body.
func errorDetail(raw []byte) string {
	var payload struct {
		Detail interface{} `json:"detail"`
		Error  string      `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch d := payload.Detail.(type) {
		case string:
			return d
		case nil:
		default:
			if b, err := json.Marshal(d); err == nil {
				return string(b)
			}
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

// Ping checks that the service behind endpoint answers on its root path.
func (c *Client) Ping(ctx context.Context, endpoint string) error {
	target := c.opts.DetectURL
	if endpoint == EndpointClassification {
		target = c.opts.ClassifyURL
	}
	if target == "" {
		return fmt.Errorf("%s: %w", endpoint, ErrNoEndpoint)
	}

	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid %s url: %w", endpoint, err)
	}
	u.Path = "/"
	u.RawQuery = ""

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode >= 500 {
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}
	return nil
}
