// SPDX-License-Identifier: EPL-2.0

package diarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ik5/diasplit/segment"
)

const (
	defaultBaseURL = "http://localhost:8388"
	defaultTimeout = 300 * time.Second
)

// Config holds configuration for the HTTP diarization provider.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPProvider implements Provider against a diarization HTTP sidecar.
type HTTPProvider struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPProvider creates a provider for the sidecar at cfg.BaseURL.
func NewHTTPProvider(cfg Config, log zerolog.Logger) *HTTPProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &HTTPProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Name returns the provider name.
func (p *HTTPProvider) Name() string { return "http" }

// IsAvailable checks the sidecar's health endpoint.
func (p *HTTPProvider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// wireSegment matches the sidecar's response schema: second-resolution
// floats.
type wireSegment struct {
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text,omitempty"`
}

type wireResponse struct {
	Segments    []wireSegment `json:"segments"`
	NumSpeakers int           `json:"num_speakers"`
}

// Diarize posts the audio file to the sidecar and converts the result.
func (p *HTTPProvider) Diarize(ctx context.Context, req Request) (segment.Set, error) {
	f, err := os.Open(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("audio", filepath.Base(req.AudioPath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("write audio data: %w", err)
	}

	if req.NumSpeakers > 0 {
		_ = mw.WriteField("num_speakers", fmt.Sprintf("%d", req.NumSpeakers))
	}
	if req.MinSpeakers > 0 {
		_ = mw.WriteField("min_speakers", fmt.Sprintf("%d", req.MinSpeakers))
	}
	if req.MaxSpeakers > 0 {
		_ = mw.WriteField("max_speakers", fmt.Sprintf("%d", req.MaxSpeakers))
	}
	if req.Language != "" {
		_ = mw.WriteField("language", req.Language)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/diarize", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)

	p.log.Debug().
		Str("request_id", requestID).
		Str("audio", req.AudioPath).
		Msg("sending diarization request")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("diarization request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("diarization service returned %d: %s", resp.StatusCode, detail)
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode diarization response: %w", err)
	}

	set, err := convert(wire.Segments)
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("request_id", requestID).
		Int("segments", len(set)).
		Int("speakers", wire.NumSpeakers).
		Msg("diarization complete")

	return set, nil
}

// convert maps wire segments (seconds) to a segment.Set (ms), keeping
// the backend's order.
func convert(wire []wireSegment) (segment.Set, error) {
	set := make(segment.Set, 0, len(wire))
	for i, ws := range wire {
		start := secondsToMs(ws.Start)
		end := secondsToMs(ws.End)
		if start >= end {
			return nil, &segment.RangeError{Index: i, Start: start, End: end}
		}

		set = append(set, segment.Segment{
			Speaker: ws.Speaker,
			Start:   start,
			End:     end,
			Text:    ws.Text,
		})
	}

	return set, nil
}

func secondsToMs(s float64) int64 {
	return int64(s*1000 + 0.5)
}
