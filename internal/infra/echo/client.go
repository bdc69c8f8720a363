package echo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"resource-form/internal/infra"
	"resource-form/internal/usecase/resourceform"
)

const (
	userAgent = "resource-form"

	// maxErrorBody caps how much of a non-2xx body is kept for the message.
	maxErrorBody = 4 << 10
)

// Client posts submissions to an httpbin-style echo endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// reply is the part of the echo body that is logged back to the operator.
type reply struct {
	URL     string          `json:"url"`
	JSON    json.RawMessage `json:"json"`
	Headers headers         `json:"headers"`
}

// headers accepts both httpbin shapes: a single string per name, or a list of values.
type headers map[string]string

func (h *headers) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(headers, len(raw))
	for name, v := range raw {
		var one string
		if err := json.Unmarshal(v, &one); err == nil {
			out[name] = one
			continue
		}
		var many []string
		if err := json.Unmarshal(v, &many); err != nil {
			return err
		}
		out[name] = strings.Join(many, ", ")
	}
	*h = out
	return nil
}

// NewClient creates a client for url. A zero timeout leaves requests bounded only by their context.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		logger:     logger,
	}
}

// Post sends payload once. There is no retry.
func (c *Client) Post(ctx context.Context, payload resourceform.Payload) (*resourceform.EchoResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindDecode, "failed to marshal request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindNetwork, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindNetwork, "POST "+c.url+" failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// best effort: a body that cannot be read is reported as empty
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, infra.NewServerError(c.logger, resp.StatusCode, resp.Status, strings.TrimSpace(string(text)))
	}

	var r reply
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindDecode, "failed to parse response", err)
	}

	return &resourceform.EchoResponse{
		StatusCode: resp.StatusCode,
		URL:        r.URL,
		JSON:       r.JSON,
		Headers:    r.Headers,
	}, nil
}
