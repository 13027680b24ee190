package quizapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client talks to the quiz backend. BaseURL includes the API prefix, e.g.
// http://host/api.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     logrus.FieldLogger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client. nil keeps a default one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTP = hc }
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			return
		}
		var rt http.RoundTripper
		if c.HTTP != nil {
			rt = c.HTTP.Transport
		}
		c.HTTP = &http.Client{Timeout: d, Transport: rt}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.Log = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{},
		Log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.HTTP == nil {
		c.HTTP = &http.Client{}
	}
	return c
}

// ListQuizzes fetches every quiz in server order. A body without a quizzes
// field yields an empty slice.
func (c *Client) ListQuizzes(ctx context.Context) ([]Quiz, error) {
	const op = "list quizzes"
	body, err := c.do(ctx, op, http.MethodGet, c.BaseURL+"/quizzes", nil)
	if err != nil {
		return nil, err
	}
	var out listResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	if out.Quizzes == nil {
		return []Quiz{}, nil
	}
	return out.Quizzes, nil
}

// CreateQuiz posts a new quiz. The title is sent as given; validation is the
// backend's concern.
func (c *Client) CreateQuiz(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	const op = "create quiz"
	payload, err := json.Marshal(req)
	if err != nil {
		return CreateResponse{}, fmt.Errorf("%s: encode: %w", op, err)
	}
	body, err := c.do(ctx, op, http.MethodPost, c.BaseURL+"/quizzes", payload)
	if err != nil {
		return CreateResponse{}, err
	}
	var out CreateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return CreateResponse{}, &ParseError{Op: op, Err: err}
	}
	return out, nil
}

// Health calls the backend's root health route, which lives beside the API
// prefix rather than under it.
func (c *Client) Health(ctx context.Context) error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("health: parse base url: %w", err)
	}
	u.Path = strings.TrimSuffix(strings.TrimRight(u.Path, "/"), "/api") + "/health"
	_, err = c.do(ctx, "health", http.MethodGet, u.String(), nil)
	return err
}

func (c *Client) do(ctx context.Context, op, method, target string, payload []byte) ([]byte, error) {
	var rdr io.Reader
	if payload != nil {
		rdr = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.Log.WithFields(logrus.Fields{"op": op, "request_id": reqID, "url": target})
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.WithError(err).Error("request failed")
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("read body failed")
		return nil, &NetworkError{Op: op, Err: err}
	}
	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": time.Since(start)})
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("unexpected status")
		return nil, &HTTPError{Status: resp.StatusCode}
	}
	log.Debug("request done")
	return body, nil
}
