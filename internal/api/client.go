package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/abhisek/intervet/internal/assessment"
)

// Gateway is the set of backend calls the assessment flow depends on.
type Gateway interface {
	// ParseResume uploads a PDF and returns the extracted profile.
	ParseResume(ctx context.Context, filename string, pdf io.Reader) (*assessment.ParsedProfile, error)

	// RegisterCandidate creates or updates the candidate record.
	RegisterCandidate(ctx context.Context, req RegisterCandidateRequest) (*RegisterCandidateResponse, error)

	// SaveLevels persists the chosen difficulty levels.
	SaveLevels(ctx context.Context, req SaveLevelsRequest) (*SaveLevelsResponse, error)

	// SelectQuestions assembles the served test.
	SelectQuestions(ctx context.Context, req SelectQuestionsRequest) (*assessment.QuestionSet, error)

	// GenerateReport turns the scored report into narrative markdown.
	GenerateReport(ctx context.Context, req GenerateReportRequest) (*GenerateReportResponse, error)
}

// StatusError is a non-2xx backend response. Message is the response
// body text verbatim, falling back to the HTTP status text when the
// body is empty.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Client is the HTTP implementation of Gateway. No authentication, no
// retry, no per-call timeout; cancellation comes from the caller's
// context.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) ParseResume(ctx context.Context, filename string, pdf io.Reader) (*assessment.ParsedProfile, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("pdf", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, pdf); err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var profile assessment.ParsedProfile
	if err := c.do(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) RegisterCandidate(ctx context.Context, req RegisterCandidateRequest) (*RegisterCandidateResponse, error) {
	var resp RegisterCandidateResponse
	if err := c.postJSON(ctx, "/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SaveLevels(ctx context.Context, req SaveLevelsRequest) (*SaveLevelsResponse, error) {
	var resp SaveLevelsResponse
	if err := c.postJSON(ctx, "/responses", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SelectQuestions(ctx context.Context, req SelectQuestionsRequest) (*assessment.QuestionSet, error) {
	var set assessment.QuestionSet
	if err := c.postJSON(ctx, "/select_questions", req, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *Client) GenerateReport(ctx context.Context, req GenerateReportRequest) (*GenerateReportResponse, error) {
	var resp GenerateReportResponse
	if err := c.postJSON(ctx, "/generate_report", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks backend liveness. Not part of the flow Gateway; used
// by the health command.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	var resp HealthResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := ""
		if body, readErr := io.ReadAll(resp.Body); readErr == nil {
			msg = strings.TrimSpace(string(body))
		}
		if msg == "" {
			msg = resp.Status
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
