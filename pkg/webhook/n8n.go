package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-procurement-be/pkg/chatflow"
)

// DefaultTimeout is the client-side abort applied to every upstream call.
const DefaultTimeout = 60 * time.Second

// Sentinel errors classify upstream failures so controllers can map them
// to 503 / 504 / 502 respectively.
var (
	ErrUpstream    = errors.New("workflow webhook returned an error")
	ErrTimeout     = errors.New("workflow webhook timed out")
	ErrUnreachable = errors.New("workflow webhook is unreachable")
)

// N8NClient talks to the external n8n workflow webhook. The webhook is an
// opaque collaborator: we POST JSON and read back the assistant text.
type N8NClient struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// Ensure the client satisfies the chatflow responder contract.
var _ chatflow.Responder = &N8NClient{}

func NewN8NClient(url string) *N8NClient {
	return &N8NClient{
		URL:     url,
		Timeout: DefaultTimeout,
		Client:  &http.Client{},
	}
}

// Forward posts an arbitrary JSON body to the webhook and returns the raw
// response body. Used by the passthrough proxy route.
func (c *N8NClient) Forward(ctx context.Context, body []byte) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, 0, fmt.Errorf("%w: no response within %s", ErrTimeout, c.Timeout)
		}
		return nil, 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return respBody, resp.StatusCode, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	return respBody, resp.StatusCode, nil
}

// --- chat payload shapes ---

type chatRequest struct {
	SessionID string        `json:"session_id"`
	Message   string        `json:"message"`
	History   []chatMessage `json:"history"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse covers the shapes n8n workflows commonly reply with:
// {"output": "..."}, {"response": "..."} or {"text": "..."}.
type chatResponse struct {
	Output   string `json:"output"`
	Response string `json:"response"`
	Text     string `json:"text"`
}

func (r chatResponse) value() string {
	switch {
	case r.Output != "":
		return r.Output
	case r.Response != "":
		return r.Response
	default:
		return r.Text
	}
}

// Respond implements chatflow.Responder: one non-streaming request per
// turn, the last user message as the prompt and the rest as history.
func (c *N8NClient) Respond(ctx context.Context, sessionID string, history []chatflow.Message) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("empty history")
	}

	payload := chatRequest{
		SessionID: sessionID,
		Message:   history[len(history)-1].Content,
		History:   make([]chatMessage, 0, len(history)-1),
	}
	for _, m := range history[:len(history)-1] {
		payload.History = append(payload.History, chatMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	respBody, _, err := c.Forward(ctx, body)
	if err != nil {
		return "", err
	}

	return parseReply(respBody)
}

// parseReply accepts both a single object and the array wrapper n8n
// produces when the workflow ends with multiple items.
func parseReply(body []byte) (string, error) {
	var single chatResponse
	if err := json.Unmarshal(body, &single); err == nil {
		if v := single.value(); v != "" {
			return v, nil
		}
	}

	var many []chatResponse
	if err := json.Unmarshal(body, &many); err == nil && len(many) > 0 {
		if v := many[0].value(); v != "" {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: unrecognized response shape", ErrUpstream)
}
