package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm"
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Extract implements llm.Extractor over text-only chat/completions. A reply
// that fails to parse gets exactly one repair round-trip; if the repair also
// fails the chunk contributes nothing and the error says so.
func (c *Client) Extract(ctx context.Context, chunk string) (*llm.EntitySet, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"chunk_chars", len(chunk),
	)

	set, err := c.callWithRepair(ctx, rid, "llm.extract", []message{
		{Role: "system", Content: llm.ExtractionSystemPrompt()},
		{Role: "user", Content: chunk},
	}, llm.ParseReply)
	if err != nil {
		return nil, err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"fields", len(set.Fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return set, nil
}

// Finalize implements llm.Finalizer. The parsed reply is additionally checked
// against the metadata JSON schema before it is accepted.
func (c *Client) Finalize(ctx context.Context, merged *llm.EntitySet) (*llm.EntitySet, error) {
	rid := uuid.New().String()
	start := time.Now()

	user, err := llm.FinalizationUserContent(merged)
	if err != nil {
		return nil, fmt.Errorf("render candidates: %w", err)
	}

	c.log.Info("llm.finalize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"candidates_chars", len(user),
	)

	set, err := c.callWithRepair(ctx, rid, "llm.finalize", []message{
		{Role: "system", Content: llm.FinalizationSystemPrompt()},
		{Role: "user", Content: user},
	}, parseFinal)
	if err != nil {
		return nil, err
	}

	c.log.Info("llm.finalize.ok",
		"req_id", rid,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return set, nil
}

func parseFinal(reply string) (*llm.EntitySet, error) {
	set, err := llm.ParseReply(reply)
	if err != nil {
		return nil, err
	}
	raw, err := set.MarshalMetadata()
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateMetadata(raw); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrMalformedModelOutput)
	}
	return set, nil
}

// callWithRepair performs the chat call and, on a parse failure, exactly one
// repair round-trip carrying the invalid reply back to the model.
func (c *Client) callWithRepair(ctx context.Context, rid, op string, msgs []message, parse func(string) (*llm.EntitySet, error)) (*llm.EntitySet, error) {
	content, err := c.chat(ctx, msgs)
	if err != nil {
		c.log.Error(op+".http_error", "req_id", rid, "error", err)
		return nil, err
	}

	set, parseErr := parse(content)
	if parseErr == nil {
		return set, nil
	}

	c.log.Warn(op+".malformed_reply",
		"req_id", rid,
		"error", parseErr,
		"reply_chars", len(content),
	)

	repairMsgs := append(msgs,
		message{Role: "assistant", Content: content},
		message{Role: "user", Content: llm.RepairInstruction},
	)
	repaired, err := c.chat(ctx, repairMsgs)
	if err != nil {
		c.log.Error(op+".repair_http_error", "req_id", rid, "error", err)
		return nil, err
	}

	set, parseErr = parse(repaired)
	if parseErr != nil {
		c.log.Error(op+".repair_failed", "req_id", rid, "error", parseErr)
		return nil, fmt.Errorf("repair attempt: %w", parseErr)
	}

	c.log.Info(op+".repaired", "req_id", rid)
	return set, nil
}

func (c *Client) chat(ctx context.Context, msgs []message) (string, error) {
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages":    msgs,
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode backend response: %v: %w", err, common.ErrBackendUnavailable)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in backend response: %w", common.ErrBackendUnavailable)
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend http error: %v: %w", err, common.ErrBackendUnavailable)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("backend response body close error", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("backend status %d: %s: %w", resp.StatusCode, buf.String(), common.ErrBackendUnavailable)
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}
