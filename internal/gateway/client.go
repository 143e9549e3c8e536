// Package gateway implements the client for the external messaging
// gateway. The gateway owns message delivery, inline keyboards, and
// command routing; this service only hands it formatted text plus an
// optional button set per recipient.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
)

// Button is one choice the gateway renders under a message.
type Button struct {
	ID    string `json:"id"`    // Opaque identifier the gateway reports back on press
	Label string `json:"label"` // Text shown to the user
}

// TokenGenerator signs outgoing requests towards the gateway.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// Client delivers messages through the gateway's HTTP send endpoint.
// Every delivery is a single attempt; retries are the caller's policy
// and no caller retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokenGen   TokenGenerator
}

// New creates a gateway client.
func New(baseURL string, tokenGen TokenGenerator) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokenGen:   tokenGen,
	}
}

type sendRequest struct {
	UserID  int64    `json:"user_id"`
	Text    string   `json:"text"`
	Buttons []Button `json:"buttons,omitempty"`
}

// Send delivers text plus an optional button set to a single user.
func (c *Client) Send(ctx context.Context, userID int64, text string, buttons []Button) error {
	body, err := json.Marshal(sendRequest{
		UserID:  userID,
		Text:    text,
		Buttons: buttons,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokenGen.Generate(ctx, userID)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("gateway send failed", "user_id", userID, "error", err)
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("gateway send returned status %d", resp.StatusCode)
		logger.Log.Errorw("gateway send rejected", "user_id", userID, "status", resp.StatusCode)
		return err
	}

	return nil
}
