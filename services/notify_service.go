package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// NotifyService sends WhatsApp messages through the configured gateway.
// Callers in the booking flow treat it as fire-and-forget: failures are
// logged, never surfaced to the user.
type NotifyService interface {
	SendMessage(ctx context.Context, to string, text string) error
}

type notifyService struct {
	httpClient *http.Client
	baseURL    string
	token      string
	sender     string
}

// NewNotifyService creates a NotifyService for the given WhatsApp gateway.
func NewNotifyService(baseURL, token, sender string) NotifyService {
	return &notifyService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		token:      token,
		sender:     sender,
	}
}

func (s *notifyService) SendMessage(ctx context.Context, to string, text string) error {
	if s.baseURL == "" || s.token == "" {
		return fmt.Errorf("whatsapp gateway not configured")
	}
	payload := map[string]string{
		"from": s.sender,
		"to":   to,
		"body": text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode whatsapp message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message to %s: %w", to, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	log.Printf("INFO: [NotifyService] WhatsApp message sent to %s.", to)
	return nil
}
