package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MeetingService creates video meetings for booked counseling sessions.
type MeetingService interface {
	// CreateMeeting returns the join URL of the created meeting.
	CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int) (string, error)
}

type meetingService struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewMeetingService creates a MeetingService for the Zoom API.
func NewMeetingService(baseURL, token string) MeetingService {
	return &meetingService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}
}

type createMeetingRequest struct {
	Topic     string `json:"topic"`
	Type      int    `json:"type"` // 2 = scheduled meeting
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
}

type createMeetingResponse struct {
	JoinURL string `json:"join_url"`
}

func (s *meetingService) CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int) (string, error) {
	if s.baseURL == "" || s.token == "" {
		return "", fmt.Errorf("zoom api not configured")
	}
	body, err := json.Marshal(createMeetingRequest{
		Topic:     topic,
		Type:      2,
		StartTime: start.UTC().Format(time.RFC3339),
		Duration:  durationMinutes,
	})
	if err != nil {
		return "", fmt.Errorf("encode meeting request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build meeting request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create meeting: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("zoom api returned status %d", resp.StatusCode)
	}

	var out createMeetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode meeting response: %w", err)
	}
	if out.JoinURL == "" {
		return "", fmt.Errorf("zoom api returned no join_url")
	}
	return out.JoinURL, nil
}
