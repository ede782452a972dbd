package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ManasaYK17/MindPulse-AI/session"
)

// ChatTurn is one exchange in a session-held conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "ai"
	Message string `json:"message"`
}

// ChatService backs the single-turn chatbot and the "future self"
// conversation, both thin proxies over the AI assist side-channel.
type ChatService interface {
	// Chat answers a single message with no memory between turns.
	Chat(ctx context.Context, message string) string
	// FutureSelf keeps the conversation history in session storage and
	// rebuilds the prompt from it on every turn.
	FutureSelf(ctx context.Context, userID uint, message string) ([]ChatTurn, error)
}

type chatService struct {
	assist   AssistService
	sessions session.Store
}

// NewChatService creates a new instance of ChatService.
func NewChatService(assist AssistService, sessions session.Store) ChatService {
	return &chatService{assist: assist, sessions: sessions}
}

func futureSelfKey(userID uint) string { return fmt.Sprintf("futureself:%d", userID) }

func (s *chatService) Chat(ctx context.Context, message string) string {
	return s.assist.Ask(ctx, message, "assistant")
}

func (s *chatService) FutureSelf(ctx context.Context, userID uint, message string) ([]ChatTurn, error) {
	var conversation []ChatTurn
	if _, err := s.sessions.Get(ctx, futureSelfKey(userID), &conversation); err != nil {
		return nil, err
	}
	conversation = append(conversation, ChatTurn{Role: "user", Message: message})

	var prompt strings.Builder
	prompt.WriteString("You are the user, but 10 years older. Motivate and respond as their future self. Conversation history:\n")
	for _, turn := range conversation {
		if turn.Role == "user" {
			fmt.Fprintf(&prompt, "User: %s\n", turn.Message)
		} else {
			fmt.Fprintf(&prompt, "Future Self: %s\n", turn.Message)
		}
	}
	prompt.WriteString("Future Self:")

	reply := s.assist.Ask(ctx, prompt.String(), "future self")
	conversation = append(conversation, ChatTurn{Role: "ai", Message: reply})

	if err := s.sessions.Set(ctx, futureSelfKey(userID), conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}
