package repository

import (
	"fmt"
	"time"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"gorm.io/gorm"
)

// PeerChatRepository is the store for peer support sessions and messages.
type PeerChatRepository interface {
	// GetActiveSessionForUser returns the user's active session, or (nil, nil).
	GetActiveSessionForUser(userID uint) (*models.PeerChatSession, error)
	// HasActiveSession reports whether the user participates in any active session.
	HasActiveSession(userID uint) (bool, error)
	CreateSession(session *models.PeerChatSession) error
	SaveMessage(message *models.PeerChatMessage) error
	// ListMessages returns the session's messages ordered by timestamp.
	ListMessages(sessionID uint) ([]models.PeerChatMessage, error)
}

type peerChatRepository struct {
	db *gorm.DB
}

// NewPeerChatRepository creates a new instance of PeerChatRepository.
func NewPeerChatRepository(db *gorm.DB) PeerChatRepository {
	return &peerChatRepository{db: db}
}

func (r *peerChatRepository) GetActiveSessionForUser(userID uint) (*models.PeerChatSession, error) {
	var sessions []models.PeerChatSession
	err := r.db.Where("(user1_id = ? OR user2_id = ?) AND active = ?", userID, userID, true).
		Limit(1).Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active peer session for user %d: %w", userID, err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

func (r *peerChatRepository) HasActiveSession(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PeerChatSession{}).
		Where("(user1_id = ? OR user2_id = ?) AND active = ?", userID, userID, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count active peer sessions for user %d: %w", userID, err)
	}
	return count > 0, nil
}

func (r *peerChatRepository) CreateSession(session *models.PeerChatSession) error {
	session.Active = true
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create peer session: %w", err)
	}
	return nil
}

func (r *peerChatRepository) SaveMessage(message *models.PeerChatMessage) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to save peer message: %w", err)
	}
	return nil
}

func (r *peerChatRepository) ListMessages(sessionID uint) ([]models.PeerChatMessage, error) {
	var messages []models.PeerChatMessage
	if err := r.db.Where("session_id = ?", sessionID).Order("timestamp").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages for session %d: %w", sessionID, err)
	}
	return messages, nil
}
