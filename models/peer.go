package models

import (
	"time"
)

// PeerChatSession pairs two students for anonymous peer support.
type PeerChatSession struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	User1ID   uint      `json:"user1_id" gorm:"index;not null"`
	User2ID   uint      `json:"user2_id" gorm:"index;not null"`
	Active    bool      `json:"active" gorm:"index;not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// PeerFor returns the other participant of the session.
func (s *PeerChatSession) PeerFor(userID uint) uint {
	if s.User1ID == userID {
		return s.User2ID
	}
	return s.User1ID
}

// PeerChatMessage is one message inside a peer chat session.
type PeerChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID uint      `json:"session_id" gorm:"index;not null"`
	SenderID  uint      `json:"sender_id" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
}
