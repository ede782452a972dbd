package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/repository"
)

// ErrEmptyMessage is returned when a peer message is blank after trimming.
var ErrEmptyMessage = errors.New("message cannot be empty")

// PeerChatView is the peer support page state for one user.
type PeerChatView struct {
	Waiting  bool                     `json:"waiting"`
	Session  *models.PeerChatSession  `json:"session,omitempty"`
	PeerID   uint                     `json:"peer_id,omitempty"`
	Messages []models.PeerChatMessage `json:"messages,omitempty"`
}

// PeerService pairs students for anonymous peer chat and relays messages.
type PeerService interface {
	// JoinOrWait reuses the user's active session or pairs them with the
	// unpaired candidate with the lowest user id. With no candidate
	// available the view reports waiting.
	JoinOrWait(userID uint) (*PeerChatView, error)
	// SendMessage posts a message into the user's active session. It fails
	// when the user has no active session.
	SendMessage(userID uint, text string) error
}

type peerService struct {
	peers repository.PeerChatRepository
	users repository.UserRepository
}

// NewPeerService creates a new instance of PeerService.
func NewPeerService(peers repository.PeerChatRepository, users repository.UserRepository) PeerService {
	return &peerService{peers: peers, users: users}
}

func (s *peerService) JoinOrWait(userID uint) (*PeerChatView, error) {
	sess, err := s.peers.GetActiveSessionForUser(userID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		partner, err := s.findPartner(userID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			log.Printf("INFO: [PeerService] No partner available for user %d; waiting.", userID)
			return &PeerChatView{Waiting: true}, nil
		}
		sess = &models.PeerChatSession{User1ID: userID, User2ID: partner.ID}
		if err := s.peers.CreateSession(sess); err != nil {
			return nil, err
		}
		log.Printf("INFO: [PeerService] Paired user %d with user %d (session %d).", userID, partner.ID, sess.ID)
	}

	messages, err := s.peers.ListMessages(sess.ID)
	if err != nil {
		return nil, err
	}
	return &PeerChatView{
		Session:  sess,
		PeerID:   sess.PeerFor(userID),
		Messages: messages,
	}, nil
}

// findPartner picks the unpaired non-admin user with the lowest id, making
// the matching deterministic regardless of store iteration order.
func (s *peerService) findPartner(userID uint) (*models.User, error) {
	candidates, err := s.users.ListRegularUsers()
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		c := &candidates[i]
		if c.ID == userID {
			continue
		}
		busy, err := s.peers.HasActiveSession(c.ID)
		if err != nil {
			return nil, err
		}
		if !busy {
			return c, nil
		}
	}
	return nil, nil
}

func (s *peerService) SendMessage(userID uint, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}
	sess, err := s.peers.GetActiveSessionForUser(userID)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("no active peer session for user %d", userID)
	}
	return s.peers.SaveMessage(&models.PeerChatMessage{
		SessionID: sess.ID,
		SenderID:  userID,
		Message:   text,
	})
}
