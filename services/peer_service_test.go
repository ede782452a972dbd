package services

import (
	"testing"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPeerChatRepository struct {
	mock.Mock
}

func (m *MockPeerChatRepository) GetActiveSessionForUser(userID uint) (*models.PeerChatSession, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PeerChatSession), args.Error(1)
}

func (m *MockPeerChatRepository) HasActiveSession(userID uint) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPeerChatRepository) CreateSession(session *models.PeerChatSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockPeerChatRepository) SaveMessage(message *models.PeerChatMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockPeerChatRepository) ListMessages(sessionID uint) ([]models.PeerChatMessage, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PeerChatMessage), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListRegularUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestPeerService_JoinOrWait_PairsLowestID(t *testing.T) {
	peers := new(MockPeerChatRepository)
	users := new(MockUserRepository)
	service := NewPeerService(peers, users)

	peers.On("GetActiveSessionForUser", uint(7)).Return(nil, nil)
	users.On("ListRegularUsers").Return([]models.User{
		{ID: 2, Username: "ana"},
		{ID: 5, Username: "ben"},
		{ID: 7, Username: "me"},
	}, nil)
	// User 2 is already paired; user 5 is free.
	peers.On("HasActiveSession", uint(2)).Return(true, nil)
	peers.On("HasActiveSession", uint(5)).Return(false, nil)
	peers.On("CreateSession", mock.AnythingOfType("*models.PeerChatSession")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.PeerChatSession).ID = 11
	}).Return(nil)
	peers.On("ListMessages", uint(11)).Return([]models.PeerChatMessage{}, nil)

	view, err := service.JoinOrWait(7)
	assert.NoError(t, err)
	assert.False(t, view.Waiting)
	assert.Equal(t, uint(5), view.PeerID)
	peers.AssertExpectations(t)
}

func TestPeerService_JoinOrWait_NoCandidate(t *testing.T) {
	peers := new(MockPeerChatRepository)
	users := new(MockUserRepository)
	service := NewPeerService(peers, users)

	peers.On("GetActiveSessionForUser", uint(3)).Return(nil, nil)
	users.On("ListRegularUsers").Return([]models.User{{ID: 3, Username: "me"}}, nil)

	view, err := service.JoinOrWait(3)
	assert.NoError(t, err)
	assert.True(t, view.Waiting)
	assert.Nil(t, view.Session)
	peers.AssertNotCalled(t, "CreateSession", mock.Anything)
}

func TestPeerService_JoinOrWait_ReusesActiveSession(t *testing.T) {
	peers := new(MockPeerChatRepository)
	users := new(MockUserRepository)
	service := NewPeerService(peers, users)

	sess := &models.PeerChatSession{ID: 4, User1ID: 1, User2ID: 9, Active: true}
	peers.On("GetActiveSessionForUser", uint(9)).Return(sess, nil)
	peers.On("ListMessages", uint(4)).Return([]models.PeerChatMessage{
		{SessionID: 4, SenderID: 1, Message: "hi"},
	}, nil)

	view, err := service.JoinOrWait(9)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), view.PeerID)
	assert.Len(t, view.Messages, 1)
	users.AssertNotCalled(t, "ListRegularUsers")
}

func TestPeerService_SendMessage(t *testing.T) {
	peers := new(MockPeerChatRepository)
	users := new(MockUserRepository)
	service := NewPeerService(peers, users)

	assert.ErrorIs(t, service.SendMessage(1, "   "), ErrEmptyMessage)

	sess := &models.PeerChatSession{ID: 8, User1ID: 1, User2ID: 2, Active: true}
	peers.On("GetActiveSessionForUser", uint(1)).Return(sess, nil)
	peers.On("SaveMessage", mock.MatchedBy(func(msg *models.PeerChatMessage) bool {
		return msg.SessionID == 8 && msg.SenderID == 1 && msg.Message == "hello"
	})).Return(nil)

	assert.NoError(t, service.SendMessage(1, "  hello  "))
	peers.AssertExpectations(t)
}

func TestPeerService_SendMessage_NoSession(t *testing.T) {
	peers := new(MockPeerChatRepository)
	users := new(MockUserRepository)
	service := NewPeerService(peers, users)

	peers.On("GetActiveSessionForUser", uint(6)).Return(nil, nil)
	err := service.SendMessage(6, "hello?")
	assert.Error(t, err)
}
