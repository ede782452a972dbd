package services

import (
	"testing"
	"time"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWellnessRepository struct {
	mock.Mock
}

func (m *MockWellnessRepository) CountAssignedTasks(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWellnessRepository) NextTemplate(offset int) (*models.TemplateWellnessTask, error) {
	args := m.Called(offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TemplateWellnessTask), args.Error(1)
}

func (m *MockWellnessRepository) TaskExistsForDay(userID uint, day time.Time, task string) (bool, error) {
	args := m.Called(userID, day, task)
	return args.Bool(0), args.Error(1)
}

func (m *MockWellnessRepository) CreateTask(task *models.WellnessTask) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockWellnessRepository) TaskForDay(userID uint, day time.Time) (*models.WellnessTask, error) {
	args := m.Called(userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WellnessTask), args.Error(1)
}

func (m *MockWellnessRepository) ListTasksByUser(userID uint) ([]models.WellnessTask, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WellnessTask), args.Error(1)
}

func (m *MockWellnessRepository) GetTask(taskID uint) (*models.WellnessTask, error) {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WellnessTask), args.Error(1)
}

func (m *MockWellnessRepository) UpdateTask(task *models.WellnessTask) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockWellnessRepository) CreateTemplate(template *models.TemplateWellnessTask) error {
	args := m.Called(template)
	return args.Error(0)
}

func TestWellnessService_TodayTask_AssignsNextTemplate(t *testing.T) {
	repo := new(MockWellnessRepository)
	service := NewWellnessService(repo)

	template := &models.TemplateWellnessTask{ID: 3, Task: "Take a 10 minute walk.", Order: 3}
	assigned := &models.WellnessTask{ID: 20, Task: template.Task, AssignedToID: 1}

	repo.On("CountAssignedTasks", uint(1)).Return(int64(2), nil)
	repo.On("NextTemplate", 2).Return(template, nil)
	repo.On("TaskExistsForDay", uint(1), mock.AnythingOfType("time.Time"), template.Task).Return(false, nil)
	repo.On("CreateTask", mock.MatchedBy(func(task *models.WellnessTask) bool {
		return task.Task == template.Task && task.AssignedToID == uint(1) && task.AssignedByID == nil
	})).Return(nil)
	repo.On("TaskForDay", uint(1), mock.AnythingOfType("time.Time")).Return(assigned, nil)

	task, err := service.TodayTask(1)
	assert.NoError(t, err)
	assert.Equal(t, assigned, task)
	repo.AssertExpectations(t)
}

func TestWellnessService_TodayTask_AlreadyAssigned(t *testing.T) {
	repo := new(MockWellnessRepository)
	service := NewWellnessService(repo)

	template := &models.TemplateWellnessTask{ID: 1, Task: "Write in your journal.", Order: 1}
	existing := &models.WellnessTask{ID: 5, Task: template.Task, AssignedToID: 2}

	repo.On("CountAssignedTasks", uint(2)).Return(int64(0), nil)
	repo.On("NextTemplate", 0).Return(template, nil)
	repo.On("TaskExistsForDay", uint(2), mock.AnythingOfType("time.Time"), template.Task).Return(true, nil)
	repo.On("TaskForDay", uint(2), mock.AnythingOfType("time.Time")).Return(existing, nil)

	task, err := service.TodayTask(2)
	assert.NoError(t, err)
	assert.Equal(t, existing, task)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything)
}

func TestWellnessService_TodayTask_TemplatesExhausted(t *testing.T) {
	repo := new(MockWellnessRepository)
	service := NewWellnessService(repo)

	repo.On("CountAssignedTasks", uint(3)).Return(int64(5), nil)
	repo.On("NextTemplate", 5).Return(nil, nil)
	repo.On("TaskForDay", uint(3), mock.AnythingOfType("time.Time")).Return(nil, nil)

	task, err := service.TodayTask(3)
	assert.NoError(t, err)
	assert.Nil(t, task)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything)
}

func TestWellnessService_MarkCompleted(t *testing.T) {
	repo := new(MockWellnessRepository)
	service := NewWellnessService(repo)

	owned := &models.WellnessTask{ID: 9, Task: "Stretch.", AssignedToID: 4}
	repo.On("GetTask", uint(9)).Return(owned, nil)
	repo.On("UpdateTask", mock.MatchedBy(func(task *models.WellnessTask) bool {
		return task.ID == 9 && task.Completed
	})).Return(nil)

	task, err := service.MarkCompleted(9, 4)
	assert.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestWellnessService_MarkCompleted_WrongUser(t *testing.T) {
	repo := new(MockWellnessRepository)
	service := NewWellnessService(repo)

	repo.On("GetTask", uint(9)).Return(&models.WellnessTask{ID: 9, AssignedToID: 4}, nil)
	_, err := service.MarkCompleted(9, 5)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	repo.On("GetTask", uint(99)).Return(nil, nil)
	_, err = service.MarkCompleted(99, 4)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	repo.AssertNotCalled(t, "UpdateTask", mock.Anything)
}

func TestWellnessService_AssignTask(t *testing.T) {
	repo := new(MockWellnessRepository)
	service := NewWellnessService(repo)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo.On("CreateTask", mock.MatchedBy(func(task *models.WellnessTask) bool {
		return task.Task == "Talk to a friend." &&
			task.AssignedByID != nil && *task.AssignedByID == uint(1) &&
			task.AssignedToID == uint(6)
	})).Return(nil)

	task, err := service.AssignTask("Talk to a friend.", 1, 6, day)
	assert.NoError(t, err)
	assert.Equal(t, day, task.Date)

	_, err = service.AssignTask("", 1, 6, day)
	assert.Error(t, err)
}
