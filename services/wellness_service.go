package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/repository"
)

// ErrTaskNotFound is returned when a task does not exist or belongs to
// another user.
var ErrTaskNotFound = errors.New("task not found")

// WellnessService hands out daily wellness tasks from the ordered template
// sequence and tracks completion.
type WellnessService interface {
	// TodayTask assigns the user's next template task for today when not
	// already assigned, and returns today's task. It returns (nil, nil)
	// when the template sequence is exhausted and nothing was assigned
	// today.
	TodayTask(userID uint) (*models.WellnessTask, error)
	ListTasks(userID uint) ([]models.WellnessTask, error)
	MarkCompleted(taskID uint, userID uint) (*models.WellnessTask, error)
	// AssignTask lets an admin assign an ad-hoc task for a given day.
	AssignTask(task string, assignedBy uint, assignedTo uint, day time.Time) (*models.WellnessTask, error)
}

type wellnessService struct {
	repo repository.WellnessRepository
}

// NewWellnessService creates a new instance of WellnessService.
func NewWellnessService(repo repository.WellnessRepository) WellnessService {
	return &wellnessService{repo: repo}
}

func (s *wellnessService) TodayTask(userID uint) (*models.WellnessTask, error) {
	today := time.Now()

	assigned, err := s.repo.CountAssignedTasks(userID)
	if err != nil {
		return nil, err
	}
	template, err := s.repo.NextTemplate(int(assigned))
	if err != nil {
		return nil, err
	}
	if template != nil {
		exists, err := s.repo.TaskExistsForDay(userID, today, template.Task)
		if err != nil {
			return nil, err
		}
		if !exists {
			task := &models.WellnessTask{
				Task:         template.Task,
				AssignedToID: userID,
				Date:         today,
			}
			if err := s.repo.CreateTask(task); err != nil {
				return nil, err
			}
			log.Printf("INFO: [WellnessService] Assigned template task %d to user %d.", template.ID, userID)
		}
	}

	return s.repo.TaskForDay(userID, today)
}

func (s *wellnessService) ListTasks(userID uint) ([]models.WellnessTask, error) {
	return s.repo.ListTasksByUser(userID)
}

func (s *wellnessService) MarkCompleted(taskID uint, userID uint) (*models.WellnessTask, error) {
	task, err := s.repo.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.AssignedToID != userID {
		return nil, ErrTaskNotFound
	}
	task.Completed = true
	if err := s.repo.UpdateTask(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *wellnessService) AssignTask(taskText string, assignedBy uint, assignedTo uint, day time.Time) (*models.WellnessTask, error) {
	if taskText == "" {
		return nil, fmt.Errorf("task text cannot be empty")
	}
	task := &models.WellnessTask{
		Task:         taskText,
		AssignedByID: &assignedBy,
		AssignedToID: assignedTo,
		Date:         day,
	}
	if err := s.repo.CreateTask(task); err != nil {
		return nil, err
	}
	return task, nil
}
