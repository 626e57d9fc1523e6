package services

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/Winnie3315/todo-next-by-winnie/app/models"
)

// TaskService holds the current task snapshot for the lifetime of the
// process. Every mutation swaps in a new snapshot; snapshots handed out are
// never written to afterwards.
type TaskService struct {
	mu     sync.RWMutex
	tasks  models.Collection
	ids    IDSource
	logger *log.Logger
}

// NewTaskService creates an empty TaskService. A nil ids uses a fresh Sequence.
func NewTaskService(ids IDSource, logger *log.Logger) *TaskService {
	if ids == nil {
		ids = &Sequence{}
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &TaskService{tasks: models.Collection{}, ids: ids, logger: logger}
}

// Add creates a task from text and appends it. Empty or whitespace-only
// text returns models.ErrValidation and leaves the collection as it was.
func (s *TaskService) Add(text string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := NewTask(text, s.ids)
	if err != nil {
		s.logger.WithField("op", "add").Debug("rejected empty task")
		return models.Task{}, err
	}
	s.tasks = Append(s.tasks, task)
	s.logger.WithFields(log.Fields{"op": "add", "task_id": task.ID}).Info("task added")
	return task, nil
}

// Toggle flips the done flag of task id and returns the new collection.
func (s *TaskService) Toggle(id int64) models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks.IndexOf(id) < 0 {
		s.logger.WithFields(log.Fields{"op": "toggle", "task_id": id}).Debug("unknown task")
	}
	s.tasks = Toggle(s.tasks, id)
	return s.tasks.Clone()
}

// Remove deletes task id and returns the new collection.
func (s *TaskService) Remove(id int64) models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.tasks)
	s.tasks = Remove(s.tasks, id)
	if len(s.tasks) < before {
		s.logger.WithFields(log.Fields{"op": "remove", "task_id": id}).Info("task removed")
	}
	return s.tasks.Clone()
}

// Get returns task id, if present.
func (s *TaskService) Get(id int64) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.tasks.IndexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return models.Task{}, false
}

// Snapshot returns a copy of the current collection.
func (s *TaskService) Snapshot() models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.Clone()
}

// Project runs Project over the current snapshot.
func (s *TaskService) Project(q models.Query) []models.Task {
	return Project(s.Snapshot(), q)
}
