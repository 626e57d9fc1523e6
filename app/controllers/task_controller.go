package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/Winnie3315/todo-next-by-winnie/app/models"
	"github.com/Winnie3315/todo-next-by-winnie/app/services"
)

// EmptyTaskNotice is shown to the user when a blank task is submitted.
const EmptyTaskNotice = "Please enter a task."

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Service *services.TaskService
	logger  *log.Logger
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService, logger *log.Logger) *TaskController {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &TaskController{Service: service, logger: logger}
}

type createTaskRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetTasks handles GET /tasks. The query parameters status, q, sort and
// order select the projection.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.writeJSON(w, http.StatusOK, c.Service.Project(q))
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return
	}

	task, err := c.Service.Add(req.Text)
	if errors.Is(err, models.ErrValidation) {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: EmptyTaskNotice})
		return
	}
	if err != nil {
		c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.writeJSON(w, http.StatusCreated, task)
}

// GetTaskByID handles GET /tasks/{taskID}.
func (c *TaskController) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.taskID(w, r)
	if !ok {
		return
	}
	task, found := c.Service.Get(id)
	if !found {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Task not found"})
		return
	}
	c.writeJSON(w, http.StatusOK, task)
}

// ToggleTask handles PUT /tasks/{taskID}/toggle and returns the whole
// collection. Unknown ids return it unchanged.
func (c *TaskController) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := c.taskID(w, r)
	if !ok {
		return
	}
	c.writeJSON(w, http.StatusOK, c.Service.Toggle(id))
}

// DeleteTask handles DELETE /tasks/{taskID} and returns the remaining tasks.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := c.taskID(w, r)
	if !ok {
		return
	}
	c.writeJSON(w, http.StatusOK, c.Service.Remove(id))
}

// Healthz handles GET /healthz.
func (c *TaskController) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (c *TaskController) taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["taskID"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid task id"})
		return 0, false
	}
	return id, true
}

func (c *TaskController) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.logger.WithError(err).Warn("encode response")
	}
}

func parseQuery(r *http.Request) (models.Query, error) {
	q := models.DefaultQuery()
	values := r.URL.Query()
	q.Text = values.Get("q")

	var err error
	if v := values.Get("status"); v != "" {
		if q.Status, err = models.ParseStatusFilter(v); err != nil {
			return models.Query{}, err
		}
	}
	if v := values.Get("sort"); v != "" {
		if q.SortKey, err = models.ParseSortKey(v); err != nil {
			return models.Query{}, err
		}
	}
	if v := values.Get("order"); v != "" {
		if q.Direction, err = models.ParseSortDirection(v); err != nil {
			return models.Query{}, err
		}
	}
	return q, nil
}
