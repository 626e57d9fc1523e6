package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/Winnie3315/todo-next-by-winnie/app/controllers"
	"github.com/Winnie3315/todo-next-by-winnie/app/models"
	"github.com/Winnie3315/todo-next-by-winnie/app/services"
)

func newRouter(t *testing.T) (*mux.Router, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	svc := services.NewTaskService(nil, logger)
	router := mux.NewRouter()
	RegisterRoutes(router, controllers.NewTaskController(svc, logger), logger)
	return router, hook
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decodeTasks(t *testing.T, rec *httptest.ResponseRecorder) []models.Task {
	t.Helper()
	var tasks []models.Task
	if err := json.NewDecoder(rec.Body).Decode(&tasks); err != nil {
		t.Fatalf("decode tasks: %v", err)
	}
	return tasks
}

func create(t *testing.T, h http.Handler, text string) models.Task {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/tasks", `{"text":"`+text+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create %q: expected 201 got %d: %s", text, rec.Code, rec.Body.String())
	}
	var task models.Task
	if err := json.NewDecoder(rec.Body).Decode(&task); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	return task
}

func TestCreateAndListTasks(t *testing.T) {
	router, _ := newRouter(t)
	milk := create(t, router, "buy milk")
	if milk.Done || milk.Text != "buy milk" {
		t.Fatalf("unexpected task %+v", milk)
	}
	create(t, router, "clean")

	rec := do(t, router, http.MethodGet, "/tasks?order=desc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	tasks := decodeTasks(t, rec)
	if len(tasks) != 2 || tasks[0].Text != "clean" || tasks[1].Text != "buy milk" {
		t.Fatalf("unexpected tasks %+v", tasks)
	}
}

func TestCreateBlankTaskReturnsNotice(t *testing.T) {
	router, _ := newRouter(t)
	for _, body := range []string{`{"text":""}`, `{"text":"   "}`, `{}`} {
		rec := do(t, router, http.MethodPost, "/tasks", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), controllers.EmptyTaskNotice) {
			t.Fatalf("expected notice got %s", rec.Body.String())
		}
	}
	if tasks := decodeTasks(t, do(t, router, http.MethodGet, "/tasks", "")); len(tasks) != 0 {
		t.Fatalf("expected no tasks got %+v", tasks)
	}
}

func TestCreateInvalidPayload(t *testing.T) {
	router, _ := newRouter(t)
	if rec := do(t, router, http.MethodPost, "/tasks", `{not json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestToggleFilterAndDelete(t *testing.T) {
	router, _ := newRouter(t)
	milk := create(t, router, "buy milk")
	clean := create(t, router, "clean")

	rec := do(t, router, http.MethodPut, "/tasks/"+itoa(clean.ID)+"/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200 got %d", rec.Code)
	}
	if tasks := decodeTasks(t, rec); len(tasks) != 2 || !tasks[1].Done {
		t.Fatalf("unexpected collection after toggle %+v", tasks)
	}

	tasks := decodeTasks(t, do(t, router, http.MethodGet, "/tasks?status=done", ""))
	if len(tasks) != 1 || tasks[0].ID != clean.ID {
		t.Fatalf("expected only %d got %+v", clean.ID, tasks)
	}
	tasks = decodeTasks(t, do(t, router, http.MethodGet, "/tasks?status=not-done&q=milk", ""))
	if len(tasks) != 1 || tasks[0].ID != milk.ID {
		t.Fatalf("expected only %d got %+v", milk.ID, tasks)
	}

	rec = do(t, router, http.MethodDelete, "/tasks/"+itoa(milk.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", rec.Code)
	}
	if tasks := decodeTasks(t, rec); len(tasks) != 1 || tasks[0].ID != clean.ID {
		t.Fatalf("unexpected collection after delete %+v", tasks)
	}
	if rec := do(t, router, http.MethodGet, "/tasks/"+itoa(milk.ID), ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	router, _ := newRouter(t)
	create(t, router, "a")
	for _, rec := range []*httptest.ResponseRecorder{
		do(t, router, http.MethodPut, "/tasks/999/toggle", ""),
		do(t, router, http.MethodDelete, "/tasks/999", ""),
	} {
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		if tasks := decodeTasks(t, rec); len(tasks) != 1 || tasks[0].Done {
			t.Fatalf("collection changed: %+v", tasks)
		}
	}
}

func TestBadParameters(t *testing.T) {
	router, _ := newRouter(t)
	if rec := do(t, router, http.MethodGet, "/tasks/abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/tasks?status=pending", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad status got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/tasks?order=sideways", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad order got %d", rec.Code)
	}
}

func TestRequestIDAndAccessLog(t *testing.T) {
	router, hook := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Fatalf("expected echoed request id got %q", got)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Data["request_id"] != "abc-123" || entry.Data["status"] != http.StatusOK {
		t.Fatalf("unexpected access log entry %+v", entry)
	}

	rec = do(t, router, http.MethodGet, "/healthz", "")
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Fatal("expected generated request id")
	}
}
