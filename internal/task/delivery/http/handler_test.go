package http_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard-api/config"
	"taskboard-api/internal/dependency"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	taskHTTP "taskboard-api/internal/task/delivery/http"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase returns canned results per method.
type mockUseCase struct {
	createOut task.CreateTaskOutput
	createErr error
	listOut   task.ListTasksOutput
	detailOut task.DetailTaskOutput
	detailErr error
	updateOut task.UpdateTaskOutput
	updateErr error
	deleteOut task.DeleteTaskOutput
	deleteErr error

	lastCreate task.CreateTaskInput
	lastDelete task.DeleteTaskInput
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.lastCreate = input
	return m.createOut, m.createErr
}

func (m *mockUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return m.listOut, nil
}

func (m *mockUseCase) Detail(ctx context.Context, ownerID, id string) (task.DetailTaskOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return m.updateOut, m.updateErr
}

func (m *mockUseCase) Delete(ctx context.Context, input task.DeleteTaskInput) (task.DeleteTaskOutput, error) {
	m.lastDelete = input
	return m.deleteOut, m.deleteErr
}

const secret = "test-secret"

func token(ownerID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ownerID))
	return "Bearer " + ownerID + "." + hex.EncodeToString(mac.Sum(nil))
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, config.AuthConfig{Secret: secret}, config.RateLimitConfig{RequestsPerMin: 60000})
	api := r.Group("/api/v1")
	taskHTTP.RegisterRoutes(api, taskHTTP.New(&mockLogger{}, uc), mw)
	return r
}

func do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", token("owner-1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleTask() model.Task {
	return model.Task{
		ID:       "task-1",
		OwnerID:  "owner-1",
		Title:    "Write report",
		Deadline: time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC),
		Priority: model.PriorityHigh,
	}
}

func TestCreateHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{createOut: task.CreateTaskOutput{Task: sampleTask()}}
		router := newRouter(uc)

		w := do(router, http.MethodPost, "/api/v1/tasks", gin.H{
			"title":    "Write report",
			"date":     "10/03/2026",
			"time":     "5:00 PM",
			"priority": "high",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastCreate.OwnerID != "owner-1" {
			t.Errorf("expected owner from token, got %q", uc.lastCreate.OwnerID)
		}
		want := time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)
		if !uc.lastCreate.Deadline.Equal(want) {
			t.Errorf("expected deadline %v, got %v", want, uc.lastCreate.Deadline)
		}

		var resp struct {
			Data struct {
				Date string `json:"date"`
				Time string `json:"time"`
			} `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Data.Date != "10/03/2026" || resp.Data.Time != "5:00 PM" {
			t.Errorf("expected boundary formats, got %+v", resp.Data)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		router := newRouter(&mockUseCase{})

		w := do(router, http.MethodPost, "/api/v1/tasks", gin.H{
			"date":     "10/03/2026",
			"priority": "high",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date format", func(t *testing.T) {
		router := newRouter(&mockUseCase{})

		w := do(router, http.MethodPost, "/api/v1/tasks", gin.H{
			"title":    "x",
			"date":     "2026-03-10",
			"priority": "high",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router := newRouter(&mockUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestUpdateHandler_DeadlineViolation(t *testing.T) {
	violation := &dependency.DeadlineViolationError{
		DependentTask:    model.Task{ID: "b", Title: "Task b"},
		PrerequisiteTask: model.Task{ID: "a", Title: "Task a"},
	}
	uc := &mockUseCase{updateErr: violation}
	router := newRouter(uc)

	w := do(router, http.MethodPut, "/api/v1/tasks/a", gin.H{"date": "01/03/2026"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Errors map[string]any `json:"errors"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if _, ok := resp.Errors["dependent_task"]; !ok {
		t.Errorf("expected structured violation details, got %s", w.Body.String())
	}
}

func TestDeleteHandler(t *testing.T) {
	t.Run("pending confirmation responds 409", func(t *testing.T) {
		uc := &mockUseCase{deleteOut: task.DeleteTaskOutput{
			RequiresConfirmation: true,
			DependentTasks:       []model.Task{sampleTask()},
		}}
		router := newRouter(uc)

		w := do(router, http.MethodDelete, "/api/v1/tasks/task-9", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				RequiresConfirmation bool `json:"requires_confirmation"`
				DependentTasks       []struct {
					ID string `json:"id"`
				} `json:"dependent_tasks"`
			} `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if !resp.Data.RequiresConfirmation || len(resp.Data.DependentTasks) != 1 {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("confirmed cascade responds 200", func(t *testing.T) {
		uc := &mockUseCase{deleteOut: task.DeleteTaskOutput{CascadeDeleted: 2}}
		router := newRouter(uc)

		w := do(router, http.MethodDelete, "/api/v1/tasks/task-9", gin.H{"confirmCascade": true})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !uc.lastDelete.ConfirmCascade {
			t.Error("expected confirmation flag forwarded")
		}

		var resp struct {
			Data struct {
				CascadeDeleted int `json:"cascade_deleted"`
			} `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Data.CascadeDeleted != 2 {
			t.Errorf("expected cascade count 2, got %d", resp.Data.CascadeDeleted)
		}
	})

	t.Run("empty body is an unconfirmed delete", func(t *testing.T) {
		uc := &mockUseCase{deleteOut: task.DeleteTaskOutput{}}
		router := newRouter(uc)

		w := do(router, http.MethodDelete, "/api/v1/tasks/task-9", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastDelete.ConfirmCascade {
			t.Error("empty body must not confirm the cascade")
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mockUseCase{deleteErr: task.ErrTaskNotFound}
		router := newRouter(uc)

		w := do(router, http.MethodDelete, "/api/v1/tasks/ghost", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestDetailHandler_NotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: task.ErrTaskNotFound}
	router := newRouter(uc)

	w := do(router, http.MethodGet, "/api/v1/tasks/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
