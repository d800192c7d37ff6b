package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"taskboard-api/internal/dependency"
	depRepo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/internal/task/repository"
	"taskboard-api/internal/task/usecase"
	"taskboard-api/pkg/gcalendar"
)

// mock dependencies

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

type mockSink struct {
	events []model.Event
}

func (m *mockSink) Emit(ctx context.Context, event model.Event) {
	m.events = append(m.events, event)
}

type mockMirror struct {
	fail  bool
	calls int
}

func (m *mockMirror) MirrorDeadline(ctx context.Context, req gcalendar.MirrorEventRequest) (*gcalendar.Event, error) {
	m.calls++
	if m.fail {
		return nil, errors.New("calendar down")
	}
	return &gcalendar.Event{ID: "ev-1", Title: req.Title, Deadline: req.Deadline}, nil
}

func (m *mockMirror) RemoveEvent(ctx context.Context, calendarID, eventID string) error {
	return nil
}

// mockTaskRepo is an in-memory task store.
type mockTaskRepo struct {
	tasks  map[string]model.Task
	nextID int
}

func newTaskRepo(tasks ...model.Task) *mockTaskRepo {
	r := &mockTaskRepo{tasks: make(map[string]model.Task)}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return r
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.nextID++
	t := model.Task{
		ID:          fmt.Sprintf("task-%d", m.nextID),
		OwnerID:     opt.OwnerID,
		Title:       opt.Title,
		Description: opt.Description,
		Deadline:    opt.Deadline,
		Priority:    opt.Priority,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockTaskRepo) GetTasksByIDs(ctx context.Context, ownerID string, ids []string) ([]model.Task, error) {
	var out []model.Task
	for _, id := range ids {
		if t, ok := m.tasks[id]; ok && t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.OwnerID == opt.OwnerID {
			out = append(out, t)
		}
	}
	return out, len(out), nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.Description = opt.Description
	t.Deadline = opt.Deadline
	t.Priority = opt.Priority
	t.Completed = opt.Completed
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockTaskRepo) DeleteTasks(ctx context.Context, ownerID string, ids []string) error {
	for _, id := range ids {
		if t, ok := m.tasks[id]; ok && t.OwnerID == ownerID {
			delete(m.tasks, id)
		}
	}
	return nil
}

// mockEdgeRepo holds a static edge set and records destructive calls.
type mockEdgeRepo struct {
	edges []model.Dependency

	deletedTouching []string
}

func (m *mockEdgeRepo) CreateEdge(ctx context.Context, opt depRepo.CreateEdgeOptions) (model.Dependency, error) {
	return model.Dependency{}, nil
}

func (m *mockEdgeRepo) GetOneEdge(ctx context.Context, opt depRepo.GetOneEdgeOptions) (model.Dependency, error) {
	return model.Dependency{}, nil
}

func (m *mockEdgeRepo) ListEdges(ctx context.Context, opt depRepo.ListEdgesOptions) ([]model.Dependency, error) {
	var out []model.Dependency
	for _, e := range m.edges {
		if opt.OwnerID != "" && e.OwnerID != opt.OwnerID {
			continue
		}
		if opt.TaskID != "" && e.DependentTaskID != opt.TaskID && e.PrerequisiteTaskID != opt.TaskID {
			continue
		}
		if opt.DependentTaskID != "" && e.DependentTaskID != opt.DependentTaskID {
			continue
		}
		if opt.PrerequisiteTaskID != "" && e.PrerequisiteTaskID != opt.PrerequisiteTaskID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEdgeRepo) UpdateEdge(ctx context.Context, opt depRepo.UpdateEdgeOptions) (model.Dependency, error) {
	return model.Dependency{}, nil
}

func (m *mockEdgeRepo) DeleteEdge(ctx context.Context, ownerID, id string) error {
	return nil
}

func (m *mockEdgeRepo) DeleteEdgesTouching(ctx context.Context, ownerID string, taskIDs []string) error {
	m.deletedTouching = append(m.deletedTouching, taskIDs...)
	doomed := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		doomed[id] = struct{}{}
	}
	var kept []model.Dependency
	for _, e := range m.edges {
		_, pre := doomed[e.PrerequisiteTaskID]
		_, dep := doomed[e.DependentTaskID]
		if e.OwnerID == ownerID && (pre || dep) {
			continue
		}
		kept = append(kept, e)
	}
	m.edges = kept
	return nil
}

// fixtures

const owner = "owner-1"

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 17, 0, 0, 0, time.UTC)
}

func taskFixture(id string, due time.Time) model.Task {
	return model.Task{
		ID:       id,
		OwnerID:  owner,
		Title:    "Task " + id,
		Deadline: due,
		Priority: model.PriorityMedium,
	}
}

func edge(id, dependent, prerequisite string) model.Dependency {
	return model.Dependency{
		ID:                 id,
		OwnerID:            owner,
		DependentTaskID:    dependent,
		PrerequisiteTaskID: prerequisite,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := newTaskRepo()
		uc := usecase.New(repo, &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		out, err := uc.Create(ctx, task.CreateTaskInput{
			OwnerID:  owner,
			Title:    "Write report",
			Deadline: day(10),
			Priority: model.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID == "" || out.Task.Title != "Write report" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := usecase.New(newTaskRepo(), &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		_, err := uc.Create(ctx, task.CreateTaskInput{
			OwnerID:  owner,
			Title:    "x",
			Deadline: day(10),
			Priority: "urgent",
		})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("calendar mirror failure never fails the create", func(t *testing.T) {
		mirror := &mockMirror{fail: true}
		uc := usecase.New(newTaskRepo(), &mockEdgeRepo{}, &mockSink{}, mirror, "primary", &mockLogger{})

		_, err := uc.Create(ctx, task.CreateTaskInput{
			OwnerID:  owner,
			Title:    "x",
			Deadline: day(10),
			Priority: model.PriorityLow,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mirror.calls != 1 {
			t.Errorf("expected one mirror attempt, got %d", mirror.calls)
		}
	})
}

func TestUpdate_DeadlineGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("prerequisite cannot move before its dependent", func(t *testing.T) {
		// b depends on a; a due day 3, b due day 2.
		repo := newTaskRepo(taskFixture("a", day(3)), taskFixture("b", day(2)))
		edges := &mockEdgeRepo{edges: []model.Dependency{edge("e1", "b", "a")}}
		uc := usecase.New(repo, edges, &mockSink{}, nil, "", &mockLogger{})

		// Moving a to day 1 would leave b (day 2) due after it.
		_, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "a", OwnerID: owner, Date: "01/03/2026", Time: "5:00 PM",
		})
		if !errors.Is(err, dependency.ErrDeadlineViolation) {
			t.Fatalf("expected deadline violation, got %v", err)
		}

		var dve *dependency.DeadlineViolationError
		if !errors.As(err, &dve) {
			t.Fatalf("expected *DeadlineViolationError, got %T", err)
		}
		if dve.DependentTask.ID != "b" || dve.PrerequisiteTask.ID != "a" {
			t.Errorf("unexpected snapshots: %+v", dve)
		}
		// Nothing written.
		stored, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "a", OwnerID: owner})
		if !stored.Deadline.Equal(day(3)) {
			t.Errorf("deadline must be unchanged, got %v", stored.Deadline)
		}
	})

	t.Run("dependent cannot move past its prerequisite", func(t *testing.T) {
		repo := newTaskRepo(taskFixture("a", day(3)), taskFixture("b", day(2)))
		edges := &mockEdgeRepo{edges: []model.Dependency{edge("e1", "b", "a")}}
		uc := usecase.New(repo, edges, &mockSink{}, nil, "", &mockLogger{})

		// Moving b to day 5 would put it after a (day 3).
		_, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "b", OwnerID: owner, Date: "05/03/2026", Time: "5:00 PM",
		})
		if !errors.Is(err, dependency.ErrDeadlineViolation) {
			t.Fatalf("expected deadline violation, got %v", err)
		}
	})

	t.Run("moving within bounds succeeds", func(t *testing.T) {
		repo := newTaskRepo(taskFixture("a", day(3)), taskFixture("b", day(1)))
		edges := &mockEdgeRepo{edges: []model.Dependency{edge("e1", "b", "a")}}
		uc := usecase.New(repo, edges, &mockSink{}, nil, "", &mockLogger{})

		out, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "b", OwnerID: owner, Date: "02/03/2026", Time: "5:00 PM",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Deadline.Equal(day(2)) {
			t.Errorf("expected deadline %v, got %v", day(2), out.Task.Deadline)
		}
	})

	t.Run("guard skipped when deadline unchanged", func(t *testing.T) {
		// Deliberately inconsistent graph: b already due after a. Editing only
		// the title must not trip the guard.
		repo := newTaskRepo(taskFixture("a", day(1)), taskFixture("b", day(5)))
		edges := &mockEdgeRepo{edges: []model.Dependency{edge("e1", "b", "a")}}
		uc := usecase.New(repo, edges, &mockSink{}, nil, "", &mockLogger{})

		out, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "b", OwnerID: owner, Title: "renamed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != "renamed" {
			t.Errorf("expected title update, got %q", out.Task.Title)
		}
	})
}

func TestUpdate_PartialFields(t *testing.T) {
	ctx := context.Background()

	t.Run("date-only change keeps stored time", func(t *testing.T) {
		repo := newTaskRepo(taskFixture("a", day(3)))
		uc := usecase.New(repo, &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		out, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "a", OwnerID: owner, Date: "10/03/2026",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)
		if !out.Task.Deadline.Equal(want) {
			t.Errorf("expected %v, got %v", want, out.Task.Deadline)
		}
	})

	t.Run("time-only change keeps stored date", func(t *testing.T) {
		repo := newTaskRepo(taskFixture("a", day(3)))
		uc := usecase.New(repo, &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		out, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "a", OwnerID: owner, Time: "9:30 AM",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, time.March, 3, 9, 30, 0, 0, time.UTC)
		if !out.Task.Deadline.Equal(want) {
			t.Errorf("expected %v, got %v", want, out.Task.Deadline)
		}
	})

	t.Run("invalid date format", func(t *testing.T) {
		repo := newTaskRepo(taskFixture("a", day(3)))
		uc := usecase.New(repo, &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		_, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "a", OwnerID: owner, Date: "2026-03-10",
		})
		if !errors.Is(err, task.ErrInvalidDeadline) {
			t.Errorf("expected ErrInvalidDeadline, got %v", err)
		}
	})

	t.Run("empty fields preserved", func(t *testing.T) {
		stored := taskFixture("a", day(3))
		stored.Description = "keep me"
		repo := newTaskRepo(stored)
		uc := usecase.New(repo, &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		done := true
		out, err := uc.Update(ctx, task.UpdateTaskInput{
			ID: "a", OwnerID: owner, Completed: &done,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Completed {
			t.Error("expected completed to flip")
		}
		if out.Task.Description != "keep me" || out.Task.Title != "Task a" {
			t.Errorf("expected untouched fields preserved, got %+v", out.Task)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		uc := usecase.New(newTaskRepo(), &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "ghost", OwnerID: owner})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestDelete_Cascade(t *testing.T) {
	ctx := context.Background()

	t.Run("no dependents deletes immediately", func(t *testing.T) {
		repo := newTaskRepo(taskFixture("a", day(1)))
		sink := &mockSink{}
		uc := usecase.New(repo, &mockEdgeRepo{}, sink, nil, "", &mockLogger{})

		out, err := uc.Delete(ctx, task.DeleteTaskInput{ID: "a", OwnerID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RequiresConfirmation {
			t.Error("expected no confirmation required")
		}
		if out.CascadeDeleted != 0 {
			t.Errorf("expected 0 cascade deletes, got %d", out.CascadeDeleted)
		}
		if _, ok := repo.tasks["a"]; ok {
			t.Error("expected task removed")
		}
		if len(sink.events) != 1 || sink.events[0].Name != model.EventTaskDeleted {
			t.Errorf("expected one task.deleted event, got %+v", sink.events)
		}
	})

	t.Run("unconfirmed delete with dependents is a dry run", func(t *testing.T) {
		repo := newTaskRepo(taskFixture("a", day(1)), taskFixture("b", day(2)), taskFixture("c", day(3)))
		edges := &mockEdgeRepo{edges: []model.Dependency{
			edge("e1", "b", "a"),
			edge("e2", "c", "a"),
		}}
		sink := &mockSink{}
		uc := usecase.New(repo, edges, sink, nil, "", &mockLogger{})

		out, err := uc.Delete(ctx, task.DeleteTaskInput{ID: "a", OwnerID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.RequiresConfirmation {
			t.Fatal("expected confirmation to be required")
		}
		if len(out.DependentTasks) != 2 {
			t.Errorf("expected 2 dependents listed, got %d", len(out.DependentTasks))
		}
		// Nothing mutated, nothing emitted.
		if len(repo.tasks) != 3 || len(edges.edges) != 2 {
			t.Error("dry run must not mutate")
		}
		if len(sink.events) != 0 {
			t.Errorf("expected no events, got %+v", sink.events)
		}
	})

	t.Run("confirmed delete removes task, dependents, and touching edges", func(t *testing.T) {
		// b and c depend on a; b also depends on d, which survives.
		repo := newTaskRepo(
			taskFixture("a", day(1)),
			taskFixture("b", day(2)),
			taskFixture("c", day(3)),
			taskFixture("d", day(1)),
		)
		edges := &mockEdgeRepo{edges: []model.Dependency{
			edge("e1", "b", "a"),
			edge("e2", "c", "a"),
			edge("e3", "b", "d"),
		}}
		sink := &mockSink{}
		uc := usecase.New(repo, edges, sink, nil, "", &mockLogger{})

		out, err := uc.Delete(ctx, task.DeleteTaskInput{ID: "a", OwnerID: owner, ConfirmCascade: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RequiresConfirmation {
			t.Error("confirmed delete must not ask again")
		}
		if out.CascadeDeleted != 2 {
			t.Errorf("expected 2 cascade deletes, got %d", out.CascadeDeleted)
		}
		for _, id := range []string{"a", "b", "c"} {
			if _, ok := repo.tasks[id]; ok {
				t.Errorf("expected task %s removed", id)
			}
		}
		if _, ok := repo.tasks["d"]; !ok {
			t.Error("task d must survive: only direct dependents cascade")
		}
		if len(edges.edges) != 0 {
			t.Errorf("expected all touching edges removed, got %+v", edges.edges)
		}
		last := sink.events[len(sink.events)-1]
		if last.Name != model.EventTaskDeleted || last.Data["cascade_deleted"] != 2 {
			t.Errorf("unexpected event: %+v", last)
		}
	})

	t.Run("cascade is direct-only", func(t *testing.T) {
		// c depends on b depends on a; deleting a keeps c (orphaned).
		repo := newTaskRepo(taskFixture("a", day(1)), taskFixture("b", day(2)), taskFixture("c", day(3)))
		edges := &mockEdgeRepo{edges: []model.Dependency{
			edge("e1", "b", "a"),
			edge("e2", "c", "b"),
		}}
		uc := usecase.New(repo, edges, &mockSink{}, nil, "", &mockLogger{})

		out, err := uc.Delete(ctx, task.DeleteTaskInput{ID: "a", OwnerID: owner, ConfirmCascade: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CascadeDeleted != 1 {
			t.Errorf("expected 1 cascade delete, got %d", out.CascadeDeleted)
		}
		if _, ok := repo.tasks["c"]; !ok {
			t.Error("transitive dependent must survive")
		}
		// c's edge to the removed b must be gone as well.
		if len(edges.edges) != 0 {
			t.Errorf("expected no dangling edges, got %+v", edges.edges)
		}
	})

	t.Run("overlapping cascades stay consistent", func(t *testing.T) {
		// Two clients may confirm the same cascade at once; the delete
		// statements are owner-scoped and idempotent, so replaying the same
		// plan after it already ran must not error or resurrect anything.
		repo := newTaskRepo(taskFixture("a", day(1)), taskFixture("b", day(2)))
		edges := &mockEdgeRepo{edges: []model.Dependency{edge("e1", "b", "a")}}
		sink := &mockSink{}
		uc := usecase.New(repo, edges, sink, nil, "", &mockLogger{})

		if _, err := uc.Delete(ctx, task.DeleteTaskInput{ID: "a", OwnerID: owner, ConfirmCascade: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The loser replays the identical statements.
		if err := edges.DeleteEdgesTouching(ctx, owner, []string{"a", "b"}); err != nil {
			t.Fatalf("replayed edge delete errored: %v", err)
		}
		if err := repo.DeleteTasks(ctx, owner, []string{"a", "b"}); err != nil {
			t.Fatalf("replayed task delete errored: %v", err)
		}
		if len(repo.tasks) != 0 || len(edges.edges) != 0 {
			t.Errorf("expected state unchanged after replay, got tasks=%v edges=%v", repo.tasks, edges.edges)
		}

		// A second full Delete sees the task gone and mutates nothing.
		if _, err := uc.Delete(ctx, task.DeleteTaskInput{ID: "a", OwnerID: owner, ConfirmCascade: true}); !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound on the second cascade, got %v", err)
		}
		if len(sink.events) != 1 {
			t.Errorf("expected a single task.deleted event, got %+v", sink.events)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		uc := usecase.New(newTaskRepo(), &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

		_, err := uc.Delete(ctx, task.DeleteTaskInput{ID: "ghost", OwnerID: owner})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	repo := newTaskRepo(taskFixture("a", day(1)))
	uc := usecase.New(repo, &mockEdgeRepo{}, &mockSink{}, nil, "", &mockLogger{})

	out, err := uc.Detail(ctx, owner, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.ID != "a" {
		t.Errorf("unexpected task: %+v", out.Task)
	}

	if _, err := uc.Detail(ctx, "owner-2", "a"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign owner, got %v", err)
	}
}
