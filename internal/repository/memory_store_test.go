package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/pkg/auth"
)

// testCtx carries Alice (user-1) as the acting user.
func testCtx() context.Context {
	return auth.WithUserID(context.Background(), "user-1")
}

func newTestStore() *MemoryStore {
	return NewMemoryStore(DefaultUsers())
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

func TestMemoryStore_CreateProject_Timestamps(t *testing.T) {
	s := newTestStore()

	p, err := s.CreateProject(testCtx(), model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Error("expected assigned id")
	}
	if !p.CreatedAt.Equal(p.LastModifiedAt) {
		t.Errorf("expected createdAt == lastModifiedAt, got %v / %v", p.CreatedAt, p.LastModifiedAt)
	}

	entries, err := s.ListActivity(testCtx(), "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Action != model.ActionCreatedProject {
		t.Errorf("expected CREATED_PROJECT, got %s", e.Action)
	}
	if e.ActorName != "Alice" {
		t.Errorf("expected actor Alice, got %q", e.ActorName)
	}
	if e.ProjectID != p.ID {
		t.Errorf("expected entry scoped to %s, got %s", p.ID, e.ProjectID)
	}
}

func TestMemoryStore_UpdateProject_MergesAndBumpsTimestamp(t *testing.T) {
	s := newTestStore()
	p, _ := s.CreateProject(testCtx(), model.NewProject{Title: "Alpha", Description: "d", Status: model.ProjectActive})

	status := model.ProjectOnHold
	got, err := s.UpdateProject(testCtx(), p.ID, model.ProjectUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.ProjectOnHold {
		t.Errorf("expected On Hold, got %s", got.Status)
	}
	if got.Title != "Alpha" || got.Description != "d" {
		t.Error("expected untouched fields to survive a partial update")
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Error("createdAt must never change on update")
	}
	if got.LastModifiedAt.Before(p.LastModifiedAt) {
		t.Error("lastModifiedAt must not go backwards")
	}

	entries, _ := s.ListActivity(testCtx(), "", 0)
	if entries[0].Action != model.ActionUpdatedProject {
		t.Fatalf("expected UPDATED_PROJECT first, got %s", entries[0].Action)
	}
	if entries[0].Details != "Status changed to 'On Hold'" {
		t.Errorf("unexpected detail: %q", entries[0].Details)
	}
}

func TestMemoryStore_UpdateProject_ClearDeadline(t *testing.T) {
	s := newTestStore()
	deadline := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	p, _ := s.CreateProject(testCtx(), model.NewProject{Title: "Alpha", Status: model.ProjectActive, Deadline: &deadline})

	got, err := s.UpdateProject(testCtx(), p.ID, model.ProjectUpdate{ClearDeadline: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Deadline != nil {
		t.Error("expected deadline to be cleared")
	}
}

func TestMemoryStore_UpdateProject_NotFound(t *testing.T) {
	s := newTestStore()
	if _, err := s.UpdateProject(testCtx(), "proj-missing", model.ProjectUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_DeleteProject_Cascades(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Doomed", Status: model.ProjectActive})
	other, _ := s.CreateProject(ctx, model.NewProject{Title: "Survivor", Status: model.ProjectActive})

	t1, _ := s.CreateTask(ctx, p.ID, model.NewTask{Title: "T1", Status: model.TaskTodo, Priority: model.PriorityLow})
	t2, _ := s.CreateTask(ctx, p.ID, model.NewTask{Title: "T2", Status: model.TaskTodo, Priority: model.PriorityHigh})
	keep, _ := s.CreateTask(ctx, other.ID, model.NewTask{Title: "Keep", Status: model.TaskTodo, Priority: model.PriorityLow})
	if _, err := s.AddComment(ctx, t1.ID, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AddComment(ctx, t2.ID, "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks, _ := s.ListTasks(ctx, p.ID)
	if len(tasks) != 0 {
		t.Errorf("expected no tasks for deleted project, got %d", len(tasks))
	}
	if _, err := s.GetTask(ctx, t1.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected cascaded task delete, got %v", err)
	}
	comments, _ := s.ListComments(ctx, t1.ID)
	if len(comments) != 0 {
		t.Errorf("expected cascaded comment delete, got %d", len(comments))
	}

	// Everything scoped to the project is pruned except the deletion
	// entry itself, which is recorded after the cascade.
	entries, _ := s.ListActivity(ctx, p.ID, 0)
	if len(entries) != 1 {
		t.Fatalf("expected only the deletion entry, got %d", len(entries))
	}
	if entries[0].Action != model.ActionDeletedProject || entries[0].TargetTitle != "Doomed" {
		t.Errorf("unexpected deletion entry: %+v", entries[0])
	}

	// The sibling project is untouched.
	if _, err := s.GetTask(ctx, keep.ID); err != nil {
		t.Errorf("sibling project's task should survive: %v", err)
	}
}

func TestMemoryStore_DeleteProject_NotFound(t *testing.T) {
	s := newTestStore()
	if err := s.DeleteProject(testCtx(), "proj-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

func TestMemoryStore_CreateTask_ResolvesAssignee(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})

	task, err := s.CreateTask(ctx, p.ID, model.NewTask{
		Title: "T", Status: model.TaskTodo, Priority: model.PriorityMedium, AssigneeID: "user-2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.AssigneeName != "Bob" {
		t.Errorf("expected assignee name Bob, got %q", task.AssigneeName)
	}
	if task.Photos == nil || len(task.Photos) != 0 {
		t.Errorf("expected empty photos slice, got %v", task.Photos)
	}
	if !task.CreatedAt.Equal(task.LastModifiedAt) {
		t.Error("expected createdAt == lastModifiedAt on creation")
	}

	got, err := s.GetTask(testCtx(), task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Photos == nil {
		t.Error("expected empty photos slice on read, got nil")
	}
}

func TestMemoryStore_CreateTask_UnknownProject(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateTask(testCtx(), "proj-missing", model.NewTask{Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_UpdateTask_ReassignsAndRenames(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(ctx, p.ID, model.NewTask{
		Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow, AssigneeID: "user-1",
	})

	got, err := s.UpdateTask(ctx, task.ID, model.TaskUpdate{AssigneeID: strPtr("user-2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssigneeID != "user-2" || got.AssigneeName != "Bob" {
		t.Errorf("expected reassignment to Bob, got %q/%q", got.AssigneeID, got.AssigneeName)
	}

	entries, _ := s.ListActivity(ctx, "", 0)
	if entries[0].Details != "Assignee changed to 'Bob'" {
		t.Errorf("unexpected detail: %q", entries[0].Details)
	}
}

func TestMemoryStore_UpdateTask_ClearAssignee(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(ctx, p.ID, model.NewTask{
		Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow, AssigneeID: "user-1",
	})

	got, err := s.UpdateTask(ctx, task.ID, model.TaskUpdate{AssigneeID: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssigneeID != "" || got.AssigneeName != "" {
		t.Errorf("expected cleared assignee, got %q/%q", got.AssigneeID, got.AssigneeName)
	}

	entries, _ := s.ListActivity(ctx, "", 0)
	if entries[0].Details != "Assignee changed to 'Unassigned'" {
		t.Errorf("unexpected detail: %q", entries[0].Details)
	}
}

func TestMemoryStore_UpdateTask_PreservesAssigneeWhenAbsent(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(ctx, p.ID, model.NewTask{
		Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow, AssigneeID: "user-3",
	})

	status := model.TaskDone
	got, err := s.UpdateTask(ctx, task.ID, model.TaskUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssigneeID != "user-3" || got.AssigneeName != "Charlie" {
		t.Errorf("expected assignee untouched, got %q/%q", got.AssigneeID, got.AssigneeName)
	}
	if entries, _ := s.ListActivity(ctx, "", 0); entries[0].Details != "Status changed to 'Done'" {
		t.Errorf("unexpected detail: %q", entries[0].Details)
	}
}

func TestMemoryStore_AssigneeName_RecomputedOnRead(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(ctx, p.ID, model.NewTask{
		Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow, AssigneeID: "user-2",
	})

	// Poison the cached copy; reads must resolve from the roster.
	s.mu.Lock()
	s.findTask(task.ID).AssigneeName = "stale"
	s.mu.Unlock()

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AssigneeName != "Bob" {
		t.Errorf("expected roster name Bob, got %q", got.AssigneeName)
	}
}

func TestMemoryStore_DeleteTask_Cascades(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(ctx, p.ID, model.NewTask{Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow})
	if _, err := s.AddComment(ctx, task.ID, "bye"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comments, _ := s.ListComments(ctx, task.ID); len(comments) != 0 {
		t.Errorf("expected cascaded comment delete, got %d", len(comments))
	}

	entries, _ := s.ListActivity(ctx, p.ID, 0)
	for _, e := range entries {
		if e.TargetType == model.TargetTask && e.TargetID == task.ID && e.Action != model.ActionDeletedTask {
			t.Errorf("expected task entries pruned, found %s", e.Action)
		}
		if e.TargetType == model.TargetComment {
			t.Error("expected comment entries pruned")
		}
	}
	if entries[0].Action != model.ActionDeletedTask || entries[0].ProjectID != p.ID {
		t.Errorf("expected DELETED_TASK scoped to project, got %+v", entries[0])
	}
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func TestMemoryStore_ListComments_OldestFirst(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(ctx, p.ID, model.NewTask{Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow})

	// Seed out of order; the listing must sort by createdAt ascending.
	early := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	s.mu.Lock()
	s.comments = append(s.comments,
		&model.Comment{ID: "cmt-b", TaskID: task.ID, AuthorID: "user-2", Text: "second", CreatedAt: late},
		&model.Comment{ID: "cmt-a", TaskID: task.ID, AuthorID: "user-1", Text: "first", CreatedAt: early},
	)
	s.mu.Unlock()

	comments, err := s.ListComments(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "first" || comments[1].Text != "second" {
		t.Errorf("expected oldest first, got [%q, %q]", comments[0].Text, comments[1].Text)
	}
	if comments[0].AuthorName != "Alice" {
		t.Errorf("expected author name resolved from roster, got %q", comments[0].AuthorName)
	}
}

func TestMemoryStore_AddComment_MissingTask_NoSideEffects(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()

	_, err := s.AddComment(ctx, "task-missing", "hello")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.comments) != 0 {
		t.Error("failed AddComment must not create a comment")
	}
	if len(s.activity) != 0 {
		t.Error("failed AddComment must not record activity")
	}
}

func TestMemoryStore_AddComment_NoActor(t *testing.T) {
	s := newTestStore()
	p, _ := s.CreateProject(testCtx(), model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(testCtx(), p.ID, model.NewTask{Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow})

	if _, err := s.AddComment(context.Background(), task.ID, "x"); !errors.Is(err, ErrNoActor) {
		t.Errorf("expected ErrNoActor, got %v", err)
	}
}

func TestMemoryStore_AddComment_ReturnsSnapshot(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	task, _ := s.CreateTask(ctx, p.ID, model.NewTask{Title: "T", Status: model.TaskTodo, Priority: model.PriorityLow})

	c, err := s.AddComment(ctx, task.ID, "before")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Text = "after"

	comments, err := s.ListComments(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comments[0].Text != "before" {
		t.Errorf("mutating the returned comment must not change stored state, got %q", comments[0].Text)
	}
}

// ---------------------------------------------------------------------------
// Activity
// ---------------------------------------------------------------------------

func TestMemoryStore_ActivitySkippedWithoutActor(t *testing.T) {
	s := newTestStore()

	// Mutations still succeed without an acting user; they are just
	// not logged.
	if _, err := s.CreateProject(context.Background(), model.NewProject{Title: "Quiet", Status: model.ProjectActive}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, _ := s.ListActivity(testCtx(), "", 0)
	if len(entries) != 0 {
		t.Errorf("expected no activity without an actor, got %d", len(entries))
	}
}

func TestMemoryStore_ListActivity_NewestFirstAndLimited(t *testing.T) {
	s := newTestStore()
	ctx := testCtx()
	p, _ := s.CreateProject(ctx, model.NewProject{Title: "Alpha", Status: model.ProjectActive})
	for i := 0; i < 5; i++ {
		title := "go"
		if _, err := s.UpdateProject(ctx, p.ID, model.ProjectUpdate{Title: &title}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		title = "stop"
		if _, err := s.UpdateProject(ctx, p.ID, model.ProjectUpdate{Title: &title}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := s.ListActivity(ctx, p.ID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected limit to truncate to 3, got %d", len(entries))
	}
	if entries[0].Action != model.ActionUpdatedProject {
		t.Errorf("expected newest entry first, got %s", entries[0].Action)
	}

	other, _ := s.CreateProject(ctx, model.NewProject{Title: "Beta", Status: model.ProjectActive})
	scoped, _ := s.ListActivity(ctx, other.ID, 0)
	if len(scoped) != 1 {
		t.Errorf("expected project filter to isolate entries, got %d", len(scoped))
	}
}

// ---------------------------------------------------------------------------
// Latency / cancellation
// ---------------------------------------------------------------------------

func TestMemoryStore_LatencyHonorsCancellation(t *testing.T) {
	s := NewMemoryStore(DefaultUsers(), WithLatency(time.Minute))

	ctx, cancel := context.WithCancel(testCtx())
	cancel()

	if _, err := s.ListProjects(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
