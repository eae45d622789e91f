package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/pkg/auth"
)

// MemoryStore is the in-memory Store implementation. It owns its
// collections exclusively; callers only ever see copies. A single
// mutex makes every operation atomic with respect to every other, so
// no read can observe a partially applied mutation.
type MemoryStore struct {
	mu      sync.RWMutex
	latency time.Duration

	users    []*model.User
	projects []*model.Project
	tasks    []*model.Task
	comments []*model.Comment
	activity []*model.ActivityEntry // newest first
}

var _ Store = (*MemoryStore)(nil)

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithLatency makes every operation wait d before executing, modeling a
// network round-trip. The wait honors context cancellation.
func WithLatency(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.latency = d }
}

// NewMemoryStore creates a MemoryStore seeded with the given user
// roster. The roster is immutable for the store's lifetime.
func NewMemoryStore(roster []*model.User, opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{}
	for _, u := range roster {
		c := *u
		s.users = append(s.users, &c)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// wait blocks for the configured simulated latency, or until the
// context is cancelled.
func (s *MemoryStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ---------------------------------------------------------------------------
// Lookup helpers — callers must hold the lock.
// ---------------------------------------------------------------------------

func (s *MemoryStore) findUser(id string) *model.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *MemoryStore) userName(id string) string {
	if u := s.findUser(id); u != nil {
		return u.Name
	}
	return ""
}

func (s *MemoryStore) findProject(id string) *model.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *MemoryStore) findTask(id string) *model.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// record appends one activity entry for a mutation. The actor comes
// from the request context; if no known user is resolvable the entry is
// silently skipped. An empty projectID is defaulted from the target.
func (s *MemoryStore) record(ctx context.Context, action model.ActivityAction, targetType model.TargetType, targetID, targetTitle, details, projectID string) {
	actorID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return
	}
	actor := s.findUser(actorID)
	if actor == nil {
		return
	}
	if projectID == "" {
		switch targetType {
		case model.TargetTask:
			if t := s.findTask(targetID); t != nil {
				projectID = t.ProjectID
			}
		case model.TargetProject:
			projectID = targetID
		}
	}
	entry := &model.ActivityEntry{
		ID:          newID("log"),
		Timestamp:   time.Now(),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		TargetTitle: targetTitle,
		Details:     details,
		ProjectID:   projectID,
	}
	s.activity = append([]*model.ActivityEntry{entry}, s.activity...)
}

// cloneTask copies t with AssigneeName resolved fresh from the roster.
// The stored name is only a cache; the roster is authoritative.
func (s *MemoryStore) cloneTask(t *model.Task) *model.Task {
	c := *t
	c.Photos = append([]string{}, t.Photos...)
	c.AssigneeName = s.userName(t.AssigneeID)
	return &c
}

func cloneProject(p *model.Project) *model.Project {
	c := *p
	return &c
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func (s *MemoryStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

func (s *MemoryStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	return out, nil
}

func (s *MemoryStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(id)
	if p == nil {
		return nil, ErrNotFound
	}
	return cloneProject(p), nil
}

func (s *MemoryStore) CreateProject(ctx context.Context, in model.NewProject) (*model.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := &model.Project{
		ID:             newID("proj"),
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		Deadline:       in.Deadline,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
	s.projects = append(s.projects, p)
	s.record(ctx, model.ActionCreatedProject, model.TargetProject, p.ID, p.Title, "", "")
	return cloneProject(p), nil
}

func (s *MemoryStore) UpdateProject(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(id)
	if p == nil {
		return nil, ErrNotFound
	}

	old := *p
	applyProjectUpdate(p, in)
	p.LastModifiedAt = time.Now()

	s.record(ctx, model.ActionUpdatedProject, model.TargetProject, p.ID, p.Title, projectChangeSummary(&old, p), "")
	return cloneProject(p), nil
}

func (s *MemoryStore) DeleteProject(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(id)
	if p == nil {
		return ErrNotFound
	}
	title := p.Title

	kept := s.projects[:0]
	for _, q := range s.projects {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.projects = kept

	// Cascade: tasks of the project, comments of those tasks, and every
	// activity entry scoped to the project. The cascaded children get no
	// log entries of their own.
	doomed := make(map[string]bool)
	tasks := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ProjectID == id {
			doomed[t.ID] = true
		} else {
			tasks = append(tasks, t)
		}
	}
	s.tasks = tasks

	comments := s.comments[:0]
	for _, c := range s.comments {
		if !doomed[c.TaskID] {
			comments = append(comments, c)
		}
	}
	s.comments = comments

	activity := s.activity[:0]
	for _, e := range s.activity {
		if e.ProjectID != id {
			activity = append(activity, e)
		}
	}
	s.activity = activity

	// Recorded after the prune: the deletion entry survives its own
	// cascade and keeps the deleted project's id.
	s.record(ctx, model.ActionDeletedProject, model.TargetProject, id, title, "", id)
	return nil
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

func (s *MemoryStore) ListTasks(ctx context.Context, projectID string) ([]*model.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, s.cloneTask(t))
		}
	}
	return out, nil
}

func (s *MemoryStore) ListAllTasks(ctx context.Context) ([]*model.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, s.cloneTask(t))
	}
	return out, nil
}

func (s *MemoryStore) GetTask(ctx context.Context, id string) (*model.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.findTask(id)
	if t == nil {
		return nil, ErrNotFound
	}
	return s.cloneTask(t), nil
}

func (s *MemoryStore) CreateTask(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProject(projectID) == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	t := &model.Task{
		ID:             newID("task"),
		ProjectID:      projectID,
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		Priority:       in.Priority,
		AssigneeID:     in.AssigneeID,
		AssigneeName:   s.userName(in.AssigneeID),
		DueDate:        in.DueDate,
		CreatedAt:      now,
		LastModifiedAt: now,
		Photos:         append([]string{}, in.Photos...),
	}
	s.tasks = append(s.tasks, t)
	s.record(ctx, model.ActionCreatedTask, model.TargetTask, t.ID, t.Title, "", projectID)
	return s.cloneTask(t), nil
}

func (s *MemoryStore) UpdateTask(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(id)
	if t == nil {
		return nil, ErrNotFound
	}

	old := *t
	old.Photos = append([]string(nil), t.Photos...)
	applyTaskUpdate(t, in)
	t.AssigneeName = s.userName(t.AssigneeID)
	t.LastModifiedAt = time.Now()

	s.record(ctx, model.ActionUpdatedTask, model.TargetTask, t.ID, t.Title, taskChangeSummary(&old, t), t.ProjectID)
	return s.cloneTask(t), nil
}

func (s *MemoryStore) DeleteTask(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(id)
	if t == nil {
		return ErrNotFound
	}
	title, projectID := t.Title, t.ProjectID

	doomed := make(map[string]bool)
	comments := s.comments[:0]
	for _, c := range s.comments {
		if c.TaskID == id {
			doomed[c.ID] = true
		} else {
			comments = append(comments, c)
		}
	}
	s.comments = comments

	tasks := s.tasks[:0]
	for _, q := range s.tasks {
		if q.ID != id {
			tasks = append(tasks, q)
		}
	}
	s.tasks = tasks

	activity := s.activity[:0]
	for _, e := range s.activity {
		taskEntry := e.TargetType == model.TargetTask && e.TargetID == id
		commentEntry := e.TargetType == model.TargetComment && doomed[e.TargetID]
		if !taskEntry && !commentEntry {
			activity = append(activity, e)
		}
	}
	s.activity = activity

	s.record(ctx, model.ActionDeletedTask, model.TargetTask, id, title, "", projectID)
	return nil
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func (s *MemoryStore) ListComments(ctx context.Context, taskID string) ([]*model.Comment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.Comment{}
	for _, c := range s.comments {
		if c.TaskID == taskID {
			cc := *c
			cc.AuthorName = s.userName(c.AuthorID)
			out = append(out, &cc)
		}
	}
	// Oldest first is a contract here, not an implementation artifact.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) AddComment(ctx context.Context, taskID, text string) (*model.Comment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	actorID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoActor
	}
	author := s.findUser(actorID)
	if author == nil {
		return nil, ErrNoActor
	}

	t := s.findTask(taskID)
	if t == nil {
		return nil, ErrNotFound
	}

	c := &model.Comment{
		ID:         newID("cmt"),
		TaskID:     taskID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	s.comments = append(s.comments, c)
	s.record(ctx, model.ActionAddedComment, model.TargetComment, c.ID, "",
		"Commented on task '"+t.Title+"'", t.ProjectID)
	cc := *c
	return &cc, nil
}

// ---------------------------------------------------------------------------
// Activity
// ---------------------------------------------------------------------------

func (s *MemoryStore) ListActivity(ctx context.Context, projectID string, limit int) ([]*model.ActivityEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	out := []*model.ActivityEntry{}
	for _, e := range s.activity {
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		ec := *e
		out = append(out, &ec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
