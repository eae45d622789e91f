package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/pkg/auth"
)

const taskSelectQuery = `
	SELECT t.id, t.project_id, t.title, t.description, t.status, t.priority,
	       COALESCE(t.assignee_id, ''), COALESCE(u.name, ''), t.due_date,
	       t.created_at, t.last_modified_at, t.photos
	FROM tasks t
	LEFT JOIN users u ON t.assignee_id = u.id`

func scanTask(scan func(...any) error) (*model.Task, error) {
	var t model.Task
	if err := scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.AssigneeID, &t.AssigneeName, &t.DueDate,
		&t.CreatedAt, &t.LastModifiedAt, &t.Photos,
	); err != nil {
		return nil, err
	}
	if t.Photos == nil {
		t.Photos = []string{}
	}
	return &t, nil
}

func (s *PgStore) listTasks(ctx context.Context, where string, args ...any) ([]*model.Task, error) {
	rows, err := s.pool.Query(ctx, taskSelectQuery+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*model.Task{}
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *PgStore) ListTasks(ctx context.Context, projectID string) ([]*model.Task, error) {
	return s.listTasks(ctx, ` WHERE t.project_id = $1 ORDER BY t.created_at, t.id`, projectID)
}

func (s *PgStore) ListAllTasks(ctx context.Context) ([]*model.Task, error) {
	return s.listTasks(ctx, ` ORDER BY t.created_at, t.id`)
}

func (s *PgStore) GetTask(ctx context.Context, id string) (*model.Task, error) {
	t, err := scanTask(s.pool.QueryRow(ctx, taskSelectQuery+` WHERE t.id = $1`, id).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *PgStore) CreateTask(ctx context.Context, projectID string, in model.NewTask) (*model.Task, error) {
	t := &model.Task{
		ID:          newID("task"),
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		AssigneeID:  in.AssigneeID,
		DueDate:     in.DueDate,
		Photos:      append([]string{}, in.Photos...),
	}
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		name, err := userNameTx(ctx, tx, in.AssigneeID)
		if err != nil {
			return err
		}
		t.AssigneeName = name

		if err := tx.QueryRow(ctx,
			`INSERT INTO tasks (id, project_id, title, description, status, priority, assignee_id, due_date, photos)
			 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
			 RETURNING created_at, last_modified_at`,
			t.ID, projectID, t.Title, t.Description, t.Status, t.Priority, t.AssigneeID, t.DueDate, t.Photos,
		).Scan(&t.CreatedAt, &t.LastModifiedAt); err != nil {
			return err
		}
		return recordTx(ctx, tx, model.ActionCreatedTask, model.TargetTask, t.ID, t.Title, "", projectID)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PgStore) UpdateTask(ctx context.Context, id string, in model.TaskUpdate) (*model.Task, error) {
	var updated *model.Task
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		old, err := scanTask(tx.QueryRow(ctx,
			taskSelectQuery+` WHERE t.id = $1 FOR UPDATE OF t`, id).Scan)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		t := *old
		t.Photos = append([]string(nil), old.Photos...)
		applyTaskUpdate(&t, in)

		name, err := userNameTx(ctx, tx, t.AssigneeID)
		if err != nil {
			return err
		}
		t.AssigneeName = name
		t.LastModifiedAt = time.Now()

		if _, err := tx.Exec(ctx,
			`UPDATE tasks SET title = $1, description = $2, status = $3, priority = $4,
			        assignee_id = NULLIF($5, ''), due_date = $6, photos = $7, last_modified_at = $8
			 WHERE id = $9`,
			t.Title, t.Description, t.Status, t.Priority, t.AssigneeID, t.DueDate, t.Photos, t.LastModifiedAt, id,
		); err != nil {
			return err
		}
		updated = &t
		return recordTx(ctx, tx, model.ActionUpdatedTask, model.TargetTask, t.ID, t.Title,
			taskChangeSummary(old, &t), t.ProjectID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes the task, its comments and their activity entries,
// then records the deletion scoped to the parent project.
func (s *PgStore) DeleteTask(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		var title, projectID string
		err := tx.QueryRow(ctx,
			`SELECT title, project_id FROM tasks WHERE id = $1 FOR UPDATE`, id).Scan(&title, &projectID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM activity
			 WHERE (target_type = 'Task' AND target_id = $1)
			    OR (target_type = 'Comment' AND target_id IN (SELECT id FROM comments WHERE task_id = $1))`,
			id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE task_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
			return err
		}
		return recordTx(ctx, tx, model.ActionDeletedTask, model.TargetTask, id, title, "", projectID)
	})
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func (s *PgStore) ListComments(ctx context.Context, taskID string) ([]*model.Comment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, c.task_id, c.author_id, COALESCE(u.name, ''), c.body, c.created_at
		 FROM comments c
		 LEFT JOIN users u ON c.author_id = u.id
		 WHERE c.task_id = $1
		 ORDER BY c.created_at, c.id`,
		taskID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

func (s *PgStore) AddComment(ctx context.Context, taskID, text string) (*model.Comment, error) {
	actorID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoActor
	}

	c := &model.Comment{ID: newID("cmt"), TaskID: taskID, AuthorID: actorID, Text: text}
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		name, err := userNameTx(ctx, tx, actorID)
		if err != nil {
			return err
		}
		if name == "" {
			return ErrNoActor
		}
		c.AuthorName = name

		var taskTitle, projectID string
		err = tx.QueryRow(ctx, `SELECT title, project_id FROM tasks WHERE id = $1`, taskID).Scan(&taskTitle, &projectID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.QueryRow(ctx,
			`INSERT INTO comments (id, task_id, author_id, body) VALUES ($1, $2, $3, $4)
			 RETURNING created_at`,
			c.ID, taskID, actorID, text,
		).Scan(&c.CreatedAt); err != nil {
			return err
		}
		return recordTx(ctx, tx, model.ActionAddedComment, model.TargetComment, c.ID, "",
			"Commented on task '"+taskTitle+"'", projectID)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
