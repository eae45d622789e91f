package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taskdeck/backend/internal/model"
)

const projectSelectQuery = `
	SELECT id, title, description, status, deadline, created_at, last_modified_at
	FROM projects`

func scanProject(scan func(...any) error) (*model.Project, error) {
	var p model.Project
	if err := scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Deadline, &p.CreatedAt, &p.LastModifiedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PgStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	rows, err := s.pool.Query(ctx, projectSelectQuery+` ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *PgStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	p, err := scanProject(s.pool.QueryRow(ctx, projectSelectQuery+` WHERE id = $1`, id).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *PgStore) CreateProject(ctx context.Context, in model.NewProject) (*model.Project, error) {
	p := &model.Project{
		ID:          newID("proj"),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Deadline:    in.Deadline,
	}
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO projects (id, title, description, status, deadline)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING created_at, last_modified_at`,
			p.ID, p.Title, p.Description, p.Status, p.Deadline,
		).Scan(&p.CreatedAt, &p.LastModifiedAt); err != nil {
			return err
		}
		return recordTx(ctx, tx, model.ActionCreatedProject, model.TargetProject, p.ID, p.Title, "", p.ID)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PgStore) UpdateProject(ctx context.Context, id string, in model.ProjectUpdate) (*model.Project, error) {
	var updated *model.Project
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		old, err := scanProject(tx.QueryRow(ctx, projectSelectQuery+` WHERE id = $1 FOR UPDATE`, id).Scan)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		p := *old
		applyProjectUpdate(&p, in)
		p.LastModifiedAt = time.Now()

		if _, err := tx.Exec(ctx,
			`UPDATE projects SET title = $1, description = $2, status = $3, deadline = $4, last_modified_at = $5
			 WHERE id = $6`,
			p.Title, p.Description, p.Status, p.Deadline, p.LastModifiedAt, id,
		); err != nil {
			return err
		}
		updated = &p
		return recordTx(ctx, tx, model.ActionUpdatedProject, model.TargetProject, p.ID, p.Title,
			projectChangeSummary(old, &p), p.ID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes the project, its tasks, their comments and the
// activity entries scoped to the project, then records the deletion so
// the entry survives the prune.
func (s *PgStore) DeleteProject(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		var title string
		err := tx.QueryRow(ctx, `SELECT title FROM projects WHERE id = $1 FOR UPDATE`, id).Scan(&title)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM activity WHERE project_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM comments WHERE task_id IN (SELECT id FROM tasks WHERE project_id = $1)`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE project_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
			return err
		}
		return recordTx(ctx, tx, model.ActionDeletedProject, model.TargetProject, id, title, "", id)
	})
}
