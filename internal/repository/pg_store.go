package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/backend/internal/model"
	"github.com/taskdeck/backend/pkg/auth"
)

// PgStore is the PostgreSQL-backed Store implementation. Cascading
// deletes and their trailing activity entry run inside one transaction,
// so callers see the same all-or-nothing behavior as the memory store.
// Denormalized names (assignee, actor, author) are resolved by joining
// the users table at read time, never trusted from storage.
type PgStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PgStore)(nil)

// NewPgStore returns a PostgreSQL-backed Store.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// Ping verifies database connectivity for the health endpoint.
func (s *PgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PgStore) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// userNameTx resolves a roster name inside a transaction; returns ""
// for an unknown or empty id.
func userNameTx(ctx context.Context, tx pgx.Tx, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return name, err
}

// recordTx inserts one activity entry for a mutation. Silently skips
// when the context carries no resolvable user.
func recordTx(ctx context.Context, tx pgx.Tx, action model.ActivityAction, targetType model.TargetType, targetID, targetTitle, details, projectID string) error {
	actorID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil
	}
	name, err := userNameTx(ctx, tx, actorID)
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO activity (id, ts, actor_id, action, target_type, target_id, target_title, details, project_id)
		 VALUES ($1, NOW(), $2, $3, $4, $5, $6, $7, NULLIF($8, ''))`,
		newID("log"), actorID, action, targetType, targetID, targetTitle, details, projectID,
	)
	return err
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func (s *PgStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// ---------------------------------------------------------------------------
// Activity
// ---------------------------------------------------------------------------

const activitySelectQuery = `
	SELECT a.id, a.ts, a.actor_id, COALESCE(u.name, ''), a.action, a.target_type,
	       a.target_id, a.target_title, a.details, COALESCE(a.project_id, '')
	FROM activity a
	LEFT JOIN users u ON a.actor_id = u.id`

func (s *PgStore) ListActivity(ctx context.Context, projectID string, limit int) ([]*model.ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows pgx.Rows
	var err error
	if projectID == "" {
		rows, err = s.pool.Query(ctx,
			activitySelectQuery+` ORDER BY a.ts DESC, a.id LIMIT $1`, limit)
	} else {
		rows, err = s.pool.Query(ctx,
			activitySelectQuery+` WHERE a.project_id = $1 ORDER BY a.ts DESC, a.id LIMIT $2`,
			projectID, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*model.ActivityEntry{}
	for rows.Next() {
		e := &model.ActivityEntry{}
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.ActorID, &e.ActorName, &e.Action, &e.TargetType,
			&e.TargetID, &e.TargetTitle, &e.Details, &e.ProjectID,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
