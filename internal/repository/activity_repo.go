package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"activities-service/internal/model"
)

// ActivityRepo реализует реестр кружков на базе PostgreSQL.
// Изменения состава выполняются в транзакции под блокировкой строки кружка.
type ActivityRepo struct {
	db *Postgres
	tm *TransactionManager
}

// NewActivityRepo создаёт репозиторий кружков поверх подключения к PostgreSQL.
func NewActivityRepo(db *Postgres, tm *TransactionManager) *ActivityRepo {
	return &ActivityRepo{db: db, tm: tm}
}

// ListActivities возвращает все кружки в порядке добавления, участников — в порядке записи.
func (r *ActivityRepo) ListActivities(ctx context.Context) ([]model.Activity, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `
SELECT a.name, a.description, a.schedule, a.max_participants, p.email
FROM activities a
LEFT JOIN activity_participants p ON p.activity_name = a.name
ORDER BY a.seq, p.position
`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	out := make([]model.Activity, 0)
	for rows.Next() {
		var a model.Activity
		var email *string
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		if n := len(out); n == 0 || out[n-1].Name != a.Name {
			a.Participants = make([]string, 0)
			out = append(out, a)
		}
		if email != nil {
			last := &out[len(out)-1]
			last.Participants = append(last.Participants, *email)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

// AddParticipant записывает email в кружок, если он существует, email ещё не записан
// и есть свободные места.
func (r *ActivityRepo) AddParticipant(ctx context.Context, name, email string) error {
	return r.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := r.lockActivity(ctx, name)
		if err != nil {
			return err
		}
		if a.HasParticipant(email) {
			return ErrAlreadySignedUp
		}
		if a.IsFull() {
			return ErrActivityFull
		}

		q := r.db.GetQueryExecutor(ctx)
		if _, err := q.Exec(ctx, `INSERT INTO activity_participants (activity_name, email) VALUES ($1, $2)`, name, email); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
		return nil
	})
}

// RemoveParticipant отписывает email от кружка.
func (r *ActivityRepo) RemoveParticipant(ctx context.Context, name, email string) error {
	return r.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.lockActivity(ctx, name); err != nil {
			return err
		}

		q := r.db.GetQueryExecutor(ctx)
		tag, err := q.Exec(ctx, `DELETE FROM activity_participants WHERE activity_name = $1 AND email = $2`, name, email)
		if err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotSignedUp
		}
		return nil
	})
}

// lockActivity берёт FOR UPDATE на строку кружка и читает текущий состав.
// Вызывается только внутри транзакции.
func (r *ActivityRepo) lockActivity(ctx context.Context, name string) (model.Activity, error) {
	q := r.db.GetQueryExecutor(ctx)

	a := model.Activity{Name: name}
	err := q.QueryRow(ctx, `
SELECT description, schedule, max_participants
FROM activities
WHERE name = $1
FOR UPDATE
`, name).Scan(&a.Description, &a.Schedule, &a.MaxParticipants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Activity{}, ErrActivityNotFound
		}
		return model.Activity{}, fmt.Errorf("lock activity: %w", err)
	}

	rows, err := q.Query(ctx, `
SELECT email
FROM activity_participants
WHERE activity_name = $1
ORDER BY position
`, name)
	if err != nil {
		return model.Activity{}, fmt.Errorf("query participants: %w", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return model.Activity{}, fmt.Errorf("collect participants: %w", err)
	}
	a.Participants = emails

	return a, nil
}
