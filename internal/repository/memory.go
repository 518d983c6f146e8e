package repository

import (
	"context"
	"fmt"
	"sync"

	"activities-service/internal/model"
)

// MemoryActivityRepo хранит реестр кружков в памяти процесса.
// Все изменения выполняются под одной блокировкой, поэтому проверка лимита
// и дубликата вместе с добавлением атомарны. Данные теряются при рестарте.
type MemoryActivityRepo struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	order      []string
}

// NewMemoryActivityRepo создаёт реестр из стартового набора кружков.
func NewMemoryActivityRepo(seed []model.Activity) (*MemoryActivityRepo, error) {
	r := &MemoryActivityRepo{
		activities: make(map[string]*model.Activity, len(seed)),
		order:      make([]string, 0, len(seed)),
	}
	for _, a := range seed {
		if err := validateSeed(a); err != nil {
			return nil, err
		}
		if _, dup := r.activities[a.Name]; dup {
			return nil, fmt.Errorf("duplicate activity %q", a.Name)
		}
		c := a.Clone()
		r.activities[a.Name] = &c
		r.order = append(r.order, a.Name)
	}
	return r, nil
}

// ListActivities возвращает копию реестра в порядке стартового набора.
func (r *MemoryActivityRepo) ListActivities(ctx context.Context) ([]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.activities[name].Clone())
	}
	return out, nil
}

// GetActivity возвращает копию одного кружка.
func (r *MemoryActivityRepo) GetActivity(ctx context.Context, name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// AddParticipant дописывает email в конец списка участников.
func (r *MemoryActivityRepo) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if a.IsFull() {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant удаляет email, сохраняя порядок остальных участников.
func (r *MemoryActivityRepo) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotSignedUp
}

func validateSeed(a model.Activity) error {
	if a.Name == "" {
		return fmt.Errorf("activity name must not be empty")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("activity %q: max_participants must be positive", a.Name)
	}
	if len(a.Participants) > a.MaxParticipants {
		return fmt.Errorf("activity %q: %d participants exceed limit %d", a.Name, len(a.Participants), a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("activity %q: duplicate participant %q", a.Name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
