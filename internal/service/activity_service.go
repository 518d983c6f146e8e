// Package service содержит бизнес-логику входа учителей и записи учеников в кружки.
package service

import (
	"context"
	"errors"
	"fmt"

	"activities-service/internal/model"
	"activities-service/internal/repository"
)

// ActivityRepository описывает контракт реестра кружков для бизнес-слоя.
// AddParticipant и RemoveParticipant должны проверять инварианты и менять состав атомарно.
type ActivityRepository interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService содержит операции записи и отписки учеников.
type ActivityService struct {
	repo ActivityRepository
}

// NewActivityService создаёт новый сервис для операций над кружками.
func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// ListActivities возвращает полный снимок реестра.
func (s *ActivityService) ListActivities(ctx context.Context) ([]model.Activity, error) {
	activities, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, errInternal("failed to list activities", err)
	}
	return activities, nil
}

// Signup записывает ученика в кружок от имени учителя actor.
func (s *ActivityService) Signup(ctx context.Context, name, email, actor string) (string, error) {
	if actor == "" {
		return "", ErrUnauthenticated(msgAuthRequired)
	}

	if err := s.repo.AddParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			return "", ErrNotFound("Activity not found")
		case errors.Is(err, repository.ErrAlreadySignedUp):
			return "", ErrDomain(CodeAlreadySignedUp, "Student is already signed up")
		case errors.Is(err, repository.ErrActivityFull):
			return "", ErrDomain(CodeActivityFull, "Activity is full")
		default:
			return "", errInternal("failed to sign up", err)
		}
	}

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister отписывает ученика от кружка от имени учителя actor.
func (s *ActivityService) Unregister(ctx context.Context, name, email, actor string) (string, error) {
	if actor == "" {
		return "", ErrUnauthenticated(msgAuthRequired)
	}

	if err := s.repo.RemoveParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			return "", ErrNotFound("Activity not found")
		case errors.Is(err, repository.ErrNotSignedUp):
			return "", ErrDomain(CodeNotSignedUp, "Student is not signed up for this activity")
		default:
			return "", errInternal("failed to unregister", err)
		}
	}

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}
