package service

import (
	"context"
	"errors"
	"time"

	"activities-service/internal/auth"
	"activities-service/internal/model"
	"activities-service/internal/repository"
)

const msgAuthRequired = "Authentication required. Only teachers can perform this action."

// CredentialStore описывает источник учётных записей учителей.
type CredentialStore interface {
	GetTeacher(username string) (model.Teacher, error)
}

// TokenService описывает выпуск и проверку bearer-токенов.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Validate(token string) (string, bool)
}

// LoginResult — то, что получает учитель после успешного входа.
type LoginResult struct {
	AccessToken string
	TokenType   string
	TeacherName string
}

// AuthService отвечает за вход учителей и проверку их личности по токену.
type AuthService struct {
	creds    CredentialStore
	tokens   TokenService
	tokenTTL time.Duration
}

// NewAuthService создаёт сервис аутентификации. ttl — срок жизни токенов, выдаваемых при входе.
func NewAuthService(creds CredentialStore, tokens TokenService, ttl time.Duration) *AuthService {
	return &AuthService{
		creds:    creds,
		tokens:   tokens,
		tokenTTL: ttl,
	}
}

// Authenticate сверяет пароль простым сравнением строк.
// Возвращает учётную запись и true только при совпадении.
func (s *AuthService) Authenticate(username, password string) (model.Teacher, bool) {
	teacher, err := s.creds.GetTeacher(username)
	if err != nil {
		return model.Teacher{}, false
	}
	if teacher.Password != password {
		return model.Teacher{}, false
	}
	return teacher, true
}

// Login проверяет учётные данные и выдаёт токен.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	teacher, ok := s.Authenticate(username, password)
	if !ok {
		return LoginResult{}, ErrInvalidCredentials()
	}

	token, err := s.tokens.Issue(teacher.Username, s.tokenTTL)
	if err != nil {
		return LoginResult{}, errInternal("failed to issue token", err)
	}

	return LoginResult{
		AccessToken: token,
		TokenType:   auth.TokenType,
		TeacherName: teacher.Name,
	}, nil
}

// Identify возвращает логин из токена или пустую строку для анонима.
func (s *AuthService) Identify(ctx context.Context, token string) string {
	subject, ok := s.tokens.Validate(token)
	if !ok {
		return ""
	}
	return subject
}

// Verify возвращает учётную запись учителя, стоящего за идентичностью.
func (s *AuthService) Verify(ctx context.Context, subject string) (model.Teacher, error) {
	if subject == "" {
		return model.Teacher{}, ErrUnauthenticated("Invalid or expired token")
	}

	teacher, err := s.creds.GetTeacher(subject)
	if err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return model.Teacher{}, ErrUnauthenticated("Teacher not found")
		}
		return model.Teacher{}, errInternal("failed to get teacher", err)
	}
	return teacher, nil
}

// RequireTeacher пропускает только идентичность известного учителя.
// Аноним и неизвестный логин отклоняются одинаково.
func (s *AuthService) RequireTeacher(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", ErrUnauthenticated(msgAuthRequired)
	}
	if _, err := s.creds.GetTeacher(subject); err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return "", ErrUnauthenticated(msgAuthRequired)
		}
		return "", errInternal("failed to get teacher", err)
	}
	return subject, nil
}
