package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"activities-service/internal/model"
)

// teachersFile описывает формат файла учётных данных:
// {"teachers": {"<username>": {"password": "...", "name": "..."}}}.
type teachersFile struct {
	Teachers map[string]model.Teacher `json:"teachers"`
}

// CredentialStore хранит учётные записи учителей. Заполняется один раз при старте
// и дальше только читается, поэтому блокировки не нужны.
type CredentialStore struct {
	teachers map[string]model.Teacher
}

// NewCredentialStore создаёт хранилище из готового набора учётных записей.
func NewCredentialStore(teachers []model.Teacher) *CredentialStore {
	s := &CredentialStore{teachers: make(map[string]model.Teacher, len(teachers))}
	for _, t := range teachers {
		s.teachers[t.Username] = t
	}
	return s
}

// LoadTeachers читает файл учётных данных. Отсутствие файла не ошибка:
// сервис стартует с пустым набором, и войти никто не сможет.
func LoadTeachers(path string) (*CredentialStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewCredentialStore(nil), nil
		}
		return nil, fmt.Errorf("read teachers file: %w", err)
	}

	var f teachersFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode teachers file: %w", err)
	}

	teachers := make([]model.Teacher, 0, len(f.Teachers))
	for username, t := range f.Teachers {
		t.Username = username
		teachers = append(teachers, t)
	}
	return NewCredentialStore(teachers), nil
}

// GetTeacher возвращает учётную запись по логину.
func (s *CredentialStore) GetTeacher(username string) (model.Teacher, error) {
	t, ok := s.teachers[username]
	if !ok {
		return model.Teacher{}, ErrTeacherNotFound
	}
	return t, nil
}

// Len возвращает число загруженных учётных записей.
func (s *CredentialStore) Len() int {
	return len(s.teachers)
}
