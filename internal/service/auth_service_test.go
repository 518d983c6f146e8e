package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-service/internal/auth"
	"activities-service/internal/model"
	"activities-service/internal/repository"
	"activities-service/internal/service"
	"activities-service/internal/service/mocks"
)

var rodriguez = model.Teacher{Username: "mrodriguez", Password: "pw1", Name: "Ms. Rodriguez"}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(cs *mocks.CredentialStore, ts *mocks.TokenService)
		wantErr    bool
		wantStatus int
	}{
		{
			name:     "Success",
			username: "mrodriguez",
			password: "pw1",
			setupMocks: func(cs *mocks.CredentialStore, ts *mocks.TokenService) {
				cs.On("GetTeacher", "mrodriguez").Return(rodriguez, nil)
				ts.On("Issue", "mrodriguez", 30*time.Minute).Return("signed.jwt.token", nil)
			},
		},
		{
			name:     "Fail: Wrong password",
			username: "mrodriguez",
			password: "wrong",
			setupMocks: func(cs *mocks.CredentialStore, ts *mocks.TokenService) {
				cs.On("GetTeacher", "mrodriguez").Return(rodriguez, nil)
			},
			wantErr:    true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "Fail: Unknown teacher",
			username: "ghost",
			password: "pw1",
			setupMocks: func(cs *mocks.CredentialStore, ts *mocks.TokenService) {
				cs.On("GetTeacher", "ghost").Return(model.Teacher{}, repository.ErrTeacherNotFound)
			},
			wantErr:    true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "Fail: Signing error",
			username: "mrodriguez",
			password: "pw1",
			setupMocks: func(cs *mocks.CredentialStore, ts *mocks.TokenService) {
				cs.On("GetTeacher", "mrodriguez").Return(rodriguez, nil)
				ts.On("Issue", "mrodriguez", 30*time.Minute).Return("", errors.New("hmac broken"))
			},
			wantErr:    true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := new(mocks.CredentialStore)
			ts := new(mocks.TokenService)
			tt.setupMocks(cs, ts)

			svc := service.NewAuthService(cs, ts, 30*time.Minute)
			res, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "signed.jwt.token", res.AccessToken)
				assert.Equal(t, "bearer", res.TokenType)
				assert.Equal(t, "Ms. Rodriguez", res.TeacherName)
			}
			cs.AssertExpectations(t)
			ts.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginWrongPasswordMessage(t *testing.T) {
	store := repository.NewCredentialStore([]model.Teacher{rodriguez})
	tokens, err := auth.NewTokenService("test-secret")
	require.NoError(t, err)

	svc := service.NewAuthService(store, tokens, 30*time.Minute)

	res, err := svc.Login(context.Background(), "mrodriguez", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "mrodriguez", svc.Identify(context.Background(), res.AccessToken))

	_, err = svc.Login(context.Background(), "mrodriguez", "wrong")
	var appErr *service.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid username or password", appErr.Message)
}

func TestAuthService_Identify(t *testing.T) {
	cs := new(mocks.CredentialStore)
	ts := new(mocks.TokenService)
	ts.On("Validate", "good").Return("mrodriguez", true)
	ts.On("Validate", "bad").Return("", false)

	svc := service.NewAuthService(cs, ts, time.Minute)

	assert.Equal(t, "mrodriguez", svc.Identify(context.Background(), "good"))
	assert.Equal(t, "", svc.Identify(context.Background(), "bad"))
	ts.AssertExpectations(t)
}

func TestAuthService_Verify(t *testing.T) {
	tests := []struct {
		name       string
		subject    string
		setupMocks func(cs *mocks.CredentialStore)
		wantMsg    string
	}{
		{
			name:    "Success",
			subject: "mrodriguez",
			setupMocks: func(cs *mocks.CredentialStore) {
				cs.On("GetTeacher", "mrodriguez").Return(rodriguez, nil)
			},
		},
		{
			name:       "Fail: Anonymous",
			subject:    "",
			setupMocks: func(cs *mocks.CredentialStore) {},
			wantMsg:    "Invalid or expired token",
		},
		{
			name:    "Fail: Teacher removed",
			subject: "ghost",
			setupMocks: func(cs *mocks.CredentialStore) {
				cs.On("GetTeacher", "ghost").Return(model.Teacher{}, repository.ErrTeacherNotFound)
			},
			wantMsg: "Teacher not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := new(mocks.CredentialStore)
			tt.setupMocks(cs)

			svc := service.NewAuthService(cs, new(mocks.TokenService), time.Minute)
			teacher, err := svc.Verify(context.Background(), tt.subject)

			if tt.wantMsg != "" {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, http.StatusUnauthorized, appErr.Status)
				assert.Equal(t, tt.wantMsg, appErr.Message)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Ms. Rodriguez", teacher.Name)
			}
			cs.AssertExpectations(t)
		})
	}
}

func TestAuthService_RequireTeacher(t *testing.T) {
	cs := new(mocks.CredentialStore)
	cs.On("GetTeacher", "mrodriguez").Return(rodriguez, nil)
	cs.On("GetTeacher", "ghost").Return(model.Teacher{}, repository.ErrTeacherNotFound)

	svc := service.NewAuthService(cs, new(mocks.TokenService), time.Minute)

	actor, err := svc.RequireTeacher(context.Background(), "mrodriguez")
	require.NoError(t, err)
	assert.Equal(t, "mrodriguez", actor)

	for _, subject := range []string{"", "ghost"} {
		_, err := svc.RequireTeacher(context.Background(), subject)
		assert.True(t, service.IsUnauthenticated(err))

		var appErr *service.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Authentication required. Only teachers can perform this action.", appErr.Message)
	}
	cs.AssertExpectations(t)
}
