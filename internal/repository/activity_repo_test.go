package repository_test

// Интеграционный тест поднимает PostgreSQL в контейнере; в режиме -short пропускается.

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"activities-service/internal/model"
	"activities-service/internal/repository"
)

func startPostgres(t *testing.T) *repository.Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "activities_test",
			"POSTGRES_USER":     "test_user",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test_user:test_password@%s:%s/activities_test?sslmode=disable", host, port.Port())
	db, err := repository.NewPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Pool.Close)

	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestActivityRepo_Postgres(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, db.Seed(ctx, repository.SeedActivities()))
	// повторный сид не дублирует участников
	require.NoError(t, db.Seed(ctx, repository.SeedActivities()))

	repo := repository.NewActivityRepo(db, repository.NewTransactionManager(db))

	t.Run("List seeded registry", func(t *testing.T) {
		list, err := repo.ListActivities(ctx)
		require.NoError(t, err)
		require.Len(t, list, 9)
		assert.Equal(t, seedNames(), activityNames(list))
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, list[0].Participants)
	})

	t.Run("Signup appends in order", func(t *testing.T) {
		require.NoError(t, repo.AddParticipant(ctx, "Chess Club", "new@mergington.edu"))

		chess := findActivity(t, repo, "Chess Club")
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@mergington.edu"}, chess.Participants)
	})

	t.Run("Rejections", func(t *testing.T) {
		assert.ErrorIs(t, repo.AddParticipant(ctx, "Knitting", "a@mergington.edu"), repository.ErrActivityNotFound)
		assert.ErrorIs(t, repo.AddParticipant(ctx, "Chess Club", "new@mergington.edu"), repository.ErrAlreadySignedUp)
		assert.ErrorIs(t, repo.RemoveParticipant(ctx, "Knitting", "a@mergington.edu"), repository.ErrActivityNotFound)
	})

	t.Run("Unregister twice", func(t *testing.T) {
		assert.NoError(t, repo.RemoveParticipant(ctx, "Chess Club", "new@mergington.edu"))
		assert.ErrorIs(t, repo.RemoveParticipant(ctx, "Chess Club", "new@mergington.edu"), repository.ErrNotSignedUp)
	})

	t.Run("Concurrent signups respect capacity", func(t *testing.T) {
		require.NoError(t, db.Seed(ctx, []model.Activity{{
			Name:            "Tiny Club",
			Description:     "Small",
			Schedule:        "Never",
			MaxParticipants: 3,
		}}))

		var wg sync.WaitGroup
		for i := 0; i < 12; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = repo.AddParticipant(ctx, "Tiny Club", fmt.Sprintf("s%d@mergington.edu", i))
			}(i)
		}
		wg.Wait()

		tiny := findActivity(t, repo, "Tiny Club")
		assert.Len(t, tiny.Participants, 3)
		assert.ErrorIs(t, repo.AddParticipant(ctx, "Tiny Club", "late@mergington.edu"), repository.ErrActivityFull)
	})
}

func findActivity(t *testing.T, repo *repository.ActivityRepo, name string) model.Activity {
	t.Helper()
	list, err := repo.ListActivities(context.Background())
	require.NoError(t, err)
	for _, a := range list {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("activity %q not found", name)
	return model.Activity{}
}
