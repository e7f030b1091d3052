package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupAccessLogPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS access_log (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		ip VARCHAR(45) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestAccessLogRepositories(t *testing.T) {
	db, teardown := setupAccessLogPostgresContainer(t)
	defer teardown()

	writeRepo := NewAccessLogWriteRepository(db)
	readRepo := NewAccessLogReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("AppendAndListNewestFirst", func(t *testing.T) {
		for _, ip := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.1"} {
			assert.NoError(t, writeRepo.Append(ctx, userID, ip))
			time.Sleep(10 * time.Millisecond)
		}

		entries, err := readRepo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, entries, 3)
		assert.Equal(t, "203.0.113.1", entries[0].IP)
		assert.Equal(t, "203.0.113.2", entries[1].IP)
		assert.True(t, entries[0].CreatedAt.After(entries[2].CreatedAt))
	})

	t.Run("OtherUserIsEmpty", func(t *testing.T) {
		entries, err := readRepo.ListByUser(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
}
