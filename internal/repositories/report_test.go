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

	"github.com/adenmarket/adenmarket/internal/models"
)

func setupReportPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS reports (
		report_id UUID PRIMARY KEY,
		item_id UUID NOT NULL,
		reporter_id UUID NOT NULL,
		reporter_name VARCHAR(100) NOT NULL,
		reported_name VARCHAR(100) NOT NULL,
		reason TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (reporter_id, item_id)
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

func TestReportWriteRepository_Save(t *testing.T) {
	db, teardown := setupReportPostgresContainer(t)
	defer teardown()

	repo := NewReportWriteRepository(db)
	ctx := context.Background()

	itemID := uuid.New()
	reporterID := uuid.New()
	imageURL := "https://storage.example/report-images/reports/abc.png"

	report := &models.ReportDB{
		ItemID:       itemID,
		ReporterID:   reporterID,
		ReporterName: "Adena Dealer",
		ReportedName: "Shady Vendor",
		Reason:       "scam",
		Description:  "took the adena and vanished",
		ImageURL:     &imageURL,
	}

	t.Run("Insert", func(t *testing.T) {
		inserted, err := repo.Save(ctx, report)
		assert.NoError(t, err)
		assert.True(t, inserted)

		var got models.ReportDB
		err = db.Get(&got, "SELECT report_id, item_id, reporter_id, reporter_name, reported_name, reason, description, image_url, created_at FROM reports WHERE reporter_id = $1", reporterID)
		assert.NoError(t, err)
		assert.Equal(t, itemID, got.ItemID)
		assert.Equal(t, "scam", got.Reason)
		if assert.NotNil(t, got.ImageURL) {
			assert.Equal(t, imageURL, *got.ImageURL)
		}
	})

	t.Run("RepeatReportIsNoOp", func(t *testing.T) {
		inserted, err := repo.Save(ctx, report)
		assert.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("DifferentReporterSameItem", func(t *testing.T) {
		other := &models.ReportDB{
			ItemID:       itemID,
			ReporterID:   uuid.New(),
			ReporterName: "Second Witness",
			ReportedName: "Shady Vendor",
			Reason:       "scam",
		}
		inserted, err := repo.Save(ctx, other)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("SameReporterDifferentItem", func(t *testing.T) {
		other := &models.ReportDB{
			ItemID:       uuid.New(),
			ReporterID:   reporterID,
			ReporterName: "Adena Dealer",
			ReportedName: "Another Vendor",
			Reason:       "fake screenshot",
		}
		inserted, err := repo.Save(ctx, other)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})
}
