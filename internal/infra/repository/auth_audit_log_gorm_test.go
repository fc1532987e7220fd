package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/repository"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB接続文字列を環境変数から読む。無ければスキップ。
func testDSN(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}
	return dsn
}

func TestAuthAuditLogGormRepository_Create(t *testing.T) {
	dsn := testDSN(t)
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.AuthAuditLog{}))

	r := repository.NewAuthAuditLogGormRepository(gdb)

	id := uuid.NewString()
	err = r.Create(context.Background(), model.AuthAuditLog{
		ID:         id,
		Action:     model.AuthAuditActionLogin,
		Username:   "e2e-" + id[:8],
		Succeeded:  false,
		StatusCode: 401,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	// gormを通さずに行を確認する
	sqlDB, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	var (
		action    string
		succeeded bool
		status    int
	)
	row := sqlDB.QueryRow(`SELECT action, succeeded, status_code FROM auth_audit_logs WHERE id = $1`, id)
	require.NoError(t, row.Scan(&action, &succeeded, &status))
	assert.Equal(t, string(model.AuthAuditActionLogin), action)
	assert.False(t, succeeded)
	assert.Equal(t, 401, status)
}

func TestNoopAuthAuditLogRepository(t *testing.T) {
	r := repository.NewNoopAuthAuditLogRepository()

	assert.NoError(t, r.Create(context.Background(), model.AuthAuditLog{ID: "x"}))
}
