package app

import (
	"os"

	"leaveflow/internal/balance"
	"leaveflow/internal/leave"
	"leaveflow/internal/org"
	"leaveflow/internal/policy"
	"leaveflow/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := migrate(gormDB); err != nil {
			return err
		}
		logger.Info("schema migration applied")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, db, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&org.Role{},
		&org.User{},
		&policy.LeaveType{},
		&policy.RolePolicy{},
		&balance.LeaveBalance{},
		&leave.LeaveRequest{},
		&leave.LeaveApproval{},
	); err != nil {
		return err
	}

	// Outbox pakai raw SQL, bukan entity gorm.
	return gormDB.Exec(`
		CREATE TABLE IF NOT EXISTS outbox_events (
			id uuid PRIMARY KEY,
			request_id text,
			aggregate_type text NOT NULL,
			aggregate_id text NOT NULL,
			event_type text NOT NULL,
			topic text NOT NULL,
			payload jsonb NOT NULL,
			status text NOT NULL DEFAULT 'pending',
			retry_count int NOT NULL DEFAULT 0,
			error_message text,
			next_retry_at timestamptz NOT NULL DEFAULT now(),
			processed_at timestamptz,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`).Error
}
