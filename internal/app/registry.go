package app

import (
	"database/sql"

	"leaveflow/internal/auth"
	"leaveflow/internal/balance"
	"leaveflow/internal/leave"
	"leaveflow/internal/messaging/kafka"
	"leaveflow/internal/middleware"
	"leaveflow/internal/org"
	"leaveflow/internal/policy"
	"leaveflow/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	orgRepo := org.NewRepository(gormDB)
	policyRepo := policy.NewRepository(gormDB)
	balanceRepo := balance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	balanceService := balance.NewService(db, balanceRepo, policyRepo, rdb)
	orgService := org.NewService(db, orgRepo, balanceService)
	policyService := policy.NewService(db, policyRepo, orgRepo)
	authService := auth.NewService(orgRepo)
	chainBuilder := leave.NewChainBuilder(orgRepo)
	leaveService := leave.NewService(db, leaveRepo, orgRepo, policyService, balanceService, chainBuilder, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	orgHandler := org.NewHandler(orgService)
	policyHandler := policy.NewHandler(policyService)
	balanceHandler := balance.NewHandler(balanceService)
	leaveHandler := leave.NewHandler(leaveService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		org.RegisterRoutes(api, orgHandler, rbacService)
		policy.RegisterRoutes(api, policyHandler, rbacService)
		balance.RegisterRoutes(api, balanceHandler, rbacService, rdb)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
	}

	return nil
}
