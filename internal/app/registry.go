package app

import (
	"context"
	"database/sql"
	"net/http"

	"colfdesk/internal/attendance"
	"colfdesk/internal/contract"
	"colfdesk/internal/dashboard"
	"colfdesk/internal/employer"
	"colfdesk/internal/justification"
	"colfdesk/internal/messaging/kafka"
	"colfdesk/internal/middleware"
	"colfdesk/internal/payroll"
	"colfdesk/internal/schedule"
	"colfdesk/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Repositories ---
	employerRepo := employer.NewRepository(gormDB)
	workerRepo := worker.NewRepository(gormDB)
	contractRepo := contract.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	justificationRepo := justification.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employerService := employer.NewService(db, employerRepo)
	workerService := worker.NewService(db, workerRepo)
	contractService := contract.NewServiceWithOutbox(db, contractRepo, outboxRepo)
	scheduleService := schedule.NewService(db, scheduleRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, scheduleService)
	justificationService := justification.NewService(justificationRepo)
	payrollService := payroll.NewService(payrollRepo, rdb)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)

	if err := justificationService.SeedDefaults(context.Background()); err != nil {
		return err
	}

	// --- Handlers ---
	employerHandler := employer.NewHandler(employerService)
	workerHandler := worker.NewHandler(workerService)
	contractHandler := contract.NewHandler(contractService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	justificationHandler := justification.NewHandler(justificationService)
	payrollHandler := payroll.NewHandler(payrollService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes ---
	api := router.Group("/api/v1")
	if rdb != nil {
		api.Use(middleware.Idempotency(rdb))
	}
	{
		employer.RegisterRoutes(api, employerHandler)
		worker.RegisterRoutes(api, workerHandler)
		contract.RegisterRoutes(api, contractHandler)
		schedule.RegisterRoutes(api, scheduleHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		justification.RegisterRoutes(api, justificationHandler)
		payroll.RegisterRoutes(api, payrollHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
