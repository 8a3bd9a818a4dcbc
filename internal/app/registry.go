package app

import (
	"database/sql"

	"go-schoolfee/internal/feeadjustment"
	"go-schoolfee/internal/feecatalog"
	"go-schoolfee/internal/feegenerator"
	"go-schoolfee/internal/feereport"
	"go-schoolfee/internal/latefee"
	"go-schoolfee/internal/messaging/kafka"
	"go-schoolfee/internal/middleware"
	"go-schoolfee/internal/payment"
	"go-schoolfee/internal/rbac"
	"go-schoolfee/internal/rbac/infra"
	"go-schoolfee/internal/roster"
	"go-schoolfee/internal/shared/counter"
	"go-schoolfee/internal/siblingdiscount"
	"go-schoolfee/internal/studentfee"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	userRateLimit = rate.Limit(20)
	userRateBurst = 40
	cronRateLimit = rate.Limit(1)
	cronRateBurst = 5
)

// services is the domain layer shared by the API and the consumer.
type services struct {
	catalog    feecatalog.Service
	discounts  siblingdiscount.Service
	generator  feegenerator.Service
	payments   payment.Service
	lateFees   latefee.Service
	adjustment feeadjustment.Service
	reports    feereport.Service
}

func buildServices(cfg Config, db *sql.DB, gormDB *gorm.DB, rdb *redis.Client, logger *zap.Logger) services {
	// --- Repositories ---
	catalogRepo := feecatalog.NewRepository(gormDB)
	discountRepo := siblingdiscount.NewRepository(gormDB)
	feeRepo := studentfee.NewRepository(gormDB)
	paymentRepo := payment.NewRepository(gormDB)
	lateFeeRepo := latefee.NewRepository(gormDB)
	adjustmentRepo := feeadjustment.NewRepository(gormDB)
	reportRepo := feereport.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	receiptRepo := counter.NewRepository(gormDB)
	directory := roster.NewDirectory(gormDB)

	resolver := siblingdiscount.NewResolver(discountRepo, directory)

	// --- Services ---
	return services{
		catalog:   feecatalog.NewService(db, catalogRepo, logger),
		discounts: siblingdiscount.NewService(db, discountRepo, resolver, logger),
		generator: feegenerator.NewService(db, feeRepo, catalogRepo, directory, resolver, outboxRepo, feegenerator.Options{
			DefaultDueDay:     cfg.DefaultDueDay,
			SchoolConcurrency: cfg.SchoolConcurrency,
		}, logger),
		payments: payment.NewService(db, paymentRepo, feeRepo, outboxRepo, receiptRepo, payment.Options{
			OverpaymentTolerance: cfg.OverpaymentTolerance,
		}, logger),
		lateFees: latefee.NewService(db, lateFeeRepo, feeRepo, directory, outboxRepo, latefee.Options{
			Defaults:          cfg.LateFee,
			SchoolConcurrency: cfg.SchoolConcurrency,
		}, logger),
		adjustment: feeadjustment.NewService(db, adjustmentRepo, feeRepo, catalogRepo, resolver, logger),
		reports:    feereport.NewService(reportRepo, rdb, cfg.ReportCacheTTL, logger),
	}
}

func registerModules(
	router *gin.Engine,
	cfg Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	svc := buildServices(cfg, db, gormDB, rdb, logger)

	// --- Handlers ---
	catalogHandler := feecatalog.NewHandler(svc.catalog, logger)
	discountHandler := siblingdiscount.NewHandler(svc.discounts, logger)
	generatorHandler := feegenerator.NewHandler(svc.generator, logger)
	paymentHandler := payment.NewHandlerWithRedis(svc.payments, rdb, logger)
	lateFeeHandler := latefee.NewHandler(svc.lateFees, logger)
	adjustmentHandler := feeadjustment.NewHandler(svc.adjustment, logger)
	reportHandler := feereport.NewHandler(svc.reports, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")

	fees := api.Group("/fees",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.TenantContext(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(userRateLimit, userRateBurst),
	)
	{
		feecatalog.RegisterRoutes(fees, catalogHandler, rbacService)
		siblingdiscount.RegisterRoutes(fees, discountHandler, rbacService)
		feegenerator.RegisterRoutes(fees, generatorHandler, rbacService)
		payment.RegisterRoutes(fees, paymentHandler, rbacService, rdb, logger)
		latefee.RegisterRoutes(fees, lateFeeHandler, rbacService)
		feeadjustment.RegisterRoutes(fees, adjustmentHandler, rbacService)
		feereport.RegisterRoutes(fees, reportHandler, rbacService)
	}

	cron := api.Group("/fees/cron",
		middleware.RateLimitByIP(cronRateLimit, cronRateBurst),
		middleware.CronSecret(cfg.CronSecret, logger),
		middleware.ContextLogger(logger),
	)
	{
		feegenerator.RegisterCronRoutes(cron, generatorHandler)
		latefee.RegisterCronRoutes(cron, lateFeeHandler)
	}

	return nil
}
