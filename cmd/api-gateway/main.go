package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/sma-class-api/api/swagger"
	"github.com/noah-isme/sma-class-api/internal/handler"
	"github.com/noah-isme/sma-class-api/internal/middleware"
	"github.com/noah-isme/sma-class-api/internal/models"
	"github.com/noah-isme/sma-class-api/internal/repository"
	"github.com/noah-isme/sma-class-api/internal/service"
	"github.com/noah-isme/sma-class-api/pkg/cache"
	"github.com/noah-isme/sma-class-api/pkg/config"
	"github.com/noah-isme/sma-class-api/pkg/database"
	"github.com/noah-isme/sma-class-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-class-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-class-api/pkg/middleware/requestid"
)

// @title SMA Class API
// @version 0.1.0
// @description Class lifecycle and schedule grid service
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.RefCache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, reference data cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	defer cacheRepo.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	classRepo := repository.NewClassRepository(db)
	refDataRepo := repository.NewRefDataRepository(db)
	slotRepo := repository.NewScheduleSlotRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)

	classSvc := service.NewClassService(classRepo, refDataRepo, slotRepo, studentRepo, subjectRepo, db, validate, metricsSvc, logr)
	refDataSvc := service.NewRefDataService(refDataRepo, cacheRepo, metricsSvc, cfg.RefCache.TTL, logr)
	exportSvc := service.NewTimetableExportService(classSvc)

	classHandler := handler.NewClassHandler(classSvc)
	refDataHandler := handler.NewRefDataHandler(refDataSvc)
	exportHandler := handler.NewTimetableExportHandler(exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.GET("/days", refDataHandler.Days)
	api.GET("/periods", refDataHandler.Periods)

	classes := api.Group("/classes", middleware.JWT(cfg.JWT.Secret))
	{
		classes.GET("", classHandler.List)
		classes.GET("/grade_group", classHandler.GradeGroups)
		classes.GET("/schedule", classHandler.Schedule)
		classes.GET("/students", classHandler.Students)
		classes.GET("/subjects-with-teachers/:id", classHandler.SubjectsWithTeachers)
		classes.GET("/:id", classHandler.Get)
		classes.GET("/:id/can-delete", classHandler.CanDelete)
		classes.GET("/:id/schedule", classHandler.Schedule)
		classes.GET("/:id/schedule/export", exportHandler.Export)

		admin := classes.Group("", middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("", classHandler.Create)
			admin.PUT("/:id", classHandler.Update)
			admin.DELETE("/:id", classHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
