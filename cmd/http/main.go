package main

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/delivery/http/middlewares"
	"clinicgate-service/internal/app/delivery/http/routers"
	"clinicgate-service/internal/app/drivers/database"
	"clinicgate-service/internal/app/drivers/logger"
	"clinicgate-service/internal/app/drivers/messaging"
	"clinicgate-service/internal/app/drivers/storage"
	backendauth "clinicgate-service/internal/app/services/backendapi/auth"
	backendpermissions "clinicgate-service/internal/app/services/backendapi/permissions"
	"clinicgate-service/internal/app/services/core/activitylogs"
	"clinicgate-service/internal/app/services/core/auth"
	"clinicgate-service/internal/app/services/core/guard"
	"clinicgate-service/internal/app/services/core/permissions"
	"clinicgate-service/internal/app/services/core/session"
	"clinicgate-service/internal/app/services/shared/audit"
	"clinicgate-service/internal/app/services/shared/redis"
	sharedstorage "clinicgate-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	auditPublisher := audit.NewAuditPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	archiveStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.InternalConfig.Archive.BucketName)

	// Backend API clients
	backendAuthClient := backendauth.NewBackendAuthClient(bootstrap.InternalConfig, bootstrap.Logger)
	permissionClient := backendpermissions.NewPermissionClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Activity log
	activityLogMongoRepository := activitylogs.NewActivityLogMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	activityLogUsecase := activitylogs.NewActivityLogUsecase(activityLogMongoRepository, archiveStorage, bootstrap.Logger)
	activityLogController := activitylogs.NewActivityLogController(activityLogUsecase, bootstrap.Logger)

	// Permissions
	cacheExpiry := time.Duration(bootstrap.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	permissionUsecase := permissions.NewPermissionUsecase(permissionClient, redisRepository, bootstrap.Logger, cacheExpiry)
	permissionController := permissions.NewPermissionController(permissionUsecase, activityLogUsecase, bootstrap.Logger)

	// Guard
	guardUsecase := guard.NewGuardUsecase(permissionUsecase, activityLogUsecase, auditPublisher, bootstrap.Logger)
	guardController := guard.NewGuardController(guardUsecase, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		backendAuthClient,
		sessionService,
		permissionUsecase,
		activityLogUsecase,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, permissionUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		permissionController,
		guardController,
		activityLogController,
	)
}
