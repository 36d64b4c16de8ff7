package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	dbadapter "mart/internal/adapters/database"
	"mart/internal/adapters/httpapi"
	redisadapter "mart/internal/adapters/redis"
	"mart/internal/config"
	feedapp "mart/internal/core/feed/service"
	"mart/internal/core/follower"
	followerapp "mart/internal/core/follower/service"
	"mart/internal/core/post"
	postapp "mart/internal/core/post/service"
	"mart/internal/core/user"
	userapp "mart/internal/core/user/service"
	"mart/internal/workers"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()
	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&follower.Follower{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(config.DB)
	activityQueue := redisadapter.NewActivityRepositoryRedis(config.RedisClient)

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	userSvc := userapp.NewUserService(userRepo, jwtSecret)
	postSvc := postapp.NewPostService(postRepo, userRepo)
	followerSvc := followerapp.NewFollowerService(followerRepo, userRepo)
	feedSvc := feedapp.NewFeedService(postRepo, followerRepo, userRepo)

	r := httpapi.SetupRoutes(userSvc, postSvc, followerSvc, feedSvc, jwtSecret, activityQueue)

	batchSize, err := strconv.Atoi(os.Getenv("BATCH_SIZE"))
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}
	flushMs, err := strconv.Atoi(os.Getenv("LASTSEEN_FLUSH_MS"))
	if err != nil || flushMs <= 0 {
		flushMs = 1000
	}

	lastSeenWorker := workers.NewLastSeenWorker(
		activityQueue,
		userRepo,
		batchSize,
		time.Duration(flushMs)*time.Millisecond,
		config.Logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go lastSeenWorker.Run(ctx)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
