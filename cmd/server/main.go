package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	recoveryRepo "caesar_cipher/internal/repository/recovery"
	redisSvc "caesar_cipher/internal/service/redis"
	"caesar_cipher/internal/service/server"
	"caesar_cipher/internal/utils/log"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	defer log.Sync()

	mongoDBClient, err := initMongo()
	if err != nil {
		log.Fatal("connect mongo failed", zap.Error(err))
	}
	defer mongoDBClient.Disconnect(context.Background())

	db := mongoDBClient.Database("caesar")

	rdb := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379", // Redis server
		Password: "",               // no password by default
		DB:       0,                // use default DB
	})

	redis := redisSvc.NewRedis(rdb)
	if err := redis.Ping(context.Background()); err != nil {
		log.Warn("redis unavailable, recoveries will not be cached", zap.Error(err))
	}

	repo := recoveryRepo.NewRecoveryRepo(db)
	c := server.NewHttpServer(repo, redis)
	go func() {
		if err := c.Run("localhost:9090"); err != nil {
			log.Fatal("http server stopped", zap.Error(err))
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	<-done
}

func initMongo() (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		return nil, err
	}
	return client, client.Ping(ctx, nil)
}
