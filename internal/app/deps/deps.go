package deps

import (
	"context"
	"sync"
	"tasknotes/internal/config"
	dl "tasknotes/internal/core/domain/logging"
	drl "tasknotes/internal/core/domain/rate_limiter"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	duow "tasknotes/internal/core/domain/unit_of_work"
	dbreminder "tasknotes/internal/db/reminder"
	dbtask "tasknotes/internal/db/task"
	uow "tasknotes/internal/db/unit_of_work"
	"tasknotes/internal/implementations/broadcaster"
	"tasknotes/internal/implementations/logging"
	ratelimiter "tasknotes/internal/implementations/rate_limiter"
	"tasknotes/internal/rabbitmq"
	reminderevents "tasknotes/internal/rabbitmq/publishers/reminder_events"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB          *pgxpool.Pool
	Redis       *redis.Client
	Rabbitmq    *rabbitmq.Connection
	Broadcaster *broadcaster.SSE

	Now func() time.Time

	UnitOfWork         duow.UnitOfWork
	ReminderRepository reminder.ReminderRepository
	TaskProvider       task.Provider
	TaskOwners         task.OwnershipResolver

	RateLimiter drl.RateLimiter

	ReminderEventPublisher reminder.EventPublisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeBroadcaster := deps.initBroadcaster()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.ReminderRepository = dbreminder.NewPgxReminderRepository(deps.DB)
	taskRepository := dbtask.NewPgxTaskRepository(deps.DB)
	deps.TaskProvider = taskRepository
	deps.TaskOwners = taskRepository

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	closeEventPublisher := deps.initRabbitmqEventPublisher()

	return deps, func() {
		closeFuncs := []func(){
			closeBroadcaster,
			closeEventPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqEventPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqReminderExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.ReminderEventPublisher = reminderevents.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqReminderExchange,
		deps.Config.RabbitmqReminderRoutingKey,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down reminder event publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Reminder event publisher shut down.")
	}
}

func (deps *Deps) initBroadcaster() func() {
	deps.Broadcaster = broadcaster.NewSSE()
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE broadcaster.")
		deps.Broadcaster.Close()
		deps.Logger.Info(context.Background(), "SSE broadcaster shut down.")
	}
}
