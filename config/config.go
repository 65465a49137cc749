package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":4000"`
	FrontendURL string        `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	UploadDir   string        `env:"UPLOAD_DIR" envDefault:"./uploads"`
	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL      time.Duration `env:"JWT_TTL" envDefault:"168h"`

	DB     Postgres `envPrefix:"DB_"`
	Redis  Redis    `envPrefix:"REDIS_"`
	Kafka  Kafka    `envPrefix:"KAFKA_"`
	Stripe Stripe   `envPrefix:"STRIPE_"`
	SMTP   SMTP     `envPrefix:"SMTP_"`
	Admin  Admin    `envPrefix:"ADMIN_"`
	Worker Worker
}

type Postgres struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"foodigo"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
}

type Redis struct {
	Host string `env:"HOST" envDefault:"localhost"`
	Port string `env:"PORT" envDefault:"6379"`
}

type Kafka struct {
	Broker  string `env:"BROKER" envDefault:"localhost:9092"`
	Topic   string `env:"TOPIC" envDefault:"foodigo-events"`
	GroupID string `env:"GROUP_ID" envDefault:"foodigo-worker"`
}

type Stripe struct {
	SecretKey string `env:"SECRET_KEY"`
	Currency  string `env:"CURRENCY" envDefault:"usd"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"orders@foodigo.local"`
}

// Admin seeds the first console account when both fields are set.
type Admin struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

type Worker struct {
	Interval          time.Duration `env:"WORKER_INTERVAL" envDefault:"1m"`
	PendingOrderTTL   time.Duration `env:"PENDING_ORDER_TTL" envDefault:"24h"`
	ScheduleGrace     time.Duration `env:"SCHEDULE_GRACE" envDefault:"15m"`
	ReviewMarkerTTL   time.Duration `env:"REVIEW_MARKER_TTL" envDefault:"24h"`
	LowStockThreshold int           `env:"LOW_STOCK_THRESHOLD" envDefault:"10"`
}

// MustLoad reads an optional .env file and parses the environment.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("Failed to parse config:", err)
	}
	return cfg
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Name)
}

func MustInitPostgres(cfg Postgres) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}
