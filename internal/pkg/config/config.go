package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultFeedHeartbeat  = 15 * time.Second
	defaultMaxUploadBytes = 8 << 20
)

type (
	Tasks struct {
		CityRefreshInterval time.Duration
		FeedResyncInterval  time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		FeedHeartbeat    time.Duration // комментарий-пинг в SSE ленте
		MaxUploadBytes   int64         // тело перехода статуса вместе с фото
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int32
	}

	Auth struct {
		JWTSecret string
		Issuer    string
	}

	Dispatch struct {
		DefaultCity     string
		ClaimMaxRetries uint64
	}

	Tracking struct {
		SampleInterval    time.Duration
		MaxInterval       time.Duration
		MinDistanceMeters float64
		PublishTimeout    time.Duration
	}

	Presence struct {
		GeocodeTimeout    time.Duration
		CityRecheckMeters float64
	}

	Maps struct {
		GRPCHost     string
		RouteTimeout time.Duration
	}

	Storage struct {
		Endpoint      string
		AccessKey     string
		SecretKey     string
		Bucket        string
		UseSSL        bool
		PublicBaseURL string
	}

	Kafka struct {
		PortHealthcheck     string
		Brokers             string
		Topic               string
		DeliveryEventsTopic string
		ConsumerGroup       string
		Sarama              Sarama
		Handlers            KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Auth     Auth
		Dispatch Dispatch
		Tracking Tracking
		Presence Presence
		Maps     Maps
		Storage  Storage
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase читает только параметры PostgreSQL, например для cmd/migrate.
func LoadDatabase() (*Database, error) {
	db, err := loadDatabase()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return db, nil
}

func loadDatabase() (*Database, error) {
	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		MaxConns: int32(maxConns),
	}, nil
}

func loadFromEnv() (*Config, error) {
	cityRefreshInterval, err := osGetEnvDuration("BACKGROUND_CITY_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	feedResyncInterval, err := osGetEnvDuration("BACKGROUND_FEED_RESYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	feedHeartbeat, err := osGetEnvDuration("SERVER_FEED_HEARTBEAT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if feedHeartbeat == 0 {
		feedHeartbeat = defaultFeedHeartbeat
	}

	maxUploadBytes, err := osGetInt("SERVER_MAX_UPLOAD_BYTES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if maxUploadBytes == 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	database, err := loadDatabase()
	if err != nil {
		return nil, err
	}

	claimMaxRetries, err := osGetInt("DISPATCH_CLAIM_MAX_RETRIES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sampleInterval, err := osGetEnvDuration("TRACKING_SAMPLE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxInterval, err := osGetEnvDuration("TRACKING_MAX_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minDistance, err := osGetFloat("TRACKING_MIN_DISTANCE_METERS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	publishTimeout, err := osGetEnvDuration("TRACKING_PUBLISH_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocodeTimeout, err := osGetEnvDuration("PRESENCE_GEOCODE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cityRecheck, err := osGetFloat("PRESENCE_CITY_RECHECK_METERS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	routeTimeout, err := osGetEnvDuration("MAPS_ROUTE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	storageSSL, err := osGetBool("STORAGE_USE_SSL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			CityRefreshInterval: cityRefreshInterval,
			FeedResyncInterval:  feedResyncInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			FeedHeartbeat:    feedHeartbeat,
			MaxUploadBytes:   int64(maxUploadBytes),
		},
		Database: *database,
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			Issuer:    os.Getenv("AUTH_JWT_ISSUER"),
		},
		Dispatch: Dispatch{
			DefaultCity:     os.Getenv("DISPATCH_DEFAULT_CITY"),
			ClaimMaxRetries: uint64(claimMaxRetries),
		},
		Tracking: Tracking{
			SampleInterval:    sampleInterval,
			MaxInterval:       maxInterval,
			MinDistanceMeters: minDistance,
			PublishTimeout:    publishTimeout,
		},
		Presence: Presence{
			GeocodeTimeout:    geocodeTimeout,
			CityRecheckMeters: cityRecheck,
		},
		Maps: Maps{
			GRPCHost:     os.Getenv("MAPS_GRPC_HOST"),
			RouteTimeout: routeTimeout,
		},
		Storage: Storage{
			Endpoint:      os.Getenv("STORAGE_ENDPOINT"),
			AccessKey:     os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey:     os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:        os.Getenv("STORAGE_BUCKET"),
			UseSSL:        storageSSL,
			PublicBaseURL: os.Getenv("STORAGE_PUBLIC_BASE_URL"),
		},
		Kafka: Kafka{
			Brokers:             os.Getenv("KAFKA_BROKERS"),
			Topic:               os.Getenv("KAFKA_TOPIC"),
			DeliveryEventsTopic: os.Getenv("KAFKA_DELIVERY_EVENTS_TOPIC"),
			ConsumerGroup:       os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:     os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Dispatch.DefaultCity == "" {
		return errors.New("DISPATCH_DEFAULT_CITY is required")
	}

	if cfg.Tasks.CityRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_CITY_REFRESH_INTERVAL is required")
	}
	if cfg.Tasks.FeedResyncInterval == time.Duration(0) {
		return errors.New("BACKGROUND_FEED_RESYNC_INTERVAL is required")
	}

	if cfg.Tracking.SampleInterval == time.Duration(0) {
		return errors.New("TRACKING_SAMPLE_INTERVAL is required")
	}
	if cfg.Tracking.MaxInterval < cfg.Tracking.SampleInterval {
		return errors.New("TRACKING_MAX_INTERVAL must not be less than TRACKING_SAMPLE_INTERVAL")
	}
	if cfg.Tracking.PublishTimeout == time.Duration(0) {
		return errors.New("TRACKING_PUBLISH_TIMEOUT is required")
	}
	if cfg.Tracking.MinDistanceMeters < 0 {
		return errors.New("TRACKING_MIN_DISTANCE_METERS must not be negative")
	}

	if cfg.Presence.GeocodeTimeout == time.Duration(0) {
		return errors.New("PRESENCE_GEOCODE_TIMEOUT is required")
	}

	if cfg.Maps.GRPCHost == "" {
		return errors.New("MAPS_GRPC_HOST is required")
	}

	if cfg.Storage.Endpoint == "" {
		return errors.New("STORAGE_ENDPOINT is required")
	}
	if cfg.Storage.Bucket == "" {
		return errors.New("STORAGE_BUCKET is required")
	}
	if cfg.Storage.PublicBaseURL == "" {
		return errors.New("STORAGE_PUBLIC_BASE_URL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.DeliveryEventsTopic == "" {
		return errors.New("KAFKA_DELIVERY_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	if res < 0 {
		return 0, fmt.Errorf("negative value for %s=%q", s, val)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
