package config

import "time"

type Config struct {
	HTTP             HTTP
	PostgresEndpoint string        `env:"POSTGRES_ENDPOINT"`
	MongoEndpoint    string        `env:"MONGO_ENDPOINT"`
	RedisEndpoint    string        `env:"REDIS_ENDPOINT"`
	JWTSecret        string        `env:"JWT_SECRET"`
	TokenTTL         time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	UserCacheTTL     time.Duration `env:"USER_CACHE_TTL" envDefault:"10m"`
	UploadsDir       string        `env:"UPLOADS_DIR" envDefault:"uploads"`
}

type HTTP struct {
	Port            int           `env:"PORT" envDefault:"8000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
