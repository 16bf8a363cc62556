package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	RedisAddr   string `env:"REDIS_ADDR"`
	AmqpURL     string `env:"AMQP_URL"`
	Env         string `env:"APP_ENV" default:"dev"`
}
