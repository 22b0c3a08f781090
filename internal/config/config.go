package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio. Se carga una sola vez al
// arrancar y se inyecta explícitamente en los constructores; ningún componente
// lee variables de entorno en runtime.
type Config struct {
	HTTPPort             string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL          string `env:"DATABASE_URL,required"`
	JWTSecret            string `env:"JWT_SECRET,required"`
	JWTTTLSeconds        int    `env:"JWT_TTL_SECONDS" envDefault:"3600"`
	JWTRefreshTTLMinutes int    `env:"JWT_REFRESH_TTL_MINUTES" envDefault:"43200"`
	BcryptCost           int    `env:"BCRYPT_COST" envDefault:"10"`
	RedisAddr            string `env:"REDIS_ADDR"`
	RedisPassword        string `env:"REDIS_PASSWORD"`
	RedisDB              int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
