package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string             `yaml:"env" env:"ENV" env-default:"local"`
	DSN          string             `yaml:"dsn" env:"DSN" env-required:"true"`
	HTTP         HTTPConfig         `yaml:"http"`
	Auth         AuthConfig         `yaml:"auth"`
	ImageStorage ImageStorageConfig `yaml:"image_storage"`
	OSS          OSSConfig          `yaml:"oss"`
	Redis        RedisConf          `yaml:"redis"`
	Email        EmailConfig        `yaml:"email"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	SessionSecret   string        `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env-default:"168h"`
}

type ImageStorageConfig struct {
	// Backend is either "local" or "oss".
	Backend string `yaml:"backend" env:"IMAGE_STORAGE_BACKEND" env-default:"local"`
	BaseDir string `yaml:"base_dir" env-default:"./uploads"`
	BaseURL string `yaml:"base_url" env-default:"http://localhost:8080/uploads"`
	MaxSize int64  `yaml:"max_size" env-default:"10485760"`
}

type OSSConfig struct {
	Endpoint        string `yaml:"endpoint" env:"OSS_ENDPOINT"`
	Region          string `yaml:"region" env:"OSS_REGION"`
	Bucket          string `yaml:"bucket" env:"OSS_BUCKET"`
	AccessKeyID     string `yaml:"access_key_id" env:"OSS_ACCESS_KEY_ID"`
	AccessKeySecret string `yaml:"access_key_secret" env:"OSS_ACCESS_KEY_SECRET"`
	PublicURL       string `yaml:"public_url" env:"OSS_PUBLIC_URL"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser     string `yaml:"smtp_user" env:"SMTP_USER"`
	SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
	From         string `yaml:"from" env:"EMAIL_FROM" env-default:"webmaster@localhost"`
	// SiteURL is used to build confirmation and unsubscribe links.
	SiteURL string `yaml:"site_url" env:"SITE_URL" env-default:"http://localhost:8080"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
