package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv        string
	AppPort       string
	DBDSN         string
	JWTSecret     string
	JWTExpiresMin int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	RedisAddr     string
	RedisPassword string

	// Avatar storage backend: "minio" or "disk".
	AvatarBackend  string
	AvatarDir      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	GoogleClientID  string
	GoogleSecret    string
	GoogleRedirect  string
	FrontendBaseURL string
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "10080")) // 7 days
	smtpPort, _ := strconv.Atoi(get("SMTP_PORT", "587"))
	useSSL, _ := strconv.ParseBool(get("MINIO_USE_SSL", "false"))

	return Config{
		AppEnv:        get("APP_ENV", "development"),
		AppPort:       get("APP_PORT", "8080"),
		DBDSN:         must("DB_DSN"),
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresMin: expires,

		SMTPHost:     get("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     smtpPort,
		SMTPUser:     get("SMTP_USER", ""),
		SMTPPassword: get("SMTP_PASSWORD", ""),
		MailFrom:     get("MAIL_FROM", "geral@kuvica.com"),

		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),

		AvatarBackend:  get("AVATAR_BACKEND", "disk"),
		AvatarDir:      get("AVATAR_DIR", "./uploads"),
		MinioEndpoint:  get("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: get("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: get("MINIO_SECRET_KEY", ""),
		MinioBucket:    get("MINIO_BUCKET", "avatars"),
		MinioUseSSL:    useSSL,

		GoogleClientID:  get("GOOGLE_CLIENT_ID", ""),
		GoogleSecret:    get("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirect:  get("GOOGLE_REDIRECT_URL", ""),
		FrontendBaseURL: get("FRONTEND_BASE_URL", "http://localhost:3000"),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
