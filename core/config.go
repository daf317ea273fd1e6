package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address                   string
		Host                      string
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
		LoginDelay                time.Duration
		DisableReqLogs            bool
	}

	DatabaseConfig struct {
		Engine        string
		Host          string
		Port          string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	RedisConfig struct {
		Address   string
		Password  string
		DB        int
		KeyPrefix string
	}

	StorageConfig struct {
		Engine   string // memory (default), redis, postgres
		Redis    RedisConfig
		Database DatabaseConfig
	}

	// DemoAccount is a hardcoded login. Password may be plain text or a bcrypt hash.
	DemoAccount struct {
		Username string
		Password string
	}

	Config struct {
		AppName  string
		Build    string
		Env      string
		Debug    bool
		TestMode bool
		WorkDir  string

		SecretKey string

		Server  ServerConfig
		Storage StorageConfig

		ErrorTracker string // rollbar (default), sentry
		RollbarToken string
		SentryDSN    string

		SendgridApiKey string
		ContactEmail   string

		QuestionnaireAdviceDelay time.Duration
		DemoAccounts             []DemoAccount

		defaultFromEmail string
	}
)

func (db DatabaseConfig) Address() string {
	if db.Port == "" {
		return db.Host
	}
	return db.Host + ":" + db.Port
}

func (c Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(c.defaultFromEmail)
	if err != nil {
		return mail.Address{Name: c.AppName, Address: "noreply@localhost"}
	}
	return *addr
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("build", "dev")
	v.SetDefault("appName", "EDP Pilotage")
	v.SetDefault("secretKey", "k3n#9v!pq2@edp-demo$x8w%ru7z^ab1*lm0")
	v.SetDefault("defaultFromEmail", "EDP Pilotage <noreply@localhost>")
	v.SetDefault("contactEmail", "contact@localhost")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("errorTracker", "rollbar")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sentryDSN", "")

	v.SetDefault("serverAddress", ":8000")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverDebugHost", ":4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	v.SetDefault("loginDelay", time.Second)
	v.SetDefault("disableReqLogs", false)

	v.SetDefault("storageEngine", "memory")
	v.SetDefault("redisAddress", "localhost:6379")
	v.SetDefault("redisPassword", "")
	v.SetDefault("redisDB", 0)
	v.SetDefault("redisKeyPrefix", "edp:")
	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbName", "edp")
	v.SetDefault("dbUser", "edp")
	v.SetDefault("dbPassword", "edp")
	v.SetDefault("dbAdminUser", "")
	v.SetDefault("dbAdminPassword", "")
	v.SetDefault("dbDisableTLS", true)

	v.SetDefault("questionnaireAdviceDelay", 2*time.Second)
	v.SetDefault("demoAccounts", "admin:password,expert-comptable:demo123,directeur:ecole123")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	workDir := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:   v.GetString("appName"),
		Build:     v.GetString("build"),
		Env:       env,
		Debug:     v.GetBool("debug"),
		TestMode:  v.GetBool("testMode"),
		WorkDir:   workDir,
		SecretKey: v.GetString("secretKey"),
		Server: ServerConfig{
			Address:                   v.GetString("serverAddress"),
			Host:                      v.GetString("serverHost"),
			DebugHost:                 v.GetString("serverDebugHost"),
			ShutdownTimeout:           v.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta:        v.GetDuration("jwtExpirationDelta"),
			JWTRefreshExpirationDelta: v.GetDuration("jwtRefreshExpirationDelta"),
			LoginDelay:                v.GetDuration("loginDelay"),
			DisableReqLogs:            v.GetBool("disableReqLogs"),
		},
		Storage: StorageConfig{
			Engine: strings.ToLower(v.GetString("storageEngine")),
			Redis: RedisConfig{
				Address:   v.GetString("redisAddress"),
				Password:  v.GetString("redisPassword"),
				DB:        v.GetInt("redisDB"),
				KeyPrefix: v.GetString("redisKeyPrefix"),
			},
			Database: DatabaseConfig{
				Engine:        v.GetString("dbEngine"),
				Host:          v.GetString("dbHost"),
				Port:          v.GetString("dbPort"),
				Name:          v.GetString("dbName"),
				User:          v.GetString("dbUser"),
				Password:      v.GetString("dbPassword"),
				AdminUser:     v.GetString("dbAdminUser"),
				AdminPassword: v.GetString("dbAdminPassword"),
				DisableTLS:    v.GetBool("dbDisableTLS"),
			},
		},
		ErrorTracker:             strings.ToLower(v.GetString("errorTracker")),
		RollbarToken:             v.GetString("rollbarToken"),
		SentryDSN:                v.GetString("sentryDSN"),
		SendgridApiKey:           v.GetString("sendgridApiKey"),
		ContactEmail:             v.GetString("contactEmail"),
		QuestionnaireAdviceDelay: v.GetDuration("questionnaireAdviceDelay"),
		DemoAccounts:             ParseDemoAccounts(v.GetString("demoAccounts")),
		defaultFromEmail:         v.GetString("defaultFromEmail"),
	}
}

// ParseDemoAccounts parses "user:password,user2:password2".
// Only the first colon separates the username, so bcrypt hashes are accepted as passwords.
func ParseDemoAccounts(s string) []DemoAccount {
	accounts := make([]DemoAccount, 0, 3)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		i := strings.Index(pair, ":")
		if i <= 0 || i == len(pair)-1 {
			continue
		}
		accounts = append(accounts, DemoAccount{Username: pair[:i], Password: pair[i+1:]})
	}
	return accounts
}
