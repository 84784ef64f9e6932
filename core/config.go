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

var Conf *Config

// Config holds all the settings the application needs. It is populated once at
// start-up from defaults, an optional `config/.env.<env>` file and environment
// variables prefixed with the current ENV name.
type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	Build    string

	AppName          string
	SecretKey        string
	DefaultFromEmail mail.Address
	FeedbackEmail    string

	JWTExpirationDelta time.Duration

	Server struct {
		Host string
		Port string
	}

	Sheets struct {
		CredentialsFile       string
		AccountsSpreadsheetID string
		FeedbackSpreadsheetID string
	}

	SendgridAPIKey string
	RollbarToken   string
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Pulse")
	v.SetDefault("secretKey", "x2p!dm0)a&qerb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2e")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("feedbackEmail", "")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("sheetsCredentialsFile", "")
	v.SetDefault("sheetsAccountsSpreadsheetId", "")
	v.SetDefault("sheetsFeedbackSpreadsheetId", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Env:                env,
		Debug:              v.GetBool("debug"),
		TestMode:           env == "TEST",
		Build:              v.GetString("build"),
		AppName:            v.GetString("appName"),
		SecretKey:          v.GetString("secretKey"),
		DefaultFromEmail:   mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		FeedbackEmail:      v.GetString("feedbackEmail"),
		JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		SendgridAPIKey:     v.GetString("sendgridApiKey"),
		RollbarToken:       v.GetString("rollbarToken"),
	}
	Conf.Server.Host = v.GetString("serverHost")
	Conf.Server.Port = v.GetString("serverPort")
	Conf.Sheets.CredentialsFile = v.GetString("sheetsCredentialsFile")
	Conf.Sheets.AccountsSpreadsheetID = v.GetString("sheetsAccountsSpreadsheetId")
	Conf.Sheets.FeedbackSpreadsheetID = v.GetString("sheetsFeedbackSpreadsheetId")
}
