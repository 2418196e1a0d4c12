package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Sheets   Sheets
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Sheets configures the Google Sheets mirror for form submissions. When
// SpreadsheetID or CredentialsFile is empty the mirror is disabled and
// submissions only go to the database.
type Sheets struct {
	SpreadsheetID   string
	CredentialsFile string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Sheets.SpreadsheetID = viper.GetString("GOOGLE_SHEETS_SPREADSHEET_ID")
	config.Sheets.CredentialsFile = viper.GetString("GOOGLE_SHEETS_CREDENTIALS_FILE")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).
		Bool("sheets_enabled", config.Sheets.SpreadsheetID != "").Msg("Config loaded")
	return &config, nil
}
