package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`
}

type Auth struct {
	AdminPassword         string `toml:"admin_password"`
	DefaultPlayerPassword string `toml:"default_player_password"`
	SessionCookie         string `toml:"session_cookie"`
}

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	ChatID           int64  `toml:"chat_id"`
}

type Config struct {
	Server Server `toml:"server"`
	Auth   Auth   `toml:"auth"`
	TgBot  TgBot  `toml:"tg_bot"`
}

func New(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		cfg.TgBot.TelegramApiToken = token
	}
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		cfg.Auth.AdminPassword = pass
	}
	if cfg.Auth.SessionCookie == "" {
		cfg.Auth.SessionCookie = "session_id"
	}
	return cfg, nil
}
