package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// DBConfig database configuration
type DBConfig struct {
	Type     string `yaml:"type"` // only postgres is supported
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
	Debug    bool   `yaml:"debug"`
}

// SysConfig system configuration
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

// WebConfig admin API server configuration
type WebConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Secret   string `yaml:"secret"`    // JWT signing key
	TokenTTL int    `yaml:"token_ttl"` // hours
}

// LogConfig logging configuration
type LogConfig struct {
	Mode       string `yaml:"mode"` // development | production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// CatalogConfig catalog background jobs configuration
type CatalogConfig struct {
	StatsCron string `yaml:"stats_cron"`
	Seed      bool   `yaml:"seed"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system"`
	Web      WebConfig     `yaml:"web"`
	Database DBConfig      `yaml:"database"`
	Logger   LogConfig     `yaml:"logger"`
	Catalog  CatalogConfig `yaml:"catalog"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

// InitDirs creates the working directories
func (c *AppConfig) InitDirs() error {
	for _, dir := range []string{c.GetLogDir(), c.GetDataDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "RestoPOS",
		Location: "America/Mexico_City",
		Workdir:  "/var/restopos",
		Debug:    true,
	},
	Web: WebConfig{
		Host:     "0.0.0.0",
		Port:     1816,
		Secret:   "9b6de5cc-0731-4bf1-restopos-0c7a6f1a2b3c",
		TokenTTL: 12,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "restopos",
		User:     "postgres",
		Passwd:   "myroot",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/restopos/logs/restopos.log",
	},
	Catalog: CatalogConfig{
		StatsCron: "@every 1h",
		Seed:      true,
	},
}

// LoadConfig reads the yaml file at cfile, falling back to DefaultAppConfig when
// cfile is empty, and then applies RESTOPOS_* environment overrides.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := *DefaultAppConfig
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfile, err)
		}
	}
	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	setEnvString("RESTOPOS_SYSTEM_WORKER_DIR", &cfg.System.Workdir)
	setEnvString("RESTOPOS_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBool("RESTOPOS_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvString("RESTOPOS_WEB_HOST", &cfg.Web.Host)
	setEnvInt("RESTOPOS_WEB_PORT", &cfg.Web.Port)
	setEnvString("RESTOPOS_WEB_SECRET", &cfg.Web.Secret)
	setEnvInt("RESTOPOS_WEB_TOKEN_TTL", &cfg.Web.TokenTTL)

	setEnvString("RESTOPOS_DB_TYPE", &cfg.Database.Type)
	setEnvString("RESTOPOS_DB_HOST", &cfg.Database.Host)
	setEnvInt("RESTOPOS_DB_PORT", &cfg.Database.Port)
	setEnvString("RESTOPOS_DB_NAME", &cfg.Database.Name)
	setEnvString("RESTOPOS_DB_USER", &cfg.Database.User)
	setEnvString("RESTOPOS_DB_PWD", &cfg.Database.Passwd)
	setEnvBool("RESTOPOS_DB_DEBUG", &cfg.Database.Debug)

	setEnvString("RESTOPOS_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBool("RESTOPOS_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvString("RESTOPOS_LOGGER_FILENAME", &cfg.Logger.Filename)

	setEnvString("RESTOPOS_CATALOG_STATS_CRON", &cfg.Catalog.StatsCron)
	setEnvBool("RESTOPOS_CATALOG_SEED", &cfg.Catalog.Seed)
}

func setEnvString(name string, val *string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*val = v
	}
}

func setEnvInt(name string, val *int) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if i, err := cast.ToIntE(v); err == nil {
		*val = i
	}
}

func setEnvBool(name string, val *bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if b, err := cast.ToBoolE(v); err == nil {
		*val = b
	}
}
