package configs

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App       `mapstructure:"app"`
	Postgres  `mapstructure:"postgres"`
	Backend   `mapstructure:"backend"`
	Storage   `mapstructure:"storage"`
	Visitor   `mapstructure:"visitor"`
	Dashboard `mapstructure:"dashboard"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Backend struct - storefront backend API. Timeouts are in seconds.
// Timeout bounds connection setup; only the catalog fetch has an overall deadline.
type Backend struct {
	BaseURL        string `mapstructure:"base_url"`
	Timeout        int    `mapstructure:"timeout"`
	CatalogTimeout int    `mapstructure:"catalog_timeout"`
}

// Storage struct - persistent key-value backend: "memory" or "postgres"
type Storage struct {
	Driver    string `mapstructure:"driver"`
	Namespace string `mapstructure:"namespace"`
}

// Visitor struct - IdleTimeout is in minutes
type Visitor struct {
	CookieName  string `mapstructure:"cookie_name"`
	IdleTimeout int    `mapstructure:"idle_timeout"`
}

// Dashboard struct
type Dashboard struct {
	LatestOrders int `mapstructure:"latest_orders"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	name := "config"
	if env != "" {
		name = "config." + env
	}
	viper.SetConfigName(name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || env == "" {
			panic(err)
		}
		// Fall back to the base file when no per-environment file exists
		viper.SetConfigName("config")
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infoln("Config file has changed: ", e.Name)
		if err := viper.Unmarshal(&config); err != nil {
			logrus.Errorln(err)
		}
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
}
