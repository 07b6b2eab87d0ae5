package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads config/server.yaml once; SINK_SCHEMA_SERVER_* variables override it.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("sink_schema_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		setDefaults(viper.GetViper())
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = fromViper(viper.GetViper())
	})

	return configInstance
}

// SetConfigFile points LoadConfig at an explicit file instead of the search paths.
func SetConfigFile(path string) {
	viper.SetConfigFile(path)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("cache.max_cost", 10_000)
	v.SetDefault("cache.num_counters", 100_000)
	v.SetDefault("cache.buffer_items", 64)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("i18n.default_language", "en")
	v.SetDefault("schema.locked_statuses", []int{110, 130})
}

func fromViper(v *viper.Viper) AppConfig {
	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Cache: CacheConfig{
			MaxCost:     v.GetInt64("cache.max_cost"),
			NumCounters: v.GetInt64("cache.num_counters"),
			BufferItems: v.GetInt64("cache.buffer_items"),
			TTL:         v.GetDuration("cache.ttl"),
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("i18n.default_language"),
		},
		Schema: SchemaConfig{
			LockedStatuses: lockedStatuses(v),
		},
	}
}

type AppConfig struct {
	General GeneralConfig
	HTTP    HTTPConfig
	Cache   CacheConfig
	I18n    I18nConfig
	Schema  SchemaConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type CacheConfig struct {
	MaxCost     int64
	NumCounters int64
	BufferItems int64
	TTL         time.Duration
}

type I18nConfig struct {
	DefaultLanguage string
}

// SchemaConfig holds the entity statuses that freeze edit-affecting fields. The codes are
// owned by the entity-management system.
type SchemaConfig struct {
	LockedStatuses []int
}

// lockedStatuses accepts a YAML list or, from the environment, a comma or space separated string.
func lockedStatuses(v *viper.Viper) []int {
	raw, isString := v.Get("schema.locked_statuses").(string)
	if !isString {
		return v.GetIntSlice("schema.locked_statuses")
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	result := make([]int, 0, len(fields))
	for _, f := range fields {
		status, err := strconv.Atoi(f)
		if err != nil {
			slog.Warn("parsing locked status", slog.String("value", f), slog.String("error", err.Error()))
			continue
		}
		result = append(result, status)
	}
	return result
}
