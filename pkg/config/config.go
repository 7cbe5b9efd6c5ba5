package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	RateLimit  RateLimitConfig
	Moderation ModerationConfig
	List       ListConfig
	Cleanup    CleanupConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

// RateLimitConfig 控制單一指紋在滾動時段內允許的發文數
type RateLimitConfig struct {
	MaxPerWindow  int
	WindowMinutes int
}

func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

// ModerationConfig 的 Denylist 是小寫子字串清單，
// 出現在訊息任何位置都會被拒絕
type ModerationConfig struct {
	Denylist []string
}

type ListConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// CleanupConfig 控制過期訊息的實體清理，IntervalMinutes 為 0 時停用
type CleanupConfig struct {
	IntervalMinutes int
	GraceHours      int
}

func (c CleanupConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

func (c CleanupConfig) Grace() time.Duration {
	return time.Duration(c.GraceHours) * time.Hour
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// 找不到配置文件時使用預設值，其他錯誤照常回報
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.address", ":8080")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.user", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.name", "treehole")
	viper.SetDefault("db.port", 5432)

	viper.SetDefault("ratelimit.maxperwindow", 5)
	viper.SetDefault("ratelimit.windowminutes", 60)

	viper.SetDefault("moderation.denylist", []string{
		"fuck", "shit", "asshole", "bitch", "cunt",
		"nigger", "whore", "bastard", "porn", "fag",
		"dick", "pussy", "cock", "slut",
	})

	viper.SetDefault("list.defaultlimit", 3)
	viper.SetDefault("list.maxlimit", 50)

	viper.SetDefault("cleanup.intervalminutes", 60)
	viper.SetDefault("cleanup.gracehours", 24)
}
