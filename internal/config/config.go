package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // LambdaランタイムにタイムゾーンDBがない場合に備える
)

// Config は環境変数から読み込むプロセス単位の設定
type Config struct {
	TagKey     string
	DryRun     bool
	Location   *time.Location
	LogLevel   string
	LogFormat  string
	Cron       string
	AwsRegion  string
	AwsProfile string
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	dryRun, err := getEnvBool("SCHEDULE_DRY_RUN", true)
	if err != nil {
		return nil, err
	}

	tz := getEnv("SCHEDULE_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("SCHEDULE_TIMEZONE の値が不正です (%s): %w", tz, err)
	}

	cfg := &Config{
		TagKey:     getEnv("SCHEDULE_TAG_KEY", "Schedule"),
		DryRun:     dryRun,
		Location:   loc,
		LogLevel:   getEnv("SCHEDULE_LOG_LEVEL", "info"),
		LogFormat:  getEnv("SCHEDULE_LOG_FORMAT", "json"),
		Cron:       strings.TrimSpace(os.Getenv("SCHEDULE_CRON")),
		AwsRegion:  os.Getenv("AWS_REGION"),
		AwsProfile: os.Getenv("AWS_PROFILE"),
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

// 誤記で dry_run が外れないよう、解釈できない値はエラーにする
func getEnvBool(key string, def bool) (bool, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def, nil
	}
	switch strings.ToLower(val) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return def, fmt.Errorf("%s の値が不正です (%s): %w", key, val, err)
	}
	return parsed, nil
}
