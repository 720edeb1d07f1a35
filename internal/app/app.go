package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ec2sched/internal/aws"
	"ec2sched/internal/config"
	"ec2sched/internal/logging"
	"ec2sched/internal/service/scheduler"
)

// App は1プロセス分の設定・ロガー・Runnerをまとめたもの
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Runner *scheduler.Runner
}

// Bootstrap は環境変数から設定を読み込み、EC2クライアントとRunnerを組み立てる
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	clients, err := aws.NewAwsClients(ctx, aws.Context{
		Profile: cfg.AwsProfile,
		Region:  cfg.AwsRegion,
	})
	if err != nil {
		return nil, err
	}
	logger = logger.With().Str("region", clients.Region()).Logger()

	runner := scheduler.NewRunner(clients.Ec2(), logger, nil, scheduler.Options{
		TagKey:   cfg.TagKey,
		DryRun:   cfg.DryRun,
		Location: cfg.Location,
	})

	return &App{Config: cfg, Logger: logger, Runner: runner}, nil
}
