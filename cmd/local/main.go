package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"ec2sched/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Bootstrap(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 初期化に失敗: %v\n", err)
		os.Exit(1)
	}

	// SCHEDULE_CRON 未設定の場合は1回だけ実行して終了
	if a.Config.Cron == "" {
		a.Runner.Run(ctx)
		return
	}

	if err := serve(ctx, a); err != nil {
		a.Logger.Error().Err(err).Msg("cronの起動に失敗")
		os.Exit(1)
	}
}

// serve はcron式に従って評価を繰り返す
// 前回の評価が終わっていない場合は次の実行をスキップする
func serve(ctx context.Context, a *app.App) error {
	logger := cronLogger{logger: a.Logger}
	c := cron.New(
		cron.WithLocation(a.Config.Location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := c.AddFunc(a.Config.Cron, func() { a.Runner.Run(ctx) }); err != nil {
		return fmt.Errorf("SCHEDULE_CRON の値が不正です (%s): %w", a.Config.Cron, err)
	}

	a.Logger.Info().Str("cron", a.Config.Cron).Msg("定期実行を開始")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	a.Logger.Info().Msg("定期実行を終了")
	return nil
}

// cronLogger はrobfig/cronのログをzerologに流す
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
