package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	"ec2sched/internal/app"
	"ec2sched/internal/service/scheduler"
)

type handler struct {
	runner *scheduler.Runner
	logger zerolog.Logger
}

// Handle はEventBridgeのスケジュールイベントごとに1回の評価を行う
// 個々の失敗はログにのみ出力し、常に true を返す
func (h *handler) Handle(ctx context.Context, event events.CloudWatchEvent) (bool, error) {
	h.logger.Info().
		Str("event_id", event.ID).
		Str("source", event.Source).
		Time("event_time", event.Time).
		Msg("スケジュールイベントを受信")

	report := h.runner.Run(ctx)
	return report.Success, nil
}

func main() {
	a, err := app.Bootstrap(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 初期化に失敗: %v\n", err)
		os.Exit(1)
	}

	h := &handler{runner: a.Runner, logger: a.Logger}
	lambda.Start(h.Handle)
}
