package scheduler

import (
	"time"

	ec2svc "ec2sched/internal/service/ec2"
	"ec2sched/internal/service/schedule"
)

// DefaultTagKey はスケジュールを記述するタグのキー
const DefaultTagKey = "Schedule"

// Options は1回の評価サイクルの設定
type Options struct {
	TagKey   string
	DryRun   bool
	Location *time.Location
}

// Report は1回の評価サイクルの結果
// Success は個々のインスタンスやバッチが失敗しても true になる
type Report struct {
	Context schedule.EvaluationContext
	DryRun  bool
	Plan    schedule.Plan
	Skipped []string
	Results []ec2svc.BatchResult
	Errors  []error
	Success bool
}
