package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"ec2sched/internal/service/common"
	ec2svc "ec2sched/internal/service/ec2"
	"ec2sched/internal/service/schedule"
)

// Runner はタグ付きEC2インスタンスをスケジュールに合わせて起動・停止する
type Runner struct {
	client ec2svc.API
	logger zerolog.Logger
	now    func() time.Time
	opts   Options
}

// NewRunner は新しいRunnerを作成する
// now が nil の場合は time.Now を使う
func NewRunner(client ec2svc.API, logger zerolog.Logger, now func() time.Time, opts Options) *Runner {
	if now == nil {
		now = time.Now
	}
	if opts.TagKey == "" {
		opts.TagKey = DefaultTagKey
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Runner{client: client, logger: logger, now: now, opts: opts}
}

// Run は1回分の評価を行う
// 時刻は開始時に1度だけ取得し、途中で読み直さない
func (r *Runner) Run(ctx context.Context) Report {
	evalCtx := schedule.NewEvaluationContext(r.now(), r.opts.Location)
	report := Report{Context: evalCtx, DryRun: r.opts.DryRun}

	r.logger.Info().
		Str("current_day", string(evalCtx.Day)).
		Int("current_hour", evalCtx.Hour).
		Bool("dry_run", r.opts.DryRun).
		Str("tag_key", r.opts.TagKey).
		Msg("スケジュール評価を開始")

	instances, err := ec2svc.ListScheduledInstances(ctx, r.client, r.opts.TagKey)
	if err != nil {
		// 次回の起動で再評価されるため、ここでは記録のみ
		r.logger.Error().Err(err).Msg("インスタンス一覧の取得に失敗")
		report.Errors = append(report.Errors, err)
		report.Success = true
		return report
	}

	records, skipped := r.buildRecords(instances)
	report.Skipped = skipped
	report.Plan = schedule.BuildPlan(records, evalCtx)

	for _, d := range report.Plan.Decisions {
		r.logger.Debug().
			Str("instance_id", d.ID).
			Str("state", d.State).
			Str("desired", string(d.Desired)).
			Msg("判定結果")
	}

	if len(report.Plan.ToStart) > 0 {
		r.actuate(ctx, &report, ec2svc.ActionStart, report.Plan.ToStart)
	}
	if len(report.Plan.ToStop) > 0 {
		r.actuate(ctx, &report, ec2svc.ActionStop, report.Plan.ToStop)
	}
	if report.Plan.IsEmpty() {
		r.logger.Info().Int("evaluated", len(report.Plan.Decisions)).Msg("操作対象のインスタンスはありません")
	}

	report.Success = true
	return report
}

// buildRecords はタグの値を解析し、評価用のレコードに変換する
// 解析に失敗したインスタンスはスケジュールなしのレコードになる
func (r *Runner) buildRecords(instances []ec2svc.Instance) ([]schedule.InstanceRecord, []string) {
	records := make([]schedule.InstanceRecord, 0, len(instances))
	var skipped []string

	for _, ins := range instances {
		record := schedule.InstanceRecord{ID: ins.InstanceId, State: ins.State}

		sched, err := schedule.ParseSchedule(ins.InstanceId, ins.ScheduleTag)
		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("instance_id", ins.InstanceId).
				Str("instance_name", ins.InstanceName).
				Str("value", ins.ScheduleTag).
				Msg("Scheduleタグの値が未設定、または形式が不正です")
			skipped = append(skipped, ins.InstanceId)
		} else {
			record.Schedule = sched
		}
		records = append(records, record)
	}
	return records, skipped
}

func (r *Runner) actuate(ctx context.Context, report *Report, action ec2svc.Action, ids []string) {
	var (
		result ec2svc.BatchResult
		err    error
	)
	if action == ec2svc.ActionStart {
		result, err = ec2svc.StartEc2Instances(ctx, r.client, ids, r.opts.DryRun)
	} else {
		result, err = ec2svc.StopEc2Instances(ctx, r.client, ids, r.opts.DryRun)
	}
	report.Results = append(report.Results, result)

	if err != nil {
		r.logger.Error().Err(err).Strs("instance_ids", ids).Str("action", string(action)).Msg(common.ErrorIcon + " バッチ処理に失敗")
		report.Errors = append(report.Errors, err)
		return
	}

	if result.DryRun {
		r.logger.Info().Strs("instance_ids", ids).Str("action", string(action)).
			Msgf("%s dry_run のため%sは行いません", common.InfoIcon, action.Label())
		return
	}

	format := common.StartSuccessFormat
	if action == ec2svc.ActionStop {
		format = common.StopSuccessFormat
	}
	event := r.logger.Info().Strs("instance_ids", ids).Str("action", string(action))
	for _, c := range result.Changes {
		event = event.Str(c.InstanceId, c.PreviousState+" -> "+c.CurrentState)
	}
	event.Msgf(format, common.SuccessIcon, "EC2インスタンス")
}
