package schedule

// BuildPlan はインスタンスごとにあるべき状態を判定し、起動・停止対象を振り分ける
// 入力のスライスは変更しない
func BuildPlan(records []InstanceRecord, ctx EvaluationContext) Plan {
	var plan Plan
	for _, record := range records {
		// タグなし・解析失敗のインスタンスは対象外
		if record.Schedule == nil {
			continue
		}

		desired := DesiredStateFor(record.Schedule, ctx)
		plan.Decisions = append(plan.Decisions, Decision{
			ID:      record.ID,
			State:   record.State,
			Desired: desired,
		})

		// running / stopped 以外（pending, stopping など）は操作しない
		switch {
		case desired == DesiredRunning && record.State == InstanceStateStopped:
			plan.ToStart = append(plan.ToStart, record.ID)
		case desired == DesiredStopped && record.State == InstanceStateRunning:
			plan.ToStop = append(plan.ToStop, record.ID)
		}
	}
	return plan
}

// IsEmpty は起動・停止対象がないかを判定する
func (p Plan) IsEmpty() bool {
	return len(p.ToStart) == 0 && len(p.ToStop) == 0
}
