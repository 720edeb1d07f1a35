package schedule

// DesiredStateFor はスケジュールと評価時刻からあるべき状態を判定する
//
// 判定は以下の優先順で行う（順序を入れ替えてはいけない）
//  1. 開始・終了ともに指定あり、かつ現在時刻が両方以上: 開始>終了なら running、それ以外は stopped
//  2. 開始が指定あり、かつ現在時刻が開始以上: running
//  3. 終了が指定あり、かつ現在時刻が終了以上: stopped
//  4. それ以外: none
func DesiredStateFor(sched Schedule, ctx EvaluationContext) DesiredState {
	window, ok := sched[ctx.Day]
	if !ok || window.IsEmpty() {
		return DesiredNone
	}

	hour := ctx.Hour
	start, end := window.Start, window.End

	if start != nil && end != nil && hour >= *start && hour >= *end {
		if *start > *end {
			return DesiredRunning
		}
		return DesiredStopped
	}
	if start != nil && hour >= *start {
		return DesiredRunning
	}
	if end != nil && hour >= *end {
		return DesiredStopped
	}
	return DesiredNone
}
