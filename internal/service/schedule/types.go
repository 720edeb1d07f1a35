package schedule

import "time"

// Weekday はスケジュールタグのキーとして使う曜日ラベル
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

// time.Weekday の並び（日曜始まり）に合わせる
var weekdayLabels = [...]Weekday{Sun, Mon, Tue, Wed, Thu, Fri, Sat}

// WeekdayOf は time.Weekday をスケジュールの曜日ラベルに変換する
func WeekdayOf(d time.Weekday) Weekday {
	return weekdayLabels[d]
}

// Valid は7つの曜日ラベルのいずれかであるかを判定する
func (w Weekday) Valid() bool {
	for _, label := range weekdayLabels {
		if w == label {
			return true
		}
	}
	return false
}

// Window は1日分の開始時刻(s)と終了時刻(e)
type Window struct {
	Start *int `json:"s,omitempty"`
	End   *int `json:"e,omitempty"`
}

// IsEmpty は開始・終了のどちらも指定されていないかを判定する
func (w Window) IsEmpty() bool {
	return w.Start == nil && w.End == nil
}

// Schedule は曜日ごとの稼働時間帯
type Schedule map[Weekday]Window

// DesiredState はスケジュールから導かれるインスタンスのあるべき状態
type DesiredState string

const (
	DesiredRunning DesiredState = "running"
	DesiredStopped DesiredState = "stopped"
	DesiredNone    DesiredState = "none"
)

// 操作対象になるEC2のライフサイクル状態
const (
	InstanceStateRunning = "running"
	InstanceStateStopped = "stopped"
)

// EvaluationContext は1回の評価で固定される曜日と時刻
type EvaluationContext struct {
	Day  Weekday
	Hour int
}

// NewEvaluationContext は指定時刻からEvaluationContextを作成する
// loc が nil の場合は UTC で評価する
func NewEvaluationContext(now time.Time, loc *time.Location) EvaluationContext {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	return EvaluationContext{
		Day:  WeekdayOf(now.Weekday()),
		Hour: now.Hour(),
	}
}

// InstanceRecord は評価対象のインスタンス1件分の情報
// Schedule が nil の場合はタグなし、または解析失敗を表す
type InstanceRecord struct {
	ID       string
	State    string
	Schedule Schedule
}

// Decision はスケジュールを持つインスタンス1件の判定結果
type Decision struct {
	ID      string
	State   string
	Desired DesiredState
}

// Plan は起動・停止すべきインスタンスIDの一覧
type Plan struct {
	ToStart   []string
	ToStop    []string
	Decisions []Decision
}
