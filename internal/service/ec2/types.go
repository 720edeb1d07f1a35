package ec2

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"ec2sched/internal/service/common"
)

// StartInstancesAPI はインスタンス起動に必要なEC2 APIの部分集合
type StartInstancesAPI interface {
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
}

// StopInstancesAPI はインスタンス停止に必要なEC2 APIの部分集合
type StopInstancesAPI interface {
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

// API はスケジューラが使うEC2 APIをまとめたもの（*ec2.Client が満たす）
type API interface {
	ec2.DescribeInstancesAPIClient
	StartInstancesAPI
	StopInstancesAPI
}

// Instance スケジュールタグを持つEC2インスタンスの情報を格納する構造体
type Instance struct {
	InstanceId   string
	InstanceName string
	State        string
	ScheduleTag  string
}

// Action はバッチ操作の種類
type Action string

const (
	ActionStart Action = "start"
	ActionStop  Action = "stop"
)

// Label はログ・エラーメッセージ用の表示名を返す
func (a Action) Label() string {
	if a == ActionStart {
		return "起動"
	}
	return "停止"
}

// StateChange はAPIが返したインスタンスの状態遷移
type StateChange struct {
	InstanceId    string
	PreviousState string
	CurrentState  string
}

// BatchResult は起動・停止のバッチ呼び出し結果
// DryRun が true の場合、変更は行われていない
type BatchResult struct {
	Action      Action
	InstanceIds []string
	DryRun      bool
	Changes     []StateChange
}

// ActuatorError はバッチ単位の起動・停止失敗を表す
type ActuatorError struct {
	Action      Action
	InstanceIds []string
	Err         error
}

func (e *ActuatorError) Error() string {
	target := fmt.Sprintf("EC2インスタンス (%s)", strings.Join(e.InstanceIds, ", "))
	if e.Action == ActionStart {
		return fmt.Errorf(common.StartErrorFormat, common.ErrorIcon, target, e.Err).Error()
	}
	return fmt.Errorf(common.StopErrorFormat, common.ErrorIcon, target, e.Err).Error()
}

func (e *ActuatorError) Unwrap() error {
	return e.Err
}
