package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// StopEc2Instances はEC2インスタンスをまとめて停止します
// dryRun が true の場合はAPIのDryRunで権限のみ検証し、実際には停止しません
func StopEc2Instances(ctx context.Context, client StopInstancesAPI, instanceIds []string, dryRun bool) (BatchResult, error) {
	result := BatchResult{Action: ActionStop, InstanceIds: instanceIds, DryRun: dryRun}
	if len(instanceIds) == 0 {
		return result, nil
	}

	output, err := client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: instanceIds,
		DryRun:      aws.Bool(dryRun),
	})
	if err != nil {
		if dryRun && isDryRunOperation(err) {
			return result, nil
		}
		return result, &ActuatorError{Action: ActionStop, InstanceIds: instanceIds, Err: err}
	}

	result.Changes = toStateChanges(output.StoppingInstances)
	return result, nil
}
