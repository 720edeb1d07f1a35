package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// StartEc2Instances はEC2インスタンスをまとめて起動します
// dryRun が true の場合はAPIのDryRunで権限のみ検証し、実際には起動しません
func StartEc2Instances(ctx context.Context, client StartInstancesAPI, instanceIds []string, dryRun bool) (BatchResult, error) {
	result := BatchResult{Action: ActionStart, InstanceIds: instanceIds, DryRun: dryRun}
	if len(instanceIds) == 0 {
		return result, nil
	}

	output, err := client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: instanceIds,
		DryRun:      aws.Bool(dryRun),
	})
	if err != nil {
		if dryRun && isDryRunOperation(err) {
			return result, nil
		}
		return result, &ActuatorError{Action: ActionStart, InstanceIds: instanceIds, Err: err}
	}

	result.Changes = toStateChanges(output.StartingInstances)
	return result, nil
}
