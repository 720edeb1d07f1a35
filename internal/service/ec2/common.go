package ec2

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
)

// DryRunが成功した（権限があり、実行すれば成功した）ことを示すエラーコード
const dryRunOperationCode = "DryRunOperation"

func isDryRunOperation(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == dryRunOperationCode
}

func toStateChanges(changes []types.InstanceStateChange) []StateChange {
	result := make([]StateChange, 0, len(changes))
	for _, c := range changes {
		change := StateChange{InstanceId: aws.ToString(c.InstanceId)}
		if c.PreviousState != nil {
			change.PreviousState = string(c.PreviousState.Name)
		}
		if c.CurrentState != nil {
			change.CurrentState = string(c.CurrentState.Name)
		}
		result = append(result, change)
	}
	return result
}
