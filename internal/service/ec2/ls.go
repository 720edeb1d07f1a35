package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ec2sched/internal/service/common"
)

// ListScheduledInstances 指定したタグキーを持つEC2インスタンス一覧を取得する
func ListScheduledInstances(ctx context.Context, client ec2.DescribeInstancesAPIClient, tagKey string) ([]Instance, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("tag-key"),
				Values: []string{tagKey},
			},
		},
	}

	var instances []Instance
	paginator := ec2.NewDescribeInstancesPaginator(client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf(common.ListErrorFormat, common.ErrorIcon, "EC2インスタンス", err)
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				// 終了済みのインスタンスは除外
				if instance.State != nil && instance.State.Name == types.InstanceStateNameTerminated {
					continue
				}
				instances = append(instances, toInstance(instance, tagKey))
			}
		}
	}

	return instances, nil
}

func toInstance(instance types.Instance, tagKey string) Instance {
	result := Instance{
		InstanceId: aws.ToString(instance.InstanceId),
	}
	if instance.State != nil {
		result.State = string(instance.State.Name)
	}

	for _, tag := range instance.Tags {
		switch aws.ToString(tag.Key) {
		case "Name":
			result.InstanceName = aws.ToString(tag.Value)
		case tagKey:
			result.ScheduleTag = aws.ToString(tag.Value)
		}
	}
	return result
}
