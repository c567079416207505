package gosagemaker

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
)

func tagsToSDK(tags []Tag) []types.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, types.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)})
	}
	return out
}

// ChannelsFromMap builds input channels from a channel-name to S3 URI
// map, in name order.
func ChannelsFromMap(inputs map[string]string) []Channel {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	channels := make([]Channel, 0, len(names))
	for _, name := range names {
		channels = append(channels, Channel{
			ChannelName: name,
			S3URI:       inputs[name],
		})
	}
	return channels
}

func channelsToSDK(channels []Channel) []types.Channel {
	if len(channels) == 0 {
		return nil
	}
	out := make([]types.Channel, 0, len(channels))
	for _, c := range channels {
		dataType := c.S3DataType
		if dataType == "" {
			dataType = S3DataTypePrefix
		}
		dist := c.Distribution
		if dist == "" {
			dist = DistributionFullyReplicated
		}
		ch := types.Channel{
			ChannelName: aws.String(c.ChannelName),
			DataSource: &types.DataSource{
				S3DataSource: &types.S3DataSource{
					S3Uri:                  aws.String(c.S3URI),
					S3DataType:             types.S3DataType(dataType),
					S3DataDistributionType: types.S3DataDistribution(dist),
					AttributeNames:         c.AttributeNames,
				},
			},
		}
		if c.ContentType != "" {
			ch.ContentType = aws.String(c.ContentType)
		}
		if c.CompressionType != "" {
			ch.CompressionType = types.CompressionType(c.CompressionType)
		}
		if c.RecordWrapper != "" {
			ch.RecordWrapperType = types.RecordWrapper(c.RecordWrapper)
		}
		if c.InputMode != "" {
			ch.InputMode = types.TrainingInputMode(c.InputMode)
		}
		out = append(out, ch)
	}
	return out
}

func channelsFromSDK(channels []types.Channel) []Channel {
	if len(channels) == 0 {
		return nil
	}
	out := make([]Channel, 0, len(channels))
	for _, c := range channels {
		ch := Channel{
			ChannelName:     aws.ToString(c.ChannelName),
			ContentType:     aws.ToString(c.ContentType),
			CompressionType: string(c.CompressionType),
			RecordWrapper:   string(c.RecordWrapperType),
			InputMode:       string(c.InputMode),
		}
		if c.DataSource != nil && c.DataSource.S3DataSource != nil {
			src := c.DataSource.S3DataSource
			ch.S3URI = aws.ToString(src.S3Uri)
			ch.S3DataType = string(src.S3DataType)
			ch.Distribution = string(src.S3DataDistributionType)
			ch.AttributeNames = src.AttributeNames
		}
		out = append(out, ch)
	}
	return out
}

func resourcesToSDK(rc ResourceConfig) *types.ResourceConfig {
	out := &types.ResourceConfig{
		InstanceType:   types.TrainingInstanceType(rc.InstanceType),
		InstanceCount:  aws.Int32(rc.InstanceCount),
		VolumeSizeInGB: aws.Int32(rc.VolumeSizeGB),
	}
	if rc.VolumeKmsKeyID != "" {
		out.VolumeKmsKeyId = aws.String(rc.VolumeKmsKeyID)
	}
	if rc.KeepAlivePeriodSeconds > 0 {
		out.KeepAlivePeriodInSeconds = aws.Int32(rc.KeepAlivePeriodSeconds)
	}
	return out
}

func resourcesFromSDK(rc *types.ResourceConfig) ResourceConfig {
	if rc == nil {
		return ResourceConfig{}
	}
	return ResourceConfig{
		InstanceType:           string(rc.InstanceType),
		InstanceCount:          aws.ToInt32(rc.InstanceCount),
		VolumeSizeGB:           aws.ToInt32(rc.VolumeSizeInGB),
		VolumeKmsKeyID:         aws.ToString(rc.VolumeKmsKeyId),
		KeepAlivePeriodSeconds: aws.ToInt32(rc.KeepAlivePeriodInSeconds),
	}
}

func stoppingToSDK(sc StoppingCondition) *types.StoppingCondition {
	out := &types.StoppingCondition{}
	if sc.MaxRuntimeSeconds > 0 {
		out.MaxRuntimeInSeconds = aws.Int32(sc.MaxRuntimeSeconds)
	} else {
		out.MaxRuntimeInSeconds = aws.Int32(86400)
	}
	if sc.MaxWaitSeconds > 0 {
		out.MaxWaitTimeInSeconds = aws.Int32(sc.MaxWaitSeconds)
	}
	return out
}

func stoppingFromSDK(sc *types.StoppingCondition) StoppingCondition {
	if sc == nil {
		return StoppingCondition{}
	}
	return StoppingCondition{
		MaxRuntimeSeconds: aws.ToInt32(sc.MaxRuntimeInSeconds),
		MaxWaitSeconds:    aws.ToInt32(sc.MaxWaitTimeInSeconds),
	}
}

func vpcToSDK(vpc *VpcConfig) *types.VpcConfig {
	if vpc == nil {
		return nil
	}
	return &types.VpcConfig{
		Subnets:          vpc.Subnets,
		SecurityGroupIds: vpc.SecurityGroupIDs,
	}
}

func containerToSDK(c ContainerDef) types.ContainerDefinition {
	out := types.ContainerDefinition{
		Image:       aws.String(c.ImageURI),
		Environment: c.Environment,
	}
	if c.ModelDataURL != "" {
		out.ModelDataUrl = aws.String(c.ModelDataURL)
	}
	if c.Hostname != "" {
		out.ContainerHostname = aws.String(c.Hostname)
	}
	return out
}
