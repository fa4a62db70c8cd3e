package sqs

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

func stringAttributes(attributes map[string]string) map[string]types.MessageAttributeValue {
	values := make(map[string]types.MessageAttributeValue, len(attributes))
	for name, value := range attributes {
		values[name] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}
	return values
}

// StringAttribute returns the String message attribute name of msg, or "".
func StringAttribute(msg *types.Message, name string) string {
	if msg == nil {
		return ""
	}
	if value, ok := msg.MessageAttributes[name]; ok && value.StringValue != nil {
		return *value.StringValue
	}
	return ""
}
