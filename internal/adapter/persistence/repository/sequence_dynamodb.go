package repository

import (
	"context"
	"errors"
	"strconv"

	"financeira_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSequencesTableName = "sequences"
	creditRequestSequenceID   = "credit_request_number"
)

// RequestNumberDynamoSequence hands out the monotonic suffix for request
// numbers with a DynamoDB atomic counter (UpdateItem ADD). Two concurrent
// callers can never receive the same value.
//
// Table requirements:
//   - PK: id (string); attribute "current" (number)

type RequestNumberDynamoSequence struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestNumberSequence = (*RequestNumberDynamoSequence)(nil)

func NewRequestNumberDynamoSequence(ddb *dynamodb.Client) *RequestNumberDynamoSequence {
	return &RequestNumberDynamoSequence{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (s *RequestNumberDynamoSequence) Next(ctx context.Context) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: creditRequestSequenceID},
		},
		UpdateExpression: aws.String("ADD #current :one"),
		ExpressionAttributeNames: map[string]string{
			"#current": "current",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["current"]
	if !ok {
		return 0, errors.New("sequence counter missing from update response")
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("sequence counter has unexpected type")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
