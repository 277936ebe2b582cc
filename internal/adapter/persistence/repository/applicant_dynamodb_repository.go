package repository

import (
	"context"
	"errors"

	"financeira_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultApplicantsTableName = "applicants"

var errApplicantNotFound = errors.New("applicant not found")

type applicantItem struct {
	ID          string `dynamodbav:"id"`
	DisplayName string `dynamodbav:"display_name"`
	Document    string `dynamodbav:"document"`
}

// ApplicantDynamoDirectory resolves applicant identity for queue enrichment.
// The queue degrades to a placeholder on any error here, so lookups stay
// simple single-item reads.
//
// Table requirements:
//   - PK: id (string)

type ApplicantDynamoDirectory struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApplicantDirectory = (*ApplicantDynamoDirectory)(nil)

func NewApplicantDynamoDirectory(ddb *dynamodb.Client) *ApplicantDynamoDirectory {
	return &ApplicantDynamoDirectory{
		ddb:       ddb,
		tableName: getenvDefault("APPLICANTS_TABLE", defaultApplicantsTableName),
	}
}

func (d *ApplicantDynamoDirectory) GetDisplayName(ctx context.Context, ownerID string) (string, error) {
	it, err := d.get(ctx, ownerID)
	if err != nil {
		return "", err
	}
	return it.DisplayName, nil
}

func (d *ApplicantDynamoDirectory) GetIdentifierDocument(ctx context.Context, ownerID string) (string, error) {
	it, err := d.get(ctx, ownerID)
	if err != nil {
		return "", err
	}
	return it.Document, nil
}

func (d *ApplicantDynamoDirectory) get(ctx context.Context, ownerID string) (applicantItem, error) {
	out, err := d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return applicantItem{}, err
	}
	if len(out.Item) == 0 {
		return applicantItem{}, errApplicantNotFound
	}

	var it applicantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return applicantItem{}, err
	}
	return it, nil
}
