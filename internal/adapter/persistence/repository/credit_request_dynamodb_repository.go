package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"financeira_xpto/internal/domain/entities"
	"financeira_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCreditRequestsTableName = "credit_requests"
	creditRequestsStatusIndex      = "status-index"
	creditRequestsOwnerIndex       = "owner_id-index"

	// mutateMaxAttempts bounds the optimistic retry loop; contention on a
	// single record is analyst-scale, not write-storm-scale.
	mutateMaxAttempts = 5
)

type analystLockItem struct {
	AnalystID string `dynamodbav:"analyst_id"`
	LockedAt  string `dynamodbav:"locked_at"`
}

type approvalItem struct {
	AnalystID        string  `dynamodbav:"analyst_id"`
	ApprovedAmount   string  `dynamodbav:"approved_amount"`
	InterestRate     string  `dynamodbav:"interest_rate"`
	TermMonths       int     `dynamodbav:"term_months"`
	InstallmentValue float64 `dynamodbav:"installment_value"`
	DecidedAt        string  `dynamodbav:"decided_at"`
}

type rejectionItem struct {
	AnalystID string `dynamodbav:"analyst_id"`
	Reason    string `dynamodbav:"reason"`
	DecidedAt string `dynamodbav:"decided_at"`
}

type correctionItem struct {
	AnalystID    string   `dynamodbav:"analyst_id"`
	DocumentIDs  []string `dynamodbav:"document_ids"`
	Instructions string   `dynamodbav:"instructions"`
	RequestedAt  string   `dynamodbav:"requested_at"`
}

type creditRequestItem struct {
	ID                    string           `dynamodbav:"id"`
	Number                string           `dynamodbav:"number"`
	OwnerID               string           `dynamodbav:"owner_id"`
	Amount                string           `dynamodbav:"amount"`
	Category              string           `dynamodbav:"category"`
	Subcategory           string           `dynamodbav:"subcategory"`
	Term                  string           `dynamodbav:"term"`
	Method                string           `dynamodbav:"method"`
	MonthlyIncome         string           `dynamodbav:"monthly_income"`
	CommittedIncome       string           `dynamodbav:"committed_income"`
	ProfessionalSituation string           `dynamodbav:"professional_situation"`
	BankCode              string           `dynamodbav:"bank_code"`
	BankBranch            string           `dynamodbav:"bank_branch"`
	BankAccount           string           `dynamodbav:"bank_account"`
	Status                string           `dynamodbav:"status"`
	SubmittedAt           string           `dynamodbav:"submitted_at"`
	Lock                  *analystLockItem `dynamodbav:"lock,omitempty"`
	Approval              *approvalItem    `dynamodbav:"approval,omitempty"`
	Rejection             *rejectionItem   `dynamodbav:"rejection,omitempty"`
	Correction            *correctionItem  `dynamodbav:"correction,omitempty"`
	DisbursementID        string           `dynamodbav:"disbursement_id,omitempty"`
	DisbursedAt           string           `dynamodbav:"disbursed_at,omitempty"`
	CreatedAt             string           `dynamodbav:"created_at"`
	UpdatedAt             string           `dynamodbav:"updated_at"`
	Version               int64            `dynamodbav:"version"`
}

// CreditRequestDynamoRepository persists CreditRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: owner_id-index (PK: owner_id)
//
// Mutate implements the per-record atomic guard-then-set the lifecycle needs:
// read the current item (consistent), apply fn, write back conditioned on the
// version not having moved, retry on conflict. Records never contend across
// ids and there is no global lock.

type CreditRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditRequestRepository = (*CreditRequestDynamoRepository)(nil)

func NewCreditRequestDynamoRepository(ddb *dynamodb.Client) *CreditRequestDynamoRepository {
	return &CreditRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDIT_REQUESTS_TABLE", defaultCreditRequestsTableName),
	}
}

func (r *CreditRequestDynamoRepository) Create(ctx context.Context, req entities.CreditRequest) (entities.CreditRequest, error) {
	av, err := attributevalue.MarshalMap(toCreditRequestItem(req))
	if err != nil {
		return entities.CreditRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CreditRequest{}, err
	}
	return req, nil
}

func (r *CreditRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.CreditRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CreditRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.CreditRequest{}, nil
	}

	var it creditRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CreditRequest{}, err
	}
	return fromCreditRequestItem(it), nil
}

func (r *CreditRequestDynamoRepository) ListByOwner(ctx context.Context, ownerID string, filter interfaces.OwnerListFilter, page, pageSize int) ([]entities.CreditRequest, int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(creditRequestsOwnerIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, 0, err
	}

	all := make([]entities.CreditRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it creditRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, 0, err
		}
		req := fromCreditRequestItem(it)
		if !matchesOwnerFilter(req, filter) {
			continue
		}
		all = append(all, req)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	return sliceOwnerPage(all, page, pageSize), total, nil
}

func matchesOwnerFilter(req entities.CreditRequest, filter interfaces.OwnerListFilter) bool {
	if filter.Status != nil && req.Status != *filter.Status {
		return false
	}
	if filter.StartDate != nil && req.SubmittedAt.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && req.SubmittedAt.After(*filter.EndDate) {
		return false
	}
	return true
}

func sliceOwnerPage(all []entities.CreditRequest, page, pageSize int) []entities.CreditRequest {
	if page < 1 || pageSize < 1 {
		return []entities.CreditRequest{}
	}
	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return []entities.CreditRequest{}
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

func (r *CreditRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.CreditRequest, error) {
	var (
		items    []entities.CreditRequest
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(creditRequestsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it creditRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCreditRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CreditRequestDynamoRepository) Mutate(ctx context.Context, id string, fn interfaces.MutateFunc) (entities.CreditRequest, error) {
	var lastErr error
	for attempt := 0; attempt < mutateMaxAttempts; attempt++ {
		cur, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.CreditRequest{}, err
		}
		if cur.ID == "" {
			return entities.CreditRequest{}, nil
		}

		next, err := fn(cur)
		if err != nil {
			return entities.CreditRequest{}, err
		}
		next.Version = cur.Version + 1
		next.UpdatedAt = time.Now().UTC()

		av, err := attributevalue.MarshalMap(toCreditRequestItem(next))
		if err != nil {
			return entities.CreditRequest{}, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND version = :v"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberN{Value: strconv.FormatInt(cur.Version, 10)},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				// Someone else won the race for this version; reload and retry.
				lastErr = err
				continue
			}
			return entities.CreditRequest{}, err
		}
		return next, nil
	}
	return entities.CreditRequest{}, lastErr
}

func toCreditRequestItem(r entities.CreditRequest) creditRequestItem {
	it := creditRequestItem{
		ID:                    r.ID,
		Number:                r.Number,
		OwnerID:               r.OwnerID,
		Amount:                floatToString(r.Amount),
		Category:              string(r.Category),
		Subcategory:           r.Subcategory,
		Term:                  string(r.Term),
		Method:                string(r.Method),
		MonthlyIncome:         floatToString(r.MonthlyIncome),
		CommittedIncome:       floatToString(r.CommittedIncome),
		ProfessionalSituation: string(r.ProfessionalSituation),
		BankCode:              r.Bank.BankCode,
		BankBranch:            r.Bank.Branch,
		BankAccount:           r.Bank.Account,
		Status:                string(r.Status),
		SubmittedAt:           formatTime(r.SubmittedAt),
		DisbursementID:        r.DisbursementID,
		CreatedAt:             formatTime(r.CreatedAt),
		UpdatedAt:             formatTime(r.UpdatedAt),
		Version:               r.Version,
	}
	if r.Lock != nil {
		it.Lock = &analystLockItem{AnalystID: r.Lock.AnalystID, LockedAt: formatTime(r.Lock.LockedAt)}
	}
	if r.Approval != nil {
		it.Approval = &approvalItem{
			AnalystID:        r.Approval.AnalystID,
			ApprovedAmount:   floatToString(r.Approval.ApprovedAmount),
			InterestRate:     floatToString(r.Approval.InterestRate),
			TermMonths:       r.Approval.TermMonths,
			InstallmentValue: r.Approval.InstallmentValue,
			DecidedAt:        formatTime(r.Approval.DecidedAt),
		}
	}
	if r.Rejection != nil {
		it.Rejection = &rejectionItem{
			AnalystID: r.Rejection.AnalystID,
			Reason:    r.Rejection.Reason,
			DecidedAt: formatTime(r.Rejection.DecidedAt),
		}
	}
	if r.Correction != nil {
		it.Correction = &correctionItem{
			AnalystID:    r.Correction.AnalystID,
			DocumentIDs:  r.Correction.DocumentIDs,
			Instructions: r.Correction.Instructions,
			RequestedAt:  formatTime(r.Correction.RequestedAt),
		}
	}
	if r.DisbursedAt != nil {
		it.DisbursedAt = formatTime(*r.DisbursedAt)
	}
	return it
}

func fromCreditRequestItem(it creditRequestItem) entities.CreditRequest {
	r := entities.CreditRequest{
		ID:                    it.ID,
		Number:                it.Number,
		OwnerID:               it.OwnerID,
		Amount:                stringToFloat(it.Amount),
		Category:              entities.PurposeCategory(it.Category),
		Subcategory:           it.Subcategory,
		Term:                  entities.PaymentTerm(it.Term),
		Method:                entities.PaymentMethod(it.Method),
		MonthlyIncome:         stringToFloat(it.MonthlyIncome),
		CommittedIncome:       stringToFloat(it.CommittedIncome),
		ProfessionalSituation: entities.ProfessionalSituation(it.ProfessionalSituation),
		Bank: entities.BankDetails{
			BankCode: it.BankCode,
			Branch:   it.BankBranch,
			Account:  it.BankAccount,
		},
		Status:         entities.RequestStatus(it.Status),
		SubmittedAt:    parseTime(it.SubmittedAt),
		DisbursementID: it.DisbursementID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}
	if it.Lock != nil {
		r.Lock = &entities.AnalystLock{AnalystID: it.Lock.AnalystID, LockedAt: parseTime(it.Lock.LockedAt)}
	}
	if it.Approval != nil {
		r.Approval = &entities.ApprovalOutcome{
			AnalystID:        it.Approval.AnalystID,
			ApprovedAmount:   stringToFloat(it.Approval.ApprovedAmount),
			InterestRate:     stringToFloat(it.Approval.InterestRate),
			TermMonths:       it.Approval.TermMonths,
			InstallmentValue: it.Approval.InstallmentValue,
			DecidedAt:        parseTime(it.Approval.DecidedAt),
		}
	}
	if it.Rejection != nil {
		r.Rejection = &entities.RejectionOutcome{
			AnalystID: it.Rejection.AnalystID,
			Reason:    it.Rejection.Reason,
			DecidedAt: parseTime(it.Rejection.DecidedAt),
		}
	}
	if it.Correction != nil {
		r.Correction = &entities.CorrectionRequest{
			AnalystID:    it.Correction.AnalystID,
			DocumentIDs:  it.Correction.DocumentIDs,
			Instructions: it.Correction.Instructions,
			RequestedAt:  parseTime(it.Correction.RequestedAt),
		}
	}
	if it.DisbursedAt != "" {
		t := parseTime(it.DisbursedAt)
		r.DisbursedAt = &t
	}
	return r
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
