package repository

import (
	"context"
	"errors"
	"sort"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHiringsTableName = "hirings"
	hiringsIDIndex          = "id-index"
)

type hiringItem struct {
	ProposalID string `dynamodbav:"proposal_id"`
	ID         string `dynamodbav:"id"`
	HiredAt    string `dynamodbav:"hired_at"`
}

// HiringDynamoRepository persists Hiring entities in DynamoDB.
//
// Table requirements:
//   - PK: proposal_id (string)
//   - GSI: id-index (PK: id)
//
// Keying by proposal_id makes the conditional put the uniqueness check.
type HiringDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHiringRepository = (*HiringDynamoRepository)(nil)

func NewHiringDynamoRepository(ddb *dynamodb.Client, tableName string) *HiringDynamoRepository {
	return &HiringDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultHiringsTableName),
	}
}

func (r *HiringDynamoRepository) Create(ctx context.Context, h entities.Hiring) (entities.Hiring, error) {
	av, err := attributevalue.MarshalMap(toHiringItem(h))
	if err != nil {
		return entities.Hiring{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "proposal_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Hiring{}, interfaces.ErrHiringAlreadyExists
		}
		return entities.Hiring{}, err
	}
	return h, nil
}

func (r *HiringDynamoRepository) GetByID(ctx context.Context, id string) (entities.Hiring, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(hiringsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Hiring{}, err
	}
	if len(out.Items) == 0 {
		return entities.Hiring{}, nil
	}

	var it hiringItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Hiring{}, err
	}
	return fromHiringItem(it), nil
}

func (r *HiringDynamoRepository) List(ctx context.Context) ([]entities.Hiring, error) {
	items := make([]entities.Hiring, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it hiringItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromHiringItem(it))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].HiredAt.Before(items[j].HiredAt)
	})
	return items, nil
}

func toHiringItem(h entities.Hiring) hiringItem {
	return hiringItem{
		ProposalID: h.ProposalID,
		ID:         h.ID,
		HiredAt:    formatTime(h.HiredAt),
	}
}

func fromHiringItem(it hiringItem) entities.Hiring {
	return entities.Hiring{
		ID:         it.ID,
		ProposalID: it.ProposalID,
		HiredAt:    parseTime(it.HiredAt),
	}
}
