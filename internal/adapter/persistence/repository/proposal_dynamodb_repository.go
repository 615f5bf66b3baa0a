package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultProposalsTableName = "proposals"

type proposalItem struct {
	ID             string `dynamodbav:"id"`
	ClientName     string `dynamodbav:"client_name"`
	ClientDocument string `dynamodbav:"client_document"`
	InsuredValue   string `dynamodbav:"insured_value"`
	CreatedAt      string `dynamodbav:"created_at"`
	Status         string `dynamodbav:"status"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// insured_value is stored as its decimal string so no precision is lost.
type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	items := make([]entities.Proposal, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it proposalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromProposalItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, p)
		}
	}

	// Scan order is arbitrary; match the creation order the Postgres store returns.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:             p.ID,
		ClientName:     p.ClientName,
		ClientDocument: p.ClientDocument,
		InsuredValue:   p.InsuredValue.String(),
		CreatedAt:      formatTime(p.CreatedAt),
		Status:         string(p.Status),
	}
}

func fromProposalItem(it proposalItem) (entities.Proposal, error) {
	value := decimal.Zero
	if it.InsuredValue != "" {
		v, err := decimal.NewFromString(it.InsuredValue)
		if err != nil {
			return entities.Proposal{}, fmt.Errorf("insured_value %q: %w", it.InsuredValue, err)
		}
		value = v
	}
	return entities.Proposal{
		ID:             it.ID,
		ClientName:     it.ClientName,
		ClientDocument: it.ClientDocument,
		InsuredValue:   value,
		CreatedAt:      parseTime(it.CreatedAt),
		Status:         entities.ProposalStatus(it.Status),
	}, nil
}
