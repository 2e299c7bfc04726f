package repository

import (
	"context"

	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPermissionsTableName = "discount_permissions"

type permissionItem struct {
	UserID           string `dynamodbav:"user_id"`
	DiscountEditable bool   `dynamodbav:"discount_editable"`
}

// PermissionDynamoRepository reads per-user discount permissions.
//
// Table requirements:
//   - PK: user_id (string)
//
// A user without a record may not edit discounts.

type PermissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPermissionRepository = (*PermissionDynamoRepository)(nil)

func NewPermissionDynamoRepository(ddb *dynamodb.Client) *PermissionDynamoRepository {
	return &PermissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PERMISSIONS_TABLE", defaultPermissionsTableName),
	}
}

func (r *PermissionDynamoRepository) DiscountEditable(ctx context.Context, userID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it permissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	return it.DiscountEditable, nil
}
