package ddb

import (
	"context"
	"sculink/internal/types"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SectionStore keeps all sections in one partition, one item per section.
type SectionStore struct {
	table string
	cli   *dynamodb.Client
}

type sectionItem struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	types.Section
}

func NewSectionStore(table string, cli *dynamodb.Client) *SectionStore {
	// Creates the table only if it doesn't exist.
	createTableIfNotExists(cli, table)
	return &SectionStore{table: table, cli: cli}
}

func (s *SectionStore) GetSection(ctx context.Context, name string) (types.Section, error) {
	out, err := s.cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.table,
		Key: map[string]ddbTypes.AttributeValue{
			"PK": &ddbTypes.AttributeValueMemberS{Value: pkSection()},
			"SK": &ddbTypes.AttributeValueMemberS{Value: skSection(name)},
		},
		ConsistentRead: awsBool(true),
	})
	if err != nil {
		return types.Section{}, err
	}
	if out.Item == nil {
		return types.Section{}, types.ErrNotFound
	}
	var item sectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return types.Section{}, err
	}
	return item.Section, nil
}

func (s *SectionStore) ListSections(ctx context.Context) ([]types.Section, error) {
	p := dynamodb.NewQueryPaginator(s.cli, &dynamodb.QueryInput{
		TableName:              &s.table,
		KeyConditionExpression: awsString("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]ddbTypes.AttributeValue{
			":pk": &ddbTypes.AttributeValueMemberS{Value: pkSection()},
			":sk": &ddbTypes.AttributeValueMemberS{Value: SSection + "#"},
		},
		ConsistentRead: awsBool(true),
	})
	var sections []types.Section
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var item sectionItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, err
			}
			if item.Name == "" {
				name, err := parseSectionName(item.SK)
				if err != nil {
					return nil, err
				}
				item.Name = name
			}
			sections = append(sections, item.Section)
		}
	}
	return sections, nil
}

func (s *SectionStore) PutSection(ctx context.Context, section types.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(sectionItem{
		PK:      pkSection(),
		SK:      skSection(section.Name),
		Section: section,
	})
	if err != nil {
		return err
	}
	_, err = s.cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.table,
		Item:      item,
	})
	return err
}

func (s *SectionStore) DeleteSection(ctx context.Context, name string) error {
	_, err := s.cli.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.table,
		Key: map[string]ddbTypes.AttributeValue{
			"PK": &ddbTypes.AttributeValueMemberS{Value: pkSection()},
			"SK": &ddbTypes.AttributeValueMemberS{Value: skSection(name)},
		},
	})
	return err
}

func (s *SectionStore) ClearAll(ctx context.Context) error {
	_, err := s.cli.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: &s.table,
	})
	if err != nil {
		return err
	}
	// wait until the table is deleted
	err = dynamodb.NewTableNotExistsWaiter(s.cli).Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	}, 30*time.Second)
	if err != nil {
		return err
	}
	createTableIfNotExists(s.cli, s.table)
	return nil
}
