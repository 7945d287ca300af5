package ddb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

const (
	SSection = "SECTION"
)

func pkSection() string            { return SSection }
func skSection(name string) string { return fmt.Sprintf("%s#%s", SSection, name) }

func parseSectionName(sk string) (string, error) {
	prefix := SSection + "#"
	if !strings.HasPrefix(sk, prefix) {
		return "", fmt.Errorf("unexpected sort key %q", sk)
	}
	return strings.TrimPrefix(sk, prefix), nil
}

func createTableIfNotExists(client *dynamodb.Client, table string) {
	_, err := client.CreateTable(context.Background(), &dynamodb.CreateTableInput{
		TableName: &table,
		AttributeDefinitions: []ddbTypes.AttributeDefinition{
			{AttributeName: awsString("PK"), AttributeType: ddbTypes.ScalarAttributeTypeS},
			{AttributeName: awsString("SK"), AttributeType: ddbTypes.ScalarAttributeTypeS},
		},
		KeySchema: []ddbTypes.KeySchemaElement{
			{AttributeName: awsString("PK"), KeyType: ddbTypes.KeyTypeHash},
			{AttributeName: awsString("SK"), KeyType: ddbTypes.KeyTypeRange},
		},
		BillingMode: ddbTypes.BillingModePayPerRequest,
	})
	var re *ddbTypes.ResourceInUseException
	if err != nil && !errors.As(err, &re) {
		log.WithError(err).WithField("table", table).Error("failed to create table")
	}
}

func awsString(s string) *string { return &s }
func awsBool(b bool) *bool       { return &b }
