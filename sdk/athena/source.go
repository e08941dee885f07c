package athena

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/kent-id/xmladiscover"
	"github.com/kent-id/xmladiscover/olap"
	"github.com/kent-id/xmladiscover/util"
	"github.com/pkg/errors"
)

const (
	maxAllowedPageSize = 50 // max allowed by athena for metadata listings
	defaultCatalog     = "AwsDataCatalog"
)

// api is the part of the athena client used to list metadata.
type api interface {
	ListDatabases(ctx context.Context, params *athena.ListDatabasesInput, optFns ...func(*athena.Options)) (*athena.ListDatabasesOutput, error)
	ListTableMetadata(ctx context.Context, params *athena.ListTableMetadataInput, optFns ...func(*athena.Options)) (*athena.ListTableMetadataOutput, error)
}

type sourceConnector struct {
	newAPI      func() api
	catalog     string
	maxPageSize int32
}

// NewSourceConnector lists the tables of every database of an Athena data
// catalog. An empty catalog means AwsDataCatalog.
func NewSourceConnector(awsConfig aws.Config, catalog string) olap.SourceConnector {
	if catalog == "" {
		catalog = defaultCatalog
	}
	xmladiscover.LogInfof("creating athena source with catalog: %s, region: %s, pageSize: %d", catalog, awsConfig.Region, maxAllowedPageSize)
	return newSourceConnector(func() api { return athena.NewFromConfig(awsConfig) }, catalog)
}

func newSourceConnector(newAPI func() api, catalog string) *sourceConnector {
	return &sourceConnector{newAPI: newAPI, catalog: catalog, maxPageSize: maxAllowedPageSize}
}

func (c *sourceConnector) AcquireSource(ctx context.Context) (olap.SourceConn, error) {
	return &sourceConn{client: c.newAPI(), catalog: c.catalog, maxPageSize: c.maxPageSize}, nil
}

type sourceConn struct {
	client      api
	catalog     string
	maxPageSize int32
}

// Release is a no-op: athena calls are stateless HTTP requests.
func (s *sourceConn) Release() {}

// Tables walks every database of the catalog and lists its tables.
func (s *sourceConn) Tables(ctx context.Context) ([]olap.SourceTable, error) {
	databases, err := s.databases(ctx)
	if err != nil {
		return nil, err
	}
	var tables []olap.SourceTable
	for _, database := range databases {
		t, err := s.tables(ctx, database)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t...)
	}
	return tables, nil
}

func (s *sourceConn) databases(ctx context.Context) ([]string, error) {
	input := athena.ListDatabasesInput{
		CatalogName: util.RefString(s.catalog),
		MaxResults:  util.RefInt32(s.maxPageSize),
	}

	var names []string
	var nextToken *string = nil
	var page uint = 1
	for {
		input.NextToken = nextToken
		output, err := s.client.ListDatabases(ctx, &input)
		if err != nil {
			return nil, errors.Wrapf(err, "listing databases of catalog %s", s.catalog)
		}
		for _, db := range output.DatabaseList {
			names = append(names, util.SafeString(db.Name))
		}

		nextToken = output.NextToken
		if nextToken == nil {
			xmladiscover.LogInfof("finished listing %d databases from athena", len(names))
			break
		}
		page++
		xmladiscover.LogInfof("fetching next page %d of databases from athena using nextToken: %s", page, util.SafeString(nextToken))
	}
	return names, nil
}

func (s *sourceConn) tables(ctx context.Context, database string) ([]olap.SourceTable, error) {
	input := athena.ListTableMetadataInput{
		CatalogName:  util.RefString(s.catalog),
		DatabaseName: util.RefString(database),
		MaxResults:   util.RefInt32(s.maxPageSize),
	}

	var tables []olap.SourceTable
	var nextToken *string = nil
	var page uint = 1
	for {
		input.NextToken = nextToken
		output, err := s.client.ListTableMetadata(ctx, &input)
		if err != nil {
			return nil, errors.Wrapf(err, "listing tables of database %s", database)
		}
		for _, t := range output.TableMetadataList {
			tables = append(tables, olap.SourceTable{
				Catalog: s.catalog,
				Schema:  database,
				Name:    util.SafeString(t.Name),
				Type:    tableType(util.SafeString(t.TableType)),
			})
		}

		nextToken = output.NextToken
		if nextToken == nil {
			break
		}
		page++
		xmladiscover.LogInfof("fetching next page %d of tables in %s from athena using nextToken: %s", page, database, util.SafeString(nextToken))
	}
	return tables, nil
}

// tableType maps Glue table types onto the rowset's TABLE_TYPE values.
func tableType(glueType string) string {
	switch glueType {
	case "VIRTUAL_VIEW":
		return "VIEW"
	case "EXTERNAL_TABLE", "MANAGED_TABLE", "":
		return "TABLE"
	}
	return glueType
}
