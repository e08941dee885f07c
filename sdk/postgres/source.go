// Package postgres lists the tables of a PostgreSQL database for
// DBSCHEMA_SOURCE_TABLES.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kent-id/xmladiscover"
	"github.com/kent-id/xmladiscover/olap"
	"github.com/pkg/errors"
)

const tablesQuery = `
SELECT table_catalog, table_schema, table_name, table_type
FROM information_schema.tables
WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
ORDER BY table_schema, table_name`

// SourceConnector hands out pooled connections.
type SourceConnector struct {
	pool *pgxpool.Pool
}

var _ olap.SourceConnector = (*SourceConnector)(nil)

// NewSourceConnector opens a pool for dsn. Close it when done.
func NewSourceConnector(ctx context.Context, dsn string) (*SourceConnector, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "creating postgres pool")
	}
	xmladiscover.LogInfof("created postgres source for database: %s", pool.Config().ConnConfig.Database)
	return &SourceConnector{pool: pool}, nil
}

func (c *SourceConnector) AcquireSource(ctx context.Context) (olap.SourceConn, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "acquiring postgres connection")
	}
	return &sourceConn{conn: conn}, nil
}

func (c *SourceConnector) Close() {
	c.pool.Close()
}

type sourceConn struct {
	conn *pgxpool.Conn
}

func (s *sourceConn) Release() {
	s.conn.Release()
}

func (s *sourceConn) Tables(ctx context.Context) ([]olap.SourceTable, error) {
	rows, err := s.conn.Query(ctx, tablesQuery)
	if err != nil {
		return nil, errors.Wrap(err, "querying information_schema.tables")
	}
	defer rows.Close()

	var tables []olap.SourceTable
	for rows.Next() {
		var t olap.SourceTable
		if err := rows.Scan(&t.Catalog, &t.Schema, &t.Name, &t.Type); err != nil {
			return nil, errors.Wrap(err, "scanning table row")
		}
		t.Type = tableType(t.Type)
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading information_schema.tables")
	}
	return tables, nil
}

// tableType maps information_schema table types onto TABLE_TYPE values.
func tableType(t string) string {
	switch t {
	case "BASE TABLE", "FOREIGN", "LOCAL TEMPORARY":
		return "TABLE"
	}
	return t
}
