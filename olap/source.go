package olap

import "context"

// SourceTable describes one table of the relational store backing a catalog.
type SourceTable struct {
	Catalog string
	Schema  string
	Name    string
	// Type is "TABLE", "VIEW" or "SYSTEM TABLE".
	Type string
}

// SourceConnector hands out scoped connections to a relational store.
// Every SourceConn acquired must be released.
type SourceConnector interface {
	AcquireSource(ctx context.Context) (SourceConn, error)
}

type SourceConn interface {
	Tables(ctx context.Context) ([]SourceTable, error)
	Release()
}

// SourceProvider is implemented by connections whose model is backed by a
// relational store. Source returns nil when none is configured.
type SourceProvider interface {
	Source() SourceConnector
}
