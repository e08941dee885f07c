package xmladiscover

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownRowsetKind is returned when a request names no registered rowset kind.
	ErrUnknownRowsetKind = errors.New("unknown rowset kind")

	// ErrMetadataAccess matches every MetadataAccessError through errors.Is.
	ErrMetadataAccess = errors.New("metadata access fault")

	// ErrNoConnection is the cause of a fault raised when a kind that reads the
	// model is populated without a connection.
	ErrNoConnection = errors.New("rowset kind requires an olap connection")
)

// MetadataAccessError reports a failure of the underlying model while a rowset
// was being populated. No partial rows accompany it.
type MetadataAccessError struct {
	Kind string
	Err  error
}

func (e *MetadataAccessError) Error() string {
	return fmt.Sprintf("%s: populating %s: %v", ErrMetadataAccess, e.Kind, e.Err)
}

func (e *MetadataAccessError) Unwrap() error {
	return e.Err
}

func (e *MetadataAccessError) Is(target error) bool {
	return target == ErrMetadataAccess
}

func newMetadataAccessError(kind string, err error) error {
	var mae *MetadataAccessError
	if errors.As(err, &mae) {
		return mae
	}
	return &MetadataAccessError{Kind: kind, Err: err}
}
