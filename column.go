package xmladiscover

import (
	"github.com/kent-id/xmladiscover/types"
)

type matchMode int

const (
	// matchEquals keeps a row when its value equals one of the restriction values.
	matchEquals matchMode = iota
	// matchMask keeps a row when its value shares a bit with the OR of the restriction values.
	matchMask
	// matchConsumed leaves the restriction to the population strategy.
	matchConsumed
)

// Column describes one output field of a rowset kind.
type Column struct {
	Name             string
	Type             types.WireType
	Enumeration      *Enumeration
	Restrictable     bool
	RestrictionOrder int
	Nullable         bool
	Unbounded        bool
	Description      string

	match    matchMode
	orderSet bool
}

// ContentOnly reports whether the column carries nested rows that have no
// place in the row schema.
func (c *Column) ContentOnly() bool {
	return c.Type == types.RowSet
}

// RestrictionType is the wire type a restriction value on this column is
// declared with.
func (c *Column) RestrictionType() types.WireType {
	if c.Enumeration != nil {
		return c.Enumeration.Type
	}
	return c.Type
}

// valuesByName reports whether enumerated values of this column are carried
// as constant names rather than ordinals.
func (c *Column) valuesByName() bool {
	return c.Type == types.EnumString || !c.Enumeration.numeric()
}

type columnOption func(*Column)

func restriction(c *Column) {
	c.Restrictable = true
}

func optional(c *Column) {
	c.Nullable = true
}

func unbounded(c *Column) {
	c.Unbounded = true
}

func bitmask(c *Column) {
	c.match = matchMask
}

func consumed(c *Column) {
	c.match = matchConsumed
}

func enumerated(e *Enumeration) columnOption {
	return func(c *Column) {
		c.Enumeration = e
	}
}

func restrictionOrder(n int) columnOption {
	return func(c *Column) {
		c.RestrictionOrder = n
		c.orderSet = true
	}
}

func newColumn(name string, t types.WireType, description string, opts ...columnOption) *Column {
	c := &Column{
		Name:        name,
		Type:        t,
		Description: description,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
