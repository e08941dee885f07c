package xmladiscover

import (
	"github.com/pkg/errors"
)

// condition tests one cell against a compiled restriction.
type condition func(v Value) bool

func never(Value) bool { return false }

func compileCondition(c *Column, values []string) condition {
	if c.match == matchMask {
		mask, err := parseMask(c, values)
		if err != nil {
			LogDebugf("restriction on %s can never match: %v", c.Name, err)
			return never
		}
		return func(v Value) bool {
			n, ok := asInt64(v.Scalar())
			return ok && n&mask != 0
		}
	}

	keys := make(map[interface{}]bool, len(values))
	for _, raw := range values {
		parsed, err := castRestrictionValue(raw, c)
		if err != nil {
			LogDebugf("ignoring restriction value %q on %s: %v", raw, c.Name, err)
			continue
		}
		keys[comparableKey(parsed)] = true
	}
	if len(keys) == 0 {
		return never
	}
	return func(v Value) bool {
		switch v.Kind() {
		case ScalarValue:
			return keys[comparableKey(v.Scalar())]
		case ListValue:
			for _, item := range v.List() {
				if keys[comparableKey(item)] {
					return true
				}
			}
		}
		return false
	}
}

// parseMask ORs the restriction values of a bitmask column. Values may be
// constant names or numbers.
func parseMask(c *Column, values []string) (int64, error) {
	if c.Enumeration != nil {
		mask, ok := c.Enumeration.Mask(values)
		if !ok {
			return 0, errors.Errorf("no valid %s value in %v", c.Enumeration.Name, values)
		}
		return int64(mask), nil
	}
	var mask int64
	resolved := false
	for _, raw := range values {
		parsed, err := castRestrictionValue(raw, c)
		if err != nil {
			continue
		}
		if n, ok := asInt64(parsed); ok {
			mask |= n
			resolved = true
		}
	}
	if !resolved {
		return 0, errors.Errorf("no valid bitmask value in %v", values)
	}
	return mask, nil
}

// restrictionSet is the compiled form of a request's restrictions against one kind.
type restrictionSet struct {
	conds  map[string]condition
	values Restrictions
}

func compileRestrictions(kind *RowsetKind, r Restrictions) *restrictionSet {
	s := &restrictionSet{
		conds:  make(map[string]condition),
		values: make(Restrictions),
	}
	for name, values := range r {
		c := kind.Column(name)
		if c == nil || !c.Restrictable {
			LogDebugf("ignoring restriction on %s: not a restrictable column of %s", name, kind.name)
			continue
		}
		if len(values) == 0 {
			continue
		}
		s.values[name] = values
		if c.match == matchConsumed {
			continue
		}
		s.conds[name] = compileCondition(c, values)
	}
	return s
}

// test checks a candidate value for column name; unrestricted columns pass.
func (s *restrictionSet) test(name string, v interface{}) bool {
	cond, ok := s.conds[name]
	return !ok || cond(newValue(v))
}

func (s *restrictionSet) accept(row *Row) bool {
	for name, cond := range s.conds {
		if !cond(row.Get(name)) {
			return false
		}
	}
	return true
}

// acceptPresent checks only the restricted columns the row carries a value for.
func (s *restrictionSet) acceptPresent(row *Row) bool {
	for name, cond := range s.conds {
		if v := row.Get(name); !v.IsNull() && !cond(v) {
			return false
		}
	}
	return true
}
