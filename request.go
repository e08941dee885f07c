package xmladiscover

import (
	"strconv"
	"strings"
)

// Request property names understood by the populators.
const (
	PropertyEmitInvisibleMembers = "EmitInvisibleMembers"
	PropertyCatalog              = "Catalog"
	PropertyDeep                 = "Deep"
	PropertyContent              = "Content"
	PropertyFormat               = "Format"
	PropertyDataSourceInfo       = "DataSourceInfo"
)

// Restrictions maps a column name to the values it is restricted to. Several
// values are alternatives. A name that is absent leaves the column unrestricted.
type Restrictions map[string][]string

// Get returns the first value for name, or "".
func (r Restrictions) Get(name string) string {
	if vs := r[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns the values for name and whether the column is restricted.
func (r Restrictions) Values(name string) ([]string, bool) {
	vs, ok := r[name]
	return vs, ok
}

// Set replaces the values for name.
func (r Restrictions) Set(name string, values ...string) {
	r[name] = values
}

// Add appends a value for name.
func (r Restrictions) Add(name, value string) {
	r[name] = append(r[name], value)
}

// Has reports whether name is restricted.
func (r Restrictions) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// With returns a copy of r in which every entry of pinned replaces the
// corresponding restriction.
func (r Restrictions) With(pinned map[string]string) Restrictions {
	out := make(Restrictions, len(r)+len(pinned))
	for k, vs := range r {
		out[k] = append([]string(nil), vs...)
	}
	for k, v := range pinned {
		out[k] = []string{v}
	}
	return out
}

// Properties holds free-form request properties.
type Properties map[string]string

// Get looks a property up by exact name first, then case-insensitively.
func (p Properties) Get(name string) (string, bool) {
	if v, ok := p[name]; ok {
		return v, true
	}
	for k, v := range p {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Bool reads a boolean property; missing or malformed values are false.
func (p Properties) Bool(name string) bool {
	v, ok := p.Get(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

// Request is a single discovery call.
type Request struct {
	RequestType  string
	Restrictions Restrictions
	Properties   Properties
	RoleName     string
	Username     string
	Password     string
	SessionID    string
}

// NewRequest builds a request for kind with the given restrictions and no properties.
func NewRequest(kind string, restrictions Restrictions) *Request {
	if restrictions == nil {
		restrictions = Restrictions{}
	}
	return &Request{
		RequestType:  kind,
		Restrictions: restrictions,
		Properties:   Properties{},
	}
}

// derive copies the request for a nested population with extra pinned restrictions.
func (r *Request) derive(kind string, pinned map[string]string) *Request {
	child := *r
	child.RequestType = kind
	child.Restrictions = r.Restrictions.With(pinned)
	return &child
}
