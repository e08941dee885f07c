package xmladiscover

import (
	"strconv"
	"strings"

	"github.com/kent-id/xmladiscover/types"
)

// EnumConstant is one named value of an Enumeration.
type EnumConstant struct {
	Name        string
	Ordinal     int
	Description string
}

// Enumeration is a closed set of named constants that a column may be bound to.
// Type is the wire type of the constants themselves, e.g. INTEGER for tree
// operators and STRING for provider types.
type Enumeration struct {
	Name        string
	Description string
	Type        types.WireType
	Constants   []EnumConstant
}

// Lookup resolves a constant by name or by its decimal ordinal.
func (e *Enumeration) Lookup(value string) (EnumConstant, bool) {
	for _, c := range e.Constants {
		if c.Name == value {
			return c, true
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		for _, c := range e.Constants {
			if c.Ordinal == n {
				return c, true
			}
		}
	}
	return EnumConstant{}, false
}

// Mask ORs together the ordinals of the given constant names or numbers.
// Numbers need not name a single constant, so "9" is SELF|CHILDREN of TreeOp.
// The second result is false when none of the values resolved.
func (e *Enumeration) Mask(values []string) (int, bool) {
	mask, ok := 0, false
	for _, v := range values {
		if c, found := e.Lookup(v); found {
			mask |= c.Ordinal
			ok = true
		} else if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			mask |= n
			ok = true
		}
	}
	return mask, ok
}

var (
	enumProviderType = &Enumeration{
		Name:        "ProviderType",
		Description: "The types of data supported by the provider.",
		Type:        types.StringArray,
		Constants: []EnumConstant{
			{"TDP", 0, "tabular data provider."},
			{"MDP", 1, "multidimensional data provider."},
			{"DMP", 2, "data mining provider. A DMP provider implements the OLE DB for Data Mining specification."},
		},
	}

	enumAuthenticationMode = &Enumeration{
		Name:        "AuthenticationMode",
		Description: "Specification of what type of security mode the data source uses.",
		Type:        types.EnumString,
		Constants: []EnumConstant{
			{"Unauthenticated", 0, "no user ID or password needs to be sent."},
			{"Authenticated", 1, "User ID and Password must be included in the information required for the connection."},
			{"Integrated", 2, "the data source uses the underlying security to determine authorization, such as Integrated Security provided by Microsoft Internet Information Services (IIS)."},
		},
	}

	enumAccess = &Enumeration{
		Name:        "Access",
		Description: "The read/write behavior of a property",
		Type:        types.Integer,
		Constants: []EnumConstant{
			{"Read", 1, "Property is read-only."},
			{"Write", 2, "Property is write-only."},
			{"ReadWrite", 3, "Property can be read and written."},
		},
	}

	enumTreeOp = &Enumeration{
		Name:        "TreeOp",
		Description: "Bitmap which controls which relatives of a member are returned",
		Type:        types.Integer,
		Constants: []EnumConstant{
			{"MDTREEOP_CHILDREN", treeOpChildren, "Returns only the immediate children"},
			{"MDTREEOP_SIBLINGS", treeOpSiblings, "Returns members on the same level"},
			{"MDTREEOP_PARENT", treeOpParent, "Returns only the immediate parent"},
			{"MDTREEOP_SELF", treeOpSelf, "Returns the member itself"},
			{"MDTREEOP_DESCENDANTS", treeOpDescendants, "Returns all of the descendants"},
			{"MDTREEOP_ANCESTORS", treeOpAncestors, "Returns all of the ancestors"},
		},
	}

	enumVisibility = &Enumeration{
		Name:        "Visibility",
		Description: "Bitmap of whether visible or hidden elements are returned",
		Type:        types.UnsignedShort,
		Constants: []EnumConstant{
			{"MDDIMENSIONS_VISIBLE", visibilityVisible, "Visible elements"},
			{"MDDIMENSIONS_NOT_VISIBLE", visibilityNotVisible, "Hidden elements"},
		},
	}

	enumCubeSource = &Enumeration{
		Name:        "CubeSource",
		Description: "Bitmap of the kinds of cube returned",
		Type:        types.UnsignedShort,
		Constants: []EnumConstant{
			{"CUBE", cubeSourceCube, "Cubes"},
			{"DIMENSION", cubeSourceDimension, "Dimensions"},
		},
	}

	enumPropertyType = &Enumeration{
		Name:        "PropertyType",
		Description: "Bitmap of the kinds of property returned",
		Type:        types.Short,
		Constants: []EnumConstant{
			{"MDPROP_MEMBER", propertyTypeMember, "Member property"},
			{"MDPROP_CELL", propertyTypeCell, "Cell property"},
			{"MDPROP_SYSTEM", propertyTypeSystem, "Internal property"},
			{"MDPROP_BLOB", propertyTypeBlob, "Binary large object"},
		},
	}
)

// Tree operator bits used by MDSCHEMA_MEMBERS.
const (
	treeOpChildren    = 1
	treeOpSiblings    = 2
	treeOpParent      = 4
	treeOpSelf        = 8
	treeOpDescendants = 16
	treeOpAncestors   = 32
)

const (
	visibilityVisible    = 1
	visibilityNotVisible = 2
)

const (
	cubeSourceCube      = 1
	cubeSourceDimension = 2
)

const (
	propertyTypeMember = 1
	propertyTypeCell   = 2
	propertyTypeSystem = 4
	propertyTypeBlob   = 8
)

// numeric reports whether constants of e travel as their ordinals rather than
// their names.
func (e *Enumeration) numeric() bool {
	switch e.Type {
	case types.String, types.StringArray:
		return false
	}
	return true
}
