package xmladiscover

// FunctionCategory is the type of an MDX expression, used for function
// parameters and return values.
type FunctionCategory int

const (
	CategoryUnknown   FunctionCategory = 0
	CategoryArray     FunctionCategory = 1
	CategoryDimension FunctionCategory = 2
	CategoryHierarchy FunctionCategory = 3
	CategoryLevel     FunctionCategory = 4
	CategoryLogical   FunctionCategory = 5
	CategoryMember    FunctionCategory = 6
	CategoryNumeric   FunctionCategory = 7
	CategorySet       FunctionCategory = 8
	CategoryString    FunctionCategory = 9
	CategoryTuple     FunctionCategory = 10
	CategorySymbol    FunctionCategory = 11
	CategoryCube      FunctionCategory = 12
	CategoryValue     FunctionCategory = 13
	CategoryInteger   FunctionCategory = 15
	CategoryNull      FunctionCategory = 16
	CategoryEmpty     FunctionCategory = 18
	CategoryDateTime  FunctionCategory = 19
)

var categoryNames = map[FunctionCategory]string{
	CategoryUnknown:   "UNKNOWN",
	CategoryArray:     "ARRAY",
	CategoryDimension: "DIMENSION",
	CategoryHierarchy: "HIERARCHY",
	CategoryLevel:     "LEVEL",
	CategoryLogical:   "LOGICAL",
	CategoryMember:    "MEMBER",
	CategoryNumeric:   "NUMERIC",
	CategorySet:       "SET",
	CategoryString:    "STRING",
	CategoryTuple:     "TUPLE",
	CategorySymbol:    "SYMBOL",
	CategoryCube:      "CUBE",
	CategoryValue:     "VALUE",
	CategoryInteger:   "INTEGER",
	CategoryNull:      "NULL",
	CategoryEmpty:     "EMPTY",
	CategoryDateTime:  "DATETIME",
}

func (c FunctionCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// FunctionSyntax is the way a function is written in MDX.
type FunctionSyntax int

const (
	SyntaxFunction FunctionSyntax = iota
	SyntaxProperty
	SyntaxMethod
	SyntaxInfix
	SyntaxPrefix
	SyntaxPostfix
	SyntaxBraces
	SyntaxParentheses
	SyntaxCase
	SyntaxEmpty
	SyntaxInternal
)

// listed reports whether functions of this syntax appear in MDSCHEMA_FUNCTIONS.
func (s FunctionSyntax) listed() bool {
	switch s {
	case SyntaxParentheses, SyntaxEmpty, SyntaxInternal:
		return false
	}
	return true
}

// FunctionSignature is one overload of a function.
type FunctionSignature struct {
	Return FunctionCategory
	Params []FunctionCategory
}

// FunctionInfo describes an MDX function served by MDSCHEMA_FUNCTIONS.
type FunctionInfo struct {
	Name        string
	Description string
	Syntax      FunctionSyntax
	Interface   string
	Signatures  []FunctionSignature
}

func sig(ret FunctionCategory, params ...FunctionCategory) FunctionSignature {
	return FunctionSignature{Return: ret, Params: params}
}

// DefaultFunctions is the built-in MDX function table.
func DefaultFunctions() []FunctionInfo {
	return []FunctionInfo{
		{"Aggregate", "Returns a calculated value using the appropriate aggregate function, based on the context of the query.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryNumeric, CategorySet), sig(CategoryNumeric, CategorySet, CategoryNumeric)}},
		{"Ancestor", "Returns the ancestor of a member at a specified level.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember, CategoryLevel), sig(CategoryMember, CategoryMember, CategoryInteger)}},
		{"Avg", "Returns the average value of a numeric expression evaluated over a set.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryNumeric, CategorySet), sig(CategoryNumeric, CategorySet, CategoryNumeric)}},
		{"BottomCount", "Returns a specified number of items from the bottom of a set, optionally ordering the set first.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategoryInteger, CategoryNumeric)}},
		{"Children", "Returns the children of a member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategorySet, CategoryMember)}},
		{"ClosingPeriod", "Returns the last descendant of a member at a level.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryMember), sig(CategoryMember, CategoryLevel), sig(CategoryMember, CategoryLevel, CategoryMember)}},
		{"CoalesceEmpty", "Coalesces an empty cell value to a different value.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryNumeric, CategoryNumeric, CategoryNumeric), sig(CategoryString, CategoryString, CategoryString)}},
		{"Count", "Returns the number of tuples in a set, empty cells included unless the optional EXCLUDEEMPTY flag is used.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryInteger, CategorySet), sig(CategoryInteger, CategorySet, CategorySymbol)}},
		{"Crossjoin", "Returns the cross product of two sets.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategorySet)}},
		{"CurrentMember", "Returns the current member along a dimension during an iteration.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryMember, CategoryHierarchy), sig(CategoryMember, CategoryDimension)}},
		{"DefaultMember", "Returns the default member of a dimension.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryMember, CategoryHierarchy)}},
		{"Descendants", "Returns the set of descendants of a member at a specified level, optionally including or excluding descendants in other levels.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategoryMember), sig(CategorySet, CategoryMember, CategoryLevel), sig(CategorySet, CategoryMember, CategoryLevel, CategorySymbol)}},
		{"Dimension", "Returns the dimension that contains a specified hierarchy.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryDimension, CategoryHierarchy), sig(CategoryDimension, CategoryLevel), sig(CategoryDimension, CategoryMember)}},
		{"Except", "Finds the difference between two sets, optionally retaining duplicates.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategorySet), sig(CategorySet, CategorySet, CategorySet, CategorySymbol)}},
		{"Filter", "Returns the set resulting from filtering a set based on a search condition.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategoryLogical)}},
		{"FirstChild", "Returns the first child of a member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember)}},
		{"Generate", "Applies a set to each member of another set and joins the resulting sets by union.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategorySet), sig(CategoryString, CategorySet, CategoryString, CategoryString)}},
		{"Head", "Returns the first specified number of elements in a set.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet), sig(CategorySet, CategorySet, CategoryInteger)}},
		{"Hierarchize", "Orders the members of a set in a hierarchy.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet), sig(CategorySet, CategorySet, CategorySymbol)}},
		{"IIf", "Returns one of two values determined by a logical test.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryNumeric, CategoryLogical, CategoryNumeric, CategoryNumeric), sig(CategoryString, CategoryLogical, CategoryString, CategoryString)}},
		{"IsEmpty", "Determines if an expression evaluates to the empty cell value.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryLogical, CategoryValue)}},
		{"Lag", "Returns a member further along the specified member's dimension.", SyntaxMethod, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember, CategoryInteger)}},
		{"LastChild", "Returns the last child of a member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember)}},
		{"Lead", "Returns a member further along the specified member's dimension.", SyntaxMethod, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember, CategoryInteger)}},
		{"Level", "Returns a member's level.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryLevel, CategoryMember)}},
		{"Max", "Returns the maximum value of a numeric expression evaluated over a set.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryNumeric, CategorySet), sig(CategoryNumeric, CategorySet, CategoryNumeric)}},
		{"Members", "Returns the set of members in a dimension, level, or hierarchy.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategorySet, CategoryDimension), sig(CategorySet, CategoryHierarchy), sig(CategorySet, CategoryLevel)}},
		{"Min", "Returns the minimum value of a numeric expression evaluated over a set.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryNumeric, CategorySet), sig(CategoryNumeric, CategorySet, CategoryNumeric)}},
		{"Name", "Returns the name of a dimension, hierarchy, level, or member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryString, CategoryDimension), sig(CategoryString, CategoryHierarchy), sig(CategoryString, CategoryLevel), sig(CategoryString, CategoryMember)}},
		{"NextMember", "Returns the next member in the level that contains a specified member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember)}},
		{"NonEmptyCrossJoin", "Returns the cross product of two sets, excluding empty tuples and tuples without associated fact table data.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategorySet)}},
		{"OpeningPeriod", "Returns the first descendant of a member at a level.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryMember), sig(CategoryMember, CategoryLevel), sig(CategoryMember, CategoryLevel, CategoryMember)}},
		{"Order", "Arranges members of a set, optionally preserving or breaking the hierarchy.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategoryValue), sig(CategorySet, CategorySet, CategoryValue, CategorySymbol)}},
		{"ParallelPeriod", "Returns a member from a prior period in the same relative position as a specified member.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryMember), sig(CategoryMember, CategoryLevel), sig(CategoryMember, CategoryLevel, CategoryInteger), sig(CategoryMember, CategoryLevel, CategoryInteger, CategoryMember)}},
		{"Parent", "Returns the parent of a member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember)}},
		{"PeriodsToDate", "Returns a set of periods (members) from a specified level starting with the first period and ending with a specified member.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet), sig(CategorySet, CategoryLevel), sig(CategorySet, CategoryLevel, CategoryMember)}},
		{"PrevMember", "Returns the previous member in the level that contains a specified member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryMember, CategoryMember)}},
		{"Rank", "Returns the one-based rank of a tuple in a set.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryInteger, CategoryTuple, CategorySet), sig(CategoryInteger, CategoryMember, CategorySet, CategoryNumeric)}},
		{"Siblings", "Returns the siblings of a specified member, including the member itself.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategorySet, CategoryMember)}},
		{"StrToSet", "Constructs a set from a string expression.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategoryString)}},
		{"Sum", "Returns the sum of a numeric expression evaluated over a set.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategoryNumeric, CategorySet), sig(CategoryNumeric, CategorySet, CategoryNumeric)}},
		{"Tail", "Returns a subset from the end of a set.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet), sig(CategorySet, CategorySet, CategoryInteger)}},
		{"TopCount", "Returns a specified number of items from the top of a set, optionally ordering the set first.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategoryInteger), sig(CategorySet, CategorySet, CategoryInteger, CategoryNumeric)}},
		{"Union", "Returns the union of two sets, optionally retaining duplicates.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet, CategorySet, CategorySet), sig(CategorySet, CategorySet, CategorySet, CategorySymbol)}},
		{"UniqueName", "Returns the unique name of a dimension, level, or member.", SyntaxProperty, "",
			[]FunctionSignature{sig(CategoryString, CategoryDimension), sig(CategoryString, CategoryLevel), sig(CategoryString, CategoryMember)}},
		{"YTD", "A shortcut function for the PeriodsToDate function that specifies the level to be Year.", SyntaxFunction, "",
			[]FunctionSignature{sig(CategorySet), sig(CategorySet, CategoryMember)}},
		{"+", "Adds two numbers.", SyntaxInfix, "",
			[]FunctionSignature{sig(CategoryNumeric, CategoryNumeric, CategoryNumeric)}},
		{"-", "Subtracts two numbers.", SyntaxInfix, "",
			[]FunctionSignature{sig(CategoryNumeric, CategoryNumeric, CategoryNumeric)}},
		{"AND", "Returns the conjunction of two conditions.", SyntaxInfix, "",
			[]FunctionSignature{sig(CategoryLogical, CategoryLogical, CategoryLogical)}},
		{"NOT", "Returns the negation of a condition.", SyntaxPrefix, "",
			[]FunctionSignature{sig(CategoryLogical, CategoryLogical)}},
		{"IS EMPTY", "Determines if an expression evaluates to the empty cell value.", SyntaxPostfix, "",
			[]FunctionSignature{sig(CategoryLogical, CategoryValue)}},
		{"{}", "Brace operator constructs a set.", SyntaxBraces, "",
			[]FunctionSignature{sig(CategorySet), sig(CategorySet, CategoryMember)}},
		{"()", "Parenthesis operator constructs a tuple.", SyntaxParentheses, "",
			[]FunctionSignature{sig(CategoryTuple, CategoryMember)}},
		{"_CaseTest", "Evaluates various conditions, and returns the corresponding expression for the first which evaluates to true.", SyntaxCase, "",
			[]FunctionSignature{sig(CategoryValue, CategoryLogical, CategoryValue)}},
		{"$Cache", "Evaluates and returns its sole argument, applying statement-level caching", SyntaxInternal, "",
			[]FunctionSignature{sig(CategoryValue, CategoryValue)}},
	}
}
