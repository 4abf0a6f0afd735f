package docsearch

import "net/url"

// Document is a single JSON document, keyed by field name. It is what the
// result transformer consumes and produces, and what the executor scans
// each row's `object` column into.
type Document map[string]interface{}

// ParamMap is a flat, string-keyed mapping of request parameters, as one
// would find in a URL query string. Keys are visited in sorted order during
// compilation (see Compile), independent of whatever order the caller built
// the map in.
type ParamMap map[string]string

// SortOrder is one of the two literal strings ASC or DESC.
type SortOrder string

const (
	Asc  SortOrder = "ASC"
	Desc SortOrder = "DESC"
)

// BindingTag identifies the positional type tag of a bound value, matching
// the database executor contract's TEXT/integer placeholder shapes.
type BindingTag int

const (
	TagText BindingTag = iota
	TagInt
	TagBool
)

// Binding is one positional parameter value together with its type tag.
type Binding struct {
	Tag   BindingTag
	Value interface{}
}

// CompiledQuery is the immutable output of Compile: a parameterized SQL
// template, its JSON-path predicate (if any), the ordered bindings matching
// the template's placeholders, and the sort/pagination settings.
type CompiledQuery struct {
	SQL       string
	JSONPath  string
	Bindings  []Binding
	SortField string
	SortOrder SortOrder
	Limit     int
	Offset    int
}

// PlaceholderCount reports how many positional placeholders CompiledQuery.SQL
// is built to contain. Compile emits one placeholder per binding, so this is
// len(q.Bindings); it is derived from Bindings and does not read the SQL text.
func (q *CompiledQuery) PlaceholderCount() int {
	return len(q.Bindings)
}

const (
	// DefaultLimit is used when the request omits the "limit" control parameter.
	DefaultLimit = 100
	// DefaultOffset is used when the request omits the "offset" control parameter.
	DefaultOffset = 0
)

// ParamsFromQuery flattens a parsed URL query string into a ParamMap,
// taking the first value of any key repeated in the query string. It is the
// seam an HTTP layer calls through on its way into Compile; this package
// stops at ParamMap and never parses an *http.Request itself.
func ParamsFromQuery(q url.Values) ParamMap {
	params := make(ParamMap, len(q))
	for k, v := range q {
		if len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}
	return params
}
