package docsearch

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FieldQueryKind is the tag of the FieldQuery closed sum described in the
// schema vocabulary. Min and Max are never deserialized from a schema file;
// they are synthesized by Lookup when a caller addresses one alias of a
// Range field.
type FieldQueryKind string

const (
	KindRange        FieldQueryKind = "range"
	KindMin          FieldQueryKind = "min"
	KindMax          FieldQueryKind = "max"
	KindBool         FieldQueryKind = "bool"
	KindNumericTag   FieldQueryKind = "numeric_tag"
	KindStringTag    FieldQueryKind = "string_tag"
	KindAmbiguousTag FieldQueryKind = "ambiguous_tag"
	KindNested       FieldQueryKind = "nested"
	KindFulltext     FieldQueryKind = "fulltext"
)

// FulltextSyntax selects which Postgres text-search function a Fulltext
// field is routed through.
type FulltextSyntax string

const (
	TsQuery   FulltextSyntax = "ts_query"
	Plain     FulltextSyntax = "plain"
	Phrase    FulltextSyntax = "phrase"
	WebSearch FulltextSyntax = "web_search"
)

// fulltextFuncs maps a FulltextSyntax to the Postgres function it compiles to.
var fulltextFuncs = map[FulltextSyntax]string{
	TsQuery:   "to_tsquery",
	Plain:     "plainto_tsquery",
	Phrase:    "phraseto_tsquery",
	WebSearch: "websearch_to_tsquery",
}

// FieldQuery is a tagged variant describing how a single field is queried.
// Which of the remaining fields are meaningful depends on Kind, as the group
// comments below say.
type FieldQuery struct {
	Kind FieldQueryKind `yaml:"type"`

	// Range (Min, Max, Aliases); NumericTag (Aliases)
	Min     string         `yaml:"min,omitempty"`
	Max     string         `yaml:"max,omitempty"`
	Aliases map[string]int `yaml:"aliases,omitempty"`

	// Fulltext
	Lang   string         `yaml:"lang,omitempty"`
	Syntax FulltextSyntax `yaml:"syntax,omitempty"`
	Target string         `yaml:"target,omitempty"`
}

// ConvertFrom is the representation a Converter writes into a document on
// egress (DateTimeString is the string Transform produces).
type ConvertFrom string

const (
	CommaSeparatedString     ConvertFrom = "comma_separated_string"
	SemicolonSeparatedString ConvertFrom = "semicolon_separated_string"
	DateTimeString           ConvertFrom = "date_time_string"
	DateString               ConvertFrom = "date_string"
)

// ConvertTo is the storage representation a Converter reads, so it knows
// how to parse the raw field before re-encoding it.
type ConvertTo string

const (
	Timestamp       ConvertTo = "timestamp"
	TimestampMillis ConvertTo = "timestamp_millis"
	TagArray        ConvertTo = "tag_array"
)

// Converter describes a post-processing step applied to a field on egress.
type Converter struct {
	From ConvertFrom `yaml:"from"`
	To   ConvertTo   `yaml:"to"`
}

// Field names one logical, searchable attribute of a Schema.
type Field struct {
	Name      string     `yaml:"-"`
	Converter *Converter `yaml:"converter,omitempty"`
	Query     FieldQuery `yaml:"query"`
}

// Schema names a backing table, a default sort field, and the fields that
// may be searched on it. A Schema is immutable for the lifetime of a
// request and safe to share across any number of concurrent compilations.
type Schema struct {
	Table          string           `yaml:"table"`
	DefaultOrderBy string           `yaml:"default_order_by"`
	Fields         map[string]Field `yaml:"fields"`
}

var identifierRE = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// LoadSchema decodes a schema from its human-editable YAML form. The table
// identifier is config-origin and therefore trusted by the compiler, but the
// loader still sanity-checks it so a malformed config fails here rather than
// producing a malformed query later.
func LoadSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var schema Schema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	if !identifierRE.MatchString(schema.Table) {
		return nil, fmt.Errorf("schema table %q is not a valid identifier", schema.Table)
	}
	if schema.DefaultOrderBy == "" {
		return nil, fmt.Errorf("schema is missing default_order_by")
	}

	for name, field := range schema.Fields {
		field.Name = name
		if field.Query.Kind == "" {
			field.Query.Kind = KindAmbiguousTag
		}
		if field.Query.Kind == KindFulltext && field.Query.Syntax == "" {
			field.Query.Syntax = WebSearch
		}
		schema.Fields[name] = field
	}

	return &schema, nil
}

// Lookup resolves a request parameter name against the schema, following
// the three-step rule in SPEC_FULL.md §4.1: exact match, then Range
// min/max alias, then Nested first-segment match. It reports ok=false
// (never an error) when nothing matches, since unresolved names are how
// control parameters like limit/offset/sortby/sortorder pass through.
func (s *Schema) Lookup(name string) (effectiveName string, fq FieldQuery, ok bool) {
	if field, exists := s.Fields[name]; exists {
		return field.Name, field.Query, true
	}

	for _, field := range s.Fields {
		switch field.Query.Kind {
		case KindRange:
			if name == field.Query.Min {
				return field.Name, FieldQuery{Kind: KindMin}, true
			}
			if name == field.Query.Max {
				return field.Name, FieldQuery{Kind: KindMax}, true
			}
		case KindNested:
			if strings.SplitN(name, ".", 2)[0] == field.Name {
				return name, FieldQuery{Kind: KindNested}, true
			}
		}
	}

	return "", FieldQuery{}, false
}

// Registry caches loaded schemas by table name, the way the teacher's
// model registry caches struct metadata by reflect.Type. A host process
// that serves several schema-backed tables registers each once at
// startup and looks it up per request instead of reloading the YAML file.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema to the registry, keyed by its table name.
// Registering the same table twice overwrites the previous schema.
func (r *Registry) Register(schema *Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[schema.Table] = schema
}

// Get returns the schema registered for table, if any.
func (r *Registry) Get(table string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok := r.schemas[table]
	return schema, ok
}
