package docsearch

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
)

// fulltextPredicate is one SQL-level full-text filter collected while
// walking the parameter map, kept in visitation order until Compile folds
// it into the final WHERE clause.
type fulltextPredicate struct {
	expr  string // "to_tsvector('lang', object->>'target') @@ fn('lang', $n)" with $n left as a %d verb
	value string
}

// Compile consumes a Schema and a caller-supplied ParamMap and produces a
// CompiledQuery: a parameterized SQL template, the JSON-path predicate it
// embeds, the ordered bound values, and the sort/pagination settings.
//
// Compile is pure and allocates only its own output. Keys are visited in
// sorted order so that identical inputs always yield a byte-identical
// CompiledQuery (testable property 1), independent of the ParamMap's
// original iteration order.
func Compile(schema *Schema, params ParamMap) (*CompiledQuery, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var jsonFragments []string
	var fulltext []fulltextPredicate

	sortField := schema.DefaultOrderBy
	sortOrder := Desc

	rawLimit, hasLimit := params["limit"]
	limit, err := normalizeLimit(rawLimit, hasLimit)
	if err != nil {
		return nil, err
	}
	rawOffset, hasOffset := params["offset"]
	offset, err := normalizeOffset(rawOffset, hasOffset)
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		value := params[key]

		switch key {
		case "limit", "offset":
			continue
		case "sortby":
			sortField = value
			continue
		case "sortorder":
			switch strings.ToLower(value) {
			case "asc":
				sortOrder = Asc
			case "desc":
				sortOrder = Desc
			default:
				sortOrder = Asc
			}
			continue
		}

		effectiveName, fq, ok := schema.Lookup(key)
		if !ok {
			continue
		}

		if fq.Kind == KindFulltext {
			target := fq.Target
			if target == "" {
				target = effectiveName
			}
			fn, ok := fulltextFuncs[fq.Syntax]
			if !ok {
				fn = fulltextFuncs[WebSearch]
			}
			fulltext = append(fulltext, fulltextPredicate{
				expr:  fmt.Sprintf("to_tsvector('%s', object->>'%s') @@ %s('%s', $%%d)", fq.Lang, target, fn, fq.Lang),
				value: value,
			})
			continue
		}

		fragment, err := compileTermList(key, effectiveName, fq.Kind, fq.Aliases, value)
		if err != nil {
			return nil, err
		}
		jsonFragments = append(jsonFragments, fragment)
	}

	jsonPath := ""
	if len(jsonFragments) > 0 {
		jsonPath = "(" + strings.Join(jsonFragments, " && ") + ")"
	}

	reserved := 0
	if jsonPath != "" {
		reserved = 1
	}
	sortPH, limitPH, offsetPH, fulltextStart := reserved+1, reserved+2, reserved+3, reserved+4

	var bindings []Binding
	if jsonPath != "" {
		bindings = append(bindings, Binding{Tag: TagText, Value: jsonPath})
	}
	bindings = append(bindings,
		Binding{Tag: TagText, Value: sortField},
		Binding{Tag: TagInt, Value: limit},
		Binding{Tag: TagInt, Value: offset},
	)

	var sqlFilters []string
	for i, ft := range fulltext {
		sqlFilters = append(sqlFilters, fmt.Sprintf(ft.expr, fulltextStart+i))

		// The historical source JSON-serializes the raw term before binding
		// it (original_source/src/db.rs: other_bindings.push(v.to_string())
		// on a serde_json::Value); matched here with encoding/json so a term
		// like `ghost story` is bound as `"ghost story"`.
		marshaled, err := json.Marshal(ft.value)
		if err != nil {
			return nil, fmt.Errorf("marshal fulltext binding: %w", err)
		}
		bindings = append(bindings, Binding{Tag: TagText, Value: string(marshaled)})
	}

	selectShell, err := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("object").
		From(schema.Table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select shell: %w", err)
	}

	query := selectShell
	switch {
	case jsonPath != "" && len(sqlFilters) > 0:
		query += fmt.Sprintf(" WHERE object @@ CAST($1 AS JSONPATH) AND %s", strings.Join(sqlFilters, " AND "))
	case jsonPath != "":
		query += " WHERE object @@ CAST($1 AS JSONPATH)"
	case len(sqlFilters) > 0:
		query += fmt.Sprintf(" WHERE %s", strings.Join(sqlFilters, " AND "))
	}

	query += fmt.Sprintf(
		" ORDER BY (object #> ($%d)::text[]) %s, doc_id NULLS LAST LIMIT $%d OFFSET $%d",
		sortPH, sortOrder, limitPH, offsetPH,
	)

	if err := validateGeneratedSQL(query); err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	return &CompiledQuery{
		SQL:       query,
		JSONPath:  jsonPath,
		Bindings:  bindings,
		SortField: sortField,
		SortOrder: sortOrder,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
