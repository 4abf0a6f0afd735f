// Package docsearch compiles flat, URL-style query parameters into
// parameterized Postgres queries over a JSON-document table.
//
// A table holds one document per row in a jsonb column named object. A
// Schema describes which logical fields of that document are searchable and
// how: as a numeric range, a tag alias, a nested object, or a full-text
// target. Compile walks a ParamMap against a Schema and produces a
// CompiledQuery: a SQL template built around a single
// object @@ CAST($1 AS JSONPATH) predicate, plus whatever full-text
// predicates the schema's Fulltext fields contributed, plus sort and
// pagination placeholders.
//
// Execute runs a CompiledQuery against a *sql.DB, *pgx.Conn, or
// *pgxpool.Pool and scans each row's object column back into a Document.
// Transform then applies any egress conversions the schema declares, such as
// rendering a stored epoch timestamp as an RFC-3339 string.
//
// Example:
//
//	schema, err := docsearch.LoadSchema(schemaFile)
//	if err != nil {
//	    // handle error
//	}
//
//	query, err := docsearch.Compile(schema, docsearch.ParamMap{
//	    "season_min": "3",
//	    "season_max": "7",
//	    "sortby":     "release_date",
//	})
//	if err != nil {
//	    // handle error
//	}
//
//	docs, err := docsearch.Execute(ctx, pool, query)
//	if err != nil {
//	    // handle error
//	}
//	for _, doc := range docs {
//	    docsearch.Transform(schema, doc)
//	}
package docsearch
