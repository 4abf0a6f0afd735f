package docsearch

import (
	"net/url"
	"strings"
)

// Example demonstrates the request path from a URL query string to a
// CompiledQuery. It mirrors how an HTTP handler (out of scope for this
// package) would call through Compile; the Execute and Transform calls that
// follow are shown commented out, since they need a live database.
func Example() {
	schemaYAML := `
table: episodes
default_order_by: aired_at
fields:
  season:
    query:
      type: range
      min: season_min
      max: season_max
  aired_at:
    converter: { from: date_time_string, to: timestamp }
    query:
      type: numeric_tag
  title:
    query:
      type: fulltext
      lang: english
      syntax: web_search
`
	schema, err := LoadSchema(strings.NewReader(schemaYAML))
	if err != nil {
		// handle error
		return
	}

	query, err := url.ParseQuery("season_min=3&season_max=7&title=ghost%20story&sortby=aired_at")
	if err != nil {
		// handle error
		return
	}
	params := ParamsFromQuery(query)

	compiled, err := Compile(schema, params)
	if err != nil {
		// handle error
		return
	}

	// docs, err := Execute(context.Background(), pool, compiled)
	// if err != nil {
	//     // handle error
	// }
	// for _, doc := range docs {
	//     Transform(schema, doc)
	// }

	_ = compiled
}
