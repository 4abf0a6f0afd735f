package docsearch

import (
	"fmt"
	"unicode"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// validateSafeTerm rejects a string term that would break out of its
// intended syntactic context when spliced into a JSON-path string literal.
// This is stricter than the historical source, which concatenated string
// terms into JSON-path literals unescaped; rejecting the double quote,
// backslash, and control characters closes that latent injection/parse
// failure risk.
func validateSafeTerm(param, term string) error {
	for _, r := range term {
		if r == '"' || r == '\\' || unicode.IsControl(r) {
			return &UnsafeTermError{Param: param, Term: term}
		}
	}
	return nil
}

// validateGeneratedSQL parses query with the real Postgres grammar and
// confirms it is a single SELECT statement. It is a defense-in-depth check
// on the compiler's own output, grounded in the teacher's safequery.go
// validateSQLSyntax: even though Compile only ever emits SQL it assembled
// itself from a fixed set of templates, this catches a template bug before
// the query ever reaches the database.
func validateGeneratedSQL(query string) error {
	result, err := pg_query.Parse(query)
	if err != nil {
		return fmt.Errorf("compiled sql failed to parse: %w", err)
	}

	if len(result.Stmts) != 1 {
		return fmt.Errorf("compiled sql must be exactly one statement, got %d", len(result.Stmts))
	}

	if result.Stmts[0].Stmt.GetSelectStmt() == nil {
		return fmt.Errorf("compiled sql must be a SELECT statement")
	}

	return nil
}
