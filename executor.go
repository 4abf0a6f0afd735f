package docsearch

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the database/sql side of the executor contract.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// PgxQuerier is the pgx side of the executor contract. *pgx.Conn and
// *pgxpool.Pool both satisfy it.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// row is the shape scany scans each result row into: the compiled query's
// single column, a jsonb document named object (SPEC_FULL.md §6.3 — "the
// collaborator returns rows whose single column is a JSON document"). The
// table's doc_id primary key never leaves SQL; it is only ever referenced
// inside Compile's ORDER BY tiebreaker.
type row struct {
	Object Document `db:"object"`
}

// Execute runs a CompiledQuery against db and returns the matching documents
// in SQL's row order, already reflecting q.SortField/q.SortOrder. db must be
// a *sql.DB, *pgx.Conn, or *pgxpool.Pool; any other type is a programmer
// error and is reported as such rather than attempted.
//
// Execute does not apply Transform: a caller wanting egress conversions runs
// Transform over each returned Document itself, so that a caller reading raw
// storage values (a migration tool, say) can skip it.
func Execute(ctx context.Context, db interface{}, q *CompiledQuery) ([]Document, error) {
	args := bindingArgs(q.Bindings)

	var rows []row
	var err error
	switch conn := db.(type) {
	case *sql.DB:
		err = sqlscan.Select(ctx, conn, &rows, q.SQL, args...)
	case *pgx.Conn:
		err = pgxscan.Select(ctx, conn, &rows, q.SQL, args...)
	case *pgxpool.Pool:
		err = pgxscan.Select(ctx, conn, &rows, q.SQL, args...)
	default:
		return nil, &DatabaseError{Err: fmt.Errorf("unsupported database type: %T", db)}
	}
	if err != nil {
		logger.Errorw("execute query", "sql", q.SQL, "err", err)
		return nil, &DatabaseError{Err: err}
	}

	docs := make([]Document, len(rows))
	for i, r := range rows {
		docs[i] = r.Object
	}
	return docs, nil
}

// bindingArgs converts a CompiledQuery's tagged Bindings into the driver
// argument list, wrapping text and bool values in their pgtype form (via
// coerceText and coerceBool in coerce.go) before handing them to the
// driver. Integers pass through unwrapped; pgx's default type map handles
// plain Go ints natively.
func bindingArgs(bindings []Binding) []interface{} {
	args := make([]interface{}, len(bindings))
	for i, b := range bindings {
		switch b.Tag {
		case TagText:
			args[i] = coerceText(b.Value)
		case TagBool:
			args[i] = coerceBool(b.Value)
		default:
			args[i] = b.Value
		}
	}
	return args
}
