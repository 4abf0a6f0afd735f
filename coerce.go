package docsearch

import "github.com/jackc/pgx/v5/pgtype"

// coerceText wraps a bound text value in pgtype.Text, the pgx wire type,
// the same way the teacher's converter registry wrapped a Go bool in
// pgtype.Bool before it ever reached the driver.
func coerceText(v interface{}) pgtype.Text {
	s, ok := v.(string)
	if !ok {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// coerceBool wraps a bound boolean value in pgtype.Bool.
func coerceBool(v interface{}) pgtype.Bool {
	b, ok := v.(bool)
	if !ok {
		return pgtype.Bool{Valid: false}
	}
	return pgtype.Bool{Bool: b, Valid: true}
}
