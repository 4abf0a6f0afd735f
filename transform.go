package docsearch

import "time"

// dateTimeLayout is RFC-3339 with millisecond fractional precision, UTC,
// per SPEC_FULL.md §4.3.
const dateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Transform applies every (field, Converter) pair declared in schema to raw,
// mutating it in place and returning it for chaining. Transformation is
// independent across fields and across documents: callers may run Transform
// over a batch of documents concurrently.
//
// CommaSeparatedString/SemicolonSeparatedString sources and the TagArray
// target are declared in the schema vocabulary but never actioned — they
// pass through unchanged, reserved for future use (SPEC_FULL.md §9).
func Transform(schema *Schema, raw Document) Document {
	for name, field := range schema.Fields {
		if field.Converter == nil {
			continue
		}
		value, present := raw[name]
		if !present {
			continue
		}

		switch {
		case field.Converter.From == DateTimeString && field.Converter.To == Timestamp:
			if secs, ok := toInt64(value); ok {
				raw[name] = time.Unix(secs, 0).UTC().Format(dateTimeLayout)
			}
		case field.Converter.From == DateTimeString && field.Converter.To == TimestampMillis:
			if millis, ok := toInt64(value); ok {
				raw[name] = time.UnixMilli(millis).UTC().Format(dateTimeLayout)
			}
		}
	}
	return raw
}

// toInt64 accepts the handful of numeric representations a JSON decoder may
// have produced for an integer document field (float64 from encoding/json,
// or a native int64 if the row was scanned directly).
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	default:
		return 0, false
	}
}
