package docsearch

import "strconv"

// parseNonNegativeInt parses a control parameter as a non-negative integer,
// reporting which parameter failed when it doesn't.
func parseNonNegativeInt(param, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &InvalidNumberError{Param: param, Term: raw}
	}
	return n, nil
}

// normalizeLimit validates the raw "limit" control parameter, defaulting to
// DefaultLimit when absent. Adapted from the teacher's page-based
// ValidatePagination: this schema has no notion of pages, only a raw
// non-negative LIMIT/OFFSET pair, so there is no page-size cap to enforce,
// only the non-negative invariant from SPEC_FULL.md §3.
func normalizeLimit(raw string, present bool) (int, error) {
	if !present {
		return DefaultLimit, nil
	}
	return parseNonNegativeInt("limit", raw)
}

// normalizeOffset validates the raw "offset" control parameter, defaulting
// to DefaultOffset when absent.
func normalizeOffset(raw string, present bool) (int, error) {
	if !present {
		return DefaultOffset, nil
	}
	return parseNonNegativeInt("offset", raw)
}
