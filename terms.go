package docsearch

import (
	"fmt"
	"strconv"
	"strings"
)

// tokenizeTerms splits a parameter value on "_" into its terms and the
// joiners between them, per SPEC_FULL.md §4.2's mini-language: even
// positions (0, 2, 4, …) are terms, odd positions are joiners. A trailing
// joiner with no following term is dropped rather than terminating with a
// dangling operator.
func tokenizeTerms(value string) (terms []string, joiners []string) {
	parts := strings.Split(value, "_")
	for i, part := range parts {
		if i%2 == 0 {
			terms = append(terms, part)
			continue
		}
		if i+1 < len(parts) {
			joiners = append(joiners, part)
		}
	}
	return terms, joiners
}

// joinerSymbol maps a raw joiner token to its path-language operator. A
// joiner that is neither "and" nor "or" contributes no operator; the
// adjacent terms are simply placed next to each other.
func joinerSymbol(joiner string) string {
	switch joiner {
	case "and":
		return "&&"
	case "or":
		return "||"
	default:
		return ""
	}
}

// compileTermList tokenizes value and compiles each term against kind,
// folding the resulting fragments with the joiner operators (testable
// property 4, operator fold). The fold is NOT itself wrapped in an extra
// pair of parentheses: Compile wraps the join of every parameter's fold
// exactly once when it assembles the final json_path (SPEC_FULL.md §4.2).
func compileTermList(param, field string, kind FieldQueryKind, aliases map[string]int, value string) (string, error) {
	terms, joiners := tokenizeTerms(value)

	var b strings.Builder
	for i, term := range terms {
		fragment, err := compileTerm(param, field, kind, aliases, term)
		if err != nil {
			return "", err
		}
		if i > 0 {
			if sym := joinerSymbol(joiners[i-1]); sym != "" {
				b.WriteByte(' ')
				b.WriteString(sym)
			}
			b.WriteByte(' ')
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}

// compileTerm compiles a single raw term against the given field kind,
// returning the JSON-path fragment to splice into the enclosing filter.
func compileTerm(param, field string, kind FieldQueryKind, aliases map[string]int, term string) (string, error) {
	if kind != KindFulltext {
		switch term {
		case "exists":
			return fmt.Sprintf("(exists($.%s))", field), nil
		case "notexists":
			return fmt.Sprintf("(!exists($.%s))", field), nil
		}
	}

	switch kind {
	case KindRange:
		if n, ok := lookupAlias(aliases, term); ok {
			return fmt.Sprintf("($.%s == %d)", field, n), nil
		}
		n, err := strconv.Atoi(term)
		if err != nil {
			return "", &InvalidNumberError{Param: param, Term: term}
		}
		return fmt.Sprintf("($.%s == %d)", field, n), nil

	case KindMin:
		n, err := strconv.Atoi(term)
		if err != nil {
			return "", &InvalidNumberError{Param: param, Term: term}
		}
		return fmt.Sprintf("($.%s > %d)", field, n), nil

	case KindMax:
		n, err := strconv.Atoi(term)
		if err != nil {
			return "", &InvalidNumberError{Param: param, Term: term}
		}
		return fmt.Sprintf("($.%s < %d)", field, n), nil

	case KindBool:
		v, err := strconv.ParseBool(term)
		if err != nil {
			return "", &InvalidBoolError{Param: param, Term: term}
		}
		return fmt.Sprintf("($.%s == %t)", field, v), nil

	case KindNumericTag:
		if n, ok := lookupAlias(aliases, term); ok {
			return fmt.Sprintf("(($.%s == %d) || ($.%s == \"%d\"))", field, n, field, n), nil
		}
		n, err := strconv.Atoi(term)
		if err != nil {
			return "", &InvalidNumberError{Param: param, Term: term}
		}
		return fmt.Sprintf("(($.%s == %d) || ($.%s == \"%d\"))", field, n, field, n), nil

	case KindStringTag:
		if err := validateSafeTerm(param, term); err != nil {
			return "", err
		}
		return fmt.Sprintf("($.%s == \"%s\")", field, term), nil

	case KindAmbiguousTag, KindNested:
		return compileAmbiguousTerm(param, field, term)

	default:
		return "", fmt.Errorf("field %q: kind %q is not JSON-path addressable", field, kind)
	}
}

// compileAmbiguousTerm implements the AmbiguousTag/Nested rule: try an
// integer parse, then a boolean parse, always append the quoted string
// fragment, and fold every successful fragment with an explicit " || "
// between them (SPEC_FULL.md §4.2, resolving the historical source's
// occasionally-omitted operator).
func compileAmbiguousTerm(param, field, term string) (string, error) {
	var fragments []string

	if n, err := strconv.Atoi(term); err == nil {
		fragments = append(fragments, fmt.Sprintf("($.%s == %d)", field, n))
	}
	if v, err := strconv.ParseBool(term); err == nil {
		fragments = append(fragments, fmt.Sprintf("($.%s == %t)", field, v))
	}
	if err := validateSafeTerm(param, term); err != nil {
		return "", err
	}
	fragments = append(fragments, fmt.Sprintf("($.%s == \"%s\")", field, term))

	if len(fragments) == 1 {
		return fragments[0], nil
	}
	return "(" + strings.Join(fragments, " || ") + ")", nil
}

// lookupAlias looks up the uppercased term in the schema's alias map, the
// way Range and NumericTag resolve symbolic tokens like "FINAL" to an
// integer.
func lookupAlias(aliases map[string]int, term string) (int, bool) {
	if aliases == nil {
		return 0, false
	}
	n, ok := aliases[strings.ToUpper(term)]
	return n, ok
}
