package docsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func transformSchema() *Schema {
	return &Schema{
		Table:          "episodes",
		DefaultOrderBy: "aired_at",
		Fields: map[string]Field{
			"aired_at": {
				Name:      "aired_at",
				Converter: &Converter{From: DateTimeString, To: Timestamp},
				Query:     FieldQuery{Kind: KindNumericTag},
			},
			"created_at": {
				Name:      "created_at",
				Converter: &Converter{From: DateTimeString, To: TimestampMillis},
				Query:     FieldQuery{Kind: KindNumericTag},
			},
			"title": {
				Name:  "title",
				Query: FieldQuery{Kind: KindFulltext},
			},
		},
	}
}

func TestTransform_TimestampSeconds(t *testing.T) {
	schema := transformSchema()
	doc := Document{"aired_at": float64(1700000000)}
	Transform(schema, doc)
	assert.Equal(t, "2023-11-14T22:13:20.000Z", doc["aired_at"])
}

func TestTransform_TimestampMillis(t *testing.T) {
	schema := transformSchema()
	doc := Document{"created_at": float64(1700000000123)}
	Transform(schema, doc)
	assert.Equal(t, "2023-11-14T22:13:20.123Z", doc["created_at"])
}

func TestTransform_FieldWithoutConverterUntouched(t *testing.T) {
	schema := transformSchema()
	doc := Document{"title": "a ghost story"}
	Transform(schema, doc)
	assert.Equal(t, "a ghost story", doc["title"])
}

func TestTransform_MissingFieldIsNoOp(t *testing.T) {
	schema := transformSchema()
	doc := Document{"title": "present"}
	result := Transform(schema, doc)
	assert.Equal(t, doc, result)
	_, ok := doc["aired_at"]
	assert.False(t, ok)
}

func TestTransform_NonNumericValuePassedThroughUnchanged(t *testing.T) {
	schema := transformSchema()
	doc := Document{"aired_at": "not-a-number"}
	Transform(schema, doc)
	assert.Equal(t, "not-a-number", doc["aired_at"])
}
