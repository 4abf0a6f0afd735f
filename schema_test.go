package docsearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchemaYAML = `
table: episodes
default_order_by: aired_at
fields:
  season:
    query:
      type: range
      min: season_min
      max: season_max
  cast:
    query:
      type: nested
  aired_at:
    converter: { from: date_time_string, to: timestamp }
    query:
      type: numeric_tag
`

func TestLoadSchema_Valid(t *testing.T) {
	schema, err := LoadSchema(strings.NewReader(sampleSchemaYAML))
	require.NoError(t, err)
	assert.Equal(t, "episodes", schema.Table)
	assert.Equal(t, "aired_at", schema.DefaultOrderBy)
	assert.Len(t, schema.Fields, 3)
}

func TestLoadSchema_RejectsUnknownFields(t *testing.T) {
	_, err := LoadSchema(strings.NewReader(sampleSchemaYAML + "\nbogus: true\n"))
	assert.Error(t, err)
}

func TestLoadSchema_RequiresDefaultOrderBy(t *testing.T) {
	_, err := LoadSchema(strings.NewReader("table: episodes\nfields: {}\n"))
	assert.Error(t, err)
}

func TestLoadSchema_RejectsBadTableIdentifier(t *testing.T) {
	_, err := LoadSchema(strings.NewReader("table: \"bad; drop table x\"\ndefault_order_by: x\nfields: {}\n"))
	assert.Error(t, err)
}

func TestSchema_Lookup_ExactMatch(t *testing.T) {
	schema, err := LoadSchema(strings.NewReader(sampleSchemaYAML))
	require.NoError(t, err)

	name, fq, ok := schema.Lookup("season")
	require.True(t, ok)
	assert.Equal(t, "season", name)
	assert.Equal(t, KindRange, fq.Kind)
}

func TestSchema_Lookup_RangeAlias(t *testing.T) {
	schema, err := LoadSchema(strings.NewReader(sampleSchemaYAML))
	require.NoError(t, err)

	_, fq, ok := schema.Lookup("season_min")
	require.True(t, ok)
	assert.Equal(t, KindMin, fq.Kind)

	_, fq, ok = schema.Lookup("season_max")
	require.True(t, ok)
	assert.Equal(t, KindMax, fq.Kind)
}

func TestSchema_Lookup_NestedFirstSegment(t *testing.T) {
	schema, err := LoadSchema(strings.NewReader(sampleSchemaYAML))
	require.NoError(t, err)

	_, fq, ok := schema.Lookup("cast.name")
	require.True(t, ok)
	assert.Equal(t, KindNested, fq.Kind)
}

func TestSchema_Lookup_Unresolved(t *testing.T) {
	schema, err := LoadSchema(strings.NewReader(sampleSchemaYAML))
	require.NoError(t, err)

	_, _, ok := schema.Lookup("does_not_exist")
	assert.False(t, ok)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	schema, err := LoadSchema(strings.NewReader(sampleSchemaYAML))
	require.NoError(t, err)

	registry := NewRegistry()
	registry.Register(schema)

	got, ok := registry.Get("episodes")
	require.True(t, ok)
	assert.Same(t, schema, got)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}
