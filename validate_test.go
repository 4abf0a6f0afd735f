package docsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSafeTerm_RejectsQuote(t *testing.T) {
	err := validateSafeTerm("tag", `horror"scary`)
	assert.Error(t, err)
	var unsafeErr *UnsafeTermError
	assert.ErrorAs(t, err, &unsafeErr)
}

func TestValidateSafeTerm_RejectsBackslash(t *testing.T) {
	err := validateSafeTerm("tag", `horror\scary`)
	assert.Error(t, err)
}

func TestValidateSafeTerm_RejectsControlCharacter(t *testing.T) {
	err := validateSafeTerm("tag", "horror\nscary")
	assert.Error(t, err)
}

func TestValidateSafeTerm_AllowsOrdinaryText(t *testing.T) {
	err := validateSafeTerm("tag", "horror-scifi 2")
	assert.NoError(t, err)
}
