package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestKeywordFindsCloseTypo(t *testing.T) {
	assert.Equal(t, "Function", SuggestKeyword("Funtion"))
	assert.Equal(t, "Property", SuggestKeyword("Propery"))
}

func TestSuggestKeywordRejectsFarMiss(t *testing.T) {
	assert.Equal(t, "", SuggestKeyword("ZzzzzzNotAKeywordAtAll"))
}

func TestSuggestKeywordRejectsEmpty(t *testing.T) {
	assert.Equal(t, "", SuggestKeyword(""))
	assert.Equal(t, "", SuggestKeyword("   "))
}
