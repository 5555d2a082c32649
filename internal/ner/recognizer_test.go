package ner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	label, ok := normalizeLabel("PERSON")
	assert.True(t, ok)
	assert.Equal(t, LabelPerson, label)

	label, ok = normalizeLabel("ORG")
	assert.True(t, ok)
	assert.Equal(t, LabelOrganization, label)

	label, ok = normalizeLabel("GPE")
	assert.True(t, ok)
	assert.Equal(t, LabelOrganization, label)

	_, ok = normalizeLabel("MONEY")
	assert.False(t, ok)
}

func TestLoad_ReturnsSameInstance(t *testing.T) {
	first, firstErr := Load()
	second, secondErr := Load()

	assert.Equal(t, first, second)
	assert.Equal(t, firstErr, secondErr)
}
