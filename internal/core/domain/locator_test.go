package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exsd/internal/core/domain"
)

func TestParseLocator(t *testing.T) {
	loc, err := domain.ParseLocator("schema://org.eclipse.core.expressions/schema/expressionLanguage.exsd")
	require.NoError(t, err)
	assert.Equal(t, "org.eclipse.core.expressions", loc.Bundle)
	assert.Equal(t, "schema/expressionLanguage.exsd", loc.Path)
	assert.Equal(t, "schema://org.eclipse.core.expressions/schema/expressionLanguage.exsd", loc.String())
}

func TestParseLocator_Invalid(t *testing.T) {
	for _, location := range []string{
		"",
		"org.example/schema/a.exsd",
		"schema://",
		"schema://org.example",
		"schema://org.example/",
		"schema:///schema/a.exsd",
		"platform:/plugin/org.example/schema/a.exsd",
	} {
		t.Run(location, func(t *testing.T) {
			_, err := domain.ParseLocator(location)
			require.Error(t, err)
			require.ErrorContains(t, err, domain.ErrInvalidLocator.Error())
		})
	}
}
