package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeconv/internal/domain"
)

func TestFilterByNameKeepsDiscoveryOrder(t *testing.T) {
	themes := []domain.ThemeDescriptor{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	got := filterByName(themes, []string{"c", "a", "missing"})

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
}

func TestThemeOptionsPreselected(t *testing.T) {
	themes := []domain.ThemeDescriptor{{Name: "nord", SourceDir: "/src/nord"}}

	options := themeOptions(themes)

	require.Len(t, options, 1)
	assert.Equal(t, "nord", options[0].Value)
	assert.Equal(t, "nord  (/src/nord)", options[0].Key)
}

func TestSelectEmpty(t *testing.T) {
	got, err := NewHuhSelector(true).Select(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
