package moods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, "v1", catalog.SchemaVersion)
	assert.NotEmpty(t, catalog.Moods)
	assert.True(t, catalog.Contains("Happy"))
	assert.True(t, catalog.Contains("Sad"))
	assert.False(t, catalog.Contains("Bogus"))
	assert.False(t, catalog.Contains("happy"), "labels are case-sensitive")
}
