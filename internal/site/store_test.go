package site

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regenplastics/leads-platform/internal/sheets"
)

func TestStoreGetReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewStore(sheets.NewMemory(), "Site_Content", nil)

	content, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults["hero.title"], content["hero.title"])
	assert.Equal(t, len(Defaults), len(content))
}

func TestStoreUpdateOverridesDefault(t *testing.T) {
	ctx := context.Background()
	store := NewStore(sheets.NewMemory(), "Site_Content", nil)

	require.NoError(t, store.Update(ctx, "hero", "title", "New Headline"))

	content, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New Headline", content["hero.title"])
}

func TestStoreUpdateInPlace(t *testing.T) {
	ctx := context.Background()
	mem := sheets.NewMemory()
	store := NewStore(mem, "Site_Content", nil)

	require.NoError(t, store.Update(ctx, "hero", "title", "First"))
	require.NoError(t, store.Update(ctx, "hero", "title", "Second"))

	// Header plus exactly one content row: the second write replaced the
	// first instead of appending.
	rows := mem.Rows("Site_Content")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"hero.title", "Second"}, rows[1])
}

func TestStoreUpdateDottedKeyWithoutSection(t *testing.T) {
	ctx := context.Background()
	store := NewStore(sheets.NewMemory(), "Site_Content", nil)

	require.NoError(t, store.Update(ctx, "", "contact.email", "sales@regenplastics.com"))

	content, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sales@regenplastics.com", content["contact.email"])
}

func TestStoreUpdateRejectsEmptyKey(t *testing.T) {
	store := NewStore(sheets.NewMemory(), "Site_Content", nil)
	err := store.Update(context.Background(), "hero", "   ", "x")
	assert.ErrorIs(t, err, ErrBadKey)
}
