package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/pkg/models"
	"schemaforge/pkg/storage"
)

func sampleState() models.FormState {
	return models.FormState{
		Selected: models.Selection{Article: true, Organization: true},
		Data: models.FormData{
			Article:      models.ArticleFields{Headline: "Hello", Author: "Jo"},
			Organization: models.OrganizationFields{Name: "Acme", URL: "https://acme.test"},
		},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemoryKV())

	saved, err := store.Save(ctx, "Acme", sampleState())
	require.NoError(t, err)
	assert.Equal(t, "Acme", saved.Name)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.Timestamp.IsZero())

	loaded, err := store.Load(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveTrimsAndRejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemoryKV())

	_, err := store.Save(ctx, "   ", sampleState())
	assert.ErrorIs(t, err, ErrEmptyName)

	saved, err := store.Save(ctx, "  Acme  ", sampleState())
	require.NoError(t, err)
	assert.Equal(t, "Acme", saved.Name)

	_, err = store.Load(ctx, "Acme")
	assert.NoError(t, err)
}

func TestSaveOverwritesKeepingID(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemoryKV())

	first, err := store.Save(ctx, "Acme", sampleState())
	require.NoError(t, err)

	updated := sampleState()
	updated.Data.Article.Headline = "Changed"
	second, err := store.Save(ctx, "Acme", updated)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Changed", second.Data.Article.Headline)

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, names)
}

func TestLoadNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemoryKV())

	_, err := store.Load(ctx, "Missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Load(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemoryKV())

	_, err := store.Save(ctx, "Acme", sampleState())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "Acme"))

	_, err = store.Load(ctx, "Acme")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "Acme"), ErrNotFound)
}

func TestListSorted(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemoryKV())

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := store.Save(ctx, name, sampleState())
		require.NoError(t, err)
	}

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}
