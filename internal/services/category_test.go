package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanh6502/quan-an-online/internal/errs"
	"github.com/ducanh6502/quan-an-online/internal/models"
	"github.com/ducanh6502/quan-an-online/internal/store"
)

func newCategoryService(t *testing.T) *CategoryService {
	t.Helper()
	categories, err := store.NewCollection[models.Category](t.TempDir(), "categories")
	require.NoError(t, err)
	return NewCategoryService(categories)
}

func TestCategoryCRUD(t *testing.T) {
	svc := newCategoryService(t)

	_, err := svc.Create("", "")
	assert.True(t, errs.IsValidation(err))

	cat, err := svc.Create("Món nước", "")
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)

	got, err := svc.FindByID(cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Món nước", got.Name)

	updated, err := svc.Update(cat.ID, "Món khô", "/uploads/a.png")
	require.NoError(t, err)
	assert.Equal(t, "Món khô", updated.Name)
	assert.Equal(t, "/uploads/a.png", updated.Image)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(cat.ID))
	assert.ErrorIs(t, svc.Delete(cat.ID), errs.ErrNotFound)
}
