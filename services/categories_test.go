package services

import (
	"testing"

	"karukotha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateDuplicateName(t *testing.T) {
	svc := NewCategoryService(newTestDB(t))

	_, err := svc.Create(CategoryCreate{Name: "Lighting"})
	require.NoError(t, err)

	_, err = svc.Create(CategoryCreate{Name: "Lighting"})
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Category name already exists", err.Error())
}

func TestCategoryParentValidation(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCategoryService(gdb)

	parent, err := svc.Create(CategoryCreate{Name: "Decor"})
	require.NoError(t, err)

	child, err := svc.Create(CategoryCreate{Name: "Mirrors", ParentID: &parent.ID})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	missing := uint(99)
	_, err = svc.Create(CategoryCreate{Name: "Frames", ParentID: &missing})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.Update(parent.ID, CategoryUpdate{ParentID: &parent.ID})
	require.ErrorAs(t, err, &validationErr)
}

func TestCategoryUpdatePartial(t *testing.T) {
	svc := NewCategoryService(newTestDB(t))

	created, err := svc.Create(CategoryCreate{Name: "Decor", Description: "Home decor", Slug: "decor"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, CategoryUpdate{Description: strPtr("Traditional decor")})
	require.NoError(t, err)
	assert.Equal(t, "Decor", updated.Name)
	assert.Equal(t, "decor", updated.Slug)
	assert.Equal(t, "Traditional decor", updated.Description)
}

func TestCategoryDeleteWithChildrenBlocked(t *testing.T) {
	svc := NewCategoryService(newTestDB(t))

	parent, err := svc.Create(CategoryCreate{Name: "Decor"})
	require.NoError(t, err)
	child, err := svc.Create(CategoryCreate{Name: "Mirrors", ParentID: &parent.ID})
	require.NoError(t, err)

	err = svc.Delete(parent.ID)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)

	require.NoError(t, svc.Delete(child.ID))
	require.NoError(t, svc.Delete(parent.ID))
}

// Mirrors the storefront flow: a product keeps working after its only
// category is deleted.
func TestCategoryDeleteUnlinksProducts(t *testing.T) {
	gdb := newTestDB(t)
	categories := NewCategoryService(gdb)
	products := NewProductService(gdb)

	lighting, err := categories.Create(CategoryCreate{Name: "Lighting"})
	require.NoError(t, err)

	lamp, err := products.Create(ProductCreate{
		Name:        "Lamp",
		Price:       100,
		SKU:         "X-1",
		CategoryIDs: []uint{lighting.ID},
	})
	require.NoError(t, err)

	got, err := products.Get(lamp.ID)
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Lighting", got.Categories[0].Name)

	require.NoError(t, categories.Delete(lighting.ID))

	got, err = products.Get(lamp.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Categories)

	var links int64
	require.NoError(t, gdb.Model(&models.ProductCategory{}).Count(&links).Error)
	assert.EqualValues(t, 0, links)
}

func TestCategoryGetMissing(t *testing.T) {
	svc := NewCategoryService(newTestDB(t))

	_, err := svc.Get(7)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Category not found", err.Error())
}
