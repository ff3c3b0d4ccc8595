package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRatingBounds(t *testing.T) {
	gdb := newTestDB(t)
	products := NewProductService(gdb)
	svc := NewReviewService(gdb)

	lamp, err := products.Create(ProductCreate{Name: "Lamp", Price: 100, SKU: "X-1"})
	require.NoError(t, err)

	low, err := svc.Create(lamp.ID, ReviewCreate{Author: "Ahmed", Rating: 1, Comment: "Not for me"})
	require.NoError(t, err)
	assert.Equal(t, 1, low.Rating)

	high, err := svc.Create(lamp.ID, ReviewCreate{Author: "Nadia", Rating: 5, Comment: "Stunning"})
	require.NoError(t, err)
	assert.Equal(t, 5, high.Rating)
	assert.False(t, high.CreatedAt.IsZero())

	var validationErr *ValidationError
	_, err = svc.Create(lamp.ID, ReviewCreate{Rating: 6, Comment: "Too good"})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "rating")

	_, err = svc.Create(lamp.ID, ReviewCreate{Rating: 0, Comment: "Missing"})
	require.ErrorAs(t, err, &validationErr)
}

func TestReviewDefaults(t *testing.T) {
	gdb := newTestDB(t)
	products := NewProductService(gdb)
	svc := NewReviewService(gdb)

	lamp, err := products.Create(ProductCreate{Name: "Lamp", Price: 100, SKU: "X-1"})
	require.NoError(t, err)

	review, err := svc.Create(lamp.ID, ReviewCreate{Rating: 4, Comment: "Nice"})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", review.Author)
	assert.False(t, review.Verified)
}

func TestReviewProductMustExist(t *testing.T) {
	svc := NewReviewService(newTestDB(t))

	var notFoundErr *NotFoundError
	_, err := svc.Create(42, ReviewCreate{Rating: 4, Comment: "Nice"})
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Product not found", err.Error())

	_, err = svc.ListForProduct(42)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestReviewListAndDelete(t *testing.T) {
	gdb := newTestDB(t)
	products := NewProductService(gdb)
	svc := NewReviewService(gdb)

	lamp, err := products.Create(ProductCreate{Name: "Lamp", Price: 100, SKU: "X-1"})
	require.NoError(t, err)
	clock, err := products.Create(ProductCreate{Name: "Clock", Price: 200, SKU: "X-2"})
	require.NoError(t, err)

	first, err := svc.Create(lamp.ID, ReviewCreate{Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	_, err = svc.Create(clock.ID, ReviewCreate{Rating: 3, Comment: "Fine"})
	require.NoError(t, err)

	reviews, err := svc.ListForProduct(lamp.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, first.ID, reviews[0].ID)

	require.NoError(t, svc.Delete(first.ID))

	reviews, err = svc.ListForProduct(lamp.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	var notFoundErr *NotFoundError
	err = svc.Delete(first.ID)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Review not found", err.Error())
}
