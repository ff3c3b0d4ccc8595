package services

import (
	"errors"

	"karukotha/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const defaultReviewAuthor = "Anonymous"

type ReviewCreate struct {
	Author   string `json:"author"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required"`
	Verified bool   `json:"verified"`
}

type ReviewService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewReviewService(gdb *gorm.DB) *ReviewService {
	return &ReviewService{db: gdb, validate: newValidator()}
}

func (s *ReviewService) ListForProduct(productID uint) ([]models.Review, error) {
	if err := s.productExists(productID); err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := s.db.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) Create(productID uint, input ReviewCreate) (*models.Review, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	if err := s.productExists(productID); err != nil {
		return nil, err
	}

	author := input.Author
	if author == "" {
		author = defaultReviewAuthor
	}
	review := models.Review{
		ProductID: productID,
		Author:    author,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Verified:  input.Verified,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) Delete(id uint) error {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Review")
		}
		return err
	}
	return s.db.Delete(&review).Error
}

func (s *ReviewService) productExists(productID uint) error {
	var product models.Product
	err := s.db.First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("Product")
	}
	return err
}
