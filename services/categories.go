package services

import (
	"errors"

	"karukotha/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type CategoryCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	ParentID    *uint  `json:"parent_id"`
}

type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	ParentID    *uint   `json:"parent_id"`
}

type CategoryService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb, validate: newValidator()}
}

func (s *CategoryService) List() ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Category")
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(input CategoryCreate) (*models.Category, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Slug:        input.Slug,
		ParentID:    input.ParentID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := nameAvailable(tx, input.Name, 0); err != nil {
			return err
		}
		if input.ParentID != nil {
			if err := parentExists(tx, *input.ParentID); err != nil {
				return err
			}
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(id uint, input CategoryUpdate) (*models.Category, error) {
	var category models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Category")
			}
			return err
		}

		if input.Name != nil && *input.Name != category.Name {
			if err := nameAvailable(tx, *input.Name, category.ID); err != nil {
				return err
			}
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
		if input.Slug != nil {
			category.Slug = *input.Slug
		}
		if input.ParentID != nil {
			if *input.ParentID == category.ID {
				return invalid("Category cannot be its own parent")
			}
			if err := parentExists(tx, *input.ParentID); err != nil {
				return err
			}
			category.ParentID = input.ParentID
		}
		return tx.Save(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes the category and its product links. Categories with
// children are not deleted; callers must move or delete the children first.
func (s *CategoryService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Category")
			}
			return err
		}

		var children int64
		if err := tx.Model(&models.Category{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return conflict("Category has child categories")
		}

		if err := tx.Where("category_id = ?", id).Delete(&models.ProductCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func nameAvailable(tx *gorm.DB, name string, excludeID uint) error {
	var existing models.Category
	err := tx.Where("name = ? AND id != ?", name, excludeID).First(&existing).Error
	if err == nil {
		return conflict("Category name already exists")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func parentExists(tx *gorm.DB, parentID uint) error {
	var parent models.Category
	err := tx.First(&parent, parentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid("Parent category not found")
	}
	return err
}
