package services

import (
	"errors"
	"fmt"

	"karukotha/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Products with fewer than this many units count as low stock on the
// dashboard.
const lowStockThreshold = 5

// ProductCreate is the payload for creating a product.
type ProductCreate struct {
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	Price          float64           `json:"price" validate:"required,gt=0"`
	CategoryIDs    []uint            `json:"category_ids"`
	Stock          int               `json:"stock" validate:"gte=0"`
	SKU            string            `json:"sku" validate:"required"`
	Brand          string            `json:"brand"`
	OriginalPrice  *float64          `json:"original_price" validate:"omitempty,gt=0"`
	InStock        *bool             `json:"in_stock"`
	Images         []string          `json:"images"`
	Tags           []string          `json:"tags"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Shipping       map[string]string `json:"shipping"`
}

// ProductUpdate is a partial patch: nil fields keep their prior values.
// A non-nil CategoryIDs (even empty) replaces the linked category set.
type ProductUpdate struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *float64           `json:"price" validate:"omitempty,gt=0"`
	CategoryIDs    *[]uint            `json:"category_ids"`
	Stock          *int               `json:"stock" validate:"omitempty,gte=0"`
	SKU            *string            `json:"sku"`
	Brand          *string            `json:"brand"`
	OriginalPrice  *float64           `json:"original_price" validate:"omitempty,gt=0"`
	InStock        *bool              `json:"in_stock"`
	Images         *[]string          `json:"images"`
	Tags           *[]string          `json:"tags"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
	Shipping       *map[string]string `json:"shipping"`
}

// DashboardStats is the admin dashboard summary. There is no order model,
// so revenue and order counts stay at zero.
type DashboardStats struct {
	TotalProducts    int64   `json:"total_products"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalOrders      int64   `json:"total_orders"`
	LowStockProducts int64   `json:"low_stock_products"`
}

type ProductService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewProductService(gdb *gorm.DB) *ProductService {
	return &ProductService{db: gdb, validate: newValidator()}
}

// List returns all products, or only those linked to the given category.
func (s *ProductService) List(categoryID *uint) ([]models.Product, error) {
	query := s.db.Preload("Categories")
	if categoryID != nil {
		query = query.
			Joins("JOIN product_categories ON product_categories.product_id = products.id").
			Where("product_categories.category_id = ?", *categoryID)
	}
	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Categories").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Product")
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(input ProductCreate) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	product := models.Product{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Stock:          input.Stock,
		Images:         orEmpty(input.Images),
		SKU:            input.SKU,
		Brand:          input.Brand,
		Tags:           orEmpty(input.Tags),
		OriginalPrice:  input.OriginalPrice,
		InStock:        inStock,
		Features:       orEmpty(input.Features),
		Specifications: orEmptyMap(input.Specifications),
		Shipping:       orEmptyMap(input.Shipping),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := skuAvailable(tx, input.SKU, 0); err != nil {
			return err
		}
		categories, err := resolveCategories(tx, input.CategoryIDs)
		if err != nil {
			return err
		}
		product.Categories = categories
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(id uint, input ProductUpdate) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Product")
			}
			return err
		}

		if input.SKU != nil && *input.SKU != product.SKU {
			if err := skuAvailable(tx, *input.SKU, product.ID); err != nil {
				return err
			}
			product.SKU = *input.SKU
		}
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = input.OriginalPrice
		}
		if input.InStock != nil {
			product.InStock = *input.InStock
		}
		if input.Images != nil {
			product.Images = orEmpty(*input.Images)
		}
		if input.Tags != nil {
			product.Tags = orEmpty(*input.Tags)
		}
		if input.Features != nil {
			product.Features = orEmpty(*input.Features)
		}
		if input.Specifications != nil {
			product.Specifications = orEmptyMap(*input.Specifications)
		}
		if input.Shipping != nil {
			product.Shipping = orEmptyMap(*input.Shipping)
		}

		if err := tx.Omit(clause.Associations).Save(&product).Error; err != nil {
			return err
		}

		if input.CategoryIDs != nil {
			categories, err := resolveCategories(tx, *input.CategoryIDs)
			if err != nil {
				return err
			}
			assoc := tx.Model(&product).Association("Categories")
			if len(categories) == 0 {
				if err := assoc.Clear(); err != nil {
					return err
				}
			} else if err := assoc.Replace(&categories); err != nil {
				return err
			}
		}
		return tx.Preload("Categories").First(&product, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product together with its category links and reviews
// so no orphan rows remain.
func (s *ProductService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Product")
			}
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

// Search matches products by name, SKU or description.
func (s *ProductService) Search(q string) ([]models.Product, error) {
	pattern := "%" + q + "%"
	products := []models.Product{}
	err := s.db.Preload("Categories").
		Where("name LIKE ? OR sku LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Stats() (*DashboardStats, error) {
	stats := DashboardStats{}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&models.Product{}).
		Where("stock < ?", lowStockThreshold).
		Count(&stats.LowStockProducts).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// skuAvailable returns a ConflictError when another product already owns
// the SKU. excludeID skips the product being updated.
func skuAvailable(tx *gorm.DB, sku string, excludeID uint) error {
	var existing models.Product
	err := tx.Where("sku = ? AND id != ?", sku, excludeID).First(&existing).Error
	if err == nil {
		return conflict("SKU already exists")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// resolveCategories loads the categories for the given ids and rejects the
// request when any id does not exist.
func resolveCategories(tx *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var categories []models.Category
	if err := tx.Where("id IN ?", unique).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(unique) {
		for _, category := range categories {
			delete(seen, category.ID)
		}
		missing := make([]uint, 0, len(seen))
		for _, id := range unique {
			if seen[id] {
				missing = append(missing, id)
			}
		}
		return nil, invalid("Unknown category ids: %s", formatIDs(missing))
	}
	return categories, nil
}

func formatIDs(ids []uint) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(id)
	}
	return out
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func orEmptyMap(values map[string]string) map[string]string {
	if values == nil {
		return map[string]string{}
	}
	return values
}
