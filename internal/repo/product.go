package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mcastros/clothing_store/internal/models"
)

var ErrProductAlreadyExist = errors.New("product already exist")

// CreateProductIfNotExists inserts the product and relies on the unique
// (name, category) index to reject duplicates, so two concurrent inserts
// of the same product cannot both succeed.
func (r *GormRepo) CreateProductIfNotExists(ctx context.Context, p *models.Product) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProductAlreadyExist
		}
		return err
	}
	return nil
}

func (r *GormRepo) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	items := []models.Product{}
	if err := r.DB.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	items := []models.Product{}
	if err := r.DB.WithContext(ctx).
		Order("category ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
