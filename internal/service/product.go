package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mcastros/clothing_store/internal/logging"
	"github.com/mcastros/clothing_store/internal/models"
	"github.com/mcastros/clothing_store/internal/mykafka"
	"github.com/mcastros/clothing_store/internal/repo"
	"github.com/mcastros/clothing_store/internal/transport"
	"github.com/mcastros/clothing_store/internal/util"
)

// Top10PerCategory caps how many products the grouped listing returns
// for each category.
const Top10PerCategory = 10

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

func (s *ProductService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.ProductEventsTopic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", mykafka.ProductEventsTopic, "error", err)
	}
}

func (s *ProductService) Register(ctx context.Context, req transport.RegisterProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.register")

	prod := models.Product{
		Name:        util.Title(req.Name),
		Description: util.Capitalize(req.Description),
		Category:    util.Title(req.Category),
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}

	if prod.Name == "" || prod.Description == "" || prod.Category == "" || prod.ImageURL == "" {
		return nil, fmt.Errorf("%w: there are required fields that are empty", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", ErrValidation)
	}

	if err := s.Repo.CreateProductIfNotExists(ctx, &prod); err != nil {
		if errors.Is(err, repo.ErrProductAlreadyExist) {
			l.Warn("register_product_error", "reason", "product already exist", "name", prod.Name, "category", prod.Category)
			return nil, fmt.Errorf("%w: product with this name and category already exists", ErrConflict)
		}
		l.Error("register_product_error", "error", err)
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(prod.ID), map[string]any{
		"type":       "product_registered",
		"product_id": prod.ID,
		"product":    prod,
	})

	return &prod, nil
}

func (s *ProductService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category should be informed", ErrValidation)
	}

	return s.Repo.GetProductsByCategory(ctx, util.Title(category))
}

func (s *ProductService) Update(ctx context.Context, req transport.UpdateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.update", "product_id", req.ProductID)

	name := util.Title(req.Name)
	description := util.Capitalize(req.Description)
	category := util.Title(req.Category)

	if req.ProductID == 0 || name == "" || description == "" || category == "" || req.ImageURL == "" {
		return nil, fmt.Errorf("%w: there are required fields that are empty", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", ErrValidation)
	}

	prod, err := s.Repo.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_product_error", "reason", "product not found")
			return nil, fmt.Errorf("%w: product does not exist", ErrNotFound)
		}
		l.Error("update_product_error", "error", err)
		return nil, err
	}

	prod.Name = name
	prod.Description = description
	prod.Category = category
	prod.Price = req.Price
	prod.ImageURL = req.ImageURL

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		l.Error("update_product_error", "error", err)
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(prod.ID), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"product":    prod,
	})

	return prod, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "product.delete", "product_id", id)

	if id == 0 {
		return fmt.Errorf("%w: product id should be informed", ErrValidation)
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_product_error", "reason", "product not found")
			return fmt.Errorf("%w: product does not exist", ErrNotFound)
		}
		l.Error("delete_product_error", "error", err)
		return err
	}

	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})

	return nil
}

func (s *ProductService) TopByCategory(ctx context.Context) (map[string][]models.Product, error) {
	products, err := s.Repo.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.Product)
	for _, prod := range products {
		list := grouped[prod.Category]
		if len(list) < Top10PerCategory {
			grouped[prod.Category] = append(list, prod)
		}
	}

	return grouped, nil
}
