package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mcastros/clothing_store/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return &GormRepo{DB: db}
}

func TestCreateProductIfNotExists_DuplicateKey(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	first := models.Product{
		Name:        "Winter Jacket",
		Description: "A warm jacket",
		Category:    "Outerwear",
		Price:       59.9,
	}
	require.NoError(t, r.CreateProductIfNotExists(ctx, &first))
	require.NotZero(t, first.ID)

	dup := models.Product{
		Name:        "Winter Jacket",
		Description: "A different description",
		Category:    "Outerwear",
		Price:       49.9,
	}
	err := r.CreateProductIfNotExists(ctx, &dup)
	assert.ErrorIs(t, err, ErrProductAlreadyExist)

	var count int64
	require.NoError(t, r.DB.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateProductIfNotExists_SameNameOtherCategory(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	first := models.Product{Name: "Classic", Description: "A shirt", Category: "Shirts", Price: 19.9}
	require.NoError(t, r.CreateProductIfNotExists(ctx, &first))

	other := models.Product{Name: "Classic", Description: "A shoe", Category: "Shoes", Price: 39.9}
	require.NoError(t, r.CreateProductIfNotExists(ctx, &other))
}

func TestCreateUserIfNotExists_DuplicateKey(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUserIfNotExists(ctx, &models.User{
		Username:     "alice",
		PasswordHash: "hash-1",
		Role:         "user",
	}))

	err := r.CreateUserIfNotExists(ctx, &models.User{
		Username:     "alice",
		PasswordHash: "hash-2",
		Role:         "admin",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExist)
}
