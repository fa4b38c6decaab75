package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mcastros/clothing_store/internal/models"
	"github.com/mcastros/clothing_store/internal/mykafka"
	"github.com/mcastros/clothing_store/internal/repo"
	"github.com/mcastros/clothing_store/internal/service"
	"github.com/mcastros/clothing_store/internal/tokens"
)

type testEnv struct {
	E      *echo.Echo
	DB     *gorm.DB
	Users  *UserHTTP
	Prods  *ProductHTTP
	Tokens *tokens.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	m, err := tokens.NewManager([]byte("test-jwt-secret"), "HS256")
	require.NoError(t, err)

	gormRepo := &repo.GormRepo{DB: db}
	producer := mykafka.NewProducer(nil)

	return &testEnv{
		E:      echo.New(),
		DB:     db,
		Tokens: m,
		Users: &UserHTTP{
			Svc: &service.UserService{Repo: gormRepo, Tokens: m, Producer: producer},
		},
		Prods: &ProductHTTP{
			Svc: &service.ProductService{Repo: gormRepo, Producer: producer},
		},
	}
}

func (env *testEnv) doJSONRequest(method, path string, payload any) (*httptest.ResponseRecorder, echo.Context) {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)

	return rec, c
}
