package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcastros/clothing_store/internal/logging"
	"github.com/mcastros/clothing_store/internal/service"
	"github.com/mcastros/clothing_store/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.register")

	var req transport.RegisterProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_product_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Register(ctx, req)
	if err != nil {
		return httpError(err)
	}

	l.Info("register_product_successful", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, transport.MessageResponse{
		Message: "Product registered successfully.",
	})
}

func (h *ProductHTTP) ByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.by_category")

	products, err := h.Svc.ByCategory(ctx, c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}

	l.Info("get_products_successful", "count", len(products))
	return c.JSON(http.StatusOK, transport.ProductsResponse{
		Message:  "Products successfully obtained!",
		Products: products,
	})
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Update(ctx, req)
	if err != nil {
		return httpError(err)
	}

	l.Info("update_product_successful", "product_id", prod.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: fmt.Sprintf("Product %d updated successfully.", prod.ID),
	})
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	var req transport.DeleteProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("delete_product_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Delete(ctx, req.ProductID); err != nil {
		return httpError(err)
	}

	l.Info("delete_product_successful", "product_id", req.ProductID)
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: fmt.Sprintf("Product %d deleted successfully.", req.ProductID),
	})
}

func (h *ProductHTTP) TopByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.top_by_category")

	grouped, err := h.Svc.TopByCategory(ctx)
	if err != nil {
		return httpError(err)
	}

	l.Info("top_by_category_successful", "categories", len(grouped))
	return c.JSON(http.StatusOK, transport.GroupedProductsResponse{
		Message:  "Products grouped by category fetched successfully.",
		Products: grouped,
	})
}
