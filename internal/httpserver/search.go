package httpserver

import (
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/mcastros/clothing_store/internal/logging"
	"github.com/mcastros/clothing_store/internal/search"
	"github.com/mcastros/clothing_store/internal/transport"
	"github.com/mcastros/clothing_store/internal/util"
)

const defaultSearchSize = 20

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	if h.ES == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
	}

	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query should be informed")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	size := util.ParseIntDefault(c.QueryParam("size"), defaultSearchSize)
	if size < 1 || size > 100 {
		size = defaultSearchSize
	}
	from := (page - 1) * size

	total, items, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	l.Info("search_successful", "query", q, "total", total)
	return c.JSON(http.StatusOK, transport.SearchResponse{
		Data: items,
		Meta: transport.SearchMeta{Page: page, Size: size, Total: total},
	})
}
