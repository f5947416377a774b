package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/punyakios/go-kios-client/internal/common/http"
	"github.com/punyakios/go-kios-client/internal/services"
)

type catalogHandler struct {
	catalogSvc services.CatalogService
	preloadSvc services.PreloadService
}

type categoryResponse struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
}

// New catalog handler will initialize the catalog/ resources endpoint
func New(app *echo.Group, catalogSvc services.CatalogService, preloadSvc services.PreloadService) {
	handler := catalogHandler{
		catalogSvc: catalogSvc,
		preloadSvc: preloadSvc,
	}
	api := app.Group("/catalog")
	api.GET("", handler.categories)
	api.GET("/providers", handler.allProviders)
	api.GET("/:category/providers", handler.providers)
	api.GET("/:category/providers/:provider/types", handler.productTypes)
	api.GET("/:category/providers/:provider/products", handler.products)
}

func (h *catalogHandler) categories(c echo.Context) error {
	categories := h.catalogSvc.Categories()
	res := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, categoryResponse{
			Kind:     "category",
			Name:     category.Name,
			Endpoint: category.Endpoint,
		})
	}
	return commonhttp.RestCollectionResponse(c, res)
}

// allProviders answers with whatever loaded, failed categories are only logged.
func (h *catalogHandler) allProviders(c echo.Context) error {
	providers, _ := h.preloadSvc.AllProviders(c.Request().Context())
	return commonhttp.RestCollectionResponse(c, providers)
}

func (h *catalogHandler) providers(c echo.Context) error {
	refresh, err := refreshParam(c)
	if err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	providers, err := h.catalogSvc.Providers(c.Request().Context(), c.Param("category"), refresh)
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}
	return commonhttp.RestCollectionResponse(c, providers)
}

func (h *catalogHandler) productTypes(c echo.Context) error {
	refresh, err := refreshParam(c)
	if err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	types, err := h.catalogSvc.ProductTypes(c.Request().Context(), c.Param("category"), c.Param("provider"), refresh)
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}
	return commonhttp.RestCollectionResponse(c, types)
}

func (h *catalogHandler) products(c echo.Context) error {
	refresh, err := refreshParam(c)
	if err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	products, err := h.catalogSvc.Products(c.Request().Context(), c.Param("category"), c.Param("provider"), c.QueryParam("type"), refresh)
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}
	return commonhttp.RestCollectionResponse(c, products)
}

func refreshParam(c echo.Context) (bool, error) {
	raw := c.QueryParam("refresh")
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
