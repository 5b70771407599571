// Package searchhdl - HTTP handler cho engine tìm kiếm & so sánh giá.
package searchhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/MHYAnate/sureshops-api/internal/api/base/handler"
	productmodels "github.com/MHYAnate/sureshops-api/internal/api/product/models"
	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
	searchsvc "github.com/MHYAnate/sureshops-api/internal/api/search/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
)

// SearchHandler là cấu trúc chứa các phương thức xử lý request tìm kiếm
type SearchHandler struct {
	basehdl.BaseHandler[productmodels.Product, searchdto.ProductSearchInput, searchdto.ProductSearchInput]
	SearchService *searchsvc.SearchService
}

// NewSearchHandler tạo mới SearchHandler
func NewSearchHandler() (*SearchHandler, error) {
	searchService, err := searchsvc.NewSearchService()
	if err != nil {
		return nil, err
	}
	return &SearchHandler{SearchService: searchService}, nil
}

// ============================================================================
// PARSE QUERY
// ============================================================================

func queryFloatPtr(c fiber.Ctx, key string) *float64 {
	raw := c.Query(key, "")
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func queryBoolPtr(c fiber.Ctx, key string) *bool {
	raw := c.Query(key, "")
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func queryFloat(c fiber.Ctx, key string) float64 {
	value, _ := strconv.ParseFloat(c.Query(key, "0"), 64)
	return value
}

func queryInt64(c fiber.Ctx, key string, fallback int64) int64 {
	value, err := strconv.ParseInt(c.Query(key, ""), 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func queryBool(c fiber.Ctx, key string) bool {
	value, _ := strconv.ParseBool(c.Query(key, "false"))
	return value
}

// parseProductSearchInput đọc toàn bộ filter sản phẩm từ query string.
func parseProductSearchInput(c fiber.Ctx) *searchdto.ProductSearchInput {
	return &searchdto.ProductSearchInput{
		Query:         c.Query("query", ""),
		Category:      c.Query("category", ""),
		Subcategory:   c.Query("subcategory", ""),
		Brand:         c.Query("brand", ""),
		MinPrice:      queryFloatPtr(c, "minPrice"),
		MaxPrice:      queryFloatPtr(c, "maxPrice"),
		StateID:       c.Query("stateId", ""),
		AreaID:        c.Query("areaId", ""),
		MarketID:      c.Query("marketId", ""),
		InStock:       queryBoolPtr(c, "inStock"),
		VerifiedOnly:  queryBool(c, "verifiedOnly"),
		ProductType:   c.Query("productType", ""),
		Longitude:     queryFloatPtr(c, "longitude"),
		Latitude:      queryFloatPtr(c, "latitude"),
		MaxDistanceKm: queryFloat(c, "maxDistance"),
		SortBy:        c.Query("sortBy", ""),
		Page:          queryInt64(c, "page", 1),
		Limit:         queryInt64(c, "limit", 20),
	}
}

// parseShopSearchInput đọc toàn bộ filter shop từ query string.
func parseShopSearchInput(c fiber.Ctx) *searchdto.ShopSearchInput {
	return &searchdto.ShopSearchInput{
		Query:         c.Query("query", ""),
		Category:      c.Query("category", ""),
		VendorType:    c.Query("vendorType", ""),
		StateID:       c.Query("stateId", ""),
		AreaID:        c.Query("areaId", ""),
		MarketID:      c.Query("marketId", ""),
		IsOpen:        queryBoolPtr(c, "isOpen"),
		VerifiedOnly:  queryBool(c, "verifiedOnly"),
		Longitude:     queryFloatPtr(c, "longitude"),
		Latitude:      queryFloatPtr(c, "latitude"),
		MaxDistanceKm: queryFloat(c, "maxDistance"),
		SortBy:        c.Query("sortBy", ""),
		Page:          queryInt64(c, "page", 1),
		Limit:         queryInt64(c, "limit", 20),
	}
}

// ============================================================================
// HANDLERS
// ============================================================================

// HandleSearch xử lý unified search: GET /search
func (h *SearchHandler) HandleSearch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := &searchdto.UnifiedSearchInput{
			SearchType: c.Query("searchType", ""),
			Product:    *parseProductSearchInput(c),
			Shop:       *parseShopSearchInput(c),
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.SearchService.Search(c.Context(), input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleSearchProducts xử lý tìm sản phẩm: GET /search/products
func (h *SearchHandler) HandleSearchProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := parseProductSearchInput(c)
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, err := h.SearchService.SearchProducts(c.Context(), input)
		h.HandleResponse(c, page, err)
		return nil
	})
}

// HandleSearchShops xử lý tìm shop: GET /search/shops
func (h *SearchHandler) HandleSearchShops(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := parseShopSearchInput(c)
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, err := h.SearchService.SearchShops(c.Context(), input)
		h.HandleResponse(c, page, err)
		return nil
	})
}

// HandleCompareProducts xử lý so sánh giá: GET /search/compare
func (h *SearchHandler) HandleCompareProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := parseProductSearchInput(c)
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.SearchService.CompareProducts(c.Context(), input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetProductVendors tra cứu chào giá của một sản phẩm cụ thể:
// GET /search/product/:productName/vendors
func (h *SearchHandler) HandleGetProductVendors(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productName := c.Params("productName")

		group, err := h.SearchService.GetProductVendors(c.Context(), productName)
		h.HandleResponse(c, group, err)
		return nil
	})
}

// HandleGetShopProducts xử lý trang sản phẩm của một shop:
// GET /search/shop/:vendorId/products
func (h *SearchHandler) HandleGetShopProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		vendorID, err := primitive.ObjectIDFromHex(c.Params("vendorId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		result, err := h.SearchService.GetShopProducts(c.Context(), vendorID, parseProductSearchInput(c))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetSimilarProducts gợi ý sản phẩm tương tự:
// GET /search/product/:productId/similar
func (h *SearchHandler) HandleGetSimilarProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		hits, err := h.SearchService.GetSimilarProducts(c.Context(), productID, queryInt64(c, "limit", 10))
		h.HandleResponse(c, hits, err)
		return nil
	})
}

// HandleGetAvailableFilters trả facet cho UI tìm kiếm: GET /search/filters
func (h *SearchHandler) HandleGetAvailableFilters(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := parseProductSearchInput(c)
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		filters, err := h.SearchService.GetAvailableFilters(c.Context(), input)
		h.HandleResponse(c, filters, err)
		return nil
	})
}
