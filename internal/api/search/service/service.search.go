package searchsvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	searchdto "github.com/MHYAnate/sureshops-api/internal/api/search/dto"
	vendorsvc "github.com/MHYAnate/sureshops-api/internal/api/vendors/service"
	"github.com/MHYAnate/sureshops-api/internal/common"
	"github.com/MHYAnate/sureshops-api/internal/global"
)

// SearchService thực thi các pipeline tìm kiếm trên products/vendors.
// Đọc trực tiếp qua aggregate nên giữ raw collection thay vì base service.
type SearchService struct {
	productCollection *mongo.Collection
	vendorCollection  *mongo.Collection
	vendorService     *vendorsvc.VendorService

	defaultRadiusKm float64
	maxLimit        int64
}

// NewSearchService tạo mới SearchService
func NewSearchService() (*SearchService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	vendorCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, err
	}

	cfg := global.MongoDB_ServerConfig
	return &SearchService{
		productCollection: productCollection,
		vendorCollection:  vendorCollection,
		vendorService:     vendorService,
		defaultRadiusKm:   cfg.SearchDefaultRadiusKm,
		maxLimit:          cfg.SearchMaxLimit,
	}, nil
}

// Search là endpoint hợp nhất: chạy song song các nhánh theo searchType
// và luôn kèm availableFilters + meta. Một nhánh lỗi thì cả request lỗi
// (khác với từng endpoint riêng lẻ vốn degrade về trang rỗng).
func (s *SearchService) Search(ctx context.Context, input *searchdto.UnifiedSearchInput) (*searchdto.UnifiedSearchResult, error) {
	start := time.Now()

	searchType := input.SearchType
	if searchType == "" {
		searchType = searchdto.SearchTypeAll
	}

	result := &searchdto.UnifiedSearchResult{}

	var wg sync.WaitGroup
	errCh := make(chan error, 4)

	if searchType == searchdto.SearchTypeProducts || searchType == searchdto.SearchTypeAll {
		wg.Add(2)
		go func() {
			defer wg.Done()
			page, err := s.SearchProducts(ctx, &input.Product)
			if err != nil {
				errCh <- err
				return
			}
			result.Products = &page
		}()
		go func() {
			defer wg.Done()
			comparison, err := s.CompareProducts(ctx, &input.Product)
			if err != nil {
				errCh <- err
				return
			}
			result.ProductComparison = comparison
		}()
	}

	if searchType == searchdto.SearchTypeShops || searchType == searchdto.SearchTypeAll {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := s.SearchShops(ctx, &input.Shop)
			if err != nil {
				errCh <- err
				return
			}
			result.Shops = &page
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		filters, err := s.GetAvailableFilters(ctx, &input.Product)
		if err != nil {
			errCh <- err
			return
		}
		result.AvailableFilters = filters
	}()

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		logrus.WithError(err).Error("Unified search thất bại")
		return nil, common.ErrServiceUnavailable
	}

	result.Meta = searchdto.SearchMeta{
		Timestamp: time.Now().UnixMilli(),
		TookMs:    time.Since(start).Milliseconds(),
	}
	return result, nil
}
