// Package worker - AggregateRecomputeWorker tính lại các số liệu dẫn xuất
// (khoảng giá shop, thống kê giá catalog, rating shop) sau khi dữ liệu gốc
// thay đổi. Nhận tín hiệu từ event bus nội bộ, gom lại và xử lý theo chu kỳ
// để nhiều thay đổi liên tiếp trên cùng một shop chỉ tính lại một lần.
package worker

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogsvc "github.com/MHYAnate/sureshops-api/internal/api/catalog/service"
	"github.com/MHYAnate/sureshops-api/internal/api/events"
	productsvc "github.com/MHYAnate/sureshops-api/internal/api/product/service"
	reviewsvc "github.com/MHYAnate/sureshops-api/internal/api/review/service"
	vendorsvc "github.com/MHYAnate/sureshops-api/internal/api/vendors/service"
	"github.com/MHYAnate/sureshops-api/internal/global"
	"github.com/MHYAnate/sureshops-api/internal/logger"
)

// maxDirtyEntries chặn mỗi tập dirty không phình vô hạn khi worker tụt lại.
const maxDirtyEntries = 10000

// AggregateRecomputeWorker gom các shop/catalog item cần tính lại số liệu.
type AggregateRecomputeWorker struct {
	vendorService  *vendorsvc.VendorService
	productService *productsvc.ProductService
	catalogService *catalogsvc.CatalogItemService
	reviewService  *reviewsvc.ReviewService

	interval time.Duration

	mu                sync.Mutex
	dirtyVendorPrices map[primitive.ObjectID]struct{} // Shop cần tính lại min/max giá
	dirtyVendorRating map[primitive.ObjectID]struct{} // Shop cần tính lại rating
	dirtyCatalogItems map[primitive.ObjectID]struct{} // Catalog item cần tính lại thống kê giá
}

// NewAggregateRecomputeWorker tạo worker mới.
// Tham số:
//   - interval: Khoảng cách giữa các lần xử lý (mặc định: 30 giây)
func NewAggregateRecomputeWorker(interval time.Duration) (*AggregateRecomputeWorker, error) {
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, err
	}
	productService, err := productsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	catalogService, err := catalogsvc.NewCatalogItemService()
	if err != nil {
		return nil, err
	}
	reviewService, err := reviewsvc.NewReviewService()
	if err != nil {
		return nil, err
	}
	if interval < 5*time.Second {
		interval = 30 * time.Second
	}

	return &AggregateRecomputeWorker{
		vendorService:     vendorService,
		productService:    productService,
		catalogService:    catalogService,
		reviewService:     reviewService,
		interval:          interval,
		dirtyVendorPrices: map[primitive.ObjectID]struct{}{},
		dirtyVendorRating: map[primitive.ObjectID]struct{}{},
		dirtyCatalogItems: map[primitive.ObjectID]struct{}{},
	}, nil
}

// RegisterHooks đăng ký worker vào event bus. Gọi một lần lúc khởi động,
// trước khi server nhận request.
func (w *AggregateRecomputeWorker) RegisterHooks() {
	events.OnDataChanged(func(_ context.Context, e events.DataChangeEvent) {
		switch e.CollectionName {
		case global.MongoDB_ColNames.Products:
			w.markProductChanged(e.Document)
		case global.MongoDB_ColNames.Reviews:
			w.markReviewChanged(e.Document)
		}
	})
}

func (w *AggregateRecomputeWorker) markProductChanged(doc interface{}) {
	vendorID := events.GetObjectIDField(doc, "VendorID")
	catalogItemID := events.GetObjectIDField(doc, "CatalogItemID")

	w.mu.Lock()
	defer w.mu.Unlock()
	if !vendorID.IsZero() && len(w.dirtyVendorPrices) < maxDirtyEntries {
		w.dirtyVendorPrices[vendorID] = struct{}{}
	}
	if !catalogItemID.IsZero() && len(w.dirtyCatalogItems) < maxDirtyEntries {
		w.dirtyCatalogItems[catalogItemID] = struct{}{}
	}
}

func (w *AggregateRecomputeWorker) markReviewChanged(doc interface{}) {
	vendorID := events.GetObjectIDField(doc, "VendorID")

	w.mu.Lock()
	defer w.mu.Unlock()
	if !vendorID.IsZero() && len(w.dirtyVendorRating) < maxDirtyEntries {
		w.dirtyVendorRating[vendorID] = struct{}{}
	}
}

// drain lấy ra và reset toàn bộ tập dirty hiện tại.
func (w *AggregateRecomputeWorker) drain() (vendorPrices, vendorRatings, catalogItems []primitive.ObjectID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id := range w.dirtyVendorPrices {
		vendorPrices = append(vendorPrices, id)
	}
	for id := range w.dirtyVendorRating {
		vendorRatings = append(vendorRatings, id)
	}
	for id := range w.dirtyCatalogItems {
		catalogItems = append(catalogItems, id)
	}
	w.dirtyVendorPrices = map[primitive.ObjectID]struct{}{}
	w.dirtyVendorRating = map[primitive.ObjectID]struct{}{}
	w.dirtyCatalogItems = map[primitive.ObjectID]struct{}{}
	return
}

// Start chạy worker trong vòng lặp: mỗi interval xử lý toàn bộ tập dirty.
// Lỗi từng mục chỉ log, mục lỗi sẽ dirty lại ở lần thay đổi tiếp theo.
func (w *AggregateRecomputeWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📊 [AGGREGATE_RECOMPUTE] Starting Aggregate Recompute Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [AGGREGATE_RECOMPUTE] Aggregate Recompute Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [AGGREGATE_RECOMPUTE] Panic khi tính lại số liệu, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				vendorPrices, vendorRatings, catalogItems := w.drain()
				if len(vendorPrices)+len(vendorRatings)+len(catalogItems) == 0 {
					return
				}

				for _, vendorID := range vendorPrices {
					if err := w.vendorService.UpdatePriceRange(ctx, vendorID); err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"vendorId": vendorID.Hex(),
						}).Warn("📊 [AGGREGATE_RECOMPUTE] Tính lại khoảng giá shop thất bại")
					}
				}

				for _, catalogItemID := range catalogItems {
					prices, err := w.productService.LinkedPrices(ctx, catalogItemID)
					if err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"catalogItemId": catalogItemID.Hex(),
						}).Warn("📊 [AGGREGATE_RECOMPUTE] Lấy giá listing của catalog item thất bại")
						continue
					}
					if err := w.catalogService.UpdatePriceStats(ctx, catalogItemID, prices); err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"catalogItemId": catalogItemID.Hex(),
						}).Warn("📊 [AGGREGATE_RECOMPUTE] Cập nhật thống kê giá catalog thất bại")
					}
				}

				for _, vendorID := range vendorRatings {
					rating, count, err := w.reviewService.VendorRatingStats(ctx, vendorID)
					if err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"vendorId": vendorID.Hex(),
						}).Warn("📊 [AGGREGATE_RECOMPUTE] Tính lại rating shop thất bại")
						continue
					}
					if err := w.vendorService.UpdateRating(ctx, vendorID, rating, count); err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"vendorId": vendorID.Hex(),
						}).Warn("📊 [AGGREGATE_RECOMPUTE] Cập nhật rating shop thất bại")
					}
				}

				log.WithFields(map[string]interface{}{
					"vendorPrices":  len(vendorPrices),
					"vendorRatings": len(vendorRatings),
					"catalogItems":  len(catalogItems),
				}).Info("📊 [AGGREGATE_RECOMPUTE] Đã tính lại số liệu dẫn xuất")
			}()
		}
	}
}
