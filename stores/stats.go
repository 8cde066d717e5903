package stores

import (
	"time"

	"gorm.io/gorm"

	"github.com/pizzaecia/vendor-pos/models"
)

type Stats struct {
	OrdersToday       int              `json:"ordersToday"`
	RevenueToday      float64          `json:"revenueToday"`
	PendingPayments   int              `json:"pendingPayments"`
	PendingDeliveries int              `json:"pendingDeliveries"`
	PaymentStats      PaymentBreakdown `json:"paymentStats"`
	VendorStats       []VendorStat     `json:"vendorStats"`
	ProductStats      []ProductStat    `json:"productStats"`
}

// PaymentBreakdown always carries all three methods, zero-valued when a
// method saw no sales today. Unknown methods are dropped from the breakdown
// but still counted in ordersToday and revenueToday.
type PaymentBreakdown struct {
	Dinheiro float64 `json:"dinheiro"`
	Pix      float64 `json:"pix"`
	Aberto   float64 `json:"aberto"`
}

type VendorStat struct {
	VendorID   string  `json:"vendorId"`
	VendorName string  `json:"vendorName"`
	OrderCount int     `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
}

type ProductStat struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// StatsAggregator derives the dashboard snapshot from the current store
// contents. Every call recomputes from scratch; nothing is cached.
type StatsAggregator struct {
	DB  *gorm.DB
	Loc *time.Location
}

func NewStatsAggregator(db *gorm.DB, loc *time.Location) *StatsAggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsAggregator{DB: db, Loc: loc}
}

// ComputeStats aggregates over the calendar day containing asOf, bounded by
// [midnight, next midnight) in the configured timezone. Pending payment and
// delivery counts span all orders, not just today's.
func (sa *StatsAggregator) ComputeStats(asOf time.Time) (*Stats, error) {
	local := asOf.In(sa.Loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, sa.Loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := &Stats{
		VendorStats:  []VendorStat{},
		ProductStats: []ProductStat{},
	}

	var todays []models.Order
	if err := sa.DB.Preload("Items").
		Where("created_at >= ? AND created_at < ?", dayStart.UTC(), dayEnd.UTC()).
		Find(&todays).Error; err != nil {
		return nil, err
	}

	var pendingPayments, pendingDeliveries int64
	if err := sa.DB.Model(&models.Order{}).
		Where("payment_status = ?", models.StatusPendente).
		Count(&pendingPayments).Error; err != nil {
		return nil, err
	}
	if err := sa.DB.Model(&models.Order{}).
		Where("delivery_status = ?", models.StatusPendente).
		Count(&pendingDeliveries).Error; err != nil {
		return nil, err
	}
	stats.PendingPayments = int(pendingPayments)
	stats.PendingDeliveries = int(pendingDeliveries)

	vendorAgg := map[string]*VendorStat{}
	productAgg := map[string]*ProductStat{}

	for _, order := range todays {
		stats.OrdersToday++
		stats.RevenueToday += order.TotalAmount

		switch order.PaymentMethod {
		case models.PaymentDinheiro:
			stats.PaymentStats.Dinheiro += order.TotalAmount
		case models.PaymentPix:
			stats.PaymentStats.Pix += order.TotalAmount
		case models.PaymentAberto:
			stats.PaymentStats.Aberto += order.TotalAmount
		}

		vs, ok := vendorAgg[order.VendorID]
		if !ok {
			vs = &VendorStat{VendorID: order.VendorID}
			vendorAgg[order.VendorID] = vs
		}
		vs.OrderCount++
		vs.Revenue += order.TotalAmount

		for _, item := range order.Items {
			ps, ok := productAgg[item.ProductID]
			if !ok {
				ps = &ProductStat{ProductID: item.ProductID}
				productAgg[item.ProductID] = ps
			}
			ps.Quantity += item.Quantity
			ps.Revenue += item.TotalPrice
		}
	}

	if err := sa.fillVendorNames(vendorAgg); err != nil {
		return nil, err
	}
	if err := sa.fillProductNames(productAgg); err != nil {
		return nil, err
	}

	for _, vs := range vendorAgg {
		stats.VendorStats = append(stats.VendorStats, *vs)
	}
	for _, ps := range productAgg {
		stats.ProductStats = append(stats.ProductStats, *ps)
	}

	return stats, nil
}

// fillVendorNames resolves vendor display names in one query. A vendor that
// has been removed keeps its id and gets the placeholder name; a dangling
// reference must never fail the whole report.
func (sa *StatsAggregator) fillVendorNames(agg map[string]*VendorStat) error {
	if len(agg) == 0 {
		return nil
	}
	ids := make([]string, 0, len(agg))
	for id := range agg {
		ids = append(ids, id)
	}
	var users []models.User
	if err := sa.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for id, vs := range agg {
		if name, ok := names[id]; ok {
			vs.VendorName = name
		} else {
			vs.VendorName = models.PlaceholderVendorName
		}
	}
	return nil
}

func (sa *StatsAggregator) fillProductNames(agg map[string]*ProductStat) error {
	if len(agg) == 0 {
		return nil
	}
	ids := make([]string, 0, len(agg))
	for id := range agg {
		ids = append(ids, id)
	}
	var products []models.Product
	if err := sa.DB.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	for id, ps := range agg {
		if name, ok := names[id]; ok {
			ps.ProductName = name
		} else {
			ps.ProductName = models.PlaceholderProductName
		}
	}
	return nil
}
