package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Compile-time check to ensure DashboardService implements the input port
var _ input.DashboardService = (*DashboardService)(nil)

// DashboardService struct - Application service for the admin overview
type DashboardService struct {
	orders output.OrderClient
	latest int
	now    func() time.Time
}

// NewDashboardService func - Creates new dashboard service.
// latest is how many of the newest orders are inspected.
func NewDashboardService(orders output.OrderClient, latest int) *DashboardService {
	if latest <= 0 {
		latest = 10
	}
	return &DashboardService{
		orders: orders,
		latest: latest,
		now:    time.Now,
	}
}

// Dashboard func - Use case: summary plus the latest orders, fetched concurrently.
// Orders that fail to load are skipped.
func (s *DashboardService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	summary, err := s.orders.Summary(ctx)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	first := summary.TotalOrders
	last := first - s.latest + 1
	if last < 1 {
		last = 1
	}

	count := first - last + 1
	if count < 0 {
		count = 0
	}
	lines := make([][]domain.OrderLine, count)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		orderID := first - i
		eg.Go(func() error {
			orderLines, err := s.orders.OrderProducts(egCtx, orderID)
			if err != nil {
				logrus.Warnf("Skipping order %d: %v", orderID, err)
				return nil
			}
			lines[i] = orderLines
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		EcoPointsTotal: decimal.Zero,
		RevenueTotal:   decimal.Zero,
		UsersCount:     summary.TotalUsers,
		OrdersCount:    summary.TotalOrders,
		LatestOrders:   []domain.OrderDigest{},
	}
	today := domain.BeginningOfDay(s.now())

	for i, orderLines := range lines {
		quantity := 0
		for _, line := range orderLines {
			dashboard.EcoPointsTotal = dashboard.EcoPointsTotal.Add(line.Product.EcoPoint)
			dashboard.RevenueTotal = dashboard.RevenueTotal.Add(line.Subtotal)
			quantity += line.Quantity
		}
		if len(orderLines) == 0 {
			continue
		}

		createdAt := orderLines[0].CreatedAt
		dashboard.LatestOrders = append(dashboard.LatestOrders, domain.OrderDigest{
			OrderID:  first - i,
			Name:     digestName(orderLines),
			Date:     domain.InStoreTime(createdAt),
			Time:     domain.ClockTime(createdAt),
			Quantity: quantity,
		})
		if !createdAt.Before(today) {
			dashboard.OrdersToday++
		}
	}

	sort.SliceStable(dashboard.LatestOrders, func(a, b int) bool {
		return dashboard.LatestOrders[a].Date.After(dashboard.LatestOrders[b].Date)
	})

	return dashboard, nil
}

// digestName is the first product name, plus how many more lines follow
func digestName(lines []domain.OrderLine) string {
	name := lines[0].Product.ProductName
	if len(lines) > 1 {
		return fmt.Sprintf("%s + %d more", name, len(lines)-1)
	}
	return name
}
