package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/infrastructure/logger"
	"github.com/bookstore/core/internal/ports"
)

// AnalyticsService computes the admin dashboard. Every call aggregates fresh
// snapshots of the catalog, the order log and the user directory; nothing is
// cached or maintained incrementally.
type AnalyticsService struct {
	bookRepo  ports.BookRepository
	orderRepo ports.OrderRepository
	userRepo  ports.UserRepository
	logger    *logger.Logger
	lowStock  int
}

// NewAnalyticsService creates a new analytics service. lowStockThreshold <= 0
// falls back to entities.DefaultLowStockThreshold.
func NewAnalyticsService(bookRepo ports.BookRepository, orderRepo ports.OrderRepository, userRepo ports.UserRepository, logger *logger.Logger, lowStockThreshold int) *AnalyticsService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = entities.DefaultLowStockThreshold
	}
	return &AnalyticsService{
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		logger:    logger,
		lowStock:  lowStockThreshold,
	}
}

// Dashboard aggregates counts, revenue, category breakdowns and low-stock
// alerts. Category revenue uses the denormalized item snapshots stored in
// each order, so a book re-categorized after purchase still counts under the
// category it was sold as.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*ports.Dashboard, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order log: %w", err)
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	distribution := make(map[string]int)
	for _, b := range books {
		distribution[b.Category]++
	}

	categoryRevenue := make(map[string]float64)
	for _, o := range orders {
		for _, item := range o.Items {
			categoryRevenue[item.Category] += item.Price
		}
	}

	var lowStock []*entities.Book
	for _, b := range books {
		if b.IsLowStock(s.lowStock) {
			lowStock = append(lowStock, b)
		}
	}

	userStats := make([]ports.UserStat, 0, len(users))
	for _, u := range users {
		stat := ports.UserStat{
			Username: u.Username,
			Email:    u.Email,
			IsAdmin:  u.IsAdmin,
		}
		for _, o := range orders {
			if o.Username == u.Username {
				stat.OrderCount++
				stat.TotalSpent += o.Total
			}
		}
		stat.TotalSpent = entities.Round2(stat.TotalSpent)
		userStats = append(userStats, stat)
	}

	return &ports.Dashboard{
		TotalBooks:           len(books),
		TotalOrders:          len(orders),
		TotalUsers:           len(users),
		TotalRevenue:         entities.Round2(revenue),
		CategoryDistribution: countStats(distribution),
		CategoryRevenue:      revenueStats(categoryRevenue),
		LowStock:             lowStock,
		Users:                userStats,
	}, nil
}

func countStats(counts map[string]int) []ports.CategoryStat {
	out := make([]ports.CategoryStat, 0, len(counts))
	for cat, n := range counts {
		out = append(out, ports.CategoryStat{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// revenueStats sorts descending by revenue so the top-selling categories
// come first, matching the dashboard's ranking.
func revenueStats(revenue map[string]float64) []ports.CategoryStat {
	out := make([]ports.CategoryStat, 0, len(revenue))
	for cat, rev := range revenue {
		out = append(out, ports.CategoryStat{Category: cat, Revenue: entities.Round2(rev)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	return out
}
