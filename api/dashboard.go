package api

import (
	"context"
	"net/http"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/gin-gonic/gin"
)

// DashboardReader is implemented by dashboard.Reader.
type DashboardReader interface {
	Fetch(ctx context.Context) domain.DashboardStats
}

type DashboardHandler struct {
	reader DashboardReader
}

type dashboardResponse struct {
	TotalBookings      int              `json:"total_bookings"`
	TotalUsers         int              `json:"total_users"`
	TotalPackages      int              `json:"total_packages"`
	TotalArticles      int              `json:"total_articles"`
	Revenue            string           `json:"revenue"`
	TopPackages        []topPackageItem `json:"top_packages"`
	TopBuyers          []topBuyerItem   `json:"top_buyers"`
	StatusDistribution map[string]int   `json:"status_distribution"`
	RecentTrips        []recentTripItem `json:"recent_trips"`
}

type topPackageItem struct {
	PackageID string `json:"package_id"`
	Name      string `json:"name"`
	Bookings  int    `json:"bookings"`
}

type topBuyerItem struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Spent    string `json:"spent"`
	Bookings int    `json:"bookings"`
}

type recentTripItem struct {
	BookingID     string `json:"booking_id"`
	PackageName   string `json:"package_name"`
	BuyerName     string `json:"buyer_name"`
	DepartureDate string `json:"departure_date"`
	Status        string `json:"status"`
}

func NewDashboardHandler(reader DashboardReader) *DashboardHandler {
	return &DashboardHandler{reader: reader}
}

func (h *DashboardHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.fetch)
}

// fetch always answers 200: the reader falls back to its last snapshot or the
// seed dataset, never to an empty body.
func (h *DashboardHandler) fetch(c *gin.Context) {
	stats := h.reader.Fetch(c.Request.Context())

	resp := dashboardResponse{
		TotalBookings:      stats.TotalBookings,
		TotalUsers:         stats.TotalUsers,
		TotalPackages:      stats.TotalPackages,
		TotalArticles:      stats.TotalArticles,
		Revenue:            stats.Revenue,
		TopPackages:        make([]topPackageItem, 0, len(stats.TopPackages)),
		TopBuyers:          make([]topBuyerItem, 0, len(stats.TopBuyers)),
		StatusDistribution: make(map[string]int, len(stats.StatusDistribution)),
		RecentTrips:        make([]recentTripItem, 0, len(stats.RecentTrips)),
	}
	for _, p := range stats.TopPackages {
		resp.TopPackages = append(resp.TopPackages, topPackageItem{PackageID: p.PackageID, Name: p.Name, Bookings: p.Bookings})
	}
	for _, b := range stats.TopBuyers {
		resp.TopBuyers = append(resp.TopBuyers, topBuyerItem{UserID: b.UserID, Name: b.Name, Spent: b.Spent, Bookings: b.Bookings})
	}
	for status, count := range stats.StatusDistribution {
		resp.StatusDistribution[string(status)] = count
	}
	for _, t := range stats.RecentTrips {
		resp.RecentTrips = append(resp.RecentTrips, recentTripItem{
			BookingID:     t.BookingID,
			PackageName:   t.PackageName,
			BuyerName:     t.BuyerName,
			DepartureDate: t.DepartureDate,
			Status:        string(t.Status),
		})
	}

	c.JSON(http.StatusOK, resp)
}
