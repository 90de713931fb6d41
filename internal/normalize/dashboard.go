package normalize

import (
	"strconv"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
)

var (
	totalBookingsKeys = []string{"total_bookings", "totalBookings", "bookings"}
	totalUsersKeys    = []string{"total_users", "totalUsers", "users"}
	totalPackagesKeys = []string{"total_packages", "totalPackages", "packages"}
	totalArticlesKeys = []string{"total_articles", "totalArticles", "articles"}
	revenueKeys       = []string{"total_revenue", "revenue", "income"}
	topPackagesKeys   = []string{"top_packages", "topPackages", "popular_packages"}
	topBuyersKeys     = []string{"top_buyers", "topBuyers", "best_buyers"}
	distributionKeys  = []string{"status_distribution", "statusDistribution", "booking_status_count"}
	recentTripsKeys   = []string{"recent_trips", "recentTrips", "latest_bookings"}
)

// Dashboard maps a raw aggregate payload onto DashboardStats, falling back
// field by field to prev for anything missing or malformed. The dashboard
// must never render blank: staleness beats emptiness.
func Dashboard(raw interface{}, prev domain.DashboardStats) domain.DashboardStats {
	obj := asObject(raw)
	if obj == nil {
		return prev
	}

	out := prev

	if v, ok := intField(obj, totalBookingsKeys...); ok {
		out.TotalBookings = v
	}
	if v, ok := intField(obj, totalUsersKeys...); ok {
		out.TotalUsers = v
	}
	if v, ok := intField(obj, totalPackagesKeys...); ok {
		out.TotalPackages = v
	}
	if v, ok := intField(obj, totalArticlesKeys...); ok {
		out.TotalArticles = v
	}
	if v := pickStr(obj, revenueKeys...); v != "" {
		out.Revenue = v
	}

	if rows := pickObjList(obj, topPackagesKeys...); len(rows) > 0 {
		top := make([]domain.TopPackage, 0, len(rows))
		for _, row := range rows {
			top = append(top, domain.TopPackage{
				PackageID: pickStr(row, packageIDKeys...),
				Name:      pickStr(row, packageNameKeys...),
				Bookings:  pickInt(row, "bookings", "total_bookings", "count"),
			})
		}
		out.TopPackages = top
	}

	if rows := pickObjList(obj, topBuyersKeys...); len(rows) > 0 {
		buyers := make([]domain.TopBuyer, 0, len(rows))
		for _, row := range rows {
			buyers = append(buyers, domain.TopBuyer{
				UserID:   pickStr(row, userIDKeys...),
				Name:     pickStr(row, fullNameKeys...),
				Spent:    pickStrDefault(row, "0", "total_spent", "spent", "amount"),
				Bookings: pickInt(row, "bookings", "total_bookings", "count"),
			})
		}
		out.TopBuyers = buyers
	}

	if dist := pickObj(obj, distributionKeys...); dist != nil {
		m := make(map[domain.BookingStatus]int, len(dist))
		for status := range dist {
			m[domain.BookingStatus(status)] = pickInt(dist, status)
		}
		out.StatusDistribution = m
	}

	if rows := pickObjList(obj, recentTripsKeys...); len(rows) > 0 {
		trips := make([]domain.RecentTrip, 0, len(rows))
		for _, row := range rows {
			trips = append(trips, domain.RecentTrip{
				BookingID:     pickStr(row, bookingIDKeys...),
				PackageName:   pickStr(row, snapshotNameKeys...),
				BuyerName:     pickStr(row, fullNameKeys...),
				DepartureDate: pickStr(row, departureKeys...),
				Status:        domain.BookingStatus(pickStrDefault(row, string(domain.BookingStatusPending), statusKeys...)),
			})
		}
		out.RecentTrips = trips
	}

	return out
}

func intField(raw map[string]interface{}, keys ...string) (int, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case float64:
			return int(val), true
		case string:
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return int(f), true
			}
		}
	}
	return 0, false
}
