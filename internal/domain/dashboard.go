package domain

// DashboardStats is the aggregate payload behind the admin dashboard. The
// reader guarantees every field is populated: stale values beat blank ones.
type DashboardStats struct {
	TotalBookings      int
	TotalUsers         int
	TotalPackages      int
	TotalArticles      int
	Revenue            string
	TopPackages        []TopPackage
	TopBuyers          []TopBuyer
	StatusDistribution map[BookingStatus]int
	RecentTrips        []RecentTrip
}

type TopPackage struct {
	PackageID string
	Name      string
	Bookings  int
}

type TopBuyer struct {
	UserID   string
	Name     string
	Spent    string
	Bookings int
}

type RecentTrip struct {
	BookingID     string
	PackageName   string
	BuyerName     string
	DepartureDate string
	Status        BookingStatus
}

// SeedDashboard returns the built-in fallback dataset used before the first
// successful fetch. The dashboard must never render empty.
func SeedDashboard() DashboardStats {
	return DashboardStats{
		TotalBookings: 0,
		TotalUsers:    0,
		TotalPackages: 0,
		TotalArticles: 0,
		Revenue:       "0",
		TopPackages:   []TopPackage{},
		TopBuyers:     []TopBuyer{},
		StatusDistribution: map[BookingStatus]int{
			BookingStatusPending:   0,
			BookingStatusConfirmed: 0,
			BookingStatusCancelled: 0,
			BookingStatusDone:      0,
		},
		RecentTrips: []RecentTrip{},
	}
}
