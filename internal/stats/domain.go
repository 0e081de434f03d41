package stats

import "time"

// Overview aggregates platform-wide counts for the admin dashboard.
// Unlike the per-list sub-counts, which are recomputed on every list
// call, the overview may be served from a short-lived cache.
type Overview struct {
	TotalUsers       int       `json:"totalUsers"`
	TotalProperties  int       `json:"totalProperties"`
	ListedProperties int       `json:"listedProperties"`
	RentedProperties int       `json:"rentedProperties"`
	TotalPayments    int       `json:"totalPayments"`
	CollectedAmount  float64   `json:"collectedAmount"`
	GeneratedAt      time.Time `json:"generatedAt"`
}
