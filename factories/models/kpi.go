package models

import "time"

type OverviewKPI struct {
	TotalFactories      int64   `json:"totalFactories"`
	ActiveFactories     int64   `json:"activeFactories"`
	InactiveFactories   int64   `json:"inactiveFactories"`
	RecentRegistrations int64   `json:"recentRegistrations"`
	GrowthRate          float64 `json:"growthRate"`
}

// Breakdown is the share of factories pointing at one lookup row or industry.
type Breakdown struct {
	ID         int64   `json:"id,omitempty"`
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RegistrationTrend counts factories created in one calendar month (YYYY-MM).
type RegistrationTrend struct {
	Period            string `json:"period"`
	FactoryCount      int64  `json:"factoryCount"`
	ActiveFactories   int64  `json:"activeFactories"`
	InactiveFactories int64  `json:"inactiveFactories"`
}

type KPISummary struct {
	Overview           OverviewKPI         `json:"overview"`
	FactoryTypes       []Breakdown         `json:"factoryTypes"`
	ServiceCategories  []Breakdown         `json:"serviceCategories"`
	LocationTypes      []Breakdown         `json:"locationTypes"`
	Industries         []Breakdown         `json:"industries"`
	RegistrationTrends []RegistrationTrend `json:"registrationTrends"`
	GeneratedAt        time.Time           `json:"generatedAt"`
}

// GroupCount is one row of a GROUP BY count over a text column.
type GroupCount struct {
	Key   string `db:"group_key"`
	Count int64  `db:"group_count"`
}

// IDCount is one row of a GROUP BY count over a foreign key.
type IDCount struct {
	ID    int64 `db:"group_key"`
	Count int64 `db:"group_count"`
}

// Registration is the projection used to bucket factories by month.
type Registration struct {
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
