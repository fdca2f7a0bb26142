package models

import "time"

type FactoryType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type ServiceCategory struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// LocationType carries the badge colour shown next to a factory.
type LocationType struct {
	ID    int64  `db:"pk_location_type_id" json:"id"`
	Name  string `db:"name" json:"name"`
	Color string `db:"color" json:"color"`
}

type Customer struct {
	ID        int64     `db:"pk_customer_id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
