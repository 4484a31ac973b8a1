package domain

import "time"

const (
	HouseTypeNew = "New"
	HouseTypeOld = "Old"
)

type House struct {
	ID          EntityID
	Title       string
	Price       float64
	Type        string // New|Old
	Description string
	Location    string
	Images      []string
	SellerPhone string
	SellerName  string
	IsSold      bool
	CreatedAt   time.Time
}
