package domain

import "time"

// Order is one cleaned retail transaction row as stored in the orders table.
type Order struct {
	OrderID         int        `json:"order_id"`
	OrderDate       time.Time  `json:"order_date"`
	ShipMode        *string    `json:"ship_mode"`
	Segment         string     `json:"segment"`
	Country         string     `json:"country"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	PostalCode      *string    `json:"postal_code"`
	Region          string     `json:"region"`
	Category        string     `json:"category"`
	SubCategory     string     `json:"sub_category"`
	ProductID       string     `json:"product_id"`
	CostPrice       float64    `json:"cost_price"`
	ListPrice       float64    `json:"list_price"`
	Quantity        int        `json:"quantity"`
	DiscountPercent float64    `json:"discount_percent"`
	Discount        float64    `json:"discount"`
	SalePrice       float64    `json:"sale_price"`
	Profit          float64    `json:"profit"`
	ProfitMargin    float64    `json:"profit_margin"`
	Year            int        `json:"year"`
	Month           int        `json:"month"`
	MonthName       string     `json:"month_name"`
	Quarter         int        `json:"quarter"`
}
