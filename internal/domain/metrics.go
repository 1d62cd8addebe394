package domain

import "time"

// SummaryStats mirrors the order_summary view.
type SummaryStats struct {
	TotalOrders     int       `json:"total_orders"`
	TotalRevenue    float64   `json:"total_revenue"`
	TotalProfit     float64   `json:"total_profit"`
	AvgOrderValue   float64   `json:"avg_order_value"`
	AvgProfitMargin float64   `json:"avg_profit_margin"`
	FirstOrderDate  time.Time `json:"first_order_date"`
	LastOrderDate   time.Time `json:"last_order_date"`
}

// FilterOptions holds the distinct values the dashboard offers as filters.
type FilterOptions struct {
	Categories []string   `json:"categories"`
	Regions    []string   `json:"regions"`
	Segments   []string   `json:"segments"`
	Years      []int      `json:"years"`
	MinDate    *time.Time `json:"min_date"`
	MaxDate    *time.Time `json:"max_date"`
}

type MonthlyRevenuePoint struct {
	Month   time.Time `json:"month"`
	Revenue float64   `json:"revenue"`
	Profit  float64   `json:"profit"`
}

type ProductRevenue struct {
	ProductID   string  `json:"product_id"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Revenue     float64 `json:"revenue"`
	Margin      float64 `json:"margin"`
}

type CategoryPerformance struct {
	Category  string  `json:"category"`
	Orders    int     `json:"orders"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	AvgMargin float64 `json:"avg_margin"`
}

type SubCategoryPerformance struct {
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Orders      int     `json:"orders"`
	Revenue     float64 `json:"revenue"`
	AvgMargin   float64 `json:"avg_margin"`
}

type RegionPerformance struct {
	Region       string  `json:"region"`
	Orders       int     `json:"orders"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	AvgMargin    float64 `json:"avg_margin"`
	RevenueShare float64 `json:"revenue_share"`
}

type StatePerformance struct {
	State     string  `json:"state"`
	Region    string  `json:"region"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	AvgMargin float64 `json:"avg_margin"`
}

type ShipModePerformance struct {
	Region    string  `json:"region"`
	ShipMode  string  `json:"ship_mode"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
	AvgMargin float64 `json:"avg_margin"`
}

type CityRevenue struct {
	City    string  `json:"city"`
	State   string  `json:"state"`
	Region  string  `json:"region"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type SegmentPerformance struct {
	Segment   string  `json:"segment"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	AvgMargin float64 `json:"avg_margin"`
}

// YearKPIs are the headline numbers for a single year.
type YearKPIs struct {
	Year          int     `json:"year"`
	Orders        int     `json:"orders"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	AvgMargin     float64 `json:"avg_margin"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

type YearlyPerformance struct {
	Year      int     `json:"year"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	AvgMargin float64 `json:"avg_margin"`
}

// MonthlyMetricPoint is one month of the selected metric.
type MonthlyMetricPoint struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Value     float64 `json:"value"`
}

type QuarterPerformance struct {
	Year      int     `json:"year"`
	Quarter   int     `json:"quarter"`
	Value     float64 `json:"value"`
	Orders    int     `json:"orders"`
	AvgMargin float64 `json:"avg_margin"`
}

type CategoryQuarterRevenue struct {
	Year     int     `json:"year"`
	Quarter  int     `json:"quarter"`
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// YearComparison pairs a year's KPIs with the previous year's. Deltas are
// percentage changes and stay nil when the previous year has no orders.
type YearComparison struct {
	Current      *YearKPIs `json:"current"`
	Previous     *YearKPIs `json:"previous"`
	RevenueDelta *float64  `json:"revenue_delta"`
	ProfitDelta  *float64  `json:"profit_delta"`
	OrdersDelta  *float64  `json:"orders_delta"`
}

// SummaryReport wraps the headline stats with cache provenance so clients
// can tell a cached snapshot from a live read.
type SummaryReport struct {
	Stats       *SummaryStats `json:"stats"`
	Cached      bool          `json:"cached"`
	RefreshedAt *time.Time    `json:"refreshed_at,omitempty"`
}

// DashboardOverview bundles the panels the landing page renders in one
// response.
type DashboardOverview struct {
	Summary      *SummaryReport         `json:"summary"`
	MonthlyTrend []*MonthlyRevenuePoint `json:"monthly_trend"`
	TopProducts  []*ProductRevenue      `json:"top_products"`
	Regions      []*RegionPerformance   `json:"regions"`
}

// YearlyGrowth carries the LAG-based year-over-year revenue growth. Growth
// is nil for the first year on record.
type YearlyGrowth struct {
	Year          int      `json:"year"`
	Revenue       float64  `json:"revenue"`
	Profit        float64  `json:"profit"`
	Orders        int      `json:"orders"`
	PrevRevenue   *float64 `json:"prev_revenue"`
	RevenueGrowth *float64 `json:"revenue_growth"`
}
