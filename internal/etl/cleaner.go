// Package etl cleans the raw retail-orders CSV into rows ready for the
// orders table: placeholder NA values become NULLs, money fields are
// derived from list/cost price and the date parts are precomputed.
package etl

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/lwisniewski/retail-analytics-api/pkg/utils"
)

const dateLayout = "2006-01-02"

// naValues are the placeholder strings the raw export uses for missing data.
var naValues = map[string]struct{}{
	"Not Available": {},
	"unknown":       {},
	"NA":            {},
	"N/A":           {},
	"":              {},
}

// RowError records why a raw row could not be cleaned.
type RowError struct {
	Line   int
	Reason string
}

// Report summarizes a cleaning run.
type Report struct {
	TotalRows   int
	CleanedRows int
	SkippedRows int
	FirstDate   time.Time
	LastDate    time.Time
	Errors      []RowError
}

// NormalizeHeader converts a raw CSV header to its snake_case column name.
func NormalizeHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

// CleanValue trims a raw cell and reports whether it carries data at all.
func CleanValue(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if _, isNA := naValues[value]; isNA {
		return "", false
	}
	return value, true
}

// TitleCase trims and title-cases a categorical value the way the cleaned
// dataset stores categories and regions ("office supplies" -> "Office Supplies").
func TitleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// ParseOrders reads the raw CSV and returns the cleaned orders. Rows whose
// key fields cannot be parsed are skipped and reported, not fatal.
func ParseOrders(r io.Reader) ([]domain.Order, *Report, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[NormalizeHeader(h)] = i
	}

	required := []string{
		"order_id", "order_date", "region", "category", "sub_category",
		"product_id", "cost_price", "list_price", "quantity", "discount_percent",
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("raw CSV is missing required column %q", col)
		}
	}

	report := &Report{}
	orders := make([]domain.Order, 0)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row at line %d: %w", line, err)
		}

		report.TotalRows++

		order, err := cleanRow(record, index)
		if err != nil {
			report.SkippedRows++
			report.Errors = append(report.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}

		report.CleanedRows++
		if report.FirstDate.IsZero() || order.OrderDate.Before(report.FirstDate) {
			report.FirstDate = order.OrderDate
		}
		if order.OrderDate.After(report.LastDate) {
			report.LastDate = order.OrderDate
		}

		orders = append(orders, order)
	}

	return orders, report, nil
}

func cleanRow(record []string, index map[string]int) (domain.Order, error) {
	field := func(name string) (string, bool) {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return "", false
		}
		return CleanValue(record[i])
	}

	var order domain.Order

	rawID, ok := field("order_id")
	if !ok {
		return order, fmt.Errorf("missing order_id")
	}
	orderID, err := strconv.Atoi(rawID)
	if err != nil {
		return order, fmt.Errorf("invalid order_id %q", rawID)
	}
	order.OrderID = orderID

	rawDate, ok := field("order_date")
	if !ok {
		return order, fmt.Errorf("missing order_date")
	}
	orderDate, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return order, fmt.Errorf("invalid order_date %q", rawDate)
	}
	order.OrderDate = orderDate

	numeric := func(name string) (float64, error) {
		raw, ok := field(name)
		if !ok {
			return 0, fmt.Errorf("missing %s", name)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", name, raw)
		}
		return value, nil
	}

	if order.CostPrice, err = numeric("cost_price"); err != nil {
		return order, err
	}
	if order.ListPrice, err = numeric("list_price"); err != nil {
		return order, err
	}
	if order.DiscountPercent, err = numeric("discount_percent"); err != nil {
		return order, err
	}

	quantity, err := numeric("quantity")
	if err != nil {
		return order, err
	}
	order.Quantity = int(quantity)

	if shipMode, ok := field("ship_mode"); ok {
		order.ShipMode = &shipMode
	}
	if postalCode, ok := field("postal_code"); ok {
		order.PostalCode = &postalCode
	}

	order.Segment, _ = field("segment")
	order.Country, _ = field("country")
	order.City, _ = field("city")
	order.State, _ = field("state")

	region, _ := field("region")
	order.Region = TitleCase(region)

	category, _ := field("category")
	order.Category = TitleCase(category)

	subCategory, _ := field("sub_category")
	order.SubCategory = TitleCase(subCategory)

	order.ProductID, _ = field("product_id")

	deriveFields(&order)

	return order, nil
}

// deriveFields computes the money and date columns from the raw values.
func deriveFields(order *domain.Order) {
	order.Discount = order.ListPrice * order.DiscountPercent / 100
	order.SalePrice = order.ListPrice - order.Discount
	order.Profit = order.SalePrice - order.CostPrice

	// Zero sale price would divide by zero; the margin is 0 by definition.
	if order.SalePrice != 0 {
		order.ProfitMargin = utils.RoundWithTwoDecimalPlace(order.Profit / order.SalePrice * 100)
	} else {
		order.ProfitMargin = 0
	}

	order.Year = order.OrderDate.Year()
	order.Month = int(order.OrderDate.Month())
	order.MonthName = order.OrderDate.Month().String()
	order.Quarter = (order.Month-1)/3 + 1
}
