package etl

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lwisniewski/retail-analytics-api/internal/domain"
)

// cleanColumns is the column order of the cleaned export: the raw columns
// in their original order followed by the calculated fields.
var cleanColumns = []string{
	"order_id", "order_date", "ship_mode", "segment", "country",
	"city", "state", "postal_code", "region", "category",
	"sub_category", "product_id", "cost_price", "list_price",
	"quantity", "discount_percent", "discount", "sale_price",
	"profit", "profit_margin", "year", "month", "month_name", "quarter",
}

// WriteCleanCSV writes the cleaned orders in the processed-CSV layout.
func WriteCleanCSV(w io.Writer, orders []domain.Order) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(cleanColumns); err != nil {
		return err
	}

	for _, order := range orders {
		record := []string{
			strconv.Itoa(order.OrderID),
			order.OrderDate.Format(dateLayout),
			stringOrEmpty(order.ShipMode),
			order.Segment,
			order.Country,
			order.City,
			order.State,
			stringOrEmpty(order.PostalCode),
			order.Region,
			order.Category,
			order.SubCategory,
			order.ProductID,
			formatFloat(order.CostPrice),
			formatFloat(order.ListPrice),
			strconv.Itoa(order.Quantity),
			formatFloat(order.DiscountPercent),
			formatFloat(order.Discount),
			formatFloat(order.SalePrice),
			formatFloat(order.Profit),
			formatFloat(order.ProfitMargin),
			strconv.Itoa(order.Year),
			strconv.Itoa(order.Month),
			order.MonthName,
			strconv.Itoa(order.Quarter),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
