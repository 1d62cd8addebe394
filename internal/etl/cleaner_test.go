package etl

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawHeader = "Order Id,Order Date,Ship Mode,Segment,Country,City,State,Postal Code,Region,Category,Sub Category,Product Id,cost price,List Price,Quantity,Discount Percent"

func rawCSV(rows ...string) string {
	return rawHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestParseOrders_DerivesMoneyAndDateFields(t *testing.T) {
	input := rawCSV(
		"1,2023-03-01,Second Class,Consumer,United States,Henderson,Kentucky,42420,South,Furniture,Bookcases,FUR-BO-10001798,240,260,2,2",
	)

	orders, report, err := ParseOrders(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, 1, order.OrderID)

	// list 260 at 2% discount: discount 5.2, sale 254.8, profit 14.8.
	assert.InDelta(t, 5.2, order.Discount, 0.0001)
	assert.InDelta(t, 254.8, order.SalePrice, 0.0001)
	assert.InDelta(t, 14.8, order.Profit, 0.0001)
	assert.InDelta(t, 5.81, order.ProfitMargin, 0.0001)

	assert.Equal(t, 2023, order.Year)
	assert.Equal(t, 3, order.Month)
	assert.Equal(t, "March", order.MonthName)
	assert.Equal(t, 1, order.Quarter)

	assert.Equal(t, 1, report.TotalRows)
	assert.Equal(t, 1, report.CleanedRows)
	assert.Equal(t, 0, report.SkippedRows)
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), report.FirstDate)
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), report.LastDate)
}

func TestParseOrders_NormalizesPlaceholdersAndCasing(t *testing.T) {
	input := rawCSV(
		"2,2022-08-15,Not Available,Corporate,United States,Fort Lauderdale,Florida,N/A,south,office supplies,BINDERS,OFF-BI-10003910,3,5,4,10",
	)

	orders, _, err := ParseOrders(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Nil(t, order.ShipMode)
	assert.Nil(t, order.PostalCode)
	assert.Equal(t, "South", order.Region)
	assert.Equal(t, "Office Supplies", order.Category)
	assert.Equal(t, "Binders", order.SubCategory)
}

func TestParseOrders_ZeroSalePriceHasZeroMargin(t *testing.T) {
	input := rawCSV(
		"3,2022-01-10,Standard Class,Consumer,United States,Concord,North Carolina,28027,South,Furniture,Tables,FUR-TA-10000577,0,0,3,0",
	)

	orders, _, err := ParseOrders(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Zero(t, orders[0].SalePrice)
	assert.Zero(t, orders[0].ProfitMargin)
}

func TestParseOrders_SkipsUnparsableRows(t *testing.T) {
	input := rawCSV(
		"4,2023-05-20,First Class,Consumer,United States,Seattle,Washington,98103,West,Technology,Phones,TEC-PH-10002033,100,120,1,5",
		"not-a-number,2023-05-21,First Class,Consumer,United States,Seattle,Washington,98103,West,Technology,Phones,TEC-PH-10002034,100,120,1,5",
		"6,unknown,First Class,Consumer,United States,Seattle,Washington,98103,West,Technology,Phones,TEC-PH-10002035,100,120,1,5",
		"7,2023-05-22,First Class,Consumer,United States,Seattle,Washington,98103,West,Technology,Phones,TEC-PH-10002036,abc,120,1,5",
	)

	orders, report, err := ParseOrders(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, orders, 1)
	assert.Equal(t, 4, report.TotalRows)
	assert.Equal(t, 1, report.CleanedRows)
	assert.Equal(t, 3, report.SkippedRows)
	require.Len(t, report.Errors, 3)
	assert.Equal(t, 3, report.Errors[0].Line)
	assert.Contains(t, report.Errors[0].Reason, "order_id")
	assert.Contains(t, report.Errors[1].Reason, "order_date")
	assert.Contains(t, report.Errors[2].Reason, "cost_price")
}

func TestParseOrders_TracksDateRangeAcrossRows(t *testing.T) {
	input := rawCSV(
		"8,2023-06-15,First Class,Consumer,United States,Seattle,Washington,98103,West,Technology,Phones,TEC-PH-10002040,100,120,1,5",
		"9,2022-02-01,First Class,Consumer,United States,Seattle,Washington,98103,West,Technology,Phones,TEC-PH-10002041,100,120,1,5",
		"10,2023-11-30,First Class,Consumer,United States,Seattle,Washington,98103,West,Technology,Phones,TEC-PH-10002042,100,120,1,5",
	)

	_, report, err := ParseOrders(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC), report.FirstDate)
	assert.Equal(t, time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC), report.LastDate)
}

func TestParseOrders_MissingRequiredColumn(t *testing.T) {
	input := "Order Id,Order Date,Region\n1,2023-01-01,South\n"

	_, _, err := ParseOrders(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "order_id", NormalizeHeader("Order Id"))
	assert.Equal(t, "cost_price", NormalizeHeader("  cost price "))
	assert.Equal(t, "sub_category", NormalizeHeader("Sub Category"))
}

func TestCleanValue(t *testing.T) {
	tests := []struct {
		raw    string
		value  string
		wantOK bool
	}{
		{raw: "  Standard Class  ", value: "Standard Class", wantOK: true},
		{raw: "Not Available", wantOK: false},
		{raw: "unknown", wantOK: false},
		{raw: "NA", wantOK: false},
		{raw: "N/A", wantOK: false},
		{raw: "   ", wantOK: false},
		{raw: "0", value: "0", wantOK: true},
	}

	for _, tt := range tests {
		value, ok := CleanValue(tt.raw)
		assert.Equal(t, tt.wantOK, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.value, value, "raw=%q", tt.raw)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Office Supplies", TitleCase("office supplies"))
	assert.Equal(t, "Binders", TitleCase("BINDERS"))
	assert.Equal(t, "South", TitleCase("  south "))
	assert.Equal(t, "", TitleCase(""))
}
