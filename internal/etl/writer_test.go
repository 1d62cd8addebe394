package etl

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCleanCSV_RoundTripsCleanedOrders(t *testing.T) {
	input := rawCSV(
		"1,2023-03-01,Second Class,Consumer,United States,Henderson,Kentucky,42420,South,Furniture,Bookcases,FUR-BO-10001798,240,260,2,2",
		"2,2022-08-15,Not Available,Corporate,United States,Fort Lauderdale,Florida,N/A,South,Office Supplies,Binders,OFF-BI-10003910,3,5,4,10",
	)

	orders, _, err := ParseOrders(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteCleanCSV(&buf, orders))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, cleanColumns, records[0])

	first := records[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "2023-03-01", first[1])
	assert.Equal(t, "5.2", first[16])
	assert.Equal(t, "254.8", first[17])
	assert.Equal(t, "March", first[22])
	assert.Equal(t, "1", first[23])

	// Missing placeholders come back as empty cells.
	second := records[2]
	assert.Equal(t, "", second[2])
	assert.Equal(t, "", second[7])
}
