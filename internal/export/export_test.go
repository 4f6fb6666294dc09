package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/CXYZTW/swapscout/internal/swapsearch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() swapsearch.Table {
	return swapsearch.Table{
		{
			Date:               time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
			TransactionAddress: "0xabc",
			AmountUSD:          6,
			AmountOut:          121,
			PriceUSD:           0.05,
			WalletCategory:     "bot",
		},
		{
			Date:               time.Date(2023, 11, 14, 21, 0, 0, 0, time.UTC),
			TransactionAddress: "0xdef",
			AmountUSD:          1500,
			AmountOut:          30000,
			PriceUSD:           0.049,
			WalletCategory:     "heavy",
		},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "FOO_transactions.xlsx", FileName("FOO"))
}

func TestWriteXLSX(t *testing.T) {
	t.Run("writes header and rows to a single sheet", func(t *testing.T) {
		var buf bytes.Buffer

		err := WriteXLSX(&buf, sampleTable())
		require.NoError(t, err)

		f, err := excelize.OpenReader(&buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, []string{
			"", "Date", "Transaction Address", "Amount (USD)",
			"Amount (Token)", "Price (USD)", "Wallet Category",
		}, rows[0])

		first := rows[1]
		require.Len(t, first, 7)
		assert.Equal(t, "1", first[0])
		assert.Equal(t, "2023-11-14 22:13:20", first[1])
		assert.Equal(t, "0xabc", first[2])
		assert.Equal(t, "6", first[3])
		assert.Equal(t, "121", first[4])
		assert.Equal(t, "0.05", first[5])
		assert.Equal(t, "bot", first[6])

		assert.Equal(t, "2", rows[2][0])
		assert.Equal(t, "0xdef", rows[2][2])
	})

	t.Run("refuses an empty table", func(t *testing.T) {
		var buf bytes.Buffer

		err := WriteXLSX(&buf, swapsearch.Table{})

		assert.ErrorIs(t, err, ErrEmptyTable)
		assert.Zero(t, buf.Len(), "no artifact may be produced for an empty table")
	})
}

func TestRenderCSV(t *testing.T) {
	t.Run("renders header and rows", func(t *testing.T) {
		out, err := RenderCSV(sampleTable())
		require.NoError(t, err)

		assert.Equal(t,
			"Date,Transaction Address,Amount (USD),Amount (Token),Price (USD),Wallet Category\n"+
				"2023-11-14 22:13:20,0xabc,6,121,0.05,bot\n"+
				"2023-11-14 21:00:00,0xdef,1500,30000,0.049,heavy\n",
			out,
		)
	})

	t.Run("refuses an empty table", func(t *testing.T) {
		_, err := RenderCSV(nil)
		assert.ErrorIs(t, err, ErrEmptyTable)
	})
}
