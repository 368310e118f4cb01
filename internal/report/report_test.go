package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplebank-dev/simplebank/internal/model"
)

func testAccounts() []model.Account {
	return []model.Account{
		{Number: "ACC1000", Seq: 1000, HolderName: "Alice", Balance: decimal.RequireFromString("150")},
		{Number: "ACC1001", Seq: 1001, HolderName: "Bob, Jr.", Balance: decimal.RequireFromString("0.5")},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, testAccounts())
	require.NoError(t, err)

	want := "--- All Accounts ---\n" +
		"Acc No: ACC1000, Name: Alice, Balance: $150.00\n" +
		"Acc No: ACC1001, Name: Bob, Jr., Balance: $0.50\n" +
		"--------------------\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "No accounts to display yet.\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, testAccounts())
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"ACC1000", "Alice", "150.00"}, records[1])
	assert.Equal(t, []string{"ACC1001", "Bob, Jr.", "0.50"}, records[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "account_number,holder_name,balance\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"csv", FormatCSV},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("json")
	assert.Error(t, err)
}

func TestWrite_Dispatch(t *testing.T) {
	var text, csvOut bytes.Buffer
	require.NoError(t, Write(&text, FormatText, testAccounts()))
	require.NoError(t, Write(&csvOut, FormatCSV, testAccounts()))

	assert.Contains(t, text.String(), "Acc No: ACC1000")
	assert.Contains(t, csvOut.String(), "account_number,holder_name,balance")
}
