package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananhtuan/recruitment-backend/internal/models"
)

func TestRowFromRegistration(t *testing.T) {
	issue := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)
	reg := models.Registration{
		ID:            42,
		FullName:      "Nguyen Van A",
		Phone:         "0912345678",
		CCCD:          "123456789012",
		Gender:        "Nam",
		BirthDate:     time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
		Address:       "Hanoi",
		CCCDIssueDate: &issue,
		Factory:       "Van Trung",
		CreatedAt:     time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}

	row := RowFromRegistration(reg)

	assert.Equal(t, "42", row.ID)
	assert.Equal(t, "01/01/1995", row.BirthDate)
	assert.Equal(t, "15/03/2020", row.CCCDIssueDate)
	assert.Equal(t, "", row.CCCDExpiryDate)
	// created_at is rendered in factory-local time (UTC+7).
	assert.Equal(t, "01/06/2025 16:30:00", row.RegisteredAt)
}

func TestRowValuesRoundTrip(t *testing.T) {
	row := Row{
		ID:             "7",
		RegisteredAt:   "01/06/2025 16:30:00",
		FullName:       "Nguyen Van A",
		Phone:          "0912345678",
		CCCD:           "123456789012",
		Gender:         "Nam",
		BirthDate:      "01/01/1995",
		Address:        "Hanoi",
		Factory:        "Van Trung",
		CCCDIssueDate:  "15/03/2020",
		CCCDExpiryDate: "15/03/2030",
	}

	values := row.values()
	require.Len(t, values, len(Headers))
	assert.Equal(t, row, rowFromValues(values))
}

func TestRowFromValuesShortRow(t *testing.T) {
	// Rows hand-edited in the sheet can be shorter than 11 cells.
	row := rowFromValues([]interface{}{"1", "01/06/2025 16:30:00", "Nguyen Van A"})
	assert.Equal(t, "1", row.ID)
	assert.Equal(t, "Nguyen Van A", row.FullName)
	assert.Equal(t, "", row.Phone)
	assert.Equal(t, "", row.CCCDExpiryDate)
}
