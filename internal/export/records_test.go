package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/kanaflash/internal/models"
	"github.com/xuri/excelize/v2"
)

func TestWriteRecords(t *testing.T) {
	records := []models.TestRecord{
		{
			ID:           "b",
			Date:         time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC),
			Accuracy:     66.7,
			Duration:     12.5,
			Total:        3,
			Correct:      2,
			KanaType:     models.KanaTypeHiragana,
			KanaCategory: models.CategorySeion,
		},
		{
			ID:       "a",
			Date:     time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
			Accuracy: 100,
			Duration: 4,
			Total:    1,
			Correct:  1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, recordHeader, rows[0])
	assert.Equal(t, []string{"2024-03-05 14:07", "66.7", "12.5", "2", "3", "hiragana", "seion", "b"}, rows[1])
	assert.Equal(t, "2024-03-04 09:00", rows[2][0])
	assert.Equal(t, "a", rows[2][7])
}

func TestWriteRecords_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
