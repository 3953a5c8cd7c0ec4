package utils

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"dexViews/internal/domain"
)

// WriteCandlesToCSV writes an hourly candle series to filename, one row per
// bucket, for offline inspection of the chart data.
func WriteCandlesToCSV(candles []domain.Candle, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	writer.Write([]string{"bucket_start", "open", "high", "low", "close"})

	for _, c := range candles {
		writer.Write([]string{
			c.BucketStart.Format(time.RFC3339),
			strconv.FormatFloat(c.Open, 'f', -1, 64),
			strconv.FormatFloat(c.High, 'f', -1, 64),
			strconv.FormatFloat(c.Low, 'f', -1, 64),
			strconv.FormatFloat(c.Close, 'f', -1, 64),
		})
	}
	return writer.Error()
}
