// Package export serializes transaction listings to delimited text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spendwise-app/spendwise/internal/model"
)

// csvHeader is the exported field set, matching the listing columns.
var csvHeader = []string{"id", "amount", "category", "date", "note"}

// WriteCSV serializes transactions in listing order. Blank notes export as
// empty fields.
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, txn := range transactions {
		record := []string{
			strconv.FormatInt(txn.ID, 10),
			strconv.FormatFloat(txn.Amount, 'f', 2, 64),
			txn.Category,
			txn.Date.String(),
			txn.Note,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", txn.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
