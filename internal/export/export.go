// Package export writes a scraped batch to a file for inspection
// outside the database.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
)

// Batch is the on-disk shape of one scrape run.
type Batch struct {
	Companies []models.Company `json:"companies,omitempty"`
	Jobs      []models.Job     `json:"jobs,omitempty"`
}

// WriteFile serializes the batch as indented JSON.
func WriteFile(path string, batch Batch) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}
