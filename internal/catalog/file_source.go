package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// FileSource reads the persisted catalog feed from a JSON file containing
// an array of raw bond records.
type FileSource struct {
	Path string
}

// Records reads and decodes the feed file.
func (f FileSource) Records(_ context.Context) ([]model.RawBondRecord, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", f.Path, err)
	}

	var records []model.RawBondRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", f.Path, err)
	}

	return records, nil
}
