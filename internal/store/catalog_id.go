package store

import (
	"fmt"
	"strconv"

	"github.com/petmart/petmart_web/internal/models"
)

// GenerateProductID builds the next catalog id for a category:
// the category prefix followed by a zero-padded sequence one greater than the
// highest existing numeric suffix under that prefix. With F001 and F002
// present, the next Food id is F003; an empty prefix set starts at 001.
func GenerateProductID(products []models.Product, category models.Category) string {
	prefix := category.IDPrefix()

	maxSeq := 0
	for _, p := range products {
		if len(p.ID) < 2 || p.ID[:1] != prefix {
			continue
		}
		n, err := strconv.Atoi(p.ID[1:])
		if err != nil {
			continue
		}
		if n > maxSeq {
			maxSeq = n
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}
