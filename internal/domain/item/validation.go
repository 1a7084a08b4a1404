package item

import (
	"fmt"
	"strings"
)

// ValidateDraft checks the fields required to store an item.
func ValidateDraft(d Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}
