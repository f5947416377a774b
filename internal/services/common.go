package services

import (
	"fmt"

	"github.com/punyakios/go-kios-client/internal/catalog"
	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/common/validation"
)

func lookupCategory(name string) (catalog.Category, error) {
	category, ok := catalog.LookupCategory(name)
	if !ok {
		return category, fmt.Errorf("%w: %s", common.ErrUnknownCategory, name)
	}
	return category, nil
}

func validate(req interface{}) error {
	if err := validation.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return nil
}
