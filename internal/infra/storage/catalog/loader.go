package catalog

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadFile читает каталог из YAML файла и валидирует его
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	return Parse(data)
}

// Parse разбирает YAML каталога.
// Секции, отсутствующие в файле, берутся из встроенного каталога.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrParseFile, err)
	}

	defaults := DefaultCatalog()
	if len(c.ServiceTypes) == 0 {
		c.ServiceTypes = defaults.ServiceTypes
	}
	if c.PromoCodes == nil {
		c.PromoCodes = defaults.PromoCodes
	}
	if c.Holidays == nil {
		c.Holidays = defaults.Holidays
	}

	if err := validator.New().Struct(c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := checkUniqueIDs(c); err != nil {
		return Catalog{}, err
	}

	return c, nil
}

func checkUniqueIDs(c Catalog) error {
	seen := make(map[string]struct{}, len(c.ServiceTypes))
	for _, st := range c.ServiceTypes {
		if _, dup := seen[st.ID]; dup {
			return fmt.Errorf("%w: duplicate service type id %q", ErrInvalidCatalog, st.ID)
		}
		seen[st.ID] = struct{}{}
	}
	return nil
}
