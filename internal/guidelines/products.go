package guidelines

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/KirkDiggler/siptally/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var embeddedProducts []byte

// ProductTable is the static name to product lookup
type ProductTable struct {
	byName map[string]*models.Product
	order  []*models.Product
}

type productDocument struct {
	Products []*models.Product `yaml:"products"`
}

// LoadProducts parses a YAML product document
func LoadProducts(data []byte) (*ProductTable, error) {
	var doc productDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse product table: %w", err)
	}

	table := &ProductTable{
		byName: make(map[string]*models.Product, len(doc.Products)),
		order:  make([]*models.Product, 0, len(doc.Products)),
	}

	for _, p := range doc.Products {
		if p == nil || p.Name == "" {
			return nil, errors.New("product name cannot be empty")
		}

		key := normalizeName(p.Name)
		if _, exists := table.byName[key]; exists {
			return nil, fmt.Errorf("duplicate product %q", p.Name)
		}

		table.byName[key] = p
		table.order = append(table.order, p)
	}

	return table, nil
}

// Get returns a copy of the named product
func (t *ProductTable) Get(name string) (*models.Product, error) {
	p, ok := t.byName[normalizeName(name)]
	if !ok {
		return nil, ErrProductNotFound
	}

	out := *p
	return &out, nil
}

// All returns copies of every product in table order
func (t *ProductTable) All() []*models.Product {
	out := make([]*models.Product, 0, len(t.order))
	for _, p := range t.order {
		product := *p
		out = append(out, &product)
	}
	return out
}
