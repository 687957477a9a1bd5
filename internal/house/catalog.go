package house

import (
	"sort"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
)

// Catalog is a named set of variants builders can be created from.
type Catalog struct {
	variants map[string]Variant
}

// NewCatalog returns a catalog holding vs. Invalid or duplicate variants are rejected.
func NewCatalog(vs ...Variant) (*Catalog, error) {
	c := &Catalog{variants: make(map[string]Variant, len(vs))}
	for _, v := range vs {
		if err := c.Register(v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// DefaultCatalog holds the built-in wood and brick variants.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(wood, brick)
	if err != nil {
		panic(err)
	}
	return c
}

// Register adds v to the catalog.
func (c *Catalog) Register(v Variant) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if _, exists := c.variants[v.Name]; exists {
		return errors.AlreadyExistsError("variant already registered").WithContext("variant", v.Name).Build()
	}
	c.variants[v.Name] = v.clone()
	return nil
}

// Lookup returns the variant registered under name.
func (c *Catalog) Lookup(name string) (Variant, error) {
	v, ok := c.variants[name]
	if !ok {
		return Variant{}, errors.NotFoundError("unknown variant "+name).
			WithContext("variant", name).
			Build()
	}
	return v.clone(), nil
}

// Names returns the registered variant names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.variants))
	for name := range c.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuilder creates a builder for the named variant.
func (c *Catalog) NewBuilder(name string, opts ...BuilderOption) (*VariantBuilder, error) {
	v, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewVariantBuilder(v, opts...)
}
