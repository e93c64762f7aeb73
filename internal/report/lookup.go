package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Option is a selectable reference entry: an id plus the label shown to
// the user
type Option struct {
	ID    string
	Label string
}

// CustomerSource lists customers as selection options
type CustomerSource interface {
	CustomerOptions(ctx context.Context) ([]Option, error)
}

// SpareSource lists spare parts as selection options
type SpareSource interface {
	SpareOptions(ctx context.Context) ([]Option, error)
}

// Catalog holds the read-only customer and spare-part lookup lists,
// fetched once per workflow session. The workflow never mutates them.
type Catalog struct {
	customers []Option
	spares    []Option
}

// LoadCatalog fetches both lookup lists. The two fetches run
// concurrently, as the dashboard page issued them on mount.
func LoadCatalog(ctx context.Context, customers CustomerSource, spares SpareSource, logger *zap.Logger) (*Catalog, error) {
	type listing struct {
		options []Option
		err     error
		what    string
	}
	results := make(chan listing, 2)

	go func() {
		opts, err := customers.CustomerOptions(ctx)
		results <- listing{options: opts, err: err, what: "customers"}
	}()
	go func() {
		opts, err := spares.SpareOptions(ctx)
		results <- listing{options: opts, err: err, what: "spares"}
	}()

	catalog := &Catalog{}
	for i := 0; i < 2; i++ {
		res := <-results
		if res.err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", res.what, res.err)
		}
		if res.what == "customers" {
			catalog.customers = res.options
		} else {
			catalog.spares = res.options
		}
	}

	logger.Debug("Catalog loaded",
		zap.Int("customers", len(catalog.customers)),
		zap.Int("spares", len(catalog.spares)))

	return catalog, nil
}

// Customers returns the customer options
func (c *Catalog) Customers() []Option {
	return c.customers
}

// Spares returns the spare-part options
func (c *Catalog) Spares() []Option {
	return c.spares
}

// HasCustomer reports whether the id is a known customer
func (c *Catalog) HasCustomer(id string) bool {
	return hasOption(c.customers, id)
}

// HasSpare reports whether the id is a known spare part
func (c *Catalog) HasSpare(id string) bool {
	return hasOption(c.spares, id)
}

func hasOption(options []Option, id string) bool {
	for _, opt := range options {
		if opt.ID == id {
			return true
		}
	}
	return false
}
