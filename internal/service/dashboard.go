package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

// Stats are the home page book counters.
type Stats struct {
	Total     int
	Available int
	Lent      int
}

// Dashboard computes Stats from the all-books and available-books lists.
type Dashboard struct {
	books Resource[model.Book, model.BookInput]
}

// NewDashboard creates a new Dashboard.
func NewDashboard(books Resource[model.Book, model.BookInput]) *Dashboard {
	return &Dashboard{books: books}
}

// Stats issues both list calls concurrently.
func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	var all, available []model.Book

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = d.books.List(ctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		available, err = d.books.List(ctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return Stats{
		Total:     len(all),
		Available: len(available),
		Lent:      len(all) - len(available),
	}, nil
}
