package service

import (
	"context"
	"sync"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

// fakeBooks is an in-process Resource that counts calls.
type fakeBooks struct {
	mu        sync.Mutex
	all       []model.Book
	available []model.Book
	found     []model.Book
	record    *model.Book
	err       error
	deleteErr error

	calls   map[string]int
	deleted []int64
	created []model.BookInput
	updated []model.BookInput
	terms   []string

	// gate, when set, blocks List until a value arrives for the filter.
	gate map[bool]chan struct{}
}

func newFakeBooks() *fakeBooks {
	return &fakeBooks{calls: make(map[string]int)}
}

func (f *fakeBooks) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeBooks) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBooks) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeBooks) List(ctx context.Context, filtered bool) ([]model.Book, error) {
	if filtered {
		f.count("available")
	} else {
		f.count("all")
	}
	if ch, ok := f.gate[filtered]; ok {
		<-ch
	}
	if f.err != nil {
		return nil, f.err
	}
	if filtered {
		return append([]model.Book(nil), f.available...), nil
	}
	return append([]model.Book(nil), f.all...), nil
}

func (f *fakeBooks) Get(ctx context.Context, id int64) (*model.Book, error) {
	f.count("get")
	return f.record, f.err
}

func (f *fakeBooks) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	f.count("create")
	f.mu.Lock()
	f.created = append(f.created, in)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &model.Book{ID: 1, Title: *in.Title, Author: *in.Author}, nil
}

func (f *fakeBooks) Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	f.count("update")
	f.mu.Lock()
	f.updated = append(f.updated, in)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &model.Book{ID: id, Title: *in.Title, Author: *in.Author}, nil
}

func (f *fakeBooks) Delete(ctx context.Context, id int64) error {
	f.count("delete")
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	f.mu.Unlock()
	return f.deleteErr
}

func (f *fakeBooks) Search(ctx context.Context, field, term string) ([]model.Book, error) {
	f.count("search:" + field)
	f.mu.Lock()
	f.terms = append(f.terms, term)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Book(nil), f.found...), nil
}

func books(titles ...string) []model.Book {
	out := make([]model.Book, len(titles))
	for i, title := range titles {
		out[i] = model.Book{ID: int64(i + 1), Title: title, Author: "Autor", Available: i%2 == 0}
	}
	return out
}
