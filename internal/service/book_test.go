package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

func TestBookForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    BookForm
		wantErr string
		field   string
	}{
		{name: "valid", form: BookForm{Title: "Foo", Author: "Bar"}},
		{name: "missing title", form: BookForm{Author: "Bar"}, wantErr: MsgTitleAuthorRequired, field: "titulo"},
		{name: "missing author", form: BookForm{Title: "Foo"}, wantErr: MsgTitleAuthorRequired, field: "autor"},
		{name: "blank title", form: BookForm{Title: "   ", Author: "Bar"}, wantErr: MsgTitleAuthorRequired, field: "titulo"},
		{name: "bad year", form: BookForm{Title: "Foo", Author: "Bar", Year: "mil"}, wantErr: MsgInvalidYear, field: "añoPublicacion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, ve.Message)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestBookForm_InputOmitsBlankOptionals(t *testing.T) {
	form := BookForm{Title: "Foo", Author: "Bar", ISBN: "", Year: "2020", Available: true}

	body, err := json.Marshal(form.Input())
	require.NoError(t, err)

	assert.JSONEq(t, `{"titulo":"Foo","autor":"Bar","añoPublicacion":2020,"disponible":true}`, string(body))
}

func TestBookForm_InputKeepsFalseAvailability(t *testing.T) {
	in := BookForm{Title: "Foo", Author: "Bar", Available: false}.Input()

	require.NotNil(t, in.Available)
	assert.False(t, *in.Available)
	assert.Nil(t, in.PublicationYear)
	assert.Nil(t, in.ISBN)
}

func TestBookFormFrom(t *testing.T) {
	year := 1967
	f := BookFormFrom(model.Book{ID: 1, Title: "Cien años", Author: "GGM", ISBN: "123", PublicationYear: &year})

	assert.Equal(t, BookForm{Title: "Cien años", Author: "GGM", ISBN: "123", Year: "1967"}, f)
	assert.True(t, NewBookForm().Available)
}

func TestBookService_CreateValidationBlocksCall(t *testing.T) {
	res := newFakeBooks()
	svc := NewBookService(res)

	_, err := svc.Create(context.Background(), BookForm{Author: "Bar"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, MsgTitleAuthorRequired, ve.Fields["titulo"])
	assert.Equal(t, 0, res.Total())
}

func TestBookService_CreateAndUpdate(t *testing.T) {
	res := newFakeBooks()
	svc := NewBookService(res)
	ctx := context.Background()

	created, err := svc.Create(ctx, BookForm{Title: "Foo", Author: "Bar", Year: "2020", Available: true})
	require.NoError(t, err)
	assert.Equal(t, "Foo", created.Title)
	require.Len(t, res.created, 1)
	assert.Equal(t, 2020, *res.created[0].PublicationYear)

	updated, err := svc.Update(ctx, 4, BookForm{Title: "Foo 2", Author: "Bar"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.ID)
	assert.Equal(t, 1, res.Calls("update"))
}

func TestBookService_UpdateFailure(t *testing.T) {
	res := newFakeBooks()
	res.err = errors.New("boom")
	svc := NewBookService(res)

	_, err := svc.Update(context.Background(), 4, BookForm{Title: "Foo", Author: "Bar"})
	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestBookService_Fetch(t *testing.T) {
	res := newFakeBooks()
	svc := NewBookService(res)

	_, err := svc.Fetch(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)

	res.record = &model.Book{ID: 1, Title: "Foo"}
	b, err := svc.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Foo", b.Title)
}
