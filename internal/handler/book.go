package handler

import (
	"net/http"

	"github.com/biblioteca/biblioteca-admin/internal/model"
	"github.com/biblioteca/biblioteca-admin/internal/service"
)

// BookHandler handles the /libros pages.
type BookHandler struct {
	pages *resourcePages[model.Book, model.BookInput, service.BookForm]
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(svc *service.BookService, pages *Pages) *BookHandler {
	return &BookHandler{pages: &resourcePages[model.Book, model.BookInput, service.BookForm]{
		base:           "/libros",
		allParam:       "todos",
		filterParam:    "disponibles",
		msgs:           service.BookMessages,
		listTemplate:   "book_list",
		detailTemplate: "book_detail",
		formTemplate:   "book_form",
		listTitle:      "Libros",
		detailTitle:    "Detalle del libro",
		newTitle:       "Agregar Libro",
		editTitle:      "Editar Libro",
		editor:         svc.Editor,
		newList:        svc.NewListView,
		newDetail:      svc.NewDetailView,
		blankForm:      service.NewBookForm,
		formFrom:       service.BookFormFrom,
		parseForm:      parseBookForm,
		pages:          pages,
	}}
}

func parseBookForm(r *http.Request) service.BookForm {
	return service.BookForm{
		Title:     r.PostFormValue("titulo"),
		Author:    r.PostFormValue("autor"),
		ISBN:      r.PostFormValue("isbn"),
		Year:      r.PostFormValue("añoPublicacion"),
		Available: formBool(r, "disponible"),
	}
}

// HandleList handles GET /libros?filtro=todos|disponibles&q=term requests.
func (h *BookHandler) HandleList(w http.ResponseWriter, r *http.Request) { h.pages.list(w, r) }

// HandleDetail handles GET /libros/{id} requests.
func (h *BookHandler) HandleDetail(w http.ResponseWriter, r *http.Request) { h.pages.detail(w, r) }

// HandleNew handles GET /libros/nuevo requests.
func (h *BookHandler) HandleNew(w http.ResponseWriter, r *http.Request) { h.pages.newForm(w, r) }

// HandleCreate handles POST /libros/nuevo requests.
func (h *BookHandler) HandleCreate(w http.ResponseWriter, r *http.Request) { h.pages.create(w, r) }

// HandleEdit handles GET /libros/{id}/editar requests.
func (h *BookHandler) HandleEdit(w http.ResponseWriter, r *http.Request) { h.pages.edit(w, r) }

// HandleUpdate handles POST /libros/{id}/editar requests.
func (h *BookHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) { h.pages.update(w, r) }

// HandleDelete handles POST /libros/{id}/eliminar requests.
func (h *BookHandler) HandleDelete(w http.ResponseWriter, r *http.Request) { h.pages.remove(w, r) }
