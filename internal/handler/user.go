package handler

import (
	"net/http"

	"github.com/biblioteca/biblioteca-admin/internal/model"
	"github.com/biblioteca/biblioteca-admin/internal/service"
)

// UserHandler handles the /usuarios pages.
type UserHandler struct {
	pages *resourcePages[model.User, model.UserInput, service.UserForm]
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, pages *Pages) *UserHandler {
	return &UserHandler{pages: &resourcePages[model.User, model.UserInput, service.UserForm]{
		base:           "/usuarios",
		allParam:       "todos",
		filterParam:    "activos",
		msgs:           service.UserMessages,
		listTemplate:   "user_list",
		detailTemplate: "user_detail",
		formTemplate:   "user_form",
		listTitle:      "Usuarios",
		detailTitle:    "Detalle del usuario",
		newTitle:       "Agregar Usuario",
		editTitle:      "Editar Usuario",
		editor:         svc.Editor,
		newList:        svc.NewListView,
		newDetail:      svc.NewDetailView,
		blankForm:      service.NewUserForm,
		formFrom:       service.UserFormFrom,
		parseForm:      parseUserForm,
		pages:          pages,
	}}
}

func parseUserForm(r *http.Request) service.UserForm {
	return service.UserForm{
		Name:   r.PostFormValue("nombre"),
		Email:  r.PostFormValue("email"),
		Phone:  r.PostFormValue("telefono"),
		Active: formBool(r, "activo"),
	}
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request)   { h.pages.list(w, r) }
func (h *UserHandler) HandleDetail(w http.ResponseWriter, r *http.Request) { h.pages.detail(w, r) }
func (h *UserHandler) HandleNew(w http.ResponseWriter, r *http.Request)    { h.pages.newForm(w, r) }
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) { h.pages.create(w, r) }
func (h *UserHandler) HandleEdit(w http.ResponseWriter, r *http.Request)   { h.pages.edit(w, r) }
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) { h.pages.update(w, r) }
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) { h.pages.remove(w, r) }
