package service

import (
	"strings"

	"github.com/biblioteca/biblioteca-admin/internal/model"
	"github.com/biblioteca/biblioteca-admin/internal/validator"
)

const (
	MsgNameEmailRequired = "Nombre y email son obligatorios"
	MsgInvalidEmail      = "Ingrese un email válido"
)

// UserForm mirrors the editable user fields.
type UserForm struct {
	Name   string
	Email  string
	Phone  string
	Active bool
}

// NewUserForm returns the blank create form; new users start active.
func NewUserForm() UserForm {
	return UserForm{Active: true}
}

// UserFormFrom seeds an edit form from a fetched user.
func UserFormFrom(u model.User) UserForm {
	return UserForm{
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Active: u.Active,
	}
}

// Validate checks presence first, then the address pattern.
func (f UserForm) Validate() error {
	v := validator.New()
	v.Check(validator.NotBlank(f.Name), "nombre", MsgNameEmailRequired)
	v.Check(validator.NotBlank(f.Email), "email", MsgNameEmailRequired)
	if v.Valid() {
		v.Check(validator.Matches(strings.TrimSpace(f.Email), validator.EmailRX), "email", MsgInvalidEmail)
	}
	return validationError(v)
}

// Input builds the payload, leaving out a blank phone.
func (f UserForm) Input() model.UserInput {
	name := strings.TrimSpace(f.Name)
	email := strings.TrimSpace(f.Email)
	active := f.Active

	in := model.UserInput{
		Name:   &name,
		Email:  &email,
		Active: &active,
	}
	if phone := strings.TrimSpace(f.Phone); phone != "" {
		in.Phone = &phone
	}
	return in
}

// UserService bundles the user views and the form editor.
type UserService struct {
	*Editor[model.User, model.UserInput]
	res Resource[model.User, model.UserInput]
}

// NewUserService creates a new UserService.
func NewUserService(res Resource[model.User, model.UserInput]) *UserService {
	return &UserService{Editor: NewEditor(res), res: res}
}

// NewListView returns a fresh user list view searching by name.
func (s *UserService) NewListView() *ListView[model.User, model.UserInput] {
	return NewListView(s.res, model.UserID, SearchName, UserMessages)
}

// NewDetailView returns a fresh user detail view.
func (s *UserService) NewDetailView() *DetailView[model.User, model.UserInput] {
	return NewDetailView(s.res, UserMessages)
}
