package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/biblioteca/biblioteca-admin/internal/service"
	"github.com/biblioteca/biblioteca-admin/internal/session"
	"github.com/biblioteca/biblioteca-admin/internal/web"
)

// Values of the confirmar form field on delete requests.
const (
	confirmYes = "si"
	confirmNo  = "no"
)

// resourcePages describes one resource's pages.
type resourcePages[T any, I any, F service.Form[I]] struct {
	base        string // "/libros"
	allParam    string // filtro value selecting the full list
	filterParam string // filtro value selecting the filtered list
	msgs        service.Messages

	listTemplate   string
	detailTemplate string
	formTemplate   string
	listTitle      string
	detailTitle    string
	newTitle       string
	editTitle      string

	editor    *service.Editor[T, I]
	newList   func() *service.ListView[T, I]
	newDetail func() *service.DetailView[T, I]
	blankForm func() F
	formFrom  func(T) F
	parseForm func(r *http.Request) F

	pages *Pages
}

func (h *resourcePages[T, I, F]) detailPath(id int64) string {
	return fmt.Sprintf("%s/%d", h.base, id)
}

func (h *resourcePages[T, I, F]) deletePath(id int64) string {
	return fmt.Sprintf("%s/%d/eliminar", h.base, id)
}

// list handles GET {base}. The view is kept in the session so that later
// deletes from this page work on what the user saw. A page opened fresh is
// mounted; on an open view q runs a search and filtro switches the filter.
// A bare {base} reloads.
func (h *resourcePages[T, I, F]) list(w http.ResponseWriter, r *http.Request) {
	sess := sessionOf(r)
	q := r.URL.Query()
	filtered := q.Get("filtro") == h.filterParam
	term := q.Get("q")

	view, ok := sess.View(h.base).(*service.ListView[T, I])
	var err error
	switch {
	case !ok:
		view = h.newList()
		sess.SetView(h.base, view)
		err = view.Mount(r.Context(), filtered, term)
	case q.Has("q"):
		err = view.Search(r.Context(), term)
	case q.Has("filtro"):
		err = view.SetFilter(r.Context(), filtered)
	default:
		err = view.Mount(r.Context(), false, "")
	}
	if err != nil && !errors.Is(err, service.ErrSuperseded) {
		slog.Error("loading list", "path", h.base, "filtered", filtered, "error", err)
	}

	h.renderList(w, r, http.StatusOK, view, nil)
}

// listURL is the list page for the given filter. On an open view with that
// filter it issues no call.
func (h *resourcePages[T, I, F]) listURL(filtered bool) string {
	value := h.allParam
	if filtered {
		value = h.filterParam
	}
	return h.base + "?filtro=" + value
}

func (h *resourcePages[T, I, F]) renderList(w http.ResponseWriter, r *http.Request, status int, view *service.ListView[T, I], confirm *web.Confirm) {
	h.pages.render(w, r, status, h.listTemplate, h.listTitle, h.base, web.ListData[T]{
		ListSnapshot: view.Snapshot(),
		Msgs:         h.msgs,
		Confirm:      confirm,
	})
}

// detail handles GET {base}/{id}.
func (h *resourcePages[T, I, F]) detail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.pages.NotFound(w, r)
		return
	}

	view := h.newDetail()
	sessionOf(r).SetView(h.detailPath(id), view)

	if err := view.Load(r.Context(), id); err != nil && !errors.Is(err, service.ErrSuperseded) {
		slog.Error("loading record", "path", h.detailPath(id), "error", err)
	}

	h.renderDetail(w, r, view, nil)
}

func (h *resourcePages[T, I, F]) renderDetail(w http.ResponseWriter, r *http.Request, view *service.DetailView[T, I], confirm *web.Confirm) {
	snap := view.Snapshot()
	status := http.StatusOK
	if snap.State == service.DetailNotFound {
		status = http.StatusNotFound
	}

	h.pages.render(w, r, status, h.detailTemplate, h.detailTitle, h.detailPath(snap.ID), web.DetailData[T]{
		DetailSnapshot: snap,
		Msgs:           h.msgs,
		Confirm:        confirm,
	})
}

// remove handles POST {base}/{id}/eliminar. Without confirmar the
// originating view is shown again with a confirmation notice; "no" shows it
// unchanged; "si" issues the delete call. desde names the originating view:
// the list, or the record's detail page.
func (h *resourcePages[T, I, F]) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.pages.NotFound(w, r)
		return
	}

	answer := r.PostFormValue("confirmar")
	if r.PostFormValue("desde") == h.base {
		h.removeFromList(w, r, id, answer)
		return
	}
	h.removeFromDetail(w, r, id, answer)
}

func (h *resourcePages[T, I, F]) removeFromList(w http.ResponseWriter, r *http.Request, id int64, answer string) {
	sess := sessionOf(r)
	view, ok := sess.View(h.base).(*service.ListView[T, I])
	if !ok {
		// The list state is gone (expired session, or a page opened in
		// another tab replaced it).
		switch answer {
		case confirmYes:
			h.deleteAndRedirect(w, r, id)
		case confirmNo:
			http.Redirect(w, r, h.base, http.StatusSeeOther)
		default:
			view = h.newList()
			sess.SetView(h.base, view)
			if err := view.Mount(r.Context(), false, ""); err != nil && !errors.Is(err, service.ErrSuperseded) {
				slog.Error("loading list", "path", h.base, "error", err)
			}
			h.renderList(w, r, http.StatusOK, view, h.confirm(id, h.base))
		}
		return
	}

	switch answer {
	case confirmNo:
		h.renderList(w, r, http.StatusOK, view, nil)
	case confirmYes:
		if err := view.Delete(r.Context(), id, true); err != nil {
			slog.Error("deleting record", "path", h.detailPath(id), "error", err)
			sess.AddFlash(session.FlashError, h.msgs.DeleteFailed)
		} else {
			sess.AddFlash(session.FlashSuccess, h.msgs.Deleted)
		}
		http.Redirect(w, r, h.listURL(view.Filtered()), http.StatusSeeOther)
	default:
		h.renderList(w, r, http.StatusOK, view, h.confirm(id, h.base))
	}
}

func (h *resourcePages[T, I, F]) removeFromDetail(w http.ResponseWriter, r *http.Request, id int64, answer string) {
	sess := sessionOf(r)
	path := h.detailPath(id)
	view, ok := sess.View(path).(*service.DetailView[T, I])
	if !ok {
		switch answer {
		case confirmYes:
			h.deleteAndRedirect(w, r, id)
		case confirmNo:
			http.Redirect(w, r, path, http.StatusSeeOther)
		default:
			view = h.newDetail()
			sess.SetView(path, view)
			if err := view.Load(r.Context(), id); err != nil && !errors.Is(err, service.ErrSuperseded) {
				slog.Error("loading record", "path", path, "error", err)
			}
			var confirm *web.Confirm
			if view.Snapshot().State == service.DetailLoaded {
				confirm = h.confirm(id, path)
			}
			h.renderDetail(w, r, view, confirm)
		}
		return
	}

	switch answer {
	case confirmNo:
		h.renderDetail(w, r, view, nil)
	case confirmYes:
		deleted, err := view.Delete(r.Context(), true)
		if err != nil {
			slog.Error("deleting record", "path", path, "error", err)
			sess.AddFlash(session.FlashError, h.msgs.DeleteFailed)
			h.renderDetail(w, r, view, nil)
			return
		}
		if deleted {
			sess.AddFlash(session.FlashSuccess, h.msgs.Deleted)
		}
		http.Redirect(w, r, h.base, http.StatusSeeOther)
	default:
		h.renderDetail(w, r, view, h.confirm(id, path))
	}
}

// deleteAndRedirect deletes a record the user already confirmed but whose
// originating view no longer exists.
func (h *resourcePages[T, I, F]) deleteAndRedirect(w http.ResponseWriter, r *http.Request, id int64) {
	sess := sessionOf(r)
	if err := h.newList().Delete(r.Context(), id, true); err != nil {
		slog.Error("deleting record", "path", h.detailPath(id), "error", err)
		sess.AddFlash(session.FlashError, h.msgs.DeleteFailed)
	} else {
		sess.AddFlash(session.FlashSuccess, h.msgs.Deleted)
	}
	http.Redirect(w, r, h.base, http.StatusSeeOther)
}

func (h *resourcePages[T, I, F]) confirm(id int64, from string) *web.Confirm {
	return &web.Confirm{
		Action:  h.deletePath(id),
		From:    from,
		Message: h.msgs.ConfirmDelete,
	}
}

// newForm handles GET {base}/nuevo.
func (h *resourcePages[T, I, F]) newForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, h.base+"/nuevo", web.FormData[F]{
		Form:   h.blankForm(),
		Action: h.base + "/nuevo",
		Cancel: h.base,
	})
}

// create handles POST {base}/nuevo.
func (h *resourcePages[T, I, F]) create(w http.ResponseWriter, r *http.Request) {
	form := h.parseForm(r)
	data := web.FormData[F]{
		Form:   form,
		Action: h.base + "/nuevo",
		Cancel: h.base,
	}

	if _, err := h.editor.Create(r.Context(), form); err != nil {
		status := h.formFailure(&data, err, h.msgs.CreateFailed)
		h.renderForm(w, r, status, data.Action, data)
		return
	}

	sessionOf(r).AddFlash(session.FlashSuccess, h.msgs.Created)
	http.Redirect(w, r, h.base, http.StatusSeeOther)
}

// edit handles GET {base}/{id}/editar. The form is seeded from a fetch.
func (h *resourcePages[T, I, F]) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.pages.NotFound(w, r)
		return
	}

	data := web.FormData[F]{
		Action:  h.detailPath(id) + "/editar",
		Cancel:  h.detailPath(id),
		Editing: true,
	}

	record, err := h.editor.Fetch(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		data.LoadErr = h.msgs.NotFound
		h.renderForm(w, r, http.StatusNotFound, data.Action, data)
		return
	case err != nil:
		slog.Error("loading record for edit", "path", h.detailPath(id), "error", err)
		data.LoadErr = h.msgs.FormFailed
		h.renderForm(w, r, http.StatusOK, data.Action, data)
		return
	}

	data.Form = h.formFrom(*record)
	h.renderForm(w, r, http.StatusOK, data.Action, data)
}

// update handles POST {base}/{id}/editar.
func (h *resourcePages[T, I, F]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.pages.NotFound(w, r)
		return
	}

	form := h.parseForm(r)
	data := web.FormData[F]{
		Form:    form,
		Action:  h.detailPath(id) + "/editar",
		Cancel:  h.detailPath(id),
		Editing: true,
	}

	if _, err := h.editor.Update(r.Context(), id, form); err != nil {
		status := h.formFailure(&data, err, h.msgs.UpdateFailed)
		h.renderForm(w, r, status, data.Action, data)
		return
	}

	sessionOf(r).AddFlash(session.FlashSuccess, h.msgs.Updated)
	http.Redirect(w, r, h.detailPath(id), http.StatusSeeOther)
}

// formFailure fills data for a rejected submission and returns the status to
// render it with. The user's input is kept either way.
func (h *resourcePages[T, I, F]) formFailure(data *web.FormData[F], err error, failMsg string) int {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		data.Errors = ve.Fields
		data.Notice = ve.Message
		return http.StatusUnprocessableEntity
	}

	slog.Error("submitting form", "action", data.Action, "error", err)
	data.Notice = failMsg
	return http.StatusBadGateway
}

func (h *resourcePages[T, I, F]) renderForm(w http.ResponseWriter, r *http.Request, status int, path string, data web.FormData[F]) {
	title := h.newTitle
	if data.Editing {
		title = h.editTitle
	}
	h.pages.render(w, r, status, h.formTemplate, title, path, data)
}

// formBool reads a checkbox.
func formBool(r *http.Request, key string) bool {
	v := strings.ToLower(r.PostFormValue(key))
	return v == "true" || v == "on" || v == "1"
}
