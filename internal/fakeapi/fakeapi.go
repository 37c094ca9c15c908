// Package fakeapi is an in-memory stand-in for the library REST service. It
// backs the tests of the API client and the pages, and cmd/fakeapi serves it
// for local development.
package fakeapi

import (
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Call records one request received by the fake.
type Call struct {
	Method string
	Route  string
	Path   string
	Body   string
}

// Server implements the /libros and /usuarios contract in memory.
type Server struct {
	mu     sync.Mutex
	books  map[int64]model.Book
	users  map[int64]model.User
	nextID int64
	calls  []Call
	fail   map[string]int
	router chi.Router
}

// New creates an empty Server.
func New() *Server {
	s := &Server{
		books:  make(map[int64]model.Book),
		users:  make(map[int64]model.User),
		nextID: 1,
		fail:   make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/libros", s.route("GET /libros", s.listBooks(func(model.Book) bool { return true })))
	r.Get("/libros/disponibles", s.route("GET /libros/disponibles", s.listBooks(func(b model.Book) bool { return b.Available })))
	r.Get("/libros/buscar/titulo/{term}", s.route("GET /libros/buscar/titulo", s.searchBooks(func(b model.Book) string { return b.Title })))
	r.Get("/libros/buscar/autor/{term}", s.route("GET /libros/buscar/autor", s.searchBooks(func(b model.Book) string { return b.Author })))
	r.Get("/libros/{id}", s.route("GET /libros/{id}", s.getBook))
	r.Post("/libros", s.route("POST /libros", s.createBook))
	r.Put("/libros/{id}", s.route("PUT /libros/{id}", s.updateBook))
	r.Delete("/libros/{id}", s.route("DELETE /libros/{id}", s.deleteBook))

	r.Get("/usuarios", s.route("GET /usuarios", s.listUsers(func(model.User) bool { return true })))
	r.Get("/usuarios/activos", s.route("GET /usuarios/activos", s.listUsers(func(u model.User) bool { return u.Active })))
	r.Get("/usuarios/buscar/nombre/{term}", s.route("GET /usuarios/buscar/nombre", s.searchUsers(func(u model.User) string { return u.Name })))
	r.Get("/usuarios/buscar/email/{term}", s.route("GET /usuarios/buscar/email", s.searchUsers(func(u model.User) string { return u.Email })))
	r.Get("/usuarios/{id}", s.route("GET /usuarios/{id}", s.getUser))
	r.Post("/usuarios", s.route("POST /usuarios", s.createUser))
	r.Put("/usuarios/{id}", s.route("PUT /usuarios/{id}", s.updateUser))
	r.Delete("/usuarios/{id}", s.route("DELETE /usuarios/{id}", s.deleteUser))

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// AddBook stores b with a fresh identifier and returns it.
func (s *Server) AddBook(b model.Book) model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID
	s.nextID++
	s.books[b.ID] = b
	return b
}

// AddUser stores u with a fresh identifier and returns it.
func (s *Server) AddUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.users[u.ID] = u
	return u
}

// Book returns the stored book with the given id.
func (s *Server) Book(id int64) (model.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	return b, ok
}

// User returns the stored user with the given id.
func (s *Server) User(id int64) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// FailRoute makes every subsequent request to route answer with status.
// Route uses the "METHOD /pattern" form of Call.Route.
func (s *Server) FailRoute(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[route] = status
}

// Calls returns a copy of every recorded request.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsTo returns the recorded requests for route.
func (s *Server) CallsTo(route string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Route == route {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets the recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *Server) route(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.calls = append(s.calls, Call{Method: r.Method, Route: name, Path: r.URL.EscapedPath(), Body: string(body)})
		status, failing := s.fail[name]
		s.mu.Unlock()

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "content type must be application/json", http.StatusUnsupportedMediaType)
			return
		}
		if failing {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next(w, r)
	}
}

func (s *Server) listBooks(keep func(model.Book) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		out := make([]model.Book, 0, len(s.books))
		for _, b := range s.books {
			if keep(b) {
				out = append(out, b)
			}
		}
		s.mu.Unlock()
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) searchBooks(field func(model.Book) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.ToLower(pathParam(r, "term"))
		s.listBooks(func(b model.Book) bool {
			return strings.Contains(strings.ToLower(field(b)), term)
		})(w, r)
	}
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	b, found := s.Book(id)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	var in model.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b := applyBook(model.Book{CreatedAt: &model.Timestamp{Time: time.Now().UTC().Truncate(time.Second)}}, in)
	writeJSON(w, http.StatusOK, s.AddBook(b))
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var in model.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	b, found := s.books[id]
	if found {
		b = applyBook(b, in)
		s.books[id] = b
	}
	s.mu.Unlock()

	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.books[id]
	delete(s.books, id)
	s.mu.Unlock()

	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listUsers(keep func(model.User) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		out := make([]model.User, 0, len(s.users))
		for _, u := range s.users {
			if keep(u) {
				out = append(out, u)
			}
		}
		s.mu.Unlock()
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) searchUsers(field func(model.User) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.ToLower(pathParam(r, "term"))
		s.listUsers(func(u model.User) bool {
			return strings.Contains(strings.ToLower(field(u)), term)
		})(w, r)
	}
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	u, found := s.User(id)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in model.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u := applyUser(model.User{CreatedAt: &model.Timestamp{Time: time.Now().UTC().Truncate(time.Second)}}, in)
	writeJSON(w, http.StatusOK, s.AddUser(u))
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var in model.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	u, found := s.users[id]
	if found {
		u = applyUser(u, in)
		s.users[id] = u
	}
	s.mu.Unlock()

	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.users[id]
	delete(s.users, id)
	s.mu.Unlock()

	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func applyBook(b model.Book, in model.BookInput) model.Book {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.ISBN != nil {
		b.ISBN = *in.ISBN
	}
	if in.PublicationYear != nil {
		year := *in.PublicationYear
		b.PublicationYear = &year
	}
	if in.Available != nil {
		b.Available = *in.Available
	}
	return b
}

func applyUser(u model.User, in model.UserInput) model.User {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	return u
}

func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
