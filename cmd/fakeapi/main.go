// Command fakeapi serves an in-memory library service for local development.
// Point API_BASE_URL at it: API_BASE_URL=http://localhost:8080/api
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/biblioteca/biblioteca-admin/internal/fakeapi"
	"github.com/biblioteca/biblioteca-admin/internal/middleware"
	"github.com/biblioteca/biblioteca-admin/internal/model"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Bool("seed", true, "start with sample records")
	flag.Parse()

	api := fakeapi.New()
	if *seed {
		seedData(api)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Mount("/api", api)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("fake library service listening", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func seedData(api *fakeapi.Server) {
	year := func(y int) *int { return &y }

	api.AddBook(model.Book{Title: "Cien años de soledad", Author: "Gabriel García Márquez", ISBN: "978-0307474728", PublicationYear: year(1967), Available: true})
	api.AddBook(model.Book{Title: "Rayuela", Author: "Julio Cortázar", ISBN: "978-8437604572", PublicationYear: year(1963), Available: false})
	api.AddBook(model.Book{Title: "Ficciones", Author: "Jorge Luis Borges", PublicationYear: year(1944), Available: true})

	api.AddUser(model.User{Name: "Ana Pérez", Email: "ana@example.com", Phone: "555-0101", Active: true})
	api.AddUser(model.User{Name: "Luis Gómez", Email: "luis@example.com", Active: false})
}
