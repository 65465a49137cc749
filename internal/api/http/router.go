package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter mounts the API and serves uploaded images from uploadDir under /images.
func NewRouter(handler *Handler, uploadDir string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.PathPrefix("/images/").Handler(http.StripPrefix("/images/", http.FileServer(http.Dir(uploadDir)))).Methods("GET")

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "token"},
		ExposedHeaders: []string{"Content-Disposition"},
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("FoodiGO API starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
