// Package app wires HTTP handlers onto a router.
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/judgekit/team-fixtures/app/categories"
)

func NewRouter(categoryHandler *categories.CategoryHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/categories", categoryHandler.HandleGetAll).Methods(http.MethodGet)
	r.HandleFunc("/categories", categoryHandler.HandleCreate).Methods(http.MethodPost)
	return r
}
