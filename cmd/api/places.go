package main

import (
	"errors"
	"net/http"

	"conecta/internal/places"
)

var errUnknownCategory = errors.New("Categoria inválida.")

// getPlacesHandler godoc
//
//	@Summary		List places
//	@Description	Points of interest in Portão with wheelchair accessibility information, sorted by name.
//	@Tags			places
//	@Produce		json
//	@Param			categoria	query		string	false	"food, health, education, shop, service or default"
//	@Success		200			{array}		places.Place
//	@Failure		400			{object}	ErrorResponse	"Unknown category"
//	@Failure		502			{object}	ErrorResponse	"Geodata service unavailable"
//	@Router			/locais [get]
func (app *application) getPlacesHandler(w http.ResponseWriter, r *http.Request) {
	var category places.Category
	if raw := r.URL.Query().Get("categoria"); raw != "" {
		c, ok := places.ParseCategory(raw)
		if !ok {
			app.badRequestResponse(w, r, errUnknownCategory)
			return
		}
		category = c
	}

	list, err := app.places.List(r.Context(), category)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}
