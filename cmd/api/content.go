package main

import (
	"errors"
	"net/http"
	"strconv"

	"conecta/internal/content"
)

var errInvalidDate = errors.New("Mês ou ano inválido.")

// getEventsHandler godoc
//
//	@Summary		List inclusive events
//	@Description	Without filters every event is returned, sorted by date.
//	@Tags			content
//	@Produce		json
//	@Param			mes	query		int	false	"Month (1-12)"
//	@Param			ano	query		int	false	"Year"
//	@Success		200	{array}		content.Event
//	@Failure		400	{object}	ErrorResponse	"Invalid filter"
//	@Router			/eventos [get]
func (app *application) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	var filter content.EventFilter

	q := r.URL.Query()
	if s := q.Get("mes"); s != "" {
		month, err := strconv.Atoi(s)
		if err != nil {
			app.badRequestResponse(w, r, errInvalidDate)
			return
		}
		filter.Month = month
	}
	if s := q.Get("ano"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil || year < 1 {
			app.badRequestResponse(w, r, errInvalidDate)
			return
		}
		filter.Year = year
	}

	events, err := app.calendar.List(filter)
	if err != nil {
		if errors.Is(err, content.ErrInvalidFilter) {
			app.badRequestResponse(w, r, errInvalidDate)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, events); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getDocumentsHandler godoc
//
//	@Summary	List research documents
//	@Tags		content
//	@Produce	json
//	@Success	200	{array}	content.Document
//	@Router		/documentos [get]
func (app *application) getDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, content.Documents()); err != nil {
		app.internalServerError(w, r, err)
	}
}
