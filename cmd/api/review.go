package main

import (
	"errors"
	"net/http"
	"strings"

	"conecta/internal/domain/reviews"
	"conecta/internal/infra/dbx"
)

var (
	errIncompleteReview = errors.New("Dados da avaliação estão incompletos.")
	errMissingPlaceID   = errors.New("O ID do local é obrigatório.")
)

type CreateReviewPayload struct {
	PoiID     reviews.PlaceID `json:"poiId" validate:"required,max=255" swaggertype:"string" example:"123456789"`
	PoiName   *string         `json:"poiName" validate:"omitempty,max=255"`
	UserEmail string          `json:"userEmail" validate:"required,max=255"`
	Rating    int             `json:"rating" validate:"required,min=1,max=5"`
	Review    *string         `json:"review"`
}

// createReviewHandler godoc
//
//	@Summary		Submit a review
//	@Description	Stores an accessibility review for a place. poiId may be sent as a string or a number.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateReviewPayload	true	"Review"
//	@Success		200		{object}	MessageResponse		"Review stored"
//	@Failure		400		{object}	ErrorResponse		"Incomplete review"
//	@Failure		500		{object}	ErrorResponse		"Internal Server Error"
//	@Router			/avaliar [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errIncompleteReview)
		return
	}

	review := &reviews.Review{
		PlaceID:   string(payload.PoiID),
		PlaceName: payload.PoiName,
		UserEmail: payload.UserEmail,
		Rating:    payload.Rating,
		Comment:   payload.Review,
	}

	if err := app.store.Reviews.CreateReview(r.Context(), review); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.messageResponse(w, http.StatusOK, "Avaliação registrada com sucesso!"); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getReviewsHandler godoc
//
//	@Summary		List reviews of a place
//	@Description	Newest first. Returns an empty list before any review was ever stored.
//	@Tags			reviews
//	@Produce		json
//	@Param			poiId	query		string	true	"Place id"
//	@Success		200		{array}		reviews.Listing
//	@Failure		400		{object}	ErrorResponse	"Missing poiId"
//	@Failure		500		{object}	ErrorResponse	"Internal Server Error"
//	@Router			/avaliacoes [get]
func (app *application) getReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID := strings.TrimSpace(r.URL.Query().Get("poiId"))
	if placeID == "" {
		app.badRequestResponse(w, r, errMissingPlaceID)
		return
	}

	list, err := app.store.Reviews.GetReviews(r.Context(), placeID)
	if err != nil {
		if !dbx.IsUndefinedTable(err) {
			app.internalServerError(w, r, err)
			return
		}
		// No review was ever written, so the table does not exist yet.
		list = []reviews.Listing{}
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getReviewStatsHandler godoc
//
//	@Summary		Review summary of a place
//	@Tags			reviews
//	@Produce		json
//	@Param			poiId	query		string	true	"Place id"
//	@Success		200		{object}	reviews.Stats
//	@Failure		400		{object}	ErrorResponse	"Missing poiId"
//	@Failure		500		{object}	ErrorResponse	"Internal Server Error"
//	@Router			/avaliacoes/resumo [get]
func (app *application) getReviewStatsHandler(w http.ResponseWriter, r *http.Request) {
	placeID := strings.TrimSpace(r.URL.Query().Get("poiId"))
	if placeID == "" {
		app.badRequestResponse(w, r, errMissingPlaceID)
		return
	}

	stats, err := app.store.Reviews.GetReviewStats(r.Context(), placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}
