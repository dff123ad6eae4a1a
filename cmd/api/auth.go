package main

import (
	"errors"
	"net/http"

	"conecta/internal/domain/users"
	"conecta/internal/mailer"
)

var (
	errSignupFields  = errors.New("Todos os campos são obrigatórios.")
	errLoginFields   = errors.New("Email and senha são obrigatórios.")
	errUserNotFound  = errors.New("Usuário não encontrado.")
	errWrongPassword = errors.New("Senha incorreta.")
	errLongPassword  = errors.New("A senha deve ter no máximo 72 bytes.")
)

// bcrypt ignores input past this length, so longer secrets are refused.
const maxPasswordBytes = 72

type RegisterUserPayload struct {
	Nome  string `json:"nome" validate:"required,max=255"`
	Email string `json:"email" validate:"required,max=255"`
	Senha string `json:"senha" validate:"required"`
}

// registerUserHandler godoc
//
//	@Summary		Sign up
//	@Description	Registers a user. No user object is returned; the client logs in afterwards.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterUserPayload	true	"User"
//	@Success		200		{object}	MessageResponse		"User registered"
//	@Failure		400		{object}	ErrorResponse		"Missing fields or password over 72 bytes"
//	@Failure		500		{object}	ErrorResponse		"Duplicate email or storage error"
//	@Router			/cadastrar [post]
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errSignupFields)
		return
	}

	if len(payload.Senha) > maxPasswordBytes {
		app.badRequestResponse(w, r, errLongPassword)
		return
	}

	user := &users.User{
		Name:  payload.Nome,
		Email: payload.Email,
	}
	// hash the user password.
	if err := user.Password.Set(payload.Senha); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// Duplicate emails are reported as 500 with the store message.
	if err := app.store.Users.Create(r.Context(), user); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.sendWelcomeEmail(user)

	if err := app.messageResponse(w, http.StatusOK, "Usuário cadastrado com sucesso!"); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) sendWelcomeEmail(user *users.User) {
	if app.mailer == nil {
		return
	}

	vars := struct {
		Username string
		MapURL   string
	}{
		Username: user.Name,
		MapURL:   app.config.mapURL,
	}

	name, email := user.Name, user.Email
	app.background(func() {
		if err := app.mailer.Send(mailer.UserWelcomeTemplate, name, email, vars); err != nil {
			app.logger.Errorw("error sending welcome email", "email", email, "error", err)
			return
		}
		app.logger.Infow("welcome email sent", "email", email)
	})
}

type LoginPayload struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// loginHandler godoc
//
//	@Summary		Log in
//	@Description	Checks the credentials and returns the user without its secret. No token or cookie is issued.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginPayload	true	"Credentials"
//	@Success		200		{object}	users.Public	"User"
//	@Failure		400		{object}	ErrorResponse	"Missing fields"
//	@Failure		401		{object}	ErrorResponse	"Wrong password"
//	@Failure		404		{object}	ErrorResponse	"User not found"
//	@Failure		500		{object}	ErrorResponse	"Internal Server Error"
//	@Router			/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, errLoginFields)
		return
	}

	user, err := app.store.Users.GetByEmail(r.Context(), payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			app.notFoundResponse(w, r, errUserNotFound)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := user.Password.Compare(payload.Senha); err != nil {
		switch {
		case errors.Is(err, users.ErrPasswordMismatch):
			app.unauthorizedErrorResponse(w, r, errWrongPassword)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, user.Public()); err != nil {
		app.internalServerError(w, r, err)
	}
}
