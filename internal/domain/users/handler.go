package users

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cats-api/internal/errs"
	"cats-api/internal/platform/logger"
	"cats-api/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	// rutas planas: /users/{userID}/cats la registra el módulo cats
	r.Get("/users", listUsersHandler(svc, log))
	r.Post("/users", createUserHandler(svc, log))
	r.Get("/users/{userID}", getUserHandler(svc, log))
}

// createUserRequest no acepta rol: el alta pública siempre crea "user".
// Los permisos de admin salen de los claims, no de esta tabla.
type createUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=100"`
}

type userResponse struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
}

type createUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {array} userResponse
// @Failure 404 {object} errs.HTTPError "No users found"
// @Router /api/v1/users [get]
func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			fail(w, log, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param userID path int true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 400 {object} errs.HTTPError "id inválido"
// @Failure 404 {object} errs.HTTPError "No users found"
// @Router /api/v1/users/{userID} [get]
func getUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
		if err != nil || id <= 0 {
			fail(w, log, errs.NewBadRequestError("userID must be a positive integer"))
			return
		}

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			fail(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Nombre del usuario; el rol siempre es user"
// @Success 201 {object} createUserResponse
// @Failure 400 {object} errs.HTTPError "validación"
// @Router /api/v1/users [post]
func createUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req createUserRequest
		if err := dec.Decode(&req); err != nil {
			fail(w, log, errs.NewBadRequestError("invalid json"))
			return
		}
		req.UserName = strings.TrimSpace(req.UserName)

		if err := validation.Struct(req); err != nil {
			fail(w, log, err)
			return
		}

		id, err := svc.Create(r.Context(), User{Name: req.UserName, Role: RoleUser})
		if err != nil {
			fail(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, createUserResponse{Message: "User added", UserID: id})
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{UserID: u.ID, UserName: u.Name, Role: u.Role}
}

func fail(w http.ResponseWriter, log logger.Logger, err error) {
	if errs.StatusOf(err) >= http.StatusInternalServerError {
		log.Error("users request failed", map[string]any{"error": err})
	}
	errs.Write(w, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
