package cats

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cats-api/internal/errs"
	"cats-api/internal/middleware"
	"cats-api/internal/platform/logger"
	"cats-api/internal/ports/auth"
	"cats-api/internal/validation"

	"github.com/go-chi/chi/v5"
)

type HandlerOptions struct {
	// AdminRole es el rol que puede modificar cualquier gato.
	AdminRole string
	Log       logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, opts HandlerOptions) {
	h := &handler{svc: svc, adminRole: opts.AdminRole, log: opts.Log}
	if h.log == nil {
		h.log = logger.Nop()
	}

	r.Route("/cats", func(cr chi.Router) {
		cr.Get("/", h.list)
		cr.Post("/", h.create)
		cr.Get("/{catID}", h.get)
		cr.Put("/{catID}", h.update)
		cr.Delete("/{catID}", h.delete)
	})

	r.Get("/users/{userID}/cats", h.listByOwner)

	// Mis gatos (dueño autenticado)
	r.Get("/me/cats", h.listMine)
}

type handler struct {
	svc       *Service
	adminRole string
	log       logger.Logger
}

type createCatRequest struct {
	Name      string   `json:"cat_name" validate:"required,min=2,max=100"`
	Weight    float64  `json:"weight" validate:"gt=0"`
	Filename  string   `json:"filename" validate:"required,max=255"`
	Birthdate string   `json:"birthdate" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Lat       *float64 `json:"lat" validate:"required,latitude"`
	Lng       *float64 `json:"lng" validate:"required,longitude"`
}

// updateCatRequest: punteros para update parcial, nil = no tocar.
// lat y lng viajan juntos porque forman un único POINT.
type updateCatRequest struct {
	Name      *string  `json:"cat_name" validate:"omitempty,min=2,max=100"`
	Weight    *float64 `json:"weight" validate:"omitempty,gt=0"`
	Filename  *string  `json:"filename" validate:"omitempty,min=1,max=255"`
	Birthdate *string  `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Lat       *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng       *float64 `json:"lng" validate:"omitempty,longitude"`
}

// catResponse es un gato con su dueño embebido.
type catResponse struct {
	CatID     int64   `json:"cat_id"`
	CatName   string  `json:"cat_name"`
	Weight    float64 `json:"weight"`
	Filename  string  `json:"filename"`
	Birthdate string  `json:"birthdate"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Owner     Owner   `json:"owner"`
}

type messageResponse struct {
	Message string `json:"message"`
	CatID   int64  `json:"cat_id,omitempty"`
}

// list godoc
// @Summary Listar gatos
// @Description Devuelve todos los gatos con su dueño. Si no hay ninguno responde 404 (no una lista vacía).
// @Tags cats
// @Produce json
// @Success 200 {array} catResponse
// @Failure 404 {object} errs.HTTPError "No cats found"
// @Router /api/v1/cats [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatResponses(items))
}

// get godoc
// @Summary Obtener un gato
// @Tags cats
// @Produce json
// @Param catID path int true "ID del gato"
// @Success 200 {object} catResponse
// @Failure 400 {object} errs.HTTPError "id inválido"
// @Failure 404 {object} errs.HTTPError "No cats found"
// @Router /api/v1/cats/{catID} [get]
func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "catID")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatResponse(c))
}

// create godoc
// @Summary Crear gato
// @Description Crea un gato cuyo dueño es el usuario autenticado. lat/lng se guardan como POINT.
// @Tags cats
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createCatRequest true "Datos del gato; birthdate en formato YYYY-MM-DD"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errs.HTTPError "validación / No cats added / dueño inexistente"
// @Failure 401 {object} errs.HTTPError "unauthorized"
// @Router /api/v1/cats [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	claims, err := requireClaims(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req createCatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, errs.NewBadRequestError("invalid json"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Filename = strings.TrimSpace(req.Filename)

	if err := validation.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	// ya validado por el tag datetime
	bd, _ := time.Parse(DateLayout, req.Birthdate)

	id, err := h.svc.Create(r.Context(), NewCat{
		Name:      req.Name,
		Weight:    req.Weight,
		OwnerID:   claims.UserID,
		Filename:  req.Filename,
		Birthdate: bd,
		Coords:    Coordinates{Lat: *req.Lat, Lng: *req.Lng},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Cat added", CatID: id})
}

// update godoc
// @Summary Actualizar gato (parcial)
// @Description Actualiza sólo los campos enviados. Un admin puede modificar cualquier gato; el resto sólo los suyos. Si no se afecta ninguna fila (id inexistente o no dueño) responde 400.
// @Tags cats
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param X-Debug-User-Role header string false "Solo en modo dev, rol (admin/user)"
// @Param Authorization header string false "Bearer token en producción"
// @Param catID path int true "ID del gato"
// @Param payload body updateCatRequest true "Campos a modificar"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errs.HTTPError "validación / No cats updated"
// @Failure 401 {object} errs.HTTPError "unauthorized"
// @Router /api/v1/cats/{catID} [put]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	claims, err := requireClaims(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := pathID(r, "catID")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req updateCatRequest
	if err := dec.Decode(&req); err != nil {
		h.fail(w, r, errs.NewBadRequestError("invalid json"))
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, patch, h.scope(claims)); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Cat updated"})
}

// delete godoc
// @Summary Borrar gato
// @Description Borra por id. Requiere usuario autenticado pero no filtra por dueño. 400 si no se borró ninguna fila.
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param catID path int true "ID del gato"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errs.HTTPError "No cats deleted"
// @Failure 401 {object} errs.HTTPError "unauthorized"
// @Router /api/v1/cats/{catID} [delete]
func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	claims, err := requireClaims(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	id, err := pathID(r, "catID")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log.Info("cat deleted by user", map[string]any{"cat_id": id, "user_id": claims.UserID})

	writeJSON(w, http.StatusOK, messageResponse{Message: "Cat deleted"})
}

// listByOwner godoc
// @Summary Listar gatos de un usuario
// @Tags cats
// @Produce json
// @Param userID path int true "ID del dueño"
// @Success 200 {array} catResponse
// @Failure 404 {object} errs.HTTPError "No cats found"
// @Router /api/v1/users/{userID}/cats [get]
func (h *handler) listByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeOwnerCats(w, r, ownerID)
}

// listMine godoc
// @Summary Listar mis gatos
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} catResponse
// @Failure 401 {object} errs.HTTPError "unauthorized"
// @Failure 404 {object} errs.HTTPError "No cats found"
// @Router /api/v1/me/cats [get]
func (h *handler) listMine(w http.ResponseWriter, r *http.Request) {
	claims, err := requireClaims(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeOwnerCats(w, r, claims.UserID)
}

func (h *handler) writeOwnerCats(w http.ResponseWriter, r *http.Request, ownerID int64) {
	items, err := h.svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatResponses(items))
}

func (h *handler) scope(c auth.Claims) Scope {
	return Scope{ActorID: c.UserID, Admin: c.IsAdmin(h.adminRole)}
}

// fail loguea sólo lo que termina en 500; los 4xx son respuestas normales.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errs.StatusOf(err) >= http.StatusInternalServerError {
		h.log.Error("cats request failed", map[string]any{
			"error":  err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}
	errs.Write(w, err)
}

func (req updateCatRequest) toPatch() (Patch, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	if err := validation.Struct(req); err != nil {
		return Patch{}, err
	}

	if (req.Lat == nil) != (req.Lng == nil) {
		field := "lat"
		if req.Lng == nil {
			field = "lng"
		}
		return Patch{}, errs.NewBadRequestError("Validation failed", errs.FieldError{
			Field: field,
			Error: "lat and lng must be sent together",
		})
	}

	p := Patch{
		Name:     req.Name,
		Weight:   req.Weight,
		Filename: req.Filename,
	}
	if req.Birthdate != nil {
		bd, _ := time.Parse(DateLayout, *req.Birthdate)
		p.Birthdate = &bd
	}
	if req.Lat != nil {
		p.Coords = &Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}
	return p, nil
}

func requireClaims(r *http.Request) (auth.Claims, error) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return auth.Claims{}, errs.NewUnauthorizedError("unauthorized")
	}
	return claims, nil
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError(param + " must be a positive integer")
	}
	return id, nil
}

func toCatResponse(c Cat) catResponse {
	return catResponse{
		CatID:     c.ID,
		CatName:   c.Name,
		Weight:    c.Weight,
		Filename:  c.Filename,
		Birthdate: c.Birthdate.Format(DateLayout),
		Lat:       c.Coords.Lat,
		Lng:       c.Coords.Lng,
		Owner:     c.Owner,
	}
}

func toCatResponses(items []Cat) []catResponse {
	out := make([]catResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCatResponse(c))
	}
	return out
}

// writeJSON está duplicado en handlers de distintos módulos (cats/users)
// para no crear un paquete de helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
