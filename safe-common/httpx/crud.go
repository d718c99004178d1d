package httpx

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// CRUDService is the shape every entity service in SAFE-Rescue exposes.
// P is the partial-update payload: nil fields are left untouched.
type CRUDService[T any, P any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Save(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id int64, patch *P) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// CRUDHandler serves the five standard endpoints of one entity
type CRUDHandler[T any, P any] struct {
	svc    CRUDService[T, P]
	entity string
	logger *zap.Logger
}

func NewCRUDHandler[T any, P any](entity string, svc CRUDService[T, P], logger *zap.Logger) *CRUDHandler[T, P] {
	return &CRUDHandler[T, P]{svc: svc, entity: entity, logger: logger.With(zap.String("entity", entity))}
}

// Register mounts GET/POST on base and GET/PUT/DELETE on base/{id}
func (h *CRUDHandler[T, P]) Register(r *Router, base string) {
	r.Handle(http.MethodGet, base, h.FindAll)
	r.Handle(http.MethodPost, base, h.Create)
	r.Handle(http.MethodGet, base+"/{id:[0-9]+}", h.FindByID)
	r.Handle(http.MethodPut, base+"/{id:[0-9]+}", h.Update)
	r.Handle(http.MethodDelete, base+"/{id:[0-9]+}", h.Delete)
}

func (h *CRUDHandler[T, P]) FindAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FindAll(r.Context())
	if err != nil {
		WriteError(w, h.logger, "FindAll "+h.entity, err)
		return
	}
	WriteList(w, items)
}

func (h *CRUDHandler[T, P]) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		WriteError(w, h.logger, "FindByID "+h.entity, err)
		return
	}
	item, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		WriteError(w, h.logger, "FindByID "+h.entity, err)
		return
	}
	WriteOK(w, item)
}

func (h *CRUDHandler[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	var body *T
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, h.logger, "Create "+h.entity, err)
		return
	}
	created, err := h.svc.Save(r.Context(), body)
	if err != nil {
		WriteError(w, h.logger, "Create "+h.entity, err)
		return
	}
	WriteCreated(w, created)
}

func (h *CRUDHandler[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		WriteError(w, h.logger, "Update "+h.entity, err)
		return
	}
	var patch *P
	if err := ReadJSON(r, &patch); err != nil {
		WriteError(w, h.logger, "Update "+h.entity, err)
		return
	}
	updated, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		WriteError(w, h.logger, "Update "+h.entity, err)
		return
	}
	WriteOK(w, updated)
}

func (h *CRUDHandler[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "id")
	if err != nil {
		WriteError(w, h.logger, "Delete "+h.entity, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		WriteError(w, h.logger, "Delete "+h.entity, err)
		return
	}
	WriteNoContent(w)
}
