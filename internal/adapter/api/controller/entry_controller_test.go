package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/domain/entry"
	"github.com/viamercantil/pos-interno/internal/domain/internaluser"
	"github.com/viamercantil/pos-interno/internal/domain/product"
	"github.com/viamercantil/pos-interno/pkg/auth"
)

// fakeEntryRepo é um repositório de entradas em memória
type fakeEntryRepo struct {
	byID      map[string]*entry.Entry
	createErr error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{byID: make(map[string]*entry.Entry)}
}

func (f *fakeEntryRepo) Create(_ context.Context, e *entry.Entry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEntryRepo) FindByID(_ context.Context, id string) (*entry.Entry, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, entry.ErrEntryNotFound
	}
	return e, nil
}

func (f *fakeEntryRepo) List(_ context.Context, _, _ int) ([]*entry.Entry, error) {
	result := make([]*entry.Entry, 0, len(f.byID))
	for _, e := range f.byID {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return entry.ErrEntryNotFound
	}
	delete(f.byID, id)
	return nil
}

func newEntryRouter(repo *fakeEntryRepo, actor *internaluser.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewEntryController(repo, nopLogger{})
	router := gin.New()
	if actor != nil {
		router.Use(func(c *gin.Context) {
			c.Set(auth.ContextUserKey, actor)
			c.Next()
		})
	}
	router.POST("/entries", ctrl.Create)
	router.DELETE("/entries/:id", ctrl.Delete)
	return router
}

func TestEntryCreate(t *testing.T) {
	repo := newFakeEntryRepo()
	actor := &internaluser.User{ID: "u1", Username: "carlos", IsActive: true}
	router := newEntryRouter(repo, actor)

	before := time.Now()
	w := doJSON(t, router, http.MethodPost, "/entries", map[string]interface{}{
		"product_id": "p1",
		"quantity":   12,
		"cost_price": 4.5,
		"sale_price": 7.9,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201: %s", w.Code, w.Body.String())
	}
	var got entry.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Sem data informada, a entrada recebe a data corrente
	if got.EntryDate.Before(before) {
		t.Fatalf("entry_date não foi preenchida: %v", got.EntryDate)
	}
	if got.CreatedBy != "u1" {
		t.Fatalf("created_by = %q, esperado o usuário autenticado", got.CreatedBy)
	}
	if _, ok := repo.byID[got.ID]; !ok {
		t.Fatal("entrada não foi persistida")
	}
}

func TestEntryCreateInvalidQuantity(t *testing.T) {
	router := newEntryRouter(newFakeEntryRepo(), nil)

	w := doJSON(t, router, http.MethodPost, "/entries", map[string]interface{}{
		"product_id": "p1",
		"quantity":   0,
		"cost_price": 4.5,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400: %s", w.Code, w.Body.String())
	}
}

func TestEntryCreateProductNotFound(t *testing.T) {
	repo := newFakeEntryRepo()
	repo.createErr = product.ErrProductNotFound
	router := newEntryRouter(repo, nil)

	w := doJSON(t, router, http.MethodPost, "/entries", map[string]interface{}{
		"product_id": "inexistente",
		"quantity":   3,
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404: %s", w.Code, w.Body.String())
	}
}

func TestEntryDeleteNotFound(t *testing.T) {
	router := newEntryRouter(newFakeEntryRepo(), nil)

	w := doJSON(t, router, http.MethodDelete, "/entries/inexistente", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", w.Code)
	}
}
