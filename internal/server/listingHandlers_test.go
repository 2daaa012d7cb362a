package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"wheelmarket/internal/model"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type nopLogger struct{}

func (nopLogger) Debug(...any)          {}
func (nopLogger) Info(...any)           {}
func (nopLogger) Error(...any)          {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

func testServer() Server {
	return Server{Logger: nopLogger{}, Identity: GuestResolver{}}
}

func TestListingListByPriceRangeRejectsBadBounds(t *testing.T) {
	s := testServer()
	h := s.listingListByPriceRange(model.KindBike)

	do := func(min, max string) (*httptest.ResponseRecorder, envelope) {
		r := httptest.NewRequest(http.MethodGet, "/api/bikes/price-range/"+min+"/"+max, nil)
		r = mux.SetURLVars(r, map[string]string{"min": min, "max": max})
		w := httptest.NewRecorder()
		h(w, r)
		var e envelope
		_ = json.Unmarshal(w.Body.Bytes(), &e)
		return w, e
	}

	t.Run("min greater than max", func(t *testing.T) {
		w, e := do("50000", "20000")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "minimum price must not exceed maximum price", e.Message)
	})

	t.Run("negative bound", func(t *testing.T) {
		w, _ := do("-1", "20000")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric bound", func(t *testing.T) {
		w, e := do("cheap", "20000")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "price bounds must be numeric", e.Message)
	})
}

func TestListingListByTypeRejectsUnknownEngineType(t *testing.T) {
	s := testServer()
	h := s.listingListByType(model.KindScooter)

	r := httptest.NewRequest(http.MethodGet, "/api/scooters/type/Diesel", nil)
	r = mux.SetURLVars(r, map[string]string{"engineType": "Diesel"})
	w := httptest.NewRecorder()
	h(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWriteLookupErrorClassification(t *testing.T) {
	s := testServer()

	do := func(err error) (*httptest.ResponseRecorder, envelope) {
		w := httptest.NewRecorder()
		s.writeLookupError(w, "test", "listing", "someid", err)
		var e envelope
		_ = json.Unmarshal(w.Body.Bytes(), &e)
		return w, e
	}

	t.Run("malformed id is a client error", func(t *testing.T) {
		w, e := do(errors.Wrap(primitive.ErrInvalidHex, "error creating ObjectID from hex: nope"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid listing ID", e.Message)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		w, e := do(errors.Wrap(mongo.ErrNoDocuments, "error finding Listing"))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "listing not found", e.Message)
	})

	t.Run("anything else is a server error", func(t *testing.T) {
		w, _ := do(errors.New("connection reset"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEnvelopeShape(t *testing.T) {
	s := testServer()

	t.Run("success carries message and data", func(t *testing.T) {
		w := httptest.NewRecorder()
		s.writeData(w, http.StatusOK, "ok", map[string]int{"n": 1})
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"ok","data":{"n":1}}`, w.Body.String())
	})

	t.Run("client error carries messages list", func(t *testing.T) {
		w := httptest.NewRecorder()
		s.writeClientError(w, http.StatusBadRequest, "validation failed", "name is required")
		assert.JSONEq(t, `{"message":"validation failed","errors":["name is required"]}`, w.Body.String())
	})
}

func TestMergeListingUpdate(t *testing.T) {
	existing := model.Listing{
		ID:           primitive.NewObjectID(),
		Kind:         model.KindBike,
		Name:         "Pulsar 150",
		Brand:        "Bajaj",
		PresentPrice: 85000,
		ViewCount:    42,
		CreatedAt:    primitive.NewDateTimeFromTime(time.Unix(1700000000, 0)),
	}

	t.Run("immutable fields survive a hostile body", func(t *testing.T) {
		body := strings.NewReader(`{
			"id": "ffffffffffffffffffffffff",
			"kind": "scooter",
			"view_count": 9999,
			"created_at": 0,
			"name": "Pulsar 220"
		}`)
		updated, err := mergeListingUpdate(existing, body)
		assert.NoError(t, err)
		assert.Equal(t, existing.ID, updated.ID)
		assert.Equal(t, model.KindBike, updated.Kind)
		assert.Equal(t, 42, updated.ViewCount)
		assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "Pulsar 220", updated.Name)
	})

	t.Run("absent fields keep their stored values", func(t *testing.T) {
		updated, err := mergeListingUpdate(existing, strings.NewReader(`{"present_price": 79000}`))
		assert.NoError(t, err)
		assert.Equal(t, 79000, updated.PresentPrice)
		assert.Equal(t, "Pulsar 150", updated.Name)
		assert.Equal(t, "Bajaj", updated.Brand)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		_, err := mergeListingUpdate(existing, strings.NewReader(`{"name":`))
		assert.Error(t, err)
	})
}

func TestGuestResolver(t *testing.T) {
	id := GuestResolver{}.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, id.Guest)
	assert.Equal(t, "Guest", id.Name)
}
