package server

import (
	"encoding/json"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"net/http"
)

// envelope is the uniform response shape: message plus either data (success)
// or errors (client error).
type envelope struct {
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func (s Server) writeJsonResponse(w http.ResponseWriter, response any, statusCode int) {
	if resp, err := json.Marshal(response); err != nil {
		s.Logger.Errorf("Error encoding response: %+v, err: %v", response, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	} else {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(statusCode)
		if _, err = w.Write(resp); err != nil {
			s.Logger.Errorf("Error writing JSON response: %s, err: %v", resp, err)
		}
	}
}

func (s Server) writeData(w http.ResponseWriter, statusCode int, message string, data any) {
	s.writeJsonResponse(w, envelope{Message: message, Data: data}, statusCode)
}

func (s Server) writeClientError(w http.ResponseWriter, statusCode int, message string, errs ...string) {
	s.writeJsonResponse(w, envelope{Message: message, Errors: errs}, statusCode)
}

func (s Server) writeServerError(w http.ResponseWriter) {
	s.writeJsonResponse(w, envelope{Message: "internal server error"}, http.StatusInternalServerError)
}

// writeLookupError classifies a single-record lookup failure: a malformed id
// is the caller's fault (400), a well-formed id with no record is 404,
// anything else is a store failure (500).
func (s Server) writeLookupError(w http.ResponseWriter, op string, resource string, id string, err error) {
	if errors.Is(err, primitive.ErrInvalidHex) {
		s.Logger.Debugf("%s: Malformed %s ID: %s, err: %v", op, resource, id, err)
		s.writeClientError(w, http.StatusBadRequest, "invalid "+resource+" ID")
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		s.Logger.Debugf("%s: No %s found with ID: %s", op, resource, id)
		s.writeClientError(w, http.StatusNotFound, resource+" not found")
		return
	}
	s.Logger.Errorf("%s: Error finding %s with ID: %s, err: %v", op, resource, id, err)
	s.writeServerError(w)
}
