package server

import (
	"encoding/json"
	"net/http"
	"wheelmarket/internal/model"
)

func (s Server) feedbackCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := model.Feedback{}
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			s.Logger.Debugf("feedbackCreate: Error decoding JSON, err: %v", err)
			s.writeClientError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if errs := f.Validate(); len(errs) > 0 {
			s.Logger.Debugf("feedbackCreate: Validation failed, errors: %v", errs)
			s.writeClientError(w, http.StatusBadRequest, "feedback validation failed", errs...)
			return
		}

		if _, err := s.DB.FeedbackInsert(r.Context(), f); err != nil {
			s.Logger.Errorf("feedbackCreate: Error inserting Feedback, err: %v", err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusCreated, "feedback submitted", nil)
	}
}

func (s Server) feedbackList() http.HandlerFunc {
	type response struct {
		Feedback   []model.Feedback `json:"feedback"`
		Pagination pagination       `json:"pagination"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageAndLimit(r.URL.Query())
		fs, total, err := s.DB.FeedbackFind(r.Context(), page, limit)
		if err != nil {
			s.Logger.Errorf("feedbackList: Error finding Feedback, err: %v", err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusOK, "feedback retrieved", response{
			Feedback:   fs,
			Pagination: newPagination(page, limit, total),
		})
	}
}

func (s Server) contactCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cm := model.ContactMessage{}
		if err := json.NewDecoder(r.Body).Decode(&cm); err != nil {
			s.Logger.Debugf("contactCreate: Error decoding JSON, err: %v", err)
			s.writeClientError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if errs := cm.Validate(); len(errs) > 0 {
			s.Logger.Debugf("contactCreate: Validation failed, errors: %v", errs)
			s.writeClientError(w, http.StatusBadRequest, "contact message validation failed", errs...)
			return
		}

		if _, err := s.DB.ContactMessageInsert(r.Context(), cm); err != nil {
			s.Logger.Errorf("contactCreate: Error inserting ContactMessage, err: %v", err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusCreated, "message received", nil)
	}
}

func (s Server) contactList() http.HandlerFunc {
	type response struct {
		Messages   []model.ContactMessage `json:"messages"`
		Pagination pagination             `json:"pagination"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageAndLimit(r.URL.Query())
		cms, total, err := s.DB.ContactMessageFind(r.Context(), page, limit)
		if err != nil {
			s.Logger.Errorf("contactList: Error finding ContactMessages, err: %v", err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusOK, "messages retrieved", response{
			Messages:   cms,
			Pagination: newPagination(page, limit, total),
		})
	}
}
