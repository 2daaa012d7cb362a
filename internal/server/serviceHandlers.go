package server

import (
	"encoding/json"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
	"wheelmarket/internal/model"
)

func (s Server) serviceRequestCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sr := model.ServiceRequest{}
		if err := json.NewDecoder(r.Body).Decode(&sr); err != nil {
			s.Logger.Debugf("serviceRequestCreate: Error decoding JSON, err: %v", err)
			s.writeClientError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sr.Reference = uuid.NewString()
		sr.Normalize()
		if errs := sr.Validate(); len(errs) > 0 {
			s.Logger.Debugf("serviceRequestCreate: Validation failed, errors: %v", errs)
			s.writeClientError(w, http.StatusBadRequest, "service request validation failed", errs...)
			return
		}

		id, err := s.DB.ServiceRequestInsert(r.Context(), sr)
		if err != nil {
			s.Logger.Errorf("serviceRequestCreate: Error inserting ServiceRequest, err: %v", err)
			s.writeServerError(w)
			return
		}
		created, err := s.DB.ServiceRequestFindOne(r.Context(), id)
		if err != nil {
			s.Logger.Errorf("serviceRequestCreate: Error reading back ServiceRequest with ID: %s, err: %v", id, err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusCreated, "service request submitted", created)
	}
}

func (s Server) serviceRequestList() http.HandlerFunc {
	type response struct {
		Requests   []model.ServiceRequest `json:"requests"`
		Pagination pagination             `json:"pagination"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		page, limit := pageAndLimit(values)
		var serviceType, status string
		if t := values.Get("type"); model.ValidServiceType(t) {
			serviceType = t
		}
		if st := values.Get("status"); model.ValidServiceStatus(st) {
			status = st
		}

		srs, total, err := s.DB.ServiceRequestFind(r.Context(), serviceType, status, page, limit)
		if err != nil {
			s.Logger.Errorf("serviceRequestList: Error finding ServiceRequests, err: %v", err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusOK, "service requests retrieved", response{
			Requests:   srs,
			Pagination: newPagination(page, limit, total),
		})
	}
}

func (s Server) serviceRequestGetOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := mux.Vars(r)["requestID"]
		sr, err := s.DB.ServiceRequestFindOne(r.Context(), requestID)
		if err != nil {
			s.writeLookupError(w, "serviceRequestGetOne", "service request", requestID, err)
			return
		}
		s.writeData(w, http.StatusOK, "service request retrieved", sr)
	}
}

func (s Server) loanEMIQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		amount, err := strconv.Atoi(values.Get("amount"))
		if err != nil {
			s.writeClientError(w, http.StatusBadRequest, "amount must be a whole number of rupees")
			return
		}
		rate, err := strconv.ParseFloat(values.Get("rate"), 64)
		if err != nil {
			s.writeClientError(w, http.StatusBadRequest, "rate must be an annual percentage")
			return
		}
		months, err := strconv.Atoi(values.Get("months"))
		if err != nil {
			s.writeClientError(w, http.StatusBadRequest, "months must be a whole number")
			return
		}

		quote, err := model.CalculateLoanQuote(amount, rate, months)
		if err != nil {
			s.Logger.Debugf("loanEMIQuote: Invalid loan parameters, err: %v", err)
			s.writeClientError(w, http.StatusBadRequest, "invalid loan parameters", err.Error())
			return
		}
		s.writeData(w, http.StatusOK, "loan quote computed", quote)
	}
}
