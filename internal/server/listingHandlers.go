package server

import (
	"encoding/json"
	"github.com/gorilla/mux"
	"io"
	"net/http"
	"strconv"
	"wheelmarket/internal/misc"
	"wheelmarket/internal/model"
)

func (s Server) listingList(kind model.VehicleKind) http.HandlerFunc {
	type response struct {
		Listings   []model.Listing `json:"listings"`
		Pagination pagination      `json:"pagination"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		q := parseListingQuery(kind, r.URL.Query())
		ls, total, err := s.DB.ListingFind(r.Context(), q)
		if err != nil {
			s.Logger.Errorf("listingList: Error finding Listings with query: %+v, err: %v", q, err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusOK, "listings retrieved", response{
			Listings:   ls,
			Pagination: newPagination(q.Page, q.Limit, total),
		})
	}
}

func (s Server) listingListByType(kind model.VehicleKind) http.HandlerFunc {
	type response struct {
		Listings   []model.Listing `json:"listings"`
		Pagination pagination      `json:"pagination"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		engineType := mux.Vars(r)["engineType"]
		if !model.ValidEngineType(engineType) {
			s.Logger.Debugf("listingListByType: Invalid engine type: %s", engineType)
			s.writeClientError(w, http.StatusBadRequest, "engine type must be Petrol or Electric")
			return
		}
		q := parseListingQuery(kind, r.URL.Query())
		q.EngineType = engineType
		ls, total, err := s.DB.ListingFind(r.Context(), q)
		if err != nil {
			s.Logger.Errorf("listingListByType: Error finding Listings with query: %+v, err: %v", q, err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusOK, "listings retrieved", response{
			Listings:   ls,
			Pagination: newPagination(q.Page, q.Limit, total),
		})
	}
}

func (s Server) listingListByPriceRange(kind model.VehicleKind) http.HandlerFunc {
	type response struct {
		Listings   []model.Listing `json:"listings"`
		Pagination pagination      `json:"pagination"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		min, minErr := strconv.Atoi(vars["min"])
		max, maxErr := strconv.Atoi(vars["max"])
		if minErr != nil || maxErr != nil {
			s.Logger.Debugf("listingListByPriceRange: Non-numeric bounds: %s, %s", vars["min"], vars["max"])
			s.writeClientError(w, http.StatusBadRequest, "price bounds must be numeric")
			return
		}
		if min < 0 || max < 0 {
			s.writeClientError(w, http.StatusBadRequest, "price bounds must not be negative")
			return
		}
		if min > max {
			s.writeClientError(w, http.StatusBadRequest, "minimum price must not exceed maximum price")
			return
		}

		q := parseListingQuery(kind, r.URL.Query())
		q.MinPrice = &min
		q.MaxPrice = &max
		ls, total, err := s.DB.ListingFind(r.Context(), q)
		if err != nil {
			s.Logger.Errorf("listingListByPriceRange: Error finding Listings with query: %+v, err: %v", q, err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusOK, "listings retrieved", response{
			Listings:   ls,
			Pagination: newPagination(q.Page, q.Limit, total),
		})
	}
}

func (s Server) listingGetOne(kind model.VehicleKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := mux.Vars(r)["listingID"]
		// Every detail fetch counts as a view.
		l, err := s.DB.ListingFindOneAndIncrementViewCount(r.Context(), kind, listingID)
		if err != nil {
			s.writeLookupError(w, "listingGetOne", "listing", listingID, err)
			return
		}
		s.writeData(w, http.StatusOK, "listing retrieved", l)
	}
}

func (s Server) listingCreate(kind model.VehicleKind) http.HandlerFunc {
	type request struct {
		model.Listing
		SellerName  string `json:"seller_name"`
		SellerEmail string `json:"seller_email"`
		SellerPhone string `json:"seller_phone"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("listingCreate: Error decoding JSON, err: %v", err)
			s.writeClientError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		l := req.Listing
		l.Kind = kind

		// Top-level convenience fields win only where the structured seller
		// object is silent, then a signed-in identity, then the anonymous
		// defaults from Normalize.
		if l.Seller.Name == "" {
			l.Seller.Name = req.SellerName
		}
		if l.Seller.Email == "" {
			l.Seller.Email = req.SellerEmail
		}
		if l.Seller.Phone == "" {
			l.Seller.Phone = req.SellerPhone
		}
		identity := getIdentityContext(r.Context())
		if !identity.Guest {
			if l.Seller.Name == "" {
				l.Seller.Name = identity.Name
			}
			if l.Seller.Email == "" {
				l.Seller.Email = identity.Email
			}
		}

		l.Normalize()
		if errs := l.Validate(); len(errs) > 0 {
			s.Logger.Debugf("listingCreate: Validation failed for Listing: %s, errors: %v", misc.StringLimit(l.Name, 45), errs)
			s.writeClientError(w, http.StatusBadRequest, "listing validation failed", errs...)
			return
		}

		id, err := s.DB.ListingInsert(r.Context(), l)
		if err != nil {
			s.Logger.Errorf("listingCreate: Error inserting Listing, err: %v", err)
			s.writeServerError(w)
			return
		}
		created, err := s.DB.ListingFindOne(r.Context(), kind, id)
		if err != nil {
			s.Logger.Errorf("listingCreate: Error reading back created Listing with ID: %s, err: %v", id, err)
			s.writeServerError(w)
			return
		}
		s.writeData(w, http.StatusCreated, "listing created", created)
	}
}

// mergeListingUpdate decodes an update body over a copy of the stored record,
// giving partial-update semantics: absent fields keep their current values.
// Identity and system-managed fields can never be changed by the caller.
func mergeListingUpdate(existing model.Listing, body io.Reader) (model.Listing, error) {
	updated := existing
	if err := json.NewDecoder(body).Decode(&updated); err != nil {
		return existing, err
	}
	updated.ID = existing.ID
	updated.Kind = existing.Kind
	updated.ViewCount = existing.ViewCount
	updated.CreatedAt = existing.CreatedAt
	return updated, nil
}

func (s Server) listingUpdate(kind model.VehicleKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := mux.Vars(r)["listingID"]
		existing, err := s.DB.ListingFindOne(r.Context(), kind, listingID)
		if err != nil {
			s.writeLookupError(w, "listingUpdate", "listing", listingID, err)
			return
		}

		updated, err := mergeListingUpdate(existing, r.Body)
		if err != nil {
			s.Logger.Debugf("listingUpdate: Error decoding JSON, err: %v", err)
			s.writeClientError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updated.Normalize()
		if errs := updated.Validate(); len(errs) > 0 {
			s.Logger.Debugf("listingUpdate: Validation failed for Listing with ID: %s, errors: %v", listingID, errs)
			s.writeClientError(w, http.StatusBadRequest, "listing validation failed", errs...)
			return
		}

		l, err := s.DB.ListingReplace(r.Context(), kind, listingID, updated)
		if err != nil {
			s.writeLookupError(w, "listingUpdate", "listing", listingID, err)
			return
		}
		s.writeData(w, http.StatusOK, "listing updated", l)
	}
}

func (s Server) listingDelete(kind model.VehicleKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := mux.Vars(r)["listingID"]
		if err := s.DB.ListingSoftDelete(r.Context(), kind, listingID); err != nil {
			s.writeLookupError(w, "listingDelete", "listing", listingID, err)
			return
		}
		s.writeData(w, http.StatusOK, "listing deleted", nil)
	}
}

func (s Server) listingMarkSold(kind model.VehicleKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := mux.Vars(r)["listingID"]
		l, err := s.DB.ListingMarkSold(r.Context(), kind, listingID)
		if err != nil {
			s.writeLookupError(w, "listingMarkSold", "listing", listingID, err)
			return
		}
		s.writeData(w, http.StatusOK, "listing marked as sold", l)
	}
}
