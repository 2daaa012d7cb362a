package server

import (
	"github.com/gorilla/mux"
	"net/http"
	"wheelmarket/internal/model"
)

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMw, s.corsMw, s.maxBytesMw, s.identityMw)

	api := r.PathPrefix("/api").Subrouter()

	// Bikes and scooters share one schema and one set of handlers, the kind
	// discriminator is bound per subrouter.
	for _, kind := range []model.VehicleKind{model.KindBike, model.KindScooter} {
		listingAPI := api.PathPrefix("/" + string(kind) + "s").Subrouter()
		listingAPI.HandleFunc("", s.listingList(kind)).Methods(http.MethodGet)
		listingAPI.HandleFunc("", s.listingCreate(kind)).Methods(http.MethodPost)
		listingAPI.HandleFunc("/stats/overview", s.listingStats(kind)).Methods(http.MethodGet)
		listingAPI.HandleFunc("/type/{engineType}", s.listingListByType(kind)).Methods(http.MethodGet)
		listingAPI.HandleFunc("/price-range/{min}/{max}", s.listingListByPriceRange(kind)).Methods(http.MethodGet)
		listingAPI.HandleFunc("/{listingID}", s.listingGetOne(kind)).Methods(http.MethodGet)
		listingAPI.HandleFunc("/{listingID}", s.listingUpdate(kind)).Methods(http.MethodPut)
		listingAPI.HandleFunc("/{listingID}", s.listingDelete(kind)).Methods(http.MethodDelete)
		listingAPI.HandleFunc("/{listingID}/sold", s.listingMarkSold(kind)).Methods(http.MethodPatch)
	}

	serviceAPI := api.PathPrefix("/services").Subrouter()
	serviceAPI.HandleFunc("", s.serviceRequestCreate()).Methods(http.MethodPost)
	serviceAPI.HandleFunc("", s.serviceRequestList()).Methods(http.MethodGet)
	serviceAPI.HandleFunc("/loan/emi", s.loanEMIQuote()).Methods(http.MethodGet)
	serviceAPI.HandleFunc("/{requestID}", s.serviceRequestGetOne()).Methods(http.MethodGet)

	api.HandleFunc("/feedback", s.feedbackCreate()).Methods(http.MethodPost)
	api.HandleFunc("/feedback", s.feedbackList()).Methods(http.MethodGet)
	api.HandleFunc("/contact", s.contactCreate()).Methods(http.MethodPost)
	api.HandleFunc("/contact", s.contactList()).Methods(http.MethodGet)

	api.PathPrefix("").Handler(http.NotFoundHandler())

	return r
}
