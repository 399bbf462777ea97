package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/access"
	"github.com/TemirB/address-lookup/internal/application/service"
	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/observability"
	"github.com/TemirB/address-lookup/internal/upstream"
)

type searchEnd struct {
	Summaries []domain.AddressSummary `json:"Summaries"`
}

type lookupResponse struct {
	SearchEnd searchEnd `json:"SearchEnd"`
}

func lookupEnvelope(s []domain.AddressSummary) lookupResponse {
	if s == nil {
		s = []domain.AddressSummary{}
	}
	return lookupResponse{SearchEnd: searchEnd{Summaries: s}}
}

type suggestionsResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

type submittedAddress struct {
	ID            string            `json:"Id"`
	Type          domain.SourceType `json:"Type"`
	StreetAddress string            `json:"StreetAddress"`
	Town          string            `json:"Town"`
	Postcode      string            `json:"Postcode"`
	Address       string            `json:"Address"`
	CreatedAt     time.Time         `json:"CreatedAt"`
}

type submitResponse struct {
	Message string           `json:"message"`
	Address submittedAddress `json:"address"`
}

// emptySubmit is the submit envelope with nothing filled in.
var emptySubmit = struct {
	Message string   `json:"message"`
	Address struct{} `json:"address"`
}{}

func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func (s *Server) record(r *http.Request, endpoint string, err error) {
	if s.deps.Usage == nil {
		return
	}
	status := domain.UsageSuccess
	if err != nil {
		status = domain.UsageError
	}
	s.deps.Usage.Record(access.IdentityFrom(r.Context()), endpoint, status)
}

func (s *Server) lookupPostcode(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, lookupEnvelope(nil))

	summaries, st, err := s.deps.Lookup.LookupPostcode(r.Context(), pathParam(r, "postcode"))
	writeLookupTimings(w, st)
	s.record(r, domain.EndpointPostcodeLookup, err)

	if err != nil {
		status := upstream.StatusCode(err)
		if errors.Is(err, service.ErrEmptyPostcode) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, lookupEnvelope(nil))
		return
	}
	writeJSON(w, http.StatusOK, lookupEnvelope(summaries))
}

func writeLookupTimings(w http.ResponseWriter, st service.LookupStats) {
	observability.AppendServerTiming(w,
		observability.Timing{Name: "resolve", Ms: st.ResolveMs, Desc: string(st.Source)},
		observability.Timing{Name: "places", Ms: st.PlacesMs, Desc: string(st.PlacesSource)},
		observability.Timing{Name: "db", Ms: st.DBMs},
	)
	if st.Source != "" {
		w.Header().Set("X-Source", string(st.Source))
	}
	observability.SetIfPos(w, "X-Resolve-Time", st.ResolveMs)
	observability.SetIfPos(w, "X-Places-Time", st.PlacesMs)
	observability.SetIfPos(w, "X-DB-Time", st.DBMs)
}

func (s *Server) suggest(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, suggestionsResponse{Suggestions: []domain.Suggestion{}})

	out := s.deps.Lookup.Suggest(r.Context(), pathParam(r, "partial"))
	if out == nil {
		out = []domain.Suggestion{}
	}
	s.record(r, domain.EndpointSuggestions, nil)
	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: out})
}

func (s *Server) submitResidential(w http.ResponseWriter, r *http.Request) {
	defer s.recoverTo(w, r, emptySubmit)

	var in service.ResidentialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.logger.Warn("Error while decoding JSON", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	submittedBy := ""
	if id := access.IdentityFrom(r.Context()); id != nil {
		submittedBy = id.ID
	}

	addr, err := s.deps.Lookup.SubmitResidential(r.Context(), in, submittedBy)
	s.record(r, domain.EndpointResidential, err)
	switch {
	case errors.Is(err, service.ErrInvalidAddress):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to save address")
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Message: "Residential address added successfully",
		Address: submittedAddress{
			ID:            addr.ID,
			Type:          domain.SourceResidential,
			StreetAddress: addr.StreetAddress,
			Town:          addr.Town,
			Postcode:      addr.Postcode,
			Address:       addr.FullAddress,
			CreatedAt:     addr.CreatedAt,
		},
	})
}
