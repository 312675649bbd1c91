package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	campaignendpoint "github.com/marketflowhq/marketflow/internal/endpoint"
	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/service"
)

// NewHTTPHandler creates an HTTP handler for the campaign endpoints
func NewHTTPHandler(endpoints campaignendpoint.CampaignEndpoints) http.Handler {
	r := mux.NewRouter()

	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(encodeError),
	}

	submitBriefHandler := httptransport.NewServer(
		endpoints.SubmitBriefEndpoint,
		decodeSubmitBriefRequest,
		encodeSubmitBriefResponse,
		options...,
	)

	listCampaignsHandler := httptransport.NewServer(
		endpoints.ListCampaignsEndpoint,
		decodeListCampaignsRequest,
		encodeResponse,
		options...,
	)

	viewCampaignHandler := httptransport.NewServer(
		endpoints.ViewCampaignEndpoint,
		decodeCampaignIDRequest(func(id string) any { return campaignendpoint.ViewCampaignRequest{CampaignID: id} }),
		encodeCampaignResponse,
		options...,
	)

	deleteCampaignHandler := httptransport.NewServer(
		endpoints.DeleteCampaignEndpoint,
		decodeCampaignIDRequest(func(id string) any { return campaignendpoint.DeleteCampaignRequest{CampaignID: id} }),
		encodeNoContentResponse,
		options...,
	)

	generateVisualsHandler := httptransport.NewServer(
		endpoints.GenerateVisualsEndpoint,
		decodeCampaignIDRequest(func(id string) any { return campaignendpoint.GenerateVisualsRequest{CampaignID: id} }),
		encodeCampaignResponse,
		options...,
	)

	agentStatusHandler := httptransport.NewServer(
		endpoints.AgentStatusEndpoint,
		decodeAgentStatusRequest,
		encodeResponse,
		options...,
	)

	r.Handle("/v1/campaigns", submitBriefHandler).Methods("POST")
	r.Handle("/v1/campaigns", listCampaignsHandler).Methods("GET")
	r.Handle("/v1/campaigns/{id}", viewCampaignHandler).Methods("GET")
	r.Handle("/v1/campaigns/{id}", deleteCampaignHandler).Methods("DELETE")
	r.Handle("/v1/campaigns/{id}/visuals", generateVisualsHandler).Methods("POST")
	r.Handle("/v1/agents", agentStatusHandler).Methods("GET")

	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}

func decodeSubmitBriefRequest(_ context.Context, r *http.Request) (any, error) {
	var brief models.BriefRequest
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		return nil, models.NewValidationError("invalid request body")
	}
	return campaignendpoint.SubmitBriefRequest{Brief: brief}, nil
}

func decodeListCampaignsRequest(_ context.Context, r *http.Request) (any, error) {
	includeSamples := true
	if raw := r.URL.Query().Get("samples"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, models.NewValidationError("samples must be a boolean")
		}
		includeSamples = parsed
	}
	return campaignendpoint.ListCampaignsRequest{IncludeSamples: includeSamples}, nil
}

// decodeCampaignIDRequest builds a decoder for routes keyed by the {id} path
// variable.
func decodeCampaignIDRequest(build func(id string) any) httptransport.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (any, error) {
		vars := mux.Vars(r)
		id, ok := vars["id"]
		if !ok || id == "" {
			return nil, models.NewValidationError("campaign id is required")
		}
		return build(id), nil
	}
}

func decodeAgentStatusRequest(_ context.Context, _ *http.Request) (any, error) {
	return campaignendpoint.AgentStatusRequest{}, nil
}

func encodeResponse(_ context.Context, w http.ResponseWriter, response any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(response)
}

func encodeSubmitBriefResponse(ctx context.Context, w http.ResponseWriter, response any) error {
	resp := response.(campaignendpoint.SubmitBriefResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(service.SubmitBriefResult{
		Campaign:     resp.Campaign,
		SavedAsDraft: resp.SavedAsDraft,
	})
}

// encodeCampaignResponse handles both view and visuals responses: a single
// campaign body, or a mapped error.
func encodeCampaignResponse(ctx context.Context, w http.ResponseWriter, response any) error {
	var (
		campaign *models.Campaign
		respErr  error
	)
	switch resp := response.(type) {
	case campaignendpoint.ViewCampaignResponse:
		campaign, respErr = resp.Campaign, resp.Err
	case campaignendpoint.GenerateVisualsResponse:
		campaign, respErr = resp.Campaign, resp.Err
	}

	if respErr != nil {
		encodeError(ctx, respErr, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(campaign)
}

func encodeNoContentResponse(_ context.Context, w http.ResponseWriter, _ any) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// encodeError maps service errors to HTTP status codes
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")

	var status int
	switch {
	case models.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrCampaignNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrGenerationInFlight):
		status = http.StatusConflict
	case errors.Is(err, service.ErrAgentFailure):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.NewErrorResponse(err.Error()))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "marketflow",
		"version": "1.0.0",
	})
}
