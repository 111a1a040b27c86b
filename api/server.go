// Package api - Thin HTTP layer over the pricing resolver
// The API is only responsible for input parsing, resolver orchestration,
// and output serialization. It never performs cost logic.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"pricecalc/core/catalog"
	"pricecalc/core/pricing"
	"pricecalc/core/session"
	"pricecalc/core/types"
	"pricecalc/internal/errors"
	"pricecalc/internal/logging"
)

// Server is the API server
type Server struct {
	resolver *pricing.Resolver
	mux      *http.ServeMux
	version  string
	logger   *zap.Logger
}

// NewServer creates a new API server
func NewServer(version string, resolver *pricing.Resolver) *Server {
	s := &Server{
		resolver: resolver,
		mux:      http.NewServeMux(),
		version:  version,
		logger:   logging.Logger,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("POST /estimate/batch", s.handleBatchEstimate)
	s.mux.HandleFunc("GET /ec2/price", s.handleInstancePrice)
	s.mux.HandleFunc("GET /ec2/specs", s.handleInstanceSpecs)
	s.mux.HandleFunc("GET /ec2/instances", s.handleInstanceTypes)
	s.mux.HandleFunc("GET /ebs/price", s.handleVolumePrice)

	// Supporting endpoints
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /services", s.handleServices)
	s.mux.HandleFunc("GET /options", s.handleOptions)
	s.mux.HandleFunc("GET /pricing/{serviceCode}", s.handleProducts)
	s.mux.HandleFunc("GET /connectivity", s.handleConnectivity)
	s.mux.HandleFunc("POST /connectivity/force", s.handleForceConnectivity)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Service == "" {
		s.writeError(w, "VALIDATION_ERROR", "service is required", http.StatusBadRequest)
		return
	}

	quote, err := s.resolver.EstimatePrice(types.ServiceKind(req.Service), req.Params)
	if err != nil {
		s.writeResolverError(w, err)
		return
	}

	s.writeJSON(w, EstimateResponse{Label: req.Label, Quote: quote}, http.StatusOK)
}

// handleBatchEstimate handles POST /estimate/batch
func (s *Server) handleBatchEstimate(w http.ResponseWriter, r *http.Request) {
	var req BatchEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Resources) == 0 {
		s.writeError(w, "VALIDATION_ERROR", "resources is required", http.StatusBadRequest)
		return
	}

	list := session.NewList()
	for i, res := range req.Resources {
		if res.Service == "" {
			s.writeError(w, "VALIDATION_ERROR", "resources[].service is required", http.StatusBadRequest)
			return
		}
		quote, err := s.resolver.EstimatePrice(types.ServiceKind(res.Service), res.Params)
		if err != nil {
			s.writeResolverError(w, err)
			return
		}
		label := res.Label
		if label == "" {
			label = strings.ToLower(res.Service) + "-" + strconv.Itoa(i+1)
		}
		list.Add(label, quote)
	}

	s.writeJSON(w, BatchEstimateResponse{
		Resources: list.Resources(),
		TotalCost: list.Total().String(),
	}, http.StatusOK)
}

// handleInstancePrice handles GET /ec2/price
func (s *Server) handleInstancePrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	instanceType := q.Get("type")
	if instanceType == "" {
		s.writeError(w, "VALIDATION_ERROR", "type query parameter is required", http.StatusBadRequest)
		return
	}
	region := q.Get("region")
	if region == "" {
		region = "us-east-1"
	}
	os := q.Get("os")
	if os == "" {
		os = "Linux"
	}

	record, err := s.resolver.ResolveInstancePrice(r.Context(), instanceType, region, os)
	if err != nil {
		s.writeResolverError(w, err)
		return
	}

	s.writeJSON(w, InstancePriceResponse{Record: record}, http.StatusOK)
}

// handleVolumePrice handles GET /ebs/price
func (s *Server) handleVolumePrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	volumeType := q.Get("type")
	if volumeType == "" {
		s.writeError(w, "VALIDATION_ERROR", "type query parameter is required", http.StatusBadRequest)
		return
	}
	region := q.Get("region")
	if region == "" {
		region = "us-east-1"
	}

	record, err := s.resolver.ResolveVolumePrice(r.Context(), volumeType, region)
	if err != nil {
		s.writeResolverError(w, err)
		return
	}

	s.writeJSON(w, VolumePriceResponse{Record: record}, http.StatusOK)
}

// handleInstanceSpecs handles GET /ec2/specs
func (s *Server) handleInstanceSpecs(w http.ResponseWriter, r *http.Request) {
	instanceType := r.URL.Query().Get("type")
	if instanceType == "" {
		s.writeError(w, "VALIDATION_ERROR", "type query parameter is required", http.StatusBadRequest)
		return
	}

	spec, err := s.resolver.ResolveInstanceSpecs(r.Context(), instanceType)
	if err != nil {
		s.writeResolverError(w, err)
		return
	}

	s.writeJSON(w, InstanceSpecResponse{Spec: spec}, http.StatusOK)
}

// handleInstanceTypes handles GET /ec2/instances
func (s *Server) handleInstanceTypes(w http.ResponseWriter, r *http.Request) {
	instanceTypes, err := s.resolver.ListInstanceTypes(r.Context())
	if err != nil {
		s.writeResolverError(w, err)
		return
	}

	s.writeJSON(w, InstanceTypesResponse{
		InstanceTypes: instanceTypes,
		Count:         len(instanceTypes),
	}, http.StatusOK)
}

// handleProducts handles GET /pricing/{serviceCode}
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	serviceCode := r.PathValue("serviceCode")

	var filters []types.PricingFilter
	for field, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		filters = append(filters, types.PricingFilter{Field: field, Value: values[0]})
	}

	products, err := s.resolver.Products(r.Context(), serviceCode, filters)
	if err != nil {
		s.writeResolverError(w, err)
		return
	}

	s.writeJSON(w, ProductsResponse{
		ServiceCode: serviceCode,
		Products:    products,
		Count:       len(products),
	}, http.StatusOK)
}

// handleIndex handles GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"name":    "pricecalc",
		"version": s.version,
		"endpoints": []string{
			"POST /estimate",
			"POST /estimate/batch",
			"GET /ec2/price",
			"GET /ec2/specs",
			"GET /ec2/instances",
			"GET /ebs/price",
			"GET /pricing/{serviceCode}",
			"GET /services",
			"GET /options",
			"GET /connectivity",
			"POST /connectivity/force",
			"GET /health",
		},
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleServices handles GET /services
func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	kinds := s.resolver.Services()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	s.writeJSON(w, map[string]interface{}{
		"services": names,
		"count":    len(names),
	}, http.StatusOK)
}

// handleOptions handles GET /options with the catalog's selectable
// dimensions for building estimate requests
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"regions":               catalog.Regions(),
		"operating_systems":     catalog.OperatingSystems(),
		"storage_classes":       catalog.StorageClasses(),
		"volume_types":          catalog.VolumeTypes(),
		"cache_node_types":      catalog.CacheNodeTypes(),
		"search_instance_types": catalog.SearchInstanceTypes(),
	}, http.StatusOK)
}

// handleConnectivity handles GET /connectivity
func (s *Server) handleConnectivity(w http.ResponseWriter, r *http.Request) {
	monitor := s.resolver.Monitor()
	s.writeJSON(w, ConnectivityResponse{
		State:  monitor.State().String(),
		Forced: monitor.Forced(),
	}, http.StatusOK)
}

// handleForceConnectivity handles POST /connectivity/force
func (s *Server) handleForceConnectivity(w http.ResponseWriter, r *http.Request) {
	var req ForceConnectivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	monitor := s.resolver.Monitor()
	switch req.Mode {
	case "online":
		monitor.ForceOnline()
	case "offline":
		monitor.ForceOffline()
	case "auto":
		monitor.Reset()
	default:
		s.writeError(w, "VALIDATION_ERROR", "mode must be online, offline, or auto", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, ConnectivityResponse{
		State:  monitor.State().String(),
		Forced: monitor.Forced(),
	}, http.StatusOK)
}

func (s *Server) writeResolverError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"

	switch {
	case errors.IsType(err, errors.TypeInput):
		status = http.StatusBadRequest
		code = "VALIDATION_ERROR"
	case errors.IsType(err, errors.TypeNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	case errors.IsType(err, errors.TypeNotSupported):
		status = http.StatusBadRequest
		code = "NOT_SUPPORTED"
	case errors.IsType(err, errors.TypeNetwork):
		status = http.StatusBadGateway
		code = "UPSTREAM_ERROR"
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeError(w, code, err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
