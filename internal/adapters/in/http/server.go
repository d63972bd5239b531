// Package http exposes the application's use cases over a REST API built on
// echo. Handlers stay thin: they bind and map payloads, while validation
// lives in the command and query constructors.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/commands"
	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/queries"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler        commands.CreateDeliveryCommandHandler
	updateStatusHandler          commands.UpdateStatusCommandHandler
	assignPartnerHandler         commands.AssignPartnerCommandHandler
	syncDeliveryHandler          commands.SyncDeliveryCommandHandler
	bulkSyncHandler              commands.BulkSyncCommandHandler
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler
	setPartnerShiftHandler       commands.SetPartnerShiftCommandHandler

	// Query handlers
	getNearbyPartnersHandler     queries.GetNearbyPartnersQueryHandler
	getPartnerStatisticsHandler  queries.GetPartnerStatisticsQueryHandler
	getDeliveryStatisticsHandler queries.GetDeliveryStatisticsQueryHandler
	getUnsyncedDeliveriesHandler queries.GetUnsyncedDeliveriesQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query
// handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	syncDeliveryHandler commands.SyncDeliveryCommandHandler,
	bulkSyncHandler commands.BulkSyncCommandHandler,
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler,
	setPartnerShiftHandler commands.SetPartnerShiftCommandHandler,
	getNearbyPartnersHandler queries.GetNearbyPartnersQueryHandler,
	getPartnerStatisticsHandler queries.GetPartnerStatisticsQueryHandler,
	getDeliveryStatisticsHandler queries.GetDeliveryStatisticsQueryHandler,
	getUnsyncedDeliveriesHandler queries.GetUnsyncedDeliveriesQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:        createDeliveryHandler,
		updateStatusHandler:          updateStatusHandler,
		assignPartnerHandler:         assignPartnerHandler,
		syncDeliveryHandler:          syncDeliveryHandler,
		bulkSyncHandler:              bulkSyncHandler,
		updatePartnerLocationHandler: updatePartnerLocationHandler,
		setPartnerShiftHandler:       setPartnerShiftHandler,
		getNearbyPartnersHandler:     getNearbyPartnersHandler,
		getPartnerStatisticsHandler:  getPartnerStatisticsHandler,
		getDeliveryStatisticsHandler: getDeliveryStatisticsHandler,
		getUnsyncedDeliveriesHandler: getUnsyncedDeliveriesHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/statistics", s.GetDeliveryStatistics)
	api.GET("/deliveries/unsynced", s.GetUnsyncedDeliveries)
	api.POST("/deliveries/sync", s.SyncDelivery)
	api.POST("/deliveries/bulk-sync", s.BulkSyncDeliveries)
	api.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.POST("/deliveries/:id/assign", s.AssignPartner)

	api.GET("/partners/nearby", s.GetNearbyPartners)
	api.PUT("/partners/:id/location", s.UpdatePartnerLocation)
	api.POST("/partners/:id/online", s.PartnerGoOnline)
	api.POST("/partners/:id/offline", s.PartnerGoOffline)
	api.GET("/partners/:id/statistics", s.GetPartnerStatistics)
}

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DeliveryResponse is the wire representation of a delivery job.
type DeliveryResponse struct {
	ID                   string           `json:"id"`
	CustomerID           string           `json:"customer_id"`
	PartnerID            *string          `json:"partner_id"`
	PickupAddress        string           `json:"pickup_address"`
	DropoffAddress       string           `json:"dropoff_address"`
	PickupLat            *decimal.Decimal `json:"pickup_lat"`
	PickupLng            *decimal.Decimal `json:"pickup_lng"`
	DropoffLat           *decimal.Decimal `json:"dropoff_lat"`
	DropoffLng           *decimal.Decimal `json:"dropoff_lng"`
	CustomerName         string           `json:"customer_name"`
	CustomerPhone        string           `json:"customer_phone"`
	DeliveryNotes        string           `json:"delivery_notes,omitempty"`
	Status               string           `json:"status"`
	EstimatedDistanceKm  *decimal.Decimal `json:"estimated_distance_km"`
	EstimatedDurationMin *int             `json:"estimated_duration_min"`
	ActualDistanceKm     *decimal.Decimal `json:"actual_distance_km"`
	ActualDurationMin    *int             `json:"actual_duration_min"`
	IsSynced             bool             `json:"is_synced"`
	LocalID              string           `json:"local_id,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// CreateDeliveryRequest is the payload for registering a new delivery.
type CreateDeliveryRequest struct {
	CustomerID     string           `json:"customer_id"`
	PickupAddress  string           `json:"pickup_address"`
	DropoffAddress string           `json:"dropoff_address"`
	PickupLat      *decimal.Decimal `json:"pickup_lat"`
	PickupLng      *decimal.Decimal `json:"pickup_lng"`
	DropoffLat     *decimal.Decimal `json:"dropoff_lat"`
	DropoffLng     *decimal.Decimal `json:"dropoff_lng"`
	CustomerName   string           `json:"customer_name"`
	CustomerPhone  string           `json:"customer_phone"`
	DeliveryNotes  string           `json:"delivery_notes"`
}

// SyncPayloadRequest is one offline-captured delivery inside a sync call.
type SyncPayloadRequest struct {
	LocalID        string           `json:"local_id"`
	PickupAddress  string           `json:"pickup_address"`
	DropoffAddress string           `json:"dropoff_address"`
	PickupLat      *decimal.Decimal `json:"pickup_lat"`
	PickupLng      *decimal.Decimal `json:"pickup_lng"`
	DropoffLat     *decimal.Decimal `json:"dropoff_lat"`
	DropoffLng     *decimal.Decimal `json:"dropoff_lng"`
	CustomerName   string           `json:"customer_name"`
	CustomerPhone  string           `json:"customer_phone"`
	DeliveryNotes  string           `json:"delivery_notes"`
	CreatedAt      *time.Time       `json:"created_at"`
}

// SyncDeliveryRequest is the payload for reconciling one offline delivery.
type SyncDeliveryRequest struct {
	CustomerID string `json:"customer_id"`
	SyncPayloadRequest
}

// BulkSyncRequest is the payload for reconciling a batch of offline
// deliveries.
type BulkSyncRequest struct {
	CustomerID string               `json:"customer_id"`
	Deliveries []SyncPayloadRequest `json:"deliveries"`
}

// BulkSyncResponse reports per-item outcomes of a batch reconciliation.
type BulkSyncResponse struct {
	Synced []DeliveryResponse    `json:"synced"`
	Failed []BulkSyncFailureItem `json:"failed"`
}

// BulkSyncFailureItem describes one rejected payload.
type BulkSyncFailureItem struct {
	LocalID string   `json:"local_id"`
	Errors  []string `json:"errors"`
}

// UpdateStatusRequest is the payload for a lifecycle transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignPartnerRequest optionally names the partner to assign. Empty means
// automatic matching.
type AssignPartnerRequest struct {
	PartnerID string `json:"partner_id"`
}

// AssignPartnerResponse reports the outcome of an assignment attempt.
type AssignPartnerResponse struct {
	Assigned  bool    `json:"assigned"`
	PartnerID *string `json:"partner_id"`
}

// LocationRequest is the payload for a partner position report.
type LocationRequest struct {
	Lat decimal.Decimal `json:"lat"`
	Lng decimal.Decimal `json:"lng"`
}

// NearbyPartnerResponse is the wire representation of one nearby partner.
type NearbyPartnerResponse struct {
	ID          string          `json:"id"`
	Lat         decimal.Decimal `json:"lat"`
	Lng         decimal.Decimal `json:"lng"`
	VehicleType string          `json:"vehicle_type"`
	Rating      float64         `json:"rating"`
	DistanceKm  float64         `json:"distance_km"`
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(),
		customerID,
		req.PickupAddress,
		req.DropoffAddress,
		req.CustomerName,
		req.CustomerPhone,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	pickup, err := optionalPoint(req.PickupLat, req.PickupLng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	dropoff, err := optionalPoint(req.DropoffLat, req.DropoffLng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = cmd.SetRoute(pickup, dropoff); err != nil {
		return badRequest(ctx, err.Error())
	}
	cmd.SetDeliveryNotes(req.DeliveryNotes)

	job, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryResponse(job))
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateStatusCommand(jobID, target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	job, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(job))
}

// AssignPartner handles POST /api/v1/deliveries/:id/assign.
func (s *Server) AssignPartner(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var req AssignPartnerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignPartnerCommand(jobID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if req.PartnerID != "" {
		partnerID, idErr := kernel.UUIDFromString(req.PartnerID)
		if idErr != nil {
			return badRequest(ctx, "Invalid partner ID")
		}
		if idErr = cmd.SetPartnerID(partnerID); idErr != nil {
			return badRequest(ctx, idErr.Error())
		}
	}

	assigned, err := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := AssignPartnerResponse{Assigned: assigned != nil}
	if assigned != nil {
		id := assigned.ID().String()
		resp.PartnerID = &id
	}

	return ctx.JSON(http.StatusOK, resp)
}

// SyncDelivery handles POST /api/v1/deliveries/sync.
func (s *Server) SyncDelivery(ctx echo.Context) error {
	var req SyncDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	cmd, err := commands.NewSyncDeliveryCommand(customerID, toSyncPayload(req.SyncPayloadRequest))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	job, err := s.syncDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(job))
}

// BulkSyncDeliveries handles POST /api/v1/deliveries/bulk-sync.
func (s *Server) BulkSyncDeliveries(ctx echo.Context) error {
	var req BulkSyncRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	payloads := make([]commands.SyncPayload, len(req.Deliveries))
	for i, item := range req.Deliveries {
		payloads[i] = toSyncPayload(item)
	}

	cmd, err := commands.NewBulkSyncCommand(customerID, payloads)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.bulkSyncHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := BulkSyncResponse{
		Synced: make([]DeliveryResponse, len(result.Synced)),
		Failed: make([]BulkSyncFailureItem, len(result.Failed)),
	}
	for i, job := range result.Synced {
		resp.Synced[i] = toDeliveryResponse(job)
	}
	for i, failure := range result.Failed {
		resp.Failed[i] = BulkSyncFailureItem{
			LocalID: failure.LocalID,
			Errors:  failure.Errors,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetNearbyPartners handles GET /api/v1/partners/nearby.
func (s *Server) GetNearbyPartners(ctx echo.Context) error {
	lat, err := decimal.NewFromString(ctx.QueryParam("lat"))
	if err != nil {
		return badRequest(ctx, "Invalid lat")
	}
	lng, err := decimal.NewFromString(ctx.QueryParam("lng"))
	if err != nil {
		return badRequest(ctx, "Invalid lng")
	}

	radiusKm := 0.0
	if raw := ctx.QueryParam("radius"); raw != "" {
		radius, radiusErr := decimal.NewFromString(raw)
		if radiusErr != nil {
			return badRequest(ctx, "Invalid radius")
		}
		radiusKm = radius.InexactFloat64()
	}

	center, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetNearbyPartnersQuery(center, radiusKm)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	partners, err := s.getNearbyPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]NearbyPartnerResponse, len(partners))
	for i, p := range partners {
		resp[i] = NearbyPartnerResponse{
			ID:          p.ID.String(),
			Lat:         p.Location.Lat(),
			Lng:         p.Location.Lng(),
			VehicleType: p.VehicleType,
			Rating:      p.Rating,
			DistanceKm:  p.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpdatePartnerLocation handles PUT /api/v1/partners/:id/location.
func (s *Server) UpdatePartnerLocation(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner ID")
	}

	var req LocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(partnerID, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updatePartnerLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PartnerGoOnline handles POST /api/v1/partners/:id/online.
func (s *Server) PartnerGoOnline(ctx echo.Context) error {
	return s.setShift(ctx, true)
}

// PartnerGoOffline handles POST /api/v1/partners/:id/offline.
func (s *Server) PartnerGoOffline(ctx echo.Context) error {
	return s.setShift(ctx, false)
}

// GetPartnerStatistics handles GET /api/v1/partners/:id/statistics.
func (s *Server) GetPartnerStatistics(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner ID")
	}

	query, err := queries.NewGetPartnerStatisticsQuery(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getPartnerStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"partner_id":            stats.PartnerID.String(),
		"total_deliveries":      stats.TotalDeliveries,
		"successful_deliveries": stats.SuccessfulDeliveries,
		"cancelled_deliveries":  stats.CancelledDeliveries,
		"success_rate":          stats.SuccessRate,
		"rating":                stats.Rating,
		"is_online":             stats.IsOnline,
		"is_available":          stats.IsAvailable,
		"estimated_earnings":    stats.EstimatedEarnings,
	})
}

// GetDeliveryStatistics handles GET /api/v1/deliveries/statistics.
func (s *Server) GetDeliveryStatistics(ctx echo.Context) error {
	stats, err := s.getDeliveryStatisticsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDeliveryStatisticsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"total":           stats.Total,
		"pending":         stats.Pending,
		"active":          stats.Active,
		"delivered":       stats.Delivered,
		"cancelled":       stats.Cancelled,
		"failed":          stats.Failed,
		"success_rate":    stats.SuccessRate,
		"avg_distance_km": stats.AvgDistanceKm,
	})
}

// GetUnsyncedDeliveries handles GET /api/v1/deliveries/unsynced.
func (s *Server) GetUnsyncedDeliveries(ctx echo.Context) error {
	jobs, err := s.getUnsyncedDeliveriesHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetUnsyncedDeliveriesQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]echo.Map, len(jobs))
	for i, job := range jobs {
		resp[i] = echo.Map{
			"id":              job.ID.String(),
			"customer_id":     job.CustomerID.String(),
			"local_id":        job.LocalID,
			"status":          job.Status,
			"pickup_address":  job.PickupAddress,
			"dropoff_address": job.DropoffAddress,
			"created_at":      job.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) setShift(ctx echo.Context, online bool) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner ID")
	}

	cmd, err := commands.NewSetPartnerShiftCommand(partnerID, online)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setPartnerShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// toDeliveryResponse maps a delivery aggregate to its wire representation.
func toDeliveryResponse(job *delivery.DeliveryJob) DeliveryResponse {
	resp := DeliveryResponse{
		ID:                   job.ID().String(),
		CustomerID:           job.CustomerID().String(),
		PickupAddress:        job.PickupAddress(),
		DropoffAddress:       job.DropoffAddress(),
		CustomerName:         job.CustomerName(),
		CustomerPhone:        job.CustomerPhone(),
		DeliveryNotes:        job.DeliveryNotes(),
		Status:               job.Status().String(),
		EstimatedDistanceKm:  job.EstimatedDistanceKm(),
		EstimatedDurationMin: job.EstimatedDurationMin(),
		ActualDistanceKm:     job.ActualDistanceKm(),
		ActualDurationMin:    job.ActualDurationMin(),
		IsSynced:             job.IsSynced(),
		LocalID:              job.LocalID(),
		CreatedAt:            job.CreatedAt(),
		UpdatedAt:            job.UpdatedAt(),
	}

	if partnerID := job.Partner(); partnerID != nil {
		id := partnerID.String()
		resp.PartnerID = &id
	}

	if pickup := job.Pickup(); pickup != nil {
		lat := pickup.Lat()
		lng := pickup.Lng()
		resp.PickupLat = &lat
		resp.PickupLng = &lng
	}
	if dropoff := job.Dropoff(); dropoff != nil {
		lat := dropoff.Lat()
		lng := dropoff.Lng()
		resp.DropoffLat = &lat
		resp.DropoffLng = &lng
	}

	return resp
}

// toSyncPayload maps one sync request item to the command payload.
func toSyncPayload(req SyncPayloadRequest) commands.SyncPayload {
	return commands.SyncPayload{
		LocalID:        req.LocalID,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		DeliveryNotes:  req.DeliveryNotes,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
		DropoffLat:     req.DropoffLat,
		DropoffLng:     req.DropoffLng,
		CreatedAt:      req.CreatedAt,
	}
}

// optionalPoint builds a GeoPoint from an optional pair of request fields.
func optionalPoint(lat, lng *decimal.Decimal) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, kernel.ErrIncompleteCoordinatePair
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}

	return &point, nil
}

// badRequest writes a 400 with the uniform error body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var transitionErr *errs.InvalidStatusTransitionError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoPendingJobFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &transitionErr),
		errors.Is(err, commands.ErrPartnerNotAvailable):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
