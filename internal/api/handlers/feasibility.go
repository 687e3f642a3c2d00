package handlers

import (
	"cargo-feasibility-service/internal/api/dto"
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/ports"
	"cargo-feasibility-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type FeasibilityHandler struct {
	Locator ports.AirportLocator
	Drives  ports.DriveMetricsProvider
	Flights ports.FlightProvider
	Hours   *services.HoursResolver
	Scorer  ports.ReliabilityScorer
}

// Feasibility runs one shipment feasibility analysis. It coordinates
// request decoding and defaulting, the planning pipeline, and response
// shaping.
func (h *FeasibilityHandler) Feasibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.FeasibilityRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	shipment, err := toShipmentRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.PlanShipment(r.Context(), *shipment, h.Locator, h.Drives, h.Flights, h.Hours, h.Scorer)
	if err != nil {
		if errors.Is(err, services.ErrNoAirportCandidates) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("plan shipment failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toFeasibilityResponse(result))
}

func toShipmentRequest(req dto.FeasibilityRequest) (*domain.ShipmentRequest, error) {
	pickup := strings.TrimSpace(req.PickupAddress)
	delivery := strings.TrimSpace(req.DeliveryAddress)
	if pickup == "" || delivery == "" {
		return nil, fmt.Errorf("pickup_address and delivery_address are required")
	}

	pickupDate := time.Now()
	if req.PickupDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PickupDate)
		if err != nil {
			return nil, fmt.Errorf("pickup_date must be YYYY-MM-DD")
		}
		pickupDate = parsed
	}

	ready := domain.ClockTime(9 * 60)
	if req.PickupReady != "" {
		parsed, err := domain.ParseClock(req.PickupReady)
		if err != nil {
			return nil, fmt.Errorf("pickup_ready: unrecognized time %q", req.PickupReady)
		}
		ready = parsed
	}

	var deadline *domain.DeliveryDeadline
	if req.Deadline != nil {
		t, err := domain.ParseClock(req.Deadline.Time)
		if err != nil {
			return nil, fmt.Errorf("deadline.time: unrecognized time %q", req.Deadline.Time)
		}
		if req.Deadline.OffsetDays < 0 {
			return nil, fmt.Errorf("deadline.offset_days must be >= 0")
		}
		deadline = &domain.DeliveryDeadline{Time: t, OffsetDays: req.Deadline.OffsetDays}
	}

	mode := domain.OneTimeShipment
	switch strings.ToLower(strings.TrimSpace(req.Mode)) {
	case "", "one_time":
	case "weekly":
		mode = domain.WeeklyShipment
	default:
		return nil, fmt.Errorf("mode must be one_time or weekly")
	}

	days := make([]domain.DayCode, 0, len(req.Days))
	for _, raw := range req.Days {
		d, err := domain.ParseDayCode(strings.TrimSpace(raw))
		if err != nil || d == domain.OneTime {
			return nil, fmt.Errorf("days: unknown day %q", raw)
		}
		days = append(days, d)
	}
	if mode == domain.WeeklyShipment && len(days) == 0 {
		return nil, fmt.Errorf("weekly mode requires at least one day")
	}

	buffers := domain.BufferConfig{PickupDriveMin: 120, DeliveryDriveMin: 120, MinConnectionMin: 60}
	if req.Buffers != nil {
		if req.Buffers.PickupDriveMin < 0 || req.Buffers.DeliveryDriveMin < 0 || req.Buffers.MinConnectionMin < 0 {
			return nil, fmt.Errorf("buffers must be >= 0")
		}
		buffers = domain.BufferConfig{
			PickupDriveMin:   req.Buffers.PickupDriveMin,
			DeliveryDriveMin: req.Buffers.DeliveryDriveMin,
			MinConnectionMin: req.Buffers.MinConnectionMin,
		}
	}

	return &domain.ShipmentRequest{
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PickupDate:      pickupDate,
		PickupReady:     ready,
		Deadline:        deadline,
		Mode:            mode,
		Days:            days,
		Buffers:         buffers,
		AllAirlines:     req.AllAirlines,
	}, nil
}

func toFeasibilityResponse(result *services.PlanResult) dto.FeasibilityResponse {
	res := dto.FeasibilityResponse{
		PickupAirport:     result.PickupAirport,
		DeliveryAirport:   result.DeliveryAirport,
		PickupDrive:       toDriveResponse(result.PickupDrive),
		DeliveryDrive:     toDriveResponse(result.DeliveryDrive),
		PrepMinutes:       result.PrepMinutes,
		PostMinutes:       result.PostMinutes,
		EarliestDeparture: result.EarliestDeparture.Format(time.RFC3339),
		OriginHours:       result.OriginHoursLabel,
		DestHours:         result.DestHoursLabel,
		Infeasible:        result.Infeasible,
		SearchDates:       make([]string, 0, len(result.SearchDates)),
		Schedule:          make([]dto.ScheduleRowResponse, 0, len(result.Rows)),
		Rejected:          make([]dto.RejectionResponse, 0, len(result.Rejected)),
	}

	if result.LatestArrival != nil {
		s := result.LatestArrival.Format(time.RFC3339)
		res.LatestArrival = &s
	}

	for _, sd := range result.SearchDates {
		res.SearchDates = append(res.SearchDates, sd.Date.Format("2006-01-02"))
	}

	for _, row := range result.Rows {
		days := make([]string, 0, len(row.Days))
		for _, d := range row.Days {
			days = append(days, d.String())
		}

		out := dto.ScheduleRowResponse{
			Carrier:             row.Carrier,
			FlightNumbers:       row.FlightNumbers,
			Origin:              row.Origin,
			Destination:         row.Destination,
			Departure:           row.DepartureClock.String(),
			Arrival:             row.ArrivalClock.String(),
			Days:                days,
			ConnectionAirport:   row.ConnectionAirport,
			ConnectionMinutes:   row.ConnectionMinutes,
			DurationMinutes:     row.DurationMinutes,
			TotalTransitMinutes: row.TotalTransitMinutes,
			Notes:               row.Notes,
		}
		if row.ReliabilityScore >= 0 {
			score := row.ReliabilityScore
			out.ReliabilityScore = &score
		}

		res.Schedule = append(res.Schedule, out)
	}

	for _, rej := range result.Rejected {
		res.Rejected = append(res.Rejected, dto.RejectionResponse{
			Carrier:       rej.Flight.Carrier,
			FlightNumbers: rej.Flight.FlightNumbers,
			Day:           rej.Day.String(),
			Reason:        rej.Reason.String(),
		})
	}

	return res
}

func toDriveResponse(m domain.DriveMetrics) dto.DriveResponse {
	return dto.DriveResponse{Miles: m.Miles, Minutes: m.Minutes, Estimated: m.Estimated}
}
