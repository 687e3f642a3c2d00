package dto

type DeadlineRequest struct {
	Time       string `json:"time"`
	OffsetDays int    `json:"offset_days"`
}

type BuffersRequest struct {
	PickupDriveMin   int `json:"pickup_drive_min"`
	DeliveryDriveMin int `json:"delivery_drive_min"`
	MinConnectionMin int `json:"min_connection_min"`
}

type FeasibilityRequest struct {
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`

	PickupDate  string `json:"pickup_date"`
	PickupReady string `json:"pickup_ready"`

	Deadline *DeadlineRequest `json:"deadline"`

	// Mode is "one_time" (default) or "weekly".
	Mode string   `json:"mode"`
	Days []string `json:"days"`

	Buffers     *BuffersRequest `json:"buffers"`
	AllAirlines bool            `json:"all_airlines"`
}

type DriveResponse struct {
	Miles     float64 `json:"miles"`
	Minutes   int     `json:"minutes"`
	Estimated bool    `json:"estimated,omitempty"`
}

type ReliabilityResponse struct {
	Score       int      `json:"score"`
	Status      string   `json:"status"`
	RiskFactors []string `json:"risk_factors,omitempty"`
}

type ScheduleRowResponse struct {
	Carrier       string   `json:"carrier"`
	FlightNumbers []string `json:"flight_numbers"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	Departure string   `json:"departure"`
	Arrival   string   `json:"arrival"`
	Days      []string `json:"days"`

	ConnectionAirport string `json:"connection_airport"`
	ConnectionMinutes int    `json:"connection_minutes,omitempty"`

	DurationMinutes     int `json:"duration_minutes"`
	TotalTransitMinutes int `json:"total_transit_minutes"`

	ReliabilityScore *int     `json:"reliability_score,omitempty"`
	Notes            []string `json:"notes,omitempty"`
}

type RejectionResponse struct {
	Carrier       string   `json:"carrier"`
	FlightNumbers []string `json:"flight_numbers"`
	Day           string   `json:"day"`
	Reason        string   `json:"reason"`
}

type FeasibilityResponse struct {
	PickupAirport   string `json:"pickup_airport"`
	DeliveryAirport string `json:"delivery_airport"`

	PickupDrive   DriveResponse `json:"pickup_drive"`
	DeliveryDrive DriveResponse `json:"delivery_drive"`

	PrepMinutes       int     `json:"prep_minutes"`
	PostMinutes       int     `json:"post_minutes"`
	EarliestDeparture string  `json:"earliest_departure"`
	LatestArrival     *string `json:"latest_arrival,omitempty"`

	OriginHours string `json:"origin_hours"`
	DestHours   string `json:"dest_hours"`

	Infeasible bool `json:"infeasible,omitempty"`

	SearchDates []string              `json:"search_dates"`
	Schedule    []ScheduleRowResponse `json:"schedule"`
	Rejected    []RejectionResponse   `json:"rejected"`
}
