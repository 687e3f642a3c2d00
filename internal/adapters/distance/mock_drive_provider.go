package distance

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"fmt"
)

type MockLeg struct {
	From, To string
	Miles    float64
	Minutes  int
}

type MockDriveProvider struct {
	m map[string]domain.DriveMetrics
}

func NewMockDriveProvider(legs []MockLeg) *MockDriveProvider {
	m := make(map[string]domain.DriveMetrics, len(legs))
	for _, l := range legs {
		m[l.From+"|"+l.To] = domain.DriveMetrics{Miles: l.Miles, Minutes: l.Minutes}
	}
	return &MockDriveProvider{m: m}
}

func (p *MockDriveProvider) GetDriveMetrics(ctx context.Context, origin, destination string) (domain.DriveMetrics, error) {
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return domain.DriveMetrics{}, fmt.Errorf("missing leg %q -> %q", origin, destination)
	}

	return r, nil
}
