package api

import (
	"time"

	"portfoliotracker/internal/domain"
)

type ledgerHealthResponse struct {
	Degraded    bool                 `json:"degraded"`
	Violations  []violationResponse  `json:"violations"`
	InvalidLegs []invalidLegResponse `json:"invalidLegs"`
}

type violationResponse struct {
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"`
	LegID     string  `json:"legID"`
	Held      float64 `json:"held"`
	Requested float64 `json:"requested"`
	Message   string  `json:"message"`
}

type invalidLegResponse struct {
	LegID  string `json:"legID"`
	Symbol string `json:"symbol"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func newLedgerHealthResponse(health domain.LedgerHealth) ledgerHealthResponse {
	out := ledgerHealthResponse{
		Degraded:    health.Degraded,
		Violations:  []violationResponse{},
		InvalidLegs: []invalidLegResponse{},
	}
	for _, v := range health.Violations {
		out.Violations = append(out.Violations, violationResponse{
			Symbol:    v.Symbol,
			Date:      formatDate(v.Date),
			LegID:     v.LegID.String(),
			Held:      v.Held.InexactFloat64(),
			Requested: v.Requested.InexactFloat64(),
			Message:   v.Error(),
		})
	}
	for _, l := range health.InvalidLegs {
		out.InvalidLegs = append(out.InvalidLegs, invalidLegResponse{
			LegID:  l.Leg.ID.String(),
			Symbol: l.Leg.Symbol,
			Date:   formatDate(l.Leg.Date),
			Reason: l.Reason,
		})
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}
