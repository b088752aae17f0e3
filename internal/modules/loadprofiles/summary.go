package loadprofiles

import (
	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/pkg/formulas"
)

// peakWindowHours is the width of the evening-peak search window
const peakWindowHours = 3

// Summary aggregates a daily load profile
type Summary struct {
	ProfileType       domain.ProfileType `json:"profile_type"`
	Label             string             `json:"label"`
	SolarKWh          float64            `json:"solar_kwh"`
	WindKWh           float64            `json:"wind_kwh"`
	BatteryKWh        float64            `json:"battery_kwh"`
	ConsumptionKWh    float64            `json:"consumption_kwh"`
	PeakHour          int                `json:"peak_hour"`
	PeakConsumptionKW float64            `json:"peak_consumption_kw"`
	PeakWindowStart   int                `json:"peak_window_start"`
	PeakWindowAvgKW   float64            `json:"peak_window_avg_kw"`
	SelfSufficiency   float64            `json:"self_sufficiency"`       // 0..1
	AnnualConsumption float64            `json:"annual_consumption_kwh"`
}

// Summarize computes daily totals, the consumption peak and the share of
// consumption covered by solar, wind and battery supply. Hourly points
// are kW averages, so the sum over 24 hours is the daily energy in kWh.
func Summarize(profileType domain.ProfileType, points []domain.LoadProfilePoint) Summary {
	n := len(points)
	solar := make([]float64, n)
	wind := make([]float64, n)
	battery := make([]float64, n)
	consumption := make([]float64, n)
	for i, p := range points {
		solar[i] = p.Solar
		wind[i] = p.Wind
		battery[i] = p.Battery
		consumption[i] = p.Consumption
	}

	s := Summary{
		ProfileType:     profileType,
		Label:           profileType.Label(),
		SolarKWh:        formulas.RoundTo(formulas.Sum(solar), 2),
		WindKWh:         formulas.RoundTo(formulas.Sum(wind), 2),
		BatteryKWh:      formulas.RoundTo(formulas.Sum(battery), 2),
		ConsumptionKWh:  formulas.RoundTo(formulas.Sum(consumption), 2),
		PeakHour:        -1,
		PeakWindowStart: -1,
	}

	if idx := formulas.ArgMax(consumption); idx >= 0 {
		s.PeakHour = idx
		s.PeakConsumptionKW = consumption[idx]
	}
	if start, avg := formulas.MaxWindow(consumption, peakWindowHours); start >= 0 {
		s.PeakWindowStart = start
		s.PeakWindowAvgKW = formulas.RoundTo(avg, 2)
	}

	if s.ConsumptionKWh > 0 {
		supply := s.SolarKWh + s.WindKWh + s.BatteryKWh
		s.SelfSufficiency = formulas.RoundTo(min(1, supply/s.ConsumptionKWh), 3)
	}
	s.AnnualConsumption = formulas.RoundTo(s.ConsumptionKWh*365, 0)

	return s
}

// SummarizePod summarizes the template selected for a POD number
func SummarizePod(podNumber string) Summary {
	profileType := ProfileTypeForPod(podNumber)
	return Summarize(profileType, Template(profileType))
}
