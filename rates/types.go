package rates

import (
	"github.com/theoremus-urban-solutions/erp-rates/interval"
)

// Record is one raw charge row as published by the rates source.
type Record struct {
	VehicleType   string        `json:"VehicleType" validate:"required"`
	DayType       string        `json:"DayType" validate:"required"`
	StartTime     interval.Time `json:"StartTime" validate:"required,clock"`
	EndTime       interval.Time `json:"EndTime" validate:"required,clock"`
	ZoneID        string        `json:"ZoneID" validate:"required"`
	ChargeAmount  float64       `json:"ChargeAmount" validate:"gte=0"`
	EffectiveDate string        `json:"EffectiveDate"`
}

// Interval returns the record as a rate interval.
func (r Record) Interval() interval.Interval[float64] {
	return interval.Interval[float64]{StartTime: r.StartTime, EndTime: r.EndTime, Value: r.ChargeAmount}
}

// Group holds the records of one vehicle type and day type, sorted by
// (ZoneID, StartTime, EndTime).
type Group struct {
	Label       string
	Slug        string
	VehicleType string
	DayType     string
	Records     []Record
}

// StatusTable maps interval key -> zone -> operational.
type StatusTable map[string]map[string]bool

// RateTable maps zone -> interval key -> amount.
type RateTable map[string]map[string]float64

// Flattened maps zone -> flattened key -> amount.
type Flattened map[string]map[string]float64

// Tables is the result of Build, keyed by group slug.
type Tables struct {
	Status map[string]StatusTable
	Rates  map[string]RateTable
	Splits map[string][]interval.Time
}
