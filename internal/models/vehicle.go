package models

import (
	"strconv"
	"strings"
)

// Vehicle is the rented vehicle attached to a contract
type Vehicle struct {
	ID          string
	PlateNumber string
	Make        string
	Model       string
	Year        int
	VIN         string
}

// Description returns "make model year" with empty parts dropped
func (v *Vehicle) Description() string {
	parts := make([]string, 0, 3)
	if v.Make != "" {
		parts = append(parts, v.Make)
	}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if v.Year > 0 {
		parts = append(parts, strconv.Itoa(v.Year))
	}
	return strings.Join(parts, " ")
}
