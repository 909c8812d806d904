package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fixwise/internal/domain/billing/valueobjects"
)

func TestComputeTotalCost(t *testing.T) {
	tests := []struct {
		name         string
		parts        []Part
		otherCharges []OtherCharge
		want         float64
	}{
		{
			name:         "parts and charges",
			parts:        []Part{{Name: "Filter", Quantity: 2, Cost: 15.00}},
			otherCharges: []OtherCharge{{Description: "Disposal", Cost: 10}},
			want:         40.00,
		},
		{
			name:  "parts only",
			parts: []Part{{Name: "Belt", Quantity: 1, Cost: 22.50}, {Name: "Screws", Quantity: 10, Cost: 0.10}},
			want:  23.50,
		},
		{
			name:         "charges only",
			otherCharges: []OtherCharge{{Description: "Travel", Cost: 35}},
			want:         35.00,
		},
		{name: "empty", want: 0},
		{
			name:  "rounds to cents",
			parts: []Part{{Name: "Wire", Quantity: 3, Cost: 1.111}},
			want:  3.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotalCost(tt.parts, tt.otherCharges)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestComputeTotalHours(t *testing.T) {
	tests := []struct {
		name    string
		timeIn  string
		timeOut string
		want    float64
	}{
		{name: "two and a half hours", timeIn: "09:00", timeOut: "11:30", want: 2.50},
		{name: "quarter hour", timeIn: "14:00", timeOut: "14:15", want: 0.25},
		{name: "out before in", timeIn: "09:00", timeOut: "08:00", want: 0},
		{name: "equal stamps", timeIn: "09:00", timeOut: "09:00", want: 0},
		{name: "missing time in", timeIn: "", timeOut: "11:30", want: 0},
		{name: "missing time out", timeIn: "09:00", timeOut: "", want: 0},
		{name: "garbage", timeIn: "morning", timeOut: "noon", want: 0},
		{name: "out of range", timeIn: "25:00", timeOut: "26:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotalHours(tt.timeIn, tt.timeOut))
		})
	}
}

func TestNewWorkOrder(t *testing.T) {
	wo, err := NewWorkOrder(
		1, 42, 1,
		"Replaced both filters",
		[]Part{{Name: "Filter", Quantity: 2, Cost: 15.00}},
		[]OtherCharge{{Description: "Disposal", Cost: 10}},
		"09:00", "11:30",
		vo.CompletionCompleted,
	)
	require.NoError(t, err)

	assert.Equal(t, 40.00, wo.TotalCost())
	assert.Equal(t, 2.50, wo.TotalHours())
	assert.Equal(t, 1, wo.WorkOrderNumber())
	assert.True(t, wo.CompletionStatus().IsCompleted())

	// The documented formula always reproduces the stored value.
	assert.Equal(t, wo.TotalCost(), ComputeTotalCost(wo.Parts(), wo.OtherCharges()))
}

func TestNewWorkOrder_Validation(t *testing.T) {
	tests := []struct {
		name         string
		ticketID     uint
		technicianID uint
		number       int
		parts        []Part
		charges      []OtherCharge
		status       vo.CompletionStatus
	}{
		{name: "missing ticket", ticketID: 0, technicianID: 42, number: 1, status: vo.CompletionCompleted},
		{name: "missing technician", ticketID: 1, technicianID: 0, number: 1, status: vo.CompletionCompleted},
		{name: "zero number", ticketID: 1, technicianID: 42, number: 0, status: vo.CompletionCompleted},
		{name: "bad status", ticketID: 1, technicianID: 42, number: 1, status: vo.CompletionStatus("done")},
		{name: "negative part cost", ticketID: 1, technicianID: 42, number: 1, parts: []Part{{Name: "Filter", Quantity: 1, Cost: -5}}, status: vo.CompletionCompleted},
		{name: "nameless charge", ticketID: 1, technicianID: 42, number: 1, charges: []OtherCharge{{Description: " ", Cost: 5}}, status: vo.CompletionCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorkOrder(tt.ticketID, tt.technicianID, tt.number, "", tt.parts, tt.charges, "", "", tt.status)
			assert.Error(t, err)
		})
	}
}
