package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   domain.Measurement
		wantOK bool
	}{
		{"float", 37.5, domain.Scalar(37.5), true},
		{"int", 80, domain.Scalar(80), true},
		{"json number", json.Number("120"), domain.Scalar(120), true},
		{"numeric string", " 18 ", domain.Scalar(18), true},
		{"pair", []any{97.0, "F"}, domain.WithUnit(97, "f"), true},
		{"pair without unit", []any{97.0}, domain.WithUnit(97, ""), true},
		{"typed pair", []float64{1, 2}, domain.WithUnit(1, "2"), true},
		{"nil", nil, domain.Measurement{}, false},
		{"text", "high", domain.Measurement{}, false},
		{"empty pair", []any{}, domain.Measurement{}, false},
		{"non numeric pair", []any{"x", "F"}, domain.Measurement{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseMeasurement(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMeasurement_Celsius(t *testing.T) {
	f, ok := domain.ParseMeasurement([]any{97, "F"})
	require.True(t, ok)
	assert.InDelta(t, 36.11, f.Celsius(), 0.01)

	c, ok := domain.ParseMeasurement([]any{37, "C"})
	require.True(t, ok)
	assert.Equal(t, 37.0, c.Celsius())

	fahrenheit, ok := domain.ParseMeasurement([]any{212, "degrees fahrenheit"})
	require.True(t, ok)
	assert.InDelta(t, 100.0, fahrenheit.Celsius(), 1e-9)

	bare, ok := domain.ParseMeasurement(38.2)
	require.True(t, ok)
	assert.True(t, bare.IsScalar())
	assert.Equal(t, 38.2, bare.Celsius())
}

func TestMeasurement_Years(t *testing.T) {
	assert.Equal(t, 45.0, domain.WithUnit(45, "years").Years())
	assert.Equal(t, 2.0, domain.WithUnit(24, "months").Years())
	assert.Equal(t, 1.0, domain.WithUnit(365, "days").Years())
	assert.Equal(t, 70.0, domain.Scalar(70).Years())
}

func TestMeasurement_MassAndLength(t *testing.T) {
	assert.InDelta(t, 70.0, domain.WithUnit(154.324, "lbs").Kilograms(), 0.01)
	assert.Equal(t, 0.5, domain.WithUnit(500, "g").Kilograms())
	assert.Equal(t, 180.0, domain.WithUnit(1.8, "m").Centimeters())
	assert.InDelta(t, 177.8, domain.WithUnit(70, "in").Centimeters(), 1e-9)
	assert.Equal(t, 172.0, domain.Scalar(172).Centimeters())
}

func TestMeasurement_SpelledOutUnits(t *testing.T) {
	mass := []struct {
		unit string
		want float64
	}{
		{"pounds", 70.0},
		{"Lb", 70.0},
		{"kilograms", 154.324},
		{" kg ", 154.324},
	}
	for _, tt := range mass {
		assert.InDelta(t, tt.want, domain.WithUnit(154.324, tt.unit).Kilograms(), 0.01, tt.unit)
	}
	assert.Equal(t, 0.5, domain.WithUnit(500, "grams").Kilograms())
	assert.InDelta(t, 1.0, domain.WithUnit(35.274, "ounces").Kilograms(), 0.001)

	length := []struct {
		unit  string
		value float64
		want  float64
	}{
		{"inches", 70, 177.8},
		{"Inch", 70, 177.8},
		{"feet", 6, 182.88},
		{"meters", 1.8, 180},
		{"metres", 1.8, 180},
		{"millimeters", 1800, 180},
		{"centimeters", 180, 180},
	}
	for _, tt := range length {
		assert.InDelta(t, tt.want, domain.WithUnit(tt.value, tt.unit).Centimeters(), 1e-9, tt.unit)
	}
}

func TestAsBool(t *testing.T) {
	truthy := []any{"Yes", "TRUE", "1", 1, 2.5, true, []any{1}}
	for _, v := range truthy {
		assert.True(t, domain.AsBool(v), "%#v", v)
	}

	falsy := []any{"no", "false", "0", "", 0, 0.0, false, nil, []any{}, map[string]any{}}
	for _, v := range falsy {
		assert.False(t, domain.AsBool(v), "%#v", v)
	}
}
