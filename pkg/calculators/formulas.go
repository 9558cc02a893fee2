package calculators

import (
	"context"
	"fmt"
	"math"
)

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// MeanArterialPressure computes 2/3 diastolic + 1/3 systolic pressure in mm Hg.
func MeanArterialPressure(ctx context.Context, inputs map[string]any) (any, error) {
	sys, err := required(inputs, "sys_bp")
	if err != nil {
		return nil, err
	}
	dia, err := required(inputs, "dia_bp")
	if err != nil {
		return nil, err
	}

	mapValue := round(2.0/3.0*dia.Value+1.0/3.0*sys.Value, 3)
	explanation := fmt.Sprintf(
		"The mean arterial pressure is computed as 2/3 * diastolic + 1/3 * systolic. "+
			"The patient's diastolic pressure is %g mm Hg and systolic pressure is %g mm Hg, "+
			"so the mean arterial pressure is 2/3 * %g + 1/3 * %g = %g mm Hg.",
		dia.Value, sys.Value, dia.Value, sys.Value, mapValue)

	return result(mapValue, explanation), nil
}

// BodyMassIndex computes weight / height² in kg/m².
func BodyMassIndex(ctx context.Context, inputs map[string]any) (any, error) {
	weight, err := required(inputs, "weight")
	if err != nil {
		return nil, err
	}
	height, err := required(inputs, "height")
	if err != nil {
		return nil, err
	}

	kg := weight.Kilograms()
	m := height.Centimeters() / 100.0
	if m <= 0 {
		return nil, fmt.Errorf("height must be positive, got %g m", m)
	}

	bmi := round(kg/(m*m), 3)
	explanation := fmt.Sprintf(
		"The formula for BMI is weight (kg) / height (m)². The patient's weight is %.3f kg and height is %.3f m, "+
			"so the BMI is %.3f / (%.3f * %.3f) = %g kg/m².",
		kg, m, kg, m, m, bmi)

	return result(bmi, explanation), nil
}

// QTcBazett corrects the QT interval for heart rate: QTc = QT / sqrt(RR).
func QTcBazett(ctx context.Context, inputs map[string]any) (any, error) {
	hr, err := required(inputs, "heart_rate")
	if err != nil {
		return nil, err
	}
	qt, err := required(inputs, "qt_interval")
	if err != nil {
		return nil, err
	}
	if hr.Value <= 0 {
		return nil, fmt.Errorf("heart rate must be positive, got %g", hr.Value)
	}

	rr := round(60.0/hr.Value, 3)
	qtc := round(qt.Value/math.Sqrt(rr), 3)
	explanation := fmt.Sprintf(
		"The corrected QT interval using the Bazett formula is QTc = QT / √(RR), where RR = 60 / heart rate. "+
			"The patient's heart rate is %g beats per minute, so RR = 60 / %g = %g. "+
			"The QT interval is %g msec, so QTc = %g / √(%g) = %g msec.",
		hr.Value, hr.Value, rr, qt.Value, qt.Value, rr, qtc)

	return result(qtc, explanation), nil
}
