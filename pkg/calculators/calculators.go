// Package calculators bundles a small set of calculator implementations and
// the metadata describing them, so the service is usable without an external
// catalog.
package calculators

import (
	_ "embed"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/aretw0/medcalc/pkg/library"
)

// PathIndex is the bundled path index document.
//
//go:embed data/calc_path.json
var PathIndex []byte

// FieldIndex is the bundled field-mapping index document.
//
//go:embed data/name_to_python.json
var FieldIndex []byte

const modulePrefix = "calculator_implementations."

// Register installs every bundled implementation into lib under the module
// paths and function names used by the bundled metadata.
func Register(lib *library.Library) {
	lib.Register(modulePrefix+"mean_arterial_pressure", "mean_arterial_pressure_explanation", MeanArterialPressure)
	lib.Register(modulePrefix+"bmi_calculator", "bmi_calculator_explanation", BodyMassIndex)
	lib.Register(modulePrefix+"qt_calculator_bazett", "qt_calculator_bazett_explanation", QTcBazett)
	lib.Register(modulePrefix+"psi_score", "psi_score_explanation", PSIScore)
}

// NewLibrary returns a library holding the bundled implementations.
func NewLibrary() *library.Library {
	lib := library.New()
	Register(lib)
	return lib
}

func required(inputs map[string]any, key string) (domain.Measurement, error) {
	v, ok := inputs[key]
	if !ok {
		return domain.Measurement{}, &domain.MissingInputError{Field: key}
	}
	m, ok := domain.ParseMeasurement(v)
	if !ok {
		return domain.Measurement{}, &domain.MissingInputError{Field: key}
	}
	return m, nil
}

func optional(inputs map[string]any, key string) (domain.Measurement, bool) {
	v, ok := inputs[key]
	if !ok {
		return domain.Measurement{}, false
	}
	return domain.ParseMeasurement(v)
}

func result(answer any, explanation string) map[string]any {
	return map[string]any{
		domain.ResultAnswer:      answer,
		domain.ResultExplanation: explanation,
	}
}
