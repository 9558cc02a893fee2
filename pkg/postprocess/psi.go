package postprocess

import (
	"math"

	"github.com/aretw0/medcalc/pkg/domain"
)

// PSISlug is the catalog slug of the Pneumonia Severity Index calculator.
const PSISlug = "psi-score-pneumonia-severity-index-for-cap"

// Risk classes and their recommendations.
const (
	RiskClassI       = "Risk Class I"
	RiskClassII      = "Risk Class II"
	RiskClassIII     = "Risk Class III"
	RiskClassIV      = "Risk Class IV"
	RiskClassV       = "Risk Class V"
	RiskClassUnknown = "Unknown"
)

type classification struct {
	risk           string
	recommendation string
}

var (
	classI       = classification{RiskClassI, "Very low risk. Outpatient care appropriate."}
	classII      = classification{RiskClassII, "Low risk. Outpatient care appropriate."}
	classIII     = classification{RiskClassIII, "Low risk. Consider outpatient management or brief observation."}
	classIV      = classification{RiskClassIV, "Moderate risk. Recommend inpatient admission."}
	classV       = classification{RiskClassV, "High risk. Recommend inpatient admission (consider ICU)."}
	classUnknown = classification{RiskClassUnknown, "Score unavailable. Please verify the inputs."}
)

var psiComorbidities = []string{
	"neoplastic_disease",
	"liver_disease",
	"chf",
	"cerebrovascular_disease",
	"renal_disease",
}

// PSIRiskClass maps a PSI/PORT score to its risk class. Patients aged 50 or
// younger without comorbidities, nursing-home residence or abnormal vital
// signs are Class I regardless of score; their score is then reported only
// as raw_score.
func PSIRiskClass(inputs, raw map[string]any) (map[string]any, error) {
	score := roundedScore(raw[domain.ResultAnswer])
	fastPath := isPSIClassI(inputs)

	var c classification
	switch {
	case fastPath:
		c = classI
	case score == nil:
		c = classUnknown
	default:
		c = tier(*score)
	}

	var primary any
	if !fastPath && score != nil {
		primary = *score
	}
	var rawScore any
	if score != nil {
		rawScore = *score
	}

	return map[string]any{
		"score":          primary,
		"raw_score":      rawScore,
		"risk_class":     c.risk,
		"recommendation": c.recommendation,
		"is_class_i":     fastPath,
	}, nil
}

func tier(score int) classification {
	switch {
	case score <= 70:
		return classII
	case score <= 90:
		return classIII
	case score <= 130:
		return classIV
	}
	return classV
}

func isPSIClassI(inputs map[string]any) bool {
	age, ok := measure(inputs, "age")
	if !ok || age.Years() > 50 {
		return false
	}
	if domain.AsBool(inputs["nursing_home_resident"]) {
		return false
	}
	for _, key := range psiComorbidities {
		if domain.AsBool(inputs[key]) {
			return false
		}
	}
	return !hasPSIExamFinding(inputs)
}

func hasPSIExamFinding(inputs map[string]any) bool {
	if domain.AsBool(inputs["altered_mental_status"]) {
		return true
	}
	if rr, ok := measure(inputs, "respiratory_rate"); ok && rr.Value >= 30 {
		return true
	}
	if sbp, ok := measure(inputs, "sys_bp"); ok && sbp.Value < 90 {
		return true
	}
	if temp, ok := measure(inputs, "temperature"); ok {
		if c := temp.Celsius(); c < 35 || c >= 40 {
			return true
		}
	}
	if hr, ok := measure(inputs, "heart_rate"); ok && hr.Value >= 125 {
		return true
	}
	return false
}

func measure(inputs map[string]any, key string) (domain.Measurement, bool) {
	v, ok := inputs[key]
	if !ok {
		return domain.Measurement{}, false
	}
	return domain.ParseMeasurement(v)
}

// roundedScore rounds half to even; nil means the answer was not a finite
// number that fits in an int.
func roundedScore(answer any) *int {
	f, ok := domain.ToFloat(answer)
	if !ok || math.IsNaN(f) {
		return nil
	}
	f = math.RoundToEven(f)
	if f < math.MinInt || f >= math.MaxInt {
		return nil
	}
	n := int(f)
	return &n
}
