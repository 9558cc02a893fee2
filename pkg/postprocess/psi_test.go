package postprocess_test

import (
	"math"
	"testing"

	"github.com/aretw0/medcalc/pkg/postprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lowRiskInputs() map[string]any {
	return map[string]any{
		"age":                     []any{45.0, "years"},
		"nursing_home_resident":   false,
		"neoplastic_disease":      false,
		"liver_disease":           false,
		"chf":                     false,
		"cerebrovascular_disease": false,
		"renal_disease":           false,
		"respiratory_rate":        []any{18.0, "breaths per minute"},
		"sys_bp":                  []any{120.0, "mm hg"},
		"heart_rate":              []any{80.0, "beats per minute"},
		"temperature":             []any{37.0, "C"},
		"altered_mental_status":   false,
	}
}

func TestPSIRiskClass_ClassI(t *testing.T) {
	out, err := postprocess.PSIRiskClass(lowRiskInputs(), map[string]any{"Answer": 35})
	require.NoError(t, err)

	assert.Equal(t, true, out["is_class_i"])
	assert.Nil(t, out["score"])
	assert.Equal(t, 35, out["raw_score"])
	assert.Equal(t, postprocess.RiskClassI, out["risk_class"])
	assert.Equal(t, "Very low risk. Outpatient care appropriate.", out["recommendation"])
}

func TestPSIRiskClass_ClassIBreakers(t *testing.T) {
	tests := map[string]func(in map[string]any){
		"older than 50":         func(in map[string]any) { in["age"] = []any{51.0, "years"} },
		"nursing home":          func(in map[string]any) { in["nursing_home_resident"] = "Yes" },
		"comorbidity":           func(in map[string]any) { in["chf"] = "TRUE" },
		"altered mental status": func(in map[string]any) { in["altered_mental_status"] = 1 },
		"tachypnea":             func(in map[string]any) { in["respiratory_rate"] = 30 },
		"hypotension":           func(in map[string]any) { in["sys_bp"] = []any{89.0, "mm hg"} },
		"hypothermia":           func(in map[string]any) { in["temperature"] = []any{94.0, "F"} },
		"hyperthermia":          func(in map[string]any) { in["temperature"] = []any{40.0, "°C"} },
		"tachycardia":           func(in map[string]any) { in["heart_rate"] = 125 },
		"unknown age":           func(in map[string]any) { delete(in, "age") },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := lowRiskInputs()
			mutate(in)

			out, err := postprocess.PSIRiskClass(in, map[string]any{"Answer": 60.0})
			require.NoError(t, err)
			assert.Equal(t, false, out["is_class_i"])
			assert.Equal(t, 60, out["score"])
			assert.Equal(t, postprocess.RiskClassII, out["risk_class"])
		})
	}
}

func TestPSIRiskClass_Tiers(t *testing.T) {
	older := lowRiskInputs()
	older["age"] = []any{72.0, "years"}

	tests := []struct {
		answer any
		want   string
	}{
		{70, postprocess.RiskClassII},
		{71, postprocess.RiskClassIII},
		{85, postprocess.RiskClassIII},
		{90.4, postprocess.RiskClassIII},
		{91, postprocess.RiskClassIV},
		{95, postprocess.RiskClassIV},
		{"95", postprocess.RiskClassIV},
		{130, postprocess.RiskClassIV},
		{131, postprocess.RiskClassV},
		{140, postprocess.RiskClassV},
	}

	for _, tt := range tests {
		out, err := postprocess.PSIRiskClass(older, map[string]any{"Answer": tt.answer})
		require.NoError(t, err)
		assert.Equal(t, tt.want, out["risk_class"], "answer %v", tt.answer)
	}
}

func TestPSIRiskClass_ExactScenarios(t *testing.T) {
	older := lowRiskInputs()
	older["age"] = 68

	out, err := postprocess.PSIRiskClass(older, map[string]any{"Answer": 85})
	require.NoError(t, err)
	assert.Equal(t, false, out["is_class_i"])
	assert.Equal(t, postprocess.RiskClassIII, out["risk_class"])

	out, err = postprocess.PSIRiskClass(older, map[string]any{"Answer": 95})
	require.NoError(t, err)
	assert.Equal(t, postprocess.RiskClassIV, out["risk_class"])
	assert.Equal(t, "Moderate risk. Recommend inpatient admission.", out["recommendation"])

	out, err = postprocess.PSIRiskClass(older, map[string]any{"Answer": 140})
	require.NoError(t, err)
	assert.Equal(t, postprocess.RiskClassV, out["risk_class"])
	assert.Equal(t, "High risk. Recommend inpatient admission (consider ICU).", out["recommendation"])
}

func TestPSIRiskClass_IndeterminateScore(t *testing.T) {
	older := lowRiskInputs()
	older["age"] = []any{80.0, "years"}

	out, err := postprocess.PSIRiskClass(older, map[string]any{"Answer": "n/a"})
	require.NoError(t, err)
	assert.Nil(t, out["score"])
	assert.Nil(t, out["raw_score"])
	assert.Equal(t, postprocess.RiskClassUnknown, out["risk_class"])
	assert.Equal(t, false, out["is_class_i"])

	for _, answer := range []any{1e300, -1e300, math.Inf(1), math.NaN()} {
		out, err = postprocess.PSIRiskClass(older, map[string]any{"Answer": answer})
		require.NoError(t, err)
		assert.Nil(t, out["raw_score"], "answer %v", answer)
		assert.Equal(t, postprocess.RiskClassUnknown, out["risk_class"], "answer %v", answer)
	}

	out, err = postprocess.PSIRiskClass(lowRiskInputs(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, postprocess.RiskClassI, out["risk_class"], "fast path does not need a score")
}

func TestPSIRiskClass_RoundsHalfToEven(t *testing.T) {
	older := lowRiskInputs()
	older["age"] = 80

	out, err := postprocess.PSIRiskClass(older, map[string]any{"Answer": 90.5})
	require.NoError(t, err)
	assert.Equal(t, 90, out["score"])
	assert.Equal(t, postprocess.RiskClassIII, out["risk_class"])
}
