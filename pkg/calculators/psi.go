package calculators

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/medcalc/pkg/domain"
)

type psiCriterion struct {
	key    string
	label  string
	points int
	hit    func(m domain.Measurement) bool
}

// History items score when their flag is set.
var psiHistory = []psiCriterion{
	{key: "nursing_home_resident", label: "Nursing home resident", points: 10},
	{key: "neoplastic_disease", label: "Neoplastic disease", points: 30},
	{key: "liver_disease", label: "Liver disease history", points: 20},
	{key: "chf", label: "CHF history", points: 10},
	{key: "cerebrovascular_disease", label: "Cerebrovascular disease history", points: 10},
	{key: "renal_disease", label: "Renal disease history", points: 10},
	{key: "altered_mental_status", label: "Altered mental status", points: 20},
	{key: "pleural_effusion", label: "Pleural effusion on x-ray", points: 10},
}

var psiFindings = []psiCriterion{
	{"respiratory_rate", "Respiratory rate ≥ 30 breaths/min", 20, func(m domain.Measurement) bool { return m.Value >= 30 }},
	{"sys_bp", "Systolic blood pressure < 90 mm Hg", 20, func(m domain.Measurement) bool { return m.Value < 90 }},
	{"temperature", "Temperature < 35°C or ≥ 40°C", 15, func(m domain.Measurement) bool {
		c := m.Celsius()
		return c < 35 || c >= 40
	}},
	{"heart_rate", "Pulse ≥ 125 beats/min", 10, func(m domain.Measurement) bool { return m.Value >= 125 }},
	{"pH", "pH < 7.35", 30, func(m domain.Measurement) bool { return m.Value < 7.35 }},
	{"bun", "BUN ≥ 30 mg/dL", 20, func(m domain.Measurement) bool { return m.Value >= 30 }},
	{"sodium", "Sodium < 130 mmol/L", 20, func(m domain.Measurement) bool { return m.Value < 130 }},
	{"glucose", "Glucose ≥ 250 mg/dL", 10, func(m domain.Measurement) bool { return m.Value >= 250 }},
	{"hemocratit", "Hematocrit < 30%", 10, func(m domain.Measurement) bool { return m.Value < 30 }},
	{"partial_pressure_oxygen", "Partial pressure of oxygen < 60 mm Hg", 10, func(m domain.Measurement) bool { return m.Value < 60 }},
}

// PSIScore computes the Pneumonia Severity Index (PORT score). Age and sex are
// required; any other absent criterion scores zero.
func PSIScore(ctx context.Context, inputs map[string]any) (any, error) {
	age, err := required(inputs, "age")
	if err != nil {
		return nil, err
	}
	sexValue, ok := inputs["sex"]
	if !ok {
		return nil, &domain.MissingInputError{Field: "sex"}
	}
	sex := strings.ToLower(fmt.Sprint(sexValue))

	years := int(age.Years())
	score := years

	var b strings.Builder
	fmt.Fprintf(&b, "The patient is %d years old, so the score starts at %d. ", years, years)
	if sex == "female" || sex == "f" {
		score -= 10
		fmt.Fprintf(&b, "The patient is female, so 10 points are subtracted, making the score %d. ", score)
	}

	for _, c := range psiHistory {
		if domain.AsBool(inputs[c.key]) {
			score += c.points
			fmt.Fprintf(&b, "%s: +%d, making the score %d. ", c.label, c.points, score)
		}
	}

	for _, c := range psiFindings {
		m, ok := optional(inputs, c.key)
		if !ok || !c.hit(m) {
			continue
		}
		score += c.points
		fmt.Fprintf(&b, "%s: +%d, making the score %d. ", c.label, c.points, score)
	}

	fmt.Fprintf(&b, "The patient's PSI score is %d.", score)
	return result(score, b.String()), nil
}
