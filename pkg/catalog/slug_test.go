package catalog_test

import (
	"testing"

	"github.com/aretw0/medcalc/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"QTc Bazett Calculator":                       "qtc-bazett-calculator",
		"PSI Score: Pneumonia Severity Index for CAP": "psi-score-pneumonia-severity-index-for-cap",
		"  CHA2DS2-VASc Score for AF Stroke Risk  ":   "cha2ds2-vasc-score-for-af-stroke-risk",
		"Body Mass Index (BMI)":                       "body-mass-index-bmi",
		"---":                                         "calculator",
		"":                                            "calculator",
	}

	for in, want := range tests {
		assert.Equal(t, want, catalog.Slugify(in), in)
	}
}

func TestModulePath(t *testing.T) {
	tests := map[string]string{
		"calculator_implementations/psi_score.py": "calculator_implementations.psi_score",
		`calculator_implementations\bmi.py`:       "calculator_implementations.bmi",
		"./calculator_implementations/map.py":     "calculator_implementations.map",
		"standalone":                              "standalone",
	}

	for in, want := range tests {
		assert.Equal(t, want, catalog.ModulePath(in), in)
	}
}
