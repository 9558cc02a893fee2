package domain_test

import (
	"testing"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func qtcDefinition() domain.CalculatorDefinition {
	return domain.CalculatorDefinition{
		ID:           "11",
		Name:         "QTc Bazett Calculator",
		Slug:         "qtc-bazett-calculator",
		ModulePath:   "calculator_implementations.qtc_bazett",
		FunctionName: "qtc_bazett_explanation",
		FieldMap: []domain.FieldMapping{
			{Label: "Heart Rate or Pulse", Param: "heart_rate"},
			{Label: "QT interval", Param: "qt_interval"},
		},
	}
}

func TestTranslateInputs(t *testing.T) {
	def := qtcDefinition()

	t.Run("renames known labels", func(t *testing.T) {
		out := def.TranslateInputs(map[string]any{
			"Heart Rate or Pulse": []any{72.0, "beats per min"},
			"QT interval":         330,
		})
		assert.Equal(t, map[string]any{
			"heart_rate":  []any{72.0, "beats per min"},
			"qt_interval": 330,
		}, out)
	})

	t.Run("passes unknown keys through", func(t *testing.T) {
		out := def.TranslateInputs(map[string]any{
			"QT interval": 330,
			"sex":         "Male",
		})
		assert.Equal(t, "Male", out["sex"])
		assert.Equal(t, 330, out["qt_interval"])
		assert.NotContains(t, out, "QT interval")
	})

	t.Run("translated key wins over passthrough of the same name", func(t *testing.T) {
		out := def.TranslateInputs(map[string]any{
			"Heart Rate or Pulse": 60,
			"heart_rate":          99,
		})
		assert.Equal(t, 60, out["heart_rate"])
	})

	t.Run("keeps internal names supplied directly", func(t *testing.T) {
		out := def.TranslateInputs(map[string]any{"heart_rate": 99})
		assert.Equal(t, map[string]any{"heart_rate": 99}, out)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		raw := map[string]any{"QT interval": 330}
		_ = def.TranslateInputs(raw)
		assert.Equal(t, map[string]any{"QT interval": 330}, raw)
	})
}

func TestFields(t *testing.T) {
	def := qtcDefinition()
	fields := def.Fields()

	assert.Len(t, fields, len(def.FieldMap))
	assert.Equal(t, "Heart Rate or Pulse", fields[0].Label)
	assert.Equal(t, "heart_rate", fields[0].Param)

	fields[0].Label = "changed"
	assert.Equal(t, "Heart Rate or Pulse", def.FieldMap[0].Label)
}

func TestDetail(t *testing.T) {
	def := qtcDefinition()
	def.Type = "formula"
	def.Question = "What is the patient's corrected QT interval?"

	d := def.Detail()
	assert.Equal(t, "11", d.ID)
	assert.Equal(t, "qtc-bazett-calculator", d.Slug)
	assert.Equal(t, "formula", d.Type)
	assert.Equal(t, def.Question, d.Question)
	assert.Len(t, d.Fields, 2)
}

func TestResponse_Merge(t *testing.T) {
	def := qtcDefinition()
	raw := map[string]any{"Answer": 400.0, "Explanation": "because"}

	resp := domain.NewResponse(def, raw)
	resp.Merge(map[string]any{"answer": nil, "risk_class": "x"})

	assert.Nil(t, resp[domain.KeyAnswer])
	assert.Equal(t, "x", resp["risk_class"])
	assert.Equal(t, "because", resp[domain.KeyExplanation])
	assert.Equal(t, raw, resp[domain.KeyRawResponse])
	assert.Equal(t, "qtc-bazett-calculator", resp[domain.KeyCalculatorSlug])
}
