package domain

// Keys of the normalized response.
const (
	KeyCalculatorID   = "calculator_id"
	KeyCalculatorSlug = "calculator_slug"
	KeyCalculatorName = "calculator_name"
	KeyAnswer         = "answer"
	KeyExplanation    = "explanation"
	KeyRawResponse    = "raw_response"
)

// Keys every calculator result is expected to carry.
const (
	ResultAnswer      = "Answer"
	ResultExplanation = "Explanation"
)

// Response is the assembled output of a calculator run. Post-processors merge
// additional keys into it.
type Response map[string]any

// NewResponse builds the base response for a definition from its raw result.
func NewResponse(def CalculatorDefinition, raw map[string]any) Response {
	return Response{
		KeyCalculatorID:   def.ID,
		KeyCalculatorSlug: def.Slug,
		KeyCalculatorName: def.Name,
		KeyAnswer:         raw[ResultAnswer],
		KeyExplanation:    raw[ResultExplanation],
		KeyRawResponse:    raw,
	}
}

// Merge copies extra over the response. Keys in extra win.
func (r Response) Merge(extra map[string]any) {
	for k, v := range extra {
		r[k] = v
	}
}
