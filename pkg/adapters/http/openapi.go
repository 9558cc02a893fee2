package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// APIVersion is the version of the HTTP contract described by NewSpec.
const APIVersion = "1.0.0"

// NewSpec describes the HTTP surface as an OpenAPI 3 document.
func NewSpec(appVersion string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "MedCalc API",
			Description: "Clinical calculators behind one request/response contract. Service version " + appVersion + ".",
			Version:     APIVersion,
		},
		Paths: openapi3.NewPaths(),
	}

	summary := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("slug", openapi3.NewStringSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("type", openapi3.NewStringSchema())

	field := openapi3.NewObjectSchema().
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("python_name", openapi3.NewStringSchema())

	detail := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("slug", openapi3.NewStringSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("question", openapi3.NewStringSchema()).
		WithProperty("fields", openapi3.NewArraySchema().WithItems(field))

	result := openapi3.NewObjectSchema().
		WithProperty("calculator_id", openapi3.NewStringSchema()).
		WithProperty("calculator_slug", openapi3.NewStringSchema()).
		WithProperty("calculator_name", openapi3.NewStringSchema()).
		WithProperty("answer", openapi3.NewSchema()).
		WithProperty("explanation", openapi3.NewSchema()).
		WithProperty("raw_response", openapi3.NewObjectSchema().WithAnyAdditionalProperties()).
		WithAnyAdditionalProperties()

	problem := openapi3.NewObjectSchema().WithProperty("detail", openapi3.NewStringSchema())

	health := openapi3.NewOperation()
	health.OperationID = "getHealth"
	health.Tags = []string{"health"}
	health.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Service is up", openapi3.NewObjectSchema().WithProperty("status", openapi3.NewStringSchema()))),
	)
	doc.AddOperation("/health", http.MethodGet, health)

	info := openapi3.NewOperation()
	info.OperationID = "getInfo"
	info.Tags = []string{"health"}
	info.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Build information", openapi3.NewObjectSchema().
			WithProperty("app", openapi3.NewStringSchema()).
			WithProperty("version", openapi3.NewStringSchema()).
			WithProperty("api_version", openapi3.NewStringSchema()))),
	)
	doc.AddOperation("/info", http.MethodGet, info)

	list := openapi3.NewOperation()
	list.OperationID = "listCalculators"
	list.Tags = []string{"calculators"}
	list.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Every calculator in catalog order",
			openapi3.NewObjectSchema().WithProperty("calculators", openapi3.NewArraySchema().WithItems(summary)))),
	)
	doc.AddOperation("/api/calculators", http.MethodGet, list)

	get := openapi3.NewOperation()
	get.OperationID = "getCalculator"
	get.Tags = []string{"calculators"}
	get.AddParameter(slugParameter())
	get.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Calculator detail", detail)),
		openapi3.WithStatus(http.StatusNotFound, jsonResponse("Unknown slug", problem)),
	)
	doc.AddOperation("/api/calculators/{slug}", http.MethodGet, get)

	run := openapi3.NewOperation()
	run.OperationID = "runCalculator"
	run.Tags = []string{"calculators"}
	run.AddParameter(slugParameter())
	run.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithDescription("Inputs keyed by field label or parameter name").
		WithRequired(true).
		WithJSONSchema(openapi3.NewObjectSchema().WithAnyAdditionalProperties())}
	run.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Calculator result", result)),
		openapi3.WithStatus(http.StatusBadRequest, jsonResponse("Empty payload or missing input", problem)),
		openapi3.WithStatus(http.StatusNotFound, jsonResponse("Unknown slug", problem)),
		openapi3.WithStatus(http.StatusInternalServerError, jsonResponse("Calculator failed", problem)),
	)
	doc.AddOperation("/api/calculators/{slug}", http.MethodPost, run)

	return doc
}

func jsonResponse(description string, schema *openapi3.Schema) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(description).WithJSONSchema(schema)}
}

func slugParameter() *openapi3.Parameter {
	return openapi3.NewPathParameter("slug").
		WithDescription("Calculator slug").
		WithSchema(openapi3.NewStringSchema())
}
