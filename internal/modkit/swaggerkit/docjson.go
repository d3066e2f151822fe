package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	perr "careerassist/internal/platform/errors"
	phttp "careerassist/internal/platform/net/http"

	docs "careerassist/internal/services/api/docs"
)

// readDoc is swapped in tests
var readDoc = func() string { return docs.SwaggerInfo.ReadDoc() }

// errorSchema mirrors phttp.Envelope without data
var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

// fallbacks are added to every operation that does not document the status itself
var fallbacks = map[string]error{
	"400": perr.WithField(perr.Newf(perr.ErrorCodeValidation, "message must be at most 4000 characters"), "message"),
	"500": perr.PanicErrf("panic recovered"),
}

// upstream is added to POST operations, which all call a provider
var upstream = perr.Newf(perr.ErrorCodeChatFailed, "model unavailable")

// serveDocJSON serves the generated document as OAS 3.0.3 with the error envelope filled in
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(readDoc()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		normalize(spec, "/api/v1")
		schemas(spec)["ErrorResponse"] = errorSchema

		paths, _ := spec["paths"].(map[string]any)
		for _, node := range paths {
			ops, _ := node.(map[string]any)
			for method, opAny := range ops {
				op, ok := opAny.(map[string]any)
				if !ok {
					continue
				}
				resps, ok := op["responses"].(map[string]any)
				if !ok {
					resps = map[string]any{}
					op["responses"] = resps
				}
				for status, err := range fallbacks {
					addResponse(resps, status, err)
				}
				if strings.EqualFold(method, http.MethodPost) {
					addResponse(resps, "502", upstream)
				}
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalize pins the version swagger ui renders (3.0.3) and sets the base url
func normalize(spec map[string]any, base string) {
	delete(spec, "swagger")
	spec["openapi"] = "3.0.3"
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}
}

func schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	s, ok := comps["schemas"].(map[string]any)
	if !ok {
		s = map[string]any{}
		comps["schemas"] = s
	}
	return s
}

func addResponse(resps map[string]any, status string, err error) {
	if _, ok := resps[status]; ok {
		return
	}
	wire := perr.WireFrom(err)
	code := perr.HTTPStatus(err)
	resps[status] = map[string]any{
		"description": http.StatusText(code),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": phttp.Envelope{
					StatusCode: code,
					Status:     http.StatusText(code),
					Code:       wire.Code,
					Error:      wire.Message,
					RequestID:  "a1b2c3/d4e5-000001",
				},
			},
		},
	}
}
