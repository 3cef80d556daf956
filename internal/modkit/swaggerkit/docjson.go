package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	docs "patchgate/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator, modules call this while mounting
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset clears registered mutators for tests
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// serveDocJSON serves the spec JSON after global and module mutations
func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, docs.SwaggerInfo.BasePath)

		if titleSuffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + titleSuffix
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		addDefaultResponse(spec, "400", "Bad Request", map[string]any{
			"status_code": 400,
			"status":      "Bad Request",
			"code":        5,
			"message":     "missing required fields: custom_version",
			"request_id":  "579f33bf50b1/abc-000001",
		})
		addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
			"status_code": 500,
			"status":      "Internal Server Error",
			"code":        10,
			"message":     "workflow dispatch rejected",
			"error":       `{"message":"No ref found for: main"}`,
			"request_id":  "579f33bf50b1/abc-000002",
		})

		mu.RLock()
		ms := append([]SpecMutator(nil), mutators...)
		mu.RUnlock()
		for _, m := range ms {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes sure the spec is OAS 3.0 and has a servers array
// swagger http ui can't render 3.1 yet, so downconvert if needed
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"message":     map[string]any{"type": "string"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status", "message"},
	}
}

// addDefaultResponse walks every operation and injects status if absent
// OPTIONS operations are skipped, they never answer with an envelope
func addDefaultResponse(spec map[string]any, status, desc string, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for verb, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok || verb == "options" {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
