// Package docs holds the OpenAPI document for the patchgate API and registers it with swag
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/patch": {
            "post": {
                "tags": ["patch"],
                "summary": "Dispatch the default patch workflow",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/PatchRequest"}}}
                },
                "responses": {
                    "200": {
                        "description": "Workflow triggered",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AcceptedResponse"}}}
                    }
                }
            },
            "options": {
                "tags": ["patch"],
                "summary": "Preflight",
                "responses": {"200": {"description": "Empty body"}}
            }
        },
        "/patch/{target}": {
            "post": {
                "tags": ["patch"],
                "summary": "Dispatch the workflow registered for a target",
                "parameters": [
                    {"name": "target", "in": "path", "required": true, "schema": {"type": "string"}}
                ],
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/PatchRequest"}}}
                },
                "responses": {
                    "200": {
                        "description": "Workflow triggered",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AcceptedResponse"}}}
                    },
                    "404": {
                        "description": "Unknown target",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            }
        },
        "/patch/targets": {
            "get": {
                "tags": ["patch"],
                "summary": "List dispatch targets",
                "responses": {"200": {"description": "Target names and the default"}}
            }
        },
        "/meta/health": {
            "get": {"tags": ["meta"], "summary": "Liveness", "responses": {"200": {"description": "ok"}}}
        },
        "/meta/ready": {
            "get": {"tags": ["meta"], "summary": "Readiness", "responses": {"200": {"description": "ready"}}}
        },
        "/meta/version": {
            "get": {"tags": ["meta"], "summary": "Build info", "responses": {"200": {"description": "version"}}}
        },
        "/meta/service": {
            "get": {"tags": ["meta"], "summary": "Service summary", "responses": {"200": {"description": "service"}}}
        }
    },
    "components": {
        "schemas": {
            "PatchRequest": {
                "type": "object",
                "required": [
                    "framework_jar_url",
                    "services_jar_url",
                    "miui_services_jar_url",
                    "android_api_level",
                    "custom_device_name",
                    "custom_version"
                ],
                "properties": {
                    "framework_jar_url": {"type": "string"},
                    "services_jar_url": {"type": "string"},
                    "miui_services_jar_url": {"type": "string"},
                    "android_api_level": {"type": "string", "example": "35"},
                    "custom_device_name": {"type": "string"},
                    "custom_version": {"type": "string"},
                    "user_id": {"type": "string"}
                }
            },
            "AcceptedResponse": {
                "type": "object",
                "properties": {
                    "status_code": {"type": "integer", "format": "int32"},
                    "status": {"type": "string"},
                    "message": {"type": "string", "example": "Workflow triggered successfully"},
                    "request_id": {"type": "string"},
                    "data": {
                        "type": "object",
                        "properties": {
                            "dispatch_id": {"type": "string", "format": "uuid"},
                            "target": {"type": "string"},
                            "workflow": {"type": "string"},
                            "ref": {"type": "string"}
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Title:            "patchgate API",
	Description:      "Forwards patch form submissions to a GitHub Actions workflow_dispatch.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
