// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/chat": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Detects English or Hindi, retrieves relevant Indian legal passages and returns a plain-language answer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Ask a legal question",
                "parameters": [
                    {
                        "description": "Question",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ChatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ChatResponse"}},
                    "400": {"description": "Invalid body or empty query", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Missing or wrong API key", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Pipeline failure", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/api/documents": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "List knowledge base documents",
                "parameters": [
                    {"type": "string", "description": "en or hi", "name": "language", "in": "query"},
                    {"type": "integer", "description": "page size (1-200, default 50)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "items to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DocumentPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "handlers.DocumentItem": {
            "type": "object",
            "properties": {
                "excerpt": {"type": "string"},
                "id": {"type": "string"},
                "language": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "handlers.DocumentPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handlers.DocumentItem"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "handlers.ChatRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "How do I file an FIR?"}
            }
        },
        "handlers.ChatResponse": {
            "type": "object",
            "properties": {
                "language": {"type": "string", "example": "en"},
                "processing_time": {"type": "number", "example": 1.25},
                "response": {"type": "string"},
                "sources": {"type": "array", "items": {"type": "string"}}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Shared API key of the chat widget.",
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "LegaLuna API",
	Description:      "Bilingual (English/Hindi) legal question answering over Indian law.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
