// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}}}
            }
        },
        "/api/v1/poi/from_image": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["poi"],
                "summary": "Identify the point of interest in a photo",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query", "required": true},
                    {"type": "file", "description": "Photo", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [
                        {"$ref": "#/definitions/handler.Envelope"},
                        {"type": "object", "properties": {"message": {"$ref": "#/definitions/models.SummaryPair"}}}
                    ]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/text_gpt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Complete a query with OpenAI",
                "parameters": [{"description": "Query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CompletionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/text_gemini": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Complete a query with Gemini",
                "parameters": [{"description": "Query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CompletionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/text_llama": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Complete a query with Llama on Cloudflare Workers AI",
                "parameters": [{"description": "Query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CompletionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/visual_gpt": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Describe a photo with OpenAI",
                "parameters": [{"type": "file", "description": "Photo", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/visual_gemini": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Describe a photo with Gemini",
                "parameters": [{"type": "file", "description": "Photo", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/vision": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Detect faces and text in a base64 image with Google Cloud Vision",
                "parameters": [{"description": "Base64 image", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.VisionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/embedding": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Embed texts with BGE on Cloudflare Workers AI",
                "parameters": [{"description": "Texts", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EmbeddingRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/ext/geocoding": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ext"],
                "summary": "Reverse geocode a coordinate with the Google Geocoding API",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lng", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/store/kv": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "List stored documents",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Store a JSON object, or each element of a JSON array",
                "parameters": [{"description": "Document or array of documents", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/store/kv/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Fetch one stored document",
                "parameters": [{"type": "integer", "description": "Document id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/store/vectors": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Embed texts and store the vectors",
                "parameters": [{"description": "Texts and metadata", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StoreVectorsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/store/vectors/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Find stored vectors closest to a query text",
                "parameters": [
                    {"type": "string", "description": "Query text", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "Maximum results (default 10, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/store/vectors/{id}/neighbors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Find stored vectors closest to a stored vector",
                "parameters": [
                    {"type": "integer", "description": "Vector id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum results (default 10, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "handler.Envelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "message": {"type": "object"}
            }
        },
        "handler.ErrorEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "error"},
                "message": {"type": "string", "example": "Something went wrong"}
            }
        },
        "models.CompletionRequest": {
            "type": "object",
            "required": ["query"],
            "properties": {"query": {"type": "string"}}
        },
        "models.VisionRequest": {
            "type": "object",
            "required": ["base64"],
            "properties": {"base64": {"type": "string"}}
        },
        "models.EmbeddingRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "array", "items": {"type": "string"}}}
        },
        "models.StoreVectorsRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "array", "items": {"type": "string"}},
                "metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "provider": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "models.SummaryPair": {
            "type": "object",
            "properties": {
                "primary": {"$ref": "#/definitions/models.Summary"},
                "secondary": {"$ref": "#/definitions/models.Summary"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "POI API",
	Description:      "Identifies points of interest in photos by combining OCR, reverse geocoding and several language models.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
