// Package docs holds the OpenAPI document served at /api/docs
//
// Regenerate from the handler annotations with
//
//	swag init --v3.1 -g cmd/careerassist-api/main.go -o internal/services/api/docs --instanceName api
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Liveness with uptime",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.Health"}}}}}
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness of the store and provider credentials",
                "description": "Always 200; the status field carries the verdict",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.Readiness"}}}}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}}}
            }
        },
        "/meta/languages": {
            "get": {
                "tags": ["Meta"],
                "summary": "Supported languages in catalog order",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/langid.Candidate"}}}}}}
            }
        },
        "/language/identify": {
            "post": {
                "tags": ["Language"],
                "summary": "Identify the language of a text",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.IdentifyInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/langid.Result"}}}}}
            }
        },
        "/language/explain": {
            "post": {
                "tags": ["Language"],
                "summary": "Identify a text and show the signals behind the decision",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.IdentifyInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/langid.Explain"}}}}}
            }
        },
        "/chat/messages": {
            "post": {
                "tags": ["Chat"],
                "summary": "Send a message and get the assistant reply",
                "description": "The reply is plain text, markdown, or a sentinel line (/jobdata, /courses, /community, /portals, /generatepdf) followed by its payload",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SendInput"}}}},
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.SendOutput"}}}},
                    "403": {"description": "chat belongs to another user", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
                    "503": {"description": "model not configured", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/chat/chats": {
            "get": {
                "tags": ["Chat"],
                "summary": "List a user's chats, newest first",
                "parameters": [
                    {"name": "user_id", "in": "query", "required": true, "schema": {"type": "string"}},
                    {"name": "limit", "in": "query", "required": false, "schema": {"type": "integer", "minimum": 1, "maximum": 200}}
                ],
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Chat"}}}}}}
            }
        },
        "/chat/chats/{id}/messages": {
            "get": {
                "tags": ["Chat"],
                "summary": "Recent messages of a chat, oldest first",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "schema": {"type": "string"}},
                    {"name": "user_id", "in": "query", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Message"}}}}},
                    "403": {"description": "chat belongs to another user", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
                    "404": {"description": "unknown chat", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/voice/transcribe": {
            "post": {
                "tags": ["Voice"],
                "summary": "Transcribe a recording and identify its language",
                "requestBody": {
                    "required": true,
                    "content": {"multipart/form-data": {"schema": {
                        "type": "object",
                        "required": ["audio"],
                        "properties": {
                            "audio": {"type": "string", "format": "binary", "description": "Recorded clip, 25MB max"},
                            "language": {"type": "string", "description": "Language hint, code or English name"}
                        }
                    }}}
                },
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.TranscribeOutput"}}}},
                    "422": {"description": "invalid audio or no speech", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
                    "502": {"description": "transcription failed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        }
    },
    "components": {
        "schemas": {
            "http.Health": {"type": "object", "properties": {
                "status": {"type": "string", "example": "ok"},
                "service": {"type": "string", "example": "careerassist-api"},
                "started": {"type": "string", "example": "2026-10-01T09:00:00Z"},
                "uptime_seconds": {"type": "integer", "example": 300},
                "now": {"type": "string", "example": "2026-10-01T09:05:00Z"}
            }},
            "http.Readiness": {"type": "object", "properties": {
                "status": {"type": "string", "enum": ["ok", "degraded", "fail"], "example": "degraded"},
                "checks": {"type": "array", "items": {"type": "object", "properties": {
                    "name": {"type": "string", "example": "sqlite"},
                    "status": {"type": "string", "example": "ok"},
                    "optional": {"type": "boolean"},
                    "error": {"type": "string", "example": "GROQ_API_KEY not set"}
                }}},
                "now": {"type": "string", "example": "2026-10-01T09:05:00Z"}
            }},
            "version.BuildInfo": {"type": "object", "properties": {
                "service": {"type": "string"},
                "version": {"type": "string"},
                "commit": {"type": "string"},
                "date": {"type": "string"},
                "go_version": {"type": "string"}
            }},
            "langid.Candidate": {"type": "object", "properties": {
                "code": {"type": "string", "example": "hi"},
                "name": {"type": "string", "example": "Hindi"},
                "native_name": {"type": "string"},
                "region": {"type": "string", "example": "North India"},
                "similar": {"type": "array", "items": {"type": "string"}},
                "family": {"type": "string", "example": "devanagari"},
                "trusted": {"type": "boolean", "example": true}
            }},
            "langid.Result": {"type": "object", "properties": {
                "language": {"type": "string", "example": "ta"},
                "confidence": {"type": "number", "example": 0.95}
            }},
            "langid.Explain": {"type": "object", "properties": {
                "result": {"$ref": "#/components/schemas/langid.Result"},
                "script": {"type": "string", "example": "Bengali"},
                "family": {"type": "string", "example": "bengali"},
                "hint": {"type": "string", "example": "bn"},
                "scores": {"type": "object", "additionalProperties": {"type": "integer"}}
            }},
            "http.IdentifyInput": {"type": "object", "required": ["text"], "properties": {
                "text": {"type": "string", "maxLength": 8000},
                "hint": {"type": "string", "maxLength": 32, "example": "bn"}
            }},
            "domain.SendInput": {"type": "object", "required": ["user_id", "message"], "properties": {
                "chat_id": {"type": "string", "format": "uuid"},
                "user_id": {"type": "string", "maxLength": 128, "example": "user-42"},
                "message": {"type": "string", "maxLength": 4000, "example": "Find me data analyst jobs in Pune"},
                "language": {"type": "string", "maxLength": 32, "example": "hi"}
            }},
            "domain.SendOutput": {"type": "object", "properties": {
                "chat_id": {"type": "string"},
                "message": {"type": "string"},
                "title": {"type": "string", "example": "Job Search: Data Analyst in Pune"},
                "emoji": {"type": "string", "example": "💼"},
                "intent": {"type": "string", "example": "job_search"},
                "language": {"type": "string", "example": "en"},
                "confidence": {"type": "number", "example": 0.5}
            }},
            "domain.Chat": {"type": "object", "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "emoji": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }},
            "domain.Message": {"type": "object", "properties": {
                "id": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "assistant"]},
                "content": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }},
            "domain.TranscribeOutput": {"type": "object", "properties": {
                "text": {"type": "string"},
                "language": {"type": "string", "example": "hi"},
                "confidence": {"type": "number", "example": 0.9},
                "prompt": {"type": "string"}
            }}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "careerassist API",
	Description:      "Career assistant: chat, voice transcription and language identification",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
