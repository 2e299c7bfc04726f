// Package docs registers the Swagger document served at /swagger/*any.
// Keep it in step with the routes in internal/adapter/http/routes.
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
        "/sessions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open an editing session for a new header",
                "parameters": [
                    {"description": "header kind and initial fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.OpenSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sessions/budgets/{budget_id}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open an editing session for a saved budget",
                "parameters": [
                    {"type": "string", "description": "budget id", "name": "budget_id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sessions/{session_id}/exams": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Add an exam to the budget",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "session_id", "in": "path", "required": true},
                    {"description": "exam", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.AddExamRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sessions/{session_id}/plan": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Change insurer/plan and re-price every exam",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "session_id", "in": "path", "required": true},
                    {"description": "plan", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ChangePlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sessions/{session_id}/payments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Declare a payment, optionally charged through Mercado Pago",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "session_id", "in": "path", "required": true},
                    {"description": "payment", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.AddPaymentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}},
                    "402": {"description": "Payment Required", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sessions/{session_id}/confirm": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Turn the budget into an order",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ConfirmOrderResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sessions/{session_id}/slots/exam": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["slots"],
                "summary": "Pick an exam and jump to its earliest available slot",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "session_id", "in": "path", "required": true},
                    {"description": "exam", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ChooseExamRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SessionResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/sessions/{session_id}/slots/dates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["slots"],
                "summary": "List dates with free slots for the exam being picked",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "description": "exam id (defaults to the picker exam)", "name": "exam_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DatesResponse"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "request.OpenSessionRequest": {
            "type": "object",
            "required": ["kind"],
            "properties": {
                "kind": {"type": "string", "enum": ["orcamento", "agendamento"]},
                "user_id": {"type": "string"},
                "unit_id": {"type": "string"},
                "patient_id": {"type": "string"},
                "patient_name": {"type": "string"},
                "insurer_id": {"type": "string"},
                "plan_id": {"type": "string"},
                "requester_id": {"type": "string"}
            }
        },
        "request.AddExamRequest": {
            "type": "object",
            "required": ["exam_code", "exam_id"],
            "properties": {"exam_id": {"type": "string"}, "exam_code": {"type": "string"}, "exam_name": {"type": "string"}}
        },
        "request.ChangePlanRequest": {
            "type": "object",
            "required": ["plan_id"],
            "properties": {"insurer_id": {"type": "string"}, "plan_id": {"type": "string"}}
        },
        "request.AddPaymentRequest": {
            "type": "object",
            "required": ["amount", "method_id"],
            "properties": {
                "method_id": {"type": "string"},
                "amount": {"type": "number"},
                "paid_at": {"type": "string"},
                "mp_payload": {"type": "object"}
            }
        },
        "request.ChooseExamRequest": {
            "type": "object",
            "required": ["exam_id"],
            "properties": {"exam_id": {"type": "string"}}
        },
        "response.SessionResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "user_id": {"type": "string"},
                "discount_editable": {"type": "boolean"},
                "editable": {"type": "boolean"},
                "budget": {"type": "object"},
                "picker": {"type": "object"},
                "updated_at": {"type": "string"}
            }
        },
        "response.ConfirmOrderResponse": {
            "type": "object",
            "properties": {
                "order": {"type": "object"},
                "session": {"$ref": "#/definitions/response.SessionResponse"}
            }
        },
        "response.DatesResponse": {
            "type": "object",
            "properties": {"dates": {"type": "array", "items": {"type": "string"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Laboratorio XPTO Front-Office API",
	Description:      "Budget and appointment editing sessions: exams, plan pricing, discounts, payments, orders and slot picking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
