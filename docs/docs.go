// Package docs registers the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/api/donors/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["donors"],
                "summary": "Register a donor",
                "parameters": [
                    {"description": "Donor details", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.registerDonorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/login-donor": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["donors"],
                "summary": "Donor login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.donorLoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/register-hospital": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["hospitals"],
                "summary": "Register a hospital",
                "parameters": [
                    {"description": "Hospital details; blood is an array of {type, units}", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.registerHospitalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/login-hospital": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["hospitals"],
                "summary": "Hospital login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.hospitalLoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/donor-dashboard": {
            "get": {
                "security": [{"ClaimToken": []}],
                "produces": ["application/json"],
                "tags": ["donors"],
                "summary": "Donor dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.donorDashboardResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/hospital-dashboard": {
            "get": {
                "security": [{"ClaimToken": []}],
                "produces": ["application/json"],
                "tags": ["hospitals"],
                "summary": "Hospital dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.hospitalDashboardResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/hospital-admin-data": {
            "get": {
                "security": [{"ClaimToken": []}],
                "produces": ["application/json"],
                "tags": ["hospitals"],
                "summary": "Hospital admin data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.adminDataResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/find-blood": {
            "post": {
                "description": "Donors must match blood group and location exactly. Hospitals must be in the city and list the blood type, whatever the unit count.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["match"],
                "summary": "Find donors and hospitals for a blood group",
                "parameters": [
                    {"description": "Blood group and location", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/handler.findBloodRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.findBloodResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
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
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.registerDonorRequest": {
            "type": "object",
            "required": ["bloodGroup", "email", "location", "name", "password", "phone"],
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                "bloodGroup": {"type": "string"}, "location": {"type": "string"}, "password": {"type": "string"}
            }
        },
        "handler.registerHospitalRequest": {
            "type": "object",
            "required": ["address", "blood", "city", "email", "hospitalName", "password", "phone"],
            "properties": {
                "hospitalName": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                "address": {"type": "string"}, "city": {"type": "string"}, "password": {"type": "string"},
                "blood": {"type": "array", "items": {"$ref": "#/definitions/handler.bloodResponse"}}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.findBloodRequest": {
            "type": "object",
            "properties": {"bloodGroup": {"type": "string"}, "location": {"type": "string"}}
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}}
        },
        "handler.bloodResponse": {
            "type": "object",
            "properties": {"type": {"type": "string"}, "units": {"type": "integer"}}
        },
        "handler.donorResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"},
                "phone": {"type": "string"}, "bloodGroup": {"type": "string"}, "location": {"type": "string"}
            }
        },
        "handler.hospitalResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "hospitalName": {"type": "string"}, "email": {"type": "string"},
                "phone": {"type": "string"}, "address": {"type": "string"}, "city": {"type": "string"},
                "blood": {"type": "array", "items": {"$ref": "#/definitions/handler.bloodResponse"}},
                "isAdmin": {"type": "boolean"}
            }
        },
        "handler.donorLoginResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}, "name": {"type": "string"}}
        },
        "handler.hospitalLoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}, "token": {"type": "string"}, "hospitalName": {"type": "string"},
                "blood": {"type": "array", "items": {"$ref": "#/definitions/handler.bloodResponse"}}
            }
        },
        "handler.donorDashboardResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "donor": {"$ref": "#/definitions/handler.donorResponse"}}
        },
        "handler.hospitalDashboardResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "hospital": {"$ref": "#/definitions/handler.hospitalResponse"}}
        },
        "handler.adminDataResponse": {
            "type": "object",
            "properties": {"hospital": {"$ref": "#/definitions/handler.hospitalResponse"}}
        },
        "handler.findBloodResponse": {
            "type": "object",
            "properties": {
                "found": {"type": "boolean"},
                "donors": {"type": "array", "items": {"$ref": "#/definitions/handler.donorResponse"}},
                "hospitals": {"type": "array", "items": {"$ref": "#/definitions/handler.hospitalResponse"}}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}}
            }
        }
    },
    "securityDefinitions": {
        "ClaimToken": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BloodConnect API",
	Description:      "Donor and hospital registration, claim-token authentication and blood availability search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
