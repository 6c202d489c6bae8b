// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/categories": {"get": {"tags": ["public"], "summary": "List categories with published content counts", "responses": {"200": {"description": "OK"}}}},
        "/categories/{id}": {"get": {"tags": ["public"], "summary": "Get a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/categories/{id}/materials": {"get": {"tags": ["public"], "summary": "List published materials of a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/categories/{id}/videos": {"get": {"tags": ["public"], "summary": "List published videos of a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/materials": {"get": {"tags": ["public"], "summary": "List published materials", "parameters": [{"type": "integer", "name": "category", "in": "query"}, {"type": "string", "name": "author", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/materials/{id}": {"get": {"tags": ["public"], "summary": "Get a published material", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/materials/author/{author}": {"get": {"tags": ["public"], "summary": "List published materials by author", "parameters": [{"type": "string", "name": "author", "in": "path", "required": true}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/authors": {"get": {"tags": ["public"], "summary": "List authors of published materials", "responses": {"200": {"description": "OK"}}}},
        "/videos": {"get": {"tags": ["public"], "summary": "List published videos", "parameters": [{"type": "integer", "name": "category", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/videos/{id}": {"get": {"tags": ["public"], "summary": "Get a published video", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/search": {"get": {"tags": ["public"], "summary": "Search published materials and videos", "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}, {"type": "string", "name": "type", "in": "query", "enum": ["materials", "videos"]}, {"type": "integer", "name": "category", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/latest": {"get": {"tags": ["public"], "summary": "Newest published materials and videos", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/health": {"get": {"tags": ["public"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/admin/check": {"get": {"tags": ["admin-auth"], "summary": "Report whether an admin exists", "responses": {"200": {"description": "OK"}}}},
        "/admin/init": {"post": {"tags": ["admin-auth"], "summary": "Create the default admin if none exists", "responses": {"200": {"description": "OK"}}}},
        "/admin/login": {"post": {"tags": ["admin-auth"], "summary": "Admin login", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}},
        "/admin/reset-password": {"post": {"tags": ["admin-auth"], "summary": "Reset an admin password (operator use)", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/admin/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["admin-auth"], "summary": "Current admin identity", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/admin/stats": {"get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Entity counts", "responses": {"200": {"description": "OK"}}}},
        "/admin/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List all categories", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Create a category", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/admin/categories/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Update a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Delete a category", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/materials": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List all materials, drafts included", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Create a material", "consumes": ["application/json", "multipart/form-data"], "parameters": [{"type": "file", "name": "image", "in": "formData"}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "413": {"description": "Request Entity Too Large"}}}
        },
        "/admin/materials/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Update a material", "consumes": ["application/json", "multipart/form-data"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "file", "name": "image", "in": "formData"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Delete a material", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/videos": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List all videos, drafts included", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Create a video", "consumes": ["application/json", "multipart/form-data"], "parameters": [{"type": "file", "name": "video", "in": "formData"}, {"type": "file", "name": "thumbnail", "in": "formData"}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "413": {"description": "Request Entity Too Large"}}}
        },
        "/admin/videos/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Update a video", "consumes": ["application/json", "multipart/form-data"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "file", "name": "video", "in": "formData"}, {"type": "file", "name": "thumbnail", "in": "formData"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Delete a video", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Education Portal API",
	Description:      "Public read/search API for categorized materials and videos, plus the bearer-gated admin CRUD API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
