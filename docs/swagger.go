// Package docs EcoTravel Admin API.
//
// Административный шлюз eco-travel платформы. Собирает формы админки,
// переводит поля в формат travel API и обратно, нормализует ответы
// планировщика и отдаёт готовые к отображению модели.
//
// Основные возможности:
// - Бронирования, локации и транспорт (CRUD)
// - Сравнение активностей, оптимизация поездки, маршрут на три дня
// - Состояние страниц админки по сессиям
// - Журнал действий администраторов
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {"get": {"tags": ["System"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/pages": {"get": {"tags": ["System"], "summary": "Page states", "parameters": [{"type": "boolean", "name": "all", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/audit": {"get": {"tags": ["System"], "summary": "Admin audit log", "parameters": [{"type": "string", "name": "resource", "in": "query"}, {"type": "string", "name": "entity_id", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "503": {"description": "Audit log is not configured"}}}},
        "/api/v1/bookings": {
            "get": {"tags": ["Bookings"], "summary": "List bookings", "parameters": [{"type": "string", "name": "tourist_id", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Bookings"], "summary": "Create booking", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}}
        },
        "/api/v1/bookings/{id}": {
            "get": {"tags": ["Bookings"], "summary": "Get booking", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Bookings"], "summary": "Update booking", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Bookings"], "summary": "Delete booking", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/locations": {
            "get": {"tags": ["Locations"], "summary": "List locations", "parameters": [{"type": "string", "name": "type", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Locations"], "summary": "Create location", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/locations/nearby": {"get": {"tags": ["Locations"], "summary": "Locations within a radius", "parameters": [{"type": "number", "name": "latitude", "in": "query", "required": true}, {"type": "number", "name": "longitude", "in": "query", "required": true}, {"type": "number", "name": "radius_km", "in": "query"}, {"type": "string", "name": "location_type", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/locations/variants/{type}": {"get": {"tags": ["Locations"], "summary": "List locations of one variant", "parameters": [{"type": "string", "name": "type", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/locations/{id}": {
            "get": {"tags": ["Locations"], "summary": "Get location", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "type", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Locations"], "summary": "Update location", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Locations"], "summary": "Delete location", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/transports": {"get": {"tags": ["Transports"], "summary": "List transports", "parameters": [{"type": "string", "name": "kind", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/transports/search": {"get": {"tags": ["Transports"], "summary": "Search transports", "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/transports/rankings/{ranking}": {"get": {"tags": ["Transports"], "summary": "Transport ranking", "parameters": [{"type": "string", "name": "ranking", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/transports/{kind}": {"post": {"tags": ["Transports"], "summary": "Create transport", "parameters": [{"type": "string", "name": "kind", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}}}},
        "/api/v1/transports/{id}": {
            "get": {"tags": ["Transports"], "summary": "Get transport", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Transports"], "summary": "Update transport", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Transports"], "summary": "Delete transport", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/activities": {"get": {"tags": ["Planner"], "summary": "List activities for the comparison pickers", "parameters": [{"name": "type", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/activities/compare": {"post": {"tags": ["Planner"], "summary": "Compare two activities", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/trips/optimize": {"post": {"tags": ["Planner"], "summary": "Optimize a trip for carbon footprint", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/itineraries/three-day": {"post": {"tags": ["Planner"], "summary": "Generate a three-day itinerary", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "EcoTravel Admin API",
	Description:      "Административный шлюз eco-travel платформы",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
