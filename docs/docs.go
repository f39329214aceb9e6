// Package docs registers the swagger document of the news CMS API.
// Regenerate with: swag init -g cmd/app/main.go
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
        "/api/v1/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["featured"],
                "summary": "Homepage featured news",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Article"}}}}
            }
        },
        "/api/v1/highlights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["highlights"],
                "summary": "Category highlights",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.CategoryHighlight"}}}}
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Active categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Category"}}}}
            }
        },
        "/api/v1/banners": {
            "get": {
                "produces": ["application/json"],
                "tags": ["banners"],
                "summary": "Deliverable banners",
                "parameters": [{"type": "string", "description": "Placement slot", "name": "position", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Banner"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/news/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Published article by slug",
                "parameters": [{"type": "string", "description": "Article slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.Article"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/news/{id}/views": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Article view counters",
                "parameters": [{"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.ViewStats"}}}
            }
        },
        "/api/v1/news/{id}/view": {
            "post": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Count an article view",
                "parameters": [{"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.ViewResult"}}}
            }
        },
        "/api/banner/click": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["banners"],
                "summary": "Record a banner click",
                "parameters": [{"description": "Clicked banner", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.BannerEventRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.SuccessResponse"}}}
            }
        },
        "/api/banner/impression": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["banners"],
                "summary": "Record a banner impression",
                "parameters": [{"description": "Shown banner", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.BannerEventRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.SuccessResponse"}}}
            }
        },
        "/api/v1/admin/featured": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Current featured curation",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.FeaturedConfig"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Replace the featured curation",
                "parameters": [{"description": "Curated ids", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.FeaturedRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.FeaturedConfig"}}}
            }
        },
        "/api/v1/admin/banners/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Banner performance",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.BannerStats"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        }
    },
    "definitions": {
        "rest.Category": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"},
                "color": {"type": "string"},
                "description": {"type": "string"},
                "sortOrder": {"type": "integer"},
                "isActive": {"type": "boolean"}
            }
        },
        "rest.Article": {
            "type": "object",
            "properties": {
                "articleId": {"type": "string"},
                "categoryId": {"type": "string"},
                "title": {"type": "string"},
                "subtitle": {"type": "string"},
                "content": {"type": "string"},
                "coverImage": {"type": "string"},
                "author": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "slug": {"type": "string"},
                "metaDescription": {"type": "string"},
                "metaKeywords": {"type": "array", "items": {"type": "string"}},
                "isPublished": {"type": "boolean"},
                "publishedAt": {"type": "string"},
                "isFeatured": {"type": "boolean"},
                "featuredPosition": {"type": "integer"},
                "views": {"type": "integer"},
                "uniqueViews": {"type": "integer"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "category": {"$ref": "#/definitions/rest.Category"}
            }
        },
        "rest.HighlightPost": {
            "type": "object",
            "properties": {
                "articleId": {"type": "string"},
                "title": {"type": "string"},
                "subtitle": {"type": "string"},
                "slug": {"type": "string"},
                "coverImage": {"type": "string"},
                "author": {"type": "string"},
                "publishedAt": {"type": "string"},
                "excerpt": {"type": "string"}
            }
        },
        "rest.CategoryHighlight": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"},
                "color": {"type": "string"},
                "posts": {"type": "array", "items": {"$ref": "#/definitions/rest.HighlightPost"}},
                "latestPostDate": {"type": "string"}
            }
        },
        "rest.ViewStats": {
            "type": "object",
            "properties": {"views": {"type": "integer"}, "uniqueViews": {"type": "integer"}}
        },
        "rest.ViewResult": {
            "type": "object",
            "properties": {"counted": {"type": "boolean"}}
        },
        "rest.Banner": {
            "type": "object",
            "properties": {
                "bannerId": {"type": "string"},
                "title": {"type": "string"},
                "imageUrl": {"type": "string"},
                "linkUrl": {"type": "string"},
                "position": {"type": "string"},
                "isActive": {"type": "boolean"},
                "sortOrder": {"type": "integer"},
                "clicks": {"type": "integer"},
                "impressions": {"type": "integer"},
                "ctr": {"type": "number"},
                "maxClicks": {"type": "integer"},
                "maxImpressions": {"type": "integer"},
                "startsAt": {"type": "string"},
                "expiresAt": {"type": "string"},
                "targetAudience": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "rest.BannerEventRequest": {
            "type": "object",
            "properties": {"bannerId": {"type": "string"}, "position": {"type": "string"}}
        },
        "rest.SuccessResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "rest.FeaturedRequest": {
            "type": "object",
            "properties": {"articleIds": {"type": "array", "items": {"type": "string"}}}
        },
        "rest.FeaturedConfig": {
            "type": "object",
            "properties": {
                "articleIds": {"type": "array", "items": {"type": "string"}},
                "updatedAt": {"type": "string"},
                "updatedBy": {"type": "string"}
            }
        },
        "rest.PositionStats": {
            "type": "object",
            "properties": {
                "position": {"type": "string"},
                "banners": {"type": "integer"},
                "activeBanners": {"type": "integer"},
                "clicks": {"type": "integer"},
                "impressions": {"type": "integer"},
                "ctr": {"type": "number"}
            }
        },
        "rest.BannerCTR": {
            "type": "object",
            "properties": {
                "bannerId": {"type": "string"},
                "title": {"type": "string"},
                "position": {"type": "string"},
                "clicks": {"type": "integer"},
                "impressions": {"type": "integer"},
                "ctr": {"type": "number"}
            }
        },
        "rest.BannerStats": {
            "type": "object",
            "properties": {
                "totalBanners": {"type": "integer"},
                "activeBanners": {"type": "integer"},
                "totalClicks": {"type": "integer"},
                "totalImpressions": {"type": "integer"},
                "ctr": {"type": "number"},
                "byPosition": {"type": "array", "items": {"$ref": "#/definitions/rest.PositionStats"}},
                "topBanners": {"type": "array", "items": {"$ref": "#/definitions/rest.BannerCTR"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "News CMS API",
	Description:      "Homepage curation, category highlights, view counting and banner delivery of the news portal",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
