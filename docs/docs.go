// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ai/refine": {
            "post": {
                "summary": "Refine a user profile into a cinematic video prompt",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RefineRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RefineResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/ai/generate/image": {
            "post": {
                "summary": "Generate an image",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ImageRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ImageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/ai/generate/video": {
            "post": {
                "summary": "Generate a video, optionally seeded with an image",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/VideoRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/VideoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/media/process/resize": {
            "post": {
                "summary": "Resize a local video with ffmpeg",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ResizeRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResizeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Input file not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/media/info": {
            "get": {
                "summary": "Probe a local video with ffprobe",
                "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "path", "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/VideoInfo"}},
                    "404": {"description": "File not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Liveness probe",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "UserProfile": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "string"},
                "vibe": {"type": "string"},
                "locationName": {"type": "string"},
                "food": {"type": "string"},
                "country": {"type": "string"}
            }
        },
        "RefineRequest": {
            "type": "object",
            "required": ["user_data"],
            "properties": {"user_data": {"$ref": "#/definitions/UserProfile"}}
        },
        "RefineResponse": {
            "type": "object",
            "properties": {"prompt": {"type": "string"}}
        },
        "ImageRequest": {
            "type": "object",
            "required": ["prompt"],
            "properties": {
                "prompt": {"type": "string"},
                "model": {"type": "string", "example": "black-forest-labs/flux-1.1-pro"},
                "aspect_ratio": {"type": "string", "example": "16:9"}
            }
        },
        "Prediction": {
            "type": "object",
            "properties": {
                "bytesBase64Encoded": {"type": "string", "x-nullable": true},
                "url": {"type": "string"}
            }
        },
        "ImageResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "predictions": {"type": "array", "items": {"$ref": "#/definitions/Prediction"}}
            }
        },
        "VideoRequest": {
            "type": "object",
            "required": ["prompt"],
            "properties": {
                "prompt": {"type": "string"},
                "image_url": {"type": "string"},
                "model": {"type": "string", "example": "luma/ray"}
            }
        },
        "VideoResponse": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "ResizeRequest": {
            "type": "object",
            "required": ["input_path", "output_path", "width", "height"],
            "properties": {
                "input_path": {"type": "string"},
                "output_path": {"type": "string"},
                "width": {"type": "integer", "minimum": 1},
                "height": {"type": "integer", "minimum": 1}
            }
        },
        "ResizeResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "output_path": {"type": "string"}
            }
        },
        "VideoInfo": {
            "type": "object",
            "properties": {
                "format": {"type": "object"},
                "video_stream": {"type": "object", "x-nullable": true}
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
	Title:            "Happy Birthday AI Server",
	Description:      "Relay for image/video generation, prompt refinement and ffmpeg media processing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
