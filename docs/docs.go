// Package docs holds the swagger specification served under /docs.
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
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Service banner",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RootResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    }
                }
            }
        },
        "/transcribe": {
            "post": {
                "description": "Returns the plain transcript of an uploaded audio or video file",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transcription"
                ],
                "summary": "Transcribe an audio file",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Audio or video file",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Transcript",
                        "schema": {
                            "$ref": "#/definitions/dto.TranscribeResponse"
                        }
                    },
                    "413": {
                        "description": "Upload too large",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "422": {
                        "description": "File missing",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "500": {
                        "description": "Transcription failed",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        },
        "/format_docx": {
            "post": {
                "description": "Splits raw text into sentence paragraphs and writes a standard .docx",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transcription"
                ],
                "summary": "Format text as a document",
                "parameters": [
                    {
                        "description": "Raw text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FormatDocxRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document path",
                        "schema": {
                            "$ref": "#/definitions/dto.FormatDocxResponse"
                        }
                    },
                    "422": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        },
        "/export_docx_from_audio_v2": {
            "post": {
                "description": "Transcribes an upload or YouTube URL and writes a paragraph document. The URL wins when both are given.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Export a standard document",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Audio or video file",
                        "name": "file",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Language code, auto-detected when empty",
                        "name": "language",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "\"true\" to translate to English",
                        "name": "translate",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "YouTube URL",
                        "name": "youtube_url",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document created",
                        "schema": {
                            "$ref": "#/definitions/dto.ExportResponse"
                        }
                    },
                    "400": {
                        "description": "No input or empty transcript",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "413": {
                        "description": "Upload too large",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "500": {
                        "description": "Transcription failed",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        },
        "/export_docx_from_audio_v3": {
            "post": {
                "description": "Like v2, but renders speaker headed segments with timestamps and page breaks",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Export a deposition transcript",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Audio or video file",
                        "name": "file",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Language code, auto-detected when empty",
                        "name": "language",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "\"true\" to translate to English",
                        "name": "translate",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "YouTube URL",
                        "name": "youtube_url",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "\"true\" to detect speakers",
                        "name": "diarize",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document created",
                        "schema": {
                            "$ref": "#/definitions/dto.ExportResponse"
                        }
                    },
                    "400": {
                        "description": "No input or empty transcript",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "413": {
                        "description": "Upload too large",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "500": {
                        "description": "Transcription failed",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        },
        "/download/{filename}": {
            "get": {
                "produces": [
                    "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Download a generated document",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bare document filename",
                        "name": "filename",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid filename",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "404": {
                        "description": "File not found",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/exports": {
            "get": {
                "description": "Returns the most recent exports first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "history"
                ],
                "summary": "List exports",
                "parameters": [
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "default": 20,
                        "description": "Maximum records",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Export history",
                        "schema": {
                            "$ref": "#/definitions/dto.ListExportsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "422": {
                        "description": "Limit out of range",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/exports/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "history"
                ],
                "summary": "Get one export",
                "parameters": [
                    {
                        "minimum": 1,
                        "type": "integer",
                        "description": "Export ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Export",
                        "schema": {
                            "$ref": "#/definitions/dto.ExportRecordResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    },
                    "404": {
                        "description": "Export not found",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/providers": {
            "get": {
                "description": "Lists registered transcribers, the default one and their health",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "providers"
                ],
                "summary": "List transcription providers",
                "responses": {
                    "200": {
                        "description": "Providers",
                        "schema": {
                            "$ref": "#/definitions/dto.ListProvidersResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/errors.APIError"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "errors.APIError": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "request_id": {
                    "type": "string"
                }
            }
        },
        "dto.RootResponse": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean",
                    "example": true
                },
                "msg": {
                    "type": "string",
                    "example": "LucidScript backend is up"
                }
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "timestamp": {
                    "type": "integer"
                }
            }
        },
        "dto.TranscribeResponse": {
            "type": "object",
            "properties": {
                "transcript": {
                    "type": "string",
                    "example": "Please state your name."
                }
            }
        },
        "dto.FormatDocxRequest": {
            "type": "object",
            "required": [
                "raw_text"
            ],
            "properties": {
                "raw_text": {
                    "type": "string"
                }
            }
        },
        "dto.FormatDocxResponse": {
            "type": "object",
            "properties": {
                "docx_path": {
                    "type": "string",
                    "example": "output/lucidscript_1a2b3c4d.docx"
                }
            }
        },
        "dto.ExportResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Transcription and document export complete."
                },
                "docx_path": {
                    "type": "string",
                    "example": "output/lucidscript_1a2b3c4d.docx"
                },
                "docx_filename": {
                    "type": "string",
                    "example": "lucidscript_1a2b3c4d.docx"
                },
                "language": {
                    "type": "string",
                    "example": "en"
                },
                "duration_sec": {
                    "type": "number",
                    "example": 12.34
                },
                "translated": {
                    "type": "boolean"
                },
                "source": {
                    "type": "string",
                    "enum": [
                        "upload",
                        "youtube"
                    ],
                    "example": "upload"
                }
            }
        },
        "dto.ExportRecordResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "source": {
                    "type": "string"
                },
                "style": {
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "duration_sec": {
                    "type": "number"
                },
                "translated": {
                    "type": "boolean"
                },
                "diarized": {
                    "type": "boolean"
                },
                "docx_filename": {
                    "type": "string"
                },
                "error_message": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "dto.ListExportsResponse": {
            "type": "object",
            "properties": {
                "exports": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ExportRecordResponse"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "dto.ProviderResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "whisper_cpp"
                },
                "display_name": {
                    "type": "string"
                },
                "requires_internet": {
                    "type": "boolean"
                },
                "default": {
                    "type": "boolean"
                },
                "healthy": {
                    "type": "boolean"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.ListProvidersResponse": {
            "type": "object",
            "properties": {
                "providers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ProviderResponse"
                    }
                },
                "default": {
                    "type": "string"
                }
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
	Title:            "LucidScript API",
	Description:      "Speech to Word document transcription service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
