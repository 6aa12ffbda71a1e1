package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SMA Class API",
        "description": "Class lifecycle and schedule grid service",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Classes", "description": "Class lifecycle and aggregation views"},
        {"name": "Reference Data", "description": "Fixed teaching days and periods"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Class"}}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Create class with its schedule grid",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreateClassResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/grade_group": {
            "get": {
                "tags": ["Classes"],
                "summary": "Classes grouped by grade with capacity",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/GradeGroup"}}}
                }
            }
        },
        "/classes/schedule": {
            "get": {
                "tags": ["Classes"],
                "summary": "Weekly schedule (query form)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "class_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/DaySchedule"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/students": {
            "get": {
                "tags": ["Classes"],
                "summary": "Roster with attendance percentage",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "class_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ClassStudent"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/subjects-with-teachers/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Curriculum subjects with assigned teachers",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/SubjectWithTeachers"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Get class",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Class"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Classes"],
                "summary": "Update class",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Class"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete class and its schedule slots",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DeleteClassResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/{id}/can-delete": {
            "get": {
                "tags": ["Classes"],
                "summary": "Preview deletability",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DeleteCheck"}}
                }
            }
        },
        "/classes/{id}/schedule": {
            "get": {
                "tags": ["Classes"],
                "summary": "Weekly schedule",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/DaySchedule"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/{id}/schedule/export": {
            "get": {
                "tags": ["Classes"],
                "summary": "Download the weekly timetable",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/days": {
            "get": {
                "tags": ["Reference Data"],
                "summary": "List teaching days",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Day"}}}
                }
            }
        },
        "/periods": {
            "get": {
                "tags": ["Reference Data"],
                "summary": "List teaching periods",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Period"}}}
                }
            }
        }
    },
    "definitions": {
        "Class": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "floor": {"type": "integer"},
                "grade": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "floor": {"type": "integer"},
                "grade": {"type": "string", "enum": ["10", "11", "12"]}
            },
            "required": ["name", "floor", "grade"]
        },
        "UpdateClassRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "floor": {"type": "integer"},
                "grade": {"type": "string", "enum": ["10", "11", "12"]}
            },
            "required": ["name", "floor", "grade"]
        },
        "CreateClassResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "classId": {"type": "string"},
                "slotsCreated": {"type": "integer"}
            }
        },
        "GradeGroup": {
            "type": "object",
            "properties": {
                "grade": {"type": "string"},
                "classes": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/ClassWithCapacity"}
                }
            }
        },
        "ClassWithCapacity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "floor": {"type": "integer"},
                "grade": {"type": "string"},
                "capacity": {"type": "integer"}
            }
        },
        "DeleteCheck": {
            "type": "object",
            "properties": {
                "deletable": {"type": "boolean"},
                "reason": {"type": "string"},
                "student_count": {"type": "integer"},
                "schedule_count": {"type": "integer"}
            }
        },
        "DeleteClassResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "deleted": {"type": "integer"}
            }
        },
        "ClassStudent": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "full_name": {"type": "string"},
                "grade_level": {"type": "string"},
                "class_id": {"type": "string"},
                "class_name": {"type": "string"},
                "attendance_percentage": {"type": "number"}
            }
        },
        "DaySchedule": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "periods": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TimetableRow"}
                }
            }
        },
        "TimetableRow": {
            "type": "object",
            "properties": {
                "period_id": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "SubjectWithTeachers": {
            "type": "object",
            "properties": {
                "subject_id": {"type": "string"},
                "name": {"type": "string"},
                "teachers": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SubjectTeacher"}
                }
            }
        },
        "SubjectTeacher": {
            "type": "object",
            "properties": {
                "teacher_id": {"type": "string"},
                "full_name": {"type": "string"}
            }
        },
        "Day": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "Period": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
