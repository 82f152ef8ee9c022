// Package docs holds the OpenAPI document served on /swagger. It follows the
// handler annotations; refresh it with swag init -g cmd/api/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/v1/bank-transactions": {
			"get": {
				"description": "List imported bank transactions flagged with whether a pending payment is within tolerance",
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "List bank transactions",
				"parameters": [
					{
						"type": "string",
						"description": "all, pending, credit or debit",
						"name": "filter",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Search in description and reference",
						"name": "q",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/bank-transactions/{id}/unmatch": {
			"post": {
				"description": "Return a matched transaction and its payment to pending",
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "Undo a match",
				"parameters": [
					{
						"type": "string",
						"description": "Bank transaction ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/import-batches": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "List committed imports",
				"parameters": [
					{
						"type": "integer",
						"description": "Maximum batches returned",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/import-batches/{batch_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "Get a committed import",
				"parameters": [
					{
						"type": "string",
						"description": "Batch ID",
						"name": "batch_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/imports": {
			"post": {
				"description": "Read a CSV, TXT, XLS, XLSX or XLSM statement and open an import session with the detected column mapping",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "Upload a bank statement",
				"parameters": [
					{
						"type": "file",
						"description": "Statement file",
						"name": "file",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/imports/{import_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "Get an import session",
				"parameters": [
					{
						"type": "string",
						"description": "Import ID",
						"name": "import_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "Discard an import session",
				"parameters": [
					{
						"type": "string",
						"description": "Import ID",
						"name": "import_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/imports/{import_id}/commit": {
			"post": {
				"description": "Persist every valid preview row as a pending bank transaction",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "Import the valid rows",
				"parameters": [
					{
						"type": "string",
						"description": "Import ID",
						"name": "import_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Bank name",
						"name": "request",
						"in": "body",
						"schema": {
							"$ref": "#/definitions/handler.CommitRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/imports/{import_id}/mapping": {
			"put": {
				"description": "Assign zero-based column indexes to date, description, amount, reference, credit and debit",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "Replace the column mapping",
				"parameters": [
					{
						"type": "string",
						"description": "Import ID",
						"name": "import_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Column mapping",
						"name": "mapping",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.MappingRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/imports/{import_id}/preview": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"imports"
				],
				"summary": "Parse the statement with the current mapping",
				"parameters": [
					{
						"type": "string",
						"description": "Import ID",
						"name": "import_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/payments": {
			"get": {
				"description": "With active_transaction_id each payment is classified against that transaction",
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "List pending payments",
				"parameters": [
					{
						"type": "string",
						"description": "Search in client name, reference and invoice folio",
						"name": "q",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Transaction being dragged",
						"name": "active_transaction_id",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/payments/{id}/confirm": {
			"post": {
				"description": "Refused with 409 while the payment is the target of a pending proposal",
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "Confirm a payment without a bank transaction",
				"parameters": [
					{
						"type": "string",
						"description": "Payment ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/reconcile/proposals": {
			"post": {
				"description": "Drop a transaction on a payment. The pairing is held until confirmed or cancelled.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "Propose a match",
				"parameters": [
					{
						"description": "Pairing",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ProposeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/reconcile/proposals/{proposal_id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "Cancel a proposed match",
				"parameters": [
					{
						"type": "string",
						"description": "Proposal ID",
						"name": "proposal_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/reconcile/proposals/{proposal_id}/confirm": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "Confirm a proposed match",
				"parameters": [
					{
						"type": "string",
						"description": "Proposal ID",
						"name": "proposal_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/reconcile/suggestions": {
			"get": {
				"description": "Pending credit transactions with the payments within tolerance, closest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "Suggested matches",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/v1/reconcile/summary": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"reconciliation"
				],
				"summary": "Reconciliation counters",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.CommitRequest": {
			"type": "object",
			"properties": {
				"bank_name": {
					"type": "string"
				}
			}
		},
		"handler.MappingRequest": {
			"type": "object",
			"additionalProperties": {
				"type": "integer"
			}
		},
		"handler.ProposeRequest": {
			"type": "object",
			"required": [
				"payment_id",
				"transaction_id"
			],
			"properties": {
				"payment_id": {
					"type": "string"
				},
				"transaction_id": {
					"type": "string"
				}
			}
		},
		"response.ErrorDetail": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"details": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"response.Response": {
			"type": "object",
			"properties": {
				"data": {},
				"error": {
					"$ref": "#/definitions/response.ErrorDetail"
				},
				"message": {
					"type": "string"
				},
				"request_id": {
					"type": "string"
				},
				"success": {
					"type": "boolean"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Bank Statement Reconciliation API",
	Description:      "Import bank statements and reconcile their transactions against pending payments",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
