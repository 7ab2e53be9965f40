// Package api holds the OpenAPI description served at /docs.
//
// The template is regenerated from the handler annotations with
// swag init -g main.go -o api --outputTypes go
package api

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
    "tags": [
        {"name": "General"},
        {"name": "v1"},
        {"name": "Recurring Items", "description": "Scheduled income and expenses"},
        {"name": "Transactions", "description": "The ledger of recorded money movements"},
        {"name": "Categories", "description": "Configured transaction categories"}
    ],
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns the configured categories, sorted by kind and name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by kind, income or expense",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pattern the name must match, e.g. *seguros*",
                        "name": "match",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/recurring-items": {
            "get": {
                "description": "Returns a list of recurring items",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Get recurring items",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by kind, income or expense",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by frequency",
                        "name": "frequency",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Is the item active?",
                        "name": "active",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Search for this text in description and notes",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first item returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of items to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new recurring items. The next due date is the first occurrence after the start date.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Create recurring items",
                "parameters": [
                    {
                        "description": "Recurring items",
                        "name": "recurringItems",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.RecurringItemEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/recurring-items/calendar.ics": {
            "get": {
                "description": "Returns the upcoming occurrences of all active recurring items as iCalendar feed",
                "produces": [
                    "text/calendar"
                ],
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Calendar feed",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Number of occurrences per item, 1 to 100. Defaults to 12.",
                        "name": "occurrences",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/recurring-items/due": {
            "get": {
                "description": "Returns the occurrences that processing as of the date would generate, without changing anything",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Preview due items",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Date in YYYY-MM-DD format, defaults to today",
                        "name": "asOf",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DueResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DueResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DueResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/recurring-items/process": {
            "post": {
                "description": "Records a transaction for every active item due as of the date and advances its schedule.\nItems failing to process are part of the report and do not abort the run.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Process due items",
                "parameters": [
                    {
                        "description": "Run parameters",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ProcessRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ProcessResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ProcessResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.ProcessResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ProcessResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/recurring-items/{id}": {
            "get": {
                "description": "Returns a specific recurring item with its next occurrences",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Get recurring item",
                "parameters": [
                    {
                        "type": "string",
                        "format": "UUID",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a recurring item. Transactions generated from it are kept.",
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Delete recurring item",
                "parameters": [
                    {
                        "type": "string",
                        "format": "UUID",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "format": "UUID",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an existing recurring item. Only values to be updated need to be specified.\nChanging the frequency, the day of month, the day of week or the start date recomputes\nthe next due date from the start date, unless nextDueDate is sent explicitly.\nOccurrences already recorded in the ledger are not generated again.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recurring Items"
                ],
                "summary": "Update recurring item",
                "parameters": [
                    {
                        "type": "string",
                        "format": "UUID",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Recurring item",
                        "name": "recurringItem",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.RecurringItemResponse"
                        }
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns a list of transactions, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Transactions on or after this date",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Transactions on or before this date",
                        "name": "untilDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by kind, income or expense",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by the recurring item the transactions were generated from",
                        "name": "recurringItem",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first transaction returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of transactions to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Records new transactions. Transactions cannot be changed or deleted afterwards.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Record transactions",
                "parameters": [
                    {
                        "description": "Transactions",
                        "name": "transactions",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TransactionEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/summary": {
            "get": {
                "description": "Returns total income, total expense and the balance for a date range. Both ends of the range are optional.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Start of the range, inclusive",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "End of the range, inclusive",
                        "name": "untilDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "type": "string",
                        "format": "UUID",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "format": "UUID",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "healthz.Response": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if the backend is unhealthy",
                    "example": "sql: database is closed"
                }
            }
        },
        "models.Kind": {
            "type": "string",
            "enum": [
                "income",
                "expense"
            ],
            "x-enum-varnames": [
                "KindIncome",
                "KindExpense"
            ]
        },
        "recurring.Generated": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 1200.5
                },
                "description": {
                    "type": "string",
                    "example": "Rent"
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "nextDue": {
                    "type": "string",
                    "example": "2024-02-05"
                },
                "occurrence": {
                    "type": "string",
                    "example": "2024-01-05"
                },
                "transactionId": {
                    "type": "string",
                    "example": "EXP-3F2A9C1B7D4E"
                }
            }
        },
        "recurring.ItemFailure": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "example": "Rent"
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "reason": {
                    "type": "string",
                    "example": "the transaction could not be recorded: invalid data: the amount must be larger than zero"
                }
            }
        },
        "recurring.ItemWarning": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "example": "Rent"
                },
                "id": {
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "reason": {
                    "type": "string",
                    "example": "the transaction was recorded, but the next due date could not be saved"
                },
                "transactionId": {
                    "type": "string",
                    "example": "EXP-3F2A9C1B7D4E"
                }
            }
        },
        "recurring.Report": {
            "type": "object",
            "properties": {
                "actor": {
                    "type": "string",
                    "example": "admin"
                },
                "asOf": {
                    "type": "string",
                    "example": "2024-01-10"
                },
                "failed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recurring.ItemFailure"
                    },
                    "description": "Items left unchanged"
                },
                "generated": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recurring.Generated"
                    },
                    "description": "Details for the processed items"
                },
                "processed": {
                    "type": "integer",
                    "description": "Items recorded in the ledger and advanced",
                    "example": 2
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recurring.ItemWarning"
                    },
                    "description": "Items recorded in the ledger, but not advanced"
                }
            }
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Healthz endpoint",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "type": "string",
                    "description": "Endpoint returning Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "type": "string",
                    "description": "List endpoint for all v1 endpoints",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "type": "string",
                    "description": "Endpoint returning the version of the backend",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "URLs of API endpoints",
                    "allOf": [
                        {
                            "$ref": "#/definitions/root.Links"
                        }
                    ]
                }
            }
        },
        "root.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "the running version of the backend",
                    "example": "1.1.0"
                }
            }
        },
        "root.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/root.VersionObject"
                        }
                    ]
                }
            }
        },
        "schedule.Frequency": {
            "type": "string",
            "enum": [
                "daily",
                "weekly",
                "bi-weekly",
                "monthly",
                "quarterly",
                "semi-annually",
                "annually"
            ],
            "x-enum-varnames": [
                "Daily",
                "Weekly",
                "BiWeekly",
                "Monthly",
                "Quarterly",
                "SemiAnnually",
                "Annually"
            ]
        },
        "v1.Category": {
            "type": "object",
            "properties": {
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Kind"
                        }
                    ],
                    "description": "The kind of transactions the category is for",
                    "example": "expense"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Primas de Seguros del Negocio"
                }
            }
        },
        "v1.CategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Category"
                    },
                    "description": "List of categories"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the kind parameter must be \"income\" or \"expense\""
                }
            }
        },
        "v1.DueOccurrence": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount of the transaction",
                    "example": 1200.5
                },
                "category": {
                    "type": "string",
                    "description": "Category of the transaction",
                    "example": "Alquiler/Hipoteca del Local"
                },
                "description": {
                    "type": "string",
                    "description": "Description the transaction will have",
                    "example": "(Recurring) Rent"
                },
                "formattedAmount": {
                    "type": "string",
                    "description": "Amount for display",
                    "example": "1.200,50 €"
                },
                "id": {
                    "type": "string",
                    "description": "ID of the recurring item",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Kind"
                        }
                    ],
                    "description": "Income or expense",
                    "example": "expense"
                },
                "link": {
                    "type": "string",
                    "example": "https://example.com/api/v1/recurring-items/65392deb-5e92-4268-b114-297faad6cdce"
                },
                "nextDue": {
                    "type": "string",
                    "description": "Next due date after processing",
                    "example": "2024-02-05"
                },
                "occurrence": {
                    "type": "string",
                    "description": "Date of the transaction",
                    "example": "2024-01-05"
                }
            }
        },
        "v1.DueResponse": {
            "type": "object",
            "properties": {
                "asOf": {
                    "type": "string",
                    "description": "The date the preview was computed for"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.DueOccurrence"
                    },
                    "description": "Occurrences a run would generate"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "invalid date format"
                }
            }
        },
        "v1.Links": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "string",
                    "description": "URL of category list endpoint",
                    "example": "https://example.com/api/v1/categories"
                },
                "recurringItems": {
                    "type": "string",
                    "description": "URL of recurring item list endpoint",
                    "example": "https://example.com/api/v1/recurring-items"
                },
                "transactions": {
                    "type": "string",
                    "description": "URL of transaction list endpoint",
                    "example": "https://example.com/api/v1/transactions"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "description": "The amount of records returned in this response",
                    "example": 25
                },
                "limit": {
                    "type": "integer",
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25
                },
                "offset": {
                    "type": "integer",
                    "description": "The offset for the first record returned",
                    "example": 50
                },
                "total": {
                    "type": "integer",
                    "description": "The total number of resources matching the query",
                    "example": 827
                }
            }
        },
        "v1.ProcessRequest": {
            "type": "object",
            "properties": {
                "actor": {
                    "type": "string",
                    "description": "Who triggered the run, recorded on every transaction",
                    "example": "admin"
                },
                "asOf": {
                    "type": "string",
                    "description": "Process items due on or before this date, defaults to today",
                    "example": "2024-01-10"
                }
            }
        },
        "v1.ProcessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The report of the run",
                    "allOf": [
                        {
                            "$ref": "#/definitions/recurring.Report"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "due items are already being processed"
                },
                "summary": {
                    "type": "string",
                    "description": "Localized summary of the report",
                    "example": "Processed 2 recurring items as of 10/01/2024."
                }
            }
        },
        "v1.RecurringItem": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean",
                    "example": true
                },
                "autoGenerate": {
                    "type": "boolean",
                    "example": false
                },
                "category": {
                    "type": "string",
                    "example": "Alquiler/Hipoteca del Local"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "dayOfMonth": {
                    "type": "integer",
                    "example": 5
                },
                "dayOfWeek": {
                    "type": "integer",
                    "example": 0
                },
                "defaultAmount": {
                    "type": "number",
                    "example": 1200.5
                },
                "description": {
                    "type": "string",
                    "example": "Rent"
                },
                "endDate": {
                    "type": "string",
                    "example": "2025-12-31"
                },
                "frequency": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/schedule.Frequency"
                        }
                    ],
                    "example": "monthly"
                },
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Kind"
                        }
                    ],
                    "example": "expense"
                },
                "links": {
                    "$ref": "#/definitions/v1.RecurringItemLinks"
                },
                "nextDueDate": {
                    "type": "string",
                    "description": "The date of the next occurrence",
                    "example": "2024-02-05"
                },
                "notes": {
                    "type": "string",
                    "example": "Paid to the landlord by bank transfer"
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-01-05"
                },
                "upcoming": {
                    "description": "The next occurrences, starting with the next due date",
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "2024-02-05",
                        "2024-03-05",
                        "2024-04-05"
                    ]
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.RecurringItemCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.RecurringItemResponse"
                    },
                    "description": "List of created resources"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.RecurringItemEditable": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean",
                    "description": "Inactive items are never processed",
                    "default": true,
                    "example": true
                },
                "autoGenerate": {
                    "type": "boolean",
                    "description": "If the item is meant to be processed automatically",
                    "default": false,
                    "example": true
                },
                "category": {
                    "type": "string",
                    "description": "Category of the generated transactions",
                    "example": "Alquiler/Hipoteca del Local"
                },
                "dayOfMonth": {
                    "type": "integer",
                    "description": "Day of the month for monthly and longer frequencies. Defaults to the day of the start date",
                    "maximum": 31,
                    "minimum": 1,
                    "example": 5
                },
                "dayOfWeek": {
                    "type": "integer",
                    "description": "Day of the week for weekly frequencies, 0 is Monday. Defaults to the weekday of the start date",
                    "maximum": 6,
                    "minimum": 0,
                    "example": 0
                },
                "defaultAmount": {
                    "type": "string",
                    "description": "Amount of the generated transactions. Accepts \",\" and \".\" as decimal separator",
                    "example": "1200.50"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the item",
                    "example": "Rent"
                },
                "endDate": {
                    "type": "string",
                    "description": "Last day of the schedule, if any",
                    "example": "2025-12-31"
                },
                "frequency": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/schedule.Frequency"
                        }
                    ],
                    "description": "How often the item is due",
                    "example": "monthly"
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Kind"
                        }
                    ],
                    "description": "Income or expense",
                    "example": "expense"
                },
                "notes": {
                    "type": "string",
                    "description": "Free text notes",
                    "example": "Paid to the landlord by bank transfer"
                },
                "startDate": {
                    "type": "string",
                    "description": "First day of the schedule",
                    "example": "2024-01-05"
                }
            }
        },
        "v1.RecurringItemLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The item itself",
                    "example": "https://example.com/api/v1/recurring-items/65392deb-5e92-4268-b114-297faad6cdce"
                },
                "transactions": {
                    "type": "string",
                    "description": "Transactions generated from the item",
                    "example": "https://example.com/api/v1/transactions?recurringItem=65392deb-5e92-4268-b114-297faad6cdce"
                }
            }
        },
        "v1.RecurringItemListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.RecurringItem"
                    },
                    "description": "List of resources"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.RecurringItemPatch": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean",
                    "example": false
                },
                "autoGenerate": {
                    "type": "boolean",
                    "example": true
                },
                "category": {
                    "type": "string",
                    "example": "Alquiler/Hipoteca del Local"
                },
                "dayOfMonth": {
                    "type": "integer",
                    "example": 1
                },
                "dayOfWeek": {
                    "type": "integer",
                    "example": 4
                },
                "defaultAmount": {
                    "type": "string",
                    "example": "1250"
                },
                "description": {
                    "type": "string",
                    "example": "Rent"
                },
                "endDate": {
                    "type": "string",
                    "example": "2025-12-31"
                },
                "frequency": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/schedule.Frequency"
                        }
                    ],
                    "example": "quarterly"
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Kind"
                        }
                    ],
                    "example": "expense"
                },
                "nextDueDate": {
                    "type": "string",
                    "description": "Overrides the computed next due date",
                    "example": "2024-03-01"
                },
                "notes": {
                    "type": "string",
                    "example": "New contract from March"
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-01-01"
                }
            }
        },
        "v1.RecurringItemResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The item data, if creation was successful",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.RecurringItem"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this item",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Links"
                        }
                    ]
                }
            }
        },
        "v1.Summary": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "number",
                    "example": 1049.5
                },
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 code of the amounts",
                    "example": "EUR"
                },
                "formattedBalance": {
                    "type": "string",
                    "example": "1.049,50 €"
                },
                "formattedTotalExpense": {
                    "type": "string",
                    "example": "3.150,50 €"
                },
                "formattedTotalIncome": {
                    "type": "string",
                    "example": "4.200,00 €"
                },
                "fromDate": {
                    "type": "string",
                    "description": "Start of the range, if any",
                    "example": "2024-01-01"
                },
                "totalExpense": {
                    "type": "number",
                    "example": 3150.5
                },
                "totalIncome": {
                    "type": "number",
                    "example": 4200
                },
                "untilDate": {
                    "type": "string",
                    "description": "End of the range, if any",
                    "example": "2024-01-31"
                }
            }
        },
        "v1.SummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Totals for the range",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Summary"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "fromDate must not be after untilDate"
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 350
                },
                "category": {
                    "type": "string",
                    "example": "Servicios de Entrenamiento Personal"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string",
                    "example": "2024-01-10"
                },
                "description": {
                    "type": "string",
                    "example": "Personal training, 10 sessions"
                },
                "formattedAmount": {
                    "type": "string",
                    "description": "Amount formatted for display",
                    "example": "350,00 €"
                },
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "internalId": {
                    "type": "string",
                    "description": "Human readable ID",
                    "example": "TRN-3F2A9C1B7D4E"
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Kind"
                        }
                    ],
                    "example": "income"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                },
                "notes": {
                    "type": "string",
                    "example": "Paid in advance"
                },
                "paymentMethod": {
                    "type": "string",
                    "example": "card"
                },
                "recordedBy": {
                    "type": "string",
                    "example": "admin"
                },
                "reference": {
                    "type": "string",
                    "example": "INV-2024-0012"
                },
                "sourceRecurringId": {
                    "type": "string",
                    "description": "ID of the recurring item the transaction was generated from",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.TransactionCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TransactionResponse"
                    },
                    "description": "List of recorded transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "description": "Amount. Accepts \",\" and \".\" as decimal separator",
                    "example": "350,00"
                },
                "category": {
                    "type": "string",
                    "description": "Category",
                    "example": "Servicios de Entrenamiento Personal"
                },
                "date": {
                    "type": "string",
                    "description": "Date of the transaction",
                    "example": "2024-01-10"
                },
                "description": {
                    "type": "string",
                    "description": "Description",
                    "example": "Personal training, 10 sessions"
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Kind"
                        }
                    ],
                    "description": "Income or expense",
                    "example": "income"
                },
                "notes": {
                    "type": "string",
                    "description": "Free text notes",
                    "example": "Paid in advance"
                },
                "paymentMethod": {
                    "type": "string",
                    "description": "How the transaction was paid",
                    "example": "card"
                },
                "recordedBy": {
                    "type": "string",
                    "description": "Who recorded the transaction",
                    "example": "admin"
                },
                "reference": {
                    "type": "string",
                    "description": "External reference, e.g. an invoice number",
                    "example": "INV-2024-0012"
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {
                "recurringItem": {
                    "type": "string",
                    "description": "The recurring item the transaction was generated from",
                    "example": "https://example.com/api/v1/recurring-items/65392deb-5e92-4268-b114-297faad6cdce"
                },
                "self": {
                    "type": "string",
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/2a5b8c1e-06f5-4dd1-8a47-34fbb5e04bd1"
                }
            }
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "description": "List of transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The transaction data, if recording was successful",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this transaction",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
