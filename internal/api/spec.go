package api

import (
	"github.com/leasewatch/leasewatch/internal/config"
	"github.com/leasewatch/leasewatch/pkg/openapi"
)

// buildSpec assembles the OpenAPI document for the API module. Paths are
// relative to the module base path.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Agreement": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                                 {Type: "string", Format: "uuid"},
				"document_id":                        {Type: "string", Format: "uuid"},
				"tenant_name":                        {Type: "string"},
				"area_sqft":                          {Type: "string", Example: "4500"},
				"floor":                              {Type: "string", Example: "3rd Floor"},
				"building":                           {Type: "string", Example: "JP Classic"},
				"period_of_rent":                     {Type: "string", Description: "Months", Example: "36"},
				"rent_amount":                        {Type: "string", Example: "52.50"},
				"maintenance_amount":                 {Type: "string", Example: "13"},
				"rent_escalation":                    {Type: "string", Example: "5%"},
				"agreement_start_date":               {Type: "string"},
				"agreement_expiry_date":              {Type: "string"},
				"lock_in_period":                     {Type: "string", Description: "Months", Example: "18"},
				"lock_in_period_end_date":            {Type: "string"},
				"rental_period_greater_than_lock_in": {Type: "boolean"},
				"next_rent_escalation":               {Type: "string"},
				"uploaded_at":                        {Type: "string", Format: "date-time"},
				"updated_at":                         {Type: "string", Format: "date-time"},
				"restored_at":                        {Type: "string", Format: "date-time"},
				"alert_status": {
					Type:        "string",
					Description: "Derived expiry alert tier, recomputed on every read",
					Enum:        []any{"", "three_months", "two_months", "one_month", "expired"},
				},
			},
		},
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"filename":     {Type: "string"},
				"content_type": {Type: "string", Example: "application/pdf"},
				"size_bytes":   {Type: "integer"},
				"page_count":   {Type: "integer"},
				"status":       {Type: "string", Enum: []any{"pending", "extracted", "failed"}},
				"uploaded_at":  {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time"},
			},
		},
		"Recipient": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"tenant_name": {Type: "string"},
				"email":       {Type: "string", Format: "email"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
			Required: []string{"tenant_name", "email"},
		},
		"DispatchReport": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"sent":      {Type: "integer"},
				"failed":    {Type: "integer"},
				"unmatched": {Type: "integer"},
			},
		},
	})

	addAgreementPaths(spec)
	addArchivePaths(spec)
	addDocumentPaths(spec)
	addRecipientPaths(spec)
	addNotificationPaths(spec)

	return spec
}

func addAgreementPaths(spec *openapi.Spec) {
	spec.Paths["/agreements"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List agreements",
			Tags:    []string{"agreements"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("search", "string", "Search tenant name and building", false),
				openapi.QueryParam("building", "string", "Filter by building", false),
				openapi.QueryParam("floor", "string", "Filter by floor", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated agreements", "Agreement"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create an agreement from raw lease field values",
			Tags:        []string{"agreements"},
			RequestBody: openapi.RequestBodyJSON("Agreement", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created agreement", "Agreement"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/agreements/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find an agreement",
			Tags:       []string{"agreements"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Agreement ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Agreement", "Agreement"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary:     "Update agreement fields, re-normalizing supplied values",
			Tags:        []string{"agreements"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Agreement ID")},
			RequestBody: openapi.RequestBodyJSON("Agreement", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated agreement", "Agreement"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Move an agreement to the archive",
			Tags:       []string{"agreements"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Agreement ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Agreement archived"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/agreements/ingest/{documentId}"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Extract lease terms from an uploaded document and store the agreement",
			Tags:       []string{"agreements"},
			Parameters: []*openapi.Parameter{openapi.PathParam("documentId", "Document ID")},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Ingested agreement", "Agreement"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/agreements/export/csv"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Export all agreements as CSV",
			Tags:    []string{"agreements"},
			Responses: map[int]*openapi.Response{
				200: {Description: "CSV attachment"},
			},
		},
	}

	spec.Paths["/agreements/export/xlsx"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Export all agreements as a spreadsheet",
			Tags:    []string{"agreements"},
			Responses: map[int]*openapi.Response{
				200: {Description: "XLSX attachment"},
			},
		},
	}
}

func addArchivePaths(spec *openapi.Spec) {
	spec.Paths["/archive"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List archived agreements, newest-archived first",
			Tags:    []string{"archive"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated archived agreements", "Agreement"),
			},
		},
	}

	spec.Paths["/archive/{id}/restore"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Restore an archived agreement into the active set",
			Tags:       []string{"archive"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Archived agreement ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Restored agreement", "Agreement"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}
}

func addDocumentPaths(spec *openapi.Spec) {
	spec.Paths["/documents"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List uploaded documents",
			Tags:    []string{"documents"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated documents", "Document"),
			},
		},
		Post: &openapi.Operation{
			Summary: "Upload a scanned agreement PDF (multipart form, field \"file\")",
			Tags:    []string{"documents"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Uploaded document", "Document"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/documents/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a document",
			Tags:       []string{"documents"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Document", "Document"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a document and its stored blob",
			Tags:       []string{"documents"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Document deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/documents/{id}/content"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Download the stored PDF",
			Tags:       []string{"documents"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Document ID")},
			Responses: map[int]*openapi.Response{
				200: {Description: "PDF content"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addRecipientPaths(spec *openapi.Spec) {
	spec.Paths["/recipients"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List notification recipients",
			Tags:    []string{"recipients"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated recipients", "Recipient"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Register a tenant-to-email pair",
			Tags:        []string{"recipients"},
			RequestBody: openapi.RequestBodyJSON("Recipient", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Registered recipient", "Recipient"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/recipients/{id}"] = &openapi.PathItem{
		Delete: &openapi.Operation{
			Summary:    "Remove a recipient",
			Tags:       []string{"recipients"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Recipient ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Recipient removed"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addNotificationPaths(spec *openapi.Spec) {
	spec.Paths["/notifications/dispatch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Send alert emails for every agreement in an active tier",
			Tags:    []string{"notifications"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Dispatch report", "DispatchReport"),
				503: {Description: "SMTP sender not configured"},
			},
		},
	}

	spec.Paths["/notifications/test"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Send a configuration test email",
			Tags:    []string{"notifications"},
			Responses: map[int]*openapi.Response{
				204: {Description: "Test email sent"},
				503: {Description: "SMTP sender not configured"},
			},
		},
	}
}
