package api

import (
	"github.com/pathlight-health/casebook/internal/config"
	"github.com/pathlight-health/casebook/pkg/openapi"
)

// BuildSpec produces the serialized OpenAPI document for the service. The
// document covers the authenticated API surface and the public auth routes.
func BuildSpec(cfg *config.Config) ([]byte, error) {
	doc := openapi.Config{}
	if err := doc.Finalize(&openapi.ConfigEnv{
		Title:       "CASEBOOK_OPENAPI_TITLE",
		Description: "CASEBOOK_OPENAPI_DESCRIPTION",
	}); err != nil {
		return nil, err
	}

	spec := openapi.NewSpec(doc.Title, cfg.Version)
	spec.SetDescription(doc.Description)
	spec.AddServer(cfg.API.BasePath)
	spec.AddServer("/auth")

	spec.Components.AddSchemas(schemas())

	base := cfg.API.BasePath

	spec.Paths["/auth/register"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Register a navigator",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("RegisterCommand", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Registered user", "User"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/auth/login"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Exchange name and PIN for a bearer token",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("LoginCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Signed token", "TokenResult"),
				401: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths[base+"/drafts"] = &openapi.PathItem{
		Put: &openapi.Operation{
			Summary:     "Save the caller's draft for a form kind",
			Tags:        []string{"drafts"},
			RequestBody: openapi.RequestBodyJSON("SaveCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Saved draft identifier", "SavedDraft"),
				204: {Description: "Empty draft; nothing stored"},
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths[base+"/drafts/{kind}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Fetch the caller's draft for a form kind",
			Tags:       []string{"drafts"},
			Parameters: []*openapi.Parameter{kindParam()},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Draft", "Draft"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Discard the caller's draft for a form kind",
			Tags:       []string{"drafts"},
			Parameters: []*openapi.Parameter{kindParam()},
			Responses: map[int]*openapi.Response{
				204: {Description: "Draft discarded"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths[base+"/cases"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List the caller's cases with display numbers",
			Tags:    []string{"cases"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("kind", "string", "Filter by form kind", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Numbered cases", "NumberedCaseList"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Finalize the caller's form into an immutable case",
			Tags:        []string{"cases"},
			RequestBody: openapi.RequestBodyJSON("FinalizeCommand", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Finalized case", "Case"),
				422: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths[base+"/submit"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Finalize a form and generate follow-up questions",
			Description: "Runs the full submission workflow. Question generation failures do not fail the submission; the case is returned with a generation_error message instead.",
			Tags:        []string{"cases"},
			RequestBody: openapi.RequestBodyJSON("FinalizeCommand", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Submission result", "SubmitResult"),
				422: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths[base+"/questions/pending"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List the caller's cases with unanswered follow-up questions",
			Tags:    []string{"questions"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Pending cases", "CasePendingList"),
			},
		},
	}

	spec.Paths[base+"/questions/case/{caseId}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List a case's follow-up questions",
			Tags:       []string{"questions"},
			Parameters: []*openapi.Parameter{caseIDParam()},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Questions ordered by section and ordinal", "QuestionList"),
			},
		},
	}

	spec.Paths[base+"/questions/case/{caseId}/unanswered"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List a case's unanswered follow-up questions",
			Tags:       []string{"questions"},
			Parameters: []*openapi.Parameter{caseIDParam()},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Unanswered questions", "QuestionList"),
			},
		},
	}

	spec.Paths[base+"/questions/{id}/answer"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Answer a follow-up question",
			Description: "An answer of N/A records the question as declined.",
			Tags:        []string{"questions"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Question identifier")},
			RequestBody: openapi.RequestBodyJSON("AnswerCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Answered question", "Question"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	return openapi.MarshalJSON(spec)
}

func caseIDParam() *openapi.Parameter {
	return &openapi.Parameter{
		Name:        "caseId",
		In:          "path",
		Required:    true,
		Description: "Case identifier",
		Schema:      &openapi.Schema{Type: "string"},
	}
}

func kindParam() *openapi.Parameter {
	return &openapi.Parameter{
		Name:        "kind",
		In:          "path",
		Required:    true,
		Description: "Form kind",
		Schema: &openapi.Schema{
			Type: "string",
			Enum: []any{"abbrev", "abbrev_gen", "full"},
		},
	}
}

func schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"RegisterCommand": {
			Type:     "object",
			Required: []string{"name", "pin"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string", Description: "Display name; identity is case-insensitive"},
				"pin":  {Type: "string", Pattern: `^\d{4}$`, Description: "Four-digit PIN"},
			},
		},
		"LoginCommand": {
			Type:     "object",
			Required: []string{"name", "pin"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string"},
				"pin":  {Type: "string"},
			},
		},
		"User": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"name":       {Type: "string"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"TokenResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"token":      {Type: "string"},
				"name":       {Type: "string"},
				"expires_at": {Type: "string", Format: "date-time"},
			},
		},
		"SaveCommand": {
			Type:     "object",
			Required: []string{"form_kind"},
			Properties: map[string]*openapi.Schema{
				"form_kind": {Type: "string"},
				"answers":   {Type: "object", Description: "Question ID to answer text"},
			},
		},
		"SavedDraft": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id": {Type: "string", Format: "uuid"},
			},
		},
		"Draft": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Format: "uuid"},
				"form_kind": {Type: "string"},
				"answers":   {Type: "object"},
			},
		},
		"FinalizeCommand": {
			Type:     "object",
			Required: []string{"form_kind", "age", "gender", "race", "region"},
			Properties: map[string]*openapi.Schema{
				"form_kind": {Type: "string"},
				"age":       {Type: "integer"},
				"gender":    {Type: "string"},
				"race":      {Type: "string"},
				"region":    {Type: "string"},
				"answers":   {Type: "object"},
			},
		},
		"Case": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"case_id":   {Type: "string", Example: "jane_doe_1"},
				"form_kind": {Type: "string"},
				"answers":   {Type: "object"},
			},
		},
		"NumberedCaseList": {
			Type:  "array",
			Items: openapi.SchemaRef("Case"),
		},
		"Question": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":      {Type: "string", Format: "uuid"},
				"section": {Type: "string", Enum: []any{"A", "B", "C"}},
				"ordinal": {Type: "integer"},
				"text":    {Type: "string"},
				"answer":  {Type: "string"},
			},
		},
		"QuestionList": {
			Type:  "array",
			Items: openapi.SchemaRef("Question"),
		},
		"AnswerCommand": {
			Type:     "object",
			Required: []string{"answer"},
			Properties: map[string]*openapi.Schema{
				"answer": {Type: "string"},
			},
		},
		"CasePendingList": {
			Type: "array",
			Items: &openapi.Schema{
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"case_id":     {Type: "string"},
					"total":       {Type: "integer"},
					"answered":    {Type: "integer"},
					"unanswered":  {Type: "integer"},
					"is_complete": {Type: "boolean"},
				},
			},
		},
		"SubmitResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"case":      openapi.SchemaRef("Case"),
				"questions": {Type: "array", Items: openapi.SchemaRef("Question")},
				"generation_error": {
					Type:        "string",
					Description: "Present when question generation failed",
				},
			},
		},
	}
}
