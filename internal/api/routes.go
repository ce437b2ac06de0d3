package api

import (
	"net/http"

	"github.com/pathlight-health/casebook/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Drafts.Handler().Routes(),
		domain.Cases.Handler().WithPagination(runtime.Pagination).Routes(),
		domain.Followups.Handler().Routes(),
		domain.Generator.Handler().Routes(),
		domain.Audio.Handler().WithMaxUpload(runtime.MaxUpload).Routes(),
		newSubmitHandler(domain.Workflow, runtime.Logger).Routes(),
	)
}
