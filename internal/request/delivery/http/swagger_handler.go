package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// SimulateRequest godoc
// @Summary Simulate a supply request
// @Description Run the feasibility check for a DC supply request and persist the outcome
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body object{sku=string,qty_requested=int,requested_date=string,dc_name=string} true "Extracted request fields"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 429 {object} object{success=bool,error=string}
// @Router /api/requests [post]
func (h *RequestHandler) SimulateRequestDoc() {}

// ResimulateRequest godoc
// @Summary Re-run a simulation
// @Description Re-run the feasibility check for an existing request against current stock; appends a new scenario
// @Tags Requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/requests/{id}/simulate [post]
func (h *RequestHandler) ResimulateRequestDoc() {}

// ParseEmail godoc
// @Summary Parse a raw DC email
// @Description Extract sku, quantity, due date and DC name from free-form email text
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body object{raw_email=string} true "Raw email text"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/requests/parse [post]
func (h *RequestHandler) ParseEmailDoc() {}

// GetRequest godoc
// @Summary Get a request with its scenario history
// @Tags Requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/requests/{id} [get]
func (h *RequestHandler) GetRequestDoc() {}

// ListScenarios godoc
// @Summary List simulation outcomes
// @Description Newest first; filter to one request with request_id
// @Tags Scenarios
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param request_id query int false "Request ID filter"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/scenarios [get]
func (h *RequestHandler) ListScenariosDoc() {}

// GetScenario godoc
// @Summary Get a simulation outcome by scenario ID
// @Tags Scenarios
// @Produce json
// @Param scenarioID path string true "Scenario ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/scenarios/{scenarioID} [get]
func (h *RequestHandler) GetScenarioDoc() {}

// GetStats godoc
// @Summary Scenario counts by classification
// @Tags Scenarios
// @Produce json
// @Success 200 {object} object{success=bool,data=object{total=int,full=int,partial=int,none=int}}
// @Router /api/scenarios/stats [get]
func (h *RequestHandler) GetStatsDoc() {}
