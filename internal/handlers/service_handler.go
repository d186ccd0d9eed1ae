package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/httpresp"
	ucService "github.com/BruksfildServices01/salon-api/internal/usecase/service"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	list     *ucService.ListServices
	get      *ucService.GetService
	popular  *ucService.PopularServices
	create   *ucService.CreateService
	update   *ucService.UpdateService
	remove   *ucService.DeleteService
	activate *ucService.ActivateService
}

func NewServiceHandler(
	list *ucService.ListServices,
	get *ucService.GetService,
	popular *ucService.PopularServices,
	create *ucService.CreateService,
	update *ucService.UpdateService,
	remove *ucService.DeleteService,
	activate *ucService.ActivateService,
) *ServiceHandler {
	return &ServiceHandler{
		list:     list,
		get:      get,
		popular:  popular,
		create:   create,
		update:   update,
		remove:   remove,
		activate: activate,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(
		c.Request.Context(),
		domain.ParseActiveFilter(c.Query("active")),
	)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// POPULAR
// ======================================================

func (h *ServiceHandler) Popular(c *gin.Context) {
	rows, err := h.popular.Execute(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// GET
// ======================================================

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "Service")
	if !ok {
		return
	}

	svc, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req domain.CreateInput
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, "service created", svc)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "Service")
	if !ok {
		return
	}

	var req domain.Patch
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "service updated", svc)
}

// ======================================================
// DELETE / ACTIVATE
// ======================================================

// Delete deactivates by default; ?permanent=true removes the row.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "Service")
	if !ok {
		return
	}

	res, err := h.remove.Execute(c.Request.Context(), id, c.Query("permanent") == "true")
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	msg := "service deactivated"
	if res.Permanent {
		msg = "service permanently deleted"
	}
	httpresp.Message(c, http.StatusOK, msg, res.Service)
}

func (h *ServiceHandler) Activate(c *gin.Context) {
	id, ok := paramID(c, "Service")
	if !ok {
		return
	}

	svc, err := h.activate.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "service activated", svc)
}
