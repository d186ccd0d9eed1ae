package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/client"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/httpresp"
	ucClient "github.com/BruksfildServices01/salon-api/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	list    *ucClient.ListClients
	get     *ucClient.GetClient
	search  *ucClient.SearchClients
	history *ucClient.GetClientHistory
	create  *ucClient.CreateClient
	update  *ucClient.UpdateClient
	remove  *ucClient.DeleteClient
}

func NewClientHandler(
	list *ucClient.ListClients,
	get *ucClient.GetClient,
	search *ucClient.SearchClients,
	history *ucClient.GetClientHistory,
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	remove *ucClient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		list:    list,
		get:     get,
		search:  search,
		history: history,
		create:  create,
		update:  update,
		remove:  remove,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// SEARCH
// ======================================================

func (h *ClientHandler) Search(c *gin.Context) {
	res, err := h.search.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.ListWith(c, res.Clients, gin.H{"searchTerm": res.Term})
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "Client")
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	id, ok := paramID(c, "Client")
	if !ok {
		return
	}

	history, err := h.history.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	appointments := history.Appointments
	if appointments == nil {
		appointments = appointmentsEmpty
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"client":            history.Client,
		"appointments":      appointments,
		"totalAppointments": history.Total(),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req domain.CreateInput
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, "client created", client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "Client")
	if !ok {
		return
	}

	var req domain.Patch
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "client updated", client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "Client")
	if !ok {
		return
	}

	client, err := h.remove.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "client deleted", client)
}
