package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"procdash/internal/dashboard"
	"procdash/internal/process"
)

// DashboardHandler serves the shared dashboard.Store. Every mutation
// replies with the resulting dashboard state.
type DashboardHandler struct {
	store   *dashboard.Store
	folders []dashboard.Folder
}

func NewDashboardHandler(store *dashboard.Store, folders []dashboard.Folder) *DashboardHandler {
	return &DashboardHandler{store: store, folders: folders}
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	h.render(c, http.StatusOK)
}

// SetSearch handles PUT /api/dashboard/search
func (h *DashboardHandler) SetSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.store.SetSearch(req.Search)
	h.render(c, http.StatusOK)
}

// SetFolder handles PUT /api/dashboard/folder
func (h *DashboardHandler) SetFolder(c *gin.Context) {
	var req FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.FolderID < 0 {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("invalid folder %d", req.FolderID))
		return
	}
	h.store.SetFolder(detach(c), process.FolderFilter(req.FolderID))
	h.render(c, http.StatusOK)
}

// Sort handles POST /api/dashboard/sort
func (h *DashboardHandler) Sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	field, err := process.ParseSortField(req.Field)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Direction) == "" {
		h.store.ToggleSort(field)
	} else {
		dir, err := process.ParseDirection(req.Direction)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.store.SetSort(process.SortState{Field: field, Direction: dir})
	}
	h.render(c, http.StatusOK)
}

// Refresh handles POST /api/dashboard/refresh
func (h *DashboardHandler) Refresh(c *gin.Context) {
	h.store.Refresh(detach(c))
	h.render(c, http.StatusAccepted)
}

// RequestStart handles POST /api/dashboard/start
func (h *DashboardHandler) RequestStart(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if h.store.Starting() {
		abortWithError(c, http.StatusConflict, "a start is already in progress")
		return
	}
	if _, ok := h.store.RequestStartByKey(req.Key); !ok {
		abortWithError(c, http.StatusNotFound, fmt.Sprintf("process %q is not in the current list", req.Key))
		return
	}
	h.render(c, http.StatusOK)
}

// Confirm handles POST /api/dashboard/confirm
func (h *DashboardHandler) Confirm(c *gin.Context) {
	if _, ok := h.store.Confirm(detach(c)); !ok {
		abortWithError(c, http.StatusConflict, "no start is awaiting confirmation")
		return
	}
	h.render(c, http.StatusAccepted)
}

// Cancel handles POST /api/dashboard/cancel
func (h *DashboardHandler) Cancel(c *gin.Context) {
	h.store.Cancel()
	h.render(c, http.StatusOK)
}

// ListFolders handles GET /api/folders
func (h *DashboardHandler) ListFolders(c *gin.Context) {
	out := make([]FolderResponse, 0, len(h.folders))
	for _, f := range h.folders {
		out = append(out, FolderResponse{ID: f.ID, Name: f.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) render(c *gin.Context, code int) {
	c.JSON(code, toDashboardResponse(h.store.View(), h.folders))
}

// detach keeps request values but not cancellation; store work outlives
// the request that triggered it.
func detach(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
