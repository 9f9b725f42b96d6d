package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"procdash/internal/app"
	"procdash/internal/dashboard"
	"procdash/internal/jobs"
	"procdash/internal/process"
)

// Backend answers one-shot queries that bypass the shared dashboard state.
type Backend interface {
	List(ctx context.Context, params app.ListParams) (app.ListResult, error)
	Jobs(ctx context.Context, params app.JobsParams) ([]jobs.Job, error)
}

type ProcessHandler struct {
	backend Backend
	folders []dashboard.Folder
	timeout time.Duration
}

func NewProcessHandler(backend Backend, folders []dashboard.Folder, timeout time.Duration) *ProcessHandler {
	return &ProcessHandler{backend: backend, folders: folders, timeout: timeout}
}

// ListProcesses handles GET /api/processes
func (h *ProcessHandler) ListProcesses(c *gin.Context) {
	folder, err := process.ParseFolderFilter(c.Query("folder"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	sort := process.DefaultSort()
	if raw := c.Query("sort"); raw != "" {
		if sort.Field, err = process.ParseSortField(raw); err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if sort.Direction, err = process.ParseDirection(c.Query("direction")); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	search := c.Query("search")
	result, err := h.backend.List(c.Request.Context(), app.ListParams{
		Folder:  folder,
		Search:  search,
		Sort:    sort,
		Timeout: h.timeout,
	})
	if err != nil {
		abortWithError(c, http.StatusBadGateway, err.Error())
		return
	}

	view := dashboard.View{Processes: result.Processes, Criteria: process.Criteria{Search: search, Folder: folder}}
	c.JSON(http.StatusOK, ProcessListResponse{
		Items:   toProcessResponses(result.Processes, h.folders),
		Total:   result.Total,
		Summary: view.Summary(),
	})
}

// ListJobs handles GET /api/jobs
func (h *ProcessHandler) ListJobs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(jobs.DefaultLimit)))
	if err != nil || limit < 0 {
		abortWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	list, err := h.backend.Jobs(c.Request.Context(), app.JobsParams{
		ProcessKey: c.Query("key"),
		Limit:      limit,
		Timeout:    h.timeout,
	})
	if err != nil {
		abortWithError(c, http.StatusBadGateway, err.Error())
		return
	}
	resp := JobListResponse{Items: make([]JobResponse, 0, len(list))}
	for _, j := range list {
		resp.Items = append(resp.Items, toJobResponse(j))
	}
	c.JSON(http.StatusOK, resp)
}
