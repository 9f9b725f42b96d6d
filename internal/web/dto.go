package web

import (
	"time"

	"procdash/internal/dashboard"
	"procdash/internal/jobs"
	"procdash/internal/process"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type ProcessResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Version     string `json:"processVersion"`
	Description string `json:"description"`
	FolderID    int    `json:"folderId"`
	Folder      string `json:"folder"`
	Status      string `json:"status"`
}

type SortResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type FolderResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ConfirmationResponse struct {
	Open    bool             `json:"open"`
	Prompt  string           `json:"prompt,omitempty"`
	Process *ProcessResponse `json:"process,omitempty"`
}

type StartRequestResponse struct {
	ProcessKey string `json:"processKey"`
	FolderID   int    `json:"folderId"`
}

// DashboardResponse is the rendered state of the shared dashboard.
type DashboardResponse struct {
	Processes    []ProcessResponse     `json:"processes"`
	Total        int                   `json:"total"`
	Summary      string                `json:"summary"`
	Search       string                `json:"search"`
	Folder       FolderResponse        `json:"folder"`
	Sort         SortResponse          `json:"sort"`
	Confirmation ConfirmationResponse  `json:"confirmation"`
	Loading      bool                  `json:"loading"`
	Error        string                `json:"error,omitempty"`
	Starting     bool                  `json:"starting"`
	StartError   string                `json:"startError,omitempty"`
	LastStart    *StartRequestResponse `json:"lastStart,omitempty"`
	UpdatedAt    *time.Time            `json:"updatedAt,omitempty"`
}

type ProcessListResponse struct {
	Items   []ProcessResponse `json:"items"`
	Total   int               `json:"total"`
	Summary string            `json:"summary"`
}

type JobResponse struct {
	ID         string    `json:"id"`
	ProcessKey string    `json:"processKey"`
	FolderID   int       `json:"folderId"`
	State      string    `json:"state"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type JobListResponse struct {
	Items []JobResponse `json:"items"`
}

type SearchRequest struct {
	Search string `json:"search"`
}

type FolderRequest struct {
	// FolderID of 0 clears the filter.
	FolderID int `json:"folderId"`
}

type SortRequest struct {
	Field string `json:"field" binding:"required"`
	// Direction is optional; without it the field is toggled.
	Direction string `json:"direction"`
}

type StartRequest struct {
	Key string `json:"key" binding:"required"`
}

func toProcessResponse(p process.Process, folders []dashboard.Folder) ProcessResponse {
	return ProcessResponse{
		ID:          p.ID,
		Name:        p.Name,
		Key:         p.Key,
		Version:     p.Version,
		Description: p.Description,
		FolderID:    p.Folder(),
		Folder:      dashboard.FolderLabel(folders, process.FolderFilter(p.Folder())),
		Status:      p.Status().String(),
	}
}

func toProcessResponses(ps []process.Process, folders []dashboard.Folder) []ProcessResponse {
	out := make([]ProcessResponse, len(ps))
	for i, p := range ps {
		out[i] = toProcessResponse(p, folders)
	}
	return out
}

func toSortResponse(s process.SortState) SortResponse {
	return SortResponse{Field: s.Field.String(), Direction: s.Direction.String()}
}

func toDashboardResponse(v dashboard.View, folders []dashboard.Folder) DashboardResponse {
	resp := DashboardResponse{
		Processes: toProcessResponses(v.Processes, folders),
		Total:     v.Total,
		Summary:   v.Summary(),
		Search:    v.Criteria.Search,
		Folder: FolderResponse{
			ID:   int(v.Criteria.Folder),
			Name: dashboard.FolderLabel(folders, v.Criteria.Folder),
		},
		Sort:     toSortResponse(v.Sort),
		Loading:  v.Loading,
		Starting: v.Starting,
	}
	if v.Confirmation.Open {
		p := toProcessResponse(v.Confirmation.Process, folders)
		resp.Confirmation = ConfirmationResponse{Open: true, Prompt: v.Confirmation.Prompt(), Process: &p}
	}
	if v.FetchErr != nil {
		resp.Error = v.FetchErr.Error()
	}
	if v.StartErr != nil {
		resp.StartError = v.StartErr.Error()
	}
	if v.LastStart != nil {
		resp.LastStart = &StartRequestResponse{ProcessKey: v.LastStart.Key, FolderID: v.LastStart.FolderID}
	}
	if !v.UpdatedAt.IsZero() {
		t := v.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

func toJobResponse(j jobs.Job) JobResponse {
	return JobResponse{
		ID:         j.ID,
		ProcessKey: j.ProcessKey,
		FolderID:   j.FolderID,
		State:      string(j.State),
		Error:      j.Error,
		CreatedAt:  j.CreatedAt,
	}
}
