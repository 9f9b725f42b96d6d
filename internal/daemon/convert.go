package daemon

import (
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/jobs"
	"procdash/internal/process"
)

func ProcToWire(p process.Process) *procdashv1.Proc {
	return &procdashv1.Proc{
		Id:          p.ID,
		Name:        p.Name,
		Key:         p.Key,
		Version:     p.Version,
		Description: p.Description,
		FolderId:    int32(p.FolderID),
	}
}

func ProcFromWire(p *procdashv1.Proc) process.Process {
	return process.Process{
		ID:          p.GetId(),
		Name:        p.GetName(),
		Key:         p.GetKey(),
		Version:     p.GetVersion(),
		Description: p.GetDescription(),
		FolderID:    int(p.GetFolderId()),
	}
}

func JobToWire(j jobs.Job) *procdashv1.Job {
	return &procdashv1.Job{
		Id:            j.ID,
		ProcessKey:    j.ProcessKey,
		FolderId:      int32(j.FolderID),
		State:         string(j.State),
		Error:         j.Error,
		CreatedAtUnix: j.CreatedAt.Unix(),
	}
}

func JobFromWire(j *procdashv1.Job) jobs.Job {
	created := time.Unix(j.GetCreatedAtUnix(), 0).UTC()
	return jobs.Job{
		ID:         j.GetId(),
		ProcessKey: j.GetProcessKey(),
		FolderID:   int(j.GetFolderId()),
		State:      jobs.State(j.GetState()),
		Error:      j.GetError(),
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}
