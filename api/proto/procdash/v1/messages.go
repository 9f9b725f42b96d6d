package procdashv1

// Proc is a process record on the wire.
type Proc struct {
	Id          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Key         string `json:"key,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	FolderId    int32  `json:"folder_id,omitempty"`
}

func (x *Proc) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Proc) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Proc) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *Proc) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

func (x *Proc) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Proc) GetFolderId() int32 {
	if x != nil {
		return x.FolderId
	}
	return 0
}

// ListRequest selects processes; FolderId 0 means every folder.
type ListRequest struct {
	FolderId int32 `json:"folder_id,omitempty"`
}

func (x *ListRequest) GetFolderId() int32 {
	if x != nil {
		return x.FolderId
	}
	return 0
}

type ListResponse struct {
	Procs []*Proc `json:"procs,omitempty"`
}

func (x *ListResponse) GetProcs() []*Proc {
	if x != nil {
		return x.Procs
	}
	return nil
}

type StartRequest struct {
	Key      string `json:"key,omitempty"`
	FolderId int32  `json:"folder_id,omitempty"`
}

func (x *StartRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *StartRequest) GetFolderId() int32 {
	if x != nil {
		return x.FolderId
	}
	return 0
}

// Job records one dispatched start.
type Job struct {
	Id            string `json:"id,omitempty"`
	ProcessKey    string `json:"process_key,omitempty"`
	FolderId      int32  `json:"folder_id,omitempty"`
	State         string `json:"state,omitempty"`
	Error         string `json:"error,omitempty"`
	CreatedAtUnix int64  `json:"created_at_unix,omitempty"`
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetProcessKey() string {
	if x != nil {
		return x.ProcessKey
	}
	return ""
}

func (x *Job) GetFolderId() int32 {
	if x != nil {
		return x.FolderId
	}
	return 0
}

func (x *Job) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Job) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *Job) GetCreatedAtUnix() int64 {
	if x != nil {
		return x.CreatedAtUnix
	}
	return 0
}

type StartResponse struct {
	Job *Job `json:"job,omitempty"`
}

func (x *StartResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type JobsRequest struct {
	ProcessKey string `json:"process_key,omitempty"`
	Limit      int32  `json:"limit,omitempty"`
}

func (x *JobsRequest) GetProcessKey() string {
	if x != nil {
		return x.ProcessKey
	}
	return ""
}

func (x *JobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type JobsResponse struct {
	Jobs []*Job `json:"jobs,omitempty"`
}

func (x *JobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type RegisterRequest struct {
	Proc *Proc `json:"proc,omitempty"`
}

func (x *RegisterRequest) GetProc() *Proc {
	if x != nil {
		return x.Proc
	}
	return nil
}

type RegisterResponse struct {
	Id int64 `json:"id,omitempty"`
}

func (x *RegisterResponse) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type RemoveRequest struct {
	Key string `json:"key,omitempty"`
}

func (x *RemoveRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

type RemoveResponse struct{}
