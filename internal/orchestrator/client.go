// Package orchestrator talks to an upstream Orchestrator's OData API to
// list releases and start jobs.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"procdash/internal/process"
)

const (
	releasesPath  = "/odata/Releases"
	startJobsPath = "/odata/Jobs/UiPath.Server.Configuration.OData.StartJobs"
	folderHeader  = "X-UIPATH-OrganizationUnitId"

	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

// Client is an Orchestrator HTTP client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client for baseURL. A zero timeout falls back to 30s.
func New(baseURL, token string, timeout time.Duration) (*Client, error) {
	base := normalizeBaseURL(baseURL)
	if base == "" {
		return nil, fmt.Errorf("orchestrator base URL is not configured")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		token:   strings.TrimSpace(token),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}, nil
}

func normalizeBaseURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// release is the OData shape of a process.
type release struct {
	Id                 int64  `json:"Id"`
	Name               string `json:"Name"`
	Key                string `json:"Key"`
	ProcessVersion     string `json:"ProcessVersion"`
	Description        string `json:"Description"`
	OrganizationUnitId int    `json:"OrganizationUnitId"`
}

func (r release) process() process.Process {
	return process.Process{
		ID:          r.Id,
		Name:        r.Name,
		Key:         r.Key,
		Version:     r.ProcessVersion,
		Description: r.Description,
		FolderID:    r.OrganizationUnitId,
	}
}

// Fetch lists the releases visible in folder, or in every folder the
// credentials can see when folder is unset.
func (c *Client) Fetch(ctx context.Context, folder process.FolderFilter) ([]process.Process, error) {
	request, err := c.newRequest(ctx, http.MethodGet, releasesPath, nil)
	if err != nil {
		return nil, err
	}
	if folder.Set() {
		request.Header.Set(folderHeader, strconv.Itoa(int(folder)))
	}

	body, err := c.do(request)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	releases, err := process.DecodeListOf[release](body)
	if err != nil {
		return nil, err
	}
	out := make([]process.Process, 0, len(releases))
	for _, r := range releases {
		// Releases fetched under a folder header belong to that folder even
		// when the payload omits it.
		if r.OrganizationUnitId == 0 && folder.Set() {
			r.OrganizationUnitId = int(folder)
		}
		out = append(out, r.process())
	}
	return out, nil
}

type startJobsRequest struct {
	StartInfo startInfo `json:"startInfo"`
}

type startInfo struct {
	ReleaseKey string `json:"ReleaseKey"`
	Strategy   string `json:"Strategy"`
	JobsCount  int    `json:"JobsCount"`
}

// Start asks the orchestrator to run one job of the release in the
// request's folder.
func (c *Client) Start(ctx context.Context, req process.StartRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(startJobsRequest{StartInfo: startInfo{
		ReleaseKey: req.Key,
		Strategy:   "ModernJobsCount",
		JobsCount:  1,
	}})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	request, err := c.newRequest(ctx, http.MethodPost, startJobsPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(folderHeader, strconv.Itoa(req.FolderID))

	if _, err := c.do(request); err != nil {
		return fmt.Errorf("start %s: %w", req.Key, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}
	return request, nil
}

func (c *Client) do(request *http.Request) ([]byte, error) {
	resp, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newAPIError(resp, b)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
