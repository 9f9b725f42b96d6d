package dashboard

import (
	"fmt"
	"strconv"

	"procdash/internal/process"
)

// Folder is a selectable folder with a display name.
type Folder struct {
	ID   int    `mapstructure:"id" json:"id"`
	Name string `mapstructure:"name" json:"name"`
}

// DefaultFolders mirrors the folders a fresh orchestrator tenant exposes.
func DefaultFolders() []Folder {
	return []Folder{
		{ID: 1, Name: "Default Folder"},
		{ID: 2, Name: "Production"},
		{ID: 3, Name: "Development"},
		{ID: 4, Name: "Testing"},
	}
}

// FolderLabel returns the display name for a filter.
func FolderLabel(folders []Folder, f process.FolderFilter) string {
	if !f.Set() {
		return "All Folders"
	}
	for _, folder := range folders {
		if folder.ID == int(f) {
			return folder.Name
		}
	}
	return "Folder " + strconv.Itoa(int(f))
}

// NextFolder cycles All -> first folder -> ... -> last folder -> All.
func NextFolder(folders []Folder, f process.FolderFilter) process.FolderFilter {
	if len(folders) == 0 {
		return process.AllFolders
	}
	if !f.Set() {
		return process.FolderFilter(folders[0].ID)
	}
	for i, folder := range folders {
		if folder.ID == int(f) {
			if i+1 < len(folders) {
				return process.FolderFilter(folders[i+1].ID)
			}
			return process.AllFolders
		}
	}
	return process.AllFolders
}

// Summary is the result counter line, e.g. `3 processes matching "bot"`.
func (v View) Summary() string {
	noun := "processes"
	if len(v.Processes) == 1 {
		noun = "process"
	}
	out := fmt.Sprintf("%d %s", len(v.Processes), noun)
	if v.Criteria.Search != "" {
		out += fmt.Sprintf(" matching %q", v.Criteria.Search)
	}
	return out
}
