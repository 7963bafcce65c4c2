package domain

import "time"

// FileOrderEntry is one position in a client-supplied merge order. The id
// references an UploadedFile; the filename is the client's display name for
// it and feeds the single-file output name.
type FileOrderEntry struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

// MergeResult describes a produced merged PDF. Entries are read-only after
// creation and live until their source session is cleaned up.
type MergeResult struct {
	ID         string
	Path       string
	Filename   string
	SessionID  string
	CreatedAt  time.Time
	FileCount  int
	TotalPages int
}

// MergedDownload describes a download-ready merge output: where it is on
// disk and the filename it should be served under.
type MergedDownload struct {
	Path     string
	Filename string
}
