package domain

import "io"

// Upload is one incoming file payload: the client's filename plus its bytes.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// UploadedFile is one uploaded PDF tracked inside a session. The JSON
// field names are the preview payload contract consumed by the web client.
type UploadedFile struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	SafeFilename string `json:"safe_filename"`
	Size         int64  `json:"size"`
	Pages        int    `json:"pages"`
	Thumbnail    string `json:"thumbnail"`
	SessionID    string `json:"session_id"`
	FileIndex    int    `json:"file_index"`
	FilePath     string `json:"file_path"`
}
