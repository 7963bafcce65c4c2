package domain

// PlaceholderThumbnailURI is the static SVG preview shown until a real
// render lands, and kept when rendering fails.
const PlaceholderThumbnailURI = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMTUwIiBoZWlnaHQ9IjE4MCIgdmlld0JveD0iMCAwIDE1MCAyNDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+CjxyZWN0IHdpZHRoPSIxNTAiIGhlaWdodD0iMTgwIiBmaWxsPSIjRjVGNUY1Ii8+CjxwYXRoIGQ9Ik0zMCA0MEgxMjBWMTQwSDMwVjQwWiIgZmlsbD0iI0U1RTVFNSIvPgo8dGV4dCB4PSI3NSIgeT0iMTAwIiBmb250LWZhbWlseT0iQXJpYWwsIHNhbnMtc2VyaWYiIGZvbnQtc2l6ZT0iMTQiIGZpbGw9IiM5OTkiIHRleHQtYW5jaG9yPSJtaWRkbGUiPlBERjwvdGV4dD4KPC9zdmc+"

// Thumbnail is the result of rendering a preview. Fallback marks the static
// placeholder variant used when rendering is unavailable or failed.
type Thumbnail struct {
	DataURI  string
	Fallback bool
}

// PlaceholderThumbnail returns the fallback variant.
func PlaceholderThumbnail() Thumbnail {
	return Thumbnail{DataURI: PlaceholderThumbnailURI, Fallback: true}
}

// ThumbnailJob asks the background worker to render page one of a stored
// file and attach it to the session record at FileIndex.
type ThumbnailJob struct {
	SessionID string
	FileIndex int
	FilePath  string
}
