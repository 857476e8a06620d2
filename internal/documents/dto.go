package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID string    `json:"documentId"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ListItem is one entry in the documents listing.
type ListItem struct {
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
}

// ListResponse wraps the documents listing.
type ListResponse struct {
	Documents []ListItem `json:"documents"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		UploadedAt: doc.CreatedAt,
	}
}

func toListResponse(docs []Document) ListResponse {
	items := make([]ListItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, ListItem{
			DocumentID: doc.ID,
			FileName:   doc.FileName,
		})
	}
	return ListResponse{Documents: items}
}
