package drive

import "fmt"

// buildLabelQuery builds the Drive search query for files carrying a label,
// optionally restricted to the direct children of a folder. Trashed files
// are always excluded.
func buildLabelQuery(labelID, folderID string) string {
	q := fmt.Sprintf("'labels/%s' in labels and trashed=false", labelID)
	if folderID != "" {
		q += fmt.Sprintf(" and '%s' in parents", folderID)
	}
	return q
}

// buildSubfolderQuery builds the Drive search query for the direct subfolders
// of a folder.
func buildSubfolderQuery(folderID string) string {
	return fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", folderID, FolderMimeType)
}
