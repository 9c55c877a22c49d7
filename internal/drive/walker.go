package drive

import (
	"context"
	"fmt"

	drive "google.golang.org/api/drive/v3"

	"github.com/teemow/labelguard/internal/logging"
)

// ListByLabel returns every non-trashed file carrying the label described by
// q, following the continuation token until the listing is exhausted. When
// q.FolderID is set, results are restricted to the folder's direct children
// and the listing is scoped to the folder's shared drive if it lives on one;
// a failed shared-drive lookup falls back to a My Drive search. Query errors
// are returned to the caller.
func (c *Client) ListByLabel(ctx context.Context, q Query) ([]*FileInfo, error) {
	if q.LabelID == "" {
		return nil, fmt.Errorf("labelID is required")
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var driveID string
	if q.FolderID != "" {
		driveID = c.driveIDForFolder(ctx, q.FolderID)
	}

	query := buildLabelQuery(q.LabelID, q.FolderID)

	var files []*FileInfo
	pageToken := ""
	for {
		call := c.service.Files.List().
			Context(ctx).
			Q(query).
			PageSize(pageSize).
			IncludeLabels(q.LabelID).
			Fields("nextPageToken, files(id, name, mimeType, webViewLink, labelInfo)")

		if driveID != "" {
			call = call.
				Corpora("drive").
				DriveId(driveID).
				IncludeItemsFromAllDrives(true).
				SupportsAllDrives(true)
		} else if q.FolderID == "" {
			// A corpus-wide scan covers My Drive and every shared drive
			call = call.
				Corpora("allDrives").
				IncludeItemsFromAllDrives(true).
				SupportsAllDrives(true)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files for label %s: %w", q.LabelID, err)
		}

		for _, f := range res.Files {
			files = append(files, convertToFileInfo(f))
		}

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	return files, nil
}

// SearchRecursively walks the folder tree rooted at folderID depth-first and
// returns every labeled file found in it, in discovery order: the files of a
// folder come before the files of its subfolders. Folders already visited
// are skipped, so shortcut loops and legacy multi-parent layouts cannot
// recurse forever.
func (c *Client) SearchRecursively(ctx context.Context, labelID, folderID string) ([]*FileInfo, error) {
	if folderID == "" {
		return c.ListByLabel(ctx, Query{LabelID: labelID})
	}

	visited := make(map[string]bool)
	return c.searchFolder(ctx, labelID, folderID, visited)
}

func (c *Client) searchFolder(ctx context.Context, labelID, folderID string, visited map[string]bool) ([]*FileInfo, error) {
	if visited[folderID] {
		c.logger.Debug("skipping already visited folder", logging.Folder(folderID))
		return nil, nil
	}
	visited[folderID] = true

	files, err := c.ListByLabel(ctx, Query{LabelID: labelID, FolderID: folderID})
	if err != nil {
		return nil, err
	}

	subfolders, err := c.listSubfolders(ctx, folderID)
	if err != nil {
		return nil, err
	}

	for _, sub := range subfolders {
		subFiles, err := c.searchFolder(ctx, labelID, sub.Id, visited)
		if err != nil {
			return nil, err
		}
		files = append(files, subFiles...)
	}

	return files, nil
}

// listSubfolders lists the direct subfolders of a folder, following the
// continuation token until the listing is exhausted.
func (c *Client) listSubfolders(ctx context.Context, folderID string) ([]*drive.File, error) {
	driveID := c.driveIDForFolder(ctx, folderID)

	var folders []*drive.File
	pageToken := ""
	for {
		call := c.service.Files.List().
			Context(ctx).
			Q(buildSubfolderQuery(folderID)).
			PageSize(defaultPageSize).
			Fields("nextPageToken, files(id, name, mimeType)")

		if driveID != "" {
			call = call.
				Corpora("drive").
				DriveId(driveID).
				IncludeItemsFromAllDrives(true).
				SupportsAllDrives(true)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list subfolders of %s: %w", folderID, err)
		}

		folders = append(folders, res.Files...)

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	return folders, nil
}
