package drive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// fakeDrive serves a canned Drive v3 file listing. Listings are keyed by the
// search query plus the page token, so pagination and per-folder responses
// can be scripted independently.
type fakeDrive struct {
	listings map[string]*drive.FileList
	requests []*http.Request
}

func (f *fakeDrive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests = append(f.requests, r)
	w.Header().Set("Content-Type", "application/json")

	// Files.Get is only used to resolve a folder's shared drive; every
	// folder here lives in My Drive.
	if strings.HasPrefix(r.URL.Path, "/files/") {
		id := strings.TrimPrefix(r.URL.Path, "/files/")
		json.NewEncoder(w).Encode(&drive.File{Id: id})
		return
	}

	key := r.URL.Query().Get("q") + "|" + r.URL.Query().Get("pageToken")
	listing, ok := f.listings[key]
	if !ok {
		json.NewEncoder(w).Encode(&drive.FileList{})
		return
	}
	json.NewEncoder(w).Encode(listing)
}

func newTestClient(t *testing.T, fake *fakeDrive) *Client {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	svc, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("failed to create drive service: %v", err)
	}

	return newClientWithService(svc, "default")
}

func TestListByLabel_PaginatesAcrossTokens(t *testing.T) {
	query := "'labels/lbl' in labels and trashed=false"
	fake := &fakeDrive{
		listings: map[string]*drive.FileList{
			query + "|": {
				Files:         []*drive.File{{Id: "f1", Name: "First"}},
				NextPageToken: "page2",
			},
			query + "|page2": {
				Files: []*drive.File{{Id: "f2", Name: "Second"}},
			},
		},
	}
	client := newTestClient(t, fake)

	files, err := client.ListByLabel(context.Background(), Query{LabelID: "lbl"})
	if err != nil {
		t.Fatalf("ListByLabel() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].ID != "f1" || files[1].ID != "f2" {
		t.Errorf("files = [%s, %s], want [f1, f2]", files[0].ID, files[1].ID)
	}
}

func TestListByLabel_CorpusWideScanCoversAllDrives(t *testing.T) {
	fake := &fakeDrive{listings: map[string]*drive.FileList{}}
	client := newTestClient(t, fake)

	if _, err := client.ListByLabel(context.Background(), Query{LabelID: "lbl"}); err != nil {
		t.Fatalf("ListByLabel() error = %v", err)
	}

	if len(fake.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(fake.requests))
	}
	params := fake.requests[0].URL.Query()
	if params.Get("corpora") != "allDrives" {
		t.Errorf("corpora = %q, want allDrives", params.Get("corpora"))
	}
	if params.Get("includeItemsFromAllDrives") != "true" {
		t.Errorf("includeItemsFromAllDrives = %q, want true", params.Get("includeItemsFromAllDrives"))
	}
	if params.Get("supportsAllDrives") != "true" {
		t.Errorf("supportsAllDrives = %q, want true", params.Get("supportsAllDrives"))
	}
}

func TestSearchRecursively_RootFilesBeforeSubfolderFiles(t *testing.T) {
	fake := &fakeDrive{
		listings: map[string]*drive.FileList{
			buildLabelQuery("lbl", "root") + "|": {
				Files: []*drive.File{{Id: "rootdoc", Name: "Root Contract"}},
			},
			buildSubfolderQuery("root") + "|": {
				Files: []*drive.File{{Id: "sub", MimeType: FolderMimeType}},
			},
			buildLabelQuery("lbl", "sub") + "|": {
				Files: []*drive.File{{Id: "subdoc", Name: "Nested Contract"}},
			},
		},
	}
	client := newTestClient(t, fake)

	files, err := client.SearchRecursively(context.Background(), "lbl", "root")
	if err != nil {
		t.Fatalf("SearchRecursively() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].ID != "rootdoc" || files[1].ID != "subdoc" {
		t.Errorf("files = [%s, %s], want root files before subfolder files", files[0].ID, files[1].ID)
	}
}

func TestSearchRecursively_TerminatesOnFolderCycle(t *testing.T) {
	// root and sub each list the other as a subfolder
	fake := &fakeDrive{
		listings: map[string]*drive.FileList{
			buildLabelQuery("lbl", "root") + "|": {
				Files: []*drive.File{{Id: "rootdoc"}},
			},
			buildSubfolderQuery("root") + "|": {
				Files: []*drive.File{{Id: "sub", MimeType: FolderMimeType}},
			},
			buildLabelQuery("lbl", "sub") + "|": {
				Files: []*drive.File{{Id: "subdoc"}},
			},
			buildSubfolderQuery("sub") + "|": {
				Files: []*drive.File{{Id: "root", MimeType: FolderMimeType}},
			},
		},
	}
	client := newTestClient(t, fake)

	files, err := client.SearchRecursively(context.Background(), "lbl", "root")
	if err != nil {
		t.Fatalf("SearchRecursively() error = %v", err)
	}

	// Each folder is listed exactly once despite the cycle
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].ID != "rootdoc" || files[1].ID != "subdoc" {
		t.Errorf("files = [%s, %s], want [rootdoc, subdoc]", files[0].ID, files[1].ID)
	}
}
