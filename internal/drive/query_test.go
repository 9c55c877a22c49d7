package drive

import "testing"

func TestBuildLabelQuery(t *testing.T) {
	tests := []struct {
		name     string
		labelID  string
		folderID string
		want     string
	}{
		{
			name:    "label only",
			labelID: "abc123",
			want:    "'labels/abc123' in labels and trashed=false",
		},
		{
			name:     "label and folder",
			labelID:  "abc123",
			folderID: "folder42",
			want:     "'labels/abc123' in labels and trashed=false and 'folder42' in parents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildLabelQuery(tt.labelID, tt.folderID); got != tt.want {
				t.Errorf("buildLabelQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSubfolderQuery(t *testing.T) {
	got := buildSubfolderQuery("folder42")
	want := "'folder42' in parents and mimeType='application/vnd.google-apps.folder' and trashed=false"
	if got != want {
		t.Errorf("buildSubfolderQuery() = %q, want %q", got, want)
	}
}
