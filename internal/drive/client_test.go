package drive

import (
	"testing"

	drive "google.golang.org/api/drive/v3"
)

func TestConvertToFileInfo_NoLabelInfo(t *testing.T) {
	f := &drive.File{
		Id:          "file1",
		Name:        "Contract.pdf",
		MimeType:    "application/pdf",
		WebViewLink: "https://drive.google.com/file/d/file1/view",
	}

	info := convertToFileInfo(f)
	if info.ID != "file1" || info.Name != "Contract.pdf" {
		t.Errorf("unexpected conversion: %+v", info)
	}
	if info.Fields != nil {
		t.Errorf("Fields = %v, want nil without label info", info.Fields)
	}
	if info.IsFolder() {
		t.Error("a PDF must not be reported as a folder")
	}
}

func TestConvertToFileInfo_IsFolder(t *testing.T) {
	f := &drive.File{Id: "folder1", MimeType: FolderMimeType}
	if !convertToFileInfo(f).IsFolder() {
		t.Error("folder MIME type must be reported as a folder")
	}
}

func TestConvertToFileInfo_LabelFields(t *testing.T) {
	f := &drive.File{
		Id:   "file2",
		Name: "NDA.docx",
		LabelInfo: &drive.FileLabelInfo{
			Labels: []*drive.Label{{
				Id: "label1",
				Fields: map[string]drive.LabelField{
					"expiry": {
						Id:         "expiry",
						ValueType:  "dateString",
						DateString: []string{"2026-09-30"},
					},
					"owner": {
						Id:        "owner",
						ValueType: "user",
						User: []*drive.User{
							{EmailAddress: "legal@example.com", DisplayName: "Legal"},
						},
					},
					"note": {
						Id:        "note",
						ValueType: "text",
						Text:      []string{"renewed"},
					},
				},
			}},
		},
	}

	info := convertToFileInfo(f)
	if len(info.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(info.Fields))
	}

	expiry := info.Fields["expiry"]
	if len(expiry.DateStrings) != 1 || expiry.DateStrings[0] != "2026-09-30" {
		t.Errorf("expiry field = %+v, want date string 2026-09-30", expiry)
	}

	owner := info.Fields["owner"]
	if len(owner.Users) != 1 || owner.Users[0].Email != "legal@example.com" {
		t.Errorf("owner field = %+v, want user legal@example.com", owner)
	}

	note := info.Fields["note"]
	if note.Text != "renewed" {
		t.Errorf("note field text = %q, want %q", note.Text, "renewed")
	}
}

func TestConvertFieldValue_IntegerAndSelection(t *testing.T) {
	v := convertFieldValue(drive.LabelField{
		Id:        "count",
		ValueType: "integer",
		Integer:   []int64{42},
	})
	if v.Integer == nil || *v.Integer != 42 {
		t.Errorf("Integer = %v, want 42", v.Integer)
	}

	v = convertFieldValue(drive.LabelField{
		Id:        "status",
		ValueType: "selection",
		Selection: []string{"active", "archived"},
	})
	if len(v.Selections) != 2 || v.Selections[0] != "active" {
		t.Errorf("Selections = %v, want [active archived]", v.Selections)
	}
}
