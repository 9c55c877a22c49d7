package drive

import "testing"

func TestExtractFileID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "document URL",
			input: "https://docs.google.com/document/d/1AbC_dEf-123/edit",
			want:  "1AbC_dEf-123",
		},
		{
			name:  "spreadsheet URL",
			input: "https://docs.google.com/spreadsheets/d/1XyZ987/edit#gid=0",
			want:  "1XyZ987",
		},
		{
			name:  "presentation URL",
			input: "https://docs.google.com/presentation/d/1Slides42/edit",
			want:  "1Slides42",
		},
		{
			name:  "drive file URL",
			input: "https://drive.google.com/file/d/1FileId99/view?usp=sharing",
			want:  "1FileId99",
		},
		{
			name:  "folder URL",
			input: "https://drive.google.com/drive/folders/0Folder_ID",
			want:  "0Folder_ID",
		},
		{
			name:  "legacy open URL",
			input: "https://drive.google.com/open?id=1LegacyId",
			want:  "1LegacyId",
		},
		{
			name:  "bare ID passes through",
			input: "1BareId_-abc",
			want:  "1BareId_-abc",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  1BareId  ",
			want:  "1BareId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFileID(tt.input); got != tt.want {
				t.Errorf("ExtractFileID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
