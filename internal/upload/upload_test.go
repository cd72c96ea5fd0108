package upload

import (
	"fmt"
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
	}{
		{"main.py", "*upload.TextExtractor"},
		{"app.go", "*upload.TextExtractor"},
		{"notes.txt", "*upload.TextExtractor"},
		{"data.csv", "*upload.CSVExtractor"},
		{"page.html", "*upload.HTMLExtractor"},
		{"page.htm", "*upload.HTMLExtractor"},
		{"spec.pdf", "*upload.PDFExtractor"},
		{"doc.docx", "*upload.DOCXExtractor"},
		{"MAIN.PY", "*upload.TextExtractor"}, // case-insensitive
	}
	for _, tt := range tests {
		e, err := ForFile(tt.filename, false)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", e); got != tt.wantType {
			t.Errorf("%s: expected %s, got %s", tt.filename, tt.wantType, got)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("binary.exe", false); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if IsSupportedExtension("archive.zip") {
		t.Error("zip must not be supported")
	}
	if !IsSupportedExtension("main.go") {
		t.Error("go files must be supported")
	}
}

func TestTextExtractor_NormalizesLineEndings(t *testing.T) {
	e := &TextExtractor{}
	got, err := e.Extract(strings.NewReader("line one\r\nline two\r\n"), "code.py")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "line one\nline two\n" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestTextExtractor_RejectsBinary(t *testing.T) {
	e := &TextExtractor{}
	if _, err := e.Extract(strings.NewReader("\xff\xfe\x00binary"), "blob.txt"); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestCSVExtractor(t *testing.T) {
	e := &CSVExtractor{}
	got, err := e.Extract(strings.NewReader("name,age\nalice,30\nbob,25\n"), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Headers: name, age") {
		t.Errorf("missing header line in %q", got)
	}
	if !strings.Contains(got, "name: alice, age: 30") {
		t.Errorf("missing labeled row in %q", got)
	}
}

func TestHTMLExtractor(t *testing.T) {
	input := `<html><head><title>T</title><style>p{}</style></head>
<body><h1>Heading</h1><p>First para.</p><script>evil()</script><p>Second para.</p></body></html>`

	e := &HTMLExtractor{}
	got, err := e.Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Heading", "First para.", "Second para."} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "evil()") {
		t.Errorf("script content must be dropped, got %q", got)
	}
}
