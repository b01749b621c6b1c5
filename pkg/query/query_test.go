package query

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadEncodesLineByLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dna.fasta", ">seq1 sample\nACGT\nTTAA\n")

	in, err := Load([]string{path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := "%3Eseq1%20sample%0AACGT%0ATTAA%0A"
	if in.Payload != want {
		t.Errorf("payload = %q, want %q", in.Payload, want)
	}
}

func TestLoadConcatenatesFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.fa", ">a\nAAAA\n")
	second := writeFile(t, dir, "b.fa", ">b\nCCCC\n")

	in, err := Load([]string{first, second})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := "%3Ea%0AAAAA%0A" + "%3Eb%0ACCCC%0A"
	if in.Payload != want {
		t.Errorf("payload = %q, want %q", in.Payload, want)
	}
}

func TestLoadMetadataComesFromFirstFile(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "reads.trimmed.fasta", ">seq1\nACGT\nTTAA\n")
	second := writeFile(t, dir, "other.fa", ">seq2\nGGGG\n")

	in, err := Load([]string{first, second})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if in.Basename != "reads.trimmed" {
		t.Errorf("basename = %q, want %q", in.Basename, "reads.trimmed")
	}
	if in.Sequence != "ACGTTTAA" {
		t.Errorf("sequence = %q, want %q", in.Sequence, "ACGTTTAA")
	}
}

func TestLoadSequence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"header stripped", ">seq desc\nACGT\n", "ACGT"},
		{"no header keeps first line", "ACGT\nTTAA\n", "ACGTTTAA"},
		{"crlf endings removed", ">seq\r\nACGT\r\nTTAA\r\n", "ACGTTTAA"},
		{"no trailing newline", ">seq\nACGT", "ACGT"},
		{"header only", ">seq\n", ""},
		{"empty file", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "q.fa", tt.content)

			in, err := Load([]string{path})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if in.Sequence != tt.want {
				t.Errorf("sequence = %q, want %q", in.Sequence, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load([]string{filepath.Join(t.TempDir(), "missing.fa")})
	if err == nil {
		t.Fatal("expected an error for a missing query file")
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"protein.fasta", "protein"},
		{"/data/runs/sample.fa", "sample"},
		{"reads.trimmed.fa", "reads.trimmed"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := Basename(tt.path); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
