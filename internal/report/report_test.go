package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"lab-funding/internal/models"
	"log/slog"
	"os"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestConsoleReporter_Grant(t *testing.T) {
	var buf bytes.Buffer
	r := &ConsoleReporter{W: &buf}

	err := r.Report(context.Background(), models.FundingDecision{
		Source: models.SourceNSERC, AccountNumber: "123456", Status: models.StatusFunded,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := "NSERC funding.\nAccount number: 123456\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestConsoleReporter_None(t *testing.T) {
	var buf bytes.Buffer
	r := &ConsoleReporter{W: &buf}

	if err := r.Report(context.Background(), models.FundingDecision{Source: models.SourceNone, Status: models.StatusNotFunded}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if buf.String() != "No funding available.\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestConsoleReporter_NilWriterUsesStdout(t *testing.T) {
	orig := os.Stdout
	rd, wr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = wr
	defer func() { os.Stdout = orig }()

	reportErr := (&ConsoleReporter{}).Report(context.Background(), models.FundingDecision{Source: models.SourceNone})
	wr.Close()
	out, _ := io.ReadAll(rd)

	if reportErr != nil {
		t.Fatalf("Expected no error, got %v", reportErr)
	}
	if string(out) != "No funding available.\n" {
		t.Errorf("Expected notice on stdout, got %q", out)
	}
}

func TestConsoleReporter_WriteError(t *testing.T) {
	r := &ConsoleReporter{W: failingWriter{}}

	if err := r.Report(context.Background(), models.FundingDecision{Source: models.SourceCIHR}); err == nil {
		t.Fatal("Expected write error, got nil")
	}
}

func TestSlogReporter_EmitsStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	r := &SlogReporter{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	err := r.Report(context.Background(), models.FundingDecision{
		Source: models.SourceCIHR, AccountNumber: "987", Status: models.StatusFunded,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected one JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "funding decision" {
		t.Errorf("Unexpected msg %v", record["msg"])
	}
	if record["source"] != "CIHR" || record["account_number"] != "987" || record["status"] != "funded" {
		t.Errorf("Unexpected attributes %v", record)
	}
	if record["funded"] != true {
		t.Errorf("Expected funded=true, got %v", record["funded"])
	}
}

func TestSlogReporter_NoneIsNotFunded(t *testing.T) {
	var buf bytes.Buffer
	r := &SlogReporter{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	if err := r.Report(context.Background(), models.FundingDecision{Source: models.SourceNone, Status: models.StatusNotFunded}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected one JSON record, got %q: %v", buf.String(), err)
	}
	if record["funded"] != false || record["status"] != "not funded" {
		t.Errorf("Unexpected attributes %v", record)
	}
}

func TestMulti_ReportsToAllAndJoinsErrors(t *testing.T) {
	var first, second bytes.Buffer
	m := Multi{
		&ConsoleReporter{W: &first},
		&ConsoleReporter{W: failingWriter{}},
		&ConsoleReporter{W: &second},
	}

	err := m.Report(context.Background(), models.FundingDecision{Source: models.SourceNone})

	if err == nil {
		t.Fatal("Expected joined error, got nil")
	}
	if first.Len() == 0 || second.Len() == 0 {
		t.Error("Expected every healthy reporter to receive the decision")
	}
}
