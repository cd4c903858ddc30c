package cli

import (
	"strings"
	"testing"

	"github.com/trainledger/trains/internal/models"
	"github.com/trainledger/trains/internal/testutil"
)

func TestFormatterQuietPrintsID(t *testing.T) {
	formatter := &OutputFormatter{Quiet: true}
	created := &models.Train{ID: 7, Destination: "Moscow", DepartureTime: 800}

	output := testutil.CaptureOutput(t, func() {
		if err := formatter.Success(created); err != nil {
			t.Errorf("Success failed: %v", err)
		}
	})

	if strings.TrimSpace(output) != "7" {
		t.Errorf("Expected bare ID, got %q", output)
	}
}

func TestFormatterJSONSuccessEnvelope(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	created := &models.Train{ID: 7, Destination: "Moscow", DepartureTime: 800}

	output := testutil.CaptureOutput(t, func() {
		if err := formatter.Success(created); err != nil {
			t.Errorf("Success failed: %v", err)
		}
	})

	result := testutil.ParseJSON(t, output)
	if result["success"] != true {
		t.Errorf("Expected success envelope, got %v", result)
	}
}

func TestFormatterJSONErrorEnvelope(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		if err := formatter.Error("VALIDATION_ERROR", "destination cannot be empty"); err != nil {
			t.Errorf("Error failed: %v", err)
		}
	})

	result := testutil.ParseJSON(t, output)
	if result["success"] != false {
		t.Errorf("Expected failure envelope, got %v", result)
	}
	errData, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected error object, got %v", result["error"])
	}
	if errData["code"] != "VALIDATION_ERROR" {
		t.Errorf("Expected error code VALIDATION_ERROR, got %v", errData["code"])
	}
}
