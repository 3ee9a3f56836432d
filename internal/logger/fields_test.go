package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsOmitsEmptyEntries(t *testing.T) {
	fields := StringFields(
		StringField{Key: "filter_field", Value: "title"},
		StringField{Key: "filter_value", Value: "   "},
		StringField{Key: "", Value: "orphan"},
		StringField{Key: "  operator  ", Value: " equals "},
	)

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "filter_field" {
		t.Fatalf("unexpected first key: %s", fields[0].Key)
	}

	expected := zap.String("operator", "equals")
	if fields[1].Key != expected.Key || fields[1].String != expected.String {
		t.Fatalf("expected trimmed key and value, got %s=%s", fields[1].Key, fields[1].String)
	}
}
