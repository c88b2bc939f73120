package binder

import (
	"testing"

	"github.com/animalet/propconf-go/pkg/schema"
)

func TestConvert_BlankIsNoValue(t *testing.T) {
	kinds := []schema.Kind{
		schema.TypeString,
		schema.TypeInt,
		schema.TypeLong,
		schema.TypeBool,
		schema.TypeFloat,
		schema.TypeDouble,
		schema.TypeEnum,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			slot := schema.StringSlot("any", "")
			v, err := convert(slot, kind, " \t ")
			if err != nil {
				t.Fatalf("convert() error = %v", err)
			}
			if v != nil {
				t.Errorf("Expected nil for blank input, got %v", v)
			}
		})
	}
}

func TestConvert_Scalars(t *testing.T) {
	slot := schema.StringSlot("any", "")

	tests := []struct {
		name  string
		kind  schema.Kind
		value string
		want  any
	}{
		{"string passthrough", schema.TypeString, "hello world", "hello world"},
		{"int", schema.TypeInt, "-42", -42},
		{"long", schema.TypeLong, "9223372036854775807", int64(9223372036854775807)},
		{"bool true", schema.TypeBool, "TrUe", true},
		{"bool anything else", schema.TypeBool, "enabled", false},
		{"float", schema.TypeFloat, "1.5", float32(1.5)},
		{"double", schema.TypeDouble, "2.5", 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert(slot, tt.kind, tt.value)
			if err != nil {
				t.Fatalf("convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestConvert_NumericFailures(t *testing.T) {
	slot := schema.StringSlot("any", "")

	tests := []struct {
		name  string
		kind  schema.Kind
		value string
	}{
		{"int word", schema.TypeInt, "ten"},
		{"int with space", schema.TypeInt, " 5"},
		{"long word", schema.TypeLong, "big"},
		{"float word", schema.TypeFloat, "fast"},
		{"double word", schema.TypeDouble, "slow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := convert(slot, tt.kind, tt.value); err == nil {
				t.Errorf("Expected error for '%s', got nil", tt.value)
			}
		})
	}
}

func TestConvert_EnumUppercasesBeforeLookup(t *testing.T) {
	slot := schema.EnumSlot("level", nil, map[string]any{"INFO": 1})

	got, err := convert(slot, schema.TypeEnum, "iNfO")
	if err != nil {
		t.Fatalf("convert() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}

	if _, err := convert(slot, schema.TypeEnum, "nope"); err == nil {
		t.Error("Expected error for unknown constant, got nil")
	}
}

func TestConvert_ContainerKindsHaveNoScalarForm(t *testing.T) {
	slot := schema.StringSlot("any", "")
	for _, kind := range []schema.Kind{schema.TypeCollection, schema.TypeMap} {
		if _, err := convert(slot, kind, "value"); err == nil {
			t.Errorf("Expected error for kind %s, got nil", kind)
		}
	}
}

func TestConvertOrRaw(t *testing.T) {
	slot := schema.StringSlot("any", "")

	if got := convertOrRaw(slot, schema.TypeInt, "7"); got != 7 {
		t.Errorf("Expected converted 7, got %v", got)
	}
	if got := convertOrRaw(slot, schema.TypeInt, "seven"); got != "seven" {
		t.Errorf("Expected raw fallback 'seven', got %v", got)
	}
	if got := convertOrRaw(slot, schema.TypeInt, "  "); got != "  " {
		t.Errorf("Expected blank raw fallback, got %v", got)
	}
}
