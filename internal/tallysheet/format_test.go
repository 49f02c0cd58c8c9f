package tallysheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputText(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "______"},
		{"whitespace only", "   ", "______"},
		{"tab and newline", "\t\n", "______"},
		{"plain value", "42", "42"},
		{"value kept verbatim", " 7.5 ", " 7.5 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InputText(tt.value))
		})
	}
}

func TestInputTextN(t *testing.T) {
	assert.Equal(t, "___", InputTextN("", 3))
	assert.Equal(t, "x", InputTextN("x", 3))
}

func TestCheckboxMark(t *testing.T) {
	assert.Equal(t, "X", CheckboxMark("on"))
	assert.Equal(t, "X", CheckboxMark("anything"))
	assert.Equal(t, "_", CheckboxMark(""))
	assert.Equal(t, "_", CheckboxMark("   "))
}
