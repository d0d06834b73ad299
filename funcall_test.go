package funcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want ParameterKind
		ok   bool
	}{
		{"string", KindString, true},
		{"number", KindNumber, true},
		{"boolean", KindBoolean, true},
		{"array", KindArray, true},
		{"object", KindObject, true},
		{"enum", KindEnum, true},
		{"integer", "", false},
		{"STRING", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run("kind_"+tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if !tt.ok {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindStringForms(t *testing.T) {
	assert.Equal(t, "string", string(KindString))
	assert.Equal(t, "number", string(KindNumber))
	assert.Equal(t, "boolean", string(KindBoolean))
	assert.Equal(t, "array", string(KindArray))
	assert.Equal(t, "object", string(KindObject))
	assert.Equal(t, "enum", string(KindEnum))
}
