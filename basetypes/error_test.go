package basetypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/igor-bzovsky/basetypes-go/basetypes"
)

func Test_Error_EqualityIsByCodeAndMessage(t *testing.T) {
	tests := []struct {
		name     string
		a        basetypes.Error
		b        basetypes.Error
		expected bool
	}{
		{
			name:     "identical_code_and_message_are_equal",
			a:        basetypes.NewError("order/not-found", "order does not exist"),
			b:        basetypes.NewError("order/not-found", "order does not exist"),
			expected: true,
		},
		{
			name:     "differing_code_is_not_equal",
			a:        basetypes.NewError("order/not-found", "order does not exist"),
			b:        basetypes.NewError("order/conflict", "order does not exist"),
			expected: false,
		},
		{
			name:     "differing_message_is_not_equal",
			a:        basetypes.NewError("order/not-found", "order does not exist"),
			b:        basetypes.NewError("order/not-found", "no such order"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, basetypes.EqualValueObjects(tt.a, tt.b))
		})
	}
}

func Test_Error_ImplementsTheBuiltinErrorInterface(t *testing.T) {
	var err error = basetypes.NewError("order/not-found", "order does not exist")

	assert.EqualError(t, err, "order/not-found: order does not exist")
}

func Test_Error_ExposesCodeAndMessage(t *testing.T) {
	failure := basetypes.NewError("order/not-found", "order does not exist")

	assert.Equal(t, "order/not-found", failure.Code())
	assert.Equal(t, "order does not exist", failure.Message())
}
