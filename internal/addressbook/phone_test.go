package addressbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Ten digits", "1234567890", false},
		{"All zeros", "0000000000", false},
		{"Too short", "123456789", true},
		{"Too long", "12345678901", true},
		{"Contains letter", "12345678ab", true},
		{"Contains dash", "123-456-78", true},
		{"Leading plus", "+123456789", true},
		{"Leading space", " 123456789", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, phone.String())
		})
	}
}

func TestPhoneEqual(t *testing.T) {
	a, err := NewPhone("1234567890")
	require.NoError(t, err)
	b, err := NewPhone("1234567890")
	require.NoError(t, err)
	c, err := NewPhone("0987654321")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
