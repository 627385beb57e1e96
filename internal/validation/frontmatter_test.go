package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr string
	}{
		{name: "valid", title: "Understanding Closures"},
		{name: "empty", title: "", wantErr: "required"},
		{name: "whitespace only", title: "   ", wantErr: "required"},
		{name: "too long", title: strings.Repeat("a", 201), wantErr: "too long"},
		{name: "exactly max", title: strings.Repeat("a", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     string
	}{
		{name: "valid", description: "A short summary of the page."},
		{name: "empty", description: "", wantErr: "required"},
		{name: "too long", description: strings.Repeat("b", 501), wantErr: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.description)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCanonical(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "https", url: "https://example.com/js/closures"},
		{name: "http", url: "http://example.com/page"},
		{name: "empty", url: "", wantErr: "empty"},
		{name: "relative", url: "/js/closures", wantErr: "http or https"},
		{name: "wrong scheme", url: "ftp://example.com/file", wantErr: "http or https"},
		{name: "no host", url: "https:///path", wantErr: "no host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCanonical(tt.url)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNavWeight(t *testing.T) {
	assert.NoError(t, ValidateNavWeight(0))
	assert.NoError(t, ValidateNavWeight(42))
	assert.Error(t, ValidateNavWeight(-1))
}

func TestParseDate(t *testing.T) {
	t.Run("time passthrough", func(t *testing.T) {
		now := time.Now()
		parsed, err := ParseDate(now)
		require.NoError(t, err)
		assert.Equal(t, now, parsed)
	})

	t.Run("date only", func(t *testing.T) {
		parsed, err := ParseDate("2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rfc3339", func(t *testing.T) {
		parsed, err := ParseDate("2024-05-01T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 10, parsed.Hour())
	})

	t.Run("datetime", func(t *testing.T) {
		parsed, err := ParseDate("2024-05-01 10:30:00")
		require.NoError(t, err)
		assert.Equal(t, 30, parsed.Minute())
	})

	t.Run("garbage string", func(t *testing.T) {
		_, err := ParseDate("yesterday")
		assert.ErrorContains(t, err, "not a recognized format")
	})

	t.Run("unexpected type", func(t *testing.T) {
		_, err := ParseDate(20240501)
		assert.ErrorContains(t, err, "unexpected type")
	})
}
