package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTwiceRestoresLanguage(t *testing.T) {
	t.Parallel()

	for _, lang := range Languages {
		once := lang.Toggle()
		assert.NotEqual(t, lang, once)
		assert.Equal(t, lang, once.Toggle())
	}
}

func TestDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RTL, Arabic.Dir())
	assert.Equal(t, LTR, English.Dir())
	assert.Equal(t, "ar", Arabic.Tag().String())
	assert.Equal(t, "en", English.Tag().String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "ar", want: Arabic},
		{in: " EN ", want: English},
		{in: "fr", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   Language
	}{
		{header: "", want: Arabic},
		{header: "en-US,en;q=0.9", want: English},
		{header: "ar-SA", want: Arabic},
		{header: "fr-FR", want: Arabic},
		{header: "fr;q=0.9, en;q=0.8", want: English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.header, Arabic), tt.header)
	}
}

func TestDefaultTableIsComplete(t *testing.T) {
	t.Parallel()

	table, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "كيان", table.T("brandName", Arabic))
	assert.Equal(t, "Kayan", table.T("brandName", English))
	assert.Equal(t, "Apologies, the consultant is currently unavailable.", table.T("replyUnavailable", English))
	assert.Equal(t, "missing.key", table.T("missing.key", English))
}

func TestLoadRejectsMissingVariant(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte("greeting:\n  ar: \"مرحبا\"\nfarewell:\n  en: \"bye\"\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTranslation)
	assert.Contains(t, err.Error(), "greeting[en]")
	assert.Contains(t, err.Error(), "farewell[ar]")
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(""))
	assert.Error(t, err)
}
