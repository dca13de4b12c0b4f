package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		login   string
		wantErr bool
	}{
		{name: "letters and digits", login: "alice42", wantErr: false},
		{name: "upper case", login: "ADMIN", wantErr: false},
		{name: "empty", login: "", wantErr: true},
		{name: "space", login: "al ice", wantErr: true},
		{name: "underscore", login: "al_ice", wantErr: true},
		{name: "cyrillic", login: "алиса", wantErr: true},
		{name: "email", login: "alice@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Login(tt.login)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLogin)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "alphanumeric", password: "Secret123", wantErr: false},
		{name: "special chars", password: "p@ssw0rd!", wantErr: true},
		{name: "dash", password: "pass-word", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		wantErr     bool
	}{
		{name: "latin", displayName: "Alex", wantErr: false},
		{name: "cyrillic", displayName: "Алексей", wantErr: false},
		{name: "cyrillic yo", displayName: "Семён", wantErr: false},
		{name: "mixed alphabets", displayName: "AlexАлекс", wantErr: false},
		{name: "digits", displayName: "Alex2", wantErr: true},
		{name: "space", displayName: "Alex Smith", wantErr: true},
		{name: "empty", displayName: "", wantErr: true},
		{name: "greek", displayName: "Αλέξης", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DisplayName(tt.displayName)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDisplayName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_LettersTagOnStruct(t *testing.T) {
	type request struct {
		Name string `validate:"required,letters"`
	}

	v := New()
	require.NoError(t, v.Struct(request{Name: "Мария"}))
	assert.Error(t, v.Struct(request{Name: "M4ria"}))
}

func TestNew_RegistersLettersTag(t *testing.T) {
	require.NotPanics(t, func() { New() })

	v := New()
	assert.NoError(t, v.Var("Алиса", TagLetters))
	assert.Error(t, v.Var("Alice1", TagLetters))
}
