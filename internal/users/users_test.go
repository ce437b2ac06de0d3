package users_test

import (
	"errors"
	"testing"

	"github.com/pathlight-health/casebook/internal/users"
)

func TestRegisterCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     users.RegisterCommand
		wantErr error
	}{
		{name: "valid", cmd: users.RegisterCommand{Name: "Jane Doe", PIN: "0412"}},
		{name: "blank name", cmd: users.RegisterCommand{Name: "   ", PIN: "1234"}, wantErr: users.ErrNameRequired},
		{name: "short pin", cmd: users.RegisterCommand{Name: "Jane", PIN: "123"}, wantErr: users.ErrInvalidPIN},
		{name: "long pin", cmd: users.RegisterCommand{Name: "Jane", PIN: "12345"}, wantErr: users.ErrInvalidPIN},
		{name: "non-numeric pin", cmd: users.RegisterCommand{Name: "Jane", PIN: "12a4"}, wantErr: users.ErrInvalidPIN},
		{name: "empty pin", cmd: users.RegisterCommand{Name: "Jane", PIN: ""}, wantErr: users.ErrInvalidPIN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
