package domain_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jsamuelsen11/domainversion/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := error(&domain.ValidationError{Fields: map[string]string{
		"server.port":     "must be between 1 and 65535, got 0",
		"domains[0].path": "must be relative",
	}})

	want := "validation error: domains[0].path: must be relative; server.port: must be between 1 and 65535, got 0"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
}

func TestUnknownDomainError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *domain.UnknownDomainError
		want string
	}{
		{
			name: "undeclared",
			err:  &domain.UnknownDomainError{Domain: "ghost"},
			want: `unknown domain: "ghost" is not declared`,
		},
		{
			name: "never committed",
			err:  &domain.UnknownDomainError{Domain: "libs-b", Path: "libs/b"},
			want: `unknown domain: "libs-b" (path "libs/b") has no committed files`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, domain.ErrUnknownDomain) {
				t.Error("errors.Is(err, ErrUnknownDomain) = false, want true")
			}
		})
	}
}

func TestVCSQueryError_UnwrapsSentinelAndCause(t *testing.T) {
	t.Parallel()

	err := error(&domain.VCSQueryError{Domain: "libs-a", Path: "libs/a", Op: "open", Err: fs.ErrNotExist})

	if !errors.Is(err, domain.ErrVCSQuery) {
		t.Error("errors.Is(err, ErrVCSQuery) = false, want true")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}
	if errors.Is(err, domain.ErrUnknownDomain) {
		t.Error("errors.Is(err, ErrUnknownDomain) = true, want false")
	}

	want := `vcs query failed: open (domain "libs-a", path "libs/a"): file does not exist`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNoTagFoundWarning(t *testing.T) {
	t.Parallel()

	w := &domain.NoTagFoundWarning{Domain: "libs-a", Path: "libs/a", Base: "libs-a-0.0.0"}

	want := `no tag found for domain "libs-a" (path "libs/a"), using implicit base "libs-a-0.0.0"`
	if got := w.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
