package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/magma/magma-sub005/kit/errors"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			want: "",
		},
		{
			name: "simple",
			err:  &errors.Error{Msg: "organization not found"},
			want: "organization not found",
		},
		{
			name: "wrapped message wins",
			err: &errors.Error{
				Err: &errors.Error{Msg: "organization not found"},
			},
			want: "organization not found",
		},
		{
			name: "deeply nested",
			err: &errors.Error{
				Err: &errors.Error{
					Err: &errors.Error{Msg: "organization not found"},
				},
			},
			want: "organization not found",
		},
		{
			name: "no message",
			err:  &errors.Error{Code: errors.EInternal},
			want: "An internal error has occurred.",
		},
		{
			name: "foreign error",
			err:  stderrors.New("boom"),
			want: "An internal error has occurred.",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := errors.ErrorMessage(c.err); got != c.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			want: "",
		},
		{
			name: "explicit code",
			err:  &errors.Error{Code: errors.ENotFound},
			want: errors.ENotFound,
		},
		{
			name: "code inherited from the wrapped error",
			err: &errors.Error{
				Op:  "reconcile.DeleteTenant",
				Err: &errors.Error{Code: errors.ENotFound},
			},
			want: errors.ENotFound,
		},
		{
			name: "no code anywhere",
			err:  &errors.Error{Msg: "mystery"},
			want: errors.EInternal,
		},
		{
			name: "foreign error",
			err:  stderrors.New("boom"),
			want: errors.EInternal,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := errors.ErrorCode(c.err); got != c.want {
				t.Errorf("ErrorCode() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestErrorOp(t *testing.T) {
	err := &errors.Error{
		Err: &errors.Error{
			Op:  "bolt.FindOrganizationByID",
			Err: &errors.Error{Op: "ignored deeper op"},
		},
	}
	if got, want := errors.ErrorOp(err), "bolt.FindOrganizationByID"; got != want {
		t.Errorf("ErrorOp() = %q, want %q", got, want)
	}
}

func TestErrorError(t *testing.T) {
	err := &errors.Error{
		Msg: "failed to reconcile",
		Err: &errors.Error{Msg: "orchestrator down"},
	}
	if got, want := err.Error(), "failed to reconcile: orchestrator down"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &errors.Error{Code: errors.EConflict}
	if got, want := bare.Error(), "<conflict>"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorJSONRoundTrip(t *testing.T) {
	in := &errors.Error{
		Code: errors.EUnavailable,
		Msg:  "orchestrator returned 503",
		Op:   "orc8r.Tenants",
		Err:  stderrors.New("connection refused"),
	}

	b, err := in.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	out := new(errors.Error)
	if err := out.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}

	if out.Code != in.Code || out.Msg != in.Msg || out.Op != in.Op {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
	if out.Err == nil || out.Err.Error() != "connection refused" {
		t.Errorf("inner error not preserved: %v", out.Err)
	}
}
