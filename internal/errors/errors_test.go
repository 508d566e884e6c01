package errors

import (
	stderrors "errors"
	"testing"

	"cyberrisk/domain/core"
)

func TestAppError_Error(t *testing.T) {
	plain := New(CodeConfigInvalid, "bad config")
	if got := plain.Error(); got != "bad config" {
		t.Errorf("Error() = %q, want %q", got, "bad config")
	}

	wrapped := DatabaseError("failed to get run", stderrors.New("connection refused"))
	want := "failed to get run: connection refused"
	if got := wrapped.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := DatabaseError("failed to list runs", cause)
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	// Wrapping a domain sentinel preserves its mapped code.
	err := Wrap(core.NewParameterError("sigma", "must be positive"), "validation failed")
	if code := GetCode(err); code != CodeParameterError {
		t.Errorf("GetCode = %q, want %q", code, CodeParameterError)
	}

	// Wrapping an AppError preserves its code.
	inner := DatabaseError("failed to get run", stderrors.New("timeout"))
	outer := Wrap(inner, "repository lookup failed")
	if code := GetCode(outer); code != CodeDatabaseError {
		t.Errorf("GetCode = %q, want %q", code, CodeDatabaseError)
	}
}

func TestCodeFor_DomainSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"parameter", core.NewParameterError("alpha", "must be positive"), CodeParameterError},
		{"degenerate", core.NewDegenerateInputError("total is zero"), CodeDegenerateInput},
		{"regression", core.NewRegressionError(stderrors.New("rank zero")), CodeRegressionError},
		{"optimization", core.NewOptimizationError("infeasible", nil), CodeOptimizationError},
		{"not found", core.NewNotFoundError("simulation run", "abc"), CodeNotFound},
		{"unknown", stderrors.New("boom"), CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeFor(tt.err); got != tt.want {
				t.Errorf("CodeFor(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestDatabaseError(t *testing.T) {
	cause := stderrors.New("pq: deadlock detected")
	err := DatabaseError("failed to update run", cause)
	if err.Code != CodeDatabaseError {
		t.Errorf("Code = %q, want %q", err.Code, CodeDatabaseError)
	}
	if GetCode(err) != CodeDatabaseError {
		t.Errorf("GetCode = %q, want %q", GetCode(err), CodeDatabaseError)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause not preserved")
	}
}
