package source_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/karupanerura/collection-cache/source"
)

type program struct {
	ID   string
	Name string
}

func programID(p program) string { return p.ID }

func TestFunctionSource_GetAll(t *testing.T) {
	t.Parallel()

	sourceErr := errors.New("source error")
	tests := []struct {
		name       string
		getAll     func(context.Context) ([]program, error)
		wantResult []program
		wantErr    error
	}{
		{
			name: "successful get all",
			getAll: func(context.Context) ([]program, error) {
				return []program{{ID: "p1", Name: "Robotics"}}, nil
			},
			wantResult: []program{{ID: "p1", Name: "Robotics"}},
		},
		{
			name: "error from function",
			getAll: func(context.Context) ([]program, error) {
				return nil, sourceErr
			},
			wantErr: sourceErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := source.FunctionSource[program](tt.getAll).GetAll(t.Context())
			if diff := cmp.Diff(tt.wantErr, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantResult, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStaticSource_GetAll(t *testing.T) {
	t.Parallel()

	src := source.StaticSource[program]{{ID: "p1", Name: "Robotics"}, {ID: "p2", Name: "Chess"}}

	first, err := src.GetAll(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].Name = "modified"

	second, err := src.GetAll(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []program{{ID: "p1", Name: "Robotics"}, {ID: "p2", Name: "Chess"}}
	if diff := cmp.Diff(want, second); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestLintSource_GetAll(t *testing.T) {
	t.Parallel()

	sourceErr := errors.New("source error")
	tests := []struct {
		name       string
		getAll     func(context.Context) ([]program, error)
		wantResult []program
		wantErr    error
		wantPanic  any
	}{
		{
			name: "valid collection",
			getAll: func(context.Context) ([]program, error) {
				return []program{{ID: "p1"}, {ID: "p2"}}, nil
			},
			wantResult: []program{{ID: "p1"}, {ID: "p2"}},
		},
		{
			name: "error passes through",
			getAll: func(context.Context) ([]program, error) {
				return nil, sourceErr
			},
			wantErr: sourceErr,
		},
		{
			name: "values with error",
			getAll: func(context.Context) ([]program, error) {
				return []program{{ID: "p1"}}, sourceErr
			},
			wantPanic: "must not return values with an error",
		},
		{
			name: "missing identifier",
			getAll: func(context.Context) ([]program, error) {
				return []program{{ID: "p1"}, {Name: "anonymous"}}, nil
			},
			wantPanic: "missing identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if diff := cmp.Diff(tt.wantPanic, recover()); diff != "" {
					t.Errorf("panic mismatch (-want +got):\n%s", diff)
				}
			}()

			src := &source.LintSource[string, program]{
				Source: source.FunctionSource[program](tt.getAll),
				KeyOf:  programID,
			}
			got, err := src.GetAll(t.Context())
			if diff := cmp.Diff(tt.wantErr, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantResult, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
