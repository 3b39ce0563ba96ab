package main

import (
	"errors"
	"testing"

	"github.com/Faultbox/terraview/internal/engine/terrain"
)

func TestParameters(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   terrain.Parameters
		target error
		fails  bool
	}{
		{name: "defaults", want: terrain.DefaultParameters()},
		{name: "explicit", args: []string{"-seed", "42", "-size", "25", "-subdivisions", "300"},
			want: terrain.Parameters{Seed: 42, Size: 25, Subdivisions: 300}},
		{name: "max seed", args: []string{"-seed", "4294967295"},
			want: terrain.Parameters{Seed: 4294967295, Size: 10, Subdivisions: 100}},
		{name: "seed overflow", args: []string{"-seed", "4294967296"}, fails: true},
		{name: "subdivisions overflow", args: []string{"-subdivisions", "4294967298"}, target: terrain.ErrInvalidSubdivisions},
		{name: "subdivisions over limit", args: []string{"-subdivisions", "100000"}, target: terrain.ErrInvalidSubdivisions},
		{name: "zero subdivisions", args: []string{"-subdivisions", "0"}, target: terrain.ErrInvalidSubdivisions},
		{name: "size over limit", args: []string{"-size", "250"}, target: terrain.ErrInvalidSize},
		{name: "zero size", args: []string{"-size", "0"}, target: terrain.ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, tf := newFlagSet("info")
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}

			p, err := tf.parameters()
			if tt.fails || tt.target != nil {
				if err == nil {
					t.Fatalf("expected error, got %+v", p)
				}
				if tt.target != nil && !errors.Is(err, tt.target) {
					t.Errorf("expected %v, got %v", tt.target, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parameters: %v", err)
			}
			if p != tt.want {
				t.Errorf("parameters = %+v, want %+v", p, tt.want)
			}
		})
	}
}
