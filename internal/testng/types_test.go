package testng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelUnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    Parallel
		wantErr bool
	}{
		{"methods", ParallelMethods, false},
		{"TESTS", ParallelTests, false},
		{"Classes", ParallelClasses, false},
		{"", "", false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var p Parallel
			err := p.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidParallel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestFailurePolicyUnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    FailurePolicy
		wantErr bool
	}{
		{"skip", FailurePolicySkip, false},
		{"CONTINUE", FailurePolicyContinue, false},
		{"", "", false},
		{"retry", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var p FailurePolicy
			err := p.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFailurePolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}
