package stepper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		c    Constraint
		want int
	}{
		{name: "exact overrides", size: 5, c: Exact(12), want: 12},
		{name: "at most clamps", size: 30, c: UpTo(20), want: 20},
		{name: "at most keeps smaller", size: 8, c: UpTo(20), want: 8},
		{name: "unbounded keeps", size: 99, c: Unbounded(), want: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveSize(tt.size, tt.c))
		})
	}
}

func TestChildConstraint(t *testing.T) {
	tests := []struct {
		name   string
		parent Constraint
		used   int
		dim    Dimension
		want   Constraint
	}{
		{name: "explicit size", parent: UpTo(10), used: 2, dim: 4, want: Exact(4)},
		{name: "exact parent match", parent: Exact(40), used: 6, dim: MatchParent, want: Exact(34)},
		{name: "exact parent wrap", parent: Exact(40), used: 6, dim: WrapContent, want: UpTo(34)},
		{name: "at most parent match", parent: UpTo(40), used: 6, dim: MatchParent, want: UpTo(34)},
		{name: "at most parent wrap", parent: UpTo(40), used: 6, dim: WrapContent, want: UpTo(34)},
		{name: "unbounded parent", parent: Unbounded(), used: 6, dim: WrapContent, want: Constraint{Mode: Unspecified}},
		{name: "used exceeds parent", parent: Exact(4), used: 10, dim: MatchParent, want: Exact(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ChildConstraint(tt.parent, tt.used, tt.dim))
		})
	}
}

func TestModeString(t *testing.T) {
	require.Equal(t, "exactly", Exactly.String())
	require.Equal(t, "at-most", AtMost.String())
	require.Equal(t, "unspecified", Unspecified.String())
}

func TestBaseWidget_SetMeasured(t *testing.T) {
	b := NewBaseWidget("w", LayoutParams{Width: 7, Height: WrapContent})
	got := b.SetMeasured(Size{Width: 20, Height: 9}, UpTo(30), UpTo(4))
	require.Equal(t, Size{Width: 7, Height: 4}, got)
	require.Equal(t, got, b.MeasuredSize())
	require.True(t, b.Visible())
}
