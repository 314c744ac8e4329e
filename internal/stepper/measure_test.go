package stepper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasure_Empty(t *testing.T) {
	s := newAttached(0)
	m := s.Measure(UpTo(80), UpTo(40))

	require.Equal(t, 2, m.Width, "horizontal outer padding only")
	require.Equal(t, 2, m.Height, "vertical outer padding only")
	require.Empty(t, m.Steps)
}

func TestMeasure_Collapsed(t *testing.T) {
	s := newAttached(3)
	m := s.Measure(UpTo(80), UpTo(40))

	for i, sm := range m.Steps {
		require.Equal(t, 1, sm.DecoratorHeight, "step %d", i)
		require.Zero(t, sm.ActiveHeight, "step %d", i)
	}
	require.Equal(t, 1, m.Steps[0].BottomMargin)
	require.Equal(t, 1, m.Steps[1].BottomMargin)
	require.Zero(t, m.Steps[2].BottomMargin, "last step has no bottom margin")

	// 2 padding + (1+1) + (1+1) + 1
	require.Equal(t, 7, m.Height)
	// Widest is the continue control: "Continue" plus 2x2 padding, after the
	// 4-column icon column, plus 2 padding.
	require.Equal(t, 2+4+12, m.Width)
}

func TestMeasure_HeightIsSumOfSteps(t *testing.T) {
	s := newAttached(4)
	s.Tap(2)
	m := s.Measure(UpTo(120), UpTo(100))

	want := s.verticalPadding()
	for _, sm := range m.Steps {
		want += sm.DecoratorHeight + sm.ActiveHeight + sm.BottomMargin
	}
	require.Equal(t, want, m.Height)

	for i, sm := range m.Steps {
		if i == 2 {
			// content 3 + continue 1 with its 1-row top margin
			require.Equal(t, 5, sm.ActiveHeight)
			continue
		}
		require.Zero(t, sm.ActiveHeight, "step %d", i)
	}
}

func TestMeasure_WidthCoversDecorators(t *testing.T) {
	s := New(testCommon())
	kids := children(2)
	kids[1].Title = "A considerably longer title than the others"
	require.NoError(t, s.Attach(kids, nil))

	m := s.Measure(Unbounded(), Unbounded())
	for _, sm := range m.Steps {
		require.GreaterOrEqual(t, m.Width, sm.DecoratorWidth)
	}
	require.Equal(t, s.horizontalPadding()+m.Steps[1].DecoratorWidth, m.Width)
}

func TestMeasure_DecoratorWithSubtitle(t *testing.T) {
	s := New(testCommon())
	kids := children(2)
	kids[0].Summary = "blue"
	kids[1].Optional = true
	require.NoError(t, s.Attach(kids, nil))

	m := s.Measure(Unbounded(), Unbounded())

	require.Equal(t, "blue", m.Steps[0].Subtitle)
	require.Equal(t, 2, m.Steps[0].DecoratorHeight)
	require.Equal(t, 2, m.Steps[0].YDistanceToTextBottom())

	require.Equal(t, "Optional", m.Steps[1].Subtitle)
	require.Equal(t, 2, m.Steps[1].DecoratorHeight)
}

func TestMeasure_SummaryHiddenWhileActive(t *testing.T) {
	s := New(testCommon())
	kids := children(1)
	kids[0].Summary = "blue"
	require.NoError(t, s.Attach(kids, nil))
	s.Tap(0)

	m := s.Measure(Unbounded(), Unbounded())
	require.Empty(t, m.Steps[0].Subtitle)
	require.Equal(t, 1, m.Steps[0].DecoratorHeight)
}

func TestMeasure_ErrorShownAsSubtitle(t *testing.T) {
	s := newAttached(1)
	s.Tap(0)
	s.Steps()[0].SetError("required")

	m := s.Measure(Unbounded(), Unbounded())
	require.Equal(t, "required", m.Steps[0].Subtitle)
	require.Equal(t, 2, m.Steps[0].DecoratorHeight)
}

func TestMeasure_ResolvesAgainstConstraints(t *testing.T) {
	s := newAttached(2)

	m := s.Measure(Exact(50), Exact(30))
	require.Equal(t, 50, m.Width)
	require.Equal(t, 30, m.Height)

	m = s.Measure(UpTo(5), UpTo(3))
	require.Equal(t, 5, m.Width)
	require.Equal(t, 3, m.Height)
}

func TestMeasure_MinimumSize(t *testing.T) {
	s := newAttached(1, WithMinimumSize(40, 20))
	m := s.Measure(UpTo(100), UpTo(100))
	require.Equal(t, 40, m.Width)
	require.Equal(t, 20, m.Height)
}

func TestMeasure_ChildConstraintsShrinkDownTheList(t *testing.T) {
	s := newAttached(3)
	s.Tap(2)
	s.Measure(Exact(60), Exact(40))

	content := s.Steps()[2].Content().(*fakeWidget)
	// 60 - 2 padding - 4 icon column
	require.Equal(t, UpTo(54), content.lastWidth)
	// 40 - 2 padding - (1+1) - (1+1) - 1 decorator rows above
	require.Equal(t, UpTo(33), content.lastHeight)
}

func TestMeasure_TouchTargetsAreExact(t *testing.T) {
	s := New(testCommon())
	kids := children(2)
	kids[0].Summary = "two lines"
	require.NoError(t, s.Attach(kids, nil))

	m := s.Measure(Exact(30), Unbounded())
	require.Equal(t, Size{Width: 30, Height: 3}, m.Steps[0].TouchSize)
	require.Equal(t, Size{Width: 30, Height: 1}, m.Steps[1].TouchSize)
}

func TestYDistanceToNextStep(t *testing.T) {
	sm := StepMetrics{DecoratorHeight: 2, ActiveHeight: 5, BottomMargin: 1}
	require.Equal(t, 3, sm.YDistanceToNextStep())

	sm.Active = true
	require.Equal(t, 8, sm.YDistanceToNextStep())
}
