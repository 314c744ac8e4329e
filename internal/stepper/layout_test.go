package stepper

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 int) uv.Rectangle {
	return uv.Rectangle{Min: uv.Position{X: x0, Y: y0}, Max: uv.Position{X: x1, Y: y1}}
}

func TestLayout_ExpandedStep(t *testing.T) {
	s := newAttached(3)
	s.Tap(0)
	m := s.Measure(UpTo(80), UpTo(40))
	require.Equal(t, 18, m.Width)
	require.Equal(t, 12, m.Height)

	s.Layout(m, uv.Position{})
	steps := s.Steps()

	// Touch targets bleed one cell into the outer padding.
	require.Equal(t, rect(0, 0, 18, 2), steps[0].TouchTarget())
	require.Equal(t, rect(0, 7, 18, 9), steps[1].TouchTarget())
	require.Equal(t, rect(0, 9, 18, 10), steps[2].TouchTarget())

	// Content sits right of the icon column, below the title.
	require.Equal(t, rect(5, 2, 15, 5), steps[0].Content().Bounds())
	// Continue sits below the content after its top margin.
	require.Equal(t, rect(5, 6, 17, 7), steps[0].ContinueControl().Bounds())
}

func TestLayout_Origin(t *testing.T) {
	s := newAttached(2)
	s.Tap(1)
	m := s.Measure(UpTo(80), UpTo(40))
	s.Layout(m, uv.Position{X: 10, Y: 4})

	require.Equal(t, 10, s.Steps()[0].TouchTarget().Min.X)
	require.Equal(t, 4, s.Steps()[0].TouchTarget().Min.Y)
	require.Equal(t, uv.Position{X: 10, Y: 4}, s.Bounds(m).Min)

	content := s.Steps()[1].Content().Bounds()
	// origin + padding + icon column; origin + padding + first step (1+1) + title row
	require.Equal(t, 10+1+4, content.Min.X)
	require.Equal(t, 4+1+2+1, content.Min.Y)
}

func TestLayout_ClipsContentToBounds(t *testing.T) {
	s := New(testCommon())
	kids := children(1)
	kids[0].Content = newFakeWidget("wide", 200, 50)
	require.NoError(t, s.Attach(kids, nil))
	s.Tap(0)

	m := s.Measure(Exact(30), Exact(10))
	s.Layout(m, uv.Position{})

	b := s.Steps()[0].Content().Bounds()
	require.LessOrEqual(t, b.Max.X, 30-1)
	require.LessOrEqual(t, b.Max.Y, 10-1)
}

func TestLayout_TouchTargetClippedToPadding(t *testing.T) {
	s := newAttached(1)
	m := s.Measure(Exact(20), Exact(2))
	s.Layout(m, uv.Position{})

	// Content rect is rows [1,1); the touch target may reach row 2 at most.
	require.LessOrEqual(t, s.Steps()[0].TouchTarget().Max.Y, 2)
}

func TestLayout_NoSteps(t *testing.T) {
	s := newAttached(0)
	m := s.Measure(UpTo(10), UpTo(10))
	require.NotPanics(t, func() { s.Layout(m, uv.Position{}) })
}

func TestHitTest(t *testing.T) {
	s := newAttached(3)
	s.Tap(0)
	m := s.Measure(UpTo(80), UpTo(40))
	s.Layout(m, uv.Position{})

	require.Equal(t, Hit{Kind: HitDecorator, Step: 0}, s.HitTest(0, 0))
	require.Equal(t, Hit{Kind: HitDecorator, Step: 1}, s.HitTest(4, 8))
	require.Equal(t, Hit{Kind: HitContent, Step: 0}, s.HitTest(6, 3))
	require.Equal(t, Hit{Kind: HitContinue, Step: 0}, s.HitTest(6, 6))
	require.Equal(t, HitNone, s.HitTest(17, 11).Kind)
}

func TestHandleClick(t *testing.T) {
	s := newAttached(3)
	s.Tap(0)
	m := s.Measure(UpTo(80), UpTo(40))
	s.Layout(m, uv.Position{})

	content := s.Steps()[0].Content().(*fakeWidget)
	require.True(t, s.HandleClick(6, 3))
	require.Equal(t, 1, content.clicks)

	// Continue advances to step 2.
	require.True(t, s.HandleClick(6, 6))
	require.True(t, s.Steps()[0].IsComplete())
	require.True(t, s.IsActive(1))

	// Stale layout still maps (0,0) to step 1's decorator: it closes the
	// open step and opens step 1 again.
	require.True(t, s.HandleClick(0, 0))
	require.True(t, s.IsActive(0))

	require.False(t, s.HandleClick(17, 11))
}

func TestLayout_StepOrigins(t *testing.T) {
	s := newAttached(3)
	s.Tap(0)
	m := s.Measure(UpTo(80), UpTo(40))
	s.Layout(m, uv.Position{X: 2, Y: 3})

	require.Equal(t, uv.Position{X: 3, Y: 4}, s.Steps()[0].Origin())
	require.Equal(t, uv.Position{X: 3, Y: 11}, s.Steps()[1].Origin())
	require.Equal(t, uv.Position{X: 3, Y: 13}, s.Steps()[2].Origin())
}
