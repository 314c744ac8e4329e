package theme

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestInterpolateColor(t *testing.T) {
	require.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	require.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	require.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	require.Equal(t, []uint8{0xcb, 0xa6, 0xf7}, []uint8{r, g, b})

	r, g, b = ParseHexColor("bad")
	require.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestApplyGradient(t *testing.T) {
	out := ApplyGradient("a b", "#000000", "#ffffff")
	require.Equal(t, "a b", ansi.Strip(out))
	require.Empty(t, ApplyGradient("", "#000000", "#ffffff"))
}

func TestHexToColor(t *testing.T) {
	require.Nil(t, HexToColor(""))
	require.NotNil(t, HexToColor("#ffffff"))
}

func TestStylesAreCached(t *testing.T) {
	th := NewCatppuccinMocha()
	require.Same(t, th.S(), th.S())
	require.Same(t, Current(), Current())
}
