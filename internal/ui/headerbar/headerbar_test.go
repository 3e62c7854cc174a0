package headerbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/moo/internal/ui/styles"
	"github.com/llehouerou/moo/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	h := Header{
		Server:  "localhost:5000",
		Path:    "/album/Miles%20Davis/Kind%20of%20Blue",
		Time:    "9:41 PM",
		Weather: "+12°C",
		Cache:   "12 MB cached",
	}
	out := Render(styles.T(false), h, 120)
	plain := testutil.StripANSI(out)

	assert.Contains(t, plain, "moo │ localhost:5000 │ /album/Miles%20Davis/Kind%20of%20Blue")
	assert.Contains(t, plain, "12 MB cached │ +12°C │ 9:41 PM")
	assert.Equal(t, 120, testutil.MeasureWidth(out))
}

func TestRender_Loading(t *testing.T) {
	out := Render(styles.T(true), Header{Server: "s", Path: "/old", Loading: "⣾ /random"}, 60)
	plain := testutil.StripANSI(out)
	assert.Contains(t, plain, "⣾ /random")
	assert.NotContains(t, plain, "/old")
}

func TestRender_Narrow(t *testing.T) {
	h := Header{Server: "music.example.org:5000", Path: "/track/3/a/very/long/album/key", Time: "9:41 PM", Weather: "rain", Cache: "1.2 GB cached"}
	out := Render(styles.T(false), h, 40)
	plain := testutil.StripANSI(out)
	assert.Contains(t, plain, "9:41 PM")
	assert.NotContains(t, plain, "cached")
	assert.LessOrEqual(t, testutil.MeasureWidth(out), 40)

	assert.Empty(t, Render(styles.T(false), h, 10))
}
