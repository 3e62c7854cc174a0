package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/moo/internal/dom"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		h, m, s int
		want    string
	}{
		{0, 0, 0, "12:00 AM"},
		{9, 5, 59, "9:05 AM"},
		{12, 30, 0, "12:30 PM"},
		{23, 59, 59, "11:59 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ts := time.Date(2024, 5, 1, tt.h, tt.m, tt.s, 0, time.Local)
			assert.Equal(t, tt.want, Format(ts))
		})
	}
}

func TestUpdateTime(t *testing.T) {
	doc, err := dom.ParseString(`<body><span id="time">--</span><span id="weather"></span></body>`)
	require.NoError(t, err)

	UpdateTime(doc, time.Date(2024, 5, 1, 14, 7, 0, 0, time.Local))
	assert.Equal(t, "2:07 PM", doc.GetElementByID(TimeID).TextContent())

	UpdateWeather(doc, "☀️\n")
	assert.Equal(t, "☀️", doc.GetElementByID(WeatherID).TextContent())

	// pages without the widget are left alone
	empty := dom.NewDocument()
	UpdateTime(empty, time.Now())
	UpdateWeather(empty, "x")
	UpdateTime(nil, time.Now())
}

func TestHM(t *testing.T) {
	tests := []struct {
		d      time.Duration
		plain  string
		colons string
	}{
		{30 * time.Second, "", "00"},
		{61 * time.Second, "2m", "02"},
		{5 * time.Minute, "5m", "05"},
		{time.Hour, "1h", "01:00"},
		{time.Hour + 5*time.Minute, "1h5m", "01:05"},
		{2*time.Hour + 30*time.Minute + 10*time.Second, "2h31m", "02:31"},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.plain, HM(tt.d, false))
			assert.Equal(t, tt.colons, HM(tt.d, true))
		})
	}
}
