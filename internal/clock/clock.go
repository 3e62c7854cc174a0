// Package clock renders the time and weather widget of a page.
package clock

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/llehouerou/moo/internal/dom"
)

// Interval is how often the host should re-render the time.
const Interval = time.Second

// Widget element ids.
const (
	TimeID    = "time"
	WeatherID = "weather"
)

// Format renders local time as hour:minute with an AM/PM marker.
func Format(t time.Time) string {
	return t.Format("3:04 PM")
}

// UpdateTime writes the formatted time into the time element, if any.
func UpdateTime(doc *dom.Document, now time.Time) {
	if doc == nil {
		return
	}
	if el := doc.GetElementByID(TimeID); el != nil {
		el.SetText(Format(now))
	}
}

// UpdateWeather writes the weather summary into the weather element, if any.
func UpdateWeather(doc *dom.Document, conditions string) {
	if doc == nil {
		return
	}
	if el := doc.GetElementByID(WeatherID); el != nil {
		el.SetText(strings.TrimSpace(conditions))
	}
}

// HM renders a duration as hours and minutes, rounding minutes up:
// "1h5m", or "01:05" with colons. Seconds are never shown.
func HM(d time.Duration, colons bool) string {
	seconds := d.Seconds()
	const minute = 60.0
	const hour = 60 * minute

	var out []string
	if seconds >= hour {
		hours := math.Floor(seconds / hour)
		seconds = math.Mod(seconds, hour)
		if colons {
			out = append(out, fmt.Sprintf("%02d", int(hours)))
		} else {
			out = append(out, fmt.Sprintf("%dh", int(hours)))
		}
	}

	switch {
	case seconds >= minute:
		minutes := math.Ceil(seconds / minute)
		if colons {
			out = append(out, fmt.Sprintf("%02d", int(minutes)))
		} else {
			out = append(out, fmt.Sprintf("%dm", int(minutes)))
		}
	case colons:
		out = append(out, "00")
	}

	if colons {
		return strings.Join(out, ":")
	}
	return strings.Join(out, "")
}
