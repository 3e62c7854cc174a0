package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMock_Transitions(t *testing.T) {
	t.Run("Play before Load fails", func(t *testing.T) {
		m := NewMock()
		if err := m.Play(); err != ErrNoTrack {
			t.Errorf("Play() = %v, want ErrNoTrack", err)
		}
		if !m.Paused() {
			t.Error("stopped mock should report paused")
		}
	})

	t.Run("Load with autoplay plays", func(t *testing.T) {
		m := NewMock()
		_ = m.Load("/01.mp3", true)
		if m.State() != Playing || m.Paused() {
			t.Errorf("state = %v, want Playing", m.State())
		}
	})

	t.Run("Load without autoplay is paused", func(t *testing.T) {
		m := NewMock()
		_ = m.Load("/01.mp3", false)
		if m.State() != Paused {
			t.Errorf("state = %v, want Paused", m.State())
		}
		_ = m.Play()
		if m.State() != Playing {
			t.Errorf("state after Play = %v, want Playing", m.State())
		}
	})

	t.Run("Stop forgets the track", func(t *testing.T) {
		m := NewMock()
		_ = m.Load("/01.mp3", true)
		m.Stop()
		if err := m.Play(); err != ErrNoTrack {
			t.Errorf("Play() after Stop = %v, want ErrNoTrack", err)
		}
		if m.TrackInfo() != nil {
			t.Error("TrackInfo() after Stop should be nil")
		}
	})

	t.Run("finish stops and signals", func(t *testing.T) {
		m := NewMock()
		_ = m.Load("/01.mp3", true)
		m.SimulateFinished()
		if m.State() != Stopped {
			t.Errorf("state = %v, want Stopped", m.State())
		}
		select {
		case <-m.FinishedChan():
		default:
			t.Error("expected finish signal")
		}
	})
}
