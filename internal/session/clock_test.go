package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateClock_EmitsCurrentDateOnFirstTick(t *testing.T) {
	clock := NewDateClock()
	clock.tick()

	select {
	case date := <-clock.Dates():
		assert.Equal(t, time.Now().Format(DateLayout), date)
	default:
		t.Fatal("expected a date after the first tick")
	}
}

func TestDateClock_DoesNotReEmitUnchangedDate(t *testing.T) {
	clock := NewDateClock()
	clock.tick()

	select {
	case <-clock.Dates():
	default:
		t.Fatal("expected a date after the first tick")
	}

	// Same calendar date: nothing new to say
	clock.tick()
	clock.tick()

	select {
	case date := <-clock.Dates():
		t.Fatalf("unexpected re-emission of %q", date)
	default:
	}
}

func TestDateClock_ConflatesToLatestDate(t *testing.T) {
	clock := NewDateClock()

	// Nobody reading: a forced date change must replace the pending value
	clock.last = ""
	clock.tick()
	clock.last = "1999-12-31"
	clock.tick()

	select {
	case date := <-clock.Dates():
		require.Equal(t, time.Now().Format(DateLayout), date)
	default:
		t.Fatal("expected a pending date")
	}
}
