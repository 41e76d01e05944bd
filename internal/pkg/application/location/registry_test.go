package location

import (
	"testing"
	"time"

	"github.com/trailsense/geo-data-mgmt/pkg/geo"

	"github.com/matryer/is"
)

func TestNotifyReachesEverySubscriber(t *testing.T) {
	is := is.New(t)
	r := NewRegistry()

	var first, second []geo.Point
	r.Subscribe("map", 0, func(p geo.Point) { first = append(first, p) })
	r.Subscribe("tracker", 0, func(p geo.Point) { second = append(second, p) })
	is.Equal(2, r.Count())

	r.Notify(geo.Point{Latitude: 45.0, Longitude: 11.0})

	is.Equal(1, len(first))
	is.Equal(1, len(second))
	is.Equal(45.0, first[0].Latitude)
}

func TestDeliveryIntervalIsPerSubscriber(t *testing.T) {
	is := is.New(t)
	r := NewRegistry()

	clock := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	var slow, fast int
	r.Subscribe("slow", time.Minute, func(p geo.Point) { slow++ })
	r.Subscribe("fast", time.Second, func(p geo.Point) { fast++ })

	r.Notify(geo.Point{})
	clock = clock.Add(10 * time.Second)
	r.Notify(geo.Point{})

	is.Equal(1, slow)
	is.Equal(2, fast)

	clock = clock.Add(time.Minute)
	r.Notify(geo.Point{})

	is.Equal(2, slow)
	is.Equal(3, fast)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	is := is.New(t)
	r := NewRegistry()

	var count int
	r.Subscribe("map", 0, func(p geo.Point) { count++ })

	r.Notify(geo.Point{})
	r.Unsubscribe("map")
	r.Notify(geo.Point{})

	is.Equal(1, count)
	is.Equal(0, r.Count())
}

func TestResubscribeReplacesTheCallback(t *testing.T) {
	is := is.New(t)
	r := NewRegistry()

	var initial, replacement int
	r.Subscribe("map", 0, func(p geo.Point) { initial++ })
	r.Subscribe("map", 0, func(p geo.Point) { replacement++ })

	r.Notify(geo.Point{})

	is.Equal(0, initial)
	is.Equal(1, replacement)
	is.Equal(1, r.Count())
}
