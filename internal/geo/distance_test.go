package geo

import "testing"

var (
	paris  = Coords{Lat: 48.85, Lng: 2.35}
	berlin = Coords{Lat: 52.52, Lng: 13.40}
)

func TestDistanceParisBerlin(t *testing.T) {
	got := DistanceKm(paris, berlin)
	if got < 873 || got > 883 {
		t.Errorf("Paris-Berlin distance = %d km, want 878 +/- 5", got)
	}
}

func TestDistanceZero(t *testing.T) {
	if got := DistanceKm(paris, paris); got != 0 {
		t.Errorf("distance to self = %d, want 0", got)
	}
}

func TestBearingParisBerlin(t *testing.T) {
	deg := Bearing(paris, berlin)
	if dir := BucketBearing(deg); dir != NorthEast {
		t.Errorf("Paris->Berlin bearing %v bucketed to %v, want NE", deg, dir)
	}
}

func TestBucketBearing(t *testing.T) {
	cases := []struct {
		deg  float64
		want Compass
	}{
		{0, North},
		{22.4, North},
		{22.5, NorthEast},
		{45, NorthEast},
		{90, East},
		{135, SouthEast},
		{180, South},
		{225, SouthWest},
		{270, West},
		{315, NorthWest},
		{337.4, NorthWest},
		{337.5, North},
		{359.9, North},
	}

	for _, tc := range cases {
		if got := BucketBearing(tc.deg); got != tc.want {
			t.Errorf("BucketBearing(%v) = %v, want %v", tc.deg, got, tc.want)
		}
	}
}

func TestCompassStringsAndArrows(t *testing.T) {
	if NorthEast.String() != "NE" {
		t.Errorf("NE string: got %q", NorthEast.String())
	}
	if North.Arrow() == "" || SouthWest.Arrow() == "" {
		t.Error("expected non-empty arrows")
	}
}
