package mechanics

import (
	"testing"

	"github.com/mgyenik/rasmodius/internal/version"
)

var allVersions = []version.GameVersion{version.V13, version.V14, version.V15, version.V16}

func TestDay29Earthquake(t *testing.T) {
	// Day 29 rolls for event day 30, which is the forced railroad quake.
	for _, seed := range []int32{1, 100, 12345, 999999, -12345} {
		for _, v := range allVersions {
			if e := NightEventFor(seed, 29, v); e != EventEarthquake {
				t.Errorf("seed %d version %v: day 29 event = %v, want earthquake", seed, v, e)
			}
		}
	}
}

func TestFairyNotInWinter(t *testing.T) {
	for seed := int32(1); seed <= 300; seed++ {
		for day := int32(1); day <= 224; day++ {
			for _, v := range []version.GameVersion{version.V15, version.V16} {
				if NightEventFor(seed, day, v) != EventFairy {
					continue
				}
				eventDay := day + 1
				if ((eventDay-1)/28)%4 == 3 {
					t.Fatalf("seed %d day %d version %v: fairy in winter", seed, day, v)
				}
			}
		}
	}
}

func TestCapsuleRequiresYear2(t *testing.T) {
	// Within the first 112 days the capsule event must never fire.
	for seed := int32(1); seed <= 300; seed++ {
		for day := int32(1); day <= 111; day++ {
			for _, v := range allVersions {
				if NightEventFor(seed, day, v) == EventCapsule {
					t.Fatalf("seed %d day %d version %v: capsule in year 1", seed, day, v)
				}
			}
		}
	}
}

func TestWitchGatingV16(t *testing.T) {
	// 1.6 only rolls the witch after event day 20.
	for seed := int32(1); seed <= 500; seed++ {
		for day := int32(1); day <= 18; day++ {
			if NightEventFor(seed, day, version.V16) == EventWitch {
				t.Fatalf("seed %d day %d: witch before day 20 in 1.6", seed, day)
			}
		}
	}
}

func TestNightEventKnownDays(t *testing.T) {
	// Every event in the first two years of seed 12345, cross-checked against
	// the legacy runtime per version.
	tests := []struct {
		name string
		v    version.GameVersion
		want []DatedEvent
	}{
		{"1.4", version.V14, []DatedEvent{
			{12, EventMeteor}, {29, EventEarthquake}, {44, EventWitch},
			{60, EventFairy}, {115, EventMeteor}, {119, EventWitch},
			{127, EventFairy}, {190, EventOwl}, {194, EventFairy},
			{211, EventWitch}, {218, EventMeteor}, {221, EventOwl},
		}},
		{"1.5", version.V15, []DatedEvent{
			{12, EventMeteor}, {29, EventEarthquake}, {44, EventWitch},
			{60, EventFairy}, {115, EventMeteor}, {119, EventWitch},
			{127, EventFairy}, {194, EventFairy},
			{211, EventWitch}, {218, EventMeteor}, {221, EventOwl},
		}},
		{"1.6", version.V16, []DatedEvent{
			{11, EventMeteor}, {16, EventMeteor}, {29, EventEarthquake},
			{64, EventWitch}, {81, EventOwl}, {96, EventMeteor},
			{123, EventFairy}, {133, EventCapsule}, {170, EventMeteor},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindNightEvents(12345, 1, 224, tt.v)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("event %d = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}

func TestVersionsDiverge(t *testing.T) {
	// Hash seeding plus priming draws make 1.6 diverge from 1.5 somewhere.
	for seed := int32(1); seed < 10000; seed++ {
		for day := int32(50); day < 100; day++ {
			if NightEventFor(seed, day, version.V15) != NightEventFor(seed, day, version.V16) {
				return
			}
		}
	}
	t.Error("1.5 and 1.6 never diverged")
}

func TestParseNightEvent(t *testing.T) {
	tests := []struct {
		in     string
		want   NightEvent
		wantOK bool
	}{
		{"fairy", EventFairy, true},
		{"witch", EventWitch, true},
		{"ufo", EventCapsule, true},
		{"capsule", EventCapsule, true},
		{"owl", EventOwl, true},
		{"earthquake", EventEarthquake, true},
		{"any", EventNone, false},
		{"bogus", EventNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseNightEvent(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseNightEvent(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFindNightEvents(t *testing.T) {
	events := FindNightEvents(12345, 1, 112, version.V16)
	for _, de := range events {
		if de.Event == EventNone {
			t.Errorf("day %d: none event reported as a hit", de.Day)
		}
		if got := NightEventFor(12345, de.Day, version.V16); got != de.Event {
			t.Errorf("day %d: listed %v but resolves to %v", de.Day, de.Event, got)
		}
	}
}
