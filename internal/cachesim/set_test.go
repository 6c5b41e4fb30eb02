package cachesim

import "testing"

func TestSetAllocateFillsLowestInvalidWayFirst(t *testing.T) {
	s := NewSet(4)
	for tag := uint64(0); tag < 4; tag++ {
		victim, way := s.Allocate(tag, Shared)
		if victim != nil {
			t.Fatalf("tag %d: unexpected victim %+v", tag, victim)
		}
		if way != int(tag) {
			t.Errorf("tag %d: way = %d, want %d", tag, way, tag)
		}
	}
}

func TestSetSearchUpdatesRecencyOnlyWhenAsked(t *testing.T) {
	s := NewSet(2)
	s.Allocate(1, Shared)
	s.Allocate(2, Shared)
	before := s.PLRUBits()

	if _, ok := s.Search(1, false); !ok {
		t.Fatal("expected hit")
	}
	if s.PLRUBits() != before {
		t.Errorf("PLRUBits changed on non-recency search: got %b, want %b", s.PLRUBits(), before)
	}

	s.Search(1, true)
	if s.PLRUBits() == before {
		t.Error("PLRUBits did not change on recency-updating search")
	}
}

func TestSetTagUniquenessNoDuplicateValidTags(t *testing.T) {
	s := NewSet(4)
	s.Allocate(7, Shared)
	if _, ok := s.Search(7, false); !ok {
		t.Fatal("expected hit on just-allocated tag")
	}
	// Allocate normally follows a miss, but a second Allocate for a tag
	// already present overwrites that way in place instead of filling a
	// second way with the same tag.
	firstWay, _ := s.Search(7, false)
	if victim, way := s.Allocate(7, Exclusive); victim != nil || way != firstWay {
		t.Errorf("re-Allocate(7) = (%+v, %d), want (nil, %d)", victim, way, firstWay)
	}
	holding7 := 0
	for w := 0; w < s.NumWays(); w++ {
		if line, _ := s.Way(w); line.IsValid() && line.Tag() == 7 {
			holding7++
		}
	}
	if holding7 != 1 {
		t.Errorf("valid ways holding tag 7 = %d, want 1", holding7)
	}
	if way, ok := s.Search(8, false); ok {
		t.Errorf("unexpected hit for unallocated tag 8 at way %d", way)
	}
}

func TestSetPLRUVictimDeterminism(t *testing.T) {
	s := NewSet(16)
	for tag := uint64(0); tag < 16; tag++ {
		if victim, _ := s.Allocate(tag, Shared); victim != nil {
			t.Fatalf("tag %d: unexpected eviction while filling empty set", tag)
		}
	}

	if _, ok := s.Search(8, true); !ok {
		t.Fatal("expected hit for tag 8")
	}
	if _, ok := s.Search(2, true); !ok {
		t.Fatal("expected hit for tag 2")
	}

	victim, way := s.Allocate(0xAAAA, Exclusive)
	if victim == nil {
		t.Fatal("expected a victim from a full set")
	}
	if way != 12 {
		t.Errorf("victim way = %d, want 12", way)
	}
}

func TestSetPLRUBitWidth(t *testing.T) {
	s := NewSet(16)
	for tag := uint64(0); tag < 20; tag++ {
		s.Allocate(tag, Shared)
	}
	if s.PLRUBits() >= 1<<15 {
		t.Errorf("PLRUBits = %b uses more than 15 bits", s.PLRUBits())
	}
}
