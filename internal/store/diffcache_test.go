package store_test

import (
	"testing"

	"github.com/mobanhawi/chronoview/internal/store"
)

type coord struct{ x, y int }

func sampleChanges() []store.Change[coord, int, rune] {
	return []store.Change[coord, int, rune]{
		{Coord: coord{0, 0}, Time: 0, Value: 'a'},
		{Coord: coord{0, 0}, Time: 5, Value: 'b'},
		{Coord: coord{1, 0}, Time: 0, Value: 'a'},
		{Coord: coord{1, 0}, Time: 3, Value: 'b'},
		{Coord: coord{0, 1}, Time: 0, Value: 'a'},
		{Coord: coord{0, 1}, Time: 2, Value: 'b'},
		{Coord: coord{1, 1}, Time: 0, Value: 'a'},
		{Coord: coord{1, 1}, Time: 1, Value: 'b'},
	}
}

func TestDiffCache_Push_NewAndExistingCoordinate(t *testing.T) {
	cache := store.NewDiffCache[coord, int, rune]('.')
	if err := cache.Push(coord{0, 0}, 0, 'a'); err != nil {
		t.Fatalf("Push new coord: %v", err)
	}
	if err := cache.Push(coord{0, 0}, 5, 'b'); err != nil {
		t.Fatalf("Push existing coord: %v", err)
	}
}

func TestDiffCache_Append_BulkLoadsAllChanges(t *testing.T) {
	cache := store.NewDiffCache[coord, int, rune]('.')
	if err := cache.Append(sampleChanges()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	v, ok := cache.Search(coord{1, 1}, 1)
	if !ok || v != 'b' {
		t.Fatalf("Search after Append = (%q, %v), want ('b', true)", v, ok)
	}
}

func TestDiffCache_Search(t *testing.T) {
	cache := store.NewDiffCache[coord, int, rune]('.')
	if err := cache.Append(sampleChanges()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	testCases := []struct {
		name   string
		coord  coord
		k      int
		wantV  rune
		wantOK bool
	}{
		{"GivenTimeBeforeLastChange_WhenSearched_ThenReturnsEarlierValue", coord{0, 0}, 1, 'a', true},
		{"GivenTimeAtLastChange_WhenSearched_ThenReturnsLatestValue", coord{0, 0}, 5, 'b', true},
		{"GivenUnknownCoordinate_WhenSearched_ThenAbsent", coord{9, 9}, 5, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := cache.Search(tc.coord, tc.k)
			if ok != tc.wantOK {
				t.Fatalf("Search(%v, %d) ok = %v, want %v", tc.coord, tc.k, ok, tc.wantOK)
			}
			if ok && v != tc.wantV {
				t.Fatalf("Search(%v, %d) = %q, want %q", tc.coord, tc.k, v, tc.wantV)
			}
		})
	}
}

func TestDiffCache_View_PreservesOrderAndSubstitutesDefault(t *testing.T) {
	cache := store.NewDiffCache[coord, int, rune]('.')
	if err := cache.Append(sampleChanges()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	coords := []coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	got := cache.View(coords, 4)
	want := []rune{'a', 'b', 'b', 'b'}
	if len(got) != len(want) {
		t.Fatalf("View returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("View[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiffCache_View_UnknownCoordinateUsesDefault(t *testing.T) {
	cache := store.NewDiffCache[coord, int, rune]('.')
	got := cache.View([]coord{{0, 0}, {-1, -1}}, 0)
	want := []rune{'.', '.'}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("View[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiffCache_Push_DuplicateTimeSurfacesError(t *testing.T) {
	cache := store.NewDiffCache[coord, int, rune]('.')
	if err := cache.Push(coord{0, 0}, 0, 'a'); err != nil {
		t.Fatalf("first Push: %v", err)
	}
	if err := cache.Push(coord{0, 0}, 0, 'z'); err == nil {
		t.Fatal("duplicate (coord, time) push: expected error, got nil")
	}
}

func TestDiffCache_LastChange(t *testing.T) {
	cache := store.NewDiffCache[coord, int, rune]('.')
	if err := cache.Append(sampleChanges()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	tm, ok := cache.LastChange(coord{0, 0}, 100)
	if !ok || tm != 5 {
		t.Fatalf("LastChange = (%d, %v), want (5, true)", tm, ok)
	}
	if _, ok := cache.LastChange(coord{50, 50}, 100); ok {
		t.Fatal("LastChange for unknown coordinate: expected absent")
	}
}
