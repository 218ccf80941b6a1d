package core

import "testing"

func TestSnapshotLookupAndEach(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}, {Key: "y", Value: "2"}}},
		{Name: "b", Params: []Parameter{{Key: "z", Value: "3"}}},
	}}

	if p, ok := snap.Lookup("z"); !ok || p.Value != "3" {
		t.Fatalf("Lookup(z) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}

	var seen []string
	snap.Each(func(group string, p Parameter) {
		seen = append(seen, group+"."+p.Key)
	})
	want := []string{"a.x", "a.y", "b.z"}
	if len(seen) != len(want) {
		t.Fatalf("Each visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Each visited %v, want %v", seen, want)
		}
	}
}
