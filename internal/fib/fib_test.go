package fib

import (
	"net/netip"
	"testing"

	"firestige.xyz/strix/internal/core"
)

func v4Key(dst string) core.RouteLookupKey {
	return core.RouteLookupKey{
		Family: core.FamilyIPv4,
		DstIP:  netip.MustParseAddr(dst),
	}
}

func TestResolveLongestPrefixWins(t *testing.T) {
	tbl := NewTable()
	routes := []Route{
		{Prefix: netip.MustParsePrefix("10.0.0.0/8"), Outcome: core.OutcomeSuccess, Ifindex: 1},
		{Prefix: netip.MustParsePrefix("10.1.0.0/16"), Outcome: core.OutcomeSuccess, Ifindex: 2},
		{Prefix: netip.MustParsePrefix("10.1.2.0/24"), Outcome: core.OutcomeBlackhole},
	}
	for _, r := range routes {
		if err := tbl.Add(r); err != nil {
			t.Fatalf("Add(%v): %v", r.Prefix, err)
		}
	}
	if tbl.Len() != 3 {
		t.Fatalf("len: %d, want 3", tbl.Len())
	}

	cases := []struct {
		dst     string
		code    core.OutcomeCode
		ifindex int
	}{
		{"10.9.9.9", core.OutcomeSuccess, 1},
		{"10.1.9.9", core.OutcomeSuccess, 2},
		{"10.1.2.3", core.OutcomeBlackhole, 0},
		{"192.168.1.1", core.OutcomeNotForwarded, 0},
	}
	for _, tc := range cases {
		out := tbl.Resolve(v4Key(tc.dst))
		if out.Code != tc.code || out.Ifindex != tc.ifindex {
			t.Errorf("%s: got %v/%d, want %v/%d", tc.dst, out.Code, out.Ifindex, tc.code, tc.ifindex)
		}
	}
}

func TestResolveFamilySplit(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Add(Route{Prefix: netip.MustParsePrefix("2001:db8::/32"), Outcome: core.OutcomeSuccess, Ifindex: 5}); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Add(Route{Prefix: netip.MustParsePrefix("0.0.0.0/0"), Outcome: core.OutcomeProhibited}); err != nil {
		t.Fatal(err)
	}

	out := tbl.Resolve(core.RouteLookupKey{
		Family: core.FamilyIPv6,
		DstIP:  netip.MustParseAddr("2001:db8::42"),
	})
	if out.Code != core.OutcomeSuccess || out.Ifindex != 5 {
		t.Errorf("v6 resolve: got %v/%d", out.Code, out.Ifindex)
	}

	// An IPv6 destination outside every v6 prefix must not fall through to
	// the v4 default route.
	out = tbl.Resolve(core.RouteLookupKey{
		Family: core.FamilyIPv6,
		DstIP:  netip.MustParseAddr("fe80::1"),
	})
	if out.Code != core.OutcomeNotForwarded {
		t.Errorf("v6 miss: got %v, want not_forwarded", out.Code)
	}
}

func TestResolveCarriesNextHop(t *testing.T) {
	tbl := NewTable()
	src := core.MAC{0xAA, 0, 0, 0, 0, 1}
	dst := core.MAC{0xBB, 0, 0, 0, 0, 2}
	if err := tbl.Add(Route{
		Prefix:  netip.MustParsePrefix("172.16.0.0/12"),
		Outcome: core.OutcomeSuccess,
		Ifindex: 3,
		SrcMAC:  src,
		DstMAC:  dst,
	}); err != nil {
		t.Fatal(err)
	}

	out := tbl.Resolve(v4Key("172.16.5.5"))
	if out.SrcMAC != src || out.DstMAC != dst {
		t.Errorf("next-hop MACs not carried: %+v", out)
	}
}

func TestAddRejectsInvalidPrefix(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Add(Route{}); err == nil {
		t.Fatal("expected error for zero prefix")
	}
}

func TestParseOutcome(t *testing.T) {
	tokens := map[string]core.OutcomeCode{
		"success":              core.OutcomeSuccess,
		"blackhole":            core.OutcomeBlackhole,
		"unreachable":          core.OutcomeUnreachable,
		"prohibited":           core.OutcomeProhibited,
		"not_forwarded":        core.OutcomeNotForwarded,
		"forwarding_disabled":  core.OutcomeForwardingDisabled,
		"unsupported_encap":    core.OutcomeUnsupportedEncap,
		"no_neighbor":          core.OutcomeNoNeighbor,
		"fragmentation_needed": core.OutcomeFragmentationNeeded,
	}
	for token, want := range tokens {
		got, err := ParseOutcome(token)
		if err != nil || got != want {
			t.Errorf("%q: got %v err=%v, want %v", token, got, err, want)
		}
	}
	if _, err := ParseOutcome("bogus"); err == nil {
		t.Error("expected error for unknown token")
	}
}
