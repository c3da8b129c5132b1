package pd_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/arrowpoly/pd"
)

func u(a, b int) pd.Arc { return pd.Arc{Ends: [2]int{a, b}} }
func o(a, b int) pd.Arc { return pd.Arc{Oriented: true, Ends: [2]int{a, b}} }

// TestReduce_MergeRules checks each merge rule on a two-arc state.
func TestReduce_MergeRules(t *testing.T) {
	cases := []struct {
		name string
		in   []pd.Arc
		want []pd.Arc
	}{
		{"UnorientedHeadToTail", []pd.Arc{u(0, 1), u(1, 2)}, []pd.Arc{u(0, 2)}},
		{"UnorientedHeadToHead", []pd.Arc{u(0, 1), u(2, 1)}, []pd.Arc{u(0, 2)}},
		{"UnorientedTailToTail", []pd.Arc{u(1, 0), u(1, 2)}, []pd.Arc{u(2, 0)}},
		{"OrientedCuspsCancel", []pd.Arc{o(0, 1), o(1, 2)}, []pd.Arc{u(0, 2)}},
		{"OrientedHeadToHeadStays", []pd.Arc{o(0, 1), o(2, 1)}, []pd.Arc{o(0, 1), o(2, 1)}},
		{"OrientedTailToTailStays", []pd.Arc{o(0, 1), o(0, 2)}, []pd.Arc{o(0, 1), o(0, 2)}},
		{"OrientedHeadMeetsFirstEnd", []pd.Arc{o(0, 1), u(1, 2)}, []pd.Arc{o(0, 2)}},
		{"OrientedHeadMeetsSecondEnd", []pd.Arc{o(0, 1), u(2, 1)}, []pd.Arc{o(0, 2)}},
		{"OrientedTailMeetsFirstEnd", []pd.Arc{o(0, 1), u(0, 2)}, []pd.Arc{o(2, 1)}},
		{"OrientedTailMeetsSecondEnd", []pd.Arc{o(0, 1), u(2, 0)}, []pd.Arc{o(2, 1)}},
		{"UnorientedBeforeOriented", []pd.Arc{u(1, 2), o(0, 1)}, []pd.Arc{o(0, 2)}},
		{"ClosesLoop", []pd.Arc{o(0, 1), o(1, 0)}, []pd.Arc{u(0, 0)}},
		{"Disjoint", []pd.Arc{u(0, 0), u(1, 1)}, []pd.Arc{u(0, 0), u(1, 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := pd.State[int]{Weight: 1, Arcs: append([]pd.Arc(nil), tc.in...)}
			s.Reduce()
			if diff := cmp.Diff(tc.want, s.Arcs); diff != "" {
				t.Errorf("Reduce(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
			assert.True(t, s.Reduced())
		})
	}
}

// TestReduce_ChainToSingleLoop folds a four-arc cycle of unoriented arcs.
func TestReduce_ChainToSingleLoop(t *testing.T) {
	s := pd.State[int]{Arcs: []pd.Arc{u(0, 3), u(2, 1), u(1, 0), u(3, 2)}}
	assert.False(t, s.Reduced())
	s.Reduce()
	assert.Equal(t, []pd.Arc{u(2, 2)}, s.Arcs)
}

// TestReduce_Idempotent reduces already reduced states a second time.
func TestReduce_Idempotent(t *testing.T) {
	for _, crossings := range [][]pd.Crossing{rightTrefoil(), virtualTrefoil(), opposingKinks()} {
		d := mustDiagram(t, crossings)
		for i, s := range d.States() {
			assert.True(t, s.Reduced(), "state %d not reduced", i)
			again := s.Clone()
			again.Reduce()
			if diff := cmp.Diff(s.Arcs, again.Arcs); diff != "" {
				t.Errorf("state %d changed on second Reduce (-first +second):\n%s", i, diff)
			}
		}
	}
}

func TestLoops(t *testing.T) {
	cases := []struct {
		name string
		arcs []pd.Arc
		want pd.Profile
	}{
		{"NoArcs", nil, pd.Profile{1}},
		{"SelfLoops", []pd.Arc{u(2, 2), o(3, 3)}, pd.Profile{2}},
		{"TwoArrows", []pd.Arc{o(3, 1), o(3, 1)}, pd.Profile{1, 1}},
		{"ThreeArrowsFloor", []pd.Arc{o(0, 1), o(2, 1), o(2, 0)}, pd.Profile{1, 1}},
		{"FourArrows", []pd.Arc{o(0, 1), o(2, 1), o(2, 3), o(0, 3)}, pd.Profile{1, 0, 1}},
		{"Mixed", []pd.Arc{u(5, 5), o(3, 1), o(3, 1), o(6, 7), o(7, 6)}, pd.Profile{3, 2}},
		{"InterleavedLoops", []pd.Arc{o(0, 1), o(4, 5), o(2, 1), o(5, 4), u(2, 3), o(0, 3)}, pd.Profile{2, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := pd.State[int]{Arcs: append([]pd.Arc(nil), tc.arcs...)}
			assert.Equal(t, tc.want, s.Loops())
			assert.Equal(t, len(tc.arcs), len(s.Arcs), "Loops must not consume the state's arcs")
		})
	}
}

func TestProfile_Accessors(t *testing.T) {
	p := pd.Profile{3, 0, 2}
	assert.Equal(t, 3, p.Loops())
	assert.Equal(t, 0, p.Level(1))
	assert.Equal(t, 2, p.Level(2))
	assert.Equal(t, 0, p.Level(3))
	assert.Equal(t, 0, p.Level(0))
	assert.Equal(t, 2, p.MaxLevel())

	var empty pd.Profile
	assert.Equal(t, 0, empty.Loops())
	assert.Equal(t, 0, empty.MaxLevel())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "[ true | 0, 3 ]", o(0, 3).String())
	assert.Equal(t, "[ false | 2, 1 ]", u(2, 1).String())
	c := pd.Crossing{Handedness: pd.Negative, Labels: [4]int{1, 3, 0, 2}}
	assert.Equal(t, "[ - | 1, 3, 0, 2 ]", c.String())
	s := pd.State[int]{Weight: 7, Arcs: []pd.Arc{u(0, 0)}}
	assert.Equal(t, "7, < [ false | 0, 0 ] >", s.String())
}
