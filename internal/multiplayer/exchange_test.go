package multiplayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBoard struct {
	out []int
	in  []int
}

func (f *fakeBoard) DrainOutbound() []int {
	out := f.out
	f.out = nil
	return out
}

func (f *fakeBoard) ReceiveGarbage(n int) {
	f.in = append(f.in, n)
}

func TestVersusExchangeRoutesBothWays(t *testing.T) {
	a, b := &fakeBoard{out: []int{2, 1}}, &fakeBoard{out: []int{4}}
	e := NewVersusExchange(a, b)

	sent := e.Pump()

	assert.Equal(t, []int{4}, a.in)
	assert.Equal(t, []int{2, 1}, b.in)
	assert.Empty(t, a.out)
	assert.Empty(t, b.out)
	assert.Equal(t, []GarbageSentEvent{
		{From: Player1, To: Player2, Lines: 2},
		{From: Player1, To: Player2, Lines: 1},
		{From: Player2, To: Player1, Lines: 4},
	}, sent)
}

func TestPumpWithoutVictimDiscards(t *testing.T) {
	solo := &fakeBoard{out: []int{3}}
	e := NewExchange()
	require.NoError(t, e.Join(Player1, solo))

	assert.Empty(t, e.Pump())
	assert.Empty(t, solo.out, "outbound must still be drained")
	assert.Empty(t, solo.in)
}

func TestPumpIsIdempotentWhenQuiet(t *testing.T) {
	a, b := &fakeBoard{}, &fakeBoard{}
	e := NewVersusExchange(a, b)
	assert.Empty(t, e.Pump())
	assert.Empty(t, e.Pump())
	assert.Empty(t, a.in)
	assert.Empty(t, b.in)
}

func TestJoinAndTargetErrors(t *testing.T) {
	e := NewExchange()
	require.NoError(t, e.Join(Player1, &fakeBoard{}))

	assert.Error(t, e.Join(Player1, &fakeBoard{}))
	assert.Error(t, e.Target(Player1, Player2))
	assert.Error(t, e.Target(Player2, Player1))
	assert.Error(t, e.Target(Player1, Player1))

	require.NoError(t, e.Join(Player2, &fakeBoard{}))
	require.NoError(t, e.Target(Player1, Player2))

	victim, ok := e.VictimOf(Player1)
	assert.True(t, ok)
	assert.Equal(t, Player2, victim)

	_, ok = e.VictimOf(Player2)
	assert.False(t, ok)
	assert.Equal(t, []PlayerID{Player1, Player2}, e.Players())
}

func TestMatchResultData(t *testing.T) {
	r := MatchResult{
		MatchID: "m-1",
		GameID:  "versus",
		Reason:  MatchEndReasonTopOut,
		Winner:  Player2,
		Players: []PlayerResult{
			{Player: Player1, Lines: 10, Attack: 4},
			{Player: Player2, Lines: 22, Attack: 13},
		},
		Duration: 95*time.Second + 400*time.Millisecond,
	}

	d := r.Data()
	assert.Equal(t, MatchResultData{
		MatchID:      "m-1",
		GameID:       "versus",
		Winner:       "P2",
		Lines1:       10,
		Lines2:       22,
		Attack1:      4,
		Attack2:      13,
		EndReason:    "Topped out",
		DurationSecs: 95,
	}, d)

	r.Winner = 0
	r.Reason = MatchEndReasonDraw
	assert.Empty(t, r.Data().Winner)
}

func TestNewMatchIDsAreUnique(t *testing.T) {
	seen := make(map[MatchID]bool)
	for range 50 {
		id := NewMatchID()
		require.Len(t, string(id), 36)
		require.False(t, seen[id])
		seen[id] = true
	}

	m := NewMatch("versus", MatchModeVersus, time.Unix(0, 0))
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Versus", m.Mode.String())
}
