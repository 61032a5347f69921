package multiplayer

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Participant is a board taking part in garbage exchange.
type Participant interface {
	// DrainOutbound returns and clears the attacks the board produced.
	DrainOutbound() []int
	// ReceiveGarbage queues incoming lines. It must never block.
	ReceiveGarbage(lines int)
}

// Exchange routes garbage between participants. It is not safe for
// concurrent use; the owning game loop calls Pump once per tick after every
// board has updated, so an attack reaches its victim on the victim's next
// update at the earliest.
type Exchange struct {
	boards  *intmap.Map[PlayerID, Participant]
	victims *intmap.Map[PlayerID, PlayerID]
	order   []PlayerID
}

// NewExchange creates an empty exchange.
func NewExchange() *Exchange {
	return &Exchange{
		boards:  intmap.New[PlayerID, Participant](2),
		victims: intmap.New[PlayerID, PlayerID](2),
	}
}

// NewVersusExchange pairs two boards so that each attacks the other.
func NewVersusExchange(p1, p2 Participant) *Exchange {
	e := NewExchange()
	// Cannot fail: the IDs are distinct and fresh.
	_ = e.Join(Player1, p1)
	_ = e.Join(Player2, p2)
	_ = e.Target(Player1, Player2)
	_ = e.Target(Player2, Player1)
	return e
}

// Join adds a participant. Pump visits participants in join order.
func (e *Exchange) Join(id PlayerID, p Participant) error {
	if e.boards.Has(id) {
		return fmt.Errorf("multiplayer: player %s already joined", id)
	}
	e.boards.Put(id, p)
	e.order = append(e.order, id)
	return nil
}

// Target makes victim the receiver of attacker's garbage.
func (e *Exchange) Target(attacker, victim PlayerID) error {
	if !e.boards.Has(attacker) {
		return fmt.Errorf("multiplayer: unknown attacker %s", attacker)
	}
	if !e.boards.Has(victim) {
		return fmt.Errorf("multiplayer: unknown victim %s", victim)
	}
	if attacker == victim {
		return fmt.Errorf("multiplayer: player %s cannot target itself", attacker)
	}
	e.victims.Put(attacker, victim)
	return nil
}

// VictimOf returns who receives attacker's garbage.
func (e *Exchange) VictimOf(attacker PlayerID) (PlayerID, bool) {
	return e.victims.Get(attacker)
}

// Players returns the participant IDs in join order.
func (e *Exchange) Players() []PlayerID {
	out := make([]PlayerID, len(e.order))
	copy(out, e.order)
	return out
}

// Pump drains every participant's outbound queue into its victim's inbound
// queue. Attacks from a participant without a victim are discarded.
func (e *Exchange) Pump() []GarbageSentEvent {
	var sent []GarbageSentEvent
	for _, id := range e.order {
		from, _ := e.boards.Get(id)
		lines := from.DrainOutbound()
		if len(lines) == 0 {
			continue
		}
		victimID, ok := e.VictimOf(id)
		if !ok {
			continue
		}
		victim, _ := e.boards.Get(victimID)
		for _, n := range lines {
			victim.ReceiveGarbage(n)
			sent = append(sent, GarbageSentEvent{From: id, To: victimID, Lines: n})
		}
	}
	return sent
}
