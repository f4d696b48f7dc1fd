package searcher

import (
	"fmt"

	"gametree/game"

	"golang.org/x/exp/rand"
)

// mockNode is a hand-built game tree position. Leaves carry their value for
// Player0; Player1 scores the negation.
type mockNode struct {
	player   game.Player
	value    float64
	children []*mockNode
}

func leaf(value float64) *mockNode {
	return &mockNode{value: value}
}

func ply(player game.Player, children ...*mockNode) *mockNode {
	return &mockNode{player: player, children: children}
}

// mockGame plays a mockNode tree. Actions are child indices. A failing action
// makes Result return ErrIllegalAction.
type mockGame struct {
	root    *mockNode
	failing int
}

func newMockGame(root *mockNode) mockGame {
	return mockGame{root: root, failing: -1}
}

func (g mockGame) InitialState() *mockNode {
	return g.root
}

func (g mockGame) ToMove(state *mockNode) game.Player {
	return state.player
}

func (g mockGame) Actions(state *mockNode) ([]int, error) {
	if g.IsTerminal(state) {
		return nil, fmt.Errorf("mock leaf: %w", game.ErrPrecondition)
	}
	actions := make([]int, len(state.children))
	for i := range actions {
		actions[i] = i
	}
	return actions, nil
}

func (g mockGame) Result(state *mockNode, action int) (*mockNode, error) {
	if action == g.failing || action < 0 || action >= len(state.children) {
		return nil, fmt.Errorf("mock action %d: %w", action, game.ErrIllegalAction)
	}
	return state.children[action], nil
}

func (g mockGame) IsTerminal(state *mockNode) bool {
	return len(state.children) == 0
}

func (g mockGame) Utility(state *mockNode, player game.Player) (float64, error) {
	if !g.IsTerminal(state) {
		return 0, fmt.Errorf("mock inner node: %w", game.ErrPrecondition)
	}
	if player == game.Player0 {
		return state.value, nil
	}
	return -state.value, nil
}

// randomTree builds a tree with alternating movers, between one and
// maxBranching children per inner node and integer leaf values in [-10, 10].
func randomTree(rng *rand.Rand, player game.Player, depth, maxBranching int) *mockNode {
	if depth == 0 || (depth < 3 && rng.Intn(4) == 0) {
		return &mockNode{player: player, value: float64(rng.Intn(21) - 10)}
	}
	node := &mockNode{player: player}
	for i := 0; i < 1+rng.Intn(maxBranching); i++ {
		node.children = append(node.children, randomTree(rng, player.Other(), depth-1, maxBranching))
	}
	return node
}
