package ledger

import (
	"strings"

	"golang.org/x/exp/slices"

	"plainledger/journal"
)

// BalanceTree is a hierarchical view of account balances for display.
// Every colon-separated prefix of every leaf account accumulates the
// leaf's balance, so "Assets:Bank:Checking" contributes to "Assets",
// "Assets:Bank", and itself.
type BalanceTree struct {
	// Roots are the top-level accounts in lexicographic order. Each
	// node's subtree precedes the next root (pre-order).
	Roots []*BalanceNode

	// Total is the sum of the original, unconsolidated leaf balances,
	// independent of depth folding and empty-account filtering.
	Total journal.Amount
}

// BalanceNode is a single account in the balance hierarchy.
type BalanceNode struct {
	// Name is the full account path, e.g. "Assets:Bank".
	Name string

	// Depth is the colon-segment count of Name.
	Depth int

	// Balance aggregates this account's own postings and all descendants.
	Balance journal.Amount

	// Children are the direct descendants, sorted by name.
	Children []*BalanceNode
}

// NewBalanceTree builds the display hierarchy from leaf balances.
//
// Accounts deeper than maxDepth segments are folded into their ancestor at
// exactly maxDepth; a negative maxDepth disables folding. Accounts whose
// rolled-up balance is epsilon-zero are dropped unless includeEmpty is set.
func NewBalanceTree(leaves []AccountBalance, maxDepth int, includeEmpty bool) *BalanceTree {
	total := journal.Zero()
	for _, leaf := range leaves {
		total = total.Plus(leaf.Balance)
	}

	// Fold leaves deeper than maxDepth into their ancestor at maxDepth.
	consolidated := make(map[string]journal.Amount)
	for _, leaf := range leaves {
		name := leaf.Name
		if parts := strings.Split(name, ":"); maxDepth >= 0 && len(parts) > maxDepth {
			name = strings.Join(parts[:maxDepth], ":")
		}
		consolidated[name] = consolidated[name].Plus(leaf.Balance)
	}

	// Accumulate every account into itself and all of its prefixes.
	rolled := make(map[string]journal.Amount)
	for name, balance := range consolidated {
		parts := strings.Split(name, ":")
		for i := 1; i <= len(parts); i++ {
			prefix := strings.Join(parts[:i], ":")
			rolled[prefix] = rolled[prefix].Plus(balance)
		}
	}

	names := make([]string, 0, len(rolled))
	for name, balance := range rolled {
		if !includeEmpty && balance.IsZero() {
			continue
		}
		names = append(names, name)
	}
	slices.SortFunc(names, comparePaths)

	tree := &BalanceTree{Total: total}

	// Pre-order construction: each node attaches to the nearest kept
	// ancestor still on the stack, or becomes a root.
	var stack []*BalanceNode
	for _, name := range names {
		node := &BalanceNode{
			Name:    name,
			Depth:   strings.Count(name, ":") + 1,
			Balance: rolled[name],
		}
		for len(stack) > 0 && !isAncestor(stack[len(stack)-1].Name, name) {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			tree.Roots = append(tree.Roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}

	return tree
}

// Flatten returns the tree as rows in pre-order.
func (t *BalanceTree) Flatten() []AccountBalance {
	var rows []AccountBalance
	var walk func(n *BalanceNode)
	walk = func(n *BalanceNode) {
		rows = append(rows, AccountBalance{Name: n.Name, Balance: n.Balance})
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range t.Roots {
		walk(root)
	}
	return rows
}

// comparePaths orders account names segment by segment, with a parent
// sorting before its descendants. This is a pre-order key, not a plain
// string comparison.
func comparePaths(a, b string) int {
	as := strings.Split(a, ":")
	bs := strings.Split(b, ":")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return len(as) - len(bs)
}

func isAncestor(parent, child string) bool {
	return strings.HasPrefix(child, parent+":")
}
