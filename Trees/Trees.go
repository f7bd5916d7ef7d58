package Trees

// View is the read-only face of a tree node, which is all a renderer or any other
// consumer needs: the key of a node and its children in stored order. Walking a View
// never mutates the tree, and it may be repeated any number of times; each walk sees the
// tree as it is at that moment. *Node implements View.
type View[T any] interface {
	//Key of the node.
	Key() T
	//Degree is the number of children.
	Degree() int
	//ChildView returns the i-th child, 0<=i<Degree(). Out of range gives nil.
	ChildView(i int) View[T]
}

// Order names one of the traversals a Tree can produce. Every Order has its own cache in
// the Tree.
type Order uint8

const (
	PreOrderKind Order = iota
	PostOrderKind
	InOrderKind
	BreadthFirstKind
	DepthFirstKind
	numOrders
)

var orderNames = [numOrders]string{"pre-order", "post-order", "in-order", "breadth-first", "depth-first"}

// short names accepted by ParseOrder next to the full ones.
var orderAliases = map[string]Order{
	"pre": PreOrderKind, "post": PostOrderKind, "in": InOrderKind, "bfs": BreadthFirstKind, "dfs": DepthFirstKind,
}

func (o Order) String() string {
	if o < numOrders {
		return orderNames[o]
	}
	return "unknown"
}

// Orders lists every Order in declaration order.
func Orders() []Order {
	return []Order{PreOrderKind, PostOrderKind, InOrderKind, BreadthFirstKind, DepthFirstKind}
}

// ParseOrder accepts either the String form of an Order or its short name (pre, post, in, bfs, dfs).
func ParseOrder(s string) (Order, bool) {
	if o, in := orderAliases[s]; in {
		return o, true
	}
	for i, n := range orderNames {
		if n == s {
			return Order(i), true
		}
	}
	return numOrders, false
}
