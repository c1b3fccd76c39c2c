//go:build !vectorcheck

package vector

// constructionChecks reports whether Uninitialized tracks written slots.
const constructionChecks = false

type constructed struct{}

func newConstructed(uint64) constructed { return constructed{} }

func (*constructed) mark(uint64) {}

func (*constructed) firstMissing() (uint64, bool) { return 0, false }
