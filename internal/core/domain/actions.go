package domain

// Action is a state store notification. The concrete types below are the
// only values accepted by a state store's Dispatch.
type Action interface {
	isAction()
}

// QueryRun records that a query executed, regardless of whether its
// result was written.
type QueryRun struct {
	Path          string
	ComponentPath string
	IsPage        bool
}

// PendingPageDataWrite marks a page whose staged result still needs the
// final page-data pass before it is promotable to public output.
type PendingPageDataWrite struct {
	Path string
}

// SetPageData publishes the current result hash for a page, enabling
// downstream incremental-rebuild logic to react to changes without
// re-deriving them.
type SetPageData struct {
	ID         string
	ResultHash string
}

func (QueryRun) isAction() {}

func (PendingPageDataWrite) isAction() {}

func (SetPageData) isAction() {}
