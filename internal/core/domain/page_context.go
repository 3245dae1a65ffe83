package domain

// PageContext carries the route-specific data attached to a page query.
// The typed fields are build bookkeeping; user-supplied values live in
// Context and Extra.
type PageContext struct {
	// Path is the routable URL path of the page.
	Path string
	// InternalComponentName is the generated component symbol.
	InternalComponentName string
	// Component is the reference to the compiled component.
	Component string
	// ComponentChunkName is the bundler chunk the component lands in.
	ComponentChunkName string
	// ComponentPath is the source path of the owning component.
	ComponentPath string
	// UpdatedAt is the last-updated timestamp in unix milliseconds.
	UpdatedAt int64
	// PluginCreator is the back-reference to the creating plugin.
	PluginCreator string
	// PluginCreatorID is the creating plugin's identifier.
	PluginCreatorID string
	// Context holds the user-supplied query context nested under the page.
	Context map[string]any
	// CreatedByStatefulCreatePages marks pages from stateful creation.
	CreatedByStatefulCreatePages bool
	// Extra holds any remaining page fields that are not build bookkeeping.
	Extra map[string]any
}

// bookkeepingFields are the build-internal keys stripped from a page's
// public context before hashing and persistence.
var bookkeepingFields = [...]string{
	"path",
	"internalComponentName",
	"component",
	"componentChunkName",
	"componentPath",
	"updatedAt",
	"pluginCreator",
	"pluginCreatorId",
	"context",
	"isCreatedByStatefulCreatePages",
}

// ExecutionVars flattens the page context into the variable map handed to
// the execution engine. Values from the nested user context win over page
// fields so queries can reference their context directly.
func (p *PageContext) ExecutionVars() map[string]any {
	vars := make(map[string]any, len(p.Extra)+len(p.Context)+len(bookkeepingFields))
	vars["path"] = p.Path
	vars["internalComponentName"] = p.InternalComponentName
	vars["component"] = p.Component
	vars["componentChunkName"] = p.ComponentChunkName
	vars["componentPath"] = p.ComponentPath
	vars["updatedAt"] = p.UpdatedAt
	vars["pluginCreator"] = p.PluginCreator
	vars["pluginCreatorId"] = p.PluginCreatorID
	vars["isCreatedByStatefulCreatePages"] = p.CreatedByStatefulCreatePages
	if p.Context != nil {
		vars["context"] = p.Context
	}
	for k, v := range p.Extra {
		vars[k] = v
	}
	for k, v := range p.Context {
		vars[k] = v
	}
	return vars
}

// Public returns the externally consumable copy of the page context: a
// new map with all build bookkeeping stripped. The receiver is not mutated.
func (p *PageContext) Public() map[string]any {
	return SanitizeContext(p.ExecutionVars())
}

// SanitizeContext returns a copy of vars with build bookkeeping removed.
// Non-listed fields survive unmodified; the input map is never mutated.
func SanitizeContext(vars map[string]any) map[string]any {
	public := make(map[string]any, len(vars))
	for k, v := range vars {
		public[k] = v
	}
	for _, field := range bookkeepingFields {
		delete(public, field)
	}
	return public
}
