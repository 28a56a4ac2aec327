package router

// Route is one navigable location: a kind plus, for parameterized kinds, the
// identifier. Route is comparable, so two routes are equal exactly when both
// fields are.
type Route struct {
	Kind Kind
	ID   string
}

// To returns the parameterless route of kind k.
func To(k Kind) Route { return Route{Kind: k} }

// WithID returns the route of kind k carrying id.
func WithID(k Kind, id string) Route { return Route{Kind: k, ID: id} }

// Valid reports whether r can be navigated to: parameterized kinds need a
// non-empty ID and the rest must have none.
func (r Route) Valid() bool {
	if !r.Kind.known() {
		return false
	}
	if r.Kind.HasID() {
		return r.ID != ""
	}
	return r.ID == ""
}

func (r Route) String() string {
	if r.Kind.HasID() {
		return r.Kind.String() + "(" + r.ID + ")"
	}
	return r.Kind.String()
}
