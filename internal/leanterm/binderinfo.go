package leanterm

// BinderInfo is the external schema's unit-variant BinderInfo enum,
// serialized as a bare camelCase string.
type BinderInfo string

const (
	Default        BinderInfo = "default"
	Implicit       BinderInfo = "implicit"
	StrictImplicit BinderInfo = "strictImplicit"
	InstImplicit   BinderInfo = "instImplicit"
)
