package validator

// Builder accumulates rules for a Validator.
//
//	v := validator.NewBuilder[Driver]().
//	    WithRule(HasDrivingLicence{}).
//	    WithRule(HasAge{RequiredAge: 18}).
//	    Build()
type Builder[T any] struct {
	rules []Rule[T]
	opts  []Option
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithRule appends a rule. Nil rules are ignored.
func (b *Builder[T]) WithRule(r Rule[T]) *Builder[T] {
	if r != nil {
		b.rules = append(b.rules, r)
	}
	return b
}

// WithRules appends several rules in order.
func (b *Builder[T]) WithRules(rules ...Rule[T]) *Builder[T] {
	for _, r := range rules {
		b.WithRule(r)
	}
	return b
}

// WithOptions records options applied on Build.
func (b *Builder[T]) WithOptions(opts ...Option) *Builder[T] {
	b.opts = append(b.opts, opts...)
	return b
}

// Build snapshots the accumulated rules into a new Validator.
// Rules added to the builder afterwards do not affect it.
func (b *Builder[T]) Build() *Validator[T] {
	return New(b.rules, b.opts...)
}
