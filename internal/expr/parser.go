package expr

// Parse reads a single prefix-form term (ground expression or pattern) from
// source, returning a fully lowered, arity-checked Term. A grammar-level
// failure is returned as the participle error itself, position included;
// lowering failures wrap ErrMalformed.
func Parse(source string) (*Term, error) {
	raw, err := termParser.ParseString("", source)
	if err != nil {
		return nil, err
	}
	return build(raw)
}
