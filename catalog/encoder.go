// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog

// LayerEncoder is a partial update to a layer.  Fields that are nil
// are left unchanged by Publisher.ConfigureLayer.  The setter methods
// return the encoder so calls can be chained:
//
//     enc := new(catalog.LayerEncoder).SetDefaultStyle("roads").SetEnabled(true)
//     err := c.ConfigureLayer("topp", "roads", *enc)
type LayerEncoder struct {
	DefaultStyle *string

	// Styles, if non-nil, replaces the alternate style list.  An
	// empty non-nil slice clears it.
	Styles []string

	Enabled   *bool
	Queryable *bool
	Title     *string
	Abstract  *string
}

// SetDefaultStyle sets the layer's default style.
func (e *LayerEncoder) SetDefaultStyle(style string) *LayerEncoder {
	e.DefaultStyle = &style
	return e
}

// AddStyle appends an alternate style.
func (e *LayerEncoder) AddStyle(style string) *LayerEncoder {
	e.Styles = append(e.Styles, style)
	return e
}

// SetEnabled enables or disables the layer.
func (e *LayerEncoder) SetEnabled(enabled bool) *LayerEncoder {
	e.Enabled = &enabled
	return e
}

// SetQueryable controls whether the layer answers feature info
// requests.
func (e *LayerEncoder) SetQueryable(queryable bool) *LayerEncoder {
	e.Queryable = &queryable
	return e
}

// SetTitle sets the human-readable title.
func (e *LayerEncoder) SetTitle(title string) *LayerEncoder {
	e.Title = &title
	return e
}

// SetAbstract sets the layer description.
func (e *LayerEncoder) SetAbstract(abstract string) *LayerEncoder {
	e.Abstract = &abstract
	return e
}

// IsEmpty determines whether the encoder would change nothing.
func (e LayerEncoder) IsEmpty() bool {
	return e.DefaultStyle == nil && e.Styles == nil &&
		e.Enabled == nil && e.Queryable == nil &&
		e.Title == nil && e.Abstract == nil
}

// Apply copies the non-nil fields of the encoder into a layer.  It
// does not validate style references; see CheckEncoder.
func (e LayerEncoder) Apply(layer *Layer) {
	if e.DefaultStyle != nil {
		layer.DefaultStyle = *e.DefaultStyle
	}
	if e.Styles != nil {
		layer.Styles = append([]string{}, e.Styles...)
	}
	if e.Enabled != nil {
		layer.Enabled = *e.Enabled
	}
	if e.Queryable != nil {
		layer.Queryable = *e.Queryable
	}
	if e.Title != nil {
		layer.Title = *e.Title
	}
	if e.Abstract != nil {
		layer.Abstract = *e.Abstract
	}
}
