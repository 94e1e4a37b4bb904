// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog

import (
	"encoding/xml"
	"strings"
)

// SLDNamespace is the XML namespace of Styled Layer Descriptor 1.0
// documents, and of the root element of 1.1 documents.
const SLDNamespace = "http://www.opengis.net/sld"

// SLDInfo holds the parts of a Styled Layer Descriptor the catalog
// cares about.  Child elements are matched by local name so that both
// SLD 1.0 (sld:Name) and SLD 1.1 (se:Name) documents decode.
type SLDInfo struct {
	XMLName     xml.Name         `xml:"http://www.opengis.net/sld StyledLayerDescriptor"`
	NamedLayers []NamedLayerInfo `xml:"NamedLayer"`
}

// NamedLayerInfo is a single NamedLayer element.
type NamedLayerInfo struct {
	Name       string          `xml:"Name"`
	UserStyles []UserStyleInfo `xml:"UserStyle"`
}

// UserStyleInfo is a single UserStyle element.
type UserStyleInfo struct {
	Name     string `xml:"Name"`
	Title    string `xml:"Title"`
	Abstract string `xml:"Abstract"`
}

// ParseSLD decodes a Styled Layer Descriptor.  Returns ErrBadSLD if
// the document is not well-formed XML or its root element is not an
// SLD StyledLayerDescriptor.  Missing inner structure is not an error;
// the corresponding fields are simply empty.
func ParseSLD(doc string) (SLDInfo, error) {
	var info SLDInfo
	if strings.TrimSpace(doc) == "" {
		return info, ErrBadSLD{Reason: "empty document"}
	}
	decoder := xml.NewDecoder(strings.NewReader(doc))
	decoder.Strict = true
	if err := decoder.Decode(&info); err != nil {
		return SLDInfo{}, ErrBadSLD{Reason: err.Error()}
	}
	for i := range info.NamedLayers {
		nl := &info.NamedLayers[i]
		nl.Name = strings.TrimSpace(nl.Name)
		for j := range nl.UserStyles {
			us := &nl.UserStyles[j]
			us.Name = strings.TrimSpace(us.Name)
			us.Title = strings.TrimSpace(us.Title)
			us.Abstract = strings.TrimSpace(us.Abstract)
		}
	}
	return info, nil
}

// StyleName returns the name a style published from this document
// would get: the first named layer's name, or failing that the first
// user style's name.
func (info SLDInfo) StyleName() string {
	for _, nl := range info.NamedLayers {
		if nl.Name != "" {
			return nl.Name
		}
	}
	if us := info.firstUserStyle(); us != nil {
		return us.Name
	}
	return ""
}

// Title returns the title of the first user style, if any.
func (info SLDInfo) Title() string {
	if us := info.firstUserStyle(); us != nil {
		return us.Title
	}
	return ""
}

func (info SLDInfo) firstUserStyle() *UserStyleInfo {
	for _, nl := range info.NamedLayers {
		if len(nl.UserStyles) > 0 {
			return &nl.UserStyles[0]
		}
	}
	return nil
}
