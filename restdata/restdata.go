// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Generally JSON encodings of
// these are passed across the wire as the
// application/vnd.diffeo.geoserver.v1+json MIME type.
//
// In spite of the "v1" label this representation is not considered
// fully stable yet.
//
// API Usage
//
// HTTP GET the root document at its specified URL.  This will return
// a JSON serialization of the RootData object.  That serialization
// has links to other resources; follow these links, possibly filling
// in template values, to get to other resources.
//
// Many of the URL fields are actually RFC 6570 URI templates.  For
// instance, if the system is rooted at /, a JSON serialization of
// RootData will include
//
//     {
//         "styles_url": "/style",
//         "style_url": "/style/{style}"
//     }
//
// While the URL structure is predictable and formulaic, it is not
// actually part of the API contract.  The only specific guarantee is
// that retrieving the root resource will return a serialization of
// RootData.
//
// Encoding Considerations
//
// A name that appears in a URL string must be made of ASCII
// characters that can be represented unescaped.  Other names are
// escaped by encoding their byte representations using the base64
// URL-safe encoding with no padding, and prepending a hyphen to the
// name.  Names that would be otherwise safe and begin with hyphens
// are also encoded.
//
// The URL path
//
//     /workspace/topp/layer/-LQ
//
// refers to the layer named "-" in the workspace "topp".
//
// Style bodies are Styled Layer Descriptor XML documents.  They travel
// either inside JSON as a string, or on their own with the
// application/vnd.ogc.sld+xml media type.  Shapefile archives travel
// inside JSON as base64-encoded strings.
//
// Timestamps, when they appear, are represented in JSON as RFC 3339
// strings, "2012-03-04T05:06:07.890Z".
//
// HTTP Considerations
//
// Each URL reference notes the applicable HTTP verbs.  Any resource
// that supports GET also supports HEAD.
//
// When a LayerUpdate is PUT, any non-null field is updated.  Fields
// that are null or absent in the uploaded data remain unchanged.
//
// The server returns 200 OK, 201 Created, 204 No Content, 400 Bad
// Request, 404 Not Found, 405 Method Not Allowed, 406 Not Acceptable,
// 409 Conflict, and 415 Unsupported Media Type when these are correct.
//
// Errors
//
// Most errors should be returned as encodings of the ErrorResponse
// type.  This can round-trip all of the catalog package's errors but
// may return other errors as plain strings that are not the same
// objects as other standard errors.
//
// If Go server code panics, this should be captured and returned as
// an ErrorResponse with error code "panic".
package restdata

import (
	"time"
)

// V1JSONMediaType is the preferred, most specific MIME type for the
// JSON representation of this content.
const V1JSONMediaType = "application/vnd.diffeo.geoserver.v1+json"

// JSONMediaType requests the most recent version of the JSON
// representation of this content.
const JSONMediaType = "application/vnd.diffeo.geoserver+json"

// SLDMediaType is the media type of a bare Styled Layer Descriptor
// document.
const SLDMediaType = "application/vnd.ogc.sld+xml"

// Resource is a base type for all resources in this module.
type Resource struct {
	// URL points at this resource.  If this record is a "short"
	// record, the contents of this URL are the full record.  This
	// field does not need to be provided when posting data.
	URL string `json:"url"`
}

// NamedResource is a resource with a name.
type NamedResource struct {
	Resource

	// Name holds the name of this resource.  Names never change.
	Name string `json:"name"`
}

// RootData is returned by the root path.
type RootData struct {
	Resource

	// StylesURL points at the style list.  This endpoint supports
	// HTTP GET to return a StyleList, and HTTP POST to submit a
	// StylePost (or a bare SLD document with a "name" query
	// parameter), returning the new Style.
	StylesURL string `json:"styles_url"`

	// StyleURL points at a single style.  It supports HTTP GET,
	// returning a Style; PUT, submitting an SLDBody (or a bare SLD
	// document) to replace the style body; and DELETE, with an
	// optional "purge" query parameter.  This is a URI template
	// with a single parameter, "style".
	StyleURL string `json:"style_url"`

	// WorkspacesURL points at the workspace list.  This endpoint
	// supports HTTP GET, returning a WorkspaceList, and HTTP
	// POST, submitting a WorkspaceShort to create a workspace.
	WorkspacesURL string `json:"workspaces_url"`

	// WorkspaceURL points at a single workspace.  It supports
	// HTTP GET, returning a Workspace, and DELETE, with an
	// optional "recurse" query parameter.  This is a URI template
	// with a single parameter, "workspace".
	WorkspaceURL string `json:"workspace_url"`

	// LayersURL points at the list of every layer in every
	// workspace.  It only supports HTTP GET, returning a
	// LayerList.
	LayersURL string `json:"layers_url"`

	// LayerURL finds a layer by a possibly unqualified name.  It
	// only supports HTTP GET, returning a Layer.  This is a URI
	// template with a single parameter, "layer".
	LayerURL string `json:"layer_url"`

	// SummaryURL points at object counts for the whole catalog.
	// It only supports HTTP GET, returning a Summary.
	SummaryURL string `json:"summary_url"`
}

// StyleShort provides minimal data to identify a style.
type StyleShort struct {
	NamedResource
}

// StyleList is a list of StyleShort, sorted by name.
type StyleList struct {
	Styles []StyleShort `json:"styles"`
}

// Style describes a published style.
type Style struct {
	StyleShort

	// Filename is the name of the SLD file backing the style.
	Filename string `json:"filename"`

	// Title is the title of the first user style in the SLD.
	Title string `json:"title,omitempty"`

	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`

	// SLDURL points at the style body.  It only supports HTTP
	// GET, returning the bare SLD document as
	// application/vnd.ogc.sld+xml, or an SLDBody as JSON.
	SLDURL string `json:"sld_url"`
}

// StylePost is submitted to create a new style.
type StylePost struct {
	// Name is the name of the new style.  If empty, the name is
	// taken from the SLD document.
	Name string `json:"name,omitempty"`

	// SLD is the complete style document.
	SLD string `json:"sld"`
}

// SLDBody carries a style document.
type SLDBody struct {
	SLD string `json:"sld"`
}

// WorkspaceShort provides minimal data to identify a workspace.  It is
// also the representation submitted to create one.
type WorkspaceShort struct {
	NamedResource
}

// WorkspaceList is a list of WorkspaceShort, sorted by name.
type WorkspaceList struct {
	Workspaces []WorkspaceShort `json:"workspaces"`
}

// Workspace provides pointers to the contents of a workspace.
type Workspace struct {
	WorkspaceShort

	// DatastoresURL points at the list of datastores in this
	// workspace.  It only supports HTTP GET, returning a
	// DatastoreList.
	DatastoresURL string `json:"datastores_url"`

	// DatastoreURL points at a single datastore.  It supports
	// HTTP GET, returning a Datastore, and DELETE, with an
	// optional "recurse" query parameter.  This is a URI template
	// with a single parameter, "store".
	DatastoreURL string `json:"datastore_url"`

	// ShapefileURL uploads a shapefile into a datastore, creating
	// the datastore if needed.  It only supports HTTP POST,
	// submitting a ShapefileUpload and returning the new Layer.
	// This is a URI template with a single parameter, "store".
	ShapefileURL string `json:"shapefile_url"`

	// LayerURL points at a single layer in this workspace.  It
	// supports HTTP GET, returning a Layer; PUT, submitting a
	// LayerUpdate; and DELETE.  This is a URI template with a
	// single parameter, "layer".
	LayerURL string `json:"layer_url"`
}

// DatastoreShort provides minimal data to identify a datastore.
type DatastoreShort struct {
	NamedResource
}

// DatastoreList is a list of DatastoreShort, sorted by name.
type DatastoreList struct {
	Datastores []DatastoreShort `json:"datastores"`
}

// Datastore describes a datastore.
type Datastore struct {
	DatastoreShort

	Workspace string `json:"workspace"`
	Type      string `json:"type"`
	Enabled   bool   `json:"enabled"`

	// FeatureTypes names the layers backed by this datastore.
	FeatureTypes []string `json:"feature_types"`

	DateCreated time.Time `json:"date_created"`

	// WorkspaceURL points at the containing workspace.
	WorkspaceURL string `json:"workspace_url"`
}

// ShapefileUpload is submitted to publish a shapefile.
type ShapefileUpload struct {
	// Layer is the name of the new layer.  If empty, it is the
	// base name of the .shp member of the archive.
	Layer string `json:"layer,omitempty"`

	// SRS is the declared spatial reference system.  If empty,
	// EPSG:4326 is used.
	SRS string `json:"srs,omitempty"`

	// DefaultStyle is the layer's default style.  If empty, a
	// built-in style is picked from the geometry type.
	DefaultStyle string `json:"default_style,omitempty"`

	// Zip is the zipped shapefile; in JSON it is a base64 string.
	Zip []byte `json:"zip"`
}

// LayerShort provides minimal data to identify a layer.
type LayerShort struct {
	NamedResource

	// Workspace is the name of the containing workspace.
	Workspace string `json:"workspace"`
}

// LayerList is a list of LayerShort, sorted by workspace and then
// name.
type LayerList struct {
	Layers []LayerShort `json:"layers"`
}

// Layer contains complete data for a single layer.
type Layer struct {
	LayerShort

	Store        string    `json:"store"`
	Type         string    `json:"type"`
	DefaultStyle string    `json:"default_style"`
	Styles       []string  `json:"styles"`
	SRS          string    `json:"srs"`
	GeometryType string    `json:"geometry_type"`
	Enabled      bool      `json:"enabled"`
	Queryable    bool      `json:"queryable"`
	Title        string    `json:"title"`
	Abstract     string    `json:"abstract,omitempty"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`

	// WorkspaceURL and DatastoreURL point at the containing
	// workspace and the backing datastore.
	WorkspaceURL string `json:"workspace_url"`
	DatastoreURL string `json:"datastore_url"`
}

// LayerUpdate is a partial update to a layer.  Null or absent fields
// are left unchanged.
type LayerUpdate struct {
	DefaultStyle *string `json:"default_style,omitempty"`

	// Styles, if present, replaces the alternate style list; an
	// empty list clears it.
	Styles *[]string `json:"styles,omitempty"`

	Enabled   *bool   `json:"enabled,omitempty"`
	Queryable *bool   `json:"queryable,omitempty"`
	Title     *string `json:"title,omitempty"`
	Abstract  *string `json:"abstract,omitempty"`
}

// Summary holds object counts for the whole catalog.
type Summary struct {
	Styles     int `json:"styles"`
	Workspaces int `json:"workspaces"`
	Datastores int `json:"datastores"`
	Layers     int `json:"layers"`
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short description of the failure.  This may be
	// the name or type of a catalog error, the string "panic", or
	// the string "error" for some other kind of error.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Value is an extra parameter to the error if applicable,
	// usually the name of the missing or duplicate object.
	Value string `json:"value,omitempty"`

	// Workspace is the containing workspace of the object named
	// in Value, for errors about datastores and layers.
	Workspace string `json:"workspace,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}
