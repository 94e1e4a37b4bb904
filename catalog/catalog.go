// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package catalog defines an abstract API to the administrative catalog
// of a GeoServer-style map server: styles, workspaces, datastores and
// layers.
//
// In most cases, applications will know of specific implementations of
// this API (the in-process "memory" catalog, the "postgres" catalog, or
// the "restclient" talking to a remote server) and will get a Catalog
// from that implementation.  The "manager" package wraps a Catalog in
// the simpler boolean-returning Publisher/Reader pair.
//
// Objects are identified by name.  Styles are global; datastores and
// layers live inside a workspace.  Operations return well-known error
// types defined in this package (ErrNoSuchStyle, ErrStyleExists, ...)
// so that callers can distinguish ordinary failures from transport
// problems.
package catalog

import "time"

// Catalog is the principal interface to a map server catalog.
// Implementations of this interface provide a specific storage
// backend, RPC system, or other way to reach the catalog.
type Catalog interface {
	Publisher
	Reader
}

// Publisher holds the mutating half of the catalog.
type Publisher interface {
	// PublishStyle stores a new SLD document as a style.  If name
	// is empty, the name is taken from the document's first
	// NamedLayer (or UserStyle) name.  There are no upsert
	// semantics: if a style with the resulting name already
	// exists, returns ErrStyleExists and changes nothing.
	PublishStyle(sld, name string) (Style, error)

	// UpdateStyle replaces the SLD body of an existing style.  The
	// style name does not change even if the new document declares
	// a different one.
	UpdateStyle(name, sld string) error

	// RemoveStyle deletes a style.  Returns ErrNoSuchStyle if it
	// does not exist.  Layers using the style as their default fall
	// back to DefaultStyleGeneric, and it is dropped from any
	// alternate style lists.  purge is accepted for compatibility
	// with servers that keep SLD files on disk; the document is
	// always discarded here.
	RemoveStyle(name string, purge bool) error

	// CreateWorkspace creates a new empty workspace.
	CreateWorkspace(name string) error

	// RemoveWorkspace deletes a workspace.  If it still contains
	// datastores and recurse is false, returns ErrWorkspaceNotEmpty.
	RemoveWorkspace(name string, recurse bool) error

	// PublishShp uploads a zipped shapefile, creating the datastore
	// if needed and a layer backed by it.
	PublishShp(shp Shapefile) error

	// ConfigureLayer applies the non-nil fields of encoder to an
	// existing layer.
	ConfigureLayer(workspace, layer string, encoder LayerEncoder) error

	// RemoveLayer deletes a single layer.  Its datastore remains.
	RemoveLayer(workspace, layer string) error

	// RemoveDatastore deletes a datastore.  If it still owns layers
	// and recurse is false, returns ErrDatastoreNotEmpty; with
	// recurse its layers are removed too.
	RemoveDatastore(workspace, store string, recurse bool) error
}

// Reader holds the read-only half of the catalog.  All of these
// reflect the current state of the catalog at the time of the call.
type Reader interface {
	// Styles returns the sorted names of all published styles.
	// Built-in styles are not included.
	Styles() ([]string, error)

	// ExistsStyle determines whether a style has been published.
	ExistsStyle(name string) (bool, error)

	// Style retrieves the descriptor of a single style.
	Style(name string) (Style, error)

	// SLD retrieves the SLD document of a style, exactly as it was
	// submitted.
	SLD(name string) (string, error)

	// Workspaces returns the sorted names of all workspaces.
	Workspaces() ([]string, error)

	// ExistsWorkspace determines whether a workspace exists.
	ExistsWorkspace(name string) (bool, error)

	// Datastores returns the sorted names of the datastores in a
	// workspace.
	Datastores(workspace string) ([]string, error)

	// Datastore retrieves a single datastore.
	Datastore(workspace, name string) (Datastore, error)

	// ExistsDatastore determines whether a datastore exists.  A
	// missing workspace is not an error; the datastore simply does
	// not exist.
	ExistsDatastore(workspace, name string) (bool, error)

	// Layers returns the sorted qualified ("workspace:layer") names
	// of every layer in the catalog.
	Layers() ([]string, error)

	// Layer retrieves a layer by name.  name may be qualified
	// ("workspace:layer"); if it is not, the layer is searched in
	// all workspaces in name order and the first match wins.
	Layer(name string) (Layer, error)

	// WorkspaceLayer retrieves a layer in a specific workspace.
	WorkspaceLayer(workspace, name string) (Layer, error)

	// ExistsLayer determines whether a layer exists in a
	// workspace.
	ExistsLayer(workspace, name string) (bool, error)

	// Summarize counts the objects in the catalog.
	Summarize() (Summary, error)
}

// Style describes a published style.  The SLD body is retrieved
// separately through Reader.SLD.
type Style struct {
	// Name is the unique name of the style.
	Name string

	// Filename is the name the server stores the document under,
	// always Name + ".sld".
	Filename string

	// Title is the title of the first user style in the document,
	// if any.
	Title string

	DateCreated  time.Time
	DateModified time.Time
}

// Datastore describes a configured data source in a workspace.
type Datastore struct {
	Workspace string
	Name      string

	// Type names the kind of store; always DatastoreTypeShapefile
	// for stores created through PublishShp.
	Type string

	Enabled bool

	// FeatureTypes names the layers published from this store,
	// sorted.
	FeatureTypes []string

	DateCreated time.Time
}

// Layer describes a published layer.
type Layer struct {
	Workspace string
	Name      string

	// Store names the datastore backing this layer.
	Store string

	// Type is the resource type, LayerTypeVector for shapefiles.
	Type string

	// DefaultStyle names the style used when a request does not
	// ask for one.  This is either a published style or one of
	// the built-in styles.
	DefaultStyle string

	// Styles lists alternate styles a client may request.
	Styles []string

	// SRS is the declared spatial reference system, such as
	// "EPSG:4326".
	SRS string

	GeometryType GeometryType

	Enabled   bool
	Queryable bool
	Title     string
	Abstract  string

	DateCreated  time.Time
	DateModified time.Time
}

// QualifiedName returns the "workspace:layer" name of a layer.
func (l Layer) QualifiedName() string {
	return QualifyName(l.Workspace, l.Name)
}

// Shapefile holds the parameters of a shapefile upload.
type Shapefile struct {
	Workspace string
	Store     string
	Layer     string

	// Zip holds the zip archive containing the .shp file and its
	// siblings.
	Zip []byte

	// SRS is the spatial reference system to declare.  If empty,
	// DefaultSRS is used.
	SRS string

	// DefaultStyle names the layer's default style.  If empty, a
	// built-in style matching the geometry type is chosen.
	DefaultStyle string
}

// Summary counts the objects in a catalog.
type Summary struct {
	Styles     int
	Workspaces int
	Datastores int
	Layers     int
}

const (
	// DatastoreTypeShapefile is the Datastore.Type of shapefile
	// stores.
	DatastoreTypeShapefile = "Shapefile"

	// LayerTypeVector is the Layer.Type of feature layers.
	LayerTypeVector = "VECTOR"

	// DefaultSRS is declared on uploads that do not name one.
	DefaultSRS = "EPSG:4326"
)
