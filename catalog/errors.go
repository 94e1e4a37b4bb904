// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalog

import (
	"errors"
	"fmt"
)

// ErrBadName is returned when creating an object with an empty name,
// or a name containing a colon (which would be ambiguous in qualified
// layer names).
var ErrBadName = errors.New("Name must be non-empty and must not contain ':'")

// ErrNoStyleName is returned from PublishStyle if no name was given and
// the SLD document does not declare one.
var ErrNoStyleName = errors.New("No style name given and none in SLD")

// ErrReservedStyleName is returned from PublishStyle if the style name
// is one of the built-in styles.
var ErrReservedStyleName = errors.New("Style name is reserved for a built-in style")

// ErrGone is returned when an object is used after its catalog has been
// closed.
var ErrGone = errors.New("Catalog is closed")

// ErrBadSLD is returned if a style document is not a well-formed
// Styled Layer Descriptor.
type ErrBadSLD struct {
	Reason string
}

func (err ErrBadSLD) Error() string {
	return fmt.Sprintf("Invalid SLD document: %v", err.Reason)
}

// ErrBadShapefile is returned from PublishShp if the uploaded archive
// does not contain a usable shapefile.
type ErrBadShapefile struct {
	Reason string
}

func (err ErrBadShapefile) Error() string {
	return fmt.Sprintf("Invalid shapefile archive: %v", err.Reason)
}

// ErrNoSuchStyle is returned when a named style does not exist.
type ErrNoSuchStyle struct {
	Name string
}

func (err ErrNoSuchStyle) Error() string {
	return fmt.Sprintf("No such style %v", err.Name)
}

// ErrStyleExists is returned from PublishStyle when a style with the
// same name has already been published.
type ErrStyleExists struct {
	Name string
}

func (err ErrStyleExists) Error() string {
	return fmt.Sprintf("Style %v already exists", err.Name)
}

// ErrNoSuchWorkspace is returned when a named workspace does not exist.
type ErrNoSuchWorkspace struct {
	Name string
}

func (err ErrNoSuchWorkspace) Error() string {
	return fmt.Sprintf("No such workspace %v", err.Name)
}

// ErrWorkspaceExists is returned from CreateWorkspace on a duplicate
// name.
type ErrWorkspaceExists struct {
	Name string
}

func (err ErrWorkspaceExists) Error() string {
	return fmt.Sprintf("Workspace %v already exists", err.Name)
}

// ErrWorkspaceNotEmpty is returned from a non-recursive RemoveWorkspace
// if the workspace still has datastores.
type ErrWorkspaceNotEmpty struct {
	Name string
}

func (err ErrWorkspaceNotEmpty) Error() string {
	return fmt.Sprintf("Workspace %v is not empty", err.Name)
}

// ErrNoSuchDatastore is returned when a named datastore does not exist.
type ErrNoSuchDatastore struct {
	Workspace string
	Name      string
}

func (err ErrNoSuchDatastore) Error() string {
	return fmt.Sprintf("No such datastore %v", QualifyName(err.Workspace, err.Name))
}

// ErrDatastoreNotEmpty is returned from a non-recursive RemoveDatastore
// if the datastore still owns layers.
type ErrDatastoreNotEmpty struct {
	Workspace string
	Name      string
}

func (err ErrDatastoreNotEmpty) Error() string {
	return fmt.Sprintf("Datastore %v still has layers", QualifyName(err.Workspace, err.Name))
}

// ErrNoSuchLayer is returned when a named layer does not exist.
// Workspace is empty for an unqualified lookup.
type ErrNoSuchLayer struct {
	Workspace string
	Name      string
}

func (err ErrNoSuchLayer) Error() string {
	return fmt.Sprintf("No such layer %v", QualifyName(err.Workspace, err.Name))
}

// ErrLayerExists is returned from PublishShp if the layer name is
// already used in the workspace.
type ErrLayerExists struct {
	Workspace string
	Name      string
}

func (err ErrLayerExists) Error() string {
	return fmt.Sprintf("Layer %v already exists", QualifyName(err.Workspace, err.Name))
}

// IsNotFound determines whether err reports a missing object of any
// kind.
func IsNotFound(err error) bool {
	var (
		noStyle     ErrNoSuchStyle
		noWorkspace ErrNoSuchWorkspace
		noStore     ErrNoSuchDatastore
		noLayer     ErrNoSuchLayer
	)
	return errors.As(err, &noStyle) ||
		errors.As(err, &noWorkspace) ||
		errors.As(err, &noStore) ||
		errors.As(err, &noLayer)
}
