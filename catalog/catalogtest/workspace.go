// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalogtest

import (
	"github.com/diffeo/go-geoserver/catalog"
)

// TestWorkspaceLifecycle creates, lists and removes workspaces.
func (s *Suite) TestWorkspaceLifecycle() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader
	s.Empty(rdr.Workspaces())
	s.False(rdr.ExistsWorkspace(DefaultWorkspace))

	s.True(pub.CreateWorkspace(DefaultWorkspace))
	s.True(rdr.ExistsWorkspace(DefaultWorkspace))
	s.False(pub.CreateWorkspace(DefaultWorkspace))

	s.True(pub.CreateWorkspace("topp"))
	s.Equal([]string{DefaultWorkspace, "topp"}, rdr.Workspaces())
	s.Empty(rdr.Datastores("topp"))

	s.True(pub.RemoveWorkspace("topp", false))
	s.False(rdr.ExistsWorkspace("topp"))
	s.False(pub.RemoveWorkspace("topp", false))
	s.Equal([]string{DefaultWorkspace}, rdr.Workspaces())
}

// TestWorkspaceErrors checks the typed errors from workspace
// operations.
func (s *Suite) TestWorkspaceErrors() {
	s.createWorkspace(DefaultWorkspace)

	err := s.Catalog.CreateWorkspace(DefaultWorkspace)
	s.Equal(catalog.ErrWorkspaceExists{Name: DefaultWorkspace}, err)

	err = s.Catalog.CreateWorkspace("")
	s.Equal(catalog.ErrBadName, err)

	err = s.Catalog.CreateWorkspace("a:b")
	s.Equal(catalog.ErrBadName, err)

	err = s.Catalog.RemoveWorkspace("missing", true)
	s.Equal(catalog.ErrNoSuchWorkspace{Name: "missing"}, err)

	_, err = s.Catalog.Datastores("missing")
	s.Equal(catalog.ErrNoSuchWorkspace{Name: "missing"}, err)

	_, err = s.Catalog.Datastore("missing", "store")
	s.Equal(catalog.ErrNoSuchWorkspace{Name: "missing"}, err)

	_, err = s.Catalog.Datastore(DefaultWorkspace, "store")
	s.Equal(catalog.ErrNoSuchDatastore{Workspace: DefaultWorkspace, Name: "store"}, err)

	err = s.Catalog.RemoveDatastore(DefaultWorkspace, "store", true)
	s.Equal(catalog.ErrNoSuchDatastore{Workspace: DefaultWorkspace, Name: "store"}, err)

	_, err = s.Catalog.WorkspaceLayer("missing", "cities")
	s.Equal(catalog.ErrNoSuchWorkspace{Name: "missing"}, err)

	exists, err := s.Catalog.ExistsLayer("missing", "cities")
	s.NoError(err)
	s.False(exists)

	exists, err = s.Catalog.ExistsDatastore("missing", "store")
	s.NoError(err)
	s.False(exists)
}

// TestRemoveDatastoreNonRecursive refuses to remove a store with
// layers unless asked to recurse.
func (s *Suite) TestRemoveDatastoreNonRecursive() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader
	s.createWorkspace(DefaultWorkspace)
	s.publishCities(DefaultWorkspace, "store", "cities", "")

	err := s.Catalog.RemoveDatastore(DefaultWorkspace, "store", false)
	s.Equal(catalog.ErrDatastoreNotEmpty{Workspace: DefaultWorkspace, Name: "store"}, err)
	s.False(pub.RemoveDatastore(DefaultWorkspace, "store", false))
	s.True(rdr.ExistsDatastore(DefaultWorkspace, "store"))
	s.True(rdr.ExistsLayer(DefaultWorkspace, "cities"))

	s.True(pub.RemoveDatastore(DefaultWorkspace, "store", true))
	s.False(rdr.ExistsDatastore(DefaultWorkspace, "store"))
	s.False(rdr.ExistsLayer(DefaultWorkspace, "cities"))
	s.Empty(rdr.Layers())
}

// TestRemoveWorkspaceRecursive removes a workspace holding stores and
// layers.
func (s *Suite) TestRemoveWorkspaceRecursive() {
	pub, rdr := s.Manager.Publisher, s.Manager.Reader
	s.publishStyle(StyleSLD, "")
	s.createWorkspace(DefaultWorkspace)
	s.createWorkspace("other")
	s.publishCities(DefaultWorkspace, "store", "cities", StyleName)
	s.publishCities(DefaultWorkspace, "store2", "towns", "")
	s.publishCities("other", "store", "cities", "")

	err := s.Catalog.RemoveWorkspace(DefaultWorkspace, false)
	s.Equal(catalog.ErrWorkspaceNotEmpty{Name: DefaultWorkspace}, err)
	s.True(rdr.ExistsWorkspace(DefaultWorkspace))

	s.True(pub.RemoveWorkspace(DefaultWorkspace, true))
	s.False(rdr.ExistsWorkspace(DefaultWorkspace))
	s.Equal([]string{"other:cities"}, rdr.Layers())

	// styles are global and survive
	s.True(rdr.ExistsStyle(StyleName))

	// the name can be reused, and starts empty
	s.True(pub.CreateWorkspace(DefaultWorkspace))
	s.Empty(rdr.Datastores(DefaultWorkspace))
	s.False(rdr.ExistsLayer(DefaultWorkspace, "cities"))
}

// TestDatastores lists datastores and their feature types.
func (s *Suite) TestDatastores() {
	rdr := s.Manager.Reader
	s.createWorkspace(DefaultWorkspace)
	s.publishCities(DefaultWorkspace, "b_store", "cities", "")
	s.publishCities(DefaultWorkspace, "a_store", "towns", "")
	s.publishCities(DefaultWorkspace, "a_store", "airports", "")

	s.Equal([]string{"a_store", "b_store"}, rdr.Datastores(DefaultWorkspace))

	store := rdr.Datastore(DefaultWorkspace, "a_store")
	if s.NotNil(store) {
		s.Equal([]string{"airports", "towns"}, store.FeatureTypes)
	}
	s.Nil(rdr.Datastore(DefaultWorkspace, "c_store"))
}

// TestSummary counts everything in the catalog.
func (s *Suite) TestSummary() {
	summary, err := s.Catalog.Summarize()
	s.NoError(err)
	s.Equal(catalog.Summary{}, summary)

	s.publishStyle(StyleSLD, "")
	s.publishStyle(StyleSLD2, Style2Name)
	s.createWorkspace(DefaultWorkspace)
	s.createWorkspace("other")
	s.publishCities(DefaultWorkspace, "store", "cities", "")
	s.publishCities(DefaultWorkspace, "store", "towns", "")
	s.publishCities("other", "store", "cities", "")

	summary, err = s.Catalog.Summarize()
	s.NoError(err)
	s.Equal(catalog.Summary{
		Styles:     2,
		Workspaces: 2,
		Datastores: 2,
		Layers:     3,
	}, summary)
}

// TestDeleteAll empties a populated catalog.
func (s *Suite) TestDeleteAll() {
	s.publishStyle(StyleSLD, "")
	s.createWorkspace(DefaultWorkspace)
	s.publishCities(DefaultWorkspace, "store", "cities", StyleName)

	s.True(s.Manager.DeleteAll())

	summary, err := s.Catalog.Summarize()
	s.NoError(err)
	s.Equal(catalog.Summary{}, summary)
}
