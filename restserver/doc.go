// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a catalog interface as a REST service.
// The restclient package is a matching client.
//
// The complete REST API is defined in the restdata package.  In
// particular, note that the URLs described here are not actually part
// of the API.
//
// HTTP Considerations
//
// Clients should use the standard HTTP Accept: header to request a
// specific format.  See "MIME Types" below.
//
// This package does not check credentials itself.  The gscatalogd
// daemon puts HTTP basic authentication in front of it when
// configured to.
//
// MIME Types
//
// This interface understands MIME types as follows:
//
//     application/vnd.diffeo.geoserver.v1+json
//
// JSON representation of version 1 of this interface.
//
//     application/vnd.diffeo.geoserver+json
//     application/json
//     text/json
//
// JSON representation of latest version of this interface.
//
//     application/vnd.ogc.sld+xml
//
// A bare Styled Layer Descriptor document.  Style bodies can be
// submitted and retrieved this way; other resources fall back to JSON.
//
// URL Scheme
//
// Catalog objects follow their natural hierarchy and are addressed by
// name.  For instance, the layer "roads" in workspace "topp" has a
// resource URL of /workspace/topp/layer/roads.  If the name is not
// URL-safe printable ASCII, it must be base64 encoded using the
// URL-safe alphabet (RFC 4648 section 5), with no padding, and adding
// an additional - at the front of the name.
//
// The following URLs are defined:
//
//     /
//     /style
//     /style/{style}
//     /style/{style}/sld
//     /workspace
//     /workspace/{workspace}
//     /workspace/{workspace}/datastore
//     /workspace/{workspace}/datastore/{store}
//     /workspace/{workspace}/datastore/{store}/shapefile
//     /workspace/{workspace}/layer/{layer}
//     /layer
//     /layer/{layer}
//     /summary
package restserver
