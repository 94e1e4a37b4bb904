// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"io/ioutil"
	"mime"

	"github.com/ugorji/go/codec"
)

// decodeTypes maps the request media types we accept to the
// representation they carry.
var decodeTypes = map[string]string{
	"text/json":        V1JSONMediaType,
	"application/json": V1JSONMediaType,
	JSONMediaType:      V1JSONMediaType,
	V1JSONMediaType:    V1JSONMediaType,
	"text/xml":         SLDMediaType,
	"application/xml":  SLDMediaType,
	SLDMediaType:       SLDMediaType,
}

var jsonHandle = &codec.JsonHandle{}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.
//
// A bare SLD document (SLDMediaType, or generic XML) can only be
// decoded into an SLDBody, or into an interface{} which will then hold
// an SLDBody.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch decodeTypes[mediaType] {
	case V1JSONMediaType:
		return codec.NewDecoder(r, jsonHandle).Decode(out)
	case SLDMediaType:
		return decodeSLD(mediaType, r, out)
	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}
}

func decodeSLD(mediaType string, r io.Reader, out interface{}) error {
	switch target := out.(type) {
	case *SLDBody, *interface{}:
		body, err := ioutil.ReadAll(r)
		if err != nil {
			return err
		}
		if sld, isSLD := target.(*SLDBody); isSLD {
			sld.SLD = string(body)
		} else {
			*target.(*interface{}) = SLDBody{SLD: string(body)}
		}
		return nil
	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}
}
