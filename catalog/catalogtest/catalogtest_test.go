// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package catalogtest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSuiteMethods checks that every method testify will run as a test
// takes no arguments.
func TestSuiteMethods(t *testing.T) {
	suiteType := reflect.TypeOf(&Suite{})
	for i := 0; i < suiteType.NumMethod(); i++ {
		method := suiteType.Method(i)
		if strings.HasPrefix(method.Name, "Test") {
			assert.Equal(t, 1, method.Type.NumIn(),
				"%s must not take arguments", method.Name)
		}
	}
}
