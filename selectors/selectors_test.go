package selectors_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchqueue/e2e/selectors"
)

// Every locator in the default profile must be registered exactly once and be
// non-empty; lookups are plain struct reads so two reads always agree.
func TestDefaultProfileComplete(t *testing.T) {
	assertNoEmptyStrings(t, reflect.ValueOf(selectors.Default), "Default")
}

func TestProfileCopyIsStable(t *testing.T) {
	a := selectors.Default
	b := selectors.Default
	require.Equal(t, a, b)

	// Mutating a copy must not leak into the registry.
	a.Login.EmailInput = "changed"
	assert.NotEqual(t, a.Login.EmailInput, selectors.Default.Login.EmailInput)
}

func TestRoutesDistinguishAuthScreens(t *testing.T) {
	r := selectors.DefaultRoutes
	assert.Equal(t, "/login", r.Login)
	assert.NotEqual(t, r.Login, r.Dashboard)
	assert.NotEqual(t, r.MatchingCreate, r.MatchingManage)
}

func assertNoEmptyStrings(t *testing.T, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			assertNoEmptyStrings(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	case reflect.String:
		assert.NotEmpty(t, v.String(), "empty entry at %s", path)
	}
}
