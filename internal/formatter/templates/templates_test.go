/*
 * Copyright (c) YugaByte, Inc.
 */

package templates

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseJSONFunction(t *testing.T) {
	tm, err := Parse(`{{json .Tables}}`)
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, map[string]string{"Tables": "orders, line_items"}))
	want := "\"orders, line_items\""
	assert.Check(t, is.Equal(want, b.String()))
}

func TestParseStringFunctions(t *testing.T) {
	tm, err := Parse(`{{join "/" (splitList ":" .) }}`)
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, "text:with:colon"))
	want := "text/with/colon"
	assert.Check(t, is.Equal(want, b.String()))
}

func TestNewParse(t *testing.T) {
	tm, err := NewParse("foo", "this is a {{ . }}")
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, "string"))
	want := "this is a string"
	assert.Check(t, is.Equal(want, b.String()))
}

func TestParseTruncateFunction(t *testing.T) {
	source := "00004000000030008000000000004002"

	testCases := []struct {
		template string
		expected string
	}{
		{
			template: `{{truncate . 8}}`,
			expected: "00004000",
		},
		{
			template: `{{truncate . 48}}`,
			expected: "00004000000030008000000000004002",
		},
	}

	for _, tc := range testCases {
		tm, err := Parse(tc.template)
		assert.NilError(t, err)

		var b bytes.Buffer
		assert.NilError(t, tm.Execute(&b, source))
		assert.Check(t, is.Equal(tc.expected, b.String()))
	}
}

func TestPadWithSpace(t *testing.T) {
	assert.Check(t, is.Equal("", padWithSpace("", 1, 1)))
	assert.Check(t, is.Equal(" source ", padWithSpace("source", 1, 1)))
}
