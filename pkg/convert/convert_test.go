// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/pkg/convert"
)

/*
TestOptionalInt64 ensures malformed numbers behave like absent ones.
*/
func TestOptionalInt64(t *testing.T) {
	assert.Nil(t, convert.OptionalInt64(""))
	assert.Nil(t, convert.OptionalInt64("12a"))

	v := convert.OptionalInt64(" 250 ")
	require.NotNil(t, v)
	assert.Equal(t, int64(250), *v)

	zero := convert.OptionalInt64("0")
	require.NotNil(t, zero)
	assert.Equal(t, int64(0), *zero)
}

/*
TestOptionalBool checks the accepted boolean spellings.
*/
func TestOptionalBool(t *testing.T) {
	assert.Nil(t, convert.OptionalBool("maybe"))

	v := convert.OptionalBool("1")
	require.NotNil(t, v)
	assert.True(t, *v)

	f := convert.OptionalBool("false")
	require.NotNil(t, f)
	assert.False(t, *f)
}

/*
TestFirstNonEmpty checks ordering and blank skipping.
*/
func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", convert.FirstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", convert.FirstNonEmpty())
	assert.Equal(t, 7, convert.ToIntD("x", 7))
	assert.Equal(t, 3, convert.ToIntD("3", 7))
}
