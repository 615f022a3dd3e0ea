// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type inner struct {
	Factor int     `default:"120"`
	Scale  float32 `default:"0.5"`
}

type outer struct {
	Name    string   `default:"cube"`
	Watch   bool     `default:"true"`
	Files   []string `default:"a.off, b.obj"`
	Inner   inner
	Plain   int
	private int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := &outer{Plain: 7}
	assert.NoError(t, SetFromDefaultTags(o))
	assert.Equal(t, "cube", o.Name)
	assert.True(t, o.Watch)
	assert.Equal(t, []string{"a.off", "b.obj"}, o.Files)
	assert.Equal(t, 120, o.Inner.Factor)
	assert.Equal(t, float32(0.5), o.Inner.Scale)
	assert.Equal(t, 7, o.Plain)
	assert.Equal(t, 0, o.private)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	var bad struct {
		N int `default:"many"`
		S string `default:"ok"`
	}
	err := SetFromDefaultTags(&bad)
	assert.ErrorContains(t, err, "field N")
	assert.Equal(t, "ok", bad.S)

	assert.Error(t, SetFromDefaultTags(outer{}))
	n := 3
	assert.Error(t, SetFromDefaultTags(&n))
	assert.NoError(t, SetFromDefaultTags(nil))
}

func TestAnyIsNil(t *testing.T) {
	assert.True(t, AnyIsNil(nil))
	assert.True(t, AnyIsNil((*color.RGBA)(nil)))
	var c color.Color = (*color.NRGBA)(nil)
	assert.True(t, AnyIsNil(c))
	assert.True(t, AnyIsNil([]int(nil)))
	assert.False(t, AnyIsNil(&color.RGBA{}))
	assert.False(t, AnyIsNil(color.RGBA{}))
	assert.False(t, AnyIsNil(0))
}
