package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func Test_runGraph(t *testing.T) {
	cmd, buf := newTestCmd("apple\npear\nplum\nfig\nkiwi\n")
	v := viper.New()
	v.Set("format", "csv")
	v.Set("expr", "a.size() == b.size()")

	err := runGraph(cmd, v, afero.NewMemMapFs())

	assert.NoError(t, err)
	assert.Equal(t, "#,value,degree,triangles,neighbors\n"+
		"0,apple,0,0,\n"+
		"1,pear,2,1,2 4\n"+
		"2,plum,2,1,1 4\n"+
		"3,fig,0,0,\n"+
		"4,kiwi,2,1,1 2\n", buf.String())
}

func Test_runGraph_minDegree(t *testing.T) {
	cmd, buf := newTestCmd("apple\npear\nplum\nfig\nkiwi\n")
	v := viper.New()
	v.Set("format", "csv")
	v.Set("expr", "a.size() == b.size()")
	v.Set("min-degree", 1)

	err := runGraph(cmd, v, afero.NewMemMapFs())

	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "apple")
	assert.NotContains(t, buf.String(), "fig")
	assert.Contains(t, buf.String(), "1,pear,2,1,2 4")
}

func Test_runGraph_errors(t *testing.T) {
	cmd, _ := newTestCmd("a\n")
	v := viper.New()
	v.Set("format", "table")
	v.Set("min-degree", -2)
	assert.ErrorContains(t, runGraph(cmd, v, afero.NewMemMapFs()), "invalid min-degree")

	v.Set("format", "pdf")
	assert.ErrorContains(t, runGraph(cmd, v, afero.NewMemMapFs()), "unknown format")
}
