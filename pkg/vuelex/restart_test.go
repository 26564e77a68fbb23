package vuelex_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/diff"
	"github.com/walteh/vuelex/pkg/token"
	"github.com/walteh/vuelex/pkg/vuelex"
)

const restartDoc = `<template>
  <div :a="b" @c='d()' style="width: 1px">{{ e }} &amp; f</div>
  <template lang="pug">
#x.y
  </template>
</template>
<script lang="tsx">
const a = <b c={d}>e</b>
</script>
<style lang="scss">
.a { $b: 1px; }
</style>`

func TestSnapshotAndResume(t *testing.T) {
	src := []byte(restartDoc)
	tokens, err := vuelex.Lex(src)
	require.NoError(t, err)

	for i, tok := range tokens {
		st, err := vuelex.Snapshot(src, tok.Start)
		require.NoError(t, err)

		l, err := vuelex.Resume(st, tok.Start, src[tok.Start:])
		require.NoError(t, err)

		got := slices.Collect(l.All())
		if d := diff.DiffExportedOnly(tokens[i:], got); d != "" {
			t.Fatalf("resuming at token %d (%s) in state %s:%s", i, tok, st, d)
		}
	}

	st, err := vuelex.Snapshot(src, len(src))
	require.NoError(t, err)
	assert.Equal(t, vuelex.ModeHTML, st.Mode)
}

func TestSnapshotRejectsNonBoundaries(t *testing.T) {
	src := []byte("<div>text</div>")

	_, err := vuelex.Snapshot(src, 6)
	require.ErrorIs(t, err, vuelex.ErrNotBoundary)

	_, err = vuelex.Snapshot(src, len(src)+1)
	require.ErrorIs(t, err, vuelex.ErrNotBoundary)

	_, err = vuelex.Snapshot(src, -1)
	require.ErrorIs(t, err, vuelex.ErrNotBoundary)

	_, err = vuelex.Snapshot(nil, 0)
	require.ErrorIs(t, err, vuelex.ErrNilInput)
}

func TestResumeValidation(t *testing.T) {
	_, err := vuelex.Resume(vuelex.State{}, -1, []byte("x"))
	require.Error(t, err)

	_, err = vuelex.Resume(vuelex.State{}, 0, nil)
	require.ErrorIs(t, err, vuelex.ErrNilInput)

	_, err = vuelex.Resume(vuelex.State{Mode: vuelex.Mode(200)}, 0, []byte("x"))
	require.ErrorIs(t, err, vuelex.ErrInvalidState)
}

func TestResumeOffsetsAreAbsolute(t *testing.T) {
	st := vuelex.State{Mode: vuelex.ModeScript, Dialect: dialect.ScriptTS, Tag: dialect.TagScript}
	l, err := vuelex.Resume(st, 100, []byte("x</script>"))
	require.NoError(t, err)

	first, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, token.Token{Kind: token.Identifier, Start: 100, End: 101, Dialect: dialect.ScriptTS}, first)
	assert.Equal(t, 101, l.Offset())
}

func TestVerifyRestart(t *testing.T) {
	src := []byte(restartDoc)
	require.NoError(t, vuelex.VerifyRestart(src, true))
	require.NoError(t, vuelex.VerifyRestart(src, false))
	require.NoError(t, vuelex.VerifyRestart(src, true, vuelex.WithLevel(dialect.ES5)))

	require.ErrorIs(t, vuelex.VerifyRestart(nil, true), vuelex.ErrNilInput)
}
