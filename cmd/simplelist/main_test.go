package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snwfog/simplelist/pkg/digest"
)

func TestRunDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(nil, &buf))

	assert.Equal(t, strings.Join([]string{
		"{9, 8, 7, 6, 5, 4, 3, 2, 1}",
		"{f, e, d, c, b, a}",
		"Tail of list: {8, 7, 6, 5, 4, 3, 2, 1}",
		"",
	}, "\n"), buf.String())
}

func TestRunFlags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-ints", "0, 1,2", "-strings", ""}, &buf))

	assert.Equal(t, "{2, 1, 0}\n{}\nTail of list: {1, 0}\n", buf.String())
}

func TestRunSingleInt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-ints", "7", "-strings", "x"}, &buf))

	assert.Equal(t, "{7}\n{x}\nTail of list: {}\n", buf.String())
}

func TestRunDigest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-ints", "1,2", "-strings", "a", "-digest"}, &buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	ints := createList(1, 2)
	assert.Equal(t, fmt.Sprintf("{2, 1} digest=%016x", digest.Of(ints.All())), lines[0])
	assert.Equal(t, fmt.Sprintf("{a} digest=%016x", digest.Of(createList("a").All())), lines[1])
	assert.Equal(t, fmt.Sprintf("Tail of list: {1} digest=%016x", digest.Of(ints.Tail().All())), lines[2])
}

func TestRunBadInt(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"-ints", "1,x"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)

	var numerr *strconv.NumError
	assert.True(t, errors.As(err, &numerr))
	assert.Empty(t, buf.String())
}

func TestRunUnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run([]string{"-nope"}, &buf))
}

func TestCreateListReverses(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, createList("a", "b", "c").ToSlice())
	assert.True(t, createList[int]().IsEmpty())
}
