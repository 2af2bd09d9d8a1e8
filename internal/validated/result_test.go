package validated

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseInt(p Path, s string) Result[int] {
	p = p.With("parseInt")
	n, err := strconv.Atoi(s)
	if err != nil {
		return Failf[int](p, s, "not a number")
	}
	return Ok(n)
}

func TestPath_WithDoesNotMutate(t *testing.T) {
	base := Root("parseLegendary")
	a := base.With("parseSeq").Index(2)
	b := base.With("parseTrigger")

	assert.Equal(t, "parseLegendary", base.String())
	assert.Equal(t, "parseLegendary.parseSeq.2", a.String())
	assert.Equal(t, "parseLegendary.parseTrigger", b.String())
	assert.Equal(t, "parseLegendary.parseSeq.2.parseTrigger", a.With("parseTrigger").String())
	assert.Equal(t, 3, a.Len())
}

func TestPath_EmptyRoot(t *testing.T) {
	assert.Equal(t, "", Root().String())
	assert.Equal(t, "parseAmount", Root().With("parseAmount").String())
}

func TestOkAndFail(t *testing.T) {
	ok := Ok(7)
	assert.True(t, ok.OK())
	assert.Equal(t, 7, ok.Value())
	assert.Nil(t, ok.Errors())

	v, err := ok.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	bad := Failf[int](Root("x"), "tgt", "bad %s", "input")
	assert.False(t, bad.OK())
	require.Len(t, bad.Errors(), 1)
	assert.Equal(t, Error{Target: "tgt", Msg: "bad input", Meta: Meta{Path: "x"}}, bad.Errors()[0])

	_, err = bad.Get()
	var list List
	require.ErrorAs(t, err, &list)
	assert.Len(t, list, 1)
}

func TestFail_PanicsWithoutErrors(t *testing.T) {
	assert.Panics(t, func() { Fail[int]() })
}

func TestLift(t *testing.T) {
	assert.True(t, Lift("v", nil).OK())

	e := NewError(Root("p"), "t", "m")
	r := Lift("v", &e)
	require.False(t, r.OK())
	assert.Equal(t, []Error{e}, r.Errors())
}

func TestMapAndBind(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, 8, Map(parseInt(Root(), "4"), double).Value())

	failed := Map(parseInt(Root(), "four"), double)
	require.False(t, failed.OK())
	assert.Equal(t, "parseInt", failed.Errors()[0].Meta.Path)

	positive := func(n int) Result[int] {
		if n <= 0 {
			return Failf[int](Root("positive"), strconv.Itoa(n), "not positive")
		}
		return Ok(n)
	}
	assert.True(t, Bind(parseInt(Root(), "3"), positive).OK())
	assert.Equal(t, "not positive", Bind(parseInt(Root(), "-3"), positive).Errors()[0].Msg)
	assert.Equal(t, "not a number", Bind(parseInt(Root(), "x"), positive).Errors()[0].Msg)
}

func TestTraverse_CollectsEveryFailure(t *testing.T) {
	r := Traverse(Root("parseList"), []string{"1", "a", "3", "b"}, parseInt)

	require.False(t, r.OK())
	errs := r.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "a", errs[0].Target)
	assert.Equal(t, "parseList.parseSeq.1.parseInt", errs[0].Meta.Path)
	assert.Equal(t, "b", errs[1].Target)
	assert.Equal(t, "parseList.parseSeq.3.parseInt", errs[1].Meta.Path)
}

func TestTraverse_KeepsOrder(t *testing.T) {
	r := Traverse(Root(), []string{"3", "1", "2"}, parseInt)
	require.True(t, r.OK())
	assert.Equal(t, []int{3, 1, 2}, r.Value())

	empty := Traverse(Root(), nil, parseInt)
	require.True(t, empty.OK())
	assert.Empty(t, empty.Value())
}

func TestConcat(t *testing.T) {
	r := Concat(Ok([]int{1}), Ok([]int{}), Ok([]int{2, 3}))
	require.True(t, r.OK())
	assert.Equal(t, []int{1, 2, 3}, r.Value())

	bad := Concat(Ok([]int{1}), Failf[[]int](Root("a"), "x", "m1"), Failf[[]int](Root("b"), "y", "m2"))
	require.False(t, bad.OK())
	assert.Len(t, bad.Errors(), 2)
}

func TestZip_AccumulatesAllSides(t *testing.T) {
	type pair struct{ A, B int }
	mk := func(a, b int) pair { return pair{a, b} }

	r := Zip2(parseInt(Root("a"), "1"), parseInt(Root("b"), "2"), mk)
	require.True(t, r.OK())
	assert.Equal(t, pair{1, 2}, r.Value())

	r = Zip2(parseInt(Root("a"), "x"), parseInt(Root("b"), "y"), mk)
	require.False(t, r.OK())
	errs := r.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "a.parseInt", errs[0].Meta.Path)
	assert.Equal(t, "b.parseInt", errs[1].Meta.Path)

	sum := func(a, b, c int) int { return a + b + c }
	assert.Equal(t, 6, Zip3(parseInt(Root(), "1"), parseInt(Root(), "2"), parseInt(Root(), "3"), sum).Value())
	assert.Len(t, Zip3(parseInt(Root(), "x"), parseInt(Root(), "2"), parseInt(Root(), "z"), sum).Errors(), 2)
}

func TestWithEntity(t *testing.T) {
	r := Zip2(
		Fail[int](Error{Target: "a", Msg: "m", Meta: Meta{Path: "p", Entity: "kept"}}),
		Failf[int](Root("q"), "b", "m"),
		func(a, b int) int { return a + b },
	)
	tagged := WithEntity(r, "record")
	errs := tagged.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "kept", errs[0].Meta.Entity)
	assert.Equal(t, "record", errs[1].Meta.Entity)

	// The original result is left untouched.
	assert.Equal(t, "", r.Errors()[1].Meta.Entity)
	assert.True(t, WithEntity(Ok(1), "record").OK())
}

func TestList_Format(t *testing.T) {
	l := List{
		{Target: "火属性", Msg: "given text doesn't match any element", Meta: Meta{Path: "parseElement", Entity: "メモリア&"}},
	}
	out := l.Format()
	assert.Contains(t, out, `"target": "火属性"`)
	assert.Contains(t, out, `"entityName": "メモリア&"`)

	var decoded []Error
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []Error(l), decoded)

	assert.Contains(t, l.Error(), "parseElement")
}
