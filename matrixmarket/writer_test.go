// SPDX-License-Identifier: MIT

package matrixmarket_test

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphml2mm/graphml"
	"github.com/katalvlaran/graphml2mm/matrixmarket"
)

func node(t *testing.T, id string) graphml.Event {
	t.Helper()
	n, err := graphml.NewNode(&id)
	require.NoError(t, err)

	return n
}

func edge(t *testing.T, id, src, dst string) graphml.Event {
	t.Helper()
	e, err := graphml.NewEdge(&id, &src, &dst, nil)
	require.NoError(t, err)

	return e
}

// normalize strips the padding of the reserved dimension line.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	return strings.Join(lines, "\n")
}

func TestWrite_Simple(t *testing.T) {
	events := []graphml.Event{
		edge(t, "1", "1", "2"),
		edge(t, "2", "2", "3"),
		node(t, "1"),
		node(t, "2"),
		node(t, "3"),
	}

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events, matrixmarket.WithHeaderWidth(10)))
	require.Equal(t,
		"%%MatrixMarket matrix coordinate real general\n3 3 2     \n1 2 1.0\n2 3 1.0\n",
		s.String())
}

func TestWrite_Scenario(t *testing.T) {
	events := []graphml.Event{node(t, "A"), node(t, "D"), edge(t, "da", "D", "A")}

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events))
	require.Equal(t, "%%MatrixMarket matrix coordinate real general\n2 2 1\nD A 1.0\n", normalize(s.String()))

	// default reservation: the dimension line is exactly DefaultHeaderWidth wide
	lines := strings.Split(s.String(), "\n")
	require.Len(t, lines[1], matrixmarket.DefaultHeaderWidth)
}

func TestWrite_LiteralEvents(t *testing.T) {
	events := []graphml.Event{
		graphml.Node{ID: "1"},
		graphml.Node{ID: "2"},
		graphml.Edge{ID: "a", Source: "2", Target: "1"},
	}

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events, matrixmarket.WithHeaderWidth(5), matrixmarket.WithIndexMapping(true)))
	require.Equal(t, matrixmarket.Banner+"\n2 2 1\n2 1 1.0\n", s.String())
}

func TestWrite_Empty(t *testing.T) {
	var s memSink
	require.NoError(t, matrixmarket.Write(&s, nil))
	require.Equal(t, matrixmarket.Banner+"\n0 0 0\n", normalize(s.String()))
}

func TestWrite_NodesWithoutEdgesStillCount(t *testing.T) {
	events := []graphml.Event{node(t, "1"), node(t, "2"), node(t, "3"), node(t, "4"), edge(t, "e", "1", "2")}

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events))
	require.Equal(t, matrixmarket.Banner+"\n4 4 1\n1 2 1.0\n", normalize(s.String()))
}

func TestWrite_CountsAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		n, e := rng.Intn(50), rng.Intn(200)

		var events []graphml.Event
		var want []string
		for i := 0; i < n; i++ {
			events = append(events, node(t, strconv.Itoa(i+1)))
		}
		for i := 0; i < e; i++ {
			src, dst := strconv.Itoa(rng.Intn(100)), strconv.Itoa(rng.Intn(100))
			ev := edge(t, "e"+strconv.Itoa(i), src, dst)
			// interleave edges among nodes at random positions
			pos := rng.Intn(len(events) + 1)
			events = append(events[:pos], append([]graphml.Event{ev}, events[pos:]...)...)
		}
		for _, ev := range events {
			if ed, ok := ev.(graphml.Edge); ok {
				want = append(want, ed.Source+" "+ed.Target+" 1.0")
			}
		}

		var s memSink
		require.NoError(t, matrixmarket.Write(&s, events))

		lines := strings.Split(strings.TrimSuffix(normalize(s.String()), "\n"), "\n")
		require.Equal(t, matrixmarket.Banner, lines[0])
		require.Equal(t, fmt.Sprintf("%d %d %d", n, n, e), lines[1], "round %d", round)
		require.Equal(t, len(want), len(lines)-2)
		if e > 0 {
			require.Equal(t, want, lines[2:])
		}
	}
}

func TestWrite_HeaderFitsExactly(t *testing.T) {
	events := graphOf(t, 10, 100) // "10 10 100" is 9 bytes

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events, matrixmarket.WithHeaderWidth(9)))

	lines := strings.Split(s.String(), "\n")
	require.Equal(t, "10 10 100", lines[1])
	require.Equal(t, "1 2 1.0", lines[2])
	require.Len(t, lines, 2+100+1)
}

func TestWrite_HeaderOverflowLeavesFileIntact(t *testing.T) {
	events := graphOf(t, 10, 100)

	var s memSink
	err := matrixmarket.Write(&s, events, matrixmarket.WithHeaderWidth(8))
	require.ErrorIs(t, err, matrixmarket.ErrHeaderOverflow)
	require.Contains(t, err.Error(), `"10 10 100" needs 9 bytes, 8 reserved`)

	lines := strings.Split(s.String(), "\n")
	require.Equal(t, strings.Repeat(" ", 8), lines[1])
	for i := 0; i < 100; i++ {
		require.Equal(t, "1 2 1.0", lines[2+i])
	}
}

func TestDefaultHeaderWidth_HoldsAnyIntCounts(t *testing.T) {
	worst := fmt.Sprintf("%d %d %d", math.MaxInt, math.MaxInt, math.MaxInt)
	require.LessOrEqual(t, len(worst), matrixmarket.DefaultHeaderWidth)

	worst = fmt.Sprintf("%d %d %d", uint64(math.MaxUint64), uint64(math.MaxUint64), uint64(math.MaxUint64))
	require.Equal(t, len(worst), matrixmarket.DefaultHeaderWidth)
}

func TestWrite_LeavesPositionAtEnd(t *testing.T) {
	events := []graphml.Event{node(t, "1"), node(t, "2"), edge(t, "e", "1", "2")}

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events))
	require.Equal(t, int64(len(s.buf)), s.pos)

	_, err := s.Write([]byte("% trailer\n"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(s.String(), "1 2 1.0\n% trailer\n"))
}

func TestWrite_File(t *testing.T) {
	events := []graphml.Event{node(t, "A"), node(t, "D"), edge(t, "da", "D", "A")}

	path := filepath.Join(t.TempDir(), "out.mtx")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, matrixmarket.Write(f, events))
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "%%MatrixMarket matrix coordinate real general\n2 2 1\nD A 1.0\n", normalize(string(got)))
}

func TestWrite_SinkFailuresPropagateUnmodified(t *testing.T) {
	events := []graphml.Event{node(t, "1"), node(t, "2"), edge(t, "e", "1", "2")}

	// writes: 1 banner, 2 placeholder, 3 flushed edge lines, 4 dimension line
	for i := 1; i <= 4; i++ {
		t.Run("write"+strconv.Itoa(i), func(t *testing.T) {
			s := memSink{failWrite: i}
			err := matrixmarket.Write(&s, events)
			require.Same(t, errSink, err)
		})
	}
	// seeks: 1 record offset, 2 back to offset, 3 to end
	for i := 1; i <= 3; i++ {
		t.Run("seek"+strconv.Itoa(i), func(t *testing.T) {
			s := memSink{failSeek: i}
			err := matrixmarket.Write(&s, events)
			require.Same(t, errSink, err)
		})
	}
}

func TestWrite_IndexMapping(t *testing.T) {
	events := []graphml.Event{
		node(t, "A"),
		node(t, "D"),
		edge(t, "da", "D", "A"),
		edge(t, "aa", "A", "A"),
	}

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events, matrixmarket.WithIndexMapping(true)))
	require.Equal(t, matrixmarket.Banner+"\n2 2 2\n2 1 1.0\n1 1 1.0\n", normalize(s.String()))
}

func TestWrite_IndexMappingUnknownVertex(t *testing.T) {
	events := []graphml.Event{node(t, "A"), edge(t, "da", "D", "A")}

	var s memSink
	err := matrixmarket.Write(&s, events, matrixmarket.WithIndexMapping(true))
	require.ErrorIs(t, err, matrixmarket.ErrUnknownVertex)
	require.Empty(t, s.buf, "nothing may be written before validation")
}

func TestWriteBuffered_MatchesSeekable(t *testing.T) {
	events := graphOf(t, 7, 12)

	var s memSink
	require.NoError(t, matrixmarket.Write(&s, events))

	var b bytes.Buffer
	require.NoError(t, matrixmarket.WriteBuffered(&b, events))

	require.Equal(t, normalize(s.String()), b.String())
	require.Contains(t, b.String(), "\n7 7 12\n")
}

func TestWriteBuffered_SinkFailure(t *testing.T) {
	events := graphOf(t, 2, 1)
	s := memSink{failWrite: 1}
	require.Same(t, errSink, matrixmarket.WriteBuffered(&s, events))
}

func TestWrite_Idempotent(t *testing.T) {
	events := graphOf(t, 5, 9)

	var a, b memSink
	require.NoError(t, matrixmarket.Write(&a, events))
	require.NoError(t, matrixmarket.Write(&b, events))
	require.Equal(t, a.buf, b.buf)
}

func TestOptions(t *testing.T) {
	o := matrixmarket.NewOptions()
	require.Equal(t, matrixmarket.DefaultHeaderWidth, o.HeaderWidth())
	require.Equal(t, matrixmarket.DefaultIndexMapping, o.IndexMapping())

	o = matrixmarket.NewOptions(matrixmarket.WithHeaderWidth(12), matrixmarket.WithIndexMapping(true))
	require.Equal(t, 12, o.HeaderWidth())
	require.True(t, o.IndexMapping())

	require.Panics(t, func() { matrixmarket.WithHeaderWidth(0) })
	require.Panics(t, func() { matrixmarket.WithLogger(nil) })
}

// graphOf returns n nodes "1".."n" followed by e edges 1→2.
func graphOf(t *testing.T, n, e int) []graphml.Event {
	t.Helper()
	var out []graphml.Event
	for i := 1; i <= n; i++ {
		out = append(out, node(t, strconv.Itoa(i)))
	}
	for i := 0; i < e; i++ {
		out = append(out, edge(t, "e"+strconv.Itoa(i), "1", "2"))
	}

	return out
}
