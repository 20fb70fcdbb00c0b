package maze

import (
	"context"
	"errors"
	"testing"
)

// lowSource always returns the low end of the requested range, which makes
// every shuffle an identity permutation and the resulting layout fully
// predictable. It also counts draws.
type lowSource struct {
	draws int
}

func (s *lowSource) IntN(min, max int) int {
	s.draws++
	return min
}

func TestGenerateReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	m1, err := New(ctx, 21, 15, NewRand(seed))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	m2, err := New(ctx, 21, 15, NewRand(seed))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for y := 0; y < m1.Height(); y++ {
		for x := 0; x < m1.Width(); x++ {
			if m1.IsWall(x, y) != m2.IsWall(x, y) {
				t.Errorf("cell mismatch at (%d,%d): %v != %v", x, y, m1.IsWall(x, y), m2.IsWall(x, y))
			}
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	m1, err := New(ctx, 21, 15, NewRand(12345))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	m2, err := New(ctx, 21, 15, NewRand(54321))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// With different seeds at this size an identical layout is vanishingly
	// unlikely.
	if m1.String() == m2.String() {
		t.Error("mazes with different seeds should not be identical")
	}
}

func TestStartCellIsPassage(t *testing.T) {
	ctx := context.Background()

	for seed := int64(0); seed < 20; seed++ {
		m, err := New(ctx, 13, 9, NewRand(seed))
		if err != nil {
			t.Fatalf("seed %d: generate failed: %v", seed, err)
		}
		if m.IsWall(1, 1) {
			t.Errorf("seed %d: start cell (1,1) is a wall", seed)
		}
	}
}

func TestExitAlwaysPassage(t *testing.T) {
	ctx := context.Background()

	dims := [][2]int{{7, 7}, {8, 8}, {3, 3}, {20, 12}, {13, 9}}
	for _, d := range dims {
		for seed := int64(0); seed < 10; seed++ {
			m, err := New(ctx, d[0], d[1], NewRand(seed))
			if err != nil {
				t.Fatalf("%dx%d seed %d: generate failed: %v", d[0], d[1], seed, err)
			}

			ex, ey := m.Exit()
			if ex != d[0]-2 || ey != d[1]-2 {
				t.Errorf("%dx%d: exit at (%d,%d), want (%d,%d)", d[0], d[1], ex, ey, d[0]-2, d[1]-2)
			}
			if m.IsWall(ex, ey) {
				t.Errorf("%dx%d seed %d: exit cell is a wall", d[0], d[1], seed)
			}
			if !m.IsExit(ex, ey) {
				t.Errorf("%dx%d: IsExit false at the exit cell", d[0], d[1])
			}
		}
	}
}

func TestOutOfBoundsIsWallNeverExit(t *testing.T) {
	m, err := New(context.Background(), 9, 9, NewRand(7))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	coords := [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {-1, -1}, {100, 100}, {-100, 4}}
	for _, c := range coords {
		if !m.IsWall(c[0], c[1]) {
			t.Errorf("IsWall(%d,%d) = false, want true for out-of-bounds", c[0], c[1])
		}
		if m.IsExit(c[0], c[1]) {
			t.Errorf("IsExit(%d,%d) = true for out-of-bounds", c[0], c[1])
		}
	}
}

func TestInvalidDimensions(t *testing.T) {
	ctx := context.Background()

	cases := [][2]int{{2, 7}, {7, 2}, {0, 0}, {1, 1}, {-3, 9}}
	for _, c := range cases {
		if _, err := New(ctx, c[0], c[1], NewRand(1)); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d,%d) error = %v, want ErrInvalidDimensions", c[0], c[1], err)
		}
	}
}

// TestSublatticeSpanningTree verifies the perfect-maze property: every
// odd-coordinate cell is carved, all passages form a single component
// reachable from (1,1), and the corridor count is exactly one less than the
// sublattice node count (no cycles).
func TestSublatticeSpanningTree(t *testing.T) {
	const width, height = 21, 15
	m, err := New(context.Background(), width, height, NewRand(99))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	nodes, corridors, passages := 0, 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if m.IsWall(x, y) {
				continue
			}
			passages++
			oddX, oddY := x%2 == 1, y%2 == 1
			switch {
			case oddX && oddY:
				nodes++
			case oddX != oddY:
				corridors++
			default:
				t.Errorf("even-even cell (%d,%d) is a passage", x, y)
			}
		}
	}

	wantNodes := (width / 2) * (height / 2)
	if nodes != wantNodes {
		t.Errorf("sublattice nodes carved = %d, want %d", nodes, wantNodes)
	}
	if corridors != nodes-1 {
		t.Errorf("corridors = %d, want %d (tree property)", corridors, nodes-1)
	}

	// Flood fill from the start: every passage must be reachable.
	reached := map[[2]int]bool{{1, 1}: true}
	queue := [][2]int{{1, 1}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			n := [2]int{c[0] + d[0], c[1] + d[1]}
			if !m.IsWall(n[0], n[1]) && !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(reached) != passages {
		t.Errorf("reachable passages = %d, want %d (single component)", len(reached), passages)
	}
}

// TestFixedLayoutSevenBySeven pins the exact layout produced by identity
// shuffles on a 7x7 grid: the carve walks up, down, left, right from (1,1)
// and the result is enumerable by hand.
func TestFixedLayoutSevenBySeven(t *testing.T) {
	src := &lowSource{}
	m, err := New(context.Background(), 7, 7, src)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	want := "#######\n" +
		"# #   #\n" +
		"# # # #\n" +
		"# # # #\n" +
		"# # # #\n" +
		"#   #E#\n" +
		"#######\n"
	if got := m.String(); got != want {
		t.Errorf("layout mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if ex, ey := m.Exit(); ex != 5 || ey != 5 {
		t.Errorf("exit at (%d,%d), want (5,5)", ex, ey)
	}

	// Nine sublattice cells are visited, each paying four shuffle draws.
	if src.draws != 36 {
		t.Errorf("random draws = %d, want 36", src.draws)
	}

	// Same draw sequence, same layout.
	m2, err := New(context.Background(), 7, 7, &lowSource{})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if m2.String() != want {
		t.Error("identical draw sequences produced different layouts")
	}
}
