package engine

import "testing"

func TestBalancedChunksCoversEveryIndexExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ n, t int }{
		{0, 4}, {1, 4}, {3, 4}, {4, 4}, {17, 5}, {2000, 6},
	} {
		chunks := BalancedChunks(tc.n, tc.t)
		if len(chunks) != tc.t {
			t.Fatalf("n=%d t=%d: got %d chunks, want %d", tc.n, tc.t, len(chunks), tc.t)
		}
		total := 0
		for i, c := range chunks {
			if i > 0 && c.Start != chunks[i-1].End {
				t.Fatalf("n=%d t=%d: chunk %d not contiguous with previous", tc.n, tc.t, i)
			}
			total += c.Len()
		}
		if total != tc.n {
			t.Fatalf("n=%d t=%d: chunks cover %d indices, want %d", tc.n, tc.t, total, tc.n)
		}
	}
}

func TestBalancedChunksAreBalanced(t *testing.T) {
	chunks := BalancedChunks(17, 5)
	min, max := chunks[0].Len(), chunks[0].Len()
	for _, c := range chunks {
		if c.Len() < min {
			min = c.Len()
		}
		if c.Len() > max {
			max = c.Len()
		}
	}
	if max-min > 1 {
		t.Fatalf("chunk sizes differ by more than one: min=%d max=%d", min, max)
	}
}

func TestBlockDistributionCoversEveryIndexExactlyOnce(t *testing.T) {
	blocks := BlockDistribution(17, 5)
	if len(blocks) != 5 {
		t.Fatalf("got %d blocks, want 5", len(blocks))
	}
	total := 0
	for _, b := range blocks {
		total += b.Len()
	}
	if total != 17 {
		t.Fatalf("blocks cover %d indices, want 17", total)
	}
}

func TestBlockDistributionEmptyTailBlocksAndFlag(t *testing.T) {
	// n=10, w=6 -> B=ceil(10/6)=2: blocks [0,2) [2,4) [4,6) [6,8) [8,10)
	// [10,10); the last rank gets an empty range and rank 4 carries the tail.
	blocks := BlockDistribution(10, 6)
	b := 2
	for k, blk := range blocks {
		wantStart := k * b
		if wantStart >= 10 {
			if blk.Len() != 0 {
				t.Fatalf("block %d: expected empty range past n, got %+v", k, blk)
			}
			continue
		}
	}
	// the last non-empty block must carry Flag=true and End==n.
	lastNonEmpty := -1
	for k, blk := range blocks {
		if blk.Len() > 0 {
			lastNonEmpty = k
		}
	}
	if lastNonEmpty < 0 {
		t.Fatalf("expected at least one non-empty block")
	}
	if !blocks[lastNonEmpty].Flag || blocks[lastNonEmpty].End != 10 {
		t.Fatalf("last non-empty block = %+v, want Flag=true End=10", blocks[lastNonEmpty])
	}
}
